package pipeline

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// DefaultWidth is the number of characters emitted per output line unless
// configured otherwise.
const DefaultWidth = 80

// Formatter re-blocks a stream of text into fixed-width output lines. Fed
// text accumulates until at least width bytes are available, then full
// lines are written out. A trailing remainder shorter than width is never
// emitted; it is dropped when the pipeline shuts down.
//
// The accumulator is owned by the formatter and lives exactly as long as
// it does.
type Formatter struct {
	out   *bufio.Writer
	width int
	acc   []byte
}

// NewFormatter creates a formatter writing width-character lines to w.
func NewFormatter(w io.Writer, width int) (*Formatter, error) {
	if width < 1 {
		return nil, ErrWidth
	}

	return &Formatter{out: bufio.NewWriter(w), width: width}, nil
}

// Feed appends text to the accumulator, then emits one output line per
// width bytes accumulated, preserving any remainder for the next call.
func (f *Formatter) Feed(text string) error {
	f.acc = append(f.acc, text...)

	for len(f.acc) >= f.width {
		if _, err := f.out.Write(f.acc[:f.width]); err != nil {
			return errors.Wrap(err, "write output line")
		}
		if err := f.out.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write line terminator")
		}
		f.acc = f.acc[:copy(f.acc, f.acc[f.width:])]
	}

	return nil
}

// Pending reports how many accumulated bytes are waiting for a full line.
func (f *Formatter) Pending() int {
	return len(f.acc)
}

// Flush flushes the underlying writer. The pending remainder is not
// emitted: output shorter than the configured width is dropped at
// shutdown.
func (f *Formatter) Flush() error {
	return errors.Wrap(f.out.Flush(), "flush output")
}
