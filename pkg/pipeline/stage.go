package pipeline

import (
	"bufio"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// replaceRule is the optional transformation a stage applies to every
// line it moves.
type replaceRule struct {
	pattern     string
	replacement byte
}

// The two transformations of the fixed topology: line terminators become
// spaces, then every "++" pair collapses to a caret.
var (
	lineBreakRule = replaceRule{pattern: "\n", replacement: ' '}
	plusPairRule  = replaceRule{pattern: "++", replacement: '^'}
)

// source yields the lines a stage consumes. next returns ok == false once
// the stream has ended; the end of the stream is a signal of its own,
// never a line value.
type source interface {
	next() (line string, ok bool, err error)
}

// sink receives the lines a stage forwards. end propagates the end of the
// stream downstream; it must succeed even after emit has failed, so a
// broken stage still shuts its consumers down.
type sink interface {
	emit(line string) error
	end() error
}

// readerSource reads newline-terminated lines from an external stream.
// The stream ends on the sentinel line or on end of input; the sentinel
// itself is never forwarded. Forwarded lines keep their terminator so the
// downstream stage can substitute it.
type readerSource struct {
	scan     *bufio.Scanner
	sentinel string
	log      zerolog.Logger
}

func newReaderSource(r io.Reader, sentinel string, log zerolog.Logger) *readerSource {
	scan := bufio.NewScanner(r)
	// Size for MaxLineLen data bytes plus the terminator: a mid-stream
	// line is only emitted once its newline is buffered, so the limit
	// must leave room for it.
	scan.Buffer(make([]byte, 0, MaxLineLen+1), MaxLineLen+1)

	return &readerSource{scan: scan, sentinel: sentinel, log: log}
}

func (s *readerSource) next() (string, bool, error) {
	if !s.scan.Scan() {
		if err := s.scan.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", false, ErrLineTooLong
			}

			return "", false, errors.Wrap(err, "read input")
		}

		// End of input before the stop marker. Terminates exactly like
		// the marker, but loudly enough to tell the two apart.
		s.log.Warn().Str("sentinel", s.sentinel).Msg("input exhausted without stop marker")

		return "", false, nil
	}

	line := s.scan.Text()
	// A final unterminated line reaches here without tripping the
	// scanner's limit; it still must fit a slot's data bytes.
	if len(line) > MaxLineLen {
		return "", false, ErrLineTooLong
	}
	if line == s.sentinel {
		return "", false, nil
	}

	return line + "\n", true, nil
}

// bufferSource consumes the stage's upstream buffer.
type bufferSource struct {
	buf *Buffer
}

func (s *bufferSource) next() (string, bool, error) {
	line, ok := s.buf.Take()

	return line, ok, nil
}

// bufferSink forwards lines to the downstream buffer.
type bufferSink struct {
	buf *Buffer
}

func (s *bufferSink) emit(line string) error {
	return s.buf.Put(line)
}

func (s *bufferSink) end() error {
	s.buf.Close()

	return nil
}

// formatterSink ends the pipeline at the output formatter.
type formatterSink struct {
	fm  *Formatter
	log zerolog.Logger
}

func (s *formatterSink) emit(line string) error {
	return s.fm.Feed(line)
}

func (s *formatterSink) end() error {
	if n := s.fm.Pending(); n > 0 {
		// A trailing remainder shorter than one output line is dropped,
		// not flushed.
		s.log.Debug().Int("bytes", n).Msg("dropped partial output line")
	}

	return s.fm.Flush()
}

type stageRole int

const (
	roleSource stageRole = iota
	roleTransform
	roleSink
)

func (r stageRole) String() string {
	switch r {
	case roleSource:
		return "source"
	case roleTransform:
		return "transform"
	case roleSink:
		return "sink"
	}

	return "unknown"
}

// stage is one worker of the pipeline. Its behavior is configuration, not
// code: a source, an optional replace rule and a sink, assembled once and
// immutable afterwards. Every stage runs the same loop.
type stage struct {
	name string
	role stageRole
	src  source
	dst  sink
	rule *replaceRule
	log  zerolog.Logger
}

// run moves lines from the source to the sink until the stream ends or a
// line cannot be moved. Termination always propagates downstream, even on
// failure, so consumers drain and stop instead of blocking forever.
func (s *stage) run(ctx context.Context) (err error) {
	defer func() {
		if endErr := s.dst.end(); err == nil {
			err = endErr
		}
	}()

	s.log.Debug().Msg("stage started")

	var lines int64
	for {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Wrap(ctxErr, "stage cancelled")
		}

		line, ok, err := s.src.next()
		if err != nil {
			return err
		}
		if !ok {
			s.log.Debug().Int64("lines", lines).Msg("stream ended")

			return nil
		}

		// Transformation happens outside any buffer lock.
		if s.rule != nil {
			line, err = ReplaceAll(line, s.rule.pattern, s.rule.replacement)
			if err != nil {
				return err
			}
		}

		if err := s.dst.emit(line); err != nil {
			return err
		}
		lines++
	}
}
