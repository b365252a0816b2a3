package pipeline

import "sync"

const (
	// MaxLineLen is the maximum number of data bytes a single line may
	// carry, excluding its line terminator.
	MaxLineLen = 999

	// DefaultCapacity is the number of slots a buffer holds unless
	// configured otherwise.
	DefaultCapacity = 50

	// slotSize is the largest line a slot accepts: MaxLineLen data bytes
	// plus the line terminator.
	slotSize = MaxLineLen + 1
)

// Buffer is a bounded FIFO hand-off between exactly one producer stage and
// one consumer stage. Put never blocks for space: a full buffer is an
// explicit error. Take blocks until a line is available or the stream has
// ended. Each buffer carries its own lock and "non-empty" condition; no
// state is shared between buffers.
type Buffer struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	slots    []string
	count    int
	prodIdx  int
	conIdx   int
	closed   bool
}

// NewBuffer creates a buffer with the given number of slots.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity < 1 {
		return nil, ErrCapacity
	}

	buf := &Buffer{slots: make([]string, capacity)}
	buf.nonEmpty = sync.NewCond(&buf.mu)

	return buf, nil
}

// Put stores line at the write cursor and wakes the consumer. It returns
// ErrBufferFull when every slot is occupied, ErrLineTooLong when the line
// does not fit a slot, and ErrBufferClosed after Close.
func (b *Buffer) Put(line string) error {
	if len(line) > slotSize {
		return ErrLineTooLong
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBufferClosed
	}
	if b.count == len(b.slots) {
		return ErrBufferFull
	}

	b.slots[b.prodIdx] = line
	b.prodIdx = (b.prodIdx + 1) % len(b.slots)
	b.count++

	// A buffer has a single consumer, so one signal is enough.
	b.nonEmpty.Signal()

	return nil
}

// Take returns the line at the read cursor, waiting until one is
// available. The second return value is false once the buffer has been
// closed and drained; lines already stored are always delivered first, in
// the order they were put.
func (b *Buffer) Take() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.count == 0 && !b.closed {
		b.nonEmpty.Wait()
	}

	if b.count == 0 {
		return "", false
	}

	line := b.slots[b.conIdx]
	b.slots[b.conIdx] = ""
	b.conIdx = (b.conIdx + 1) % len(b.slots)
	b.count--

	return line, true
}

// Close marks the end of the stream and wakes the consumer. It is
// idempotent. Close is the only termination signal a buffer carries; no
// line value is reserved for it.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.nonEmpty.Signal()
}

// Len reports the number of lines currently stored.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.count
}

// Cap reports the number of slots.
func (b *Buffer) Cap() int {
	return len(b.slots)
}
