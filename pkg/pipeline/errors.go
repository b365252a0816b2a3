package pipeline

import "github.com/pkg/errors"

var (
	// ErrCapacity is returned when a buffer is created with fewer than
	// one slot.
	ErrCapacity = errors.New("capacity must be greater than 0")

	// ErrBufferFull is returned by Put when every slot is occupied. Put
	// never waits for space; overflow is always surfaced.
	ErrBufferFull = errors.New("buffer is full")

	// ErrBufferClosed is returned by Put after Close.
	ErrBufferClosed = errors.New("buffer is closed")

	// ErrLineTooLong is returned when a line exceeds the slot size.
	ErrLineTooLong = errors.New("line exceeds maximum length")

	// ErrEmptyPattern is returned when a replace rule carries an empty
	// search pattern.
	ErrEmptyPattern = errors.New("pattern must not be empty")

	// ErrWidth is returned when a formatter is created with a width
	// smaller than one character.
	ErrWidth = errors.New("width must be greater than 0")
)
