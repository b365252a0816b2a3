package pipeline

import "github.com/rs/zerolog"

// DefaultSentinel is the input line that marks the end of the stream.
const DefaultSentinel = "STOP"

type config struct {
	capacity int
	width    int
	sentinel string
	log      zerolog.Logger
	drawPath string
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
		width:    DefaultWidth,
		sentinel: DefaultSentinel,
		log:      zerolog.Nop(),
	}
}

// Option configures a pipeline at assembly time.
type Option func(c *config)

// WithCapacity sets the slot count of every hand-off buffer.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// WithWidth sets the output line width.
func WithWidth(width int) Option {
	return func(c *config) {
		c.width = width
	}
}

// WithSentinel sets the input line that ends the stream.
func WithSentinel(sentinel string) Option {
	return func(c *config) {
		c.sentinel = sentinel
	}
}

// WithLogger attaches a logger. Pipelines are silent by default.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithDrawer writes the assembled topology to the given path as a DOT
// file.
func WithDrawer(path string) Option {
	return func(c *config) {
		c.drawPath = path
	}
}
