// Package pipeline implements a four-stage streaming line-transformation
// pipeline over bounded, blocking hand-off buffers.
//
// Lines read from an input stream flow through three buffers: the first
// transform stage replaces each line terminator with a space, the second
// collapses every "++" pair to a caret, and the final stage re-blocks the
// text into fixed-width output lines. Each stage runs in its own
// goroutine; adjacent stages hand lines off through a Buffer, a bounded
// single-producer/single-consumer FIFO with a blocking Take and a
// non-blocking Put.
//
// The input stream ends on a sentinel line (STOP by default) or on end of
// input. Termination travels through the pipeline as an explicit
// end-of-stream signal on each buffer, so every stage drains and stops,
// even when an upstream stage fails. The pipeline stops on the first
// error and reports it wrapped with the failing stage's name.
package pipeline
