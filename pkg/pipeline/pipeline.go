package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Pipeline wires four stages through three bounded buffers:
//
//	input -> read-input -> buf0 -> strip-line-breaks -> buf1 ->
//	collapse-plus-pairs -> buf2 -> format-output -> output
//
// The topology is fixed. All buffers are created before any stage starts
// and are owned by the pipeline; each is shared by exactly its producer
// and its consumer stage.
type Pipeline struct {
	stages    []*stage
	buffers   []*Buffer
	startTime time.Time
	log       zerolog.Logger
}

// New assembles a pipeline reading from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	buffers := make([]*Buffer, 3)
	for i := range buffers {
		buf, err := NewBuffer(cfg.capacity)
		if err != nil {
			return nil, errors.Wrapf(err, "buffer %d", i)
		}
		buffers[i] = buf
	}

	fm, err := NewFormatter(w, cfg.width)
	if err != nil {
		return nil, errors.Wrap(err, "formatter")
	}

	stages := []*stage{
		{
			name: "read-input",
			role: roleSource,
			dst:  &bufferSink{buf: buffers[0]},
		},
		{
			name: "strip-line-breaks",
			role: roleTransform,
			src:  &bufferSource{buf: buffers[0]},
			dst:  &bufferSink{buf: buffers[1]},
			rule: &lineBreakRule,
		},
		{
			name: "collapse-plus-pairs",
			role: roleTransform,
			src:  &bufferSource{buf: buffers[1]},
			dst:  &bufferSink{buf: buffers[2]},
			rule: &plusPairRule,
		},
		{
			name: "format-output",
			role: roleSink,
			src:  &bufferSource{buf: buffers[2]},
		},
	}

	for _, st := range stages {
		st.log = cfg.log.With().Str("stage", st.name).Logger()
		if st.rule != nil && st.rule.pattern == "" {
			return nil, errors.Wrap(ErrEmptyPattern, st.name)
		}
	}
	stages[0].src = newReaderSource(r, cfg.sentinel, stages[0].log)
	stages[3].dst = &formatterSink{fm: fm, log: stages[3].log}

	pipe := &Pipeline{
		stages:    stages,
		buffers:   buffers,
		startTime: time.Now(),
		log:       cfg.log,
	}

	if cfg.drawPath != "" {
		if err := pipe.draw(cfg.drawPath); err != nil {
			return nil, errors.Wrap(err, "draw topology")
		}
	}

	return pipe, nil
}

// Run starts the four stages concurrently and waits for all of them to
// terminate. It returns the first stage error, wrapped with the stage
// name. A pipeline runs once; there is no restart.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log.Debug().
		Int("stages", len(p.stages)).
		Int("buffers", len(p.buffers)).
		Msg("pipeline starting")

	grp, dCtx := errgroup.WithContext(ctx)
	for _, st := range p.stages {
		st := st
		grp.Go(func() error {
			return errors.Wrap(st.run(dCtx), st.name)
		})
	}

	if err := grp.Wait(); err != nil {
		return err
	}

	p.log.Debug().
		Dur("elapsed", time.Since(p.startTime)).
		Msg("pipeline finished")

	return nil
}
