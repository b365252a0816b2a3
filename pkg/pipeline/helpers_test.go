package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linepipe/linepipe/pkg/pipeline"
)

// runPipeline assembles a pipeline over the given input and runs it to
// completion, returning everything written to the output stream.
func runPipeline(t *testing.T, input string, opts ...pipeline.Option) (string, error) {
	t.Helper()

	var sb strings.Builder

	pipe, err := pipeline.New(strings.NewReader(input), &sb, opts...)
	require.NoError(t, err)

	err = pipe.Run(context.Background())

	return sb.String(), err
}
