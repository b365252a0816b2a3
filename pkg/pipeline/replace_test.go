package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linepipe/linepipe/pkg/pipeline"
)

func TestReplaceAllEmptyPattern(t *testing.T) {
	t.Parallel()

	_, err := pipeline.ReplaceAll("anything", "", '^')
	require.ErrorIs(t, err, pipeline.ErrEmptyPattern)
}

func TestReplaceAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		pattern     string
		replacement byte
		want        string
	}{
		{name: "single match", text: "a++b", pattern: "++", replacement: '^', want: "a^b"},
		{name: "several matches", text: "a++b++c", pattern: "++", replacement: '^', want: "a^b^c"},
		{name: "adjacent matches", text: "++++", pattern: "++", replacement: '^', want: "^^"},
		{name: "odd run leaves remainder", text: "+++", pattern: "++", replacement: '^', want: "^+"},
		{name: "no match", text: "abc", pattern: "++", replacement: '^', want: "abc"},
		{name: "pattern longer than text", text: "+", pattern: "++", replacement: '^', want: "+"},
		{name: "line terminator to space", text: "hello\n", pattern: "\n", replacement: ' ', want: "hello "},
		{name: "empty text", text: "", pattern: "++", replacement: '^', want: ""},
		{name: "whole text is the pattern", text: "++", pattern: "++", replacement: '^', want: "^"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pipeline.ReplaceAll(tc.text, tc.pattern, tc.replacement)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// A match can start at the byte a previous collapse just wrote: replacing
// "ab" with 'a' in "abb" first yields "ab", which must be collapsed again.
func TestReplaceAllRescanAtMutation(t *testing.T) {
	t.Parallel()

	got, err := pipeline.ReplaceAll("abb", "ab", 'a')
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

// The scan never moves back: a replacement byte that forms a new
// occurrence with the bytes before it leaves that occurrence in place.
func TestReplaceAllKeepsOccurrenceFormedToTheLeft(t *testing.T) {
	t.Parallel()

	got, err := pipeline.ReplaceAll("bba", "ba", 'a')
	require.NoError(t, err)
	assert.Equal(t, "ba", got)
}

func TestReplaceAllExhaustive(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a++b",
		"++++++",
		"+ + ++ +++ ++++",
		strings.Repeat("+", 101),
		"no plus at all",
	}

	for _, text := range inputs {
		got, err := pipeline.ReplaceAll(text, "++", '^')
		require.NoError(t, err)
		assert.NotContains(t, got, "++", "input %q", text)
	}
}

func TestReplaceAllIdempotent(t *testing.T) {
	t.Parallel()

	// '^' cannot recreate "++", so a second pass must be a no-op.
	inputs := []string{"a++b", "++++", "x+y++z+++", "plain"}

	for _, text := range inputs {
		once, err := pipeline.ReplaceAll(text, "++", '^')
		require.NoError(t, err)

		twice, err := pipeline.ReplaceAll(once, "++", '^')
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", text)
	}
}
