package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdDefaultWidth(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(strings.Repeat("x", 80) + "\nSTOP\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, strings.Repeat("x", 80)+"\n", out.String())
}

func TestRootCmdCustomFlags(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("abcdefghij\nEND\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--width", "5", "--sentinel", "END", "--capacity", "10"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "abcde\nfghij\n", out.String())
}

func TestRootCmdRejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("STOP\n"))
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"unexpected"})

	require.Error(t, cmd.Execute())
}

func TestRootCmdInvalidCapacity(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("STOP\n"))
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"--capacity", "0"})

	require.Error(t, cmd.Execute())
}
