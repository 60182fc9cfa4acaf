package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/sln/internal/model"
)

// TestNormalizeArgs verifies the `sln <path> list` rewrite and that
// every other argument shape passes through untouched.
func TestNormalizeArgs(t *testing.T) {
	root := NewRootCommand()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "path before subcommand is moved after it",
			in:   []string{"myapp.sln", "list"},
			want: []string{"list", "myapp.sln"},
		},
		{
			name: "flags after moved path are preserved",
			in:   []string{"/repo", "list", "--verbose"},
			want: []string{"list", "/repo", "--verbose"},
		},
		{
			name: "subcommand-first form unchanged",
			in:   []string{"list", "myapp.sln"},
			want: []string{"list", "myapp.sln"},
		},
		{
			name: "leading flag unchanged",
			in:   []string{"--verbose", "list"},
			want: []string{"--verbose", "list"},
		},
		{
			name: "single token unchanged",
			in:   []string{"list"},
			want: []string{"list"},
		},
		{
			name: "two non-subcommand tokens unchanged",
			in:   []string{"foo", "bar"},
			want: []string{"foo", "bar"},
		},
		{
			name: "empty unchanged",
			in:   []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArgs(root, tt.in))
		})
	}
}

// TestUnknownCommand verifies that a stray token is a usage error.
func TestUnknownCommand(t *testing.T) {
	setupFs(t, "/repo", nil)

	_, err := runCommand(t, "frobnicate")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitUsage, cliErr.Code)
	assert.True(t, cliErr.ShowUsage)
	assert.Contains(t, cliErr.Message, "frobnicate")
}

// TestRenderErrorUsagePolicy verifies that usage text follows the
// message only for usage-flagged errors.
func TestRenderErrorUsagePolicy(t *testing.T) {
	root := NewRootCommand()

	var buf bytes.Buffer
	code := renderError(&buf, root, model.UsageError("Unrecognized command or argument \"x\"."))
	assert.Equal(t, model.ExitUsage, code)
	assert.Contains(t, buf.String(), "Usage:")

	buf.Reset()
	code = renderError(&buf, root, model.NewCLIError(model.ExitMalformedSolution, "Invalid solution \"/repo/App.sln\"."))
	assert.Equal(t, model.ExitMalformedSolution, code)
	assert.NotContains(t, buf.String(), "Usage:")

	// Exactly one message line for the content failure.
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

// TestRootWithoutArgsShowsHelp verifies that bare `sln` succeeds and
// prints help rather than erroring.
func TestRootWithoutArgsShowsHelp(t *testing.T) {
	setupFs(t, "/repo", nil)

	out, err := runCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "list")
}
