package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeSolutionPath verifies that raw solution-file paths are
// stored separator-agnostic regardless of how they were declared.
func TestNormalizeSolutionPath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "backslash path",
			raw:  `App\App.csproj`,
			want: "App/App.csproj",
		},
		{
			name: "forward slash path unchanged",
			raw:  "App/App.csproj",
			want: "App/App.csproj",
		},
		{
			name: "nested backslash path",
			raw:  `src\Lib\Lib.csproj`,
			want: "src/Lib/Lib.csproj",
		},
		{
			name: "bare filename",
			raw:  "App.csproj",
			want: "App.csproj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSolutionPath(tt.raw))
		})
	}
}

// TestProjectEntryDisplayPath verifies that presentation uses the host
// path separator while storage stays forward-slashed.
func TestProjectEntryDisplayPath(t *testing.T) {
	entry := ProjectEntry{RelativePath: "src/App/App.csproj"}

	want := filepath.Join("src", "App", "App.csproj")
	assert.Equal(t, want, entry.DisplayPath())
}

// TestIsSolutionFolder verifies folder detection by type GUID.
func TestIsSolutionFolder(t *testing.T) {
	folder := ProjectEntry{TypeID: SolutionFolderTypeID, Name: "tools"}
	assert.True(t, folder.IsSolutionFolder())

	csharp := ProjectEntry{
		TypeID: uuid.MustParse("FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"),
		Name:   "App",
	}
	assert.False(t, csharp.IsSolutionFolder())
}

// TestSolutionFileProjectPaths verifies that folder entries are excluded
// and order is preserved.
func TestSolutionFileProjectPaths(t *testing.T) {
	sln := &SolutionFile{
		Path:   "/repo/App.sln",
		Header: "Microsoft Visual Studio Solution File, Format Version 12.00",
		Projects: []ProjectEntry{
			{TypeID: uuid.MustParse("FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"), Name: "App", RelativePath: "App/App.csproj"},
			{TypeID: SolutionFolderTypeID, Name: "tools", RelativePath: "tools"},
			{TypeID: uuid.MustParse("FAE04EC0-301F-11D3-BF4B-00C04F79EFBC"), Name: "Lib", RelativePath: "Lib/Lib.csproj"},
		},
	}

	got := sln.ProjectPaths()
	require.Len(t, got, 2)
	assert.Equal(t, filepath.FromSlash("App/App.csproj"), got[0])
	assert.Equal(t, filepath.FromSlash("Lib/Lib.csproj"), got[1])
}

// TestCLIErrorUnwrap verifies error wrapping follows Go conventions.
func TestCLIErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := WrapCLIError(ExitGeneralError, "something failed", underlying)

	assert.Equal(t, "something failed: boom", err.Error())
	assert.True(t, errors.Is(err, underlying))

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
	assert.False(t, cliErr.ShowUsage)
}

// TestUsageError verifies that usage errors request usage text and carry
// the usage exit code.
func TestUsageError(t *testing.T) {
	err := UsageError("unrecognized command or argument 'frobnicate'")

	assert.Equal(t, ExitUsage, err.Code)
	assert.True(t, err.ShowUsage)
	assert.Nil(t, err.Err)
}
