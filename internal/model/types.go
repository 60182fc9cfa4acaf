package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SolutionFolderTypeID is the well-known project-type GUID that marks a
// solution folder entry. Folder entries organize the solution tree but do
// not reference a project file on disk, so queries that report project
// paths skip them.
var SolutionFolderTypeID = uuid.MustParse("2150E333-8FDC-42A3-9474-1A3956D46DE8")

// SolutionFile is the in-memory representation of a parsed solution
// container. It is constructed by the solution package, queried by the
// cli package, and never mutated after parsing.
type SolutionFile struct {
	// Path is the absolute path of the file that was parsed.
	Path string

	// Header is the format banner line, verbatim (leading whitespace
	// trimmed). A well-formed file always has one; the parser rejects
	// files without it before a SolutionFile is ever constructed.
	Header string

	// Projects holds one entry per recognized project declaration,
	// in file order. Append-only during parsing.
	Projects []ProjectEntry
}

// ProjectPaths returns the display paths of all non-folder projects,
// in file order. Solution folders are structural entries without a
// project file and are excluded.
func (s *SolutionFile) ProjectPaths() []string {
	paths := make([]string, 0, len(s.Projects))
	for i := range s.Projects {
		if s.Projects[i].IsSolutionFolder() {
			continue
		}
		paths = append(paths, s.Projects[i].DisplayPath())
	}
	return paths
}

// ProjectEntry is one project declaration from a solution file.
type ProjectEntry struct {
	// TypeID identifies the project kind (C# project, solution folder, ...).
	TypeID uuid.UUID

	// ProjectID uniquely identifies this project within the solution.
	ProjectID uuid.UUID

	// Name is the display name from the declaration.
	Name string

	// RelativePath is the project file path relative to the solution's
	// directory, stored separator-agnostic with forward slashes.
	// Presentation converts to the host separator via DisplayPath.
	RelativePath string

	// Line is the 1-based line number of the declaration, kept for
	// diagnostics.
	Line int
}

// DisplayPath renders RelativePath with the host path separator.
func (p *ProjectEntry) DisplayPath() string {
	return filepath.FromSlash(p.RelativePath)
}

// IsSolutionFolder reports whether this entry is a solution folder
// rather than a buildable project.
func (p *ProjectEntry) IsSolutionFolder() bool {
	return p.TypeID == SolutionFolderTypeID
}

// NormalizeSolutionPath converts a raw path from a solution file (which
// conventionally uses backslashes regardless of host) into the
// separator-agnostic form stored on ProjectEntry.
func NormalizeSolutionPath(raw string) string {
	return strings.ReplaceAll(raw, `\`, "/")
}

// ExitCode defines the CLI process exit codes. Scripts and CI systems
// rely on these to distinguish failure classes without parsing stderr.
type ExitCode int

const (
	// ExitSuccess indicates the command completed, including the
	// zero-projects case.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error.
	ExitGeneralError ExitCode = 1

	// ExitUsage indicates an argument-shape problem: unknown
	// sub-command or too many positional arguments.
	ExitUsage ExitCode = 2

	// ExitSolutionNotFound indicates no solution file could be
	// resolved: a non-existent explicit path, an empty directory,
	// or an ambiguous directory.
	ExitSolutionNotFound ExitCode = 3

	// ExitMalformedSolution indicates the file exists and is readable
	// but failed structural validation.
	ExitMalformedSolution ExitCode = 4
)

// CLIError is an error that carries an exit code and the usage-printing
// policy for the failure. The cli package's Execute translates it into
// stderr output and an OS exit code.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the single-line, user-visible error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// ShowUsage requests that usage text follow the error message.
	// Set for argument-shape problems and non-existent explicit paths;
	// never set for malformed-content failures, where the problem is
	// not how the command was invoked.
	ShowUsage bool
}

// Error satisfies the error interface.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// UsageError creates a CLIError for an argument-shape problem. Usage
// text is printed after the message.
func UsageError(message string) *CLIError {
	return &CLIError{Code: ExitUsage, Message: message, ShowUsage: true}
}
