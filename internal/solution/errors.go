package solution

import (
	"fmt"
	"os"
	"strings"
)

// LocateErrorKind is the closed enumeration of ways locating a solution
// file can fail. Kinds carry context (path, directory, count) on the
// LocateError; message rendering is a separate concern so callers can
// branch on the kind without string matching.
type LocateErrorKind int

const (
	// LocateNotFound: the explicit path does not resolve to an existing
	// file or directory. Paths containing characters that can never
	// resolve on the host report this same kind — callers cannot
	// distinguish "doesn't exist" from "can't exist".
	LocateNotFound LocateErrorKind = iota

	// LocateNoSolution: an inferred directory contains zero solution files.
	LocateNoSolution

	// LocateAmbiguous: an inferred directory contains more than one
	// solution file and no explicit selection was made.
	LocateAmbiguous
)

// LocateError reports a failure to resolve exactly one solution file.
type LocateError struct {
	// Kind discriminates the failure.
	Kind LocateErrorKind

	// Path is the explicit path that failed to resolve (LocateNotFound).
	Path string

	// Dir is the directory that was scanned (LocateNoSolution,
	// LocateAmbiguous).
	Dir string

	// Count is the number of candidates found (LocateAmbiguous).
	Count int
}

// Error renders the single-line, user-visible message for the failure.
// Directories are always rendered with a trailing separator.
func (e *LocateError) Error() string {
	switch e.Kind {
	case LocateNotFound:
		return fmt.Sprintf("Could not find solution file or directory %q.", e.Path)
	case LocateNoSolution:
		return fmt.Sprintf("No solution file found in %s; pass the solution file as an argument.", displayDir(e.Dir))
	case LocateAmbiguous:
		return fmt.Sprintf("More than one solution file found in %s; pass the solution file as an argument.", displayDir(e.Dir))
	default:
		return fmt.Sprintf("could not locate a solution file (kind %d)", e.Kind)
	}
}

// displayDir appends the host path separator to a directory path unless
// it already ends with one.
func displayDir(dir string) string {
	sep := string(os.PathSeparator)
	if strings.HasSuffix(dir, sep) || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + sep
}

// FormatErrorReason is the closed enumeration of structural problems the
// parser can report.
type FormatErrorReason int

const (
	// ReasonHeaderMissing: the required format banner was not found on
	// the first non-blank line.
	ReasonHeaderMissing FormatErrorReason = iota

	// ReasonMalformedProject: a project-declaration line is missing a
	// required GUID or path field (fatal under the strict policy).
	ReasonMalformedProject

	// ReasonInvalidFilter: a solution filter file is not valid JSON or
	// lacks the required solution object.
	ReasonInvalidFilter

	// ReasonFilterProjectMissing: a filter names a project that the
	// referenced solution does not contain.
	ReasonFilterProjectMissing
)

// FormatError reports that a file exists and is readable but fails
// structural validation. The message always names the file's full path.
type FormatError struct {
	// Path is the full path of the offending file.
	Path string

	// Reason discriminates the structural problem.
	Reason FormatErrorReason

	// Line is the 1-based line number of the problem, when meaningful.
	Line int

	// Detail carries extra context for the message (the malformed
	// declaration, the missing project path, an underlying parse error).
	Detail string
}

// Error renders the single-line, user-visible message for the failure.
func (e *FormatError) Error() string {
	switch e.Reason {
	case ReasonHeaderMissing:
		return fmt.Sprintf("Invalid solution %q. Expected file header not found.", e.Path)
	case ReasonMalformedProject:
		return fmt.Sprintf("Invalid solution %q. Malformed project declaration on line %d.", e.Path, e.Line)
	case ReasonInvalidFilter:
		return fmt.Sprintf("Invalid solution filter %q. %s", e.Path, e.Detail)
	case ReasonFilterProjectMissing:
		return fmt.Sprintf("Solution filter %q names project %q, which is not in the solution.", e.Path, e.Detail)
	default:
		return fmt.Sprintf("Invalid solution %q.", e.Path)
	}
}
