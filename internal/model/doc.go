// Package model defines the domain types for the sln CLI.
//
// This package contains pure data structures with no I/O: the parsed
// solution container (SolutionFile), its project records (ProjectEntry),
// and the exit-code / error plumbing (ExitCode, CLIError) that the cli
// package uses to translate failures into process exit codes.
//
// A SolutionFile is transient — it is constructed per command invocation,
// queried, and discarded. Nothing in this package persists state.
package model
