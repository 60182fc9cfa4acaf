// Package solution implements the solution-file engine: locating a
// solution container on disk, parsing its textual structure into a
// model.SolutionFile, and resolving solution filter (.slnf) files.
//
// Key responsibilities:
//   - Locate exactly one solution file given a directory or explicit path
//   - Parse the container line by line with a small state machine
//     (expect header → in body → done)
//   - Surface structural corruption as typed FormatError values
//   - Load JSONC-tolerant .slnf filter files and apply them to a listing
//
// All filesystem access goes through an injected afero.Fs so that tests
// can simulate missing, ambiguous, and read-only filesystem states
// without touching real directories. The engine is strictly read-only:
// nothing in this package ever opens a file for writing.
package solution
