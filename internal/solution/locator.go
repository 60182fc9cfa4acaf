package solution

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Ext is the solution container file extension recognized during
// directory scans.
const Ext = ".sln"

// illegalPathChars can never appear in a resolvable path on the hosts we
// support. Paths containing them fail fast as LocateNotFound without a
// filesystem call; anything subtler still surfaces as LocateNotFound
// from the stat below, so callers see a single failure kind either way.
const illegalPathChars = "?*\"<>|\x00"

// Locator resolves a directory or explicit path to exactly one solution
// file. It performs read-only existence checks and directory scans on
// the injected filesystem and never mutates anything.
type Locator struct {
	fs afero.Fs
}

// NewLocator creates a Locator over the given filesystem. Production
// callers pass afero.NewOsFs(); tests pass a MemMapFs populated with the
// scenario under test.
func NewLocator(fs afero.Fs) *Locator {
	return &Locator{fs: fs}
}

// Locate resolves exactly one solution file.
//
// With an explicit path: the path must exist. A file is returned as-is
// (made absolute); a directory is scanned like searchDir below. A path
// that does not exist, or that contains characters that can never
// resolve, fails with LocateNotFound.
//
// With no explicit path: searchDir is scanned, non-recursively, for
// entries with the solution extension. Zero matches fail with
// LocateNoSolution, more than one with LocateAmbiguous; exactly one
// match resolves to its absolute path.
func (l *Locator) Locate(explicitPath, searchDir string) (string, error) {
	if explicitPath != "" {
		if strings.ContainsAny(filepath.Base(explicitPath), illegalPathChars) {
			return "", &LocateError{Kind: LocateNotFound, Path: explicitPath}
		}

		info, err := l.fs.Stat(explicitPath)
		if err != nil {
			return "", &LocateError{Kind: LocateNotFound, Path: explicitPath}
		}
		if info.IsDir() {
			return l.scan(explicitPath)
		}
		return absolute(explicitPath), nil
	}

	return l.scan(searchDir)
}

// scan looks for solution files directly inside dir. Subdirectories are
// not descended into.
func (l *Locator) scan(dir string) (string, error) {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return "", &LocateError{Kind: LocateNotFound, Path: dir}
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), Ext) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	switch len(matches) {
	case 0:
		return "", &LocateError{Kind: LocateNoSolution, Dir: dir}
	case 1:
		return absolute(matches[0]), nil
	default:
		return "", &LocateError{Kind: LocateAmbiguous, Dir: dir, Count: len(matches)}
	}
}

// absolute best-effort converts a path to absolute form. filepath.Abs
// only fails when the working directory is unavailable; the relative
// path is still usable in that case.
func absolute(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
