package solution

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/mmr-tortoise/sln/internal/model"
)

// headerToken is the required format banner. It must appear on the first
// non-blank line of a well-formed solution file.
const headerToken = "Microsoft Visual Studio Solution File, Format Version"

// projectLinePattern matches a complete project declaration:
//
//	Project("{TYPE-GUID}") = "Name", "Relative\Path.csproj", "{PROJECT-GUID}"
//
// A line that starts like a declaration but does not match is malformed —
// it is missing a required GUID or path field.
var projectLinePattern = regexp.MustCompile(
	`^Project\("\{([^}"]+)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"\{([^}"]+)\}"\s*$`)

// parseState drives the line classifier. Modeling the parse as an
// explicit state machine keeps malformed-input handling exhaustive:
// every line is classified exactly once relative to the current state.
type parseState int

const (
	// stateExpectHeader: nothing consumed yet except blank lines; the
	// next meaningful line must be the format banner.
	stateExpectHeader parseState = iota

	// stateInBody: the header was seen; project declarations are
	// collected and everything else is ignorable trailing metadata.
	stateInBody
)

// ParseOptions controls parser policy.
type ParseOptions struct {
	// LenientProjects skips malformed project-declaration lines instead
	// of failing the parse. The default (false) aborts with a
	// FormatError naming the offending line.
	LenientProjects bool
}

// Parser reads and validates solution container files.
type Parser struct {
	fs   afero.Fs
	opts ParseOptions
}

// NewParser creates a Parser over the given filesystem.
func NewParser(fs afero.Fs, opts ParseOptions) *Parser {
	return &Parser{fs: fs, opts: opts}
}

// Parse reads the file at path fully, validates its structure, and
// returns the in-memory SolutionFile. The file is opened strictly for
// reading, so filesystem-level read-only attributes never affect the
// result.
func (p *Parser) Parse(path string) (*model.SolutionFile, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, &LocateError{Kind: LocateNotFound, Path: path}
	}

	sln := &model.SolutionFile{Path: absolute(path)}
	state := stateExpectHeader

	lines := strings.Split(stripBOM(string(data)), "\n")
	for i, rawLine := range lines {
		line := strings.TrimRight(rawLine, "\r")
		trimmed := strings.TrimSpace(line)
		lineNo := i + 1

		switch state {
		case stateExpectHeader:
			if trimmed == "" {
				continue
			}
			if !strings.Contains(trimmed, headerToken) {
				return nil, &FormatError{Path: sln.Path, Reason: ReasonHeaderMissing, Line: lineNo}
			}
			sln.Header = trimmed
			state = stateInBody

		case stateInBody:
			if !strings.HasPrefix(trimmed, "Project(") {
				// Global sections, EndProject markers, comments and
				// version pragmas are tolerated trailing metadata.
				continue
			}
			entry, perr := parseProjectLine(trimmed, lineNo)
			if perr != nil {
				if p.opts.LenientProjects {
					continue
				}
				return nil, &FormatError{
					Path:   sln.Path,
					Reason: ReasonMalformedProject,
					Line:   lineNo,
					Detail: trimmed,
				}
			}
			sln.Projects = append(sln.Projects, *entry)
		}
	}

	if state == stateExpectHeader {
		// Empty or all-blank file: the header never appeared.
		return nil, &FormatError{Path: sln.Path, Reason: ReasonHeaderMissing, Line: len(lines)}
	}

	return sln, nil
}

// parseProjectLine extracts a ProjectEntry from a declaration line.
// Returns an error for any declaration missing its GUID or path fields.
func parseProjectLine(line string, lineNo int) (*model.ProjectEntry, error) {
	m := projectLinePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, errMalformedDeclaration
	}

	typeID, err := uuid.Parse(m[1])
	if err != nil {
		return nil, errMalformedDeclaration
	}
	projectID, err := uuid.Parse(m[4])
	if err != nil {
		return nil, errMalformedDeclaration
	}
	if m[3] == "" {
		return nil, errMalformedDeclaration
	}

	return &model.ProjectEntry{
		TypeID:       typeID,
		ProjectID:    projectID,
		Name:         m[2],
		RelativePath: model.NormalizeSolutionPath(m[3]),
		Line:         lineNo,
	}, nil
}

// errMalformedDeclaration is the internal sentinel for a declaration
// line that fails field extraction. It never escapes Parse; the caller
// converts it into a FormatError with path and line context.
var errMalformedDeclaration = &FormatError{Reason: ReasonMalformedProject}

// stripBOM removes a UTF-8 byte order mark. Solution files written by
// IDE tooling routinely start with one.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
