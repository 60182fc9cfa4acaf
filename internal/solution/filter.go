package solution

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/sln/internal/model"
)

// FilterExt is the solution filter file extension. A filter references a
// solution file and names the subset of its projects a listing should
// be restricted to.
const FilterExt = ".slnf"

// Filter is a parsed solution filter file.
type Filter struct {
	// Path is the absolute path of the filter file itself.
	Path string

	// SolutionPath is the absolute path of the referenced solution,
	// resolved relative to the filter file's directory.
	SolutionPath string

	// Projects holds the filter's project paths, separator-agnostic.
	Projects []string
}

// rawFilter mirrors the on-disk JSON shape. Filter files are written by
// IDE tooling and may carry comments and trailing commas, so the bytes
// are run through jsonc before encoding/json sees them.
type rawFilter struct {
	Solution struct {
		Path     string   `json:"path"`
		Projects []string `json:"projects"`
	} `json:"solution"`
}

// IsFilterPath reports whether path names a solution filter file.
func IsFilterPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), FilterExt)
}

// LoadFilter reads and validates a solution filter file.
func LoadFilter(fs afero.Fs, path string) (*Filter, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &LocateError{Kind: LocateNotFound, Path: path}
	}

	var raw rawFilter
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, &FormatError{
			Path:   absolute(path),
			Reason: ReasonInvalidFilter,
			Detail: "File is not valid JSON: " + err.Error(),
		}
	}
	if raw.Solution.Path == "" {
		return nil, &FormatError{
			Path:   absolute(path),
			Reason: ReasonInvalidFilter,
			Detail: "Missing required solution path.",
		}
	}

	f := &Filter{Path: absolute(path)}
	slnPath := filepath.FromSlash(model.NormalizeSolutionPath(raw.Solution.Path))
	if filepath.IsAbs(slnPath) {
		f.SolutionPath = slnPath
	} else {
		f.SolutionPath = filepath.Join(filepath.Dir(f.Path), slnPath)
	}
	for _, p := range raw.Solution.Projects {
		f.Projects = append(f.Projects, model.NormalizeSolutionPath(p))
	}
	return f, nil
}

// Apply restricts a parsed solution to the filter's project set,
// preserving solution file order. Every filter entry must exist in the
// solution; a dangling entry fails with a FormatError naming it.
// Matching is separator-agnostic and case-insensitive, since filters
// are routinely authored on hosts with different path conventions.
func (f *Filter) Apply(sln *model.SolutionFile) (*model.SolutionFile, error) {
	wanted := make(map[string]bool, len(f.Projects))
	for _, p := range f.Projects {
		wanted[strings.ToLower(p)] = false
	}

	filtered := &model.SolutionFile{Path: sln.Path, Header: sln.Header}
	for i := range sln.Projects {
		key := strings.ToLower(sln.Projects[i].RelativePath)
		if _, ok := wanted[key]; ok {
			wanted[key] = true
			filtered.Projects = append(filtered.Projects, sln.Projects[i])
		}
	}

	for _, p := range f.Projects {
		if !wanted[strings.ToLower(p)] {
			return nil, &FormatError{
				Path:   f.Path,
				Reason: ReasonFilterProjectMissing,
				Detail: p,
			}
		}
	}

	return filtered, nil
}
