// list.go implements the "sln list" command: resolve a solution file,
// parse it, and print its project paths in file order.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/sln/internal/config"
	"github.com/mmr-tortoise/sln/internal/model"
	"github.com/mmr-tortoise/sln/internal/solution"
	"github.com/mmr-tortoise/sln/internal/telemetry"
)

// listingHeader is the first line of a non-empty listing. The underline
// printed beneath it always matches its length exactly.
const listingHeader = "Project(s)"

// noProjectsMessage is the sentinel printed for a solution with zero
// project entries. The zero-projects case is a successful query.
const noProjectsMessage = "No projects found in the solution."

// NewListCommand creates the "list" cobra command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [solution]",
		Short: "List all projects in a solution file",
		Long: `List the projects in a solution file, in declaration order.

With no argument, the working directory must contain exactly one
solution file. An explicit argument may be a solution file, a
directory containing one, or a solution filter (.slnf) file.

Examples:
  sln list
  sln list path/to/App.sln
  sln path/to/App.sln list
  sln list filters/backend.slnf`,

		Args: listArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			explicit := ""
			if len(args) == 1 {
				explicit = args[0]
			}
			return runList(cmd, explicit)
		},
	}
}

// listArgs accepts at most one positional argument. Extra arguments are
// a usage error, reported before the locator or parser ever engage.
func listArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return model.UsageError(fmt.Sprintf("Unrecognized command or argument %q.", args[1]))
	}
	return nil
}

// runList is the main logic for the list command. It is strictly
// read-only: one optional directory scan, one full-file read, one parse
// pass, one formatted write.
func runList(cmd *cobra.Command, explicit string) error {
	workDir, err := workingDir()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "could not determine the working directory", err)
	}

	cfg, err := config.Load(fsys, workDir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, err.Error(), err)
	}

	if cfg.TelemetryEnabled() {
		logTelemetry(telemetry.NewCollector(fsys).Collect())
	}

	parser := solution.NewParser(fsys, solution.ParseOptions{
		LenientProjects: !cfg.StrictProjects(),
	})

	explicitGiven := explicit != ""
	var sln *model.SolutionFile

	if explicitGiven && solution.IsFilterPath(explicit) {
		sln, err = listFromFilter(parser, explicit)
	} else {
		sln, err = listFromSolution(parser, explicit, workDir)
	}
	if err != nil {
		return asCLIError(err, explicitGiven)
	}

	writeListing(cmd.OutOrStdout(), sln)
	return nil
}

// listFromSolution resolves and parses a solution file or directory.
func listFromSolution(parser *solution.Parser, explicit, workDir string) (*model.SolutionFile, error) {
	path, err := solution.NewLocator(fsys).Locate(explicit, workDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved solution file", "path", path)

	return parser.Parse(path)
}

// listFromFilter resolves a .slnf file, parses the solution it
// references, and restricts the result to the filter's project set.
func listFromFilter(parser *solution.Parser, filterPath string) (*model.SolutionFile, error) {
	f, err := solution.LoadFilter(fsys, filterPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved solution filter", "path", f.Path, "solution", f.SolutionPath)

	sln, err := parser.Parse(f.SolutionPath)
	if err != nil {
		return nil, err
	}
	return f.Apply(sln)
}

// writeListing prints the project listing: header, dash underline of
// equal length, then each project path with the host separator, in
// declaration order. Solution folders are excluded; nothing is sorted
// or deduplicated beyond what the file itself guarantees.
func writeListing(w io.Writer, sln *model.SolutionFile) {
	paths := sln.ProjectPaths()
	if len(paths) == 0 {
		fmt.Fprintln(w, noProjectsMessage)
		return
	}

	fmt.Fprintln(w, listingHeader)
	fmt.Fprintln(w, strings.Repeat("-", len(listingHeader)))
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// asCLIError maps engine errors onto exit codes and the usage-printing
// policy. The rendered message is surfaced verbatim; usage text is added
// only when an explicitly passed path could not be resolved, since that
// is an invocation problem rather than a content problem.
func asCLIError(err error, explicitGiven bool) *model.CLIError {
	var locErr *solution.LocateError
	if errors.As(err, &locErr) {
		return &model.CLIError{
			Code:      model.ExitSolutionNotFound,
			Message:   locErr.Error(),
			Err:       err,
			ShowUsage: explicitGiven && locErr.Kind == solution.LocateNotFound,
		}
	}

	var fmtErr *solution.FormatError
	if errors.As(err, &fmtErr) {
		return &model.CLIError{
			Code:    model.ExitMalformedSolution,
			Message: fmtErr.Error(),
			Err:     err,
		}
	}

	return model.WrapCLIError(model.ExitGeneralError, err.Error(), err)
}

// logTelemetry emits the collected properties at debug level, keyed so
// --verbose output stays greppable. Collection only; nothing leaves the
// process.
func logTelemetry(props telemetry.Properties) {
	kv := make([]interface{}, 0, len(props)*2)
	for k, v := range props {
		kv = append(kv, k, v)
	}
	logger.Debug("telemetry properties", kv...)
}
