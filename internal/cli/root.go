// Package cli implements the cobra-based commands for the sln tool.
//
// Each subcommand lives in its own file within this package. This file
// defines the root command, global flags, argument normalization for the
// `sln <path> list` calling convention, and the translation of errors
// into stderr output and OS exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/sln/internal/model"
)

// verbose enables debug logging to stderr. Bound to the persistent
// --verbose flag on the root command.
var verbose bool

// fsys is the filesystem all commands operate on. Tests swap in a
// MemMapFs to simulate missing, ambiguous, and read-only states.
var fsys afero.Fs = afero.NewOsFs()

// workingDir resolves the directory solution discovery starts from.
// Swapped in tests to decouple from the test runner's cwd.
var workingDir = os.Getwd

// logger writes diagnostics to stderr. Stdout is reserved for command
// output. Debug messages appear only under --verbose.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.WarnLevel,
})

// Version, Commit, and Date are injected from the main package at build
// time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command. The
// root performs no action itself; functionality lives in subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sln",
		Short: "Query .NET solution files",
		Long: `sln inspects solution container files.

A solution file may be passed explicitly, before or after the
subcommand; otherwise the working directory is searched for exactly
one solution file.`,

		// Usage and error output are handled by renderError so that
		// usage text appears only for argument-shape failures.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},

		// The root command is runnable and accepts arbitrary args so
		// that stray tokens surface as usage errors instead of cobra's
		// untyped "unknown command".
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return model.UsageError(fmt.Sprintf("Unrecognized command or argument %q.", args[0]))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewListCommand())

	return rootCmd
}

// NormalizeArgs rewrites the `sln <path> list` calling convention into
// `sln list <path>` so cobra's dispatch sees the subcommand first. Only
// a single leading non-flag token followed by a known subcommand name
// is moved; everything else passes through untouched.
func NormalizeArgs(rootCmd *cobra.Command, args []string) []string {
	if len(args) < 2 {
		return args
	}
	if strings.HasPrefix(args[0], "-") || isSubcommand(rootCmd, args[0]) {
		return args
	}
	if !isSubcommand(rootCmd, args[1]) {
		return args
	}

	rewritten := make([]string, 0, len(args))
	rewritten = append(rewritten, args[1], args[0])
	rewritten = append(rewritten, args[2:]...)
	return rewritten
}

// isSubcommand reports whether name matches a registered subcommand or
// one of its aliases.
func isSubcommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return false
}

// Execute runs the root command and terminates the process with the
// appropriate exit code. This is the entry point called from main.
func Execute(rootCmd *cobra.Command) {
	rootCmd.SetArgs(NormalizeArgs(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(int(renderError(os.Stderr, rootCmd, err)))
	}
}

// renderError writes the single-line failure message, followed by usage
// text when the failure is a usage error, and returns the exit code.
func renderError(w io.Writer, rootCmd *cobra.Command, err error) model.ExitCode {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		fmt.Fprintln(w, cliErr.Message)
		if cliErr.ShowUsage {
			fmt.Fprint(w, rootCmd.UsageString())
		}
		return cliErr.Code
	}

	// Flag parse failures and other cobra-raised errors are
	// argument-shape problems: show usage.
	fmt.Fprintln(w, err.Error())
	fmt.Fprint(w, rootCmd.UsageString())
	return model.ExitUsage
}
