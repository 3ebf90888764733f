// Package root provides the aocgen root command, which performs the
// day scaffold itself.
package root

import (
	"fmt"

	configcmd "github.com/aockit/aocgen/internal/cmd/config"
	versioncmd "github.com/aockit/aocgen/internal/cmd/version"
	"github.com/aockit/aocgen/internal/cmdutil"
	"github.com/aockit/aocgen/internal/config"
	"github.com/aockit/aocgen/internal/iostreams"
	"github.com/aockit/aocgen/internal/logger"
	"github.com/aockit/aocgen/internal/scaffold"
	"github.com/spf13/cobra"
)

// ScaffoldOptions contains the options for the default scaffold run.
type ScaffoldOptions struct {
	IOStreams *iostreams.IOStreams
	Layout    func() (*config.Layout, error)
	WorkDir   string

	Day     string
	File    string
	Starter bool
	DryRun  bool
}

// NewCmdRoot creates the root command for the aocgen CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	opts := &ScaffoldOptions{
		IOStreams: f.IOStreams,
		Layout:    f.Layout,
	}
	var debug bool

	cmd := &cobra.Command{
		Use:   "aocgen -d <day> -f <name>",
		Short: "Scaffold directories and placeholder files for an Advent of Code day",
		Long: `Aocgen prepares the skeleton for one day of an Advent of Code
solutions repository: an input data directory with empty input.txt and
test_input.txt placeholders, and a solution directory with an empty
source file.

Defaults match the advent_of_code_2023 repository layout; override the
roots and extension with flags or AOCGEN_* environment variables.`,
		Example: `  # Scaffold day 5 with an empty solution.py
  aocgen -d 5 -f solution

  # Day and file tokens are used verbatim
  aocgen -d 05b -f part2

  # Seed the new file with a Python starter stub
  aocgen -d 7 -f trebuchet --starter

  # Target a different solutions tree
  aocgen -d 3 -f main --solutions-root aoc2024 --ext go`,
		// The original shell script ignored options it did not recognize;
		// keep that contract for flags and stray arguments alike.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(debug)
			f.Debug = debug

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("aocgen starting")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.WorkDir = f.WorkDir
			return scaffoldRun(opts)
		},
		Version: f.Version,
	}

	cmd.Flags().StringVarP(&opts.Day, "day", "d", "", "Day identifier used verbatim in day_<day> directory names")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Base name of the created solution source file")
	cmd.Flags().BoolVar(&opts.Starter, "starter", false, "Seed a freshly created Python solution file with a starter stub")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the planned operations without touching the filesystem")
	cmd.Flags().String("data-root", config.DefaultDataRoot, "Directory that holds per-day puzzle inputs")
	cmd.Flags().String("solutions-root", config.DefaultSolutionsRoot, "Directory that holds per-day solution sources")
	cmd.Flags().String("ext", config.DefaultExtension, "Extension of the created solution file")

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Version template
	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate) + "\n")

	if err := f.LayoutResolver().BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

func scaffoldRun(opts *ScaffoldOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	// Presence check happens before any filesystem work so the failure
	// path leaves no partial state behind.
	if opts.Day == "" || opts.File == "" {
		fmt.Fprintln(ios.ErrOut, "Missing -d or -f")
		return cmdutil.SilentError
	}

	layout, err := opts.Layout()
	if err != nil {
		return err
	}

	fmt.Fprintf(ios.Out, "Prepping for day number: %s\n", opts.Day)

	s := scaffold.New(layout, opts.WorkDir)

	if opts.DryRun {
		for _, op := range s.Plan(opts.Day, opts.File) {
			fmt.Fprintf(ios.Out, "%s %s\n", op.Kind, op.Path)
		}
		return nil
	}

	report := s.Run(opts.Day, opts.File)

	for _, failure := range report.Failures {
		fmt.Fprintf(ios.ErrOut, "%s %v\n", cs.WarningIcon(), failure)
	}

	if opts.Starter {
		writeStarter(opts, s, report)
	}

	logger.Debug().
		Int("dirs", len(report.Dirs)).
		Int("files", len(report.Files)).
		Int("failures", len(report.Failures)).
		Msg("scaffold complete")

	return nil
}

// writeStarter seeds the solution file when this run created it. An existing
// file keeps its content — the same touch semantics as the placeholders.
func writeStarter(opts *ScaffoldOptions, s *scaffold.Scaffolder, report *scaffold.Report) {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	if !report.CreatedFresh(s.SolutionFile(opts.Day, opts.File)) {
		logger.Debug().Msg("solution file already existed; starter stub skipped")
		return
	}

	if err := s.WriteStarter(opts.Day, opts.File); err != nil {
		logger.Warn().Err(err).Msg("failed to write starter stub")
		fmt.Fprintf(ios.ErrOut, "%s starter stub not written: %v\n", cs.WarningIcon(), err)
	}
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(debug bool) {
	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to resolve logs directory")
		return
	}

	if err := logger.InitWithFile(debug, logsDir, logger.DefaultLoggingConfig()); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
