// Package cli implements the cobra command tree for filterargv.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	filterargv "github.com/cardinalby/go-filter-argv"
	"github.com/cardinalby/go-filter-argv/internal/config"
	"github.com/cardinalby/go-filter-argv/internal/logging"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it with os.Args, and returns the exit code.
func Execute() int {
	cmd := NewRootCommand()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}

		return 1
	}

	return 0
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile         string
		assignmentsOnly bool
		flagsOnly       bool
	)

	cmd := &cobra.Command{
		Use:   "filterargv [flags] [--] [args...]",
		Short: "Filter command-line arguments by their shape",
		Long: `filterargv classifies every argument as a flag ("-v", "--verbose"),
an assignment ("name=value", "--name=value"), lonely dashes ("-", "--")
or a standard argument, and prints only the arguments of the kinds
you choose to keep.

Flags of filterargv itself are read until the first positional argument
or "--", everything after that is filtered as is.`,
		Example: `  filterargv -- build --verbose -o out GOOS=linux
  filterargv --flags --standard-args=false -- build --verbose -o out
  filterargv --assignments=no-flags -o json -- --tags=netgo GOOS=linux main.go`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.New(cfg, cmd.ErrOrStderr())

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("configFile", cfg.ConfigFile),
				slog.String("output", cfg.Output),
			)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := logging.FromContext(cmd.Context())

			opts := cfg.Options
			switch {
			case assignmentsOnly:
				opts = filterargv.AssignmentArgsOnlyOptions()
			case flagsOnly:
				opts = filterargv.FlagArgsOnlyOptions()
			}

			logger.Debug("filtering arguments",
				slog.Int("count", len(args)),
				slog.Bool("keepLonelyDashes", opts.KeepLonelyDashes),
				slog.String("assignments", string(opts.Assignments)),
				slog.Bool("flags", opts.Flags),
				slog.Bool("standardArgs", opts.StandardArgs),
			)

			res, err := filterargv.Filter(args, opts)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger.Debug("arguments filtered",
				slog.Int("kept", len(res)),
				slog.Int("dropped", len(args)-len(res)),
			)

			return writeArgs(cmd.OutOrStdout(), cfg.Output, res)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .filterargv.yaml)")
	pf.StringP(config.KeyOutput, "o", config.OutputLines, "output format: lines, json, yaml")
	pf.String(config.KeyLogLevel, config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, config.LogFormatText, "log format: text, json")
	pf.BoolP(config.KeyQuiet, "q", false, "suppress non-essential output")

	f := cmd.Flags()
	f.SetInterspersed(false)
	flagOptions := filterargv.DefaultOptions()
	if err := config.RegisterOptionFlags(f, &flagOptions); err != nil {
		panic(err)
	}
	f.BoolVar(&assignmentsOnly, "assignments-only", false, "keep assignment arguments only")
	f.BoolVar(&flagsOnly, "flags-only", false, "keep flag arguments without values only")
	cmd.MarkFlagsMutuallyExclusive("assignments-only", "flags-only")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(
		newClassifyCommand(),
		newVersionCommand(),
	)

	return cmd
}
