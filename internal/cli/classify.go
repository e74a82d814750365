package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cardinalby/go-filter-argv/cmdargs"
	"github.com/cardinalby/go-filter-argv/internal/config"
	"github.com/cardinalby/go-filter-argv/internal/logging"
)

func newClassifyCommand() *cobra.Command {
	var kindLabel string

	cmd := &cobra.Command{
		Use:   "classify [--kind KIND] [--] [args...]",
		Short: "Print the kind of every argument",
		Long: `Print the kind of every argument: lonely-dashes, assignment-flag,
assignment-normal, flag or normal.`,
		Example: `  filterargv classify -- - --a=b a=b --flag plain
  filterargv classify --kind flag -o json -- build -v --tags=netgo`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := logging.FromContext(cmd.Context())

			onlyKind := cmdargs.KindUnknown
			if kindLabel != "" {
				k, err := cmdargs.ParseKind(kindLabel)
				if err != nil {
					return &ExitError{Code: 2, Err: err}
				}
				onlyKind = k
			}

			res := make([]classifiedArg, 0, len(args))
			cmdargs.NewArgs(args).IterateTokens(func(token cmdargs.Token) bool {
				logger.Debug("argument classified",
					slog.Int("index", token.Index),
					slog.String("arg", token.Arg),
					slog.String("kind", token.Kind.String()),
				)
				if onlyKind == cmdargs.KindUnknown || token.Kind == onlyKind {
					res = append(res, classifiedArg{Arg: token.Arg, Kind: token.Kind.String()})
				}
				return true
			})

			return writeClassified(cmd.OutOrStdout(), cfg.Output, res)
		},
	}

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.StringVar(&kindLabel, "kind", "",
		"print only arguments of this kind: lonely-dashes, assignment-flag, assignment-normal, flag, normal")

	return cmd
}
