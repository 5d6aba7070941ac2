package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// app holds state shared by subcommands.
type app struct {
	configPath string
	cfg        Config
	lg         *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "qlast",
		Short: "qlast converts KQL and TraceQL queries into a unified AST",
		Example: heredoc.Doc(`
			qlast parse 'spans | where duration > 1s'
			qlast parse --lang traceql --format json '{ span.http.status_code = 500 }'
			qlast parse --lang multi '{ .env = "prod" } $$ << where name == "a" $$ where name == "b" >>'
			echo 'spans | project name' | qlast check -
		`),

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			lg, err := cfg.Log.Build()
			if err != nil {
				return errors.Wrap(err, "build logger")
			}
			a.cfg = cfg
			a.lg = lg
			cmd.SetContext(zctx.Base(cmd.Context(), lg))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.lg != nil {
				_ = a.lg.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file, defaults to qlast.yml if present")
	cmd.AddCommand(
		newParseCommand(a),
		newCheckCommand(a),
		newVersionCommand(),
	)
	return cmd
}

// queryOptions are flags shared by commands that parse a query.
type queryOptions struct {
	lang     Language
	parallel bool
}

func (opts *queryOptions) Register(set *pflag.FlagSet) {
	set.VarP(&opts.lang, "lang", "l", "Query language: kql, traceql or multi")
	set.BoolVar(&opts.parallel, "parallel", false, "Parse segments of a multi-segment query concurrently")
}

// resolve fills options not set by flags from config.
func (opts *queryOptions) resolve(set *pflag.FlagSet, cfg Config) {
	if !set.Changed("lang") {
		opts.lang = cfg.Language
	}
	if !set.Changed("parallel") {
		opts.parallel = cfg.Parallel
	}
}

func colorByDefault() bool {
	return os.Getenv("NO_COLOR") == "" &&
		os.Getenv("TERM") != "dumb" &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
