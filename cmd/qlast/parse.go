package main

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astdump"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		opts   queryOptions
		format Format
		color  bool
	)
	cmd := &cobra.Command{
		Use:   "parse [flags] QUERY",
		Short: "Parse query and print its AST",
		Long:  "Parse query and print its AST. Use - as QUERY to read it from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd.Flags(), a.cfg)
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}

			input, err := readQuery(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			q, err := parseQuery(cmd.Context(), opts, input)
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			if a.cfg.Validate {
				if err := ast.Validate(q); err != nil {
					return errors.Wrap(err, "validate")
				}
			}
			return render(cmd.OutOrStdout(), format, q, color)
		},
	}
	{
		flags := cmd.Flags()
		opts.Register(flags)
		flags.VarP(&format, "format", "f", "Output format: tree, json or dot")
		flags.BoolVar(&color, "color", colorByDefault(), "Enable color for tree output")
		errors.Must(true, cmd.RegisterFlagCompletionFunc("lang", cobra.FixedCompletions(
			languages,
			cobra.ShellCompDirectiveDefault,
		)))
		errors.Must(true, cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
			formats,
			cobra.ShellCompDirectiveDefault,
		)))
	}
	return cmd
}

func render(w io.Writer, format Format, q *ast.Query, color bool) error {
	switch format {
	case FormatTree:
		return astdump.WriteTree(w, q, color)
	case FormatJSON:
		return astdump.WriteJSON(w, q)
	case FormatDOT:
		return astdump.WriteDOT(w, q)
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
