package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/astdump"
)

func newCheckCommand(a *app) *cobra.Command {
	var opts queryOptions
	cmd := &cobra.Command{
		Use:   "check [flags] QUERY",
		Short: "Parse and validate query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd.Flags(), a.cfg)

			input, err := readQuery(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			q, err := parseQuery(cmd.Context(), opts, input)
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			if err := ast.Validate(q); err != nil {
				return errors.Wrap(err, "validate")
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s nodes, %d operations, %s input, fingerprint %016x\n",
				humanize.Comma(int64(ast.Count(q))),
				len(q.Operations),
				humanize.Bytes(uint64(len(input))),
				astdump.Fingerprint(q),
			)
			return err
		},
	}
	opts.Register(cmd.Flags())
	return cmd
}
