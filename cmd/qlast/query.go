package main

import (
	"context"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/compose"
	"github.com/go-faster/qlast/internal/kql/kqlconv"
	"github.com/go-faster/qlast/internal/traceql/traceqlconv"
)

// readQuery returns the query argument, reading stdin for "-".
func readQuery(arg string, stdin io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// detectParser picks the front end of a single segment.
func detectParser(segment string) compose.Parser {
	if strings.HasPrefix(strings.TrimSpace(segment), "{") {
		return traceqlconv.Parser{}
	}
	return kqlconv.Parser{}
}

func parseQuery(ctx context.Context, opts queryOptions, input string) (*ast.Query, error) {
	lg := zctx.From(ctx)
	lg.Debug("Parse query",
		zap.String("lang", string(opts.lang)),
		zap.Int("size", len(input)),
	)

	switch opts.lang {
	case LangKQL:
		return kqlconv.Parse(input)
	case LangTraceQL:
		return traceqlconv.Parse(input)
	case LangMulti:
		c := compose.NewComposer(compose.Options{
			Parser: compose.ParserFunc(func(segment string) (*ast.Query, error) {
				return detectParser(segment).Parse(segment)
			}),
			Parallel: opts.parallel,
		})
		return c.Compose(ctx, input)
	default:
		return nil, errors.Errorf("unknown language %q", opts.lang)
	}
}
