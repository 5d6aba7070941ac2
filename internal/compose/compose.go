// Package compose assembles multi-segment queries into a single AST query.
package compose

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/qlast/internal/ast"
	"github.com/go-faster/qlast/internal/kql/kqlconv"
)

// Parser parses a single segment into AST.
type Parser interface {
	Parse(input string) (*ast.Query, error)
}

// ParserFunc is a functional Parser.
type ParserFunc func(input string) (*ast.Query, error)

// Parse implements Parser.
func (f ParserFunc) Parse(input string) (*ast.Query, error) {
	return f(input)
}

// Options sets Composer options.
type Options struct {
	// Parser is a segment parser.
	//
	// Defaults to KQL parser.
	Parser Parser
	// Parallel enables concurrent segment parsing.
	//
	// Parser must be safe for concurrent use.
	Parallel bool
	// TracerProvider provides OpenTelemetry tracer for composer.
	TracerProvider trace.TracerProvider
}

func (o *Options) setDefaults() {
	if o.Parser == nil {
		o.Parser = kqlconv.Parser{}
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
}

// Composer parses multi-segment queries.
type Composer struct {
	parser   Parser
	parallel bool
	tracer   trace.Tracer
}

// NewComposer creates new Composer.
func NewComposer(opts Options) *Composer {
	opts.setDefaults()

	return &Composer{
		parser:   opts.Parser,
		parallel: opts.Parallel,
		tracer:   opts.TracerProvider.Tracer("compose.Composer"),
	}
}

// Compose splits input into segments, parses every segment and merges
// results into a single Filter.
//
// Trace segment becomes trace expression, span segments become span
// expressions combined with Any.
func (c *Composer) Compose(ctx context.Context, input string) (_ *ast.Query, rerr error) {
	ctx, span := c.tracer.Start(ctx, "compose.Compose", trace.WithAttributes(
		attribute.Int("compose.input_size", len(input)),
	))
	defer func() {
		if rerr != nil {
			span.RecordError(rerr)
		}
		span.End()
	}()

	segments, err := Split(input)
	if err != nil {
		return nil, errors.Wrap(err, "split")
	}
	span.SetAttributes(
		attribute.Bool("compose.has_trace", segments.HasTrace),
		attribute.Int("compose.spans", len(segments.Spans)),
	)
	zctx.From(ctx).Debug("Split query",
		zap.Bool("has_trace", segments.HasTrace),
		zap.Int("spans", len(segments.Spans)),
		zap.Bool("parallel", c.parallel),
	)

	var (
		traceExpr ast.Expression
		spanExprs = make([]ast.Expression, len(segments.Spans))
	)
	parse := func(ctx context.Context, idx int, text string) error {
		e, err := c.parseSegment(ctx, idx, text)
		if err != nil {
			return err
		}
		if idx < 0 {
			traceExpr = e
		} else {
			spanExprs[idx] = e
		}
		return nil
	}

	if c.parallel {
		grp, grpCtx := errgroup.WithContext(ctx)
		if segments.HasTrace {
			grp.Go(func() error {
				ctx := grpCtx
				return parse(ctx, -1, segments.Trace)
			})
		}
		for i, text := range segments.Spans {
			i, text := i, text
			grp.Go(func() error {
				ctx := grpCtx
				return parse(ctx, i, text)
			})
		}
		if err := grp.Wait(); err != nil {
			return nil, err
		}
	} else {
		if segments.HasTrace {
			if err := parse(ctx, -1, segments.Trace); err != nil {
				return nil, err
			}
		}
		for i, text := range segments.Spans {
			if err := parse(ctx, i, text); err != nil {
				return nil, err
			}
		}
	}

	var f *ast.Filter
	if !segments.HasTrace && len(spanExprs) > 0 {
		f, err = ast.NewSpanOnlyFilter(spanExprs, ast.CombinationAny, "")
	} else {
		// Empty span group without trace segment is a no-op filter.
		f, err = ast.NewCombinedFilter(traceExpr, spanExprs, ast.CombinationAny, "")
	}
	if err != nil {
		return nil, errors.Wrap(err, "build filter")
	}

	q := ast.NewQuery("")
	if err := q.Append(f); err != nil {
		return nil, err
	}
	return q, nil
}

func (c *Composer) parseSegment(ctx context.Context, idx int, text string) (ast.Expression, error) {
	q, err := c.parser.Parse(text)
	if err != nil {
		return nil, &SegmentError{Index: idx, Err: err}
	}
	e, err := extract(q)
	if err != nil {
		return nil, &SegmentError{Index: idx, Err: err}
	}
	if n := len(q.Operations); n > 1 {
		zctx.From(ctx).Debug("Segment operations ignored",
			zap.Int("segment", idx),
			zap.Int("ignored", n-1),
		)
	}
	return e, nil
}

// extract returns predicate of the first Filter.
func extract(q *ast.Query) (ast.Expression, error) {
	if len(q.Operations) == 0 {
		return nil, errors.New("segment has no operations")
	}
	f, ok := q.Operations[0].(*ast.Filter)
	if !ok {
		return nil, errors.Errorf("first operation must be a filter, got %s", q.Operations[0].Kind())
	}
	if f.TraceExpression != nil {
		return f.TraceExpression, nil
	}
	if sf := f.SpanFilter; sf != nil && len(sf.Expressions) == 1 {
		return sf.Expressions[0], nil
	}
	return nil, errors.New("filter has no single predicate")
}
