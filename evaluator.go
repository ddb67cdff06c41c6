package shunt

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"shunt/internal/config"
	"shunt/internal/diag"
	"shunt/internal/eval"
	"shunt/internal/lexer"
	"shunt/internal/observ"
	"shunt/internal/postfix"
	"shunt/internal/token"
	"shunt/internal/trace"
)

// Evaluator runs the pipeline under fixed limits. It holds no per-run state,
// so one Evaluator may serve any number of goroutines.
type Evaluator struct {
	limits config.Limits
	tracer trace.Tracer
}

type Option func(*Evaluator)

// WithTracer sends events to t instead of the tracer found in the run context.
func WithTracer(t trace.Tracer) Option {
	return func(e *Evaluator) { e.tracer = t }
}

func NewEvaluator(cfg config.Config, opts ...Option) *Evaluator {
	e := &Evaluator{limits: cfg.Limits}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is everything one run produced.
// Value is meaningful only when Run returns a nil error.
type Result struct {
	Value   float64
	Tokens  []Token
	Postfix []Token
	Timings observ.Report
}

// Run tokenizes, converts and evaluates input, stopping at the first error.
// Tokens, Postfix and Timings are filled for the stages that completed.
func (e *Evaluator) Run(ctx context.Context, input string) (Result, error) {
	tr := e.tracer
	if tr == nil {
		tr = trace.FromContext(ctx)
	}
	root := trace.Begin(tr, trace.ScopeCompute, "compute", 0).WithExtra("bytes", strconv.Itoa(len(input)))

	var res Result
	timer := observ.NewTimer()
	fail := func(stage string, sp *trace.Span, idx int, err error) (Result, error) {
		timer.End(idx, "failed")
		trace.Fail(tr, trace.ScopeStage, stage, err, sp.ID())
		sp.End("failed")
		root.End("failed")
		res.Timings = timer.Report()
		return res, err
	}

	if err := ctx.Err(); err != nil {
		root.End("canceled")
		return res, err
	}
	sp := trace.Begin(tr, trace.ScopeStage, observ.StageTokenize, root.ID())
	idx := timer.Begin(observ.StageTokenize)
	toks, err := lexer.Tokenize(input, lexer.Options{
		MaxInputBytes: e.limits.MaxInputBytes,
		Tracer:        tr,
		Parent:        sp.ID(),
	})
	if err != nil {
		return fail(observ.StageTokenize, sp, idx, err)
	}
	res.Tokens = toks
	note := fmt.Sprintf("tokens=%d", len(toks))
	timer.End(idx, note)
	sp.End(note)

	if err := ctx.Err(); err != nil {
		root.End("canceled")
		res.Timings = timer.Report()
		return res, err
	}
	sp = trace.Begin(tr, trace.ScopeStage, observ.StagePostfix, root.ID())
	idx = timer.Begin(observ.StagePostfix)
	post, err := postfix.Convert(toks, postfix.Options{
		MaxDepth: e.limits.MaxDepth,
		Tracer:   tr,
		Parent:   sp.ID(),
	})
	if err != nil {
		return fail(observ.StagePostfix, sp, idx, err)
	}
	res.Postfix = post
	note = token.Join(post)
	timer.End(idx, "")
	sp.End(note)

	if err := ctx.Err(); err != nil {
		root.End("canceled")
		res.Timings = timer.Report()
		return res, err
	}
	sp = trace.Begin(tr, trace.ScopeStage, observ.StageEvaluate, root.ID())
	idx = timer.Begin(observ.StageEvaluate)
	v, err := eval.Evaluate(post, eval.Options{Tracer: tr, Parent: sp.ID()})
	if err != nil {
		return fail(observ.StageEvaluate, sp, idx, err)
	}
	note = strconv.FormatFloat(v, 'g', -1, 64)
	timer.End(idx, "")
	sp.End(note)
	root.End(note)

	res.Value = v
	res.Timings = timer.Report()
	return res, nil
}

// CheckAll runs every input and collects the failures, tagged with the
// input's index, into a sorted bag. Inputs are evaluated in parallel, at
// most GOMAXPROCS at a time; each single run is still sequential.
func (e *Evaluator) CheckAll(ctx context.Context, inputs []string) *diag.Bag {
	errs := make([]error, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			_, errs[i] = e.Run(ctx, in)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never fail, errors are collected per input

	bag := diag.NewBag(len(inputs))
	for i, err := range errs {
		bag.AddError(i, err)
	}
	bag.Sort()
	return bag
}
