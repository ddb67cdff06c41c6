package shunt_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shunt"
	"shunt/internal/config"
	"shunt/internal/diag"
	"shunt/internal/observ"
	"shunt/internal/token"
	"shunt/internal/trace"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2+2*3", 8},
		{"5*5+(2/2)", 26},
		{"50/(10*2)", 2.5},
		{"100 % 3 + 1", 2},
		{"(((2*3-5)))", 1},
		{".555", 0.555},
		{"100*100*(1/100)", 100},
		{"55+100*(2+2)", 455},
		{"-5", -5},
		{"-(5)", -5},
		{"+5", 5},
		{"-(-5)", 5},
		{"8-3-2", 3},
		{"64/4/2", 8},
		{"2*(-3)", -6},
		{"-2*3", -6},
		{"\t1 +\n 2 ", 3},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := shunt.Compute(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		input  string
		target error
		offset uint32
	}{
		{"--5", shunt.ErrUnexpectedOperator, 1},
		{"*5", shunt.ErrUnexpectedOperator, 0},
		{"2+", shunt.ErrInsufficientOperands, 1},
		{"(2+3", shunt.ErrMismatchedParentheses, 0},
		{"2+3)", shunt.ErrMismatchedParentheses, 3},
		{"", shunt.ErrEmptyExpression, 0},
		{"()", shunt.ErrEmptyExpression, 0},
		{"1.2.3", shunt.ErrMalformedNumber, 3},
		{"2 $ 3", shunt.ErrIllegalCharacter, 2},
		{"2 3", shunt.ErrExcessOperands, 2},
		{"2*-3", shunt.ErrInsufficientOperands, 1},
		{"2--3", shunt.ErrInsufficientOperands, 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := shunt.Compute(tt.input)
			require.ErrorIs(t, err, tt.target)
			assert.Zero(t, v)

			var se *shunt.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.offset, se.Offset())
		})
	}
}

func TestDivisionByZero(t *testing.T) {
	v, err := shunt.Compute("5/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = shunt.Compute("5%0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

var samples = []string{"0", "1", "2.5", ".5", "7", "12", "100", "3."}

func TestDeterminism(t *testing.T) {
	for _, in := range []string{"2+2*3", "5/0", "-(1.5*4)%7"} {
		a, errA := shunt.Compute(in)
		b, errB := shunt.Compute(in)
		assert.Equal(t, errA, errB)
		assert.Equal(t, a, b, in)
	}
}

func TestParenthesesRoundTrip(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, e := range []string{a + "+" + b, a + "*" + b, a + "-" + b, "-" + a + "%" + b} {
				want, wantErr := shunt.Compute(e)
				got, gotErr := shunt.Compute("(" + e + ")")
				assert.Equal(t, wantErr, gotErr, e)
				if math.IsNaN(want) {
					assert.True(t, math.IsNaN(got), e)
					continue
				}
				assert.Equal(t, want, got, e)
			}
		}
	}
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				mustEqual(t, a+"+"+b+"*"+c, a+"+("+b+"*"+c+")")
				mustEqual(t, a+"-"+b+"-"+c, "("+a+"-"+b+")-"+c)
				mustEqual(t, a+"*"+b+"-"+c, "("+a+"*"+b+")-"+c)
			}
		}
	}
}

func mustEqual(t *testing.T, lhs, rhs string) {
	t.Helper()
	l, err := shunt.Compute(lhs)
	require.NoError(t, err, lhs)
	r, err := shunt.Compute(rhs)
	require.NoError(t, err, rhs)
	assert.Equal(t, r, l, "%s vs %s", lhs, rhs)
}

func TestStagesIndependently(t *testing.T) {
	toks, err := shunt.Tokenize("2+2*3")
	require.NoError(t, err)
	require.Len(t, toks, 5)

	post, err := shunt.ToPostfix(toks)
	require.NoError(t, err)
	assert.Equal(t, "2 2 3 * +", token.Join(post))

	v, err := shunt.Evaluate(post)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

func TestRunResult(t *testing.T) {
	e := shunt.NewEvaluator(config.Default())
	res, err := e.Run(context.Background(), "2+2*3")
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Value)
	assert.Len(t, res.Tokens, 5)
	assert.Equal(t, "2 2 3 * +", token.Join(res.Postfix))
	require.Len(t, res.Timings.Stages, 3)
	_, ok := res.Timings.Lookup(observ.StageEvaluate)
	assert.True(t, ok)
}

func TestRunStopsAtFirstError(t *testing.T) {
	e := shunt.NewEvaluator(config.Default())
	res, err := e.Run(context.Background(), "2+")
	require.ErrorIs(t, err, diag.ErrInsufficientOperands)
	assert.Len(t, res.Tokens, 2)
	assert.Equal(t, "2 +", token.Join(res.Postfix))
	assert.Zero(t, res.Value)

	res, err = e.Run(context.Background(), "(2")
	require.ErrorIs(t, err, diag.ErrMismatchedParentheses)
	assert.Nil(t, res.Postfix)
	assert.Len(t, res.Timings.Stages, 2)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := shunt.NewEvaluator(config.Default()).Run(ctx, "1+1")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLimits(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.MaxInputBytes = 4
	cfg.Limits.MaxDepth = 2
	e := shunt.NewEvaluator(cfg)

	_, err := e.Run(context.Background(), "1+2+3")
	assert.ErrorIs(t, err, shunt.ErrInputTooLong)

	_, err = e.Run(context.Background(), "((1))")
	assert.ErrorIs(t, err, shunt.ErrInputTooLong)

	cfg.Limits.MaxInputBytes = 0
	e = shunt.NewEvaluator(cfg)
	_, err = e.Run(context.Background(), "(((1)))")
	assert.ErrorIs(t, err, shunt.ErrNestingTooDeep)

	v, err := e.Run(context.Background(), "((1))")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Value)
}

func TestRunTracesStages(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelStage)
	e := shunt.NewEvaluator(config.Default(), shunt.WithTracer(ring))
	_, err := e.Run(context.Background(), "2+2*3")
	require.NoError(t, err)

	var got []string
	for _, ev := range ring.Snapshot() {
		got = append(got, ev.Kind.String()+":"+ev.Name)
	}
	assert.Equal(t, []string{
		"begin:compute",
		"begin:tokenize", "end:tokenize",
		"begin:postfix", "end:postfix",
		"begin:evaluate", "end:evaluate",
		"end:compute",
	}, got)

	events := ring.Snapshot()
	last := events[len(events)-1]
	assert.Equal(t, "8", last.Detail)
	assert.Equal(t, "5", last.Extra["bytes"])
	assert.Equal(t, "tokens=5", events[2].Detail)
	assert.Equal(t, events[0].SpanID, events[1].ParentID)
}

func TestComputeContextTracer(t *testing.T) {
	ring := trace.NewRingTracer(8, trace.LevelError)
	ctx := trace.WithTracer(context.Background(), ring)
	_, err := shunt.ComputeContext(ctx, "(2+3")
	require.Error(t, err)

	events := ring.Snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, trace.KindError, events[0].Kind)
	assert.Equal(t, observ.StagePostfix, events[0].Name)
	assert.Contains(t, events[0].Detail, "SYN2006")
}

func TestCheckAll(t *testing.T) {
	e := shunt.NewEvaluator(config.Default())
	bag := e.CheckAll(context.Background(), []string{"$", "1+1", "(2", "2 3"})
	require.Equal(t, 3, bag.Len())

	items := bag.Items()
	assert.Equal(t, 0, items[0].Input)
	assert.Equal(t, diag.LexIllegalCharacter, items[0].Code)
	assert.Equal(t, 2, items[1].Input)
	assert.Equal(t, diag.SynMismatchedParentheses, items[1].Code)
	assert.Equal(t, 3, items[2].Input)
	assert.Equal(t, diag.EvalExcessOperands, items[2].Code)
}

func TestCheckAllKeepsInputIndexes(t *testing.T) {
	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = "1+1"
		if i%7 == 0 {
			inputs[i] = "1+"
		}
	}
	bag := shunt.NewEvaluator(config.Default()).CheckAll(context.Background(), inputs)
	require.Equal(t, 15, bag.Len())
	for n, d := range bag.Items() {
		assert.Equal(t, n*7, d.Input)
		assert.Equal(t, diag.EvalInsufficientOperands, d.Code)
	}
}

func TestComputeHasNoDefaultLimits(t *testing.T) {
	deep := strings.Repeat("(", 300) + "1+2" + strings.Repeat(")", 300)
	v, err := shunt.Compute(deep)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	wrapped, err := shunt.Compute("(" + deep + ")")
	require.NoError(t, err)
	assert.Equal(t, v, wrapped)

	long := strings.Repeat("1+", 40000) + "1"
	require.Greater(t, len(long), 64<<10)
	v, err = shunt.Compute(long)
	require.NoError(t, err)
	assert.Equal(t, 40001.0, v)

	wrapped, err = shunt.Compute("(" + long + ")")
	require.NoError(t, err)
	assert.Equal(t, v, wrapped)

	toks, err := shunt.Tokenize(deep)
	require.NoError(t, err)
	_, err = shunt.ToPostfix(toks)
	require.NoError(t, err)
}
