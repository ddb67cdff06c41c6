package shunt

import (
	"context"

	"shunt/internal/config"
	"shunt/internal/diag"
	"shunt/internal/eval"
	"shunt/internal/lexer"
	"shunt/internal/postfix"
	"shunt/internal/token"
)

type (
	// Token is one lexical unit: a number, an operator or a parenthesis.
	Token = token.Token
	// Error is the error type returned by every stage.
	Error = diag.Error
)

var (
	ErrIllegalCharacter      = diag.ErrIllegalCharacter
	ErrMalformedNumber       = diag.ErrMalformedNumber
	ErrInputTooLong          = diag.ErrInputTooLong
	ErrUnexpectedOperator    = diag.ErrUnexpectedOperator
	ErrUnexpectedToken       = diag.ErrUnexpectedToken
	ErrMismatchedParentheses = diag.ErrMismatchedParentheses
	ErrNestingTooDeep        = diag.ErrNestingTooDeep
	ErrInsufficientOperands  = diag.ErrInsufficientOperands
	ErrExcessOperands        = diag.ErrExcessOperands
	ErrEmptyExpression       = diag.ErrEmptyExpression
)

var defaultEvaluator = NewEvaluator(config.Default())

// Compute evaluates input with no limits on length or nesting.
func Compute(input string) (float64, error) {
	return ComputeContext(context.Background(), input)
}

// ComputeContext is Compute with a context; a tracer attached with
// trace.WithTracer receives the evaluation events.
func ComputeContext(ctx context.Context, input string) (float64, error) {
	res, err := defaultEvaluator.Run(ctx, input)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// Tokenize runs the tokenizer alone.
func Tokenize(input string) ([]Token, error) {
	return lexer.Tokenize(input, lexer.Options{})
}

// ToPostfix reorders a token sequence into postfix order.
func ToPostfix(tokens []Token) ([]Token, error) {
	return postfix.Convert(tokens, postfix.Options{})
}

// Evaluate folds a postfix sequence into its value.
func Evaluate(postfix []Token) (float64, error) {
	return eval.Evaluate(postfix, eval.Options{})
}
