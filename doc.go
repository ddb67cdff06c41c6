// Package shunt evaluates arithmetic expressions.
//
// An expression holds decimal numbers, the binary operators + - * / %,
// unary + and -, and parentheses:
//
//	v, err := shunt.Compute("5*5+(2/2)") // 26
//
// Evaluation runs in three stages: the tokenizer splits the text and tells
// unary from binary minus, a shunting-yard pass reorders tokens into postfix
// form, and a stack machine folds the postfix sequence into a float64.
// Each stage is available on its own through Tokenize, ToPostfix and Evaluate.
//
// Errors are *Error values carrying a code and the byte span of the
// offending text; match them with errors.Is against the diag sentinels
// re-exported here (ErrMismatchedParentheses and friends).
//
// Division and remainder by zero are not errors: they give +Inf, -Inf or NaN.
package shunt
