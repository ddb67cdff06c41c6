// Package postfix converts an infix token sequence into postfix (reverse
// Polish) order with the shunting-yard algorithm.
//
// All supported binary operators are left-associative: on equal precedence
// the operator already on the stack is emitted first, so 8-3-2 becomes
// "8 3 - 2 -". Unary negation ('#') has the precedence of binary '+' and
// '-' and goes through the same pop loop, so "2*-3" becomes "2 * 3 #" and
// fails at evaluation; write "2*(-3)" instead.
//
// Parentheses are handled iteratively with the operator stack, so nesting
// depth is bounded by memory, not by the call stack.
package postfix
