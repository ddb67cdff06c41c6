package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexIllegalCharacter   Code = 1001
	LexMalformedNumber    Code = 1004
	LexInputTooLong       Code = 1005
	LexUnexpectedOperator Code = 1006

	// Конвертер (shunting-yard)
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynMismatchedParentheses Code = 2006
	SynNestingTooDeep        Code = 2030

	// Вычисление
	EvalInfo                 Code = 3000
	EvalInsufficientOperands Code = 3001
	EvalExcessOperands       Code = 3002
	EvalEmptyExpression      Code = 3003
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexical information",
	LexIllegalCharacter:      "Illegal character",
	LexMalformedNumber:       "Malformed number",
	LexInputTooLong:          "Input too long",
	LexUnexpectedOperator:    "Unexpected operator",
	SynInfo:                  "Syntax information",
	SynUnexpectedToken:       "Unexpected token",
	SynMismatchedParentheses: "Mismatched parentheses",
	SynNestingTooDeep:        "Nesting too deep",
	EvalInfo:                 "Evaluation information",
	EvalInsufficientOperands: "Insufficient operands",
	EvalExcessOperands:       "Excess operands",
	EvalEmptyExpression:      "Empty expression",
}

// Stage tells which pipeline stage owns a code.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageParse
	StageEval
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageEval:
		return "eval"
	}
	return "unknown"
}

// Stage reports whether the code is a parse error (tokenizer or converter)
// or an evaluation error.
func (c Code) Stage() Stage {
	switch ic := int(c); {
	case ic >= 1000 && ic < 3000:
		return StageParse
	case ic >= 3000 && ic < 4000:
		return StageEval
	}
	return StageUnknown
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
