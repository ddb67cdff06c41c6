// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the whole evaluation pipeline (lexer -> postfix -> eval). They
// guard against panics and check span invariants of tokens and errors.
//
// Не делает: генерацию корпусов, запись файлов.
package fuzztests
