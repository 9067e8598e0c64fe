// Package token defines lexical token kinds for the MiniJS compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - The reserved words true/false/null have dedicated kinds and are never
//     emitted as identifiers.
//   - Newline tokens appear only outside unmatched '(' / '[' nesting and
//     never directly after a token whose Kind.ContinuesLine() is true.
//   - Unary minus is not a lexical concern: the lexer never folds a sign
//     into NumberLit.
package token
