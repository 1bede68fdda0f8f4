// Package token defines lexical token kinds and trivia for availability
// specifications.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Availability labels (message, renamed, introduced, ...) and the
//     platform-agnostic markers (swift, _PackageDescription) are lexed as
//     plain identifiers. They are classified contextually by the parser,
//     never by the lexer.
//   - Leading trivia belongs to the token it precedes; trailing trivia runs
//     up to, but never across, the next newline. Concatenating
//     Leading+Text+Trailing over a token stream reproduces the input.
package token
