// Package token defines lexical token kinds, the token record and the
// keyword table of the Lacon language.
// Invariants:
//   - Token.Text is a slice of the file content; Span matches it exactly.
//   - Synthetic tokens (BOF, EOF, Indent, Dedent, Whitespace) have empty Text
//     and an empty Span at the point where they were produced.
//   - Unit kinds are contiguous and follow unit.Dimension order.
//   - Keywords are case-sensitive; several spellings may share a Kind
//     (var, let, variable).
package token
