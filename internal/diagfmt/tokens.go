package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"lacon/internal/source"
	"lacon/internal/token"
)

// TokenOutput is the serialized shape of a token for json and msgpack.
type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Text    string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Literal *string     `json:"literal,omitempty" msgpack:"literal,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
	Line    uint32      `json:"line" msgpack:"line"`
	Col     uint32      `json:"col" msgpack:"col"`
	Flags   []string    `json:"flags,omitempty" msgpack:"flags,omitempty"`
	Leading []string    `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Unit    string      `json:"unit,omitempty" msgpack:"unit,omitempty"`
}

// BuildTokensOutput converts tokens up to and including EOF.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
			Line: tok.Pos.Line,
			Col:  tok.Pos.Col,
			Unit: tok.UnitSuffix(),
		}
		if tok.HasLiteral {
			lit := tok.Literal
			out.Literal = &lit
		}
		out.Flags = flagNames(tok)
		for _, trivia := range tok.Leading {
			out.Leading = append(out.Leading, trivia.Kind.String())
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

func flagNames(tok token.Token) []string {
	var out []string
	if tok.AtLineStart() {
		out = append(out, "at_line_start")
	}
	if tok.PrecededBySpace() {
		out = append(out, "preceded_by_space")
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-18s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		if tok.HasLiteral && tok.Literal != tok.Text {
			fmt.Fprintf(&b, " value=%q", tok.Literal)
		}
		if suffix := tok.UnitSuffix(); suffix != "" {
			fmt.Fprintf(&b, " unit=%s", suffix)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if flags := flagNames(tok); len(flags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(flags, " "))
		}
		if len(leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(leading, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(BuildTokensOutput(tokens))
}

// FileTokensOutput groups the tokens of one file in directory mode.
type FileTokensOutput struct {
	Path   string        `json:"path" msgpack:"path"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// FormatFileTokensJSON writes every file as one JSON array.
func FormatFileTokensJSON(w io.Writer, files []FileTokensOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}

// FormatFileTokensMsgpack writes every file as one msgpack array.
func FormatFileTokensMsgpack(w io.Writer, files []FileTokensOutput) error {
	return msgpack.NewEncoder(w).Encode(files)
}
