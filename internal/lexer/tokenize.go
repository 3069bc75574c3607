package lexer

import (
	"lacon/internal/source"
	"lacon/internal/token"
)

// Tokenize runs the lexer over the whole file and returns every token from
// BOF to EOF together with the recovered errors.
func Tokenize(file *source.File, opts Options) ([]token.Token, []Error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+2)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, lx.Errors()
}

// TokenizeString tokenizes src as a virtual file named "<string>".
func TokenizeString(src string, opts Options) ([]token.Token, []Error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<string>", []byte(src))
	return Tokenize(fs.Get(id), opts)
}
