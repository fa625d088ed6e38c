package grammar

import (
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// Symbol names used by the grammar tags, one per token kind.
var symbolNames = map[token.Kind]string{
	token.Keyword:    "Keyword",
	token.Identifier: "Ident",
	token.Number:     "Number",
	token.Assign:     "Assign",
	token.Plus:       "Plus",
	token.Minus:      "Minus",
	token.Times:      "Times",
	token.Div:        "Div",
	token.LParen:     "LParen",
	token.RParen:     "RParen",
}

// SymbolName returns the participle symbol for kind.
func SymbolName(kind token.Kind) string {
	return symbolNames[kind]
}

// Definition exposes the DFA tokenizer as a participle lexer definition.
type Definition struct {
	opts []lexer.Option
}

func NewDefinition(opts ...lexer.Option) *Definition {
	return &Definition{opts: opts}
}

func (d *Definition) Symbols() map[string]plexer.TokenType {
	syms := map[string]plexer.TokenType{"EOF": plexer.EOF}
	for i, kind := range token.Kinds {
		syms[symbolNames[kind]] = plexer.TokenType(i + 1)
	}
	return syms
}

func (d *Definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(src))
}

// LexString runs the whole scan up front. An illegal transition fails the
// lex before the parser sees any token.
func (d *Definition) LexString(filename string, src string) (plexer.Lexer, error) {
	toks, err := lexer.Scan(src, d.opts...)
	if err != nil {
		return nil, err
	}

	types := d.Symbols()
	out := make([]plexer.Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, plexer.Token{
			Type:  types[symbolNames[tok.Kind]],
			Value: tok.Lexeme,
			Pos:   plexer.Position{Filename: filename},
		})
	}
	return &tokenStream{filename: filename, tokens: out}, nil
}

type tokenStream struct {
	filename string
	tokens   []plexer.Token
	next     int
}

func (s *tokenStream) Next() (plexer.Token, error) {
	if s.next >= len(s.tokens) {
		return plexer.Token{Type: plexer.EOF, Pos: plexer.Position{Filename: s.filename}}, nil
	}
	tok := s.tokens[s.next]
	s.next++
	return tok, nil
}
