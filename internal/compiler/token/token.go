package token

type Kind string

const (
	// Words
	Keyword    Kind = "KEYWORD"    // read, write
	Identifier Kind = "IDENTIFIER" // x, readiness
	Number     Kind = "NUMBER"     // 10, 3.14, 5.

	// Operators
	Assign Kind = "ASSIGN" // :=
	Plus   Kind = "PLUS"   // +
	Minus  Kind = "MINUS"  // -
	Times  Kind = "TIMES"  // *
	Div    Kind = "DIV"    // /

	// Punctuation
	LParen Kind = "LPAREN" // (
	RParen Kind = "RPAREN" // )
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{Keyword, Identifier, Number, Assign, Plus, Minus, Times, Div, LParen, RParen}

// CarriesValue reports whether tokens of this kind record a value.
// Operators and punctuation are fully described by their kind.
func (k Kind) CarriesValue() bool {
	return k == Keyword || k == Identifier || k == Number
}

type Token struct {
	Lexeme string  `json:"lexeme"`
	Kind   Kind    `json:"kind"`
	Value  *string `json:"value,omitempty"` // nil for operators and punctuation
}

// New builds a token for lexeme, filling Value when the kind carries one.
func New(kind Kind, lexeme string) Token {
	tok := Token{Lexeme: lexeme, Kind: kind}
	if kind.CarriesValue() {
		v := lexeme
		tok.Value = &v
	}
	return tok
}

func (t Token) HasValue() bool {
	return t.Value != nil
}

// Equal compares kind, lexeme and value contents.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind || t.Lexeme != o.Lexeme || t.HasValue() != o.HasValue() {
		return false
	}
	return !t.HasValue() || *t.Value == *o.Value
}

func (t Token) String() string {
	if t.HasValue() {
		return string(t.Kind) + "(" + *t.Value + ")"
	}
	return string(t.Kind) + " " + t.Lexeme
}
