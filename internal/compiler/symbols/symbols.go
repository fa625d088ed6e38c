package symbols

import "github.com/arnavsurve/tokdfa/internal/compiler/token"

// Table is the ordered record of every token emitted during one scan.
// Entries are only ever appended.
type Table struct {
	entries []token.Token
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Append(tok token.Token) {
	t.entries = append(t.entries, tok)
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Tokens returns a copy so callers cannot rewrite recorded entries.
func (t *Table) Tokens() []token.Token {
	out := make([]token.Token, len(t.entries))
	copy(out, t.entries)
	return out
}
