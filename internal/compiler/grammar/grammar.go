package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
)

// Program is a sequence of read, write and assignment statements.
type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Read   *Read   `  @@`
	Write  *Write  `| @@`
	Assign *Assign `| @@`
}

type Read struct {
	Target string `"read" @Ident`
}

type Write struct {
	Value *Expr `"write" "(" @@ ")"`
}

type Assign struct {
	Target string `@Ident ":="`
	Value  *Expr  `@@`
}

// Expr is a sum of terms, evaluated left to right.
type Expr struct {
	Left *Term     `@@`
	Rest []*OpTerm `@@*`
}

type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Left *Factor     `@@`
	Rest []*OpFactor `@@*`
}

type OpFactor struct {
	Op     string  `@("*" | "/")`
	Factor *Factor `@@`
}

type Factor struct {
	Number *string `  @Number`
	Ident  *string `| @Ident`
	Sub    *Expr   `| "(" @@ ")"`
}

// NewParser builds a participle parser that tokenizes with the DFA.
func NewParser(opts ...lexer.Option) (*participle.Parser[Program], error) {
	return participle.Build[Program](participle.Lexer(NewDefinition(opts...)))
}

// Parse tokenizes and parses src in one go.
func Parse(filename, src string, opts ...lexer.Option) (*Program, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseString(filename, src)
}

func (p *Program) String() string {
	var out strings.Builder
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (s *Statement) String() string {
	switch {
	case s.Read != nil:
		return "read " + s.Read.Target
	case s.Write != nil:
		return "write(" + s.Write.Value.String() + ")"
	case s.Assign != nil:
		return s.Assign.Target + " := " + s.Assign.Value.String()
	}
	return ""
}

func (e *Expr) String() string {
	out := e.Left.String()
	for _, r := range e.Rest {
		out += " " + r.Op + " " + r.Term.String()
	}
	return out
}

func (t *Term) String() string {
	out := t.Left.String()
	for _, r := range t.Rest {
		out += " " + r.Op + " " + r.Factor.String()
	}
	return out
}

func (f *Factor) String() string {
	switch {
	case f.Number != nil:
		return *f.Number
	case f.Ident != nil:
		return *f.Ident
	case f.Sub != nil:
		return "(" + f.Sub.String() + ")"
	}
	return ""
}
