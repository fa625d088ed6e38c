package compiler

import (
	"fmt"
	"os"

	"github.com/arnavsurve/tokdfa/internal/compiler/grammar"
	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// TokenizeFile reads srcPath and returns its token table. On an illegal
// transition the partial table is returned with the error.
func TokenizeFile(srcPath string, opts ...lexer.Option) ([]token.Token, error) {
	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	toks, err := lexer.Scan(content, opts...)
	if err != nil {
		return toks, fmt.Errorf("%s: %w", srcPath, err)
	}
	return toks, nil
}

// CheckFile tokenizes and parses srcPath with the statement grammar.
func CheckFile(srcPath string, opts ...lexer.Option) (*grammar.Program, error) {
	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	prog, err := grammar.Parse(srcPath, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("parser errors: %w", err)
	}
	return prog, nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(b), nil
}
