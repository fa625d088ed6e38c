package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnavsurve/tokdfa/internal/compiler/lexer"
	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// Every file under testdata/good must tokenize and parse; every file under
// testdata/bad must stop on an illegal transition.

func TestGoodSources(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "good", "*.src"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no good test files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			toks, err := TokenizeFile(file)
			if err != nil {
				t.Fatalf("TokenizeFile() returned error: %v", err)
			}
			if len(toks) == 0 {
				t.Errorf("TokenizeFile() returned an empty table")
			}

			prog, err := CheckFile(file)
			if err != nil {
				t.Fatalf("CheckFile() returned error: %v", err)
			}
			if len(prog.Statements) == 0 {
				t.Errorf("CheckFile() returned no statements")
			}
		})
	}
}

func TestBadSources(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "bad", "*.src"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no bad test files found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			_, err := TokenizeFile(file)
			var ite *lexer.IllegalTransitionError
			if !errors.As(err, &ite) {
				t.Fatalf("TokenizeFile() expected *IllegalTransitionError, got=%v", err)
			}

			if _, err := CheckFile(file); err == nil {
				t.Errorf("CheckFile() expected an error, got none")
			}
		})
	}
}

func TestTokenizeFilePartialTable(t *testing.T) {
	toks, err := TokenizeFile(filepath.Join("testdata", "bad", "symbol.src"))
	if err == nil {
		t.Fatalf("expected an error for '%%'")
	}
	want := []token.Kind{token.Identifier, token.Assign, token.Identifier}
	if len(toks) != len(want) {
		t.Fatalf("partial table expected=%d tokens, got=%d", len(want), len(toks))
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token[%d] kind expected=%s, got=%s", i, kind, toks[i].Kind)
		}
	}
}

func TestTokenizeFileFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noeol.src")
	if err := os.WriteFile(path, []byte("write(x) y"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	toks, err := TokenizeFile(path)
	if err != nil {
		t.Fatalf("TokenizeFile() returned error: %v", err)
	}
	if len(toks) != 4 {
		t.Errorf("without flush expected=4 tokens, got=%d", len(toks))
	}

	toks, err = TokenizeFile(path, lexer.WithFlushAtEOF())
	if err != nil {
		t.Fatalf("TokenizeFile() with flush returned error: %v", err)
	}
	if len(toks) != 5 || toks[4].Lexeme != "y" {
		t.Errorf("with flush expected trailing identifier y, got=%v", toks)
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	if _, err := TokenizeFile(filepath.Join("testdata", "missing.src")); err == nil {
		t.Errorf("TokenizeFile() on a missing file expected an error")
	}
}
