package lexer

import (
	"strings"

	"github.com/arnavsurve/tokdfa/internal/compiler/symbols"
	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// Scanner runs the automaton one character at a time. A Scanner is owned by
// a single caller for the length of one input.
type Scanner struct {
	state  State
	lexeme strings.Builder
	table  *symbols.Table
	err    *IllegalTransitionError

	flushAtEOF bool
}

type Option func(*Scanner)

// WithFlushAtEOF makes Finish close a pending token as if the input ended
// with a blank. Without it an unterminated trailing token is dropped.
func WithFlushAtEOF() Option {
	return func(s *Scanner) {
		s.flushAtEOF = true
	}
}

func New(opts ...Option) *Scanner {
	s := &Scanner{table: symbols.NewTable()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset discards all scanning progress but keeps the options.
func (s *Scanner) Reset() {
	s.state = StateStart
	s.lexeme.Reset()
	s.table = symbols.NewTable()
	s.err = nil
}

func (s *Scanner) State() State {
	return s.state
}

// Lexeme returns the characters buffered for the token in progress.
func (s *Scanner) Lexeme() string {
	return s.lexeme.String()
}

func (s *Scanner) Table() []token.Token {
	return s.table.Tokens()
}

// Feed consumes one character. After the first illegal transition every
// call returns the same error.
func (s *Scanner) Feed(ch rune) error {
	if s.err != nil {
		return s.err
	}
	return s.dispatch(ch)
}

// Finish ends the input and returns the token table.
func (s *Scanner) Finish() ([]token.Token, error) {
	if s.err != nil {
		return s.table.Tokens(), s.err
	}
	if s.flushAtEOF {
		if err := s.dispatch(endOfInput); err != nil {
			return s.table.Tokens(), err
		}
	}
	return s.table.Tokens(), nil
}

func (s *Scanner) dispatch(ch rune) error {
	t := step(s.state, ch)

	switch t.act {
	case actSkip:
		s.state = t.next
	case actBuffer:
		s.lexeme.WriteRune(ch)
		s.state = t.next
	case actEmit:
		s.emit(t.kind)
	case actEmitWith:
		s.lexeme.WriteRune(ch)
		s.emit(t.kind)
	case actEmitRedispatch:
		s.emit(t.kind)
		return s.dispatch(ch)
	case actFail:
		s.err = &IllegalTransitionError{
			State:  s.state,
			Lexeme: s.lexeme.String(),
			Char:   ch,
			Table:  s.table.Tokens(),
		}
		s.state = StateFailed
		return s.err
	}
	return nil
}

func (s *Scanner) emit(kind token.Kind) {
	s.table.Append(token.New(kind, s.lexeme.String()))
	s.lexeme.Reset()
	s.state = StateStart
}

// Scan tokenizes src with a fresh Scanner. On failure the tokens emitted
// before the illegal transition are returned alongside the error.
func Scan(src string, opts ...Option) ([]token.Token, error) {
	s := New(opts...)
	for _, ch := range src {
		if err := s.Feed(ch); err != nil {
			return s.Table(), err
		}
	}
	return s.Finish()
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isLetterOrDigit(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

func isBlank(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch rune) bool {
	return isBlank(ch) || ch == endOfInput
}

// isPunctuation reports characters that end a pending token and then start
// their own.
func isPunctuation(ch rune) bool {
	_, ok := operators[ch]
	return ok || ch == ':'
}
