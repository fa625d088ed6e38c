package lexer

import (
	"fmt"

	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// IllegalTransitionError reports a character the current state has no
// transition for. Table holds the tokens emitted before the failure.
type IllegalTransitionError struct {
	State  State
	Lexeme string
	Char   rune
	Table  []token.Token
}

// AtEndOfInput reports whether the failure was caused by flushing at EOF.
func (e *IllegalTransitionError) AtEndOfInput() bool {
	return e.Char == endOfInput
}

func (e *IllegalTransitionError) Error() string {
	if e.AtEndOfInput() {
		return fmt.Sprintf("error processing lexeme %q at state %s, end of input", e.Lexeme, e.State)
	}
	return fmt.Sprintf("error processing lexeme %q at state %s, char %q", e.Lexeme, e.State, e.Char)
}
