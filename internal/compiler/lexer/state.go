package lexer

import (
	"fmt"

	"github.com/arnavsurve/tokdfa/internal/compiler/token"
)

// State is a node of the tokenizer automaton.
type State int

const (
	StateStart State = iota

	// read, one state per consumed letter
	StateR1
	StateR2
	StateR3
	StateR4

	// write
	StateW1
	StateW2
	StateW3
	StateW4
	StateW5

	StateIdent
	StateInt
	StateDotSeen // digits followed by '.'
	StateLeadDot // '.' with no integer part, a digit must follow
	StateFrac
	StateColon

	StateFailed
)

var stateNames = [...]string{
	StateStart:   "START",
	StateR1:      "R1",
	StateR2:      "R2",
	StateR3:      "R3",
	StateR4:      "R4",
	StateW1:      "W1",
	StateW2:      "W2",
	StateW3:      "W3",
	StateW4:      "W4",
	StateW5:      "W5",
	StateIdent:   "IDENT",
	StateInt:     "INT",
	StateDotSeen: "DOT_SEEN",
	StateLeadDot: "LEAD_DOT",
	StateFrac:    "FRAC",
	StateColon:   "COLON",
	StateFailed:  "FAILED",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type action int

const (
	actSkip           action = iota // consume without buffering
	actBuffer                       // append to the lexeme and move on
	actEmit                         // emit the pending lexeme, the delimiter is dropped
	actEmitWith                     // append, then emit
	actEmitRedispatch               // emit the pending lexeme, then run the same char from START
	actFail
)

type transition struct {
	next State
	act  action
	kind token.Kind
}

// endOfInput is fed by Finish when flushing. It delimits like a blank.
const endOfInput rune = -1

var operators = map[rune]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Times,
	'/': token.Div,
	'(': token.LParen,
	')': token.RParen,
}

var fail = transition{next: StateFailed, act: actFail}

func buffer(next State) transition {
	return transition{next: next, act: actBuffer}
}

// step is the transition function. It never touches scanner state.
func step(s State, ch rune) transition {
	switch s {
	case StateStart:
		return fromStart(ch)

	case StateR1:
		return prefix(ch, 'e', StateR2)
	case StateR2:
		return prefix(ch, 'a', StateR3)
	case StateR3:
		return prefix(ch, 'd', StateR4)

	case StateW1:
		return prefix(ch, 'r', StateW2)
	case StateW2:
		return prefix(ch, 'i', StateW3)
	case StateW3:
		return prefix(ch, 't', StateW4)
	case StateW4:
		return prefix(ch, 'e', StateW5)

	case StateR4, StateW5:
		return word(ch, token.Keyword)
	case StateIdent:
		return word(ch, token.Identifier)

	case StateInt:
		if isDigit(ch) {
			return buffer(StateInt)
		}
		if ch == '.' {
			return buffer(StateDotSeen)
		}
		return number(ch)
	case StateDotSeen, StateFrac:
		if isDigit(ch) {
			return buffer(StateFrac)
		}
		return number(ch)
	case StateLeadDot:
		if isDigit(ch) {
			return buffer(StateFrac)
		}
		return fail

	case StateColon:
		if ch == '=' {
			return transition{next: StateStart, act: actEmitWith, kind: token.Assign}
		}
		return fail
	}
	return fail
}

func fromStart(ch rune) transition {
	switch {
	case ch == 'r':
		return buffer(StateR1)
	case ch == 'w':
		return buffer(StateW1)
	case isDigit(ch):
		return buffer(StateInt)
	case isLetterOrDigit(ch):
		return buffer(StateIdent)
	case ch == '.':
		return buffer(StateLeadDot)
	case ch == ':':
		return buffer(StateColon)
	case isDelimiter(ch):
		return transition{next: StateStart, act: actSkip}
	}
	if kind, ok := operators[ch]; ok {
		return transition{next: StateStart, act: actEmitWith, kind: kind}
	}
	return fail
}

// prefix handles the non-final keyword states: the expected letter moves
// toward the keyword, any other letter or digit turns the lexeme into an
// identifier. Nothing may end the token here.
func prefix(ch, want rune, next State) transition {
	if ch == want {
		return buffer(next)
	}
	if isLetterOrDigit(ch) {
		return buffer(StateIdent)
	}
	return fail
}

// word continues an identifier or closes a keyword/identifier as kind.
func word(ch rune, kind token.Kind) transition {
	if isLetterOrDigit(ch) {
		return buffer(StateIdent)
	}
	return accept(ch, kind)
}

func number(ch rune) transition {
	return accept(ch, token.Number)
}

func accept(ch rune, kind token.Kind) transition {
	if isDelimiter(ch) {
		return transition{next: StateStart, act: actEmit, kind: kind}
	}
	if isPunctuation(ch) {
		return transition{next: StateStart, act: actEmitRedispatch, kind: kind}
	}
	return fail
}
