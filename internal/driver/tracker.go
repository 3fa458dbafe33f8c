package driver

import (
	"eslex/internal/lexer"
	"eslex/internal/token"
)

// Tracker is a lexer.Context driven by the previous significant token.
// It is the usual heuristic for tokenizing without a parser: after something
// that ends an expression a '/' divides, otherwise it starts a regexp.
//
// Call Observe with every token returned by the lexer before asking for the
// next one.
type Tracker struct {
	st lexer.State
}

var _ lexer.Context = (*Tracker)(nil)

// NewTracker returns a tracker starting from the given flags
// (the state before the first token of a file).
func NewTracker(operator, asi bool) *Tracker {
	t := &Tracker{}
	t.set(operator, asi)
	return t
}

func (t *Tracker) IsOperatorPosition() bool { return t.st.IsOperatorPosition() }
func (t *Tracker) IsASIPossible() bool      { return t.st.IsASIPossible() }

func (t *Tracker) set(operator, asi bool) {
	t.st.SetOperator(operator)
	t.st.SetASI(asi)
}

// Observe updates the state after tok has been consumed.
// Line breaks and EOF leave the state as it was.
func (t *Tracker) Observe(tok token.Token) {
	switch tok.Kind {
	case token.Newline, token.EOF:
		return
	case token.Ident, token.DecimalInt, token.HexInt, token.OctalInt, token.Float, token.String, token.RegExp,
		token.RParen, token.RBracket, token.RBrace, token.PlusPlus, token.MinusMinus:
		t.set(true, true)
	case token.Reserved:
		t.set(endsExpression(tok.Word), endsStatement(tok.Word))
	default:
		t.set(false, false)
	}
}

// endsExpression: слова, после которых '/' означает деление.
func endsExpression(w token.Word) bool {
	switch w {
	case token.WordThis, token.WordSuper, token.WordNull, token.WordTrue, token.WordFalse:
		return true
	default:
		return false
	}
}

// endsStatement: слова, после которых перевод строки может завершить инструкцию.
func endsStatement(w token.Word) bool {
	if endsExpression(w) {
		return true
	}
	switch w {
	case token.WordBreak, token.WordContinue, token.WordReturn, token.WordThrow, token.WordYield, token.WordDebugger:
		return true
	default:
		return false
	}
}
