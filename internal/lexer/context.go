package lexer

// Context answers the two grammar questions the lexer cannot decide from
// characters alone. The lexer only reads it; the consumer updates it between
// ReadToken/PeekToken calls and never while a scan is in progress.
type Context interface {
	// IsOperatorPosition reports whether '/' starts a division operator
	// rather than a regular expression literal.
	IsOperatorPosition() bool
	// IsASIPossible reports whether a line terminator is significant.
	IsASIPossible() bool
}

// State is a plain Context whose flags the consumer sets directly.
// Share it by pointer between the consumer and the lexer.
type State struct {
	Operator bool
	ASI      bool
}

func (s *State) IsOperatorPosition() bool { return s.Operator }
func (s *State) IsASIPossible() bool      { return s.ASI }

func (s *State) SetOperator(v bool) { s.Operator = v }
func (s *State) SetASI(v bool)      { s.ASI = v }
