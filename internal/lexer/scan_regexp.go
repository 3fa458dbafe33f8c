package lexer

import (
	"eslex/internal/charclass"
	"eslex/internal/token"
)

// scanRegExp scans /body/ in a non-operator position. The payload is the body
// without slashes. Inside [...] a '/' does not terminate; a backslash copies
// the next rune as is. Flags are left for the consumer.
func (lx *Lexer) scanRegExp() (token.Token, error) {
	lx.rd.Advance()
	lx.sb.Reset()
	inClass := false
	for {
		ch, ok := lx.rd.Current()
		switch {
		case !ok:
			return token.Token{}, lx.errEOF()
		case charclass.IsLineTerminator(ch):
			return token.Token{}, lx.errChar(UnexpectedChar, ch)
		case ch == '\\':
			lx.take(ch)
			esc, ok := lx.rd.Current()
			if !ok {
				return token.Token{}, lx.errEOF()
			}
			if charclass.IsLineTerminator(esc) {
				return token.Token{}, lx.errChar(UnexpectedChar, esc)
			}
			lx.take(esc)
		case ch == '/' && !inClass:
			lx.rd.Advance()
			return lx.emitText(token.RegExp), nil
		default:
			switch ch {
			case '[':
				inClass = true
			case ']':
				inClass = false
			}
			lx.take(ch)
		}
	}
}
