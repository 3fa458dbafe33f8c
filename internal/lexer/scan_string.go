package lexer

import (
	"eslex/internal/charclass"
	"eslex/internal/token"
)

// scanString scans a '...' or "..." literal. The payload is the body without
// quotes; escapes are copied verbatim with their backslash.
func (lx *Lexer) scanString(quote rune) (token.Token, error) {
	lx.rd.Advance()
	lx.sb.Reset()
	for {
		ch, ok := lx.rd.Current()
		switch {
		case !ok:
			return token.Token{}, lx.errEOF()
		case ch == quote:
			lx.rd.Advance()
			return lx.emitText(token.String), nil
		case ch == '\\':
			if err := lx.scanEscape(); err != nil {
				return token.Token{}, err
			}
		case charclass.IsLineTerminator(ch):
			return token.Token{}, lx.errChar(UnexpectedChar, ch)
		default:
			lx.take(ch)
		}
	}
}

// scanEscape copies one escape sequence starting at the backslash.
func (lx *Lexer) scanEscape() error {
	lx.take('\\')
	ch, ok := lx.rd.Current()
	if !ok {
		return lx.errEOF()
	}
	switch {
	case ch == '0':
		// \0 и до двух цифр следом; значение не проверяем
		lx.take(ch)
		for range 2 {
			d, ok := lx.rd.Current()
			if !ok || !charclass.IsDecimalDigit(d) {
				break
			}
			lx.take(d)
		}
		return nil
	case charclass.IsSingleEscapeChar(ch):
		lx.take(ch)
		return nil
	case ch == 'x':
		lx.take(ch)
		return lx.copyHexDigits(2)
	case ch == 'u':
		lx.take(ch)
		if next, ok := lx.rd.Current(); ok && next == '{' {
			lx.take(next)
			return lx.copyBracedHex()
		}
		return lx.copyHexDigits(4)
	case ch == '\r':
		// продолжение строки, \r\n сохраняется целиком
		lx.take(ch)
		if next, ok := lx.rd.Current(); ok && next == '\n' {
			lx.take(next)
		}
		return nil
	default:
		lx.take(ch)
		return nil
	}
}

func (lx *Lexer) copyHexDigits(n int) error {
	for range n {
		ch, ok := lx.rd.Current()
		if !ok {
			return lx.errEOF()
		}
		if !charclass.IsHexDigit(ch) {
			return lx.errChar(InvalidDigit, ch)
		}
		lx.take(ch)
	}
	return nil
}

// copyBracedHex copies hex+ '}' after "\u{". The digit count is unbounded.
func (lx *Lexer) copyBracedHex() error {
	if err := lx.copyHexDigits(1); err != nil {
		return err
	}
	for {
		ch, ok := lx.rd.Current()
		switch {
		case !ok:
			return lx.errEOF()
		case ch == '}':
			lx.take(ch)
			return nil
		case charclass.IsHexDigit(ch):
			lx.take(ch)
		default:
			return lx.errChar(InvalidDigit, ch)
		}
	}
}
