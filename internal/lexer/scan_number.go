package lexer

import (
	"eslex/internal/charclass"
	"eslex/internal/token"
)

// scanNumber handles:
//   - .5, .5e3            leading-dot float
//   - 0x1F, 0X1f          hex, at least one digit
//   - 0o17, 0O17          explicit octal, at least one digit
//   - 017                 legacy octal, digits taken as-is
//   - 0                   zero; "0.5" is "0" followed by ".5"
//   - 12, 12., 12.5e-3    decimal int or float
//
// An exponent without a fractional part still makes the literal a float.
func (lx *Lexer) scanNumber() (token.Token, error) {
	ch, _ := lx.rd.Current()

	if ch == '.' {
		lx.rd.Advance()
		return lx.scanFloatTail("")
	}

	if ch == '0' {
		lx.rd.Advance()
		next, ok := lx.rd.Current()
		switch {
		case ok && (next == 'x' || next == 'X'):
			lx.rd.Advance()
			return lx.scanRadix(token.HexInt, next, charclass.IsHexDigit)
		case ok && (next == 'o' || next == 'O'):
			lx.rd.Advance()
			return lx.scanRadix(token.OctalInt, next, charclass.IsOctDigit)
		case ok && charclass.IsDecimalDigit(next):
			// legacy octal: цифры не проверяются на диапазон 0-7
			digits := lx.takeWhile(charclass.IsDecimalDigit)
			tok := lx.emit(token.OctalInt)
			tok.Text = digits
			return tok, nil
		default:
			tok := lx.emit(token.DecimalInt)
			tok.Text = "0"
			return tok, nil
		}
	}

	intPart := lx.takeWhile(charclass.IsDecimalDigit)
	if lx.rd.Eat('.') {
		return lx.scanFloatTail(intPart)
	}
	if ch, _ := lx.rd.Current(); ch == 'e' || ch == 'E' {
		exp, err := lx.scanExponent()
		if err != nil {
			return token.Token{}, err
		}
		tok := lx.emit(token.Float)
		tok.Float = token.FloatParts{Int: intPart, Exp: exp}
		return tok, nil
	}
	tok := lx.emit(token.DecimalInt)
	tok.Text = intPart
	return tok, nil
}

// scanFloatTail runs after the '.' was consumed.
func (lx *Lexer) scanFloatTail(intPart string) (token.Token, error) {
	frac := lx.takeWhile(charclass.IsDecimalDigit)
	var exp string
	if ch, _ := lx.rd.Current(); ch == 'e' || ch == 'E' {
		var err error
		if exp, err = lx.scanExponent(); err != nil {
			return token.Token{}, err
		}
	}
	tok := lx.emit(token.Float)
	tok.Float = token.FloatParts{Int: intPart, Frac: frac, Exp: exp}
	return tok, nil
}

// scanExponent reads [eE][+-]?digits and returns its text.
func (lx *Lexer) scanExponent() (string, error) {
	lx.sb.Reset()
	marker, _ := lx.rd.Current()
	lx.take(marker)
	if sign, ok := lx.rd.Current(); ok && (sign == '+' || sign == '-') {
		lx.take(sign)
	}
	if ch, ok := lx.rd.Current(); !ok || !charclass.IsDecimalDigit(ch) {
		return "", lx.errAtCurrent(UnexpectedChar)
	}
	for {
		ch, ok := lx.rd.Current()
		if !ok || !charclass.IsDecimalDigit(ch) {
			break
		}
		lx.take(ch)
	}
	return lx.sb.String(), nil
}

// scanRadix reads the digits after a 0x/0o marker.
func (lx *Lexer) scanRadix(kind token.Kind, flag rune, isDigit func(rune) bool) (token.Token, error) {
	if ch, ok := lx.rd.Current(); !ok || !isDigit(ch) {
		return token.Token{}, lx.errAtCurrent(InvalidDigit)
	}
	digits := lx.takeWhile(isDigit)
	tok := lx.emit(kind)
	tok.Flag = flag
	tok.Text = digits
	return tok, nil
}
