package lexer

import (
	"strings"

	"eslex/internal/token"
)

// punctStarts lists every rune that can begin an operator or punctuator
// handled by scanOperatorOrPunct.
const punctStarts = "{}[]();:,<>=!+-*%^&|~?"

// scanOperatorOrPunct: maximal munch по первому символу.
// An unknown character is reported as UnexpectedChar and left unread;
// see Lexer.Skip.
func (lx *Lexer) scanOperatorOrPunct(ch rune) (token.Token, error) {
	if !strings.ContainsRune(punctStarts, ch) {
		return token.Token{}, lx.errChar(UnexpectedChar, ch)
	}
	lx.rd.Advance()
	rd := lx.rd

	// pick возвращает withEq, если следом '=', иначе plain
	pick := func(plain, withEq token.Kind) token.Token {
		if rd.Eat('=') {
			return lx.emit(withEq)
		}
		return lx.emit(plain)
	}

	switch ch {
	case '{':
		return lx.emit(token.LBrace), nil
	case '}':
		return lx.emit(token.RBrace), nil
	case '[':
		return lx.emit(token.LBracket), nil
	case ']':
		return lx.emit(token.RBracket), nil
	case '(':
		return lx.emit(token.LParen), nil
	case ')':
		return lx.emit(token.RParen), nil
	case ';':
		return lx.emit(token.Semicolon), nil
	case ':':
		return lx.emit(token.Colon), nil
	case ',':
		return lx.emit(token.Comma), nil

	case '<':
		if rd.Eat('<') {
			return pick(token.Shl, token.ShlAssign), nil
		}
		return pick(token.Lt, token.LtEq), nil
	case '>':
		if rd.Eat('>') {
			if rd.Eat('>') {
				return pick(token.UShr, token.UShrAssign), nil
			}
			return pick(token.Shr, token.ShrAssign), nil
		}
		return pick(token.Gt, token.GtEq), nil

	case '=':
		if rd.Eat('=') {
			return pick(token.EqEq, token.EqEqEq), nil
		}
		return lx.emit(token.Assign), nil
	case '!':
		if rd.Eat('=') {
			return pick(token.BangEq, token.BangEqEq), nil
		}
		return lx.emit(token.Bang), nil

	case '+':
		if rd.Eat('+') {
			return lx.emit(token.PlusPlus), nil
		}
		return pick(token.Plus, token.PlusAssign), nil
	case '-':
		if rd.Eat('-') {
			return lx.emit(token.MinusMinus), nil
		}
		return pick(token.Minus, token.MinusAssign), nil

	case '*':
		return pick(token.Star, token.StarAssign), nil
	case '%':
		return pick(token.Percent, token.PercentAssign), nil
	case '^':
		return pick(token.Caret, token.CaretAssign), nil

	case '&':
		if rd.Eat('&') {
			return lx.emit(token.AndAnd), nil
		}
		return lx.emit(token.Amp), nil
	case '|':
		if rd.Eat('|') {
			return lx.emit(token.OrOr), nil
		}
		return lx.emit(token.Pipe), nil

	case '~':
		return lx.emit(token.Tilde), nil
	case '?':
		return lx.emit(token.Question), nil
	}

	// punctStarts разошёлся со switch
	return token.Token{}, &Error{Kind: UnexpectedChar, Char: ch, Pos: lx.start}
}

// scanSlash scans '/' or '/=' in operator position.
func (lx *Lexer) scanSlash() token.Token {
	lx.rd.Advance()
	if lx.rd.Eat('=') {
		return lx.emit(token.SlashAssign)
	}
	return lx.emit(token.Slash)
}
