package lexer

import (
	"eslex/internal/source"
	"eslex/internal/token"
)

// emit builds a token spanning from lx.start to the reader position.
func (lx *Lexer) emit(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: lx.spanFromStart()}
}

// emitText is emit with the accumulated payload as Text.
func (lx *Lexer) emitText(k token.Kind) token.Token {
	tok := lx.emit(k)
	tok.Text = lx.sb.String()
	return tok
}

func (lx *Lexer) spanFromStart() source.Span {
	return source.Span{File: lx.opts.File, Start: lx.start, End: lx.rd.Position()}
}

// take appends the current rune to the payload and advances.
func (lx *Lexer) take(ch rune) {
	lx.sb.WriteRune(ch)
	lx.rd.Advance()
}

// takeWhile copies runes into a fresh string while pred holds.
func (lx *Lexer) takeWhile(pred func(rune) bool) string {
	lx.sb.Reset()
	for {
		ch, ok := lx.rd.Current()
		if !ok || !pred(ch) {
			break
		}
		lx.take(ch)
	}
	return lx.sb.String()
}

// ===== Ошибки =====

// errEOF reports the end of input; a read failure takes precedence.
func (lx *Lexer) errEOF() error {
	if err := lx.rd.Err(); err != nil {
		return &Error{Kind: ReadFailure, Pos: lx.rd.Position(), Err: err}
	}
	return &Error{Kind: UnexpectedEOF, Pos: lx.rd.Position()}
}

func (lx *Lexer) errChar(kind ErrorKind, ch rune) error {
	return &Error{Kind: kind, Char: ch, Pos: lx.rd.Position()}
}

// errAtCurrent is errEOF at end of input, otherwise kind for the current rune.
func (lx *Lexer) errAtCurrent(kind ErrorKind) error {
	ch, ok := lx.rd.Current()
	if !ok {
		return lx.errEOF()
	}
	return lx.errChar(kind, ch)
}
