package lexer

import (
	"eslex/internal/charclass"
	"eslex/internal/token"
)

// skipWhitespace skips insignificant whitespace. Line terminators are not whitespace.
func (lx *Lexer) skipWhitespace() {
	for {
		ch, ok := lx.rd.Current()
		if !ok || !charclass.IsWhitespace(ch) {
			return
		}
		lx.rd.Advance()
	}
}

// skipLineComment consumes "//..." up to, not including, the line terminator.
func (lx *Lexer) skipLineComment() {
	lx.rd.Advance()
	lx.rd.Advance()
	for {
		ch, ok := lx.rd.Current()
		if !ok || charclass.IsLineTerminator(ch) {
			return
		}
		lx.rd.Advance()
	}
}

// skipBlockComment consumes "/* ... */". Block comments do not nest.
func (lx *Lexer) skipBlockComment() error {
	lx.rd.Advance()
	lx.rd.Advance()
	for {
		ch, ok := lx.rd.Current()
		if !ok {
			return lx.errEOF()
		}
		if next, _ := lx.rd.Lookahead(); ch == '*' && next == '/' {
			lx.rd.Advance()
			lx.rd.Advance()
			return nil
		}
		lx.rd.Advance()
	}
}

// scanNewline emits one Newline for a run of line terminators, possibly
// separated by whitespace. The span ends after the last terminator.
func (lx *Lexer) scanNewline() token.Token {
	end := lx.rd.Position()
	for {
		ch, ok := lx.rd.Current()
		if !ok {
			break
		}
		if charclass.IsLineTerminator(ch) {
			lx.rd.Advance()
			end = lx.rd.Position()
			continue
		}
		if charclass.IsWhitespace(ch) {
			lx.rd.Advance()
			continue
		}
		break
	}
	tok := lx.emit(token.Newline)
	tok.Span.End = end
	return tok
}
