package lexer

import (
	"eslex/internal/charclass"
	"eslex/internal/token"
)

// scanIdentOrReserved сканирует идентификатор и сверяет его с таблицей
// зарезервированных слов. Совпадение только точное и регистрозависимое.
// Escape-последовательности в идентификаторах не поддерживаются.
func (lx *Lexer) scanIdentOrReserved() token.Token {
	lx.sb.Reset()
	ch, _ := lx.rd.Current()
	lx.take(ch)
	for {
		ch, ok := lx.rd.Current()
		if !ok || !charclass.IsIdentifierContinue(ch) {
			break
		}
		lx.take(ch)
	}

	text := lx.sb.String()
	if w, ok := lx.reserved.Lookup(text); ok {
		tok := lx.emit(token.Reserved)
		tok.Word = w
		return tok
	}
	tok := lx.emit(token.Ident)
	tok.Text = text
	return tok
}
