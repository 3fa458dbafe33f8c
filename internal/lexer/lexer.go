package lexer

import (
	"io"
	"iter"
	"strings"

	"eslex/internal/charclass"
	"eslex/internal/source"
	"eslex/internal/token"
	"eslex/internal/trace"
)

// Lexer is a pull-based tokenizer. It reads runes lazily and consults its
// Context to decide between division and regexp and whether a line break
// is a token. A Lexer is not safe for concurrent use.
type Lexer struct {
	rd       *Reader
	cx       Context
	opts     Options
	reserved token.ReservedTable
	look     lookahead

	sb    strings.Builder // payload текущего токена
	start source.Position // начало текущего токена

	stalled bool // последний scan упал, не прочитав ни одной руны

	tracer  trace.Tracer
	tracing bool // per-token events enabled

	err error // ошибка, остановившая All()
}

// New creates a lexer over r. A nil cx behaves like a zero State.
func New(r io.RuneReader, cx Context, opts Options) *Lexer {
	if cx == nil {
		cx = &State{}
	}
	reserved := opts.Reserved
	if reserved == nil {
		reserved = token.DefaultReserved()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Lexer{
		rd:       NewReader(r),
		cx:       cx,
		opts:     opts,
		reserved: reserved,
		tracer:   tracer,
		tracing:  tracer.Enabled() && tracer.Level().ShouldEmit(trace.ScopeToken, trace.KindPoint),
	}
}

// NewFromFile lexes the content of f and stamps its ID into spans.
func NewFromFile(f *source.File, cx Context, opts Options) *Lexer {
	opts.File = f.ID
	return New(f.Runes(), cx, opts)
}

// PeekToken returns the next token without consuming it.
// On error nothing is buffered.
func (lx *Lexer) PeekToken() (token.Token, error) {
	if lx.look.len() == 0 {
		tok, err := lx.next()
		if err != nil {
			return token.Token{}, err
		}
		if err := lx.look.push(tok); err != nil {
			return token.Token{}, err
		}
	}
	return lx.look.peek()
}

// ReadToken consumes and returns the next token, honoring pushed back tokens.
// After EOF it keeps returning EOF.
func (lx *Lexer) ReadToken() (token.Token, error) {
	if lx.look.len() == 0 {
		return lx.next()
	}
	return lx.look.read()
}

// UnreadToken pushes t back so the next Read/Peek returns it.
// At most three tokens may be outstanding.
func (lx *Lexer) UnreadToken(t token.Token) error {
	return lx.look.unread(t)
}

// All returns the remaining tokens up to, and excluding, EOF.
// Any error ends the sequence; Err reports it afterwards.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, err := lx.ReadToken()
			if err != nil {
				lx.err = err
				return
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Err returns the error that stopped the last All iteration, or nil.
func (lx *Lexer) Err() error {
	return lx.err
}

// Position returns the position of the next unread rune.
func (lx *Lexer) Position() source.Position {
	return lx.rd.Position()
}

// Skip discards the rune the last failed scan stopped on when that scan
// consumed nothing, so a caller that wants to keep going after an
// UnexpectedChar error can move past it. Otherwise repeated reads return
// the same error. Skip reports whether a rune was discarded.
func (lx *Lexer) Skip() bool {
	if !lx.stalled || lx.look.len() > 0 {
		return false
	}
	lx.stalled = false
	lx.rd.Advance()
	return true
}

func (lx *Lexer) next() (token.Token, error) {
	tok, err := lx.scan()
	if err != nil {
		_, more := lx.rd.Current()
		lx.stalled = more && lx.rd.Position() == lx.start
		lx.report(err)
		return token.Token{}, err
	}
	lx.stalled = false
	if lx.tracing {
		trace.Point(lx.tracer, trace.ScopeToken, trace.KindPoint, "token", tok.String(), map[string]string{
			"span": tok.Span.String(),
		})
	}
	return tok, nil
}

// scan produces exactly one token. Comments and transparent line breaks
// loop back to the whitespace skip.
func (lx *Lexer) scan() (token.Token, error) {
	for {
		lx.skipWhitespace()
		lx.start = lx.rd.Position()

		ch, ok := lx.rd.Current()
		if !ok {
			if err := lx.rd.Err(); err != nil {
				return token.Token{}, lx.errEOF()
			}
			return lx.emit(token.EOF), nil
		}

		switch {
		case ch == '/':
			switch next, _ := lx.rd.Lookahead(); next {
			case '/':
				lx.skipLineComment()
				continue
			case '*':
				if err := lx.skipBlockComment(); err != nil {
					return token.Token{}, err
				}
				continue
			}
			if lx.cx.IsOperatorPosition() {
				return lx.scanSlash(), nil
			}
			return lx.scanRegExp()

		case ch == '.':
			if next, ok := lx.rd.Lookahead(); ok && charclass.IsDecimalDigit(next) {
				return lx.scanNumber()
			}
			lx.rd.Advance()
			return lx.emit(token.Dot), nil

		case charclass.IsLineTerminator(ch):
			if !lx.cx.IsASIPossible() {
				lx.rd.Advance()
				continue
			}
			return lx.scanNewline(), nil

		case ch == '"' || ch == '\'':
			return lx.scanString(ch)

		case charclass.IsDecimalDigit(ch):
			return lx.scanNumber()

		case charclass.IsIdentifierStart(ch):
			return lx.scanIdentOrReserved(), nil

		default:
			return lx.scanOperatorOrPunct(ch)
		}
	}
}
