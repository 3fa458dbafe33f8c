package lexer

import (
	"errors"

	"eslex/internal/token"
)

// lookaheadCap bounds pushback: a consumer may hold at most this many tokens.
const lookaheadCap = 3

var (
	// ErrBufferBusy is returned by push when a token is already buffered.
	ErrBufferBusy = errors.New("lexer: lookahead buffer is not empty")
	// ErrBufferEmpty is returned by peek/read on an empty buffer.
	ErrBufferEmpty = errors.New("lexer: lookahead buffer is empty")
	// ErrPushbackFull is returned by UnreadToken when the buffer already holds three tokens.
	ErrPushbackFull = errors.New("lexer: too many unread tokens")
)

// lookahead is a fixed ring deque; head is the next token to read.
type lookahead struct {
	buf  [lookaheadCap]token.Token
	head int
	n    int
}

func (b *lookahead) len() int { return b.n }

// push appends a freshly scanned token. Only one token is ever scanned ahead.
func (b *lookahead) push(t token.Token) error {
	if b.n != 0 {
		return ErrBufferBusy
	}
	b.buf[(b.head+b.n)%lookaheadCap] = t
	b.n++
	return nil
}

func (b *lookahead) peek() (token.Token, error) {
	if b.n == 0 {
		return token.Token{}, ErrBufferEmpty
	}
	return b.buf[b.head], nil
}

func (b *lookahead) read() (token.Token, error) {
	if b.n == 0 {
		return token.Token{}, ErrBufferEmpty
	}
	t := b.buf[b.head]
	b.buf[b.head] = token.Token{}
	b.head = (b.head + 1) % lookaheadCap
	b.n--
	return t, nil
}

// unread puts t in front of everything buffered.
func (b *lookahead) unread(t token.Token) error {
	if b.n >= lookaheadCap {
		return ErrPushbackFull
	}
	b.head = (b.head + lookaheadCap - 1) % lookaheadCap
	b.buf[b.head] = t
	b.n++
	return nil
}
