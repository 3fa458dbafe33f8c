package lexer

import (
	"errors"
	"fmt"
	"io"
	"math"

	"eslex/internal/charclass"
	"eslex/internal/source"
)

// errOffsetRange ends the stream when a rune offset no longer fits uint32.
var errOffsetRange = errors.New("input too large: rune offset exceeds uint32")

// Reader is a character stream over an io.RuneReader with one rune of
// lookahead. It tracks the zero-based position of the current rune.
type Reader struct {
	src io.RuneReader

	cur, next       rune
	hasCur, hasNext bool

	off    uint32
	maxOff uint32 // последний допустимый offset, в тестах меньше
	line   uint32
	column uint32

	err error // первая не-EOF ошибка источника
}

// NewReader primes the current and lookahead runes from src.
func NewReader(src io.RuneReader) *Reader {
	r := &Reader{src: src, maxOff: math.MaxUint32}
	r.cur, r.hasCur = r.fetch()
	if r.hasCur {
		r.next, r.hasNext = r.fetch()
	}
	return r
}

func (r *Reader) fetch() (rune, bool) {
	if r.err != nil || r.src == nil {
		return 0, false
	}
	ch, _, err := r.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		return 0, false
	}
	return ch, true
}

// Current returns the rune under the cursor; ok is false at end of input.
func (r *Reader) Current() (ch rune, ok bool) {
	return r.cur, r.hasCur
}

// Lookahead returns the rune after the current one.
func (r *Reader) Lookahead() (ch rune, ok bool) {
	return r.next, r.hasNext
}

// Position returns the position of the current rune.
func (r *Reader) Position() source.Position {
	return source.Position{Offset: r.off, Line: r.line, Column: r.column}
}

// Advance moves past the current rune. At end of input it does nothing.
// Input whose offsets would not fit uint32 ends as a read failure.
func (r *Reader) Advance() {
	if !r.hasCur {
		return
	}
	if r.off == r.maxOff {
		r.err = fmt.Errorf("%w at offset %d", errOffsetRange, r.off)
		r.hasCur, r.hasNext = false, false
		return
	}
	ch := r.cur
	r.off++
	switch {
	case ch == '\r' && r.hasNext && r.next == '\n':
		// \r\n это одна граница строки, считаем её на \n
		r.column++
	case charclass.IsLineTerminator(ch):
		r.line++
		r.column = 0
	default:
		r.column++
	}
	r.cur, r.hasCur = r.next, r.hasNext
	if r.hasCur {
		r.next, r.hasNext = r.fetch()
	} else {
		r.hasNext = false
	}
}

// Eat advances when the current rune is ch.
func (r *Reader) Eat(ch rune) bool {
	if r.hasCur && r.cur == ch {
		r.Advance()
		return true
	}
	return false
}

// Err returns the read error that ended the stream early, if any.
func (r *Reader) Err() error {
	return r.err
}
