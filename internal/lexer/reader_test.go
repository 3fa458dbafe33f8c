package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"

	"eslex/internal/source"
)

func pos(off, line, col uint32) source.Position {
	return source.Position{Offset: off, Line: line, Column: col}
}

func TestReaderPositions(t *testing.T) {
	rd := NewReader(strings.NewReader("a\r\nb\u2028c"))
	want := []struct {
		ch  rune
		pos source.Position
	}{
		{'a', pos(0, 0, 0)},
		{'\r', pos(1, 0, 1)},
		{'\n', pos(2, 0, 2)},
		{'b', pos(3, 1, 0)},
		{'\u2028', pos(4, 1, 1)},
		{'c', pos(5, 2, 0)},
	}
	for i, w := range want {
		ch, ok := rd.Current()
		if !ok || ch != w.ch {
			t.Fatalf("#%d: Current() = %q, %v; want %q", i, ch, ok, w.ch)
		}
		if got := rd.Position(); got != w.pos {
			t.Fatalf("#%d: Position() = %+v, want %+v", i, got, w.pos)
		}
		rd.Advance()
	}
	if _, ok := rd.Current(); ok {
		t.Fatal("expected end of input")
	}
	end := rd.Position()
	rd.Advance() // на EOF ничего не меняется
	if rd.Position() != end || end != pos(6, 2, 1) {
		t.Fatalf("end position = %+v, after extra Advance %+v", end, rd.Position())
	}
}

func TestReaderLoneCR(t *testing.T) {
	rd := NewReader(strings.NewReader("\r\rx"))
	rd.Advance()
	rd.Advance()
	if got := rd.Position(); got != pos(2, 2, 0) {
		t.Fatalf("Position() = %+v", got)
	}
}

func TestReaderLookahead(t *testing.T) {
	rd := NewReader(strings.NewReader("ab"))
	if ch, ok := rd.Lookahead(); !ok || ch != 'b' {
		t.Fatalf("Lookahead() = %q, %v", ch, ok)
	}
	rd.Advance()
	if _, ok := rd.Lookahead(); ok {
		t.Fatal("no lookahead expected at last rune")
	}
	if !rd.Eat('b') || rd.Eat('b') {
		t.Fatal("Eat mismatch")
	}
}

var errBoom = errors.New("boom")

// failingReader отдаёт руны из s, затем ошибку.
type failingReader struct {
	s []rune
}

func (f *failingReader) ReadRune() (rune, int, error) {
	if len(f.s) == 0 {
		return 0, 0, errBoom
	}
	r := f.s[0]
	f.s = f.s[1:]
	return r, 1, nil
}

func TestReaderRecordsReadError(t *testing.T) {
	rd := NewReader(&failingReader{s: []rune("x")})
	if ch, ok := rd.Current(); !ok || ch != 'x' {
		t.Fatalf("Current() = %q, %v", ch, ok)
	}
	rd.Advance()
	if _, ok := rd.Current(); ok {
		t.Fatal("read error must end the stream")
	}
	if !errors.Is(rd.Err(), errBoom) {
		t.Fatalf("Err() = %v", rd.Err())
	}

	clean := NewReader(strings.NewReader(""))
	if clean.Err() != nil {
		t.Fatalf("io.EOF must not be recorded: %v", clean.Err())
	}
	var _ io.RuneReader = &failingReader{}
}

// \r\n считается одним переводом строки: \r двигает колонку,
// строка увеличивается при переходе через \n.
func TestReaderCRLFIsOneLineBreak(t *testing.T) {
	tests := []struct {
		src  string
		want source.Position // позиция последней руны
	}{
		{"\r\nb", pos(2, 1, 0)},
		{"a\r\n\r\nb", pos(5, 2, 0)},
		{"\r\r\nb", pos(3, 2, 0)},
		{"\n\r\nb", pos(3, 2, 0)},
	}
	for _, tt := range tests {
		rd := NewReader(strings.NewReader(tt.src))
		n := len([]rune(tt.src))
		for range n - 1 {
			rd.Advance()
		}
		if ch, _ := rd.Current(); ch != 'b' {
			t.Fatalf("%q: Current() = %q", tt.src, ch)
		}
		if got := rd.Position(); got != tt.want {
			t.Errorf("%q: Position() = %+v, want %+v", tt.src, got, tt.want)
		}
	}

	rd := NewReader(strings.NewReader("\r\n"))
	rd.Advance()
	if got := rd.Position(); got != pos(1, 0, 1) {
		t.Fatalf("between \\r and \\n: Position() = %+v", got)
	}
}

func TestReaderOffsetLimit(t *testing.T) {
	rd := NewReader(strings.NewReader("abcd"))
	rd.maxOff = 2
	rd.Advance()
	rd.Advance()
	if ch, ok := rd.Current(); !ok || ch != 'c' {
		t.Fatalf("Current() = %q, %v", ch, ok)
	}
	rd.Advance() // offset 2 это предел
	if _, ok := rd.Current(); ok {
		t.Fatal("stream must end at the offset limit")
	}
	if !errors.Is(rd.Err(), errOffsetRange) {
		t.Fatalf("Err() = %v", rd.Err())
	}
	if got := rd.Position(); got != pos(2, 0, 2) {
		t.Fatalf("Position() = %+v", got)
	}
	rd.Advance()
	if got := rd.Position(); got != pos(2, 0, 2) {
		t.Fatalf("Position() after end = %+v", got)
	}
}

func TestLexerReportsOffsetLimitAsReadError(t *testing.T) {
	lx := New(strings.NewReader("a  b"), nil, Options{})
	lx.rd.maxOff = 2
	tok, err := lx.ReadToken()
	if err != nil || tok.Text != "a" {
		t.Fatalf("ReadToken = %v, %v", tok, err)
	}
	_, err = lx.ReadToken()
	if !errors.Is(err, ErrRead) || !errors.Is(err, errOffsetRange) {
		t.Fatalf("ReadToken = %v, want read failure", err)
	}
	if lx.Skip() {
		t.Fatal("Skip() must not move past a read failure")
	}
}
