package lexer_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"eslex/internal/diag"
	"eslex/internal/lexer"
	"eslex/internal/source"
	"eslex/internal/token"
	"eslex/internal/trace"
)

// makeTestLexer создаёт лексер для тестовой строки с фиксированным контекстом
func makeTestLexer(input string, st *lexer.State) *lexer.Lexer {
	if st == nil {
		st = &lexer.State{}
	}
	return lexer.New(strings.NewReader(input), st, lexer.Options{})
}

// collectAllTokens собирает все токены до EOF (без EOF), падая на ошибке
func collectAllTokens(t *testing.T, lx *lexer.Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok, err := lx.ReadToken()
		if err != nil {
			t.Fatalf("unexpected error after %v: %v", toks, err)
		}
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// firstError читает токены до первой ошибки
func firstError(t *testing.T, lx *lexer.Lexer) *lexer.Error {
	t.Helper()
	for {
		tok, err := lx.ReadToken()
		if err != nil {
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("error %v is not *lexer.Error", err)
			}
			return lexErr
		}
		if tok.Kind == token.EOF {
			t.Fatal("expected an error, got EOF")
		}
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, st *lexer.State, want ...token.Kind) []token.Token {
	t.Helper()
	toks := collectAllTokens(t, makeTestLexer(input, st))
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("%q: got %v, want %v", input, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d is %v, want %v (all: %v)", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func expectSingleToken(t *testing.T, input string, st *lexer.State) token.Token {
	t.Helper()
	toks := collectAllTokens(t, makeTestLexer(input, st))
	if len(toks) != 1 {
		t.Fatalf("%q: expected one token, got %v", input, toks)
	}
	return toks[0]
}

func TestWhitespaceOnlyWithoutASI(t *testing.T) {
	inputs := []string{"", " ", "\t\v\f", "\n\r\n\r", "  \u2028 \u2029\u00A0\uFEFF\n"}
	for _, in := range inputs {
		expectKinds(t, in, nil)
	}
}

func TestTerminatorRunsWithASI(t *testing.T) {
	asi := &lexer.State{ASI: true}
	toks := expectKinds(t, "\n\n\r\n\u2029", asi, token.Newline)
	if sp := toks[0].Span; sp.Start.Offset != 0 || sp.End.Offset != 5 || sp.End.Line != 4 {
		t.Fatalf("newline span = %+v", sp)
	}

	expectKinds(t, "a\n  \n\tb\nc", asi,
		token.Ident, token.Newline, token.Ident, token.Newline, token.Ident)

	// trailing whitespace is not part of the newline span
	toks = expectKinds(t, "\n   x", asi, token.Newline, token.Ident)
	if toks[0].Span.End.Offset != 1 {
		t.Fatalf("newline span end = %+v", toks[0].Span.End)
	}
}

func TestDivisionVersusRegExp(t *testing.T) {
	expectKinds(t, "a/b", &lexer.State{Operator: true}, token.Ident, token.Slash, token.Ident)
	expectKinds(t, "a /= b", &lexer.State{Operator: true}, token.Ident, token.SlashAssign, token.Ident)

	re := expectSingleToken(t, "/ab/", &lexer.State{Operator: false})
	if re.Kind != token.RegExp || re.Text != "ab" {
		t.Fatalf("got %v", re)
	}
	re = expectSingleToken(t, "/=a/", nil)
	if re.Kind != token.RegExp || re.Text != "=a" {
		t.Fatalf("got %v", re)
	}
}

func TestContextIsConsultedPerScan(t *testing.T) {
	st := &lexer.State{}
	lx := makeTestLexer("/a/ /b", st)

	tok, err := lx.ReadToken()
	if err != nil || tok.Kind != token.RegExp || tok.Text != "a" {
		t.Fatalf("first = %v, %v", tok, err)
	}
	st.SetOperator(true)
	tok, err = lx.ReadToken()
	if err != nil || tok.Kind != token.Slash {
		t.Fatalf("second = %v, %v", tok, err)
	}
	tok, err = lx.ReadToken()
	if err != nil || tok.Kind != token.Ident || tok.Text != "b" {
		t.Fatalf("third = %v, %v", tok, err)
	}
}

func TestRegExpBodies(t *testing.T) {
	tests := []struct {
		in   string
		body string
	}{
		{`/[/]x/`, `[/]x`},
		{`/a\/b/`, `a\/b`},
		{`/[\]/]/`, `[\]/]`},
		{`/\[/`, `\[`},
		{`/a+?/`, `a+?`},
	}
	for _, tt := range tests {
		tok := expectSingleToken(t, tt.in, nil)
		if tok.Kind != token.RegExp || tok.Text != tt.body {
			t.Errorf("%s: got %v", tt.in, tok)
		}
	}

	// флаги сканируются как идентификатор
	toks := expectKinds(t, "/x/gi", nil, token.RegExp, token.Ident)
	if toks[1].Text != "gi" {
		t.Fatalf("flags = %q", toks[1].Text)
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		in    string
		kind  token.Kind
		text  string
		flag  rune
		float token.FloatParts
	}{
		{"0x1F", token.HexInt, "1F", 'x', token.FloatParts{}},
		{"0X0", token.HexInt, "0", 'X', token.FloatParts{}},
		{"0o17", token.OctalInt, "17", 'o', token.FloatParts{}},
		{"0O7", token.OctalInt, "7", 'O', token.FloatParts{}},
		{"017", token.OctalInt, "17", 0, token.FloatParts{}},
		{"089", token.OctalInt, "89", 0, token.FloatParts{}},
		{"0", token.DecimalInt, "0", 0, token.FloatParts{}},
		{"42", token.DecimalInt, "42", 0, token.FloatParts{}},
		{"3.14e-2", token.Float, "", 0, token.FloatParts{Int: "3", Frac: "14", Exp: "e-2"}},
		{".5", token.Float, "", 0, token.FloatParts{Frac: "5"}},
		{".5E3", token.Float, "", 0, token.FloatParts{Frac: "5", Exp: "E3"}},
		{"7.", token.Float, "", 0, token.FloatParts{Int: "7"}},
		{"1e5", token.Float, "", 0, token.FloatParts{Int: "1", Exp: "e5"}},
		{"2E+10", token.Float, "", 0, token.FloatParts{Int: "2", Exp: "E+10"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tok := expectSingleToken(t, tt.in, nil)
			if tok.Kind != tt.kind || tok.Text != tt.text || tok.Flag != tt.flag || tok.Float != tt.float {
				t.Fatalf("got %+v", tok)
			}
			if tok.Lexeme() != tt.in {
				t.Fatalf("Lexeme() = %q", tok.Lexeme())
			}
		})
	}
}

func TestLeadingZeroThenDot(t *testing.T) {
	toks := expectKinds(t, "0.5", nil, token.DecimalInt, token.Float)
	if toks[0].Text != "0" || toks[1].Float.Frac != "5" || toks[1].Float.Int != "" {
		t.Fatalf("got %v", toks)
	}
	expectKinds(t, "a.b", nil, token.Ident, token.Dot, token.Ident)
}

func TestNumericErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind lexer.ErrorKind
		char rune
	}{
		{"0x", lexer.UnexpectedEOF, 0},
		{"0xg", lexer.InvalidDigit, 'g'},
		{"0o9", lexer.InvalidDigit, '9'},
		{"1e", lexer.UnexpectedEOF, 0},
		{"1e+", lexer.UnexpectedEOF, 0},
		{"1ex", lexer.UnexpectedChar, 'x'},
		{"2.5e-;", lexer.UnexpectedChar, ';'},
	}
	for _, tt := range tests {
		err := firstError(t, makeTestLexer(tt.in, nil))
		if err.Kind != tt.kind || err.Char != tt.char {
			t.Errorf("%q: got %v (kind %v, char %q)", tt.in, err, err.Kind, err.Char)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		in   string
		text string
	}{
		{`"a\nb"`, `a\nb`},
		{`'it\'s'`, `it\'s`},
		{`"it's"`, `it's`},
		{`'say "hi"'`, `say "hi"`},
		{`"\u{1F600}"`, `\u{1F600}`},
		{`"\u{0000000041}"`, `\u{0000000041}`},
		{`"A"`, `A`},
		{`"\x41"`, `\x41`},
		{`"\0"`, `\0`},
		{`"\012"`, `\012`},
		{`"\0123"`, `\0123`},
		{`"\q"`, `\q`},
		{"\"a\\\r\nb\"", "a\\\r\nb"},
		{"\"a\\\u2028b\"", "a\\\u2028b"},
		{`""`, ``},
	}
	for _, tt := range tests {
		tok := expectSingleToken(t, tt.in, nil)
		if tok.Kind != token.String || tok.Text != tt.text {
			t.Errorf("%s: got %v, want text %q", tt.in, tok, tt.text)
		}
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind lexer.ErrorKind
		char rune
	}{
		{`"abc`, lexer.UnexpectedEOF, 0},
		{"\"a\nb\"", lexer.UnexpectedChar, '\n'},
		{"'a\rb'", lexer.UnexpectedChar, '\r'},
		{`"\x4g"`, lexer.InvalidDigit, 'g'},
		{`"\u12"`, lexer.InvalidDigit, '"'},
		{`"\u{}"`, lexer.InvalidDigit, '}'},
		{`"\u{12`, lexer.UnexpectedEOF, 0},
		{`"\u{12x}"`, lexer.InvalidDigit, 'x'},
		{`"\`, lexer.UnexpectedEOF, 0},
		{`"\x4`, lexer.UnexpectedEOF, 0},
	}
	for _, tt := range tests {
		err := firstError(t, makeTestLexer(tt.in, nil))
		if err.Kind != tt.kind || err.Char != tt.char {
			t.Errorf("%q: got %v", tt.in, err)
		}
	}
}

func TestRegExpErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind lexer.ErrorKind
	}{
		{"/abc", lexer.UnexpectedEOF},
		{"/a\nb/", lexer.UnexpectedChar},
		{"/[a\n]/", lexer.UnexpectedChar},
		{"/a\\\n/", lexer.UnexpectedChar},
		{"/a\\", lexer.UnexpectedEOF},
		{"/[/", lexer.UnexpectedEOF},
	}
	for _, tt := range tests {
		if err := firstError(t, makeTestLexer(tt.in, nil)); err.Kind != tt.kind {
			t.Errorf("%q: got %v", tt.in, err)
		}
	}
}

func TestComments(t *testing.T) {
	expectKinds(t, "a // c\nb", nil, token.Ident, token.Ident)
	expectKinds(t, "a /* x\n */ b", nil, token.Ident, token.Ident)
	expectKinds(t, "/**/", nil)
	expectKinds(t, "/* a **/x", nil, token.Ident)
	expectKinds(t, "// only", nil)
	expectKinds(t, "a // c\nb", &lexer.State{ASI: true}, token.Ident, token.Newline, token.Ident)

	err := firstError(t, makeTestLexer("/* no end", nil))
	if !errors.Is(err, lexer.ErrUnexpectedEOF) {
		t.Fatalf("got %v", err)
	}
	err = firstError(t, makeTestLexer("/* almost *", nil))
	if err.Kind != lexer.UnexpectedEOF {
		t.Fatalf("got %v", err)
	}
}

func TestIdentifiersAndReservedWords(t *testing.T) {
	tok := expectSingleToken(t, "classic", nil)
	if tok.Kind != token.Ident || tok.Text != "classic" {
		t.Fatalf("classic: %v", tok)
	}
	tok = expectSingleToken(t, "class", nil)
	if !tok.IsReserved(token.WordClass) || tok.Text != "" {
		t.Fatalf("class: %v", tok)
	}
	tok = expectSingleToken(t, "await", nil)
	if tok.Kind != token.Ident {
		t.Fatalf("await must be an identifier by default: %v", tok)
	}

	lx := lexer.New(strings.NewReader("await"), nil, lexer.Options{
		Reserved: token.DefaultReserved().With(token.WordAwait),
	})
	tok, err := lx.ReadToken()
	if err != nil || !tok.IsReserved(token.WordAwait) {
		t.Fatalf("extended table: %v, %v", tok, err)
	}

	for _, id := range []string{"café", "$_x1", "\u00e9t\u00e9", "a\u0301", "x\u200c", "\u4e2d\u6587"} {
		tok := expectSingleToken(t, id, nil)
		if tok.Kind != token.Ident || tok.Text != id {
			t.Errorf("%q: got %v", id, tok)
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	in := ">>>= >>> >>= >> >= > <<= << <= < === == = !== != ! ++ += + -- -= - *= * %= % ^= ^ && & || | ~ ? { } [ ] ( ) ; : , ."
	expectKinds(t, in, &lexer.State{Operator: true},
		token.UShrAssign, token.UShr, token.ShrAssign, token.Shr, token.GtEq, token.Gt,
		token.ShlAssign, token.Shl, token.LtEq, token.Lt,
		token.EqEqEq, token.EqEq, token.Assign, token.BangEqEq, token.BangEq, token.Bang,
		token.PlusPlus, token.PlusAssign, token.Plus, token.MinusMinus, token.MinusAssign, token.Minus,
		token.StarAssign, token.Star, token.PercentAssign, token.Percent, token.CaretAssign, token.Caret,
		token.AndAnd, token.Amp, token.OrOr, token.Pipe, token.Tilde, token.Question,
		token.LBrace, token.RBrace, token.LBracket, token.RBracket, token.LParen, token.RParen,
		token.Semicolon, token.Colon, token.Comma, token.Dot,
	)
	expectKinds(t, "a+++b", nil, token.Ident, token.PlusPlus, token.Plus, token.Ident)
	expectKinds(t, "&&=", nil, token.AndAnd, token.Assign)
}

func TestUnexpectedCharacter(t *testing.T) {
	lx := makeTestLexer("  #a", nil)
	_, err := lx.ReadToken()
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) || lexErr.Kind != lexer.UnexpectedChar || lexErr.Char != '#' {
		t.Fatalf("got %v", err)
	}
	if lexErr.Pos != (source.Position{Offset: 2, Column: 2}) {
		t.Fatalf("Pos = %+v", lexErr.Pos)
	}
	if got := lexErr.Error(); got != "1:3: unexpected character '#'" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, lexer.ErrUnexpectedChar) || errors.Is(err, lexer.ErrUnexpectedEOF) {
		t.Fatal("errors.Is mismatch")
	}

	// символ не съеден: повторное чтение даёт ту же ошибку
	_, again := lx.ReadToken()
	var againErr *lexer.Error
	if !errors.As(again, &againErr) || againErr.Pos != lexErr.Pos || againErr.Char != '#' {
		t.Fatalf("second ReadToken = %v", again)
	}
	if lx.Position() != lexErr.Pos {
		t.Fatalf("Position() = %+v, reader moved past '#'", lx.Position())
	}

	// после Skip сканирование продолжается
	if !lx.Skip() {
		t.Fatal("Skip() = false after UnexpectedChar")
	}
	tok, err := lx.ReadToken()
	if err != nil || tok.Kind != token.Ident || tok.Text != "a" {
		t.Fatalf("after Skip: %v, %v", tok, err)
	}
	if lx.Skip() {
		t.Fatal("Skip() after a good token must do nothing")
	}
}

func TestSkipOnlyAfterStalledScan(t *testing.T) {
	lx := makeTestLexer("ab", nil)
	if lx.Skip() {
		t.Fatal("Skip() before any scan must do nothing")
	}
	if tok, err := lx.ReadToken(); err != nil || tok.Text != "ab" {
		t.Fatalf("ReadToken = %v, %v", tok, err)
	}

	// ошибка после прочитанных рун: Skip не нужен, позиция уже сдвинута
	lx = makeTestLexer("0x;", nil)
	if _, err := lx.ReadToken(); !errors.Is(err, lexer.ErrInvalidDigit) {
		t.Fatalf("ReadToken = %v", err)
	}
	if lx.Skip() {
		t.Fatal("Skip() after a scan that consumed input must do nothing")
	}
	if tok, err := lx.ReadToken(); err != nil || tok.Kind != token.Semicolon {
		t.Fatalf("after error: %v, %v", tok, err)
	}

	// на конце ввода пропускать нечего
	lx = makeTestLexer("@", nil)
	_, _ = lx.ReadToken()
	if !lx.Skip() || lx.Skip() {
		t.Fatal("Skip() must discard exactly one rune")
	}
	if tok, err := lx.ReadToken(); err != nil || tok.Kind != token.EOF {
		t.Fatalf("after Skip: %v, %v", tok, err)
	}
}

func TestPeekUnreadRead(t *testing.T) {
	lx := makeTestLexer("a b c", nil)

	peeked, err := lx.PeekToken()
	if err != nil {
		t.Fatal(err)
	}
	again, _ := lx.PeekToken()
	read, _ := lx.ReadToken()
	if peeked != again || peeked != read || read.Text != "a" {
		t.Fatalf("peek/read mismatch: %v %v %v", peeked, again, read)
	}

	b, _ := lx.ReadToken()
	c, _ := lx.ReadToken()
	for _, tok := range []token.Token{c, b, read} {
		if err := lx.UnreadToken(tok); err != nil {
			t.Fatalf("UnreadToken(%v): %v", tok, err)
		}
	}
	if err := lx.UnreadToken(c); !errors.Is(err, lexer.ErrPushbackFull) {
		t.Fatalf("fourth unread = %v", err)
	}
	if tok, _ := lx.PeekToken(); tok != read {
		t.Fatalf("peek after unread = %v", tok)
	}
	for _, want := range []token.Token{read, b, c} {
		if got, err := lx.ReadToken(); err != nil || got != want {
			t.Fatalf("ReadToken = %v, %v; want %v", got, err, want)
		}
	}
	for range 2 {
		if tok, err := lx.ReadToken(); err != nil || tok.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v, %v", tok, err)
		}
	}
}

func TestPeekErrorBuffersNothing(t *testing.T) {
	lx := makeTestLexer("# x", nil)
	if _, err := lx.PeekToken(); !errors.Is(err, lexer.ErrUnexpectedChar) {
		t.Fatalf("PeekToken = %v", err)
	}
	if _, err := lx.ReadToken(); !errors.Is(err, lexer.ErrUnexpectedChar) {
		t.Fatalf("ReadToken after failed peek = %v", err)
	}
	if !lx.Skip() {
		t.Fatal("Skip() = false")
	}
	tok, err := lx.ReadToken()
	if err != nil || tok.Text != "x" {
		t.Fatalf("ReadToken = %v, %v", tok, err)
	}
}

func TestSpans(t *testing.T) {
	toks := expectKinds(t, "let\n  x\r\ny", nil, token.Ident, token.Ident, token.Ident)
	want := []source.Span{
		{Start: source.Position{}, End: source.Position{Offset: 3, Column: 3}},
		{Start: source.Position{Offset: 6, Line: 1, Column: 2}, End: source.Position{Offset: 7, Line: 1, Column: 3}},
		{Start: source.Position{Offset: 9, Line: 2}, End: source.Position{Offset: 10, Line: 2, Column: 1}},
	}
	for i, tok := range toks {
		if tok.Span != want[i] {
			t.Errorf("token %d span = %+v, want %+v", i, tok.Span, want[i])
		}
	}
	str := expectSingleToken(t, `"ab"`, nil)
	if str.Span.Len() != 4 {
		t.Fatalf("string span = %v", str.Span)
	}
}

func TestAllAndErr(t *testing.T) {
	lx := makeTestLexer("a b # c", nil)
	var got []string
	for tok := range lx.All() {
		got = append(got, tok.Text)
	}
	if strings.Join(got, ",") != "a,b" {
		t.Fatalf("All() yielded %v", got)
	}
	if !errors.Is(lx.Err(), lexer.ErrUnexpectedChar) {
		t.Fatalf("Err() = %v", lx.Err())
	}

	clean := makeTestLexer("x = 1", nil)
	n := 0
	for range clean.All() {
		n++
	}
	if n != 3 || clean.Err() != nil {
		t.Fatalf("n=%d err=%v", n, clean.Err())
	}

	early := makeTestLexer("a b c", nil)
	for tok := range early.All() {
		if tok.Text == "a" {
			break
		}
	}
	if tok, _ := early.ReadToken(); tok.Text != "b" {
		t.Fatalf("iteration must stop without consuming more, got %v", tok)
	}
}

func TestReporterReceivesErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte("x = \"abc")))
	bag := diag.NewBag(10)
	adapter := &lexer.ReporterAdapter{Bag: bag}

	lx := lexer.NewFromFile(file, nil, lexer.Options{Reporter: adapter.Reporter()})
	for range lx.All() {
	}
	if lx.Err() == nil || bag.Len() != 1 {
		t.Fatalf("err=%v bag=%d", lx.Err(), bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnexpectedEOF || d.Primary.File != file.ID || d.Primary.Start.Offset != 4 || d.Primary.End.Offset != 8 {
		t.Fatalf("diagnostic = %+v", d)
	}
}

var errDisk = errors.New("disk on fire")

type brokenReader struct{ left string }

func (b *brokenReader) ReadRune() (rune, int, error) {
	if b.left == "" {
		return 0, 0, errDisk
	}
	r := rune(b.left[0])
	b.left = b.left[1:]
	return r, 1, nil
}

func TestReadFailureSurfaces(t *testing.T) {
	lx := lexer.New(&brokenReader{left: "ab "}, nil, lexer.Options{})
	tok, err := lx.ReadToken()
	if err != nil || tok.Text != "ab" {
		t.Fatalf("first = %v, %v", tok, err)
	}
	_, err = lx.ReadToken()
	if !errors.Is(err, lexer.ErrRead) || !errors.Is(err, errDisk) {
		t.Fatalf("err = %v", err)
	}

	// обрыв посреди строки тоже ErrRead, а не UnexpectedEOF
	lx = lexer.New(&brokenReader{left: `"ab`}, nil, lexer.Options{})
	if _, err := lx.ReadToken(); !errors.Is(err, lexer.ErrRead) {
		t.Fatalf("mid-string err = %v", err)
	}
}

func TestTracerSeesTokens(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	lx := lexer.New(strings.NewReader("a #"), nil, lexer.Options{Tracer: tr})
	for range lx.All() {
	}
	out := buf.String()
	if !strings.Contains(out, `Ident("a")`) || !strings.Contains(out, "lex-error") || !strings.Contains(out, "LEX1002") {
		t.Fatalf("trace output:\n%s", out)
	}
}
