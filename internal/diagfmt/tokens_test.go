package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"eslex/internal/diagfmt"
	"eslex/internal/lexer"
	"eslex/internal/token"
)

func lexString(t *testing.T, src string) []token.Token {
	t.Helper()
	lx := lexer.New(strings.NewReader(src), &lexer.State{Operator: true}, lexer.Options{})
	var toks []token.Token
	for {
		tok, err := lx.ReadToken()
		if err != nil {
			t.Fatal(err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, lexString(t, "var x = 0x1F;")); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`  1: Reserved        "var" at 1:1-1:4`,
		`  2: Ident           "x" at 1:5-1:6`,
		`  3: Punct(=)        at 1:7-1:8`,
		`  4: HexInt          "0x1F" at 1:9-1:13`,
		`  5: Punct(;)        at 1:13-1:14`,
		`  6: EOF             at 1:14-1:14`,
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(got), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, lexString(t, "if 1.5e3")); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Kind != "Reserved" || out[0].Word != "if" {
		t.Fatalf("first = %+v", out[0])
	}
	if out[1].Float == nil || out[1].Float.Frac != "5" || out[1].Float.Exp != "e3" || out[1].Start.Column != 3 {
		t.Fatalf("float = %+v", out[1])
	}
	if out[2].Kind != "EOF" {
		t.Fatalf("last = %+v", out[2])
	}
}

func TestFormatTokensMsgpack(t *testing.T) {
	var buf bytes.Buffer
	toks := lexString(t, "x\n/=0o7")
	if err := diagfmt.FormatTokensMsgpack(&buf, toks); err != nil {
		t.Fatal(err)
	}
	out, err := diagfmt.DecodeTokensMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) {
		t.Fatalf("decoded %d tokens, want %d", len(out), len(toks))
	}
	if out[2].Kind != "OctalInt" || out[2].Flag != "o" || out[2].Text != "7" || out[2].Start.Line != 1 {
		t.Fatalf("octal = %+v", out[2])
	}

	if _, err := diagfmt.DecodeTokensMsgpack(strings.NewReader("\xc1")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFormatFilesJSON(t *testing.T) {
	toks := lexString(t, "a b")
	files := []diagfmt.FileTokensOutput{
		diagfmt.NewFileTokensOutput("a.js", toks, 0, true),
		diagfmt.NewFileTokensOutput("b.js", toks, 2, false),
	}
	var buf bytes.Buffer
	if err := diagfmt.FormatFilesJSON(&buf, files); err != nil {
		t.Fatalf("FormatFilesJSON: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d files", len(decoded))
	}
	if got := decoded[0]["tokens"].([]any); len(got) != 3 {
		t.Errorf("a.js tokens = %d, want 3", len(got))
	}
	if _, ok := decoded[1]["tokens"]; ok {
		t.Errorf("b.js should omit tokens")
	}
	if decoded[1]["token_count"].(float64) != 3 || decoded[1]["diagnostics"].(float64) != 2 {
		t.Errorf("b.js summary = %v", decoded[1])
	}
}

func TestFormatFilesMsgpack(t *testing.T) {
	var buf bytes.Buffer
	files := []diagfmt.FileTokensOutput{diagfmt.NewFileTokensOutput("a.js", lexString(t, "x"), 0, false)}
	if err := diagfmt.FormatFilesMsgpack(&buf, files); err != nil {
		t.Fatalf("FormatFilesMsgpack: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty msgpack output")
	}
}
