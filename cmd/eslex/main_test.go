package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eslex/internal/diag"
	"eslex/internal/driver"
	"eslex/internal/source"
	"eslex/internal/token"
)

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"AUTO", uiModeAuto, false},
		{" on ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("readUIMode(%q) = %q, %v", tc.in, got, err)
		}
	}
	if !shouldUseTUI(uiModeOn, true) || shouldUseTUI(uiModeOff, false) {
		t.Error("explicit ui modes must win")
	}
}

func TestResolveColor(t *testing.T) {
	cases := []struct {
		mode string
		tty  bool
		want bool
	}{
		{"on", false, true},
		{"off", true, false},
		{"auto", true, true},
		{"auto", false, false},
	}
	for _, tc := range cases {
		if got := resolveColor(tc.mode, tc.tty); got != tc.want {
			t.Errorf("resolveColor(%q, %v) = %v", tc.mode, tc.tty, got)
		}
	}
}

func TestRenderVersion(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}
	var buf bytes.Buffer
	renderVersionPretty(&buf, info, versionOptions{showHash: true, showDate: true})
	want := "eslex 1.2.3\ncommit:  abc123\nbuilt:   unknown\n"
	if buf.String() != want {
		t.Fatalf("pretty = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := renderVersionJSON(&buf, info, versionOptions{showHash: true}); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "eslex" || payload.GitCommit != "abc123" || payload.BuildDate != "" {
		t.Fatalf("json payload = %+v", payload)
	}
}

func TestWriteDirResultsPretty(t *testing.T) {
	fs := source.NewFileSetWithBase("/src")
	id := fs.Add("/src/lib/a.js", []byte("x"), 0)
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.LexUnexpectedChar, source.Span{File: id}, "unexpected character '@'"))
	results := []driver.TokenizeDirResult{{
		Path:   "/src/lib/a.js",
		FileID: id,
		Tokens: []token.Token{{Kind: token.Ident, Text: "x"}, {Kind: token.EOF}},
		Bag:    bag,
	}}
	var buf bytes.Buffer
	if err := writeDirResults(&buf, "pretty", fs, results, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "lib/a.js: 2 tokens, 1 diagnostics\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if err := writeDirResults(&buf, "yaml", fs, results, false); err == nil {
		t.Fatal("expected unknown format error")
	}
}

// runCLI выполняет команду через общий rootCmd; флаги задаются явно,
// потому что cobra сохраняет их значения между вызовами.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTokenizeCommandJSON(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"eslex.toml": "[lexer]\nextra_reserved = [\"await\"]\n",
		"main.js":    "await x / 2\n",
	})
	out, err := runCLI(t, "tokenize", "--config", filepath.Join(dir, "eslex.toml"),
		"--format", "json", "--context", "track", filepath.Join(dir, "main.js"))
	if err != nil {
		t.Fatalf("tokenize: %v\n%s", err, out)
	}
	var tokens []map[string]any
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	kinds := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok["kind"].(string))
	}
	if got := strings.Join(kinds, " "); got != "Reserved Ident / DecimalInt Newline EOF" {
		t.Fatalf("kinds = %s", got)
	}
	if tokens[0]["word"] != "await" {
		t.Fatalf("first token = %v", tokens[0])
	}
}

func TestTokenizeDirCommandReportsErrors(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"eslex.toml": "",
		"a.js":       "let a = 1\n",
		"b/c.mjs":    "x @ y\n",
	})
	out, err := runCLI(t, "tokenize-dir", "--config", filepath.Join(dir, "eslex.toml"),
		"--format", "pretty", "--ui", "off", "--jobs", "2", dir)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	want := "a.js: 6 tokens, 0 diagnostics\nb/c.mjs: 4 tokens, 1 diagnostics\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}
