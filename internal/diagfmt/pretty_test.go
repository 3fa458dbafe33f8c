package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"eslex/internal/diag"
	"eslex/internal/source"
)

func at(off, line, col uint32) source.Position {
	return source.Position{Offset: off, Line: line, Column: col}
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.AddVirtual("/home/user/project/src/test.js", []byte("let x = \"abc\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedEOF,
		source.Span{File: fileID, Start: at(8, 0, 8), End: at(12, 0, 12)},
		"unexpected end of input"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Auto path", PathModeAuto, "/home/user/project/src/test.js:1:9:"},
		{"Relative path", PathModeRelative, "src/test.js:1:9:"},
		{"Basename only", PathModeBasename, "test.js:1:9:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), tt.contains) {
				t.Fatalf("output %q does not start with %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.js", []byte("let x = \"abc\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedEOF,
		source.Span{File: fileID, Start: at(8, 0, 8), End: at(12, 0, 12)},
		"unexpected end of input"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "a.js:1:9: ERROR LEX1001: unexpected end of input\n" +
		"  let x = \"abc\n" +
		"          ^~~~\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("w.js", []byte("中文 = #"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedChar,
		source.Span{File: fileID, Start: at(5, 0, 5), End: at(6, 0, 6)},
		"unexpected character '#'"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || lines[2] != "  "+strings.Repeat(" ", 7)+"^" {
		t.Fatalf("caret line = %q", lines[2])
	}
}

func TestPrettyColorAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.js", []byte("x = 0x\n"))
	sp := source.Span{File: fileID, Start: at(6, 0, 6), End: at(6, 0, 6)}
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexInvalidDigit, sp, "invalid digit").WithNote(
		source.Span{File: fileID, Start: at(4, 0, 4), End: at(6, 0, 6)}, "literal starts here"))

	var plain bytes.Buffer
	if err := Pretty(&plain, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatal("plain output must not contain escape codes")
	}
	if !strings.Contains(plain.String(), "note: n.js:1:5: literal starts here") {
		t.Fatalf("note missing:\n%s", plain.String())
	}

	var colored bytes.Buffer
	if err := Pretty(&colored, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatal("colored output must contain escape codes")
	}
	if strings.Contains(colored.String(), "note:") {
		t.Fatal("notes are hidden unless ShowNotes is set")
	}
}

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("j.js", []byte("a\n#"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnexpectedChar,
		source.Span{File: fileID, Start: at(2, 1, 0), End: at(3, 1, 1)}, "unexpected character '#'"))
	bag.Add(diag.NewError(diag.LexUnexpectedChar,
		source.Span{File: fileID, Start: at(2, 1, 0), End: at(3, 1, 1)}, "again"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("Count = %d", out.Count)
	}
	loc := out.Diagnostics[0].Location
	if loc.File != "j.js" || loc.StartLine != 2 || loc.StartCol != 1 || loc.EndOffset != 3 {
		t.Fatalf("location = %+v", loc)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"code": "LEX1002"`) || !strings.Contains(buf.String(), `"count": 2`) {
		t.Fatalf("json:\n%s", buf.String())
	}
}
