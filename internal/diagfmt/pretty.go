package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"eslex/internal/diag"
	"eslex/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	<source line>
//	<caret>^~~~
//
// затем Notes в том же формате. Ширина колонок считается через runewidth,
// так что CJK и эмодзи в строке не сдвигают подчёркивание.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPainter(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

type painter struct {
	sev   map[diag.Severity]*color.Color
	path  *color.Color
	code  *color.Color
	caret *color.Color
	note  *color.Color
}

func newPainter(enabled bool) painter {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return painter{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevNote:    mk(color.FgCyan, color.Bold),
		},
		path:  mk(color.Bold),
		code:  mk(color.FgMagenta),
		caret: mk(color.FgGreen, color.Bold),
		note:  mk(color.FgBlue),
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p painter) error {
	f := fs.Get(d.Primary.File)
	sevColor := p.sev[d.Severity]
	if sevColor == nil {
		sevColor = p.sev[diag.SevNote]
	}

	loc := fmt.Sprintf("%s:%d:%d", formatPath(f, opts.PathMode, fs.BaseDir()), d.Primary.Start.Line+1, d.Primary.Start.Column+1)
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprint(loc), sevColor.Sprint(d.Severity), p.code.Sprint(d.Code.ID()), d.Message); err != nil {
		return err
	}
	if err := writeSnippet(w, f, d.Primary, p.caret); err != nil {
		return err
	}

	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		nloc := fmt.Sprintf("%s:%d:%d", formatPath(nf, opts.PathMode, fs.BaseDir()), n.Span.Start.Line+1, n.Span.Start.Column+1)
		if _, err := fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), nloc, n.Msg); err != nil {
			return err
		}
		if err := writeSnippet(w, nf, n.Span, p.note); err != nil {
			return err
		}
	}
	return nil
}

// writeSnippet печатает строку исходника и подчёркивание под span.
// Многострочный span подчёркивается до конца первой строки.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, c *color.Color) error {
	if f == nil {
		return nil
	}
	line := f.GetLine(sp.Start.Line + 1)
	runes := []rune(line)
	// табы заменяем пробелом, иначе ширина непредсказуема
	for i, r := range runes {
		if r == '\t' {
			runes[i] = ' '
		}
	}

	startCol := min(int(sp.Start.Column), len(runes))
	endCol := len(runes)
	if sp.End.Line == sp.Start.Line {
		endCol = min(int(sp.End.Column), len(runes))
	}

	pad := runewidth.StringWidth(string(runes[:startCol]))
	width := 0
	if endCol > startCol {
		width = runewidth.StringWidth(string(runes[startCol:endCol]))
	}

	var mark strings.Builder
	mark.WriteString(strings.Repeat(" ", pad))
	mark.WriteByte('^')
	if width > 1 {
		mark.WriteString(strings.Repeat("~", width-1))
	}

	_, err := fmt.Fprintf(w, "  %s\n  %s\n", string(runes), c.Sprint(mark.String()))
	return err
}
