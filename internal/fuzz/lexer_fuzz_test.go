package fuzztests

import (
	"errors"
	"testing"
	"unicode/utf8"

	"eslex/internal/diag"
	"eslex/internal/driver"
	"eslex/internal/lexer"
	"eslex/internal/source"
	"eslex/internal/testkit"
	"eslex/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		input = append([]byte(nil), input...)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		contexts := []lexer.Context{
			&lexer.State{},
			&lexer.State{Operator: true, ASI: true},
			driver.NewTracker(false, false),
		}
		for _, cx := range contexts {
			runLexer(t, file, cx)
		}
	})
}

// runLexer lexes file to EOF, resuming after errors, and checks that the
// lexer always makes progress and keeps the span invariants.
func runLexer(t *testing.T, file *source.File, cx lexer.Context) {
	t.Helper()
	bag := diag.NewBag(0)
	lx := lexer.NewFromFile(file, cx, lexer.Options{Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter()})
	tracker, _ := cx.(*driver.Tracker)

	// каждый вызов продвигает чтение хотя бы на одну руну, кроме EOF
	budget := utf8.RuneCount(file.Content) + 2
	var tokens []token.Token
	errs := 0
	for range budget {
		tok, err := lx.ReadToken()
		if err != nil {
			if errors.Is(err, lexer.ErrRead) {
				t.Fatalf("read failure on in-memory input: %v", err)
			}
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			errs++
			// ошибка без продвижения: символ пропускает вызывающий
			lx.Skip()
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			if err := testkit.CheckTokenSpans(tokens, file, true); err != nil {
				t.Fatal(err)
			}
			if bag.Len() != errs {
				t.Fatalf("bag has %d diagnostics, lexer returned %d errors", bag.Len(), errs)
			}
			return
		}
		if tracker != nil {
			tracker.Observe(tok)
		}
	}
	t.Fatalf("lexer did not reach EOF within %d reads", budget)
}
