package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"eslex/internal/diag"
	"eslex/internal/lexer"
	"eslex/internal/source"
	"eslex/internal/token"
	"eslex/internal/trace"
)

// TokenizeResult holds the tokens of one file and the diagnostics produced while lexing it.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Tokens ends with EOF when the whole file was lexed.
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize loads path and lexes it until EOF. Lexical errors are collected in
// the bag and lexing resumes after them; the returned error is reserved for
// failures to load the file or cancellation.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	var fileID source.FileID
	err := opts.Timer.Track("load", func() error {
		var loadErr error
		fileID, loadErr = fs.Load(path)
		return loadErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	var tokens []token.Token
	err = opts.Timer.Track("lex", func() error {
		var lexErr error
		tokens, lexErr = lexFile(ctx, file, &opts, bag)
		return lexErr
	})
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// lexFile drives one lexer over file, feeding every token back to the
// context before the next read.
func lexFile(ctx context.Context, file *source.File, opts *Options, bag *diag.Bag) ([]token.Token, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "tokenize", trace.CurrentSpan(ctx)).
		WithExtra("path", file.Path)

	cx := opts.newContext()
	lx := lexer.NewFromFile(file, cx, lexer.Options{
		Reserved: opts.Reserved,
		Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter(),
		Tracer:   tracer,
	})

	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	var (
		lastErrAt  source.Position
		haveErrPos bool
	)
	for {
		if err := ctx.Err(); err != nil {
			span.End("cancelled")
			return tokens, err
		}
		tok, err := lx.ReadToken()
		if err != nil {
			// ошибка чтения повторяется бесконечно
			if errors.Is(err, lexer.ErrRead) || bagFull(bag) {
				break
			}
			// неизвестный символ остаётся в потоке, пропускаем его сами
			lx.Skip()
			pos := lx.Position()
			if haveErrPos && pos == lastErrAt {
				break
			}
			lastErrAt, haveErrPos = pos, true
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
		cx.Observe(tok)
	}

	span.WithExtra("tokens", strconv.Itoa(len(tokens))).
		WithExtra("diagnostics", strconv.Itoa(bag.Len())).
		End("")
	return tokens, nil
}

func bagFull(bag *diag.Bag) bool {
	return bag.Cap() > 0 && bag.Len() >= bag.Cap()
}
