package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"eslex/internal/source"
	"eslex/internal/token"
)

// PositionOutput is a zero-based position as it appears in token dumps.
type PositionOutput struct {
	Offset uint32 `json:"offset" msgpack:"o"`
	Line   uint32 `json:"line" msgpack:"l"`
	Column uint32 `json:"column" msgpack:"c"`
}

// TokenOutput is the serialisable shape of a token.
type TokenOutput struct {
	Kind  string            `json:"kind" msgpack:"kind"`
	Word  string            `json:"word,omitempty" msgpack:"word,omitempty"`
	Text  string            `json:"text,omitempty" msgpack:"text,omitempty"`
	Flag  string            `json:"flag,omitempty" msgpack:"flag,omitempty"`
	Float *token.FloatParts `json:"float,omitempty" msgpack:"float,omitempty"`
	Start PositionOutput    `json:"start" msgpack:"start"`
	End   PositionOutput    `json:"end" msgpack:"end"`
}

func toPositionOutput(p source.Position) PositionOutput {
	return PositionOutput{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// NewTokenOutput converts a token for JSON/msgpack output.
func NewTokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind:  tok.Kind.String(),
		Text:  tok.Text,
		Start: toPositionOutput(tok.Span.Start),
		End:   toPositionOutput(tok.Span.End),
	}
	if tok.Kind == token.Reserved {
		out.Word = tok.Word.String()
	}
	if tok.Flag != 0 {
		out.Flag = string(tok.Flag)
	}
	if tok.Kind == token.Float {
		fp := tok.Float
		out.Float = &fp
	}
	return out
}

func tokenOutputs(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, NewTokenOutput(tok))
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: Ident           "foo"  at 1:1-1:4
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, kindLabel(tok)); err != nil {
			return err
		}
		if lex := tok.Lexeme(); lex != "" && !tok.IsPunctOrOp() {
			if _, err := fmt.Fprintf(w, " %q", lex); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %s\n", tok.Span); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func kindLabel(tok token.Token) string {
	if tok.IsPunctOrOp() {
		return fmt.Sprintf("Punct(%s)", tok.Kind)
	}
	return tok.Kind.String()
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(tokenOutputs(tokens))
}

// DecodeTokensMsgpack reads a dump written by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode token dump: %w", err)
	}
	return out, nil
}

// FileTokensOutput is one file of a directory dump.
type FileTokensOutput struct {
	Path        string        `json:"path" msgpack:"path"`
	Tokens      []TokenOutput `json:"tokens,omitempty" msgpack:"tokens,omitempty"`
	TokenCount  int           `json:"token_count" msgpack:"token_count"`
	Diagnostics int           `json:"diagnostics" msgpack:"diagnostics"`
}

// NewFileTokensOutput summarizes a file; tokens are included only when withTokens is set.
func NewFileTokensOutput(path string, tokens []token.Token, diagnostics int, withTokens bool) FileTokensOutput {
	out := FileTokensOutput{Path: path, TokenCount: len(tokens), Diagnostics: diagnostics}
	if withTokens {
		out.Tokens = tokenOutputs(tokens)
	}
	return out
}

// FormatFilesJSON пишет сводку по файлам JSON-массивом.
func FormatFilesJSON(w io.Writer, files []FileTokensOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(files)
}

// FormatFilesMsgpack пишет сводку по файлам msgpack-массивом.
func FormatFilesMsgpack(w io.Writer, files []FileTokensOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(files)
}
