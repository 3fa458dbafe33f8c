// Package testkit holds reusable checks for token streams, shared by the
// lexer, driver and fuzz tests.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"eslex/internal/source"
	"eslex/internal/token"
)

// CheckTokenSpans runs the span invariants of a complete token stream for sf:
//  1. every span belongs to sf and does not run backwards
//  2. spans do not overlap and appear in source order
//  3. all offsets lie within the file, measured in runes
//  4. the stream ends with exactly one EOF placed at the end of the file
//
// Streams cut short by lexical errors only satisfy 1-3; pass complete=false for them.
func CheckTokenSpans(tokens []token.Token, sf *source.File, complete bool) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	runeCount, err := safecast.Conv[uint32](utf8.RuneCount(sf.Content))
	if err != nil {
		return fmt.Errorf("file too large: %w", err)
	}

	var prevEnd source.Position
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%v): file id %d, want %d", i, tok, sp.File, sf.ID)
		}
		if sp.End.Before(sp.Start) {
			return fmt.Errorf("token %d (%v): span %v runs backwards", i, tok, sp)
		}
		if sp.Start.Before(prevEnd) {
			return fmt.Errorf("token %d (%v): starts at %d before previous end %d", i, tok, sp.Start.Offset, prevEnd.Offset)
		}
		if sp.End.Offset > runeCount {
			return fmt.Errorf("token %d (%v): end offset %d past file end %d", i, tok, sp.End.Offset, runeCount)
		}
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("token %d: EOF before the end of the stream", i)
		}
		prevEnd = sp.End
	}

	if !complete {
		return nil
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF")
	}
	if eof := tokens[len(tokens)-1].Span; eof.Start.Offset != runeCount {
		return fmt.Errorf("EOF at offset %d, file has %d runes", eof.Start.Offset, runeCount)
	}
	return nil
}
