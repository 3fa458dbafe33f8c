package main

import (
	"fmt"
	"io"
	"os"

	"eslex/internal/config"
	"eslex/internal/diag"
	"eslex/internal/diagfmt"
	"eslex/internal/source"
	"eslex/internal/token"
)

func writeTokens(w io.Writer, format string, tokens []token.Token) error {
	switch format {
	case config.FormatPretty:
		return diagfmt.FormatTokensPretty(w, tokens)
	case config.FormatJSON:
		return diagfmt.FormatTokensJSON(w, tokens)
	case config.FormatMsgpack:
		return diagfmt.FormatTokensMsgpack(w, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeDiagnostics prints the bag to out: JSON when tokens go out as JSON,
// the pretty form otherwise.
func writeDiagnostics(out *os.File, s *settings, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	if s.cfg.Output.Format == config.FormatJSON {
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludeNotes: true})
	}
	return diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
		Color:     s.colorOn(out),
		ShowNotes: !s.quiet,
	})
}
