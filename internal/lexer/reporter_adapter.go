package lexer

import (
	"errors"

	"eslex/internal/diag"
	"eslex/internal/source"
	"eslex/internal/trace"
)

// ReporterAdapter адаптирует *diag.Bag для Options.Reporter.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards diagnostics to the adapter's bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.BagReporter{Bag: r.Bag}
}

// Diagnostic converts a lexical error into a diagnostic anchored at start.
// Errors that are not *Error become LexReadError.
func Diagnostic(err error, file source.FileID, start source.Position) diag.Diagnostic {
	var lexErr *Error
	if !errors.As(err, &lexErr) {
		return diag.NewError(diag.LexReadError, source.Span{File: file, Start: start, End: start}, err.Error())
	}
	end := lexErr.Pos
	if lexErr.Kind == UnexpectedChar || lexErr.Kind == InvalidDigit {
		// подсвечиваем сам символ
		end.Offset++
		end.Column++
	}
	sp := source.Span{File: file, Start: start, End: end}
	return diag.NewError(lexErr.Kind.Code(), sp, lexErr.Message())
}

func (lx *Lexer) report(err error) {
	if lx.opts.Reporter == nil && !lx.tracer.Enabled() {
		return
	}
	d := Diagnostic(err, lx.opts.File, lx.start)
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, d.Code, d.Primary, d.Message).Emit()
	}
	trace.Point(lx.tracer, trace.ScopeToken, trace.KindError, "lex-error", err.Error(), map[string]string{
		"code": d.Code.ID(),
	})
}
