package lexer

import (
	"eslex/internal/diag"
	"eslex/internal/source"
	"eslex/internal/token"
	"eslex/internal/trace"
)

type Options struct {
	// Reserved is the reserved-word table; nil means token.DefaultReserved().
	Reserved token.ReservedTable
	// Reporter receives every lexical error in addition to the returned error. May be nil.
	Reporter diag.Reporter
	// Tracer receives a point event per token and per error. May be nil.
	Tracer trace.Tracer
	// File is stamped into every token span.
	File source.FileID
}
