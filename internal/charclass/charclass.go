// Package charclass classifies single runes for the lexer.
//
// All predicates are pure and total over Unicode scalar values. Non-ASCII
// identifier membership is decided by two generated range tables, not by the
// full Unicode database.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// idContinueTable = idStartTable ∪ idContinueExtraTable.
var idContinueTable = rangetable.Merge(idStartTable, idContinueExtraTable)

const runeSelf = 0x80

// IsLineTerminator reports whether r is LF, CR, LS or PS.
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// IsWhitespace reports whether r is insignificant whitespace.
// Line terminators are not whitespace.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\v', '\f', ' ', '\u00A0',
		'\u1680', '\u2000', '\u2001', '\u2002', '\u2003', '\u2004',
		'\u2005', '\u2006', '\u2009', '\u200A', '\u202F', '\u205F',
		'\u3000', '\uFEFF':
		return true
	default:
		return false
	}
}

// IsIdentifierStart reports whether r may begin an identifier.
func IsIdentifierStart(r rune) bool {
	if r < runeSelf {
		return r == '$' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return IsNonASCIIIdentifierStart(r)
}

// IsIdentifierContinue reports whether r may continue an identifier.
func IsIdentifierContinue(r rune) bool {
	if r < runeSelf {
		return IsIdentifierStart(r) || IsDecimalDigit(r)
	}
	return IsNonASCIIIdentifierContinue(r)
}

// IsNonASCIIIdentifierStart reports membership in the ID-start table.
func IsNonASCIIIdentifierStart(r rune) bool {
	return r >= runeSelf && unicode.Is(idStartTable, r)
}

// IsNonASCIIIdentifierContinue reports membership in the ID-continue table.
func IsNonASCIIIdentifierContinue(r rune) bool {
	return r >= runeSelf && unicode.Is(idContinueTable, r)
}

// IsSingleEscapeChar reports whether r may follow a backslash as a
// single-character escape.
func IsSingleEscapeChar(r rune) bool {
	switch r {
	case '\'', '"', '\\', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	default:
		return false
	}
}

func IsDecimalDigit(r rune) bool { return r >= '0' && r <= '9' }

func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func IsOctDigit(r rune) bool { return r >= '0' && r <= '7' }
