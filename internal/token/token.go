package token

import (
	"fmt"
	"strings"

	"eslex/internal/source"
)

// FloatParts holds the textual parts of a float literal.
// An empty part is absent: ".5" has no Int, "1." has no Frac.
type FloatParts struct {
	Int  string `msgpack:"int,omitempty" json:"int,omitempty"`
	Frac string `msgpack:"frac,omitempty" json:"frac,omitempty"`
	Exp  string `msgpack:"exp,omitempty" json:"exp,omitempty"` // includes the marker and sign, e.g. "e-2"
}

// Token represents a single source token with its location.
type Token struct {
	Kind  Kind
	Word  Word // только для Reserved
	Text  string
	Flag  rune // 'x'/'X' for HexInt, 'o'/'O' or 0 for OctalInt
	Float FloatParts
	Span  source.Span
}

// IsLiteral reports whether the token is a numeric, string or regexp literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case DecimalInt, HexInt, OctalInt, Float, String, RegExp:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuator or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LBrace && t.Kind <= Question
}

// IsReserved reports whether the token is the given reserved word.
func (t Token) IsReserved(w Word) bool { return t.Kind == Reserved && t.Word == w }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsLegacyOctal reports whether an octal literal was written without the 0o marker.
func (t Token) IsLegacyOctal() bool { return t.Kind == OctalInt && t.Flag == 0 }

// Lexeme reconstructs the source spelling of the token.
func (t Token) Lexeme() string {
	switch t.Kind {
	case EOF, Newline:
		return ""
	case Ident, DecimalInt:
		return t.Text
	case Reserved:
		return t.Word.String()
	case HexInt:
		return "0" + string(t.Flag) + t.Text
	case OctalInt:
		if t.Flag == 0 {
			return "0" + t.Text
		}
		return "0" + string(t.Flag) + t.Text
	case Float:
		var sb strings.Builder
		sb.WriteString(t.Float.Int)
		if t.Float.Frac != "" || t.Float.Exp == "" || t.Float.Int == "" {
			sb.WriteByte('.')
		}
		sb.WriteString(t.Float.Frac)
		sb.WriteString(t.Float.Exp)
		return sb.String()
	case String:
		return `"` + t.Text + `"`
	case RegExp:
		return "/" + t.Text + "/"
	default:
		return t.Kind.String()
	}
}

// String formats the token for debugging.
func (t Token) String() string {
	switch t.Kind {
	case EOF, Newline:
		return t.Kind.String()
	case Reserved:
		return fmt.Sprintf("Reserved(%s)", t.Word)
	case Ident, DecimalInt, HexInt, OctalInt, Float, String, RegExp:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme())
	default:
		return fmt.Sprintf("%q", t.Kind.String())
	}
}
