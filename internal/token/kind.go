package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// Newline is a line break that may terminate a statement (ASI).
	Newline

	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Semicolon // ;
	Colon     // :
	Comma     // ,
	Dot       // .

	Lt         // <
	LtEq       // <=
	Shl        // <<
	ShlAssign  // <<=
	Gt         // >
	GtEq       // >=
	Shr        // >>
	ShrAssign  // >>=
	UShr       // >>>
	UShrAssign // >>>=

	Assign   // =
	EqEq     // ==
	EqEqEq   // ===
	Bang     // !
	BangEq   // !=
	BangEqEq // !==

	Plus        // +
	PlusPlus    // ++
	PlusAssign  // +=
	Minus       // -
	MinusMinus  // --
	MinusAssign // -=

	Star          // *
	StarAssign    // *=
	Percent       // %
	PercentAssign // %=
	Caret         // ^
	CaretAssign   // ^=
	Slash         // /
	SlashAssign   // /=

	Amp    // &
	AndAnd // &&
	Pipe   // |
	OrOr   // ||

	Tilde    // ~
	Question // ?

	// Ident is an identifier; Text holds its spelling.
	Ident
	// Reserved is a reserved word; Word holds which one.
	Reserved

	// DecimalInt holds the digits in Text.
	DecimalInt
	// HexInt holds the 'x'/'X' marker in Flag and the digits in Text.
	HexInt
	// OctalInt holds 'o'/'O' in Flag (0 for legacy "017" form) and the digits in Text.
	OctalInt
	// Float holds its parts in Token.Float.
	Float
	// String holds the body between the quotes, escapes preserved.
	String
	// RegExp holds the raw body between the slashes.
	RegExp

	numKinds
)

var kindNames = [numKinds]string{
	EOF:           "EOF",
	Newline:       "Newline",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	LParen:        "(",
	RParen:        ")",
	Semicolon:     ";",
	Colon:         ":",
	Comma:         ",",
	Dot:           ".",
	Lt:            "<",
	LtEq:          "<=",
	Shl:           "<<",
	ShlAssign:     "<<=",
	Gt:            ">",
	GtEq:          ">=",
	Shr:           ">>",
	ShrAssign:     ">>=",
	UShr:          ">>>",
	UShrAssign:    ">>>=",
	Assign:        "=",
	EqEq:          "==",
	EqEqEq:        "===",
	Bang:          "!",
	BangEq:        "!=",
	BangEqEq:      "!==",
	Plus:          "+",
	PlusPlus:      "++",
	PlusAssign:    "+=",
	Minus:         "-",
	MinusMinus:    "--",
	MinusAssign:   "-=",
	Star:          "*",
	StarAssign:    "*=",
	Percent:       "%",
	PercentAssign: "%=",
	Caret:         "^",
	CaretAssign:   "^=",
	Slash:         "/",
	SlashAssign:   "/=",
	Amp:           "&",
	AndAnd:        "&&",
	Pipe:          "|",
	OrOr:          "||",
	Tilde:         "~",
	Question:      "?",
	Ident:         "Ident",
	Reserved:      "Reserved",
	DecimalInt:    "DecimalInt",
	HexInt:        "HexInt",
	OctalInt:      "OctalInt",
	Float:         "Float",
	String:        "String",
	RegExp:        "RegExp",
}

// String returns the punctuator spelling or the kind name.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether the kind marks end of input.
func (k Kind) IsEOF() bool { return k == EOF }
