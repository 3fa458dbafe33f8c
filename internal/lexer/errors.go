package lexer

import (
	"errors"
	"fmt"

	"eslex/internal/diag"
	"eslex/internal/source"
)

// ErrorKind is the closed set of lexical failures.
type ErrorKind uint8

const (
	UnexpectedEOF ErrorKind = iota + 1
	UnexpectedChar
	InvalidDigit
	ReadFailure
)

// Sentinels for errors.Is; *Error matches the one of its kind.
var (
	ErrUnexpectedEOF  = errors.New("unexpected end of input")
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrInvalidDigit   = errors.New("invalid digit")
	ErrRead           = errors.New("read failure")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case UnexpectedChar:
		return ErrUnexpectedChar
	case InvalidDigit:
		return ErrInvalidDigit
	case ReadFailure:
		return ErrRead
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown lexical error"
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnexpectedEOF:
		return diag.LexUnexpectedEOF
	case UnexpectedChar:
		return diag.LexUnexpectedChar
	case InvalidDigit:
		return diag.LexInvalidDigit
	case ReadFailure:
		return diag.LexReadError
	}
	return diag.UnknownCode
}

// Error is a lexical error. Char is set for UnexpectedChar and InvalidDigit.
// Pos is where the offending rune (or end of input) was found.
type Error struct {
	Kind ErrorKind
	Char rune
	Pos  source.Position
	Err  error // причина для ReadFailure
}

// Message is the error text without the position prefix.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedChar, InvalidDigit:
		return fmt.Sprintf("%s %q", e.Kind, e.Char)
	case ReadFailure:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
	}
	return e.Kind.String()
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line+1, e.Pos.Column+1, e.Message())
}

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error { return e.Err }
