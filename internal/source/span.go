package source

import (
	"fmt"
)

// Span is a half-open [Start, End) range of positions inside one file.
type Span struct {
	File  FileID
	Start Position
	End   Position
}

func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Len returns the span length in runes.
func (s Span) Len() uint32 {
	return s.End.Offset - s.Start.Offset
}

// String renders the span with one-based lines and columns.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line+1, s.Start.Column+1, s.End.Line+1, s.End.Column+1)
}

func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}
