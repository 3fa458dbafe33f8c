package diag

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevNote, "NOTE"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(7), "Severity(7)"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestHasErrorsIgnoresLowerSeverities(t *testing.T) {
	b := NewBag(0)
	b.Add(New(SevNote, LexInfo, span(0, 0, 1), "n"))
	b.Add(New(SevWarning, LexInfo, span(0, 1, 2), "w"))
	if b.HasErrors() {
		t.Fatal("notes and warnings must not count as errors")
	}
	if SevWarning.IsError() || !SevError.IsError() || !Severity(7).IsError() {
		t.Fatal("IsError mismatch")
	}
	b.Add(NewError(LexUnexpectedChar, span(0, 2, 3), "e"))
	if !b.HasErrors() {
		t.Fatal("HasErrors() = false with an error present")
	}
}
