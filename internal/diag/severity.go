package diag

import "strconv"

// Severity ranks a diagnostic. Lexical errors are always SevError;
// the lower levels carry configuration and driver remarks.
type Severity uint8

const (
	SevNote Severity = iota // пояснение, не влияет на код выхода
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevNote:    "NOTE",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// IsError reports whether s fails a run.
func (s Severity) IsError() bool {
	return s >= SevError
}
