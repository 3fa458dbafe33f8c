package version

import (
	"strings"
	"testing"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func TestStyledPlain(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.2.3-rc.1", "1.2.3-rc.1"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		withVersion(t, tt.version)
		if got := Styled(false); got != tt.want {
			t.Errorf("Styled(false) for %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestStyledColored(t *testing.T) {
	withVersion(t, "1.2.3-dev")
	got := Styled(true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes in %q", got)
	}
	if !strings.HasSuffix(got, "-dev") {
		t.Fatalf("suffix lost: %q", got)
	}
}
