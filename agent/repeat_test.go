package agent

import (
	"strings"
	"testing"
)

func TestCallSignatureDeterministic(t *testing.T) {
	a := callSignature("list_files", map[string]interface{}{"path": "."})
	b := callSignature("list_files", map[string]interface{}{"path": "."})
	if a != b {
		t.Errorf("identical calls must produce identical signatures: %q vs %q", a, b)
	}
	c := callSignature("list_files", map[string]interface{}{"path": "/tmp"})
	if a == c {
		t.Error("different arguments must produce different signatures")
	}
}

func TestDetectRepeatedCalls(t *testing.T) {
	sig := func(n string) string { return callSignature(n, nil) }

	tests := []struct {
		name   string
		sigs   []string
		window int
		want   bool
	}{
		{"single call repeated", []string{sig("a"), sig("a"), sig("a"), sig("a")}, 4, true},
		{"pair repeated", []string{sig("a"), sig("b"), sig("a"), sig("b")}, 4, true},
		{"no pattern", []string{sig("a"), sig("b"), sig("c"), sig("d")}, 4, false},
		{"too few calls", []string{sig("a"), sig("a")}, 4, false},
		{"pattern only in tail", []string{sig("x"), sig("a"), sig("a"), sig("a"), sig("a")}, 4, true},
		{"zero window", []string{sig("a")}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectRepeatedCalls(tt.sigs, tt.window); got != tt.want {
				t.Errorf("detectRepeatedCalls(window=%d) = %v, want %v", tt.window, got, tt.want)
			}
		})
	}
}

func TestTruncateResult(t *testing.T) {
	short := "small output"
	if got := truncateResult(short, 100); got != short {
		t.Errorf("output under the limit must pass through unchanged")
	}
	if got := truncateResult(strings.Repeat("x", 5000), 0); len(got) != 5000 {
		t.Errorf("limit 0 must disable truncation")
	}

	long := strings.Repeat("a", 500) + strings.Repeat("z", 500)
	got := truncateResult(long, 100)
	if !strings.Contains(got, "truncated") {
		t.Error("truncated output must carry the elision marker")
	}
	if !strings.HasPrefix(got, "aaaaa") || !strings.HasSuffix(got, "zzzzz") {
		t.Error("truncation must keep the head and the tail")
	}
}
