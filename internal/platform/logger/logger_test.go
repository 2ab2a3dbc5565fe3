package logger

import (
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	got := sanitizeKVs([]interface{}{"user_id", 7, "password", "hunter2", "jwt_token", "abc", "dangling"})
	want := []interface{}{"user_id", 7, "password", "[REDACTED]", "jwt_token", "[REDACTED]", "dangling"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"production", "development", "test"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		l.With("service", "Test").Info("hello", "k", "v")
	}
	Nop().Error("discarded")
}
