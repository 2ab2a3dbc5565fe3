package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewfMatchesKindAndKeepsMessage(t *testing.T) {
	err := fmt.Errorf("add member: %w", Newf(ErrConflict, "User %d is already a member of team %d", 4, 2))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict in chain")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected ErrNotFound match")
	}
	if got := Detail(err); got != "User 4 is already a member of team 2" {
		t.Fatalf("Detail: got %q", got)
	}
	if got := Detail(errors.New("plain")); got != "plain" {
		t.Fatalf("Detail (plain): got %q", got)
	}
}
