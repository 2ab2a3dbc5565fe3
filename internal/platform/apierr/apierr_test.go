package apierr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsUnwrapsWrappedErrors(t *testing.T) {
	base := BadRequest("team %d mismatch", 3)
	wrapped := fmt.Errorf("analyze: %w", base)

	got, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected *Error in chain")
	}
	if got.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", got.Status)
	}
	if got.Error() != "team 3 mismatch" {
		t.Fatalf("unexpected message: %q", got.Error())
	}
	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error should not match")
	}
}
