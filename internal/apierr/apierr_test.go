package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Unauthorized("no token"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{StateConflict("wrong state"), http.StatusBadRequest},
		{Validation("bad input"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		if got := tc.err.Status(); got != tc.status {
			t.Errorf("%q: status = %d, want %d", tc.err.Message, got, tc.status)
		}
	}
}

func TestPermissionAndStateAreDistinct(t *testing.T) {
	denied := Forbidden("only security can check visitors in")
	conflict := StateConflict("cannot check in from pending_approval")
	if denied.Kind == conflict.Kind {
		t.Fatal("authorization and state-conflict kinds must differ")
	}
	if denied.Status() == conflict.Status() {
		t.Fatal("authorization and state-conflict statuses must differ")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("visitor record not found"))
	apiErr, ok := As(wrapped)
	if !ok {
		t.Fatal("expected to unwrap api error")
	}
	if apiErr.Kind != KindNotFound {
		t.Errorf("kind = %d, want %d", apiErr.Kind, KindNotFound)
	}

	if _, ok := As(errors.New("plain")); ok {
		t.Error("plain error must not unwrap to api error")
	}
}

func TestValidationErrs(t *testing.T) {
	err := Validation("bad payload", "visitor_name is required", "flat_to_visit is required")
	if len(err.Errs) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errs))
	}
	if err.Error() != "bad payload" {
		t.Errorf("Error() = %q", err.Error())
	}
}
