package controllers

import (
	"net/http"
	"testing"

	"society_connect/internal/apierr"
)

func TestBootstrapOnlyBeforeFirstUser(t *testing.T) {
	t.Run("allowed while user table is empty", func(t *testing.T) {
		if err := checkBootstrapAllowed(0); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejected once any user exists", func(t *testing.T) {
		for _, count := range []int64{1, 42} {
			err := checkBootstrapAllowed(count)
			if err == nil {
				t.Fatalf("count=%d: expected permission error", count)
			}
			apiErr, ok := apierr.As(err)
			if !ok || apiErr.Kind != apierr.KindAuthorization {
				t.Errorf("count=%d: got %v, want authorization error", count, err)
			}
			if apiErr != nil && apiErr.Status() != http.StatusForbidden {
				t.Errorf("count=%d: status = %d, want 403", count, apiErr.Status())
			}
		}
	})
}
