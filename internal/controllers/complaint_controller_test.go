package controllers

import (
	"testing"

	"society_connect/internal/apierr"
	"society_connect/internal/models"
)

func TestResolvedComplaintStatusFrozen(t *testing.T) {
	reopen := "open"
	resolved := models.ComplaintStatusResolved

	t.Run("resolved cannot be reopened", func(t *testing.T) {
		err := checkComplaintStatusChange(models.ComplaintStatusResolved, &reopen)
		if err == nil {
			t.Fatal("expected state conflict")
		}
		apiErr, ok := apierr.As(err)
		if !ok || apiErr.Kind != apierr.KindStateConflict {
			t.Errorf("got %v, want state conflict", err)
		}
	})

	t.Run("restating resolved is a no-op", func(t *testing.T) {
		if err := checkComplaintStatusChange(models.ComplaintStatusResolved, &resolved); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("update without status passes", func(t *testing.T) {
		if err := checkComplaintStatusChange(models.ComplaintStatusResolved, nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("open complaint can be resolved", func(t *testing.T) {
		if err := checkComplaintStatusChange("open", &resolved); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
