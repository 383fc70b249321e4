package workflow

import (
	"testing"

	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/models"
)

func TestInitialState(t *testing.T) {
	t.Run("resident self-schedules approved", func(t *testing.T) {
		for _, role := range []authz.Role{authz.RoleOwner, authz.RoleTenant, authz.RoleCommittee, authz.RoleAdmin} {
			status, approved, err := InitialState(role, "")
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", role, err)
			}
			if status != StatusScheduled {
				t.Errorf("%s: expected scheduled, got %s", role, status)
			}
			if !approved {
				t.Errorf("%s: expected isApproved=true", role)
			}
		}
	})

	t.Run("security walk-in awaits approval", func(t *testing.T) {
		status, approved, err := InitialState(authz.RoleSecurity, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != StatusPendingApproval {
			t.Errorf("expected pending_approval, got %s", status)
		}
		if approved {
			t.Error("expected isApproved=false")
		}
	})

	t.Run("explicit status wins", func(t *testing.T) {
		status, approved, err := InitialState(authz.RoleSecurity, StatusScheduled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != StatusScheduled || !approved {
			t.Errorf("expected scheduled/approved, got %s/%v", status, approved)
		}
	})

	t.Run("unknown explicit status rejected", func(t *testing.T) {
		_, _, err := InitialState(authz.RoleOwner, Status("teleported"))
		if err == nil {
			t.Fatal("expected error for unknown status")
		}
		assertKind(t, err, apierr.KindValidation)
	})
}

func TestTransitionCheckIn(t *testing.T) {
	t.Run("security checks in a scheduled visitor", func(t *testing.T) {
		next, err := Transition(StatusScheduled, authz.RoleSecurity, ActionCheckIn)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != StatusCheckedIn {
			t.Errorf("expected checked_in, got %s", next)
		}
	})

	t.Run("pending approval blocks check-in with a state conflict", func(t *testing.T) {
		_, err := Transition(StatusPendingApproval, authz.RoleSecurity, ActionCheckIn)
		assertKind(t, err, apierr.KindStateConflict)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		_, err := Transition(StatusRejected, authz.RoleSecurity, ActionCheckIn)
		assertKind(t, err, apierr.KindStateConflict)
	})

	t.Run("double check-in fails", func(t *testing.T) {
		_, err := Transition(StatusCheckedIn, authz.RoleSecurity, ActionCheckIn)
		assertKind(t, err, apierr.KindStateConflict)
	})

	t.Run("non-security may not check in", func(t *testing.T) {
		for _, role := range []authz.Role{authz.RoleOwner, authz.RoleTenant, authz.RoleCommittee, authz.RoleAdmin} {
			_, err := Transition(StatusScheduled, role, ActionCheckIn)
			assertKind(t, err, apierr.KindAuthorization)
		}
	})
}

func TestTransitionCheckOut(t *testing.T) {
	next, err := Transition(StatusCheckedIn, authz.RoleSecurity, ActionCheckOut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != StatusCheckedOut {
		t.Errorf("expected checked_out, got %s", next)
	}

	// Check-out is only valid from checked_in.
	for _, from := range []Status{StatusScheduled, StatusPendingApproval, StatusCheckedOut, StatusRejected, StatusCancelled} {
		_, err := Transition(from, authz.RoleSecurity, ActionCheckOut)
		assertKind(t, err, apierr.KindStateConflict)
	}
}

func TestTransitionApproval(t *testing.T) {
	t.Run("resident approves pending visitor", func(t *testing.T) {
		next, err := Transition(StatusPendingApproval, authz.RoleTenant, ActionApprove)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != StatusScheduled {
			t.Errorf("expected scheduled, got %s", next)
		}
	})

	t.Run("resident rejects pending visitor", func(t *testing.T) {
		next, err := Transition(StatusPendingApproval, authz.RoleOwner, ActionReject)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != StatusRejected {
			t.Errorf("expected rejected, got %s", next)
		}
	})

	t.Run("approving a non-pending visitor is a state conflict", func(t *testing.T) {
		_, err := Transition(StatusScheduled, authz.RoleTenant, ActionApprove)
		assertKind(t, err, apierr.KindStateConflict)
	})

	t.Run("security may not approve", func(t *testing.T) {
		_, err := Transition(StatusPendingApproval, authz.RoleSecurity, ActionApprove)
		assertKind(t, err, apierr.KindAuthorization)
	})
}

func TestTerminal(t *testing.T) {
	terminal := []Status{StatusCheckedOut, StatusRejected, StatusCancelled}
	for _, s := range terminal {
		if !Terminal(s) {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusScheduled, StatusPendingApproval, StatusCheckedIn} {
		if Terminal(s) {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestResolveApprover(t *testing.T) {
	owner := models.User{Role: "owner", IsActive: true, IsApproved: true}
	owner.ID = 1
	tenant := models.User{Role: "tenant", IsActive: true, IsApproved: true}
	tenant.ID = 2

	t.Run("tenant preferred over owner", func(t *testing.T) {
		got := ResolveApprover([]models.User{owner, tenant})
		if got == nil || *got != tenant.ID {
			t.Fatalf("expected tenant %d, got %v", tenant.ID, got)
		}
	})

	t.Run("owner when no tenant", func(t *testing.T) {
		got := ResolveApprover([]models.User{owner})
		if got == nil || *got != owner.ID {
			t.Fatalf("expected owner %d, got %v", owner.ID, got)
		}
	})

	t.Run("inactive tenant is skipped", func(t *testing.T) {
		inactive := tenant
		inactive.IsActive = false
		got := ResolveApprover([]models.User{inactive, owner})
		if got == nil || *got != owner.ID {
			t.Fatalf("expected owner %d, got %v", owner.ID, got)
		}
	})

	t.Run("unapproved residents never resolve", func(t *testing.T) {
		pending := owner
		pending.IsApproved = false
		if got := ResolveApprover([]models.User{pending}); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("empty flat resolves to nil", func(t *testing.T) {
		if got := ResolveApprover(nil); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestVisibleSchedulers(t *testing.T) {
	owner := models.User{Role: "owner", FlatNumber: "A-101"}
	owner.ID = 1
	tenant := models.User{Role: "tenant", FlatNumber: "A-101"}
	tenant.ID = 2
	flat := []models.User{owner, tenant}

	t.Run("tenant sees own and owner's records", func(t *testing.T) {
		ids := VisibleSchedulers(tenant, flat)
		if !containsID(ids, tenant.ID) || !containsID(ids, owner.ID) {
			t.Fatalf("expected tenant+owner ids, got %v", ids)
		}
	})

	t.Run("owner sees only their own records", func(t *testing.T) {
		ids := VisibleSchedulers(owner, flat)
		if len(ids) != 1 || ids[0] != owner.ID {
			t.Fatalf("expected only owner id, got %v", ids)
		}
	})

	t.Run("tenant alone sees only themself", func(t *testing.T) {
		ids := VisibleSchedulers(tenant, []models.User{tenant})
		if len(ids) != 1 || ids[0] != tenant.ID {
			t.Fatalf("expected only tenant id, got %v", ids)
		}
	})
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func assertKind(t *testing.T, err error, kind apierr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	apiErr, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected api error, got %T: %v", err, err)
	}
	if apiErr.Kind != kind {
		t.Fatalf("expected kind %d, got %d (%s)", kind, apiErr.Kind, apiErr.Message)
	}
}
