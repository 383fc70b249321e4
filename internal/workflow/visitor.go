// Package workflow holds the visitor approval state machine. Every rule
// about who may move a visitor record between states lives here, behind a
// single Transition function; controllers only translate requests into
// actions and persist the outcome.
package workflow

import (
	"society_connect/internal/apierr"
	"society_connect/internal/authz"
	"society_connect/internal/models"
)

// Status is a visitor record's workflow state.
type Status string

const (
	StatusScheduled       Status = "scheduled"
	StatusPendingApproval Status = "pending_approval"
	StatusCheckedIn       Status = "checked_in"
	StatusCheckedOut      Status = "checked_out"
	StatusCancelled       Status = "cancelled"
	StatusRejected        Status = "rejected"
)

// Action is an operation requested against a visitor record.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionCheckIn  Action = "check_in"
	ActionCheckOut Action = "check_out"
)

var knownStatuses = map[Status]bool{
	StatusScheduled:       true,
	StatusPendingApproval: true,
	StatusCheckedIn:       true,
	StatusCheckedOut:      true,
	StatusCancelled:       true,
	StatusRejected:        true,
}

// ValidStatus reports whether s is a known workflow state.
func ValidStatus(s Status) bool {
	return knownStatuses[s]
}

// Terminal reports whether no further transition is permitted from s.
func Terminal(s Status) bool {
	return s == StatusCheckedOut || s == StatusRejected || s == StatusCancelled
}

// InitialState returns the state and approval flag for a freshly created
// record. Residents, committee and admin self-schedule; security logging a
// walk-in without an explicit status needs a resident's decision first.
func InitialState(creator authz.Role, explicit Status) (Status, bool, error) {
	if explicit != "" {
		if !ValidStatus(explicit) {
			return "", false, apierr.Validation("Invalid visitor status: " + string(explicit))
		}
		// Any valid explicit status is stored as given, even an active
		// one with no matching timestamps. Backfilled records rely on
		// this, so no consistency is enforced at creation.
		return explicit, explicit == StatusScheduled, nil
	}
	if creator == authz.RoleSecurity {
		return StatusPendingApproval, false, nil
	}
	return StatusScheduled, true, nil
}

// Transition computes the next state for action performed by actor on a
// record in current state. Wrong actor for the action is an authorization
// failure; right actor from the wrong state is a state conflict. The two
// are never conflated.
func Transition(current Status, actor authz.Role, action Action) (Status, error) {
	switch action {
	case ActionCheckIn, ActionCheckOut:
		if actor != authz.RoleSecurity {
			return "", apierr.Forbidden("Only security can check visitors in or out")
		}
	case ActionApprove, ActionReject:
		if !actor.IsResident() {
			return "", apierr.Forbidden("Only residents can approve or reject visitors")
		}
	default:
		return "", apierr.Validation("Unknown visitor action: " + string(action))
	}

	switch action {
	case ActionCheckIn:
		switch current {
		case StatusScheduled:
			return StatusCheckedIn, nil
		case StatusPendingApproval:
			return "", apierr.StateConflict("Cannot check in visitor. Waiting for resident approval.")
		case StatusRejected:
			return "", apierr.StateConflict("Cannot check in rejected visitor.")
		case StatusCheckedIn:
			return "", apierr.StateConflict("Visitor is already checked in")
		default:
			return "", apierr.StateConflict("Cannot check in visitor from status " + string(current))
		}
	case ActionCheckOut:
		if current != StatusCheckedIn {
			return "", apierr.StateConflict("Cannot check out a visitor who is not checked in")
		}
		return StatusCheckedOut, nil
	case ActionApprove:
		if current != StatusPendingApproval {
			return "", apierr.StateConflict("Visitor is not awaiting approval")
		}
		return StatusScheduled, nil
	default: // ActionReject
		if current != StatusPendingApproval {
			return "", apierr.StateConflict("Visitor is not awaiting approval")
		}
		return StatusRejected, nil
	}
}

// ResolveApprover picks the resident whose decision a security-logged
// visitor awaits: an active, approved tenant of the flat if one exists,
// else the owner. Returns nil when the flat has no eligible resident.
func ResolveApprover(flatResidents []models.User) *uint {
	var owner *models.User
	for i := range flatResidents {
		u := &flatResidents[i]
		if !u.IsActive || !u.IsApproved {
			continue
		}
		switch authz.Role(u.Role) {
		case authz.RoleTenant:
			id := u.ID
			return &id
		case authz.RoleOwner:
			if owner == nil {
				owner = u
			}
		}
	}
	if owner != nil {
		id := owner.ID
		return &id
	}
	return nil
}

// VisibleSchedulers returns the scheduledBy ids whose records the viewer
// may see within their own flat. A tenant sees their own records plus the
// owner's (when an owner exists); an owner sees only their own. Records a
// tenant scheduled never show up in the owner's list.
func VisibleSchedulers(viewer models.User, flatResidents []models.User) []uint {
	ids := []uint{viewer.ID}
	if authz.Role(viewer.Role) != authz.RoleTenant {
		return ids
	}
	for _, u := range flatResidents {
		if authz.Role(u.Role) == authz.RoleOwner && u.ID != viewer.ID {
			ids = append(ids, u.ID)
		}
	}
	return ids
}
