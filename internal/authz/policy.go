package authz

// Role is the set of actor roles known to the portal.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleTenant    Role = "tenant"
	RoleCommittee Role = "committee"
	RoleSecurity  Role = "security"
	RoleAdmin     Role = "admin"
)

// Resource names a guarded resource kind.
type Resource string

const (
	ResourceUser      Resource = "users"
	ResourceNotice    Resource = "notices"
	ResourceBill      Resource = "maintenance"
	ResourcePayment   Resource = "payments"
	ResourceComplaint Resource = "complaints"
	ResourcePoll      Resource = "polls"
	ResourceVisitor   Resource = "visitors"
	ResourcePost      Resource = "community"
)

// Action is a coarse operation on a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionManage Action = "manage" // administrative status/assignment changes
)

var allRoles = []Role{RoleOwner, RoleTenant, RoleCommittee, RoleSecurity, RoleAdmin}

var privileged = []Role{RoleCommittee, RoleAdmin}

// policy maps resource/action pairs to the roles allowed to attempt them.
// Ownership refinements (only the creator may touch a record) are enforced
// by the controllers on top of this table.
var policy = map[Resource]map[Action][]Role{
	ResourceUser: {
		ActionList:   allRoles,
		ActionUpdate: privileged,
		ActionDelete: privileged,
		ActionManage: privileged,
	},
	ResourceNotice: {
		ActionCreate: privileged,
		ActionList:   allRoles,
		ActionUpdate: privileged,
		ActionDelete: privileged,
	},
	ResourceBill: {
		ActionCreate: privileged,
		ActionList:   allRoles,
		ActionUpdate: privileged,
		ActionDelete: privileged,
	},
	ResourcePayment: {
		ActionCreate: allRoles,
		ActionList:   allRoles,
		ActionManage: privileged,
	},
	ResourceComplaint: {
		ActionCreate: allRoles,
		ActionList:   allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	ResourcePoll: {
		ActionCreate: privileged,
		ActionList:   allRoles,
		ActionUpdate: allRoles, // voting
		ActionManage: privileged,
		ActionDelete: privileged,
	},
	ResourceVisitor: {
		ActionCreate: allRoles,
		ActionList:   allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
	ResourcePost: {
		ActionCreate: allRoles,
		ActionList:   allRoles,
		ActionUpdate: allRoles,
		ActionDelete: allRoles,
	},
}

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// IsResident reports whether r is an owner or tenant. The two are a
// co-equal pair everywhere in the portal.
func (r Role) IsResident() bool {
	return r == RoleOwner || r == RoleTenant
}

// IsPrivileged reports whether r may administer records it does not own.
func (r Role) IsPrivileged() bool {
	return r == RoleCommittee || r == RoleAdmin
}

// Can reports whether role may attempt action on resource.
func Can(role Role, resource Resource, action Action) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	return HasRole(role, actions[action]...)
}

// AllowedRoles returns the role set permitted for resource/action.
func AllowedRoles(resource Resource, action Action) []Role {
	actions, ok := policy[resource]
	if !ok {
		return nil
	}
	return actions[action]
}

// HasRole reports whether role is in the given set.
func HasRole(role Role, roles ...Role) bool {
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}
