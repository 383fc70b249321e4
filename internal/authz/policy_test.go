package authz

import "testing"

func TestRolePredicates(t *testing.T) {
	if !RoleOwner.IsResident() || !RoleTenant.IsResident() {
		t.Error("owner and tenant are residents")
	}
	for _, r := range []Role{RoleCommittee, RoleSecurity, RoleAdmin} {
		if r.IsResident() {
			t.Errorf("%s is not a resident", r)
		}
	}
	if !RoleCommittee.IsPrivileged() || !RoleAdmin.IsPrivileged() {
		t.Error("committee and admin are privileged")
	}
	if RoleSecurity.IsPrivileged() || RoleOwner.IsPrivileged() {
		t.Error("security and owner are not privileged")
	}
	if Role("landlord").Valid() {
		t.Error("unknown role must not validate")
	}
	if !RoleTenant.Valid() {
		t.Error("tenant is a valid role")
	}
}

func TestPolicyTable(t *testing.T) {
	cases := []struct {
		role     Role
		resource Resource
		action   Action
		want     bool
	}{
		{RoleTenant, ResourceNotice, ActionCreate, false},
		{RoleCommittee, ResourceNotice, ActionCreate, true},
		{RoleAdmin, ResourceBill, ActionDelete, true},
		{RoleOwner, ResourceBill, ActionDelete, false},
		{RoleSecurity, ResourceVisitor, ActionUpdate, true},
		{RoleOwner, ResourceVisitor, ActionCreate, true},
		{RoleTenant, ResourcePoll, ActionUpdate, true},  // voting
		{RoleTenant, ResourcePoll, ActionManage, false}, // closing
		{RoleSecurity, ResourcePayment, ActionManage, false},
		{RoleCommittee, ResourcePayment, ActionManage, true},
		{RoleTenant, ResourceUser, ActionDelete, false},
		{RoleAdmin, ResourceUser, ActionDelete, true},
	}
	for _, tc := range cases {
		if got := Can(tc.role, tc.resource, tc.action); got != tc.want {
			t.Errorf("Can(%s, %s, %s) = %v, want %v", tc.role, tc.resource, tc.action, got, tc.want)
		}
	}
}

func TestAllowedRoles(t *testing.T) {
	roles := AllowedRoles(ResourceNotice, ActionCreate)
	if len(roles) != 2 {
		t.Fatalf("expected committee+admin, got %v", roles)
	}
	if !HasRole(RoleCommittee, roles...) || !HasRole(RoleAdmin, roles...) {
		t.Errorf("expected committee and admin in %v", roles)
	}
	if AllowedRoles(Resource("garages"), ActionList) != nil {
		t.Error("unknown resource has no allowed roles")
	}
}
