package domain

// Role is the membership level of a principal. The set is flat: there is no
// ordering between roles, and admin does not imply staff.
type Role string

const (
	RoleBasic Role = "basic"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBasic, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Gate is a named authorization requirement attached to a protected
// operation.
type Gate string

const (
	// GateUser passes any resolved principal regardless of role.
	GateUser Gate = "user"
	// GateStaff requires exactly the staff role. Admins do not pass.
	GateStaff Gate = "staff"
	// GateAdmin requires exactly the admin role.
	GateAdmin Gate = "admin"
	// GateStaffOrAdmin is the explicit union of staff and admin.
	GateStaffOrAdmin Gate = "staff-or-admin"
)

// Allows reports whether a principal holding role r passes the gate.
// Exact-match checks are deliberate: the role model is flat.
func (g Gate) Allows(r Role) bool {
	switch g {
	case GateUser:
		return true
	case GateStaff:
		return r == RoleStaff
	case GateAdmin:
		return r == RoleAdmin
	case GateStaffOrAdmin:
		return r == RoleStaff || r == RoleAdmin
	}
	return false
}
