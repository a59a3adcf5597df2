package domain

import "time"

// DepartmentAll is the sentinel department of a super admin. It matches every
// department in scope checks and is never a legal department for a student or
// a department admin.
const DepartmentAll = "ALL"

// PrincipalKind discriminates the two authenticated principal kinds.
type PrincipalKind string

const (
	KindStudent PrincipalKind = "student"
	KindAdmin   PrincipalKind = "admin"
)

// AdminRole defines the possible roles of an admin principal.
type AdminRole string

const (
	RoleSuperAdmin      AdminRole = "super_admin"
	RoleDepartmentAdmin AdminRole = "department_admin"
)

// Principal is an authenticated actor performing an operation. For students
// Role is empty and Department is the student's own department; for admins
// Role is set and a super admin's Department is DepartmentAll.
type Principal struct {
	Kind       PrincipalKind `json:"kind"`
	ID         string        `json:"id"`
	Role       AdminRole     `json:"role,omitempty"`
	Department string        `json:"department"`
}

// IsSuperAdmin reports whether the principal is an admin with the super role.
func (p Principal) IsSuperAdmin() bool {
	return p.Kind == KindAdmin && p.Role == RoleSuperAdmin
}

// Student represents a provisioned student account.
type Student struct {
	Username        string `json:"username"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	SupervisorEmail string `json:"supervisorEmail"`
	Department      string `json:"department"`
	AuditFields
}

// Principal returns the access-control view of the student.
func (s Student) Principal() Principal {
	return Principal{Kind: KindStudent, ID: s.Username, Department: s.Department}
}

// Admin represents a provisioned admin account. A super admin's Department is
// DepartmentAll.
type Admin struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       AdminRole `json:"role"`
	AuditFields
}

// Principal returns the access-control view of the admin.
func (a Admin) Principal() Principal {
	return Principal{Kind: KindAdmin, ID: a.Username, Role: a.Role, Department: a.Department}
}

// Supervisor is an external sign-off contact. Supervisors never authenticate;
// they act only through emailed verification tokens.
type Supervisor struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
