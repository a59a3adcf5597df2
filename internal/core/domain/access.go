package domain

// DepartmentFilter restricts which records a principal may see or touch.
// It is produced only by the access control evaluator so listing, reading and
// writing all apply the exact same scoping rule.
type DepartmentFilter struct {
	// All matches every department (super admin scope).
	All bool
	// Department is the single department matched when All is false.
	Department string
}

// MatchAllDepartments returns the unrestricted filter.
func MatchAllDepartments() DepartmentFilter {
	return DepartmentFilter{All: true}
}

// MatchDepartment returns a filter restricted to one department.
func MatchDepartment(department string) DepartmentFilter {
	return DepartmentFilter{Department: department}
}

// Matches reports whether a record in the given department is in scope.
func (f DepartmentFilter) Matches(department string) bool {
	return f.All || f.Department == department
}
