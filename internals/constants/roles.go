package constants

import "fmt"

// Closed role set. Authorization checkpoints compare against these only.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess  = "❌ Only admin can access %s."
	ErrOnlyFacultyCanAccess = "❌ Only faculty or admin can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFaculty(feature string) string {
	return fmt.Sprintf(ErrOnlyFacultyCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleFaculty,
		RoleStudent,
	}

	FacultyAndAbove = []string{
		RoleFaculty,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// ValidRole reports whether s is one of the enumerated roles.
func ValidRole(s string) bool {
	for _, r := range AllRoles {
		if r == s {
			return true
		}
	}
	return false
}
