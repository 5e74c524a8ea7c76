package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyEmployeesCanAccess = "❌ Hanya employee yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEmployee(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployeesCanAccess, feature)
}

var AllRoles = []string{RoleAdmin, RoleEmployee}
