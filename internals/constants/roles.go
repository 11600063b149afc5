package constants

import "fmt"

// Role es un enum cerrado: solo los tres valores de abajo son válidos.
// El valor string es el mismo que se guarda en la columna users_role.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRADOR"
	RoleInstructor    Role = "INSTRUCTOR"
	RoleApprentice    Role = "APRENDIZ"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleInstructor, RoleApprentice:
		return true
	}
	return false
}

// ParseRole rechaza cualquier valor fuera del enum.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("rol inválido: %q", s)
	}
	return r, nil
}

// Template pesan error role
const (
	ErrOnlyStaffCanAccess      = "Solo instructores o administradores pueden acceder a %s."
	ErrOnlyAdminsCanAccess     = "Solo administradores pueden acceder a %s."
	ErrOnlyApprenticeCanAccess = "Solo aprendices pueden acceder a %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorApprentice(feature string) string {
	return fmt.Sprintf(ErrOnlyApprenticeCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleAdministrator,
		RoleInstructor,
		RoleApprentice,
	}

	// Staff = roles que gestionan datos académicos.
	StaffRoles = []Role{
		RoleAdministrator,
		RoleInstructor,
	}

	AdminOnly = []Role{
		RoleAdministrator,
	}

	ApprenticeOnly = []Role{
		RoleApprentice,
	}
)

func RoleStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
