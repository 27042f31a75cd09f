package entity

// Roles válidos para AdminGrant.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// AdminGrant marca a un usuario con rol elevado. Solo lectura dentro de este núcleo:
// la ausencia de grant implica acceso denegado a las rutas administrativas.
type AdminGrant struct {
	ID     int64
	UserID int64
	Role   string // admin | superadmin
}
