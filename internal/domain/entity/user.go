package entity

// User representa un usuario del sistema (dueño de cero o más productos).
type User struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}
