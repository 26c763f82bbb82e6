package entity

import "time"

// User representa una identidad del sistema con email único y exactamente un
// rol. Donor y HealthEntity referencian a su User por id; el User no embebe
// a ninguno de los dos (relaciones por id, sin ciclos).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
