package entity

import "time"

// Nombres de rol sembrados por cmd/seed.
const (
	RoleAdmin  = "admin"
	RoleEntity = "entity"
	RoleDonor  = "donor"
)

// Role agrupa permisos bajo un nombre. Muchos usuarios referencian un rol;
// la relación rol-permiso es muchos a muchos (tabla role_permissions).
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Permission es una capacidad nombrada (ej. "donor_read") exigible por
// operación. El catálogo vive en internal/domain/access.
type Permission struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
