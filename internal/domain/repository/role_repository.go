package repository

import "github.com/JuanCami009/banco-sangre-api/internal/domain/entity"

// RolePatch campos parciales para actualizar un rol.
type RolePatch struct {
	Name *string
}

// RoleRepository define el puerto de persistencia para Role y su relación
// muchos-a-muchos con Permission.
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	GetByName(name string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(id string, patch RolePatch) (int64, error)
	Delete(id string) (int64, error)

	// AddPermission concede un permiso al rol. Re-conceder uno ya presente es
	// un no-op (ON CONFLICT DO NOTHING).
	AddPermission(roleID, permissionID string) error
	// Permissions devuelve la unión de permisos concedidos al rol.
	Permissions(roleID string) ([]*entity.Permission, error)
}

// PermissionRepository define el puerto de persistencia para Permission.
type PermissionRepository interface {
	Create(permission *entity.Permission) error
	GetByID(id string) (*entity.Permission, error)
	GetByName(name string) (*entity.Permission, error)
	List() ([]*entity.Permission, error)
}
