package dto

import "time"

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateRoleRequest entrada parcial para actualizar un rol.
type UpdateRoleRequest struct {
	Name *string `json:"name"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleListResponse lista de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}

// CreatePermissionRequest entrada para registrar un permiso en el catálogo.
type CreatePermissionRequest struct {
	Name string `json:"name" validate:"required"`
}

// PermissionResponse salida de un permiso.
type PermissionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PermissionListResponse permisos de un rol o catálogo completo.
type PermissionListResponse struct {
	Items []PermissionResponse `json:"items"`
}

// AssignPermissionRequest entrada para conceder un permiso a un rol.
type AssignPermissionRequest struct {
	PermissionID string `json:"permission_id" validate:"required,uuid"`
}
