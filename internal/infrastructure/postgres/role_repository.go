package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL,
// incluida la tabla de unión role_permissions.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol. El nombre es único.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.Name, role.CreatedAt, role.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene un rol por nombre.
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *RoleRepo) getBy(where string, arg any) (*entity.Role, error) {
	query := `SELECT id, name, created_at, updated_at FROM roles ` + where
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// List lista todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *RoleRepo) Update(id string, p repository.RolePatch) (int64, error) {
	sets, args := []string{"updated_at = now()"}, []any{id}
	if p.Name != nil {
		args = append(args, *p.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	query := fmt.Sprintf("UPDATE roles SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update role: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un rol y devuelve filas afectadas. Sus concesiones caen con
// él.
func (r *RoleRepo) Delete(id string) (int64, error) {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, id); err != nil {
		return 0, fmt.Errorf("delete role grants: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete role: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// AddPermission concede un permiso al rol. ON CONFLICT DO NOTHING hace la
// concesión idempotente.
func (r *RoleRepo) AddPermission(roleID, permissionID string) error {
	query := `
		INSERT INTO role_permissions (role_id, permission_id)
		VALUES ($1, $2)
		ON CONFLICT (role_id, permission_id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, roleID, permissionID)
	if err != nil {
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}

// Permissions devuelve la unión de permisos concedidos al rol.
func (r *RoleRepo) Permissions(roleID string) ([]*entity.Permission, error) {
	query := `
		SELECT p.id, p.name, p.created_at
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository.
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador de persistencia para
// permisos.
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Create persiste un permiso. El nombre es único.
func (r *PermissionRepo) Create(p *entity.Permission) error {
	query := `INSERT INTO permissions (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, p.ID, p.Name, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID.
func (r *PermissionRepo) GetByID(id string) (*entity.Permission, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByName obtiene un permiso por nombre.
func (r *PermissionRepo) GetByName(name string) (*entity.Permission, error) {
	return r.getBy(`WHERE name = $1`, name)
}

func (r *PermissionRepo) getBy(where string, arg any) (*entity.Permission, error) {
	query := `SELECT id, name, created_at FROM permissions ` + where
	var p entity.Permission
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// List lista el catálogo completo de permisos.
func (r *PermissionRepo) List() ([]*entity.Permission, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, created_at FROM permissions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
