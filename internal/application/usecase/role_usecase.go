package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// RoleUseCase casos de uso para roles y su catálogo de permisos. También
// resuelve el conjunto de permisos de un rol para el guard de rutas.
type RoleUseCase struct {
	repo     repository.RoleRepository
	permRepo repository.PermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo, permRepo: permRepo}
}

// Create crea un rol de nombre único.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// GetByID obtiene un rol por ID.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NotFound("Role")
	}
	return toRoleResponse(role), nil
}

// List devuelve todos los roles. Un resultado vacío es NotFound.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Role")
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

// Update aplica un parche parcial y devuelve el rol releído.
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	affected, err := uc.repo.Update(id, repository.RolePatch{Name: in.Name})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Role")
	}
	return uc.GetByID(id)
}

// Remove elimina un rol por ID y devuelve el id borrado.
func (uc *RoleUseCase) Remove(id string) (string, error) {
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", domain.NotFound("Role")
	}
	return id, nil
}

// AssignPermission concede un permiso a un rol. Resuelve rol y permiso (el
// ausente corta con NotFound nombrándolo); re-conceder uno ya presente es un
// no-op, el conjunto del rol es la unión de todo lo concedido.
func (uc *RoleUseCase) AssignPermission(roleID, permissionID string) error {
	role, err := uc.repo.GetByID(roleID)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.NotFound("Role")
	}
	perm, err := uc.permRepo.GetByID(permissionID)
	if err != nil {
		return err
	}
	if perm == nil {
		return domain.NotFound("Permission")
	}
	return uc.repo.AddPermission(roleID, permissionID)
}

// Permissions devuelve la unión de permisos concedidos a un rol.
func (uc *RoleUseCase) Permissions(roleID string) (*dto.PermissionListResponse, error) {
	role, err := uc.repo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NotFound("Role")
	}
	perms, err := uc.repo.Permissions(roleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		items = append(items, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return &dto.PermissionListResponse{Items: items}, nil
}

// PermissionSet resuelve el conjunto de permisos de un rol para la decisión
// de acceso. Lo consume el guard de rutas en cada petición protegida.
func (uc *RoleUseCase) PermissionSet(roleID string) (access.PermissionSet, error) {
	perms, err := uc.repo.Permissions(roleID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Name)
	}
	return access.NewPermissionSet(names...), nil
}

// CreatePermission registra un permiso en el catálogo.
func (uc *RoleUseCase) CreatePermission(in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	existing, err := uc.permRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	perm := &entity.Permission{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.permRepo.Create(perm); err != nil {
		return nil, err
	}
	return &dto.PermissionResponse{ID: perm.ID, Name: perm.Name}, nil
}

// ListPermissions devuelve el catálogo completo de permisos.
func (uc *RoleUseCase) ListPermissions() (*dto.PermissionListResponse, error) {
	perms, err := uc.permRepo.List()
	if err != nil {
		return nil, err
	}
	if len(perms) == 0 {
		return nil, domain.NotFound("Permission")
	}
	items := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		items = append(items, dto.PermissionResponse{ID: p.ID, Name: p.Name})
	}
	return &dto.PermissionListResponse{Items: items}, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
