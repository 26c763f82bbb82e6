// Package access contiene el catálogo de permisos y la decisión pura de
// autorización: un rol puede ejecutar una operación sii su conjunto de
// permisos es superconjunto del conjunto requerido por la operación.
package access

// Catálogo de permisos. Cada ruta protegida declara el subconjunto que exige.
const (
	PermBloodRead    = "blood_read"
	PermBloodWrite   = "blood_write"
	PermDonorRead    = "donor_read"
	PermDonorWrite   = "donor_write"
	PermEntityRead   = "entity_read"
	PermEntityWrite  = "entity_write"
	PermRequestRead  = "request_read"
	PermRequestWrite = "request_write"
	PermBagRead      = "bag_read"
	PermBagWrite     = "bag_write"
	PermRoleManage   = "role_manage"
	PermUserRead     = "user_read"
)

// All lista el catálogo completo (usado por cmd/seed).
var All = []string{
	PermBloodRead, PermBloodWrite,
	PermDonorRead, PermDonorWrite,
	PermEntityRead, PermEntityWrite,
	PermRequestRead, PermRequestWrite,
	PermBagRead, PermBagWrite,
	PermRoleManage, PermUserRead,
}

// PermissionSet es el conjunto de permisos resuelto de un rol.
type PermissionSet map[string]struct{}

// NewPermissionSet construye el conjunto a partir de nombres de permiso.
func NewPermissionSet(names ...string) PermissionSet {
	set := make(PermissionSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// Has reporta si el conjunto contiene el permiso.
func (s PermissionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Allowed decide permitir/denegar: permitir sii granted ⊇ required. Una
// operación sin permisos requeridos se permite a cualquier identidad
// autenticada; la ausencia de identidad se rechaza antes (middleware JWT).
func Allowed(granted PermissionSet, required ...string) bool {
	for _, r := range required {
		if !granted.Has(r) {
			return false
		}
	}
	return true
}
