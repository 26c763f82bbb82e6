package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
)

func TestAllowed_SuperconjuntoPermite(t *testing.T) {
	granted := access.NewPermissionSet(
		access.PermBloodRead, access.PermRequestRead, access.PermRequestWrite,
	)

	assert.True(t, access.Allowed(granted, access.PermRequestRead))
	assert.True(t, access.Allowed(granted, access.PermRequestRead, access.PermBloodRead))
	// Igualdad exacta también es superconjunto.
	assert.True(t, access.Allowed(granted,
		access.PermBloodRead, access.PermRequestRead, access.PermRequestWrite))
}

func TestAllowed_PermisoFaltanteDeniega(t *testing.T) {
	granted := access.NewPermissionSet(access.PermBloodRead, access.PermRequestRead)

	// Basta con que falte uno de los requeridos.
	assert.False(t, access.Allowed(granted, access.PermBloodWrite))
	assert.False(t, access.Allowed(granted, access.PermRequestRead, access.PermRequestWrite))
}

func TestAllowed_SinRequeridosPermiteSiempre(t *testing.T) {
	assert.True(t, access.Allowed(access.NewPermissionSet()),
		"una operación sin permisos requeridos se permite incluso con conjunto vacío")
	assert.True(t, access.Allowed(access.NewPermissionSet(access.PermBloodRead)))
}

func TestAllowed_ConjuntoVacioDeniegaCualquierRequerido(t *testing.T) {
	empty := access.NewPermissionSet()
	assert.False(t, access.Allowed(empty, access.PermBloodRead))
}

func TestPermissionSet_Has(t *testing.T) {
	set := access.NewPermissionSet(access.PermRoleManage)
	assert.True(t, set.Has(access.PermRoleManage))
	assert.False(t, set.Has(access.PermUserRead))
}

func TestAll_CatalogoSinDuplicados(t *testing.T) {
	seen := make(map[string]bool, len(access.All))
	for _, name := range access.All {
		assert.False(t, seen[name], "permiso duplicado en el catálogo: %s", name)
		seen[name] = true
	}
	assert.Len(t, access.All, 12)
}
