package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
	"github.com/gofiber/fiber/v2"
)

// permissionResolver es el contrato mínimo que necesita el middleware para
// resolver los permisos de un rol. Lo implementa *usecase.RoleUseCase; el uso
// de interfaz evita el acoplamiento directo con la capa de aplicación.
type permissionResolver interface {
	PermissionSet(roleID string) (access.PermissionSet, error)
}

// RequirePermissions devuelve un middleware Fiber que verifica que el rol del
// token JWT tenga TODOS los permisos requeridos por la ruta. Debe usarse
// DESPUÉS de AuthMiddleware (necesita LocalRoleID).
//
// Comportamiento:
//   - sin permisos requeridos → cualquier identidad autenticada pasa.
//   - 403 Forbidden → al rol le falta al menos un permiso requerido.
//   - fallo de infraestructura al resolver permisos → 500 vía respondError,
//     igual que el resto de la capa de transporte.
//   - Si no hay role_id en el contexto, responde 401 (el AuthMiddleware
//     debería haberlo puesto).
func RequirePermissions(resolver permissionResolver, required ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		if roleID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role_id not found in token",
			})
		}

		granted, err := resolver.PermissionSet(roleID)
		if err != nil {
			return respondError(c, err)
		}

		if !access.Allowed(granted, required...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "role lacks the required permissions",
			})
		}

		return c.Next()
	}
}
