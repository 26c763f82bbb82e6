package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/auth"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BloodUC        *usecase.BloodUseCase
	DonorUC        *usecase.DonorUseCase
	HealthEntityUC *usecase.HealthEntityUseCase
	RequestUC      *usecase.RequestUseCase
	BloodBagUC     *usecase.BloodBagUseCase
	RoleUC         *usecase.RoleUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Cada ruta protegida declara el
// subconjunto de permisos que exige; RequirePermissions verifica que el rol
// del token los cubra todos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perms := deps.RoleUC

	// Bloods (protegido)
	bloods := protected.Group("/bloods")
	bloodHandler := NewBloodHandler(deps.BloodUC)
	bloods.Post("/", RequirePermissions(perms, access.PermBloodWrite), bloodHandler.Create)
	bloods.Get("/", RequirePermissions(perms, access.PermBloodRead), bloodHandler.List)
	bloods.Get("/:id", RequirePermissions(perms, access.PermBloodRead), bloodHandler.GetByID)
	bloods.Patch("/:id", RequirePermissions(perms, access.PermBloodWrite), bloodHandler.Update)
	bloods.Delete("/:id", RequirePermissions(perms, access.PermBloodWrite), bloodHandler.Remove)

	// Donors (protegido)
	donors := protected.Group("/donors")
	donorHandler := NewDonorHandler(deps.DonorUC)
	donors.Post("/", RequirePermissions(perms, access.PermDonorWrite), donorHandler.Create)
	donors.Get("/", RequirePermissions(perms, access.PermDonorRead), donorHandler.List)
	donors.Get("/:id", RequirePermissions(perms, access.PermDonorRead), donorHandler.GetByID)
	donors.Patch("/:id", RequirePermissions(perms, access.PermDonorWrite), donorHandler.Update)
	donors.Delete("/:id", RequirePermissions(perms, access.PermDonorWrite), donorHandler.Remove)

	// Health entities (protegido)
	entities := protected.Group("/health-entities")
	entityHandler := NewHealthEntityHandler(deps.HealthEntityUC)
	entities.Post("/", RequirePermissions(perms, access.PermEntityWrite), entityHandler.Create)
	entities.Get("/", RequirePermissions(perms, access.PermEntityRead), entityHandler.List)
	entities.Get("/:id", RequirePermissions(perms, access.PermEntityRead), entityHandler.GetByID)
	entities.Patch("/:id", RequirePermissions(perms, access.PermEntityWrite), entityHandler.Update)
	entities.Delete("/:id", RequirePermissions(perms, access.PermEntityWrite), entityHandler.Remove)

	// Requests (protegido)
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	bloodBagHandler := NewBloodBagHandler(deps.BloodBagUC)
	requests.Post("/", RequirePermissions(perms, access.PermRequestWrite), requestHandler.Create)
	requests.Get("/", RequirePermissions(perms, access.PermRequestRead), requestHandler.List)
	requests.Get("/:id", RequirePermissions(perms, access.PermRequestRead), requestHandler.GetByID)
	requests.Get("/:id/blood-bags", RequirePermissions(perms, access.PermRequestRead, access.PermBagRead), bloodBagHandler.ListByRequest)
	requests.Patch("/:id", RequirePermissions(perms, access.PermRequestWrite), requestHandler.Update)
	requests.Delete("/:id", RequirePermissions(perms, access.PermRequestWrite), requestHandler.Remove)

	// Blood bags (protegido)
	bags := protected.Group("/blood-bags")
	bags.Post("/", RequirePermissions(perms, access.PermBagWrite), bloodBagHandler.Create)
	bags.Get("/", RequirePermissions(perms, access.PermBagRead), bloodBagHandler.List)
	bags.Get("/:id", RequirePermissions(perms, access.PermBagRead), bloodBagHandler.GetByID)
	bags.Patch("/:id", RequirePermissions(perms, access.PermBagWrite), bloodBagHandler.Update)
	bags.Delete("/:id", RequirePermissions(perms, access.PermBagWrite), bloodBagHandler.Remove)

	// Roles y permisos (solo administración)
	roles := protected.Group("/roles", RequirePermissions(perms, access.PermRoleManage))
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Patch("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Remove)
	roles.Get("/:id/permissions", roleHandler.Permissions)
	roles.Post("/:id/permissions", roleHandler.AssignPermission)

	permissions := protected.Group("/permissions", RequirePermissions(perms, access.PermRoleManage))
	permissions.Post("/", roleHandler.CreatePermission)
	permissions.Get("/", roleHandler.ListPermissions)

	// Users (lectura con user_read; escritura solo administración)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequirePermissions(perms, access.PermUserRead), userHandler.List)
	users.Get("/:id", RequirePermissions(perms, access.PermUserRead), userHandler.GetByID)
	users.Patch("/:id", RequirePermissions(perms, access.PermRoleManage), userHandler.Update)
	users.Delete("/:id", RequirePermissions(perms, access.PermRoleManage), userHandler.Remove)
}
