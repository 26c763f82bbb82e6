package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// HealthEntityHandler maneja las peticiones HTTP para entidades de salud
// (protegido). El Remove dispara la cascada entidad → requests → bolsas.
type HealthEntityHandler struct {
	uc *usecase.HealthEntityUseCase
}

// NewHealthEntityHandler construye el handler.
func NewHealthEntityHandler(uc *usecase.HealthEntityUseCase) *HealthEntityHandler {
	return &HealthEntityHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entidad de salud
// @Tags         health-entities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHealthEntityRequest  true  "Datos de la entidad"
// @Success      201   {object}  dto.HealthEntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/health-entities [post]
func (h *HealthEntityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHealthEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.NIT == "" || in.Name == "" || in.Type == "" || in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nit, name, type and user_id are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entidad de salud por ID
// @Tags         health-entities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.HealthEntityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/health-entities/{id} [get]
func (h *HealthEntityHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entidades de salud
// @Tags         health-entities
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HealthEntityListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/health-entities [get]
func (h *HealthEntityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entidad de salud
// @Tags         health-entities
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entidad"
// @Param        body  body  dto.UpdateHealthEntityRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.HealthEntityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/health-entities/{id} [patch]
func (h *HealthEntityHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateHealthEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar entidad de salud (cascada sobre requests y bolsas)
// @Tags         health-entities
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entidad"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/health-entities/{id} [delete]
func (h *HealthEntityHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	deletedID, err := h.uc.Remove(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{ID: deletedID})
}
