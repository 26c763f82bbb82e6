package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// BloodHandler maneja las peticiones HTTP para tipos de sangre (protegido).
type BloodHandler struct {
	uc *usecase.BloodUseCase
}

// NewBloodHandler construye el handler.
func NewBloodHandler(uc *usecase.BloodUseCase) *BloodHandler {
	return &BloodHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar tipo de sangre
// @Tags         bloods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBloodRequest  true  "group, rh_factor"
// @Success      201   {object}  dto.BloodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bloods [post]
func (h *BloodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBloodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Group == "" || in.RHFactor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "group and rh_factor are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de sangre por ID
// @Tags         bloods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo de sangre"
// @Success      200  {object}  dto.BloodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bloods/{id} [get]
func (h *BloodHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar tipos de sangre
// @Tags         bloods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BloodListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bloods [get]
func (h *BloodHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de sangre
// @Tags         bloods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo de sangre"
// @Param        body  body  dto.UpdateBloodRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BloodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bloods/{id} [patch]
func (h *BloodHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateBloodRequest
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
// @Summary      Eliminar tipo de sangre
// @Tags         bloods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo de sangre"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bloods/{id} [delete]
func (h *BloodHandler) Remove(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	deletedID, err := h.uc.Remove(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeletedResponse{ID: deletedID})
}
