package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// BloodBagHandler maneja las peticiones HTTP para bolsas de sangre (protegido).
type BloodBagHandler struct {
	uc *usecase.BloodBagUseCase
}

// NewBloodBagHandler construye el handler.
func NewBloodBagHandler(uc *usecase.BloodBagUseCase) *BloodBagHandler {
	return &BloodBagHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar bolsa de sangre
// @Tags         blood-bags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBloodBagRequest  true  "Datos de la bolsa"
// @Success      201   {object}  dto.BloodBagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blood-bags [post]
func (h *BloodBagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBloodBagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.BloodID == "" || in.DonorID == "" || in.RequestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "blood_id, donor_id and request_id are required"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener bolsa por ID
// @Tags         blood-bags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bolsa"
// @Success      200  {object}  dto.BloodBagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-bags/{id} [get]
func (h *BloodBagHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar bolsas de sangre
// @Tags         blood-bags
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BloodBagListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-bags [get]
func (h *BloodBagHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByRequest godoc
// @Summary      Listar bolsas asociadas a un request
// @Tags         blood-bags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del request"
// @Success      200  {object}  dto.BloodBagListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/blood-bags [get]
func (h *BloodBagHandler) ListByRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.ListByRequestID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar bolsa
// @Tags         blood-bags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bolsa"
// @Param        body  body  dto.UpdateBloodBagRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BloodBagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/blood-bags/{id} [patch]
func (h *BloodBagHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateBloodBagRequest
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
// @Summary      Eliminar bolsa
// @Tags         blood-bags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bolsa"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/blood-bags/{id} [delete]
func (h *BloodBagHandler) Remove(c *fiber.Ctx) error {
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
