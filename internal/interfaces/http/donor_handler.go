package http

import (
	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/gofiber/fiber/v2"
)

// DonorHandler maneja las peticiones HTTP para donantes (protegido).
type DonorHandler struct {
	uc *usecase.DonorUseCase
}

// NewDonorHandler construye el handler.
func NewDonorHandler(uc *usecase.DonorUseCase) *DonorHandler {
	return &DonorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar donante
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDonorRequest  true  "Datos del donante"
// @Success      201   {object}  dto.DonorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/donors [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDonorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Document == "" || in.Name == "" || in.Lastname == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "document, name and lastname are required"})
	}
	if in.BloodID == "" || in.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "blood_id and user_id are required"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener donante por ID
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del donante"
// @Success      200  {object}  dto.DonorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [get]
func (h *DonorHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar donantes
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DonorListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar donante
// @Tags         donors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del donante"
// @Param        body  body  dto.UpdateDonorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DonorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [patch]
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateDonorRequest
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
// @Summary      Eliminar donante
// @Tags         donors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del donante"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/donors/{id} [delete]
func (h *DonorHandler) Remove(c *fiber.Ctx) error {
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
