package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequestRequest entrada para crear un request de sangre.
type CreateRequestRequest struct {
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
	DueDate        time.Time       `json:"due_date" validate:"required"`
	BloodID        string          `json:"blood_id" validate:"required,uuid"`
	HealthEntityID string          `json:"health_entity_id" validate:"required,uuid"`
}

// UpdateRequestRequest entrada parcial para actualizar un request.
// La actualización no re-valida cantidad/fecha (solo create valida).
type UpdateRequestRequest struct {
	QuantityNeeded *decimal.Decimal `json:"quantity_needed"`
	DueDate        *time.Time       `json:"due_date"`
	BloodID        *string          `json:"blood_id"`
}

// RequestResponse salida de un request con Blood y HealthEntity resueltos.
type RequestResponse struct {
	ID             string               `json:"id"`
	QuantityNeeded decimal.Decimal      `json:"quantity_needed"`
	DueDate        time.Time            `json:"due_date"`
	Blood          BloodResponse        `json:"blood"`
	HealthEntity   HealthEntityResponse `json:"health_entity"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// RequestListResponse lista de requests.
type RequestListResponse struct {
	Items []RequestResponse `json:"items"`
}
