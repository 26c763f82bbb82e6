package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBloodBagRequest entrada para registrar una bolsa de sangre.
type CreateBloodBagRequest struct {
	Quantity       decimal.Decimal `json:"quantity"`
	DonationDate   time.Time       `json:"donation_date"`
	ExpirationDate time.Time       `json:"expiration_date" validate:"required"`
	BloodID        string          `json:"blood_id" validate:"required,uuid"`
	DonorID        string          `json:"donor_id" validate:"required,uuid"`
	RequestID      string          `json:"request_id" validate:"required,uuid"`
}

// UpdateBloodBagRequest entrada parcial para actualizar una bolsa.
// La actualización no re-valida cantidad/fecha (solo create valida).
type UpdateBloodBagRequest struct {
	Quantity       *decimal.Decimal `json:"quantity"`
	DonationDate   *time.Time       `json:"donation_date"`
	ExpirationDate *time.Time       `json:"expiration_date"`
}

// RequestSummary referencia plana al request satisfecho por una bolsa.
type RequestSummary struct {
	ID             string          `json:"id"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
	DueDate        time.Time       `json:"due_date"`
	BloodID        string          `json:"blood_id"`
	HealthEntityID string          `json:"health_entity_id"`
}

// BloodBagResponse salida de una bolsa con Blood, Donor y Request resueltos.
type BloodBagResponse struct {
	ID             string          `json:"id"`
	Quantity       decimal.Decimal `json:"quantity"`
	DonationDate   time.Time       `json:"donation_date"`
	ExpirationDate time.Time       `json:"expiration_date"`
	Blood          BloodResponse   `json:"blood"`
	Donor          DonorResponse   `json:"donor"`
	Request        RequestSummary  `json:"request"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BloodBagListResponse lista de bolsas.
type BloodBagListResponse struct {
	Items []BloodBagResponse `json:"items"`
}
