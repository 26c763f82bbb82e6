package dto

import "time"

// CreateHealthEntityRequest entrada para registrar una entidad de salud.
type CreateHealthEntityRequest struct {
	NIT     string `json:"nit" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Type    string `json:"type" validate:"required,oneof=clinic hospital bloodBank"`
	UserID  string `json:"user_id" validate:"required,uuid"`
}

// UpdateHealthEntityRequest entrada parcial para actualizar una entidad de salud.
type UpdateHealthEntityRequest struct {
	NIT     *string `json:"nit"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Type    *string `json:"type"`
}

// HealthEntityResponse salida de una entidad de salud.
type HealthEntityResponse struct {
	ID        string    `json:"id"`
	NIT       string    `json:"nit"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthEntityListResponse lista de entidades de salud.
type HealthEntityListResponse struct {
	Items []HealthEntityResponse `json:"items"`
}
