package dto

import "time"

// CreateDonorRequest entrada para registrar un donante.
type CreateDonorRequest struct {
	Document  string    `json:"document" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Lastname  string    `json:"lastname" validate:"required"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	BloodID   string    `json:"blood_id" validate:"required,uuid"`
	UserID    string    `json:"user_id" validate:"required,uuid"`
}

// UpdateDonorRequest entrada parcial para actualizar un donante.
type UpdateDonorRequest struct {
	Document  *string    `json:"document"`
	Name      *string    `json:"name"`
	Lastname  *string    `json:"lastname"`
	BirthDate *time.Time `json:"birth_date"`
	BloodID   *string    `json:"blood_id"`
}

// DonorResponse salida de un donante con su tipo de sangre resuelto.
type DonorResponse struct {
	ID        string        `json:"id"`
	Document  string        `json:"document"`
	Name      string        `json:"name"`
	Lastname  string        `json:"lastname"`
	BirthDate time.Time     `json:"birth_date"`
	Blood     BloodResponse `json:"blood"`
	UserID    string        `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// DonorListResponse lista de donantes.
type DonorListResponse struct {
	Items []DonorResponse `json:"items"`
}
