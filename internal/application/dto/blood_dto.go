package dto

// CreateBloodRequest entrada para registrar un tipo de sangre.
type CreateBloodRequest struct {
	Group    string `json:"group" validate:"required,oneof=A B AB O"`
	RHFactor string `json:"rh_factor" validate:"required,oneof=+ -"`
}

// UpdateBloodRequest entrada parcial para actualizar un tipo de sangre.
type UpdateBloodRequest struct {
	Group    *string `json:"group"`
	RHFactor *string `json:"rh_factor"`
}

// BloodResponse salida de un tipo de sangre.
type BloodResponse struct {
	ID       string `json:"id"`
	Group    string `json:"group"`
	RHFactor string `json:"rh_factor"`
	Label    string `json:"label"` // "O+", "AB-"
}

// BloodListResponse lista de tipos de sangre.
type BloodListResponse struct {
	Items []BloodResponse `json:"items"`
}
