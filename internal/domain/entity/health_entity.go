package entity

import "time"

// Tipos válidos de entidad de salud.
const (
	EntityTypeClinic    = "clinic"
	EntityTypeHospital  = "hospital"
	EntityTypeBloodBank = "bloodBank"
)

// EntityTypes lista los tipos válidos.
var EntityTypes = []string{EntityTypeClinic, EntityTypeHospital, EntityTypeBloodBank}

// HealthEntity representa una institución (clínica, hospital o banco de
// sangre) que levanta solicitudes de sangre. Borrarla arrastra sus Requests
// y, transitivamente, las BloodBags de esos requests.
type HealthEntity struct {
	ID        string
	NIT       string
	Name      string
	Address   string
	City      string
	Phone     string
	Email     string
	Type      string // clinic, hospital, bloodBank
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
