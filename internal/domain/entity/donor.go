package entity

import "time"

// Donor representa un donante: datos de identidad, su tipo de sangre y el
// usuario que respalda la cuenta. Sus donaciones son BloodBags que lo
// referencian por DonorID.
type Donor struct {
	ID        string
	Document  string
	Name      string
	Lastname  string
	BirthDate time.Time
	BloodID   string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
