package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BloodBag es una unidad física de donación: cantidad en mililitros, fechas
// de donación y vencimiento, y referencias al tipo de sangre, al donante y al
// request que satisface. Su BloodID debe coincidir con el del Request.
type BloodBag struct {
	ID             string
	Quantity       decimal.Decimal // ml, estrictamente positiva
	DonationDate   time.Time
	ExpirationDate time.Time // estrictamente futura al crear
	BloodID        string
	DonorID        string
	RequestID      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
