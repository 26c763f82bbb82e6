package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request es una necesidad de sangre de una entidad de salud: cantidad en
// mililitros de un tipo de sangre concreto, con fecha límite. Las BloodBags
// que la satisfacen la referencian por RequestID.
type Request struct {
	ID             string
	QuantityNeeded decimal.Decimal // ml, estrictamente positiva
	DueDate        time.Time       // estrictamente futura al crear
	BloodID        string
	HealthEntityID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
