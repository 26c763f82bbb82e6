package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
)

// BloodBagPatch campos parciales para actualizar una bolsa de sangre.
type BloodBagPatch struct {
	Quantity       *decimal.Decimal
	DonationDate   *time.Time
	ExpirationDate *time.Time
}

// BloodBagRepository define el puerto de persistencia para BloodBag (DIP).
type BloodBagRepository interface {
	Create(bag *entity.BloodBag) error
	GetByID(id string) (*entity.BloodBag, error)
	List() ([]*entity.BloodBag, error)
	ListByRequestID(requestID string) ([]*entity.BloodBag, error)
	Update(id string, patch BloodBagPatch) (int64, error)
	Delete(id string) (int64, error)
	// DeleteByRequestID borra en bloque las bolsas de un request. Cero filas
	// afectadas no es error (limpieza idempotente de cascada).
	DeleteByRequestID(requestID string) (int64, error)
}
