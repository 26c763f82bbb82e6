package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
)

// RequestPatch campos parciales para actualizar un request.
type RequestPatch struct {
	QuantityNeeded *decimal.Decimal
	DueDate        *time.Time
	BloodID        *string
}

// RequestRepository define el puerto de persistencia para Request (DIP).
type RequestRepository interface {
	Create(req *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	List() ([]*entity.Request, error)
	ListByHealthEntityID(healthEntityID string) ([]*entity.Request, error)
	Update(id string, patch RequestPatch) (int64, error)
	Delete(id string) (int64, error)
	// DeleteByHealthEntityID borra en bloque los requests de una entidad.
	// Cero filas afectadas no es error (limpieza idempotente de cascada).
	DeleteByHealthEntityID(healthEntityID string) (int64, error)
}
