// Package validate contiene los validadores puros de dominio que se ejecutan
// antes de cualquier escritura. Cada uno devuelve una razón distinta envuelta
// sobre domain.ErrInvalidInput; ninguno toca persistencia.
package validate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JuanCami009/banco-sangre-api/internal/domain"
)

// Etiquetas de campo para FutureDate.
const (
	LabelDueDate        = "Due date"
	LabelExpirationDate = "Expiration date"
)

// PositiveQuantity falla salvo que q > 0.
func PositiveQuantity(q decimal.Decimal) error {
	if q.LessThanOrEqual(decimal.Zero) {
		return domain.Invalid("Quantity must be greater than zero")
	}
	return nil
}

// FutureDate falla salvo que d sea estrictamente posterior a now (igual a now
// también falla). label identifica el campo en el mensaje.
func FutureDate(label string, d, now time.Time) error {
	if !d.After(now) {
		return domain.Invalid(label + " must be a future date")
	}
	return nil
}

// BloodTypeMatches falla salvo que la bolsa y el request refieran el mismo
// tipo de sangre.
func BloodTypeMatches(bagBloodID, requestBloodID string) error {
	if bagBloodID != requestBloodID {
		return domain.Invalid("Blood type does not match the request")
	}
	return nil
}
