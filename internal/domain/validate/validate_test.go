package validate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/validate"
)

func TestPositiveQuantity(t *testing.T) {
	// Cantidades no positivas se rechazan con el mensaje exacto.
	for _, q := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-1),
		decimal.NewFromFloat(-0.5),
	} {
		err := validate.PositiveQuantity(q)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "cantidad %s debe rechazarse", q)
		assert.Contains(t, err.Error(), "Quantity must be greater than zero")
	}

	assert.NoError(t, validate.PositiveQuantity(decimal.NewFromFloat(0.01)))
	assert.NoError(t, validate.PositiveQuantity(decimal.NewFromInt(450)))
}

func TestFutureDate(t *testing.T) {
	now := time.Now()

	// Fecha pasada y fecha exactamente igual a now se rechazan (se exige
	// estrictamente futura).
	for _, d := range []time.Time{now.Add(-time.Hour), now} {
		err := validate.FutureDate(validate.LabelDueDate, d, now)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Contains(t, err.Error(), "Due date must be a future date")
	}

	assert.NoError(t, validate.FutureDate(validate.LabelDueDate, now.Add(time.Minute), now))
}

func TestFutureDate_UsaLaEtiqueta(t *testing.T) {
	now := time.Now()
	err := validate.FutureDate(validate.LabelExpirationDate, now.Add(-time.Hour), now)
	assert.Contains(t, err.Error(), "Expiration date must be a future date",
		"el mensaje debe nombrar la etiqueta del campo validado")
}

func TestBloodTypeMatches(t *testing.T) {
	assert.NoError(t, validate.BloodTypeMatches("blood-1", "blood-1"))

	err := validate.BloodTypeMatches("blood-1", "blood-2")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Blood type does not match the request")
}
