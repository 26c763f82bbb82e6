package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
)

func validRequestInput() dto.CreateRequestRequest {
	return dto.CreateRequestRequest{
		QuantityNeeded: decimal.NewFromInt(900),
		DueDate:        time.Now().Add(48 * time.Hour),
		BloodID:        "blood-1",
		HealthEntityID: "he-1",
	}
}

func TestRequest_Create(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")

	out, err := e.requestUC.Create(ctx, validRequestInput())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.QuantityNeeded.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "O+", out.Blood.Label, "el tipo de sangre llega resuelto")
	assert.Equal(t, "900-1", out.HealthEntity.NIT, "la entidad llega resuelta")
	assert.Len(t, e.s.requests, 1)
}

func TestRequest_Create_ReferenciaAusente(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	// Sin Blood: corta nombrando Blood aunque la entidad tampoco exista
	// (la resolución es en orden fijo).
	_, err := e.requestUC.Create(ctx, validRequestInput())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Blood not found")
	assert.Empty(t, e.s.requests)

	// Con Blood pero sin entidad: nombra Health entity.
	seedBlood(e, "blood-1", "O", "+")
	_, err = e.requestUC.Create(ctx, validRequestInput())
	assert.Contains(t, err.Error(), "Health entity not found")
	assert.Empty(t, e.s.requests)
}

func TestRequest_Create_CantidadNoPositiva(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")

	for _, q := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		in := validRequestInput()
		in.QuantityNeeded = q
		_, err := e.requestUC.Create(ctx, in)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Contains(t, err.Error(), "Quantity must be greater than zero")
	}
	assert.Empty(t, e.s.requests, "nada debe escribirse")
}

func TestRequest_Create_FechaNoFutura(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")

	in := validRequestInput()
	in.DueDate = time.Now().Add(-time.Hour)
	_, err := e.requestUC.Create(ctx, in)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Due date must be a future date")
	assert.Empty(t, e.s.requests)
}

func TestRequest_GetByID_AdjuntaRelaciones(t *testing.T) {
	e := newEnv()
	seedBlood(e, "blood-1", "A", "-")
	seedEntity(e, "he-1", "900-1")
	seedRequest(e, "req-1", "blood-1", "he-1")

	out, err := e.requestUC.GetByID("req-1")
	require.NoError(t, err)
	assert.Equal(t, "A-", out.Blood.Label)
	assert.Equal(t, "900-1", out.HealthEntity.NIT)

	_, err = e.requestUC.GetByID("nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Request not found")
}

func TestRequest_List_VacioEsNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.requestUC.List()
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")
	seedRequest(e, "req-1", "blood-1", "he-1")
	seedRequest(e, "req-2", "blood-1", "he-1")
	out, err := e.requestUC.List()
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

// Update parcha directo sin re-validar: una cantidad no positiva que Create
// rechazaría entra sin objeción (asimetría preservada del diseño original).
func TestRequest_Update_NoRevalida(t *testing.T) {
	e := newEnv()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")
	seedRequest(e, "req-1", "blood-1", "he-1")

	negative := decimal.NewFromInt(-5)
	out, err := e.requestUC.Update("req-1", dto.UpdateRequestRequest{QuantityNeeded: &negative})
	require.NoError(t, err, "update no corre validadores")
	assert.True(t, out.QuantityNeeded.Equal(negative))

	_, err = e.requestUC.Update("nope", dto.UpdateRequestRequest{QuantityNeeded: &negative})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRequest_Remove_ArrastraBolsas(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")
	seedRequest(e, "req-1", "blood-1", "he-1")
	seedRequest(e, "req-2", "blood-1", "he-1")
	seedBag(e, "bag-1", "blood-1", "donor-1", "req-1")
	seedBag(e, "bag-2", "blood-1", "donor-1", "req-1")
	seedBag(e, "bag-other", "blood-1", "donor-1", "req-2")

	deletedID, err := e.requestUC.Remove(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "req-1", deletedID)

	assert.NotContains(t, e.s.requests, "req-1")
	assert.NotContains(t, e.s.bags, "bag-1")
	assert.NotContains(t, e.s.bags, "bag-2")
	assert.Contains(t, e.s.bags, "bag-other", "las bolsas de otros requests no se tocan")
}

func TestRequest_Remove_Ausente(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.requestUC.Remove(ctx, "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Request not found")
}

// Si el request no existe pero hay una bolsa huérfana que lo referencia, el
// guion borra primero la bolsa y recién después descubre el NotFound: la
// transacción debe revertir ese borrado ya ejecutado.
func TestRequest_Remove_AusenteRevierteBolsaBorrada(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedBag(e, "bag-huerfana", "blood-1", "donor-1", "req-fantasma")

	_, err := e.requestUC.Remove(ctx, "req-fantasma")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, e.s.bags, "bag-huerfana",
		"el rollback debe restaurar la bolsa borrada dentro de la tx")
}

func TestRequest_RemoveByHealthEntityID(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	seedBlood(e, "blood-1", "O", "+")
	seedEntity(e, "he-1", "900-1")
	seedRequest(e, "req-1", "blood-1", "he-1")
	seedRequest(e, "req-2", "blood-1", "he-1")
	seedBag(e, "bag-1", "blood-1", "donor-1", "req-1")

	removed, err := e.requestUC.RemoveByHealthEntityID(ctx, "he-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Empty(t, e.s.requests)
	assert.Empty(t, e.s.bags)

	// Idempotente: cero filas afectadas no es error.
	removed, err = e.requestUC.RemoveByHealthEntityID(ctx, "he-1")
	require.NoError(t, err)
	assert.Zero(t, removed)
}
