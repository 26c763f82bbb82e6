package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
)

func TestBlood_Create(t *testing.T) {
	e := newEnv()

	out, err := e.bloodUC.Create(dto.CreateBloodRequest{Group: "O", RHFactor: "+"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "O", out.Group)
	assert.Equal(t, "+", out.RHFactor)
	assert.Equal(t, "O+", out.Label, "el label es grupo + factor")
	assert.Len(t, e.s.bloods, 1, "el tipo debe quedar persistido")
}

func TestBlood_Create_GrupoInvalido(t *testing.T) {
	e := newEnv()

	_, err := e.bloodUC.Create(dto.CreateBloodRequest{Group: "C", RHFactor: "+"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, e.s.bloods, "nada debe escribirse")

	_, err = e.bloodUC.Create(dto.CreateBloodRequest{Group: "A", RHFactor: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBlood_Create_CombinacionDuplicada(t *testing.T) {
	e := newEnv()
	seedBlood(e, "blood-1", "A", "-")

	_, err := e.bloodUC.Create(dto.CreateBloodRequest{Group: "A", RHFactor: "-"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Len(t, e.s.bloods, 1)
}

func TestBlood_GetByID_Ausente(t *testing.T) {
	e := newEnv()

	_, err := e.bloodUC.GetByID("nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "Blood not found")
}

func TestBlood_List_VacioEsNotFound(t *testing.T) {
	e := newEnv()

	_, err := e.bloodUC.List()
	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"una lista vacía se reporta como NotFound, no como éxito vacío")

	seedBlood(e, "blood-1", "O", "+")
	seedBlood(e, "blood-2", "AB", "-")
	out, err := e.bloodUC.List()
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}

func TestBlood_Update(t *testing.T) {
	e := newEnv()
	seedBlood(e, "blood-1", "A", "+")

	group := "B"
	out, err := e.bloodUC.Update("blood-1", dto.UpdateBloodRequest{Group: &group})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Group, "el parche debe aplicarse")
	assert.Equal(t, "+", out.RHFactor, "los campos no parchados se conservan")
}

func TestBlood_Update_Ausente(t *testing.T) {
	e := newEnv()

	group := "B"
	_, err := e.bloodUC.Update("nope", dto.UpdateBloodRequest{Group: &group})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBlood_Remove(t *testing.T) {
	e := newEnv()
	seedBlood(e, "blood-1", "O", "-")

	deletedID, err := e.bloodUC.Remove("blood-1")
	require.NoError(t, err)
	assert.Equal(t, "blood-1", deletedID, "se devuelve el id borrado")
	assert.Empty(t, e.s.bloods)

	_, err = e.bloodUC.Remove("blood-1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
