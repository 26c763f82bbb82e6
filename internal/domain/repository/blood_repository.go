package repository

import "github.com/JuanCami009/banco-sangre-api/internal/domain/entity"

// BloodPatch campos parciales para actualizar un tipo de sangre.
type BloodPatch struct {
	Group    *string
	RHFactor *string
}

// BloodRepository define el puerto de persistencia para Blood (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila; Update y Delete devuelven
// el número de filas afectadas.
type BloodRepository interface {
	Create(blood *entity.Blood) error
	GetByID(id string) (*entity.Blood, error)
	GetByGroupAndRH(group, rhFactor string) (*entity.Blood, error)
	List() ([]*entity.Blood, error)
	Update(id string, patch BloodPatch) (int64, error)
	Delete(id string) (int64, error)
}
