package repository

import "github.com/JuanCami009/banco-sangre-api/internal/domain/entity"

// HealthEntityPatch campos parciales para actualizar una entidad de salud.
type HealthEntityPatch struct {
	NIT     *string
	Name    *string
	Address *string
	City    *string
	Phone   *string
	Email   *string
	Type    *string
}

// HealthEntityRepository define el puerto de persistencia para HealthEntity (DIP).
type HealthEntityRepository interface {
	Create(he *entity.HealthEntity) error
	GetByID(id string) (*entity.HealthEntity, error)
	GetByNIT(nit string) (*entity.HealthEntity, error)
	List() ([]*entity.HealthEntity, error)
	Update(id string, patch HealthEntityPatch) (int64, error)
	Delete(id string) (int64, error)
}
