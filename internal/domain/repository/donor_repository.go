package repository

import (
	"time"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
)

// DonorPatch campos parciales para actualizar un donante.
type DonorPatch struct {
	Document  *string
	Name      *string
	Lastname  *string
	BirthDate *time.Time
	BloodID   *string
}

// DonorRepository define el puerto de persistencia para Donor (DIP).
type DonorRepository interface {
	Create(donor *entity.Donor) error
	GetByID(id string) (*entity.Donor, error)
	GetByDocument(document string) (*entity.Donor, error)
	List() ([]*entity.Donor, error)
	Update(id string, patch DonorPatch) (int64, error)
	Delete(id string) (int64, error)
}
