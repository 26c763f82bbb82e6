package usecase

import (
	"github.com/google/uuid"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// BloodUseCase casos de uso CRUD para tipos de sangre. La tabla es de
// referencia: se siembra una vez con las 8 combinaciones y rara vez cambia.
type BloodUseCase struct {
	repo repository.BloodRepository
}

// NewBloodUseCase construye el caso de uso.
func NewBloodUseCase(repo repository.BloodRepository) *BloodUseCase {
	return &BloodUseCase{repo: repo}
}

// Create registra un tipo de sangre. Grupo y factor deben ser válidos y la
// combinación no puede repetirse.
func (uc *BloodUseCase) Create(in dto.CreateBloodRequest) (*dto.BloodResponse, error) {
	if !contains(entity.BloodGroups, in.Group) {
		return nil, domain.Invalid("Blood group must be one of A, B, AB, O")
	}
	if !contains(entity.RHFactors, in.RHFactor) {
		return nil, domain.Invalid("RH factor must be + or -")
	}
	existing, err := uc.repo.GetByGroupAndRH(in.Group, in.RHFactor)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	blood := &entity.Blood{
		ID:       uuid.New().String(),
		Group:    in.Group,
		RHFactor: in.RHFactor,
	}
	if err := uc.repo.Create(blood); err != nil {
		return nil, err
	}
	return toBloodResponse(blood), nil
}

// GetByID obtiene un tipo de sangre por ID.
func (uc *BloodUseCase) GetByID(id string) (*dto.BloodResponse, error) {
	blood, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blood == nil {
		return nil, domain.NotFound("Blood")
	}
	return toBloodResponse(blood), nil
}

// List devuelve todos los tipos de sangre. Un resultado vacío es NotFound,
// no una lista vacía exitosa.
func (uc *BloodUseCase) List() (*dto.BloodListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Blood")
	}
	items := make([]dto.BloodResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBloodResponse(b))
	}
	return &dto.BloodListResponse{Items: items}, nil
}

// Update aplica un parche parcial directo al store y devuelve el registro
// releído. Cero filas afectadas es NotFound.
func (uc *BloodUseCase) Update(id string, in dto.UpdateBloodRequest) (*dto.BloodResponse, error) {
	affected, err := uc.repo.Update(id, repository.BloodPatch{
		Group:    in.Group,
		RHFactor: in.RHFactor,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Blood")
	}
	return uc.GetByID(id)
}

// Remove elimina un tipo de sangre por ID y devuelve el id borrado.
func (uc *BloodUseCase) Remove(id string) (string, error) {
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", domain.NotFound("Blood")
	}
	return id, nil
}

func toBloodResponse(b *entity.Blood) *dto.BloodResponse {
	if b == nil {
		return nil
	}
	return &dto.BloodResponse{
		ID:       b.ID,
		Group:    b.Group,
		RHFactor: b.RHFactor,
		Label:    b.Label(),
	}
}

func contains(valid []string, v string) bool {
	for _, s := range valid {
		if s == v {
			return true
		}
	}
	return false
}
