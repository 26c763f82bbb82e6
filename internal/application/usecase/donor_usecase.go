package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// DonorUseCase casos de uso CRUD para donantes. Create resuelve las
// referencias Blood y User llamando a los servicios hermanos.
type DonorUseCase struct {
	repo     repository.DonorRepository
	bloodUC  *BloodUseCase
	userRepo repository.UserRepository
}

// NewDonorUseCase construye el caso de uso.
func NewDonorUseCase(repo repository.DonorRepository, bloodUC *BloodUseCase, userRepo repository.UserRepository) *DonorUseCase {
	return &DonorUseCase{repo: repo, bloodUC: bloodUC, userRepo: userRepo}
}

// Create registra un donante. Resuelve Blood y User en ese orden; una
// referencia ausente es NotFound nombrando la entidad, y nada se escribe.
func (uc *DonorUseCase) Create(in dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	blood, err := uc.bloodUC.GetByID(in.BloodID)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User")
	}
	existing, err := uc.repo.GetByDocument(in.Document)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	donor := &entity.Donor{
		ID:        uuid.New().String(),
		Document:  in.Document,
		Name:      in.Name,
		Lastname:  in.Lastname,
		BirthDate: in.BirthDate,
		BloodID:   in.BloodID,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(donor); err != nil {
		return nil, err
	}
	return toDonorResponse(donor, blood), nil
}

// GetByID obtiene un donante por ID con su tipo de sangre resuelto.
func (uc *DonorUseCase) GetByID(id string) (*dto.DonorResponse, error) {
	donor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, domain.NotFound("Donor")
	}
	blood, err := uc.bloodUC.GetByID(donor.BloodID)
	if err != nil {
		return nil, err
	}
	return toDonorResponse(donor, blood), nil
}

// List devuelve todos los donantes. Un resultado vacío es NotFound.
func (uc *DonorUseCase) List() (*dto.DonorListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Donor")
	}
	items := make([]dto.DonorResponse, 0, len(list))
	for _, d := range list {
		blood, err := uc.bloodUC.GetByID(d.BloodID)
		if err != nil {
			return nil, err
		}
		items = append(items, *toDonorResponse(d, blood))
	}
	return &dto.DonorListResponse{Items: items}, nil
}

// Update aplica un parche parcial directo al store (sin re-validación) y
// devuelve el registro releído. Cero filas afectadas es NotFound.
func (uc *DonorUseCase) Update(id string, in dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	affected, err := uc.repo.Update(id, repository.DonorPatch{
		Document:  in.Document,
		Name:      in.Name,
		Lastname:  in.Lastname,
		BirthDate: in.BirthDate,
		BloodID:   in.BloodID,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Donor")
	}
	return uc.GetByID(id)
}

// Remove elimina un donante por ID y devuelve el id borrado.
func (uc *DonorUseCase) Remove(id string) (string, error) {
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", domain.NotFound("Donor")
	}
	return id, nil
}

func toDonorResponse(d *entity.Donor, blood *dto.BloodResponse) *dto.DonorResponse {
	if d == nil {
		return nil
	}
	resp := &dto.DonorResponse{
		ID:        d.ID,
		Document:  d.Document,
		Name:      d.Name,
		Lastname:  d.Lastname,
		BirthDate: d.BirthDate,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if blood != nil {
		resp.Blood = *blood
	}
	return resp
}
