package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// HealthEntityUseCase casos de uso CRUD para entidades de salud. Remove es un
// guion transaccional: borra las bolsas de cada request de la entidad, luego
// los requests y por último la entidad, todo en una sola tx.
type HealthEntityUseCase struct {
	repo     repository.HealthEntityRepository
	userRepo repository.UserRepository
	tx       TxRunner
}

// NewHealthEntityUseCase construye el caso de uso.
func NewHealthEntityUseCase(repo repository.HealthEntityRepository, userRepo repository.UserRepository, tx TxRunner) *HealthEntityUseCase {
	return &HealthEntityUseCase{repo: repo, userRepo: userRepo, tx: tx}
}

// Create registra una entidad de salud. Resuelve el User de respaldo y exige
// un tipo válido; el NIT no puede repetirse.
func (uc *HealthEntityUseCase) Create(in dto.CreateHealthEntityRequest) (*dto.HealthEntityResponse, error) {
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User")
	}
	if !contains(entity.EntityTypes, in.Type) {
		return nil, domain.Invalid("Type must be one of clinic, hospital, bloodBank")
	}
	existing, err := uc.repo.GetByNIT(in.NIT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	he := &entity.HealthEntity{
		ID:        uuid.New().String(),
		NIT:       in.NIT,
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		Phone:     in.Phone,
		Email:     in.Email,
		Type:      in.Type,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(he); err != nil {
		return nil, err
	}
	return toHealthEntityResponse(he), nil
}

// GetByID obtiene una entidad de salud por ID.
func (uc *HealthEntityUseCase) GetByID(id string) (*dto.HealthEntityResponse, error) {
	he, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if he == nil {
		return nil, domain.NotFound("Health entity")
	}
	return toHealthEntityResponse(he), nil
}

// List devuelve todas las entidades de salud. Un resultado vacío es NotFound.
func (uc *HealthEntityUseCase) List() (*dto.HealthEntityListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Health entity")
	}
	items := make([]dto.HealthEntityResponse, 0, len(list))
	for _, he := range list {
		items = append(items, *toHealthEntityResponse(he))
	}
	return &dto.HealthEntityListResponse{Items: items}, nil
}

// Update aplica un parche parcial directo al store y devuelve el registro
// releído. Cero filas afectadas es NotFound.
func (uc *HealthEntityUseCase) Update(id string, in dto.UpdateHealthEntityRequest) (*dto.HealthEntityResponse, error) {
	if in.Type != nil && !contains(entity.EntityTypes, *in.Type) {
		return nil, domain.Invalid("Type must be one of clinic, hospital, bloodBank")
	}
	affected, err := uc.repo.Update(id, repository.HealthEntityPatch{
		NIT:     in.NIT,
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		Phone:   in.Phone,
		Email:   in.Email,
		Type:    in.Type,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Health entity")
	}
	return uc.GetByID(id)
}

// Remove elimina la entidad y arrastra sus dependientes en orden hijo-antes-
// que-padre dentro de una transacción: bolsas de cada request, requests de la
// entidad y la entidad misma. Si la entidad no existe la tx se revierte y no
// queda ningún hijo borrado.
func (uc *HealthEntityUseCase) Remove(ctx context.Context, id string) (string, error) {
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		requests, err := r.Request.ListByHealthEntityID(id)
		if err != nil {
			return err
		}
		for _, req := range requests {
			if _, err := r.BloodBag.DeleteByRequestID(req.ID); err != nil {
				return err
			}
		}
		if _, err := r.Request.DeleteByHealthEntityID(id); err != nil {
			return err
		}
		affected, err := r.HealthEntity.Delete(id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.NotFound("Health entity")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func toHealthEntityResponse(he *entity.HealthEntity) *dto.HealthEntityResponse {
	if he == nil {
		return nil
	}
	return &dto.HealthEntityResponse{
		ID:        he.ID,
		NIT:       he.NIT,
		Name:      he.Name,
		Address:   he.Address,
		City:      he.City,
		Phone:     he.Phone,
		Email:     he.Email,
		Type:      he.Type,
		UserID:    he.UserID,
		CreatedAt: he.CreatedAt,
		UpdatedAt: he.UpdatedAt,
	}
}
