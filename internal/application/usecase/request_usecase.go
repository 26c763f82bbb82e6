package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/JuanCami009/banco-sangre-api/internal/application/dto"
	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/validate"
)

// RequestUseCase casos de uso para requests de sangre. Create corre
// resolución de referencias, validadores e inserción dentro de una sola
// transacción; Remove arrastra las bolsas dependientes en la misma tx.
type RequestUseCase struct {
	repo    repository.RequestRepository
	heRepo  repository.HealthEntityRepository
	bloodUC *BloodUseCase
	tx      TxRunner
}

// NewRequestUseCase construye el caso de uso.
func NewRequestUseCase(repo repository.RequestRepository, heRepo repository.HealthEntityRepository, bloodUC *BloodUseCase, tx TxRunner) *RequestUseCase {
	return &RequestUseCase{repo: repo, heRepo: heRepo, bloodUC: bloodUC, tx: tx}
}

// Create crea un request. Resuelve Blood y luego HealthEntity (una referencia
// ausente es NotFound nombrando la entidad), valida cantidad y fecha límite
// en ese orden, y solo entonces inserta. Todo dentro de una transacción: un
// fallo en cualquier paso no deja escritura parcial.
func (uc *RequestUseCase) Create(ctx context.Context, in dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	var (
		blood *entity.Blood
		he    *entity.HealthEntity
		req   *entity.Request
	)
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		var err error
		blood, err = r.Blood.GetByID(in.BloodID)
		if err != nil {
			return err
		}
		if blood == nil {
			return domain.NotFound("Blood")
		}
		he, err = r.HealthEntity.GetByID(in.HealthEntityID)
		if err != nil {
			return err
		}
		if he == nil {
			return domain.NotFound("Health entity")
		}
		if err := validate.PositiveQuantity(in.QuantityNeeded); err != nil {
			return err
		}
		if err := validate.FutureDate(validate.LabelDueDate, in.DueDate, time.Now()); err != nil {
			return err
		}
		now := time.Now()
		req = &entity.Request{
			ID:             uuid.New().String(),
			QuantityNeeded: in.QuantityNeeded,
			DueDate:        in.DueDate,
			BloodID:        in.BloodID,
			HealthEntityID: in.HealthEntityID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return r.Request.Create(req)
	})
	if err != nil {
		return nil, err
	}
	return toRequestResponse(req, blood, he), nil
}

// GetByID obtiene un request con Blood y HealthEntity resueltos y adjuntos.
func (uc *RequestUseCase) GetByID(id string) (*dto.RequestResponse, error) {
	req, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.NotFound("Request")
	}
	return uc.attach(req)
}

// List devuelve todos los requests con sus relaciones resueltas. Un resultado
// vacío es NotFound.
func (uc *RequestUseCase) List() (*dto.RequestListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Request")
	}
	items := make([]dto.RequestResponse, 0, len(list))
	for _, req := range list {
		resp, err := uc.attach(req)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.RequestListResponse{Items: items}, nil
}

// Update aplica un parche parcial directo al store. No re-valida cantidad ni
// fecha: solo Create valida (asimetría preservada del diseño original).
func (uc *RequestUseCase) Update(id string, in dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	affected, err := uc.repo.Update(id, repository.RequestPatch{
		QuantityNeeded: in.QuantityNeeded,
		DueDate:        in.DueDate,
		BloodID:        in.BloodID,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Request")
	}
	return uc.GetByID(id)
}

// Remove elimina el request y sus bolsas dependientes en una transacción,
// hijas primero. Si el request no existe la tx se revierte completa.
func (uc *RequestUseCase) Remove(ctx context.Context, id string) (string, error) {
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if _, err := r.BloodBag.DeleteByRequestID(id); err != nil {
			return err
		}
		affected, err := r.Request.Delete(id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.NotFound("Request")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// RemoveByHealthEntityID borra en bloque los requests de una entidad junto
// con sus bolsas, en una transacción. Cero filas afectadas no es error.
func (uc *RequestUseCase) RemoveByHealthEntityID(ctx context.Context, healthEntityID string) (int64, error) {
	var removed int64
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		requests, err := r.Request.ListByHealthEntityID(healthEntityID)
		if err != nil {
			return err
		}
		for _, req := range requests {
			if _, err := r.BloodBag.DeleteByRequestID(req.ID); err != nil {
				return err
			}
		}
		removed, err = r.Request.DeleteByHealthEntityID(healthEntityID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// attach resuelve y adjunta Blood y HealthEntity de un request ya cargado.
func (uc *RequestUseCase) attach(req *entity.Request) (*dto.RequestResponse, error) {
	blood, err := uc.bloodUC.GetByID(req.BloodID)
	if err != nil {
		return nil, err
	}
	he, err := uc.heRepo.GetByID(req.HealthEntityID)
	if err != nil {
		return nil, err
	}
	if he == nil {
		return nil, domain.NotFound("Health entity")
	}
	resp := &dto.RequestResponse{
		ID:             req.ID,
		QuantityNeeded: req.QuantityNeeded,
		DueDate:        req.DueDate,
		Blood:          *blood,
		HealthEntity:   *toHealthEntityResponse(he),
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}
	return resp, nil
}

func toRequestResponse(req *entity.Request, blood *entity.Blood, he *entity.HealthEntity) *dto.RequestResponse {
	if req == nil {
		return nil
	}
	return &dto.RequestResponse{
		ID:             req.ID,
		QuantityNeeded: req.QuantityNeeded,
		DueDate:        req.DueDate,
		Blood:          *toBloodResponse(blood),
		HealthEntity:   *toHealthEntityResponse(he),
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}
}
