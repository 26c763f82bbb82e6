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

// BloodBagUseCase casos de uso para bolsas de sangre. Create es el camino con
// más comprobaciones del sistema: tres referencias y tres validadores antes
// de insertar, todo dentro de una transacción.
type BloodBagUseCase struct {
	repo    repository.BloodBagRepository
	reqRepo repository.RequestRepository
	donorUC *DonorUseCase
	tx      TxRunner
}

// NewBloodBagUseCase construye el caso de uso.
func NewBloodBagUseCase(repo repository.BloodBagRepository, reqRepo repository.RequestRepository, donorUC *DonorUseCase, tx TxRunner) *BloodBagUseCase {
	return &BloodBagUseCase{repo: repo, reqRepo: reqRepo, donorUC: donorUC, tx: tx}
}

// Create registra una bolsa. Resuelve Blood, Donor y Request en ese orden
// (la primera ausente corta con NotFound nombrándola); después corre los
// validadores en orden fijo: cantidad, fecha de vencimiento y coincidencia
// del tipo de sangre con el request. El primero que falla corta con su razón
// y no se escribe nada.
func (uc *BloodBagUseCase) Create(ctx context.Context, in dto.CreateBloodBagRequest) (*dto.BloodBagResponse, error) {
	var (
		blood *entity.Blood
		donor *entity.Donor
		req   *entity.Request
		bag   *entity.BloodBag
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
		donor, err = r.Donor.GetByID(in.DonorID)
		if err != nil {
			return err
		}
		if donor == nil {
			return domain.NotFound("Donor")
		}
		req, err = r.Request.GetByID(in.RequestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.NotFound("Request")
		}
		if err := validate.PositiveQuantity(in.Quantity); err != nil {
			return err
		}
		if err := validate.FutureDate(validate.LabelExpirationDate, in.ExpirationDate, time.Now()); err != nil {
			return err
		}
		if err := validate.BloodTypeMatches(in.BloodID, req.BloodID); err != nil {
			return err
		}
		now := time.Now()
		donationDate := in.DonationDate
		if donationDate.IsZero() {
			donationDate = now
		}
		bag = &entity.BloodBag{
			ID:             uuid.New().String(),
			Quantity:       in.Quantity,
			DonationDate:   donationDate,
			ExpirationDate: in.ExpirationDate,
			BloodID:        in.BloodID,
			DonorID:        in.DonorID,
			RequestID:      in.RequestID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return r.BloodBag.Create(bag)
	})
	if err != nil {
		return nil, err
	}
	return toBloodBagResponse(bag, toBloodResponse(blood), toDonorResponse(donor, toBloodResponse(blood)), req), nil
}

// GetByID obtiene una bolsa con Blood, Donor y Request resueltos y adjuntos.
func (uc *BloodBagUseCase) GetByID(id string) (*dto.BloodBagResponse, error) {
	bag, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bag == nil {
		return nil, domain.NotFound("Blood bag")
	}
	return uc.attach(bag)
}

// List devuelve todas las bolsas con relaciones resueltas. Un resultado vacío
// es NotFound.
func (uc *BloodBagUseCase) List() (*dto.BloodBagListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Blood bag")
	}
	items := make([]dto.BloodBagResponse, 0, len(list))
	for _, bag := range list {
		resp, err := uc.attach(bag)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.BloodBagListResponse{Items: items}, nil
}

// ListByRequestID devuelve las bolsas que satisfacen un request.
func (uc *BloodBagUseCase) ListByRequestID(requestID string) (*dto.BloodBagListResponse, error) {
	list, err := uc.repo.ListByRequestID(requestID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.NotFound("Blood bag")
	}
	items := make([]dto.BloodBagResponse, 0, len(list))
	for _, bag := range list {
		resp, err := uc.attach(bag)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.BloodBagListResponse{Items: items}, nil
}

// Update aplica un parche parcial directo al store. No re-valida cantidad ni
// fechas: solo Create valida (asimetría preservada del diseño original).
func (uc *BloodBagUseCase) Update(id string, in dto.UpdateBloodBagRequest) (*dto.BloodBagResponse, error) {
	affected, err := uc.repo.Update(id, repository.BloodBagPatch{
		Quantity:       in.Quantity,
		DonationDate:   in.DonationDate,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, domain.NotFound("Blood bag")
	}
	return uc.GetByID(id)
}

// Remove elimina una bolsa por ID y devuelve el id borrado.
func (uc *BloodBagUseCase) Remove(id string) (string, error) {
	affected, err := uc.repo.Delete(id)
	if err != nil {
		return "", err
	}
	if affected == 0 {
		return "", domain.NotFound("Blood bag")
	}
	return id, nil
}

// RemoveByRequestID borra en bloque las bolsas de un request. Cero filas
// afectadas no es error: es la llamada idempotente de limpieza de cascada.
func (uc *BloodBagUseCase) RemoveByRequestID(requestID string) (int64, error) {
	return uc.repo.DeleteByRequestID(requestID)
}

// attach resuelve y adjunta las relaciones de una bolsa ya cargada. El donor
// llega con su propio tipo de sangre resuelto por el servicio hermano.
func (uc *BloodBagUseCase) attach(bag *entity.BloodBag) (*dto.BloodBagResponse, error) {
	donor, err := uc.donorUC.GetByID(bag.DonorID)
	if err != nil {
		return nil, err
	}
	blood, err := uc.donorUC.bloodUC.GetByID(bag.BloodID)
	if err != nil {
		return nil, err
	}
	req, err := uc.reqRepo.GetByID(bag.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.NotFound("Request")
	}
	resp := &dto.BloodBagResponse{
		ID:             bag.ID,
		Quantity:       bag.Quantity,
		DonationDate:   bag.DonationDate,
		ExpirationDate: bag.ExpirationDate,
		Blood:          *blood,
		Donor:          *donor,
		Request:        toRequestSummary(req),
		CreatedAt:      bag.CreatedAt,
		UpdatedAt:      bag.UpdatedAt,
	}
	return resp, nil
}

func toRequestSummary(req *entity.Request) dto.RequestSummary {
	if req == nil {
		return dto.RequestSummary{}
	}
	return dto.RequestSummary{
		ID:             req.ID,
		QuantityNeeded: req.QuantityNeeded,
		DueDate:        req.DueDate,
		BloodID:        req.BloodID,
		HealthEntityID: req.HealthEntityID,
	}
}

func toBloodBagResponse(bag *entity.BloodBag, blood *dto.BloodResponse, donor *dto.DonorResponse, req *entity.Request) *dto.BloodBagResponse {
	if bag == nil {
		return nil
	}
	resp := &dto.BloodBagResponse{
		ID:             bag.ID,
		Quantity:       bag.Quantity,
		DonationDate:   bag.DonationDate,
		ExpirationDate: bag.ExpirationDate,
		Request:        toRequestSummary(req),
		CreatedAt:      bag.CreatedAt,
		UpdatedAt:      bag.UpdatedAt,
	}
	if blood != nil {
		resp.Blood = *blood
	}
	if donor != nil {
		resp.Donor = *donor
	}
	return resp
}
