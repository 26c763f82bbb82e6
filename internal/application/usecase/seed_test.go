package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
)

// Helpers de siembra directa sobre el store en memoria.

func seedBlood(e *env, id, group, rh string) *entity.Blood {
	b := &entity.Blood{ID: id, Group: group, RHFactor: rh}
	e.s.bloods[id] = b
	return b
}

func seedUser(e *env, id, email string) *entity.User {
	now := time.Now()
	u := &entity.User{ID: id, Email: email, PasswordHash: "x", RoleID: "role-1", CreatedAt: now, UpdatedAt: now}
	e.s.users[id] = u
	return u
}

func seedDonor(e *env, id, document, bloodID, userID string) *entity.Donor {
	now := time.Now()
	d := &entity.Donor{
		ID:        id,
		Document:  document,
		Name:      "Juan",
		Lastname:  "Pérez",
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		BloodID:   bloodID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.s.donors[id] = d
	return d
}

func seedEntity(e *env, id, nit string) *entity.HealthEntity {
	now := time.Now()
	he := &entity.HealthEntity{
		ID:        id,
		NIT:       nit,
		Name:      "Clínica Central",
		Address:   "Calle 5 #10-20",
		City:      "Cali",
		Phone:     "6025550100",
		Email:     "contacto@clinica.co",
		Type:      entity.EntityTypeClinic,
		UserID:    "user-he",
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.s.entities[id] = he
	return he
}

func seedRequest(e *env, id, bloodID, heID string) *entity.Request {
	now := time.Now()
	req := &entity.Request{
		ID:             id,
		QuantityNeeded: decimal.NewFromInt(900),
		DueDate:        now.Add(72 * time.Hour),
		BloodID:        bloodID,
		HealthEntityID: heID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	e.s.requests[id] = req
	return req
}

func seedBag(e *env, id, bloodID, donorID, requestID string) *entity.BloodBag {
	now := time.Now()
	bag := &entity.BloodBag{
		ID:             id,
		Quantity:       decimal.NewFromInt(450),
		DonationDate:   now,
		ExpirationDate: now.Add(42 * 24 * time.Hour),
		BloodID:        bloodID,
		DonorID:        donorID,
		RequestID:      requestID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	e.s.bags[id] = bag
	return bag
}
