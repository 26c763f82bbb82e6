package usecase_test

import (
	"context"

	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// store es el backend en memoria compartido por todos los repos fake. Los
// repos reproducen el contrato de los puertos: Get* devuelve (nil, nil) si no
// hay fila, Update/Delete devuelven filas afectadas.
type store struct {
	bloods   map[string]*entity.Blood
	users    map[string]*entity.User
	donors   map[string]*entity.Donor
	entities map[string]*entity.HealthEntity
	requests map[string]*entity.Request
	bags     map[string]*entity.BloodBag
	roles    map[string]*entity.Role
	perms    map[string]*entity.Permission
	grants   map[string]map[string]bool // roleID → permissionID
}

func newStore() *store {
	return &store{
		bloods:   make(map[string]*entity.Blood),
		users:    make(map[string]*entity.User),
		donors:   make(map[string]*entity.Donor),
		entities: make(map[string]*entity.HealthEntity),
		requests: make(map[string]*entity.Request),
		bags:     make(map[string]*entity.BloodBag),
		roles:    make(map[string]*entity.Role),
		perms:    make(map[string]*entity.Permission),
		grants:   make(map[string]map[string]bool),
	}
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *store) snapshot() *store {
	snap := &store{
		bloods:   copyMap(s.bloods),
		users:    copyMap(s.users),
		donors:   copyMap(s.donors),
		entities: copyMap(s.entities),
		requests: copyMap(s.requests),
		bags:     copyMap(s.bags),
		roles:    copyMap(s.roles),
		perms:    copyMap(s.perms),
		grants:   make(map[string]map[string]bool, len(s.grants)),
	}
	for role, set := range s.grants {
		snap.grants[role] = copyMap(set)
	}
	return snap
}

func (s *store) restore(snap *store) {
	s.bloods = snap.bloods
	s.users = snap.users
	s.donors = snap.donors
	s.entities = snap.entities
	s.requests = snap.requests
	s.bags = snap.bags
	s.roles = snap.roles
	s.perms = snap.perms
	s.grants = snap.grants
}

// ───────────────────────────── Blood ─────────────────────────────

type fakeBloodRepo struct{ s *store }

func (r *fakeBloodRepo) Create(b *entity.Blood) error {
	r.s.bloods[b.ID] = b
	return nil
}

func (r *fakeBloodRepo) GetByID(id string) (*entity.Blood, error) {
	return r.s.bloods[id], nil
}

func (r *fakeBloodRepo) GetByGroupAndRH(group, rh string) (*entity.Blood, error) {
	for _, b := range r.s.bloods {
		if b.Group == group && b.RHFactor == rh {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBloodRepo) List() ([]*entity.Blood, error) {
	out := make([]*entity.Blood, 0, len(r.s.bloods))
	for _, b := range r.s.bloods {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBloodRepo) Update(id string, p repository.BloodPatch) (int64, error) {
	b, ok := r.s.bloods[id]
	if !ok {
		return 0, nil
	}
	if p.Group != nil {
		b.Group = *p.Group
	}
	if p.RHFactor != nil {
		b.RHFactor = *p.RHFactor
	}
	return 1, nil
}

func (r *fakeBloodRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.bloods[id]; !ok {
		return 0, nil
	}
	delete(r.s.bloods, id)
	return 1, nil
}

// ───────────────────────────── User ─────────────────────────────

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.s.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.s.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(id string, p repository.UserPatch) (int64, error) {
	u, ok := r.s.users[id]
	if !ok {
		return 0, nil
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.RoleID != nil {
		u.RoleID = *p.RoleID
	}
	return 1, nil
}

func (r *fakeUserRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.users[id]; !ok {
		return 0, nil
	}
	delete(r.s.users, id)
	return 1, nil
}

// ───────────────────────────── Donor ─────────────────────────────

type fakeDonorRepo struct{ s *store }

func (r *fakeDonorRepo) Create(d *entity.Donor) error {
	r.s.donors[d.ID] = d
	return nil
}

func (r *fakeDonorRepo) GetByID(id string) (*entity.Donor, error) {
	return r.s.donors[id], nil
}

func (r *fakeDonorRepo) GetByDocument(document string) (*entity.Donor, error) {
	for _, d := range r.s.donors {
		if d.Document == document {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDonorRepo) List() ([]*entity.Donor, error) {
	out := make([]*entity.Donor, 0, len(r.s.donors))
	for _, d := range r.s.donors {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDonorRepo) Update(id string, p repository.DonorPatch) (int64, error) {
	d, ok := r.s.donors[id]
	if !ok {
		return 0, nil
	}
	if p.Document != nil {
		d.Document = *p.Document
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Lastname != nil {
		d.Lastname = *p.Lastname
	}
	if p.BirthDate != nil {
		d.BirthDate = *p.BirthDate
	}
	if p.BloodID != nil {
		d.BloodID = *p.BloodID
	}
	return 1, nil
}

func (r *fakeDonorRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.donors[id]; !ok {
		return 0, nil
	}
	delete(r.s.donors, id)
	return 1, nil
}

// ───────────────────────── HealthEntity ─────────────────────────

type fakeHealthEntityRepo struct{ s *store }

func (r *fakeHealthEntityRepo) Create(he *entity.HealthEntity) error {
	r.s.entities[he.ID] = he
	return nil
}

func (r *fakeHealthEntityRepo) GetByID(id string) (*entity.HealthEntity, error) {
	return r.s.entities[id], nil
}

func (r *fakeHealthEntityRepo) GetByNIT(nit string) (*entity.HealthEntity, error) {
	for _, he := range r.s.entities {
		if he.NIT == nit {
			return he, nil
		}
	}
	return nil, nil
}

func (r *fakeHealthEntityRepo) List() ([]*entity.HealthEntity, error) {
	out := make([]*entity.HealthEntity, 0, len(r.s.entities))
	for _, he := range r.s.entities {
		out = append(out, he)
	}
	return out, nil
}

func (r *fakeHealthEntityRepo) Update(id string, p repository.HealthEntityPatch) (int64, error) {
	he, ok := r.s.entities[id]
	if !ok {
		return 0, nil
	}
	if p.NIT != nil {
		he.NIT = *p.NIT
	}
	if p.Name != nil {
		he.Name = *p.Name
	}
	if p.Address != nil {
		he.Address = *p.Address
	}
	if p.City != nil {
		he.City = *p.City
	}
	if p.Phone != nil {
		he.Phone = *p.Phone
	}
	if p.Email != nil {
		he.Email = *p.Email
	}
	if p.Type != nil {
		he.Type = *p.Type
	}
	return 1, nil
}

func (r *fakeHealthEntityRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.entities[id]; !ok {
		return 0, nil
	}
	delete(r.s.entities, id)
	return 1, nil
}

// ───────────────────────────── Request ─────────────────────────────

type fakeRequestRepo struct{ s *store }

func (r *fakeRequestRepo) Create(req *entity.Request) error {
	r.s.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*entity.Request, error) {
	return r.s.requests[id], nil
}

func (r *fakeRequestRepo) List() ([]*entity.Request, error) {
	out := make([]*entity.Request, 0, len(r.s.requests))
	for _, req := range r.s.requests {
		out = append(out, req)
	}
	return out, nil
}

func (r *fakeRequestRepo) ListByHealthEntityID(healthEntityID string) ([]*entity.Request, error) {
	var out []*entity.Request
	for _, req := range r.s.requests {
		if req.HealthEntityID == healthEntityID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) Update(id string, p repository.RequestPatch) (int64, error) {
	req, ok := r.s.requests[id]
	if !ok {
		return 0, nil
	}
	if p.QuantityNeeded != nil {
		req.QuantityNeeded = *p.QuantityNeeded
	}
	if p.DueDate != nil {
		req.DueDate = *p.DueDate
	}
	if p.BloodID != nil {
		req.BloodID = *p.BloodID
	}
	return 1, nil
}

func (r *fakeRequestRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.requests[id]; !ok {
		return 0, nil
	}
	delete(r.s.requests, id)
	return 1, nil
}

func (r *fakeRequestRepo) DeleteByHealthEntityID(healthEntityID string) (int64, error) {
	var n int64
	for id, req := range r.s.requests {
		if req.HealthEntityID == healthEntityID {
			delete(r.s.requests, id)
			n++
		}
	}
	return n, nil
}

// ───────────────────────────── BloodBag ─────────────────────────────

type fakeBloodBagRepo struct{ s *store }

func (r *fakeBloodBagRepo) Create(bag *entity.BloodBag) error {
	r.s.bags[bag.ID] = bag
	return nil
}

func (r *fakeBloodBagRepo) GetByID(id string) (*entity.BloodBag, error) {
	return r.s.bags[id], nil
}

func (r *fakeBloodBagRepo) List() ([]*entity.BloodBag, error) {
	out := make([]*entity.BloodBag, 0, len(r.s.bags))
	for _, bag := range r.s.bags {
		out = append(out, bag)
	}
	return out, nil
}

func (r *fakeBloodBagRepo) ListByRequestID(requestID string) ([]*entity.BloodBag, error) {
	var out []*entity.BloodBag
	for _, bag := range r.s.bags {
		if bag.RequestID == requestID {
			out = append(out, bag)
		}
	}
	return out, nil
}

func (r *fakeBloodBagRepo) Update(id string, p repository.BloodBagPatch) (int64, error) {
	bag, ok := r.s.bags[id]
	if !ok {
		return 0, nil
	}
	if p.Quantity != nil {
		bag.Quantity = *p.Quantity
	}
	if p.DonationDate != nil {
		bag.DonationDate = *p.DonationDate
	}
	if p.ExpirationDate != nil {
		bag.ExpirationDate = *p.ExpirationDate
	}
	return 1, nil
}

func (r *fakeBloodBagRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.bags[id]; !ok {
		return 0, nil
	}
	delete(r.s.bags, id)
	return 1, nil
}

func (r *fakeBloodBagRepo) DeleteByRequestID(requestID string) (int64, error) {
	var n int64
	for id, bag := range r.s.bags {
		if bag.RequestID == requestID {
			delete(r.s.bags, id)
			n++
		}
	}
	return n, nil
}

// ──────────────────────── Role y Permission ────────────────────────

type fakeRoleRepo struct{ s *store }

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	r.s.roles[role.ID] = role
	return nil
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.s.roles[id], nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.s.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	out := make([]*entity.Role, 0, len(r.s.roles))
	for _, role := range r.s.roles {
		out = append(out, role)
	}
	return out, nil
}

func (r *fakeRoleRepo) Update(id string, p repository.RolePatch) (int64, error) {
	role, ok := r.s.roles[id]
	if !ok {
		return 0, nil
	}
	if p.Name != nil {
		role.Name = *p.Name
	}
	return 1, nil
}

func (r *fakeRoleRepo) Delete(id string) (int64, error) {
	if _, ok := r.s.roles[id]; !ok {
		return 0, nil
	}
	delete(r.s.roles, id)
	delete(r.s.grants, id)
	return 1, nil
}

func (r *fakeRoleRepo) AddPermission(roleID, permissionID string) error {
	if r.s.grants[roleID] == nil {
		r.s.grants[roleID] = make(map[string]bool)
	}
	r.s.grants[roleID][permissionID] = true
	return nil
}

func (r *fakeRoleRepo) Permissions(roleID string) ([]*entity.Permission, error) {
	var out []*entity.Permission
	for permID := range r.s.grants[roleID] {
		if p, ok := r.s.perms[permID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePermissionRepo struct{ s *store }

func (r *fakePermissionRepo) Create(p *entity.Permission) error {
	r.s.perms[p.ID] = p
	return nil
}

func (r *fakePermissionRepo) GetByID(id string) (*entity.Permission, error) {
	return r.s.perms[id], nil
}

func (r *fakePermissionRepo) GetByName(name string) (*entity.Permission, error) {
	for _, p := range r.s.perms {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePermissionRepo) List() ([]*entity.Permission, error) {
	out := make([]*entity.Permission, 0, len(r.s.perms))
	for _, p := range r.s.perms {
		out = append(out, p)
	}
	return out, nil
}

// ───────────────────────────── TxRunner ─────────────────────────────

// fakeTxRunner simula la semántica transaccional sobre el store en memoria:
// toma un snapshot antes de fn y lo restaura si fn retorna error, de modo que
// un fallo a mitad de un guion no deje escritura parcial visible.
type fakeTxRunner struct{ s *store }

func (f *fakeTxRunner) Run(ctx context.Context, fn func(r usecase.TxRepos) error) error {
	snap := f.s.snapshot()
	err := fn(usecase.TxRepos{
		Blood:        &fakeBloodRepo{f.s},
		Donor:        &fakeDonorRepo{f.s},
		HealthEntity: &fakeHealthEntityRepo{f.s},
		Request:      &fakeRequestRepo{f.s},
		BloodBag:     &fakeBloodBagRepo{f.s},
	})
	if err != nil {
		f.s.restore(snap)
	}
	return err
}

// ───────────────────────────── Entorno ─────────────────────────────

// env arma la pila completa de casos de uso sobre un único store compartido.
type env struct {
	s         *store
	bloodUC   *usecase.BloodUseCase
	donorUC   *usecase.DonorUseCase
	entityUC  *usecase.HealthEntityUseCase
	requestUC *usecase.RequestUseCase
	bagUC     *usecase.BloodBagUseCase
	roleUC    *usecase.RoleUseCase
	userUC    *usecase.UserUseCase
}

func newEnv() *env {
	s := newStore()
	tx := &fakeTxRunner{s}
	bloodUC := usecase.NewBloodUseCase(&fakeBloodRepo{s})
	donorUC := usecase.NewDonorUseCase(&fakeDonorRepo{s}, bloodUC, &fakeUserRepo{s})
	return &env{
		s:         s,
		bloodUC:   bloodUC,
		donorUC:   donorUC,
		entityUC:  usecase.NewHealthEntityUseCase(&fakeHealthEntityRepo{s}, &fakeUserRepo{s}, tx),
		requestUC: usecase.NewRequestUseCase(&fakeRequestRepo{s}, &fakeHealthEntityRepo{s}, bloodUC, tx),
		bagUC:     usecase.NewBloodBagUseCase(&fakeBloodBagRepo{s}, &fakeRequestRepo{s}, donorUC, tx),
		roleUC:    usecase.NewRoleUseCase(&fakeRoleRepo{s}, &fakePermissionRepo{s}),
		userUC:    usecase.NewUserUseCase(&fakeUserRepo{s}, &fakeRoleRepo{s}),
	}
}
