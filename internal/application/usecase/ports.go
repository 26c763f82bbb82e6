package usecase

import (
	"context"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. Lo
// construye el runner de infraestructura con la tx abierta.
type TxRepos struct {
	Blood        repository.BloodRepository
	Donor        repository.DonorRepository
	HealthEntity repository.HealthEntityRepository
	Request      repository.RequestRepository
	BloodBag     repository.BloodBagRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si fn retorna nil,
// rollback en caso contrario. Las creaciones de Request/BloodBag y las
// cascadas de borrado corren completas dentro de una tx para que un fallo
// parcial no deje referencias colgantes.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
