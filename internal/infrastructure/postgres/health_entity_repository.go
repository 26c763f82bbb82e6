package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JuanCami009/banco-sangre-api/internal/domain"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

var _ repository.HealthEntityRepository = (*HealthEntityRepo)(nil)

// HealthEntityRepo implementación del puerto HealthEntityRepository sobre
// PostgreSQL.
type HealthEntityRepo struct {
	q Querier
}

// NewHealthEntityRepository construye el adaptador de persistencia para
// entidades de salud.
func NewHealthEntityRepository(q Querier) *HealthEntityRepo {
	return &HealthEntityRepo{q: q}
}

// Create persiste una entidad de salud. El NIT es único.
func (r *HealthEntityRepo) Create(he *entity.HealthEntity) error {
	query := `
		INSERT INTO health_entities (id, nit, name, address, city, phone, email, type, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		he.ID, he.NIT, he.Name, he.Address, he.City, he.Phone, he.Email, he.Type, he.UserID, he.CreatedAt, he.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert health entity: %w", err)
	}
	return nil
}

// GetByID obtiene una entidad de salud por ID.
func (r *HealthEntityRepo) GetByID(id string) (*entity.HealthEntity, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByNIT obtiene una entidad de salud por NIT.
func (r *HealthEntityRepo) GetByNIT(nit string) (*entity.HealthEntity, error) {
	return r.getBy(`WHERE nit = $1`, nit)
}

func (r *HealthEntityRepo) getBy(where string, arg any) (*entity.HealthEntity, error) {
	query := `SELECT id, nit, name, address, city, phone, email, type, user_id, created_at, updated_at FROM health_entities ` + where
	var he entity.HealthEntity
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&he.ID, &he.NIT, &he.Name, &he.Address, &he.City, &he.Phone, &he.Email, &he.Type, &he.UserID, &he.CreatedAt, &he.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get health entity: %w", err)
	}
	return &he, nil
}

// List lista todas las entidades de salud.
func (r *HealthEntityRepo) List() ([]*entity.HealthEntity, error) {
	query := `SELECT id, nit, name, address, city, phone, email, type, user_id, created_at, updated_at FROM health_entities ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list health entities: %w", err)
	}
	defer rows.Close()
	var list []*entity.HealthEntity
	for rows.Next() {
		var he entity.HealthEntity
		if err := rows.Scan(&he.ID, &he.NIT, &he.Name, &he.Address, &he.City, &he.Phone, &he.Email, &he.Type, &he.UserID, &he.CreatedAt, &he.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan health entity: %w", err)
		}
		list = append(list, &he)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *HealthEntityRepo) Update(id string, p repository.HealthEntityPatch) (int64, error) {
	sets, args := []string{"updated_at = now()"}, []any{id}
	if p.NIT != nil {
		args = append(args, *p.NIT)
		sets = append(sets, fmt.Sprintf("nit = $%d", len(args)))
	}
	if p.Name != nil {
		args = append(args, *p.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if p.Address != nil {
		args = append(args, *p.Address)
		sets = append(sets, fmt.Sprintf("address = $%d", len(args)))
	}
	if p.City != nil {
		args = append(args, *p.City)
		sets = append(sets, fmt.Sprintf("city = $%d", len(args)))
	}
	if p.Phone != nil {
		args = append(args, *p.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if p.Email != nil {
		args = append(args, *p.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if p.Type != nil {
		args = append(args, *p.Type)
		sets = append(sets, fmt.Sprintf("type = $%d", len(args)))
	}
	query := fmt.Sprintf("UPDATE health_entities SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update health entity: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina una entidad de salud y devuelve filas afectadas. La cascada
// de requests y bolsas la orquesta el caso de uso dentro de la misma tx.
func (r *HealthEntityRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM health_entities WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete health entity: %w", err)
	}
	return cmd.RowsAffected(), nil
}
