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

var _ repository.BloodRepository = (*BloodRepo)(nil)

// BloodRepo implementación del puerto BloodRepository sobre PostgreSQL
// (usable con pool o tx).
type BloodRepo struct {
	q Querier
}

// NewBloodRepository construye el adaptador de persistencia para tipos de
// sangre. Pasar pool o tx (Querier).
func NewBloodRepository(q Querier) *BloodRepo {
	return &BloodRepo{q: q}
}

// Create persiste un tipo de sangre. La combinación grupo+factor es única.
func (r *BloodRepo) Create(blood *entity.Blood) error {
	query := `INSERT INTO bloods (id, blood_group, rh_factor) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, blood.ID, blood.Group, blood.RHFactor)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert blood: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de sangre por ID.
func (r *BloodRepo) GetByID(id string) (*entity.Blood, error) {
	query := `SELECT id, blood_group, rh_factor FROM bloods WHERE id = $1`
	var b entity.Blood
	err := r.q.QueryRow(context.Background(), query, id).Scan(&b.ID, &b.Group, &b.RHFactor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood: %w", err)
	}
	return &b, nil
}

// GetByGroupAndRH obtiene un tipo de sangre por su combinación.
func (r *BloodRepo) GetByGroupAndRH(group, rhFactor string) (*entity.Blood, error) {
	query := `SELECT id, blood_group, rh_factor FROM bloods WHERE blood_group = $1 AND rh_factor = $2`
	var b entity.Blood
	err := r.q.QueryRow(context.Background(), query, group, rhFactor).Scan(&b.ID, &b.Group, &b.RHFactor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood by combination: %w", err)
	}
	return &b, nil
}

// List lista los tipos de sangre en orden de grupo y factor.
func (r *BloodRepo) List() ([]*entity.Blood, error) {
	query := `SELECT id, blood_group, rh_factor FROM bloods ORDER BY blood_group, rh_factor`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bloods: %w", err)
	}
	defer rows.Close()
	var list []*entity.Blood
	for rows.Next() {
		var b entity.Blood
		if err := rows.Scan(&b.ID, &b.Group, &b.RHFactor); err != nil {
			return nil, fmt.Errorf("scan blood: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *BloodRepo) Update(id string, p repository.BloodPatch) (int64, error) {
	sets, args := []string{}, []any{id}
	if p.Group != nil {
		args = append(args, *p.Group)
		sets = append(sets, fmt.Sprintf("blood_group = $%d", len(args)))
	}
	if p.RHFactor != nil {
		args = append(args, *p.RHFactor)
		sets = append(sets, fmt.Sprintf("rh_factor = $%d", len(args)))
	}
	if len(sets) == 0 {
		// Parche vacío: solo comprobar existencia.
		b, err := r.GetByID(id)
		if err != nil {
			return 0, err
		}
		if b == nil {
			return 0, nil
		}
		return 1, nil
	}
	query := fmt.Sprintf("UPDATE bloods SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update blood: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un tipo de sangre y devuelve filas afectadas.
func (r *BloodRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM bloods WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete blood: %w", err)
	}
	return cmd.RowsAffected(), nil
}
