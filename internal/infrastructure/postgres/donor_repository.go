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

var _ repository.DonorRepository = (*DonorRepo)(nil)

// DonorRepo implementación del puerto DonorRepository sobre PostgreSQL.
type DonorRepo struct {
	q Querier
}

// NewDonorRepository construye el adaptador de persistencia para donantes.
func NewDonorRepository(q Querier) *DonorRepo {
	return &DonorRepo{q: q}
}

// Create persiste un donante nuevo. El documento es único.
func (r *DonorRepo) Create(d *entity.Donor) error {
	query := `
		INSERT INTO donors (id, document, name, lastname, birth_date, blood_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.Document, d.Name, d.Lastname, d.BirthDate, d.BloodID, d.UserID, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

// GetByID obtiene un donante por ID.
func (r *DonorRepo) GetByID(id string) (*entity.Donor, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByDocument obtiene un donante por documento de identidad.
func (r *DonorRepo) GetByDocument(document string) (*entity.Donor, error) {
	return r.getBy(`WHERE document = $1`, document)
}

func (r *DonorRepo) getBy(where string, arg any) (*entity.Donor, error) {
	query := `SELECT id, document, name, lastname, birth_date, blood_id, user_id, created_at, updated_at FROM donors ` + where
	var d entity.Donor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Document, &d.Name, &d.Lastname, &d.BirthDate, &d.BloodID, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donor: %w", err)
	}
	return &d, nil
}

// List lista todos los donantes.
func (r *DonorRepo) List() ([]*entity.Donor, error) {
	query := `SELECT id, document, name, lastname, birth_date, blood_id, user_id, created_at, updated_at FROM donors ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Donor
	for rows.Next() {
		var d entity.Donor
		if err := rows.Scan(&d.ID, &d.Document, &d.Name, &d.Lastname, &d.BirthDate, &d.BloodID, &d.UserID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan donor: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *DonorRepo) Update(id string, p repository.DonorPatch) (int64, error) {
	sets, args := []string{"updated_at = now()"}, []any{id}
	if p.Document != nil {
		args = append(args, *p.Document)
		sets = append(sets, fmt.Sprintf("document = $%d", len(args)))
	}
	if p.Name != nil {
		args = append(args, *p.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if p.Lastname != nil {
		args = append(args, *p.Lastname)
		sets = append(sets, fmt.Sprintf("lastname = $%d", len(args)))
	}
	if p.BirthDate != nil {
		args = append(args, *p.BirthDate)
		sets = append(sets, fmt.Sprintf("birth_date = $%d", len(args)))
	}
	if p.BloodID != nil {
		args = append(args, *p.BloodID)
		sets = append(sets, fmt.Sprintf("blood_id = $%d", len(args)))
	}
	query := fmt.Sprintf("UPDATE donors SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update donor: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un donante y devuelve filas afectadas.
func (r *DonorRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete donor: %w", err)
	}
	return cmd.RowsAffected(), nil
}
