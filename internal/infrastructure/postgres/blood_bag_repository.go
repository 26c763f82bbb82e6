package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

var _ repository.BloodBagRepository = (*BloodBagRepo)(nil)

// BloodBagRepo implementación del puerto BloodBagRepository sobre PostgreSQL.
type BloodBagRepo struct {
	q Querier
}

// NewBloodBagRepository construye el adaptador de persistencia para bolsas.
func NewBloodBagRepository(q Querier) *BloodBagRepo {
	return &BloodBagRepo{q: q}
}

// Create persiste una bolsa nueva.
func (r *BloodBagRepo) Create(bag *entity.BloodBag) error {
	query := `
		INSERT INTO blood_bags (id, quantity, donation_date, expiration_date, blood_id, donor_id, request_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		bag.ID, bag.Quantity, bag.DonationDate, bag.ExpirationDate, bag.BloodID, bag.DonorID, bag.RequestID, bag.CreatedAt, bag.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert blood bag: %w", err)
	}
	return nil
}

// GetByID obtiene una bolsa por ID.
func (r *BloodBagRepo) GetByID(id string) (*entity.BloodBag, error) {
	query := `SELECT id, quantity, donation_date, expiration_date, blood_id, donor_id, request_id, created_at, updated_at FROM blood_bags WHERE id = $1`
	var bag entity.BloodBag
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&bag.ID, &bag.Quantity, &bag.DonationDate, &bag.ExpirationDate, &bag.BloodID, &bag.DonorID, &bag.RequestID, &bag.CreatedAt, &bag.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blood bag: %w", err)
	}
	return &bag, nil
}

// List lista todas las bolsas.
func (r *BloodBagRepo) List() ([]*entity.BloodBag, error) {
	return r.listBy(``)
}

// ListByRequestID lista las bolsas que satisfacen un request.
func (r *BloodBagRepo) ListByRequestID(requestID string) ([]*entity.BloodBag, error) {
	return r.listBy(`WHERE request_id = $1`, requestID)
}

func (r *BloodBagRepo) listBy(where string, args ...any) ([]*entity.BloodBag, error) {
	query := `SELECT id, quantity, donation_date, expiration_date, blood_id, donor_id, request_id, created_at, updated_at FROM blood_bags ` + where + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list blood bags: %w", err)
	}
	defer rows.Close()
	var list []*entity.BloodBag
	for rows.Next() {
		var bag entity.BloodBag
		if err := rows.Scan(&bag.ID, &bag.Quantity, &bag.DonationDate, &bag.ExpirationDate, &bag.BloodID, &bag.DonorID, &bag.RequestID, &bag.CreatedAt, &bag.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan blood bag: %w", err)
		}
		list = append(list, &bag)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *BloodBagRepo) Update(id string, p repository.BloodBagPatch) (int64, error) {
	sets, args := []string{"updated_at = now()"}, []any{id}
	if p.Quantity != nil {
		args = append(args, *p.Quantity)
		sets = append(sets, fmt.Sprintf("quantity = $%d", len(args)))
	}
	if p.DonationDate != nil {
		args = append(args, *p.DonationDate)
		sets = append(sets, fmt.Sprintf("donation_date = $%d", len(args)))
	}
	if p.ExpirationDate != nil {
		args = append(args, *p.ExpirationDate)
		sets = append(sets, fmt.Sprintf("expiration_date = $%d", len(args)))
	}
	query := fmt.Sprintf("UPDATE blood_bags SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("update blood bag: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina una bolsa y devuelve filas afectadas.
func (r *BloodBagRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM blood_bags WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete blood bag: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByRequestID borra en bloque las bolsas de un request.
func (r *BloodBagRepo) DeleteByRequestID(requestID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM blood_bags WHERE request_id = $1`, requestID)
	if err != nil {
		return 0, fmt.Errorf("delete blood bags by request: %w", err)
	}
	return cmd.RowsAffected(), nil
}
