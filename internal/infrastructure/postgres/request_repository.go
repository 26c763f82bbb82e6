package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/entity"
	"github.com/JuanCami009/banco-sangre-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación del puerto RequestRepository sobre PostgreSQL.
type RequestRepo struct {
	q Querier
}

// NewRequestRepository construye el adaptador de persistencia para requests.
func NewRequestRepository(q Querier) *RequestRepo {
	return &RequestRepo{q: q}
}

// Create persiste un request nuevo.
func (r *RequestRepo) Create(req *entity.Request) error {
	query := `
		INSERT INTO requests (id, quantity_needed, due_date, blood_id, health_entity_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.QuantityNeeded, req.DueDate, req.BloodID, req.HealthEntityID, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene un request por ID.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	query := `SELECT id, quantity_needed, due_date, blood_id, health_entity_id, created_at, updated_at FROM requests WHERE id = $1`
	var req entity.Request
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.QuantityNeeded, &req.DueDate, &req.BloodID, &req.HealthEntityID, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &req, nil
}

// List lista todos los requests.
func (r *RequestRepo) List() ([]*entity.Request, error) {
	return r.listBy(``)
}

// ListByHealthEntityID lista los requests levantados por una entidad.
func (r *RequestRepo) ListByHealthEntityID(healthEntityID string) ([]*entity.Request, error) {
	return r.listBy(`WHERE health_entity_id = $1`, healthEntityID)
}

func (r *RequestRepo) listBy(where string, args ...any) ([]*entity.Request, error) {
	query := `SELECT id, quantity_needed, due_date, blood_id, health_entity_id, created_at, updated_at FROM requests ` + where + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.Request
	for rows.Next() {
		var req entity.Request
		if err := rows.Scan(&req.ID, &req.QuantityNeeded, &req.DueDate, &req.BloodID, &req.HealthEntityID, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// Update aplica el parche parcial y devuelve filas afectadas.
func (r *RequestRepo) Update(id string, p repository.RequestPatch) (int64, error) {
	sets, args := []string{"updated_at = now()"}, []any{id}
	if p.QuantityNeeded != nil {
		args = append(args, *p.QuantityNeeded)
		sets = append(sets, fmt.Sprintf("quantity_needed = $%d", len(args)))
	}
	if p.DueDate != nil {
		args = append(args, *p.DueDate)
		sets = append(sets, fmt.Sprintf("due_date = $%d", len(args)))
	}
	if p.BloodID != nil {
		args = append(args, *p.BloodID)
		sets = append(sets, fmt.Sprintf("blood_id = $%d", len(args)))
	}
	query := fmt.Sprintf("UPDATE requests SET %s WHERE id = $1", joinSets(sets))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("update request: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un request y devuelve filas afectadas.
func (r *RequestRepo) Delete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete request: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByHealthEntityID borra en bloque los requests de una entidad.
func (r *RequestRepo) DeleteByHealthEntityID(healthEntityID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM requests WHERE health_entity_id = $1`, healthEntityID)
	if err != nil {
		return 0, fmt.Errorf("delete requests by health entity: %w", err)
	}
	return cmd.RowsAffected(), nil
}
