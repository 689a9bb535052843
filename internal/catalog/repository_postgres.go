package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simulador-preco/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create item
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO items (
			name,
			kind,
			unit,
			cost_per_unit,
			cost_source,
			yield_qty,
			is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		item.Name,
		item.Kind,
		item.Unit,
		item.CostPerUnit,
		item.CostSource,
		item.YieldQty,
		item.IsActive,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

// --------------------------------------------------
// Update item
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, item *Item) error {
	query := `
		UPDATE items
		SET name = $1,
		    unit = $2,
		    cost_per_unit = $3,
		    yield_qty = $4,
		    is_active = $5,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		item.Name,
		item.Unit,
		item.CostPerUnit,
		item.YieldQty,
		item.IsActive,
		item.ID,
	).Scan(&item.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("item %d: %w", item.ID, core.ErrNotFound)
	}
	return err
}

// --------------------------------------------------
// Get item by id
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*Item, error) {
	query := `
		SELECT
			id,
			name,
			kind,
			unit,
			cost_per_unit,
			cost_source,
			yield_qty,
			is_active,
			created_at,
			updated_at
		FROM items
		WHERE id = $1
	`

	var item Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Kind,
		&item.Unit,
		&item.CostPerUnit,
		&item.CostSource,
		&item.YieldQty,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --------------------------------------------------
// List items (optional kind / active filters)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, kind string, activeOnly bool) ([]*Item, error) {
	query := `
		SELECT
			id,
			name,
			kind,
			unit,
			cost_per_unit,
			cost_source,
			yield_qty,
			is_active,
			created_at,
			updated_at
		FROM items
		WHERE ($1 = '' OR kind = $1)
		  AND (NOT $2 OR is_active)
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, kind, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item

	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Kind,
			&item.Unit,
			&item.CostPerUnit,
			&item.CostSource,
			&item.YieldQty,
			&item.IsActive,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// Deactivate item (soft delete)
// --------------------------------------------------
func (r *PostgresRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	return nil
}

// --------------------------------------------------
// Overwrite stored cost-per-unit
// --------------------------------------------------
func (r *PostgresRepository) UpdateCost(ctx context.Context, id int, costPerUnit float64, costSource string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE items
		SET cost_per_unit = $1, cost_source = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, costPerUnit, costSource, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	return nil
}
