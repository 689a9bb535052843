package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Save recipe + product cost (single transaction)
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, recipe *Recipe) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (product_id, waste_factor, total_cost)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id) DO UPDATE
		SET waste_factor = EXCLUDED.waste_factor,
		    total_cost = EXCLUDED.total_cost,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING id, updated_at
	`, recipe.ProductID, recipe.WasteFactor, recipe.TotalCost,
	).Scan(&recipe.ID, &recipe.UpdatedAt)
	if err != nil {
		return err
	}

	// Replace lines wholesale
	if _, err := tx.Exec(ctx, `
		DELETE FROM recipe_lines WHERE recipe_id = $1
	`, recipe.ID); err != nil {
		return err
	}

	for i, line := range recipe.Lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO recipe_lines (recipe_id, position, ingredient_id, qty, unit, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, recipe.ID, i, line.IngredientID, line.Qty, line.Unit, line.UnitCost); err != nil {
			return err
		}
	}

	// Overwrite the product's stored cost inside the same tx. This is the
	// only write path for a recipe product's cost-per-unit.
	if _, err := tx.Exec(ctx, `
		UPDATE items
		SET cost_per_unit = $1, cost_source = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, recipe.TotalCost, catalog.CostSourceRecipe, recipe.ProductID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// Get recipe by owning product
// --------------------------------------------------
func (r *PostgresRepository) GetByProductID(ctx context.Context, productID int) (*Recipe, error) {
	var rec Recipe

	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, waste_factor, total_cost, updated_at
		FROM recipes
		WHERE product_id = $1
	`, productID).Scan(
		&rec.ID,
		&rec.ProductID,
		&rec.WasteFactor,
		&rec.TotalCost,
		&rec.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("recipe for product %d: %w", productID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT rl.ingredient_id, i.name, rl.unit, rl.unit_cost, rl.qty
		FROM recipe_lines rl
		JOIN items i ON i.id = rl.ingredient_id
		WHERE rl.recipe_id = $1
		ORDER BY rl.position ASC
	`, rec.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line Line
		if err := rows.Scan(
			&line.IngredientID,
			&line.IngredientName,
			&line.Unit,
			&line.UnitCost,
			&line.Qty,
		); err != nil {
			return nil, err
		}
		rec.Lines = append(rec.Lines, line)
	}

	return &rec, rows.Err()
}
