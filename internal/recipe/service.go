package recipe

import (
	"context"
	"fmt"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
)

type Service struct {
	repo  Repository
	items catalog.Repository
}

func NewService(repo Repository, items catalog.Repository) *Service {
	return &Service{
		repo:  repo,
		items: items,
	}
}

// LineInput is one (ingredient, quantity) pair as submitted by the caller.
// Unit and unit cost are resolved from the current catalog state at save
// time, not taken from the request.
type LineInput struct {
	IngredientID int     `json:"ingredient_id"`
	Qty          float64 `json:"qty"`
}

// --------------------------------------------------
// Save technical sheet (recomputes the product cost)
// --------------------------------------------------
func (s *Service) SaveRecipe(
	ctx context.Context,
	productID int,
	wasteFactor float64,
	lines []LineInput,
) (*Recipe, error) {

	product, err := s.items.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Kind != catalog.KindProductWithRecipe {
		return nil, fmt.Errorf("item %q is not a recipe product: %w", product.Name, core.ErrValidation)
	}

	// Keep usable lines only. A negative quantity is bad input; a zero
	// quantity or missing ingredient id is an empty editor row.
	var usable []LineInput
	for _, line := range lines {
		if line.Qty < 0 {
			return nil, fmt.Errorf("ingredient %d has negative quantity: %w", line.IngredientID, core.ErrValidation)
		}
		if line.IngredientID == 0 || line.Qty == 0 {
			continue
		}
		usable = append(usable, line)
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("recipe needs at least one ingredient with a quantity: %w", core.ErrValidation)
	}

	// Resolve unit costs from the catalog as of now; they are denormalized
	// onto the stored lines.
	resolved := make([]Line, 0, len(usable))
	for _, line := range usable {
		ingredient, err := s.items.GetByID(ctx, line.IngredientID)
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", line.IngredientID, core.ErrValidation)
		}
		if ingredient.Kind != catalog.KindIngredient {
			return nil, fmt.Errorf("item %q is not an ingredient: %w", ingredient.Name, core.ErrValidation)
		}
		if !ingredient.IsActive {
			return nil, fmt.Errorf("ingredient %q is inactive: %w", ingredient.Name, core.ErrValidation)
		}

		resolved = append(resolved, Line{
			IngredientID:   ingredient.ID,
			IngredientName: ingredient.Name,
			Unit:           ingredient.Unit,
			UnitCost:       ingredient.CostPerUnit,
			Qty:            line.Qty,
		})
	}

	total, err := ComputeCost(resolved, wasteFactor)
	if err != nil {
		return nil, err
	}

	rec := &Recipe{
		ProductID:   productID,
		WasteFactor: wasteFactor,
		TotalCost:   total,
		Lines:       resolved,
	}

	// Persists the recipe and overwrites the product's cost-per-unit as
	// one atomic unit.
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// --------------------------------------------------
// Load technical sheet for a product
// --------------------------------------------------
func (s *Service) GetRecipe(ctx context.Context, productID int) (*Recipe, error) {
	return s.repo.GetByProductID(ctx, productID)
}
