package catalog

import (
	"context"
	"fmt"

	"simulador-preco/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create item
// --------------------------------------------------
func (s *Service) CreateItem(
	ctx context.Context,
	name string,
	kind string,
	unit string,
	costPerUnit float64,
	yieldQty *float64,
) (*Item, error) {

	if name == "" || unit == "" {
		return nil, fmt.Errorf("missing required fields: %w", core.ErrValidation)
	}
	if !ValidKind(kind) {
		return nil, fmt.Errorf("unknown item kind %q: %w", kind, core.ErrValidation)
	}
	if costPerUnit < 0 {
		return nil, fmt.Errorf("cost per unit must be non-negative: %w", core.ErrValidation)
	}

	item := &Item{
		Name:        name,
		Kind:        kind,
		Unit:        unit,
		CostPerUnit: costPerUnit,
		CostSource:  CostSourceManual,
		YieldQty:    yieldQty,
		IsActive:    true,
	}

	// A recipe product's cost is derived by the recipe save path,
	// never hand-entered.
	if kind == KindProductWithRecipe {
		if costPerUnit != 0 {
			return nil, fmt.Errorf("cost of a recipe product is derived from its technical sheet: %w", core.ErrValidation)
		}
		item.CostSource = CostSourceRecipe
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// --------------------------------------------------
// Update item
// --------------------------------------------------
func (s *Service) UpdateItem(
	ctx context.Context,
	id int,
	name string,
	kind string,
	unit string,
	costPerUnit float64,
	yieldQty *float64,
	isActive bool,
) (*Item, error) {

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name == "" || unit == "" {
		return nil, fmt.Errorf("missing required fields: %w", core.ErrValidation)
	}
	// Kind is fixed at creation: changing it would invalidate recipes
	// referencing this item.
	if kind != "" && kind != existing.Kind {
		return nil, fmt.Errorf("item kind cannot be changed: %w", core.ErrValidation)
	}
	if costPerUnit < 0 {
		return nil, fmt.Errorf("cost per unit must be non-negative: %w", core.ErrValidation)
	}
	if existing.Kind == KindProductWithRecipe && costPerUnit != existing.CostPerUnit {
		return nil, fmt.Errorf("cost of a recipe product is derived from its technical sheet: %w", core.ErrValidation)
	}

	existing.Name = name
	existing.Unit = unit
	existing.CostPerUnit = costPerUnit
	existing.YieldQty = yieldQty
	existing.IsActive = isActive

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) GetItem(ctx context.Context, id int) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListItems(ctx context.Context, kind string, activeOnly bool) ([]*Item, error) {
	if kind != "" && !ValidKind(kind) {
		return nil, fmt.Errorf("unknown item kind %q: %w", kind, core.ErrValidation)
	}
	return s.repo.List(ctx, kind, activeOnly)
}

// --------------------------------------------------
// Deactivate item (soft delete)
// --------------------------------------------------
func (s *Service) DeactivateItem(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
