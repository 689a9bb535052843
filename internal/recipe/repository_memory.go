package recipe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
)

// InMemoryRepository mirrors the transactional Save of the Postgres
// repository: recipe and product cost are written under one lock.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int
	recipes map[int]*Recipe // keyed by product id
	items   catalog.Repository
}

func NewInMemoryRepository(items catalog.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		nextID:  1,
		recipes: make(map[int]*Recipe),
		items:   items,
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, recipe *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.recipes[recipe.ProductID]; ok {
		recipe.ID = existing.ID
	} else {
		recipe.ID = r.nextID
		r.nextID++
	}
	recipe.UpdatedAt = time.Now()

	clone := *recipe
	clone.Lines = append([]Line(nil), recipe.Lines...)
	r.recipes[recipe.ProductID] = &clone

	return r.items.UpdateCost(ctx, recipe.ProductID, recipe.TotalCost, catalog.CostSourceRecipe)
}

func (r *InMemoryRepository) GetByProductID(ctx context.Context, productID int) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.recipes[productID]
	if !ok {
		return nil, fmt.Errorf("recipe for product %d: %w", productID, core.ErrNotFound)
	}

	clone := *rec
	clone.Lines = append([]Line(nil), rec.Lines...)
	return &clone, nil
}
