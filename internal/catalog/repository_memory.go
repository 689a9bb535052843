package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"simulador-preco/internal/core"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	items  map[int]*Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID: 1,
		items:  make(map[int]*Item),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("item %d: %w", item.ID, core.ErrNotFound)
	}

	existing.Name = item.Name
	existing.Unit = item.Unit
	existing.CostPerUnit = item.CostPerUnit
	existing.YieldQty = item.YieldQty
	existing.IsActive = item.IsActive
	existing.UpdatedAt = time.Now()
	item.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	clone := *item
	return &clone, nil
}

func (r *InMemoryRepository) List(ctx context.Context, kind string, activeOnly bool) ([]*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var items []*Item
	for _, item := range r.items {
		if kind != "" && item.Kind != kind {
			continue
		}
		if activeOnly && !item.IsActive {
			continue
		}
		clone := *item
		items = append(items, &clone)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InMemoryRepository) Deactivate(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	item.IsActive = false
	item.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) UpdateCost(ctx context.Context, id int, costPerUnit float64, costSource string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, core.ErrNotFound)
	}
	item.CostPerUnit = costPerUnit
	item.CostSource = costSource
	item.UpdatedAt = time.Now()
	return nil
}
