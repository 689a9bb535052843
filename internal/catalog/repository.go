package catalog

import "context"

// Repository defines all database operations for the item catalog.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, id int) (*Item, error)

	// List returns items, optionally filtered by kind and/or active flag.
	List(ctx context.Context, kind string, activeOnly bool) ([]*Item, error)

	Deactivate(ctx context.Context, id int) error

	// UpdateCost overwrites an item's stored cost-per-unit. The recipe
	// save path is the only caller allowed to write a RECIPE-sourced cost.
	UpdateCost(ctx context.Context, id int, costPerUnit float64, costSource string) error
}
