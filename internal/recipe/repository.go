package recipe

import "context"

// Repository defines all database operations for technical sheets.
//
// Save replaces the stored recipe wholesale AND overwrites the owning
// product's cost-per-unit in the same transaction: a concurrent reader sees
// either the old recipe with the old product cost or the new pair, never a
// mix.
type Repository interface {
	Save(ctx context.Context, recipe *Recipe) error
	GetByProductID(ctx context.Context, productID int) (*Recipe, error)
}
