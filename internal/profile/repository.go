package profile

import "context"

// Repository defines all database operations for pricing profiles.
//
// Create and Update must apply the single-default invariant atomically:
// flagging a profile as default clears the flag on any other profile
// inside the same transaction, so a concurrent reader never observes
// zero or two defaults.
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id int) (*Profile, error)
	GetDefault(ctx context.Context) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	Delete(ctx context.Context, id int) error
}
