package pricing

import (
	"context"
	"fmt"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
	"simulador-preco/internal/profile"
)

// Service resolves simulation inputs and delegates to the markup engine.
// It is read-only: concurrent simulations need no locking.
type Service struct {
	items    catalog.Repository
	profiles profile.Repository
}

func NewService(items catalog.Repository, profiles profile.Repository) *Service {
	return &Service{
		items:    items,
		profiles: profiles,
	}
}

// --------------------------------------------------
// Run a price simulation
// --------------------------------------------------
func (s *Service) Simulate(
	ctx context.Context,
	itemID int,
	profileID *int,
	currentPrice *float64,
) (*Result, error) {

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// The stored cost already reflects any recipe aggregation.
	var prof *profile.Profile
	if profileID != nil {
		prof, err = s.profiles.GetByID(ctx, *profileID)
	} else {
		// No explicit profile: use the default, and fail rather than
		// guess when none is flagged.
		prof, err = s.profiles.GetDefault(ctx)
	}
	if err != nil {
		return nil, err
	}

	// Stored profiles were validated at write time; re-check so a
	// saturated one can never reach the divisor.
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("stored profile %d is invalid: %w", prof.ID, core.ErrInvariant)
	}

	result, err := Simulate(item.CostPerUnit, prof, currentPrice)
	if err != nil {
		return nil, err
	}

	result.ItemName = item.Name
	result.ProfileName = prof.Name
	return result, nil
}
