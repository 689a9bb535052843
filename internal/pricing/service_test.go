package pricing

import (
	"context"
	"errors"
	"testing"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
	"simulador-preco/internal/profile"
)

func intPtr(v int) *int { return &v }

func setupService(t *testing.T) (*Service, *catalog.InMemoryRepository, *profile.InMemoryRepository) {
	t.Helper()
	items := catalog.NewInMemoryRepository()
	profiles := profile.NewInMemoryRepository()
	return NewService(items, profiles), items, profiles
}

func seedProduct(t *testing.T, items *catalog.InMemoryRepository, name string, cost float64) int {
	t.Helper()
	item := &catalog.Item{
		Name:        name,
		Kind:        catalog.KindProductSimple,
		Unit:        "un",
		CostPerUnit: cost,
		CostSource:  catalog.CostSourceManual,
		IsActive:    true,
	}
	if err := items.Create(context.Background(), item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item.ID
}

func seedProfile(t *testing.T, profiles *profile.InMemoryRepository, name string, isDefault bool) int {
	t.Helper()
	p := &profile.Profile{
		Name:               name,
		AdminExpense:       0.05,
		LogisticsExpense:   0.03,
		OperationalExpense: 0.02,
		Fees:               0.02,
		Tax:                0.06,
		Profit:             0.12,
		IsDefault:          isDefault,
	}
	if err := profiles.Create(context.Background(), p); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p.ID
}

func TestServiceSimulate_WithExplicitProfile(t *testing.T) {
	service, items, profiles := setupService(t)
	itemID := seedProduct(t, items, "Strogonoff", 10.00)
	profileID := seedProfile(t, profiles, "Delivery", false)

	result, err := service.Simulate(context.Background(), itemID, intPtr(profileID), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ItemName != "Strogonoff" {
		t.Fatalf("expected item name annotated, got %q", result.ItemName)
	}
	if result.ProfileName != "Delivery" {
		t.Fatalf("expected profile name annotated, got %q", result.ProfileName)
	}
	nearlyEqual(t, "idealPrice", result.IdealPrice, 10.0/0.70)
}

func TestServiceSimulate_FallsBackToDefaultProfile(t *testing.T) {
	service, items, profiles := setupService(t)
	itemID := seedProduct(t, items, "Strogonoff", 10.00)
	seedProfile(t, profiles, "Counter", false)
	seedProfile(t, profiles, "Standard", true)

	result, err := service.Simulate(context.Background(), itemID, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProfileName != "Standard" {
		t.Fatalf("expected default profile, got %q", result.ProfileName)
	}
}

func TestServiceSimulate_NoDefaultProfile(t *testing.T) {
	service, items, profiles := setupService(t)
	itemID := seedProduct(t, items, "Strogonoff", 10.00)
	seedProfile(t, profiles, "Counter", false) // nothing flagged default

	_, err := service.Simulate(context.Background(), itemID, nil, nil)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not-found for missing default profile, got %v", err)
	}
}

func TestServiceSimulate_UnknownItem(t *testing.T) {
	service, _, profiles := setupService(t)
	seedProfile(t, profiles, "Standard", true)

	_, err := service.Simulate(context.Background(), 999, nil, nil)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not-found for unknown item, got %v", err)
	}
}

func TestServiceSimulate_UnknownProfile(t *testing.T) {
	service, items, _ := setupService(t)
	itemID := seedProduct(t, items, "Strogonoff", 10.00)

	_, err := service.Simulate(context.Background(), itemID, intPtr(42), nil)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not-found for unknown profile, got %v", err)
	}
}

func TestServiceSimulate_CurrentPricePassedThrough(t *testing.T) {
	service, items, profiles := setupService(t)
	itemID := seedProduct(t, items, "Strogonoff", 10.00)
	seedProfile(t, profiles, "Standard", true)

	result, err := service.Simulate(context.Background(), itemID, nil, floatPtr(16.00))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Comparison == nil {
		t.Fatalf("expected comparison block")
	}
	nearlyEqual(t, "currentMarkup", result.Comparison.CurrentMarkup, 0.375)
}
