package recipe

import (
	"context"
	"errors"
	"testing"

	"simulador-preco/internal/catalog"
	"simulador-preco/internal/core"
)

func setupService(t *testing.T) (*Service, *catalog.InMemoryRepository) {
	t.Helper()
	items := catalog.NewInMemoryRepository()
	repo := NewInMemoryRepository(items)
	return NewService(repo, items), items
}

func seedItem(t *testing.T, items *catalog.InMemoryRepository, name, kind string, cost float64) *catalog.Item {
	t.Helper()
	item := &catalog.Item{
		Name:        name,
		Kind:        kind,
		Unit:        "kg",
		CostPerUnit: cost,
		CostSource:  catalog.CostSourceManual,
		IsActive:    true,
	}
	if kind == catalog.KindProductWithRecipe {
		item.CostPerUnit = 0
		item.CostSource = catalog.CostSourceRecipe
		item.Unit = "un"
	}
	if err := items.Create(context.Background(), item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestSaveRecipe_ComputesAndStoresProductCost(t *testing.T) {
	service, items := setupService(t)

	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	cream := seedItem(t, items, "Cream", catalog.KindIngredient, 5.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	rec, err := service.SaveRecipe(context.Background(), product.ID, 1.15, []LineInput{
		{IngredientID: chicken.ID, Qty: 0.5},
		{IngredientID: cream.ID, Qty: 0.2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nearlyEqual(t, "total cost", rec.TotalCost, 2.30)

	// The product's stored cost must reflect the aggregation
	updated, err := items.GetByID(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "product cost", updated.CostPerUnit, 2.30)
	if updated.CostSource != catalog.CostSourceRecipe {
		t.Fatalf("expected RECIPE cost source, got %s", updated.CostSource)
	}
}

func TestSaveRecipe_DenormalizesUnitCostAtSaveTime(t *testing.T) {
	service, items := setupService(t)

	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	rec, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: chicken.ID, Qty: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(rec.Lines))
	}
	nearlyEqual(t, "line unit cost", rec.Lines[0].UnitCost, 2.00)
	if rec.Lines[0].Unit != "kg" {
		t.Fatalf("expected unit denormalized from catalog, got %q", rec.Lines[0].Unit)
	}

	// A later ingredient price change must not rewrite the saved sheet
	if err := items.UpdateCost(context.Background(), chicken.ID, 9.99, catalog.CostSourceManual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, err := service.GetRecipe(context.Background(), product.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "stored line unit cost", stored.Lines[0].UnitCost, 2.00)
}

func TestSaveRecipe_ReplacesWholesale(t *testing.T) {
	service, items := setupService(t)

	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	cream := seedItem(t, items, "Cream", catalog.KindIngredient, 5.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	if _, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: chicken.ID, Qty: 0.5},
		{IngredientID: cream.ID, Qty: 0.2},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: cream.ID, Qty: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Lines) != 1 {
		t.Fatalf("expected the old lines replaced, got %d lines", len(rec.Lines))
	}
	nearlyEqual(t, "total cost", rec.TotalCost, 5.00)

	updated, _ := items.GetByID(context.Background(), product.ID)
	nearlyEqual(t, "product cost", updated.CostPerUnit, 5.00)
}

func TestSaveRecipe_RejectsEmptySheet(t *testing.T) {
	service, items := setupService(t)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	// no lines at all
	if _, err := service.SaveRecipe(context.Background(), product.ID, 1.0, nil); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// only empty editor rows
	_, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: 0, Qty: 1},
		{IngredientID: 3, Qty: 0},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRecipe_RejectsNegativeQty(t *testing.T) {
	service, items := setupService(t)
	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	_, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: chicken.ID, Qty: -1},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRecipe_RejectsNonRecipeProduct(t *testing.T) {
	service, items := setupService(t)
	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	soda := seedItem(t, items, "Soda 350ml", catalog.KindProductSimple, 3.00)

	_, err := service.SaveRecipe(context.Background(), soda.ID, 1.0, []LineInput{
		{IngredientID: chicken.ID, Qty: 1},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRecipe_RejectsNonIngredientLine(t *testing.T) {
	service, items := setupService(t)
	soda := seedItem(t, items, "Soda 350ml", catalog.KindProductSimple, 3.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	_, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: soda.ID, Qty: 1},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRecipe_RejectsInactiveIngredient(t *testing.T) {
	service, items := setupService(t)
	chicken := seedItem(t, items, "Chicken", catalog.KindIngredient, 2.00)
	product := seedItem(t, items, "Strogonoff", catalog.KindProductWithRecipe, 0)

	if err := items.Deactivate(context.Background(), chicken.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.SaveRecipe(context.Background(), product.ID, 1.0, []LineInput{
		{IngredientID: chicken.ID, Qty: 1},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSaveRecipe_UnknownProduct(t *testing.T) {
	service, _ := setupService(t)

	_, err := service.SaveRecipe(context.Background(), 999, 1.0, []LineInput{
		{IngredientID: 1, Qty: 1},
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
