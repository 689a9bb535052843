package catalog

import (
	"context"
	"errors"
	"testing"

	"simulador-preco/internal/core"
)

func setupService() *Service {
	return NewService(NewInMemoryRepository())
}

func TestCreateItem_Ingredient(t *testing.T) {
	service := setupService()

	item, err := service.CreateItem(context.Background(), "Chicken", KindIngredient, "kg", 2.00, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID == 0 {
		t.Fatalf("expected id assigned")
	}
	if item.CostSource != CostSourceManual {
		t.Fatalf("expected MANUAL cost source, got %s", item.CostSource)
	}
	if !item.IsActive {
		t.Fatalf("expected new item active")
	}
}

func TestCreateItem_RecipeProductGetsDerivedCostSource(t *testing.T) {
	service := setupService()

	item, err := service.CreateItem(context.Background(), "Strogonoff", KindProductWithRecipe, "un", 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.CostSource != CostSourceRecipe {
		t.Fatalf("expected RECIPE cost source, got %s", item.CostSource)
	}
}

func TestCreateItem_RejectsHandEnteredCostOnRecipeProduct(t *testing.T) {
	service := setupService()

	_, err := service.CreateItem(context.Background(), "Strogonoff", KindProductWithRecipe, "un", 12.50, nil)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateItem_RejectsUnknownKind(t *testing.T) {
	service := setupService()

	_, err := service.CreateItem(context.Background(), "Chicken", "SOMETHING", "kg", 2.00, nil)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateItem_RejectsNegativeCost(t *testing.T) {
	service := setupService()

	_, err := service.CreateItem(context.Background(), "Chicken", KindIngredient, "kg", -1, nil)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItem_RejectsKindChange(t *testing.T) {
	service := setupService()
	ctx := context.Background()

	item, err := service.CreateItem(ctx, "Chicken", KindIngredient, "kg", 2.00, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.UpdateItem(ctx, item.ID, "Chicken", KindProductSimple, "kg", 2.00, nil, true)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItem_RejectsManualCostEditOnRecipeProduct(t *testing.T) {
	service := setupService()
	ctx := context.Background()

	item, err := service.CreateItem(ctx, "Strogonoff", KindProductWithRecipe, "un", 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.UpdateItem(ctx, item.ID, "Strogonoff", "", "un", 9.90, nil, true)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListItems_KindFilter(t *testing.T) {
	service := setupService()
	ctx := context.Background()

	if _, err := service.CreateItem(ctx, "Chicken", KindIngredient, "kg", 2.00, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.CreateItem(ctx, "Soda 350ml", KindProductSimple, "un", 3.00, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ingredients, err := service.ListItems(ctx, KindIngredient, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ingredients) != 1 || ingredients[0].Name != "Chicken" {
		t.Fatalf("expected only the ingredient, got %d items", len(ingredients))
	}

	if _, err := service.ListItems(ctx, "BOGUS", false); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error for bad kind filter, got %v", err)
	}
}

func TestDeactivateItem(t *testing.T) {
	service := setupService()
	ctx := context.Background()

	item, err := service.CreateItem(ctx, "Chicken", KindIngredient, "kg", 2.00, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeactivateItem(ctx, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active, err := service.ListItems(ctx, "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active items, got %d", len(active))
	}
}
