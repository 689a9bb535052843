package catalog

import "time"

// Item kinds
const (
	KindIngredient        = "INGREDIENT"
	KindProductWithRecipe = "PRODUCT_WITH_RECIPE"
	KindProductSimple     = "PRODUCT_SIMPLE"
)

// Cost sources. A RECIPE-sourced cost is derived by the recipe save path
// and must never be hand-entered.
const (
	CostSourceManual = "MANUAL"
	CostSourceRecipe = "RECIPE"
)

type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Kind        string    `json:"kind"`
	Unit        string    `json:"unit"`
	CostPerUnit float64   `json:"cost_per_unit"`
	CostSource  string    `json:"cost_source"`
	YieldQty    *float64  `json:"yield_qty,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidKind(kind string) bool {
	switch kind {
	case KindIngredient, KindProductWithRecipe, KindProductSimple:
		return true
	}
	return false
}
