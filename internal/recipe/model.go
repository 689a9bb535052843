package recipe

import "time"

// Line is one ingredient usage inside a technical sheet. Unit and UnitCost
// are denormalized from the catalog at save time, so later ingredient price
// edits do not silently rewrite history.
type Line struct {
	IngredientID   int     `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	UnitCost       float64 `json:"unit_cost"`
	Qty            float64 `json:"qty"`
}

// LineCost is this line's contribution before the waste factor.
func (l Line) LineCost() float64 {
	return l.Qty * l.UnitCost
}

// Recipe is the technical sheet of exactly one finished product. It is
// replaced wholesale on save, never patched line by line.
type Recipe struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	WasteFactor float64   `json:"waste_factor"`
	TotalCost   float64   `json:"total_cost"`
	Lines       []Line    `json:"lines"`
	UpdatedAt   time.Time `json:"updated_at"`
}
