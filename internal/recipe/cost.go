package recipe

import (
	"fmt"

	"simulador-preco/internal/core"
)

// ComputeCost aggregates resolved recipe lines into a total product cost:
//
//	total = wasteFactor * sum(qty_i * unitCost_i)
//
// A waste factor of exactly 1.0 means no waste adjustment. A factor <= 0 is
// rejected rather than clamped, since silently correcting it would mask a
// data-entry mistake. An empty line list yields 0; rejecting an empty save
// is the caller's job.
func ComputeCost(lines []Line, wasteFactor float64) (float64, error) {
	if wasteFactor <= 0 {
		return 0, fmt.Errorf("waste factor must be positive, got %v: %w", wasteFactor, core.ErrValidation)
	}

	sum := 0.0
	for _, line := range lines {
		if line.Qty < 0 {
			return 0, fmt.Errorf("ingredient %d has negative quantity: %w", line.IngredientID, core.ErrValidation)
		}
		sum += line.LineCost()
	}

	return wasteFactor * sum, nil
}
