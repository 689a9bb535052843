package pricing

import (
	"fmt"

	"simulador-preco/internal/core"
	"simulador-preco/internal/profile"
)

// Simulate computes the ideal sale price for a cost under a profile using
// the markup-divisor method:
//
//	divisor    = 1 - sum(p_i)
//	idealPrice = cost / divisor
//
// The percentages are shares of the final price, not markups on cost, so
// each component's monetary value is idealPrice * p_i and the cost itself
// is the implicit component completing 100%.
//
// currentPrice is optional; a nil or zero value means "no current price"
// and the comparison block is omitted from the result.
//
// The profile is expected to be validated already. A non-positive divisor
// slipping through anyway is rejected as an internal defect before any
// division happens.
func Simulate(cost float64, p *profile.Profile, currentPrice *float64) (*Result, error) {
	if cost < 0 {
		return nil, fmt.Errorf("negative cost %v reached the markup engine: %w", cost, core.ErrInvariant)
	}

	sum := p.ComponentSum()
	divisor := 1 - sum
	if divisor <= 0 {
		return nil, fmt.Errorf("markup divisor is non-positive (component sum %.4f): %w", sum, core.ErrInvariant)
	}

	idealPrice := cost / divisor

	result := &Result{
		ProfileName: p.Name,
		Cost:        cost,
		IdealPrice:  idealPrice,
	}

	for _, c := range p.Components() {
		result.Components = append(result.Components, Component{
			Key:     c.Key,
			Label:   c.Label,
			Percent: c.Value * 100,
			Value:   idealPrice * c.Value,
		})
	}

	// The cost share is divisor by construction (cost/idealPrice when the
	// price is non-zero), which also covers the cost == 0 case.
	result.Components = append(result.Components, Component{
		Key:     "cost",
		Label:   "Product cost",
		Percent: divisor * 100,
		Value:   cost,
	})

	for _, c := range result.Components {
		result.TotalPercent += c.Percent
	}

	if currentPrice != nil {
		if *currentPrice < 0 {
			return nil, fmt.Errorf("current price must be non-negative: %w", core.ErrValidation)
		}
		// A zero current price is treated as "no current price".
		if *currentPrice > 0 {
			current := *currentPrice
			result.Comparison = &Comparison{
				CurrentPrice: current,
				PriceDiff:    current - idealPrice,
				// (idealPrice - cost) / idealPrice reduces to sum(p_i),
				// which also holds when cost (and price) are zero.
				IdealMarkup:   sum,
				CurrentMarkup: (current - cost) / current,
			}
			result.Comparison.MarginDiffPP = result.Comparison.IdealMarkup - result.Comparison.CurrentMarkup
		}
	}

	return result, nil
}
