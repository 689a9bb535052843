package profile

import (
	"fmt"
	"time"

	"simulador-preco/internal/core"
)

// Profile is a named set of price-share percentages, each expressed as a
// fraction of the final price (0.10 = 10%).
type Profile struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	AdminExpense       float64 `json:"admin_expense"`
	LogisticsExpense   float64 `json:"logistics_expense"`
	OperationalExpense float64 `json:"operational_expense"`
	CommercialExpense  float64 `json:"commercial_expense"`
	Fees               float64 `json:"fees"`
	Tax                float64 `json:"tax"`
	Profit             float64 `json:"profit"`
	IsDefault          bool    `json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Components returns the seven percentage components in display order.
func (p *Profile) Components() []struct {
	Key   string
	Label string
	Value float64
} {
	return []struct {
		Key   string
		Label string
		Value float64
	}{
		{"admin_expense", "Administrative expenses", p.AdminExpense},
		{"logistics_expense", "Logistics expenses", p.LogisticsExpense},
		{"operational_expense", "Operational expenses", p.OperationalExpense},
		{"commercial_expense", "Commercial expenses", p.CommercialExpense},
		{"fees", "Transaction fees", p.Fees},
		{"tax", "Taxes", p.Tax},
		{"profit", "Profit", p.Profit},
	}
}

// ComponentSum is the summed p_i used as the markup divisor complement.
func (p *Profile) ComponentSum() float64 {
	sum := 0.0
	for _, c := range p.Components() {
		sum += c.Value
	}
	return sum
}

// Validate rejects negative components and a component sum at or above
// 100%, which would make the markup divisor non-positive.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required: %w", core.ErrValidation)
	}
	for _, c := range p.Components() {
		if c.Value < 0 {
			return fmt.Errorf("%s must be non-negative: %w", c.Key, core.ErrValidation)
		}
	}
	if p.ComponentSum() >= 1 {
		return fmt.Errorf("percentage components sum to %.2f%%, must stay below 100%%: %w",
			p.ComponentSum()*100, core.ErrValidation)
	}
	return nil
}
