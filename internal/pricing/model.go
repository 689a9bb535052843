package pricing

// Component is one row of the ideal-price breakdown. Percent is the share
// of the ideal price in display form (5.0 = 5%); Value is the monetary
// amount that share represents.
type Component struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Value   float64 `json:"value"`
}

// Comparison holds the metrics against a supplied current price. It exists
// only when a current price was given; absence and "current equals ideal"
// must stay distinguishable.
type Comparison struct {
	CurrentPrice  float64 `json:"current_price"`
	PriceDiff     float64 `json:"price_diff"`
	IdealMarkup   float64 `json:"ideal_markup"`
	CurrentMarkup float64 `json:"current_markup"`
	MarginDiffPP  float64 `json:"margin_diff_pp"`
}

// Result is one price simulation. Components include the implicit cost
// share, so their values sum to IdealPrice and their percents to 100.
type Result struct {
	ItemName     string      `json:"item_name"`
	ProfileName  string      `json:"profile_name"`
	Cost         float64     `json:"cost"`
	IdealPrice   float64     `json:"ideal_price"`
	Components   []Component `json:"components"`
	TotalPercent float64     `json:"total_percent"`

	Comparison *Comparison `json:"comparison,omitempty"`
}
