package shopping

// SupermarketOption is one store's synthesized offer for an ingredient. Prices
// and cost estimates are pre-rendered strings with a currency symbol so the
// payload round-trips unchanged through clients.
type SupermarketOption struct {
	Supermarket         string `json:"supermarket"`
	SoldPackage         string `json:"sold_package"`
	PackagePrice        string `json:"package_price"`
	PortionCostEstimate string `json:"portion_cost_estimate"`
	Notes               string `json:"notes"`
}

// WeeklyIngredient is one line of the weekly shopping rollup.
type WeeklyIngredient struct {
	Ingredient               string              `json:"ingredient"`
	TotalWeeklyPortionNeeded string              `json:"total_weekly_portion_needed"`
	SupermarketOptions       []SupermarketOption `json:"supermarket_options"`
}

// RecommendedSupermarket is a ranked store suggestion.
type RecommendedSupermarket struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// WeeklyCostSummary totals the cheapest path through the rollup.
type WeeklyCostSummary struct {
	CheapestOption   string `json:"cheapest_option"`
	EstimatedTotal   string `json:"estimated_total"`
	SavingsVsPremium string `json:"savings_vs_premium"`
}
