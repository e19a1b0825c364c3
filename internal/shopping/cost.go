package shopping

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mealer/internal/catalog"
	"mealer/internal/profile"
)

// CalculateWeeklyCost totals each store's portion costs across the rollup and
// reports the cheapest store, its total, and the spread to the most expensive
// one.
func CalculateWeeklyCost(ingredients []WeeklyIngredient, p profile.UserProfile) WeeklyCostSummary {
	costs, order := costsByStore(ingredients)

	cheapestName := ""
	cheapestCost := 0.0
	premiumCost := 0.0
	first := true
	for _, name := range order {
		cost := costs[name]
		if first || cost < cheapestCost {
			cheapestName = name
			cheapestCost = cost
			first = false
		}
		if cost > premiumCost {
			premiumCost = cost
		}
	}

	if cheapestName == "" {
		cheapestName = "Local Supermarket"
	}

	currency := CurrencyForCountry(p.Country)
	return WeeklyCostSummary{
		CheapestOption:   cheapestName,
		EstimatedTotal:   fmt.Sprintf("%s%.2f", currency, cheapestCost),
		SavingsVsPremium: fmt.Sprintf("%s%.2f", currency, premiumCost-cheapestCost),
	}
}

// RecommendSupermarkets ranks up to five stores, budget matches first and
// cheaper totals before pricier ones within each group.
func RecommendSupermarkets(p profile.UserProfile, ingredients []WeeklyIngredient, stores []catalog.Store) []RecommendedSupermarket {
	costs, order := costsByStore(ingredients)

	byName := make(map[string]catalog.Store, len(stores))
	for _, s := range stores {
		byName[s.Name] = s
	}

	type ranked struct {
		name        string
		cost        float64
		reason      string
		budgetMatch bool
	}

	entries := make([]ranked, 0, len(order))
	for _, name := range order {
		reason := "Good selection available"
		budgetMatch := false
		if store, ok := byName[name]; ok {
			budgetMatch = store.BudgetLevel == p.BudgetLevel
			switch {
			case budgetMatch:
				reason = fmt.Sprintf("Matches your %s preference", p.BudgetLevel)
			case store.BudgetLevel == profile.BudgetTight:
				reason = "Best value for money"
			default:
				reason = "Premium quality options available"
			}
		}
		entries = append(entries, ranked{name: name, cost: costs[name], reason: reason, budgetMatch: budgetMatch})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].budgetMatch != entries[j].budgetMatch {
			return entries[i].budgetMatch
		}
		return entries[i].cost < entries[j].cost
	})

	if len(entries) > 5 {
		entries = entries[:5]
	}

	out := make([]RecommendedSupermarket, len(entries))
	for i, e := range entries {
		out[i] = RecommendedSupermarket{Rank: i + 1, Name: e.name, Reason: e.reason}
	}
	return out
}

// costsByStore sums parsed portion costs per store, keeping first-appearance
// order so ties rank deterministically.
func costsByStore(ingredients []WeeklyIngredient) (map[string]float64, []string) {
	costs := make(map[string]float64)
	var order []string
	for _, ing := range ingredients {
		for _, opt := range ing.SupermarketOptions {
			if _, seen := costs[opt.Supermarket]; !seen {
				order = append(order, opt.Supermarket)
			}
			costs[opt.Supermarket] += parseMoney(opt.PortionCostEstimate)
		}
	}
	return costs, order
}

// parseMoney strips everything but digits and dots from a rendered amount.
func parseMoney(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
