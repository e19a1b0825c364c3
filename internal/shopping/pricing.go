package shopping

import (
	"fmt"
	"strings"

	"mealer/internal/profile"
)

// basePriceEntry pairs an ingredient keyword with its per-package base price.
// Matching walks the table in order and takes the first keyword contained in
// the ingredient name, so the order is part of the behavior.
type basePriceEntry struct {
	keyword string
	price   float64
}

var basePrices = []basePriceEntry{
	{"chicken", 8},
	{"salmon", 12},
	{"rice", 3},
	{"quinoa", 5},
	{"broccoli", 2},
	{"spinach", 2.5},
	{"eggs", 4},
	{"oatmeal", 2},
	{"banana", 1.5},
	{"tomato", 2},
	{"onion", 1},
	{"garlic", 1.5},
	{"olive oil", 6},
}

const defaultBasePrice = 3.0

// packageSize is a synthesized retail package for an ingredient.
type packageSize struct {
	amount      float64
	description string
}

// packageSizeFor buckets a weekly need into a plausible retail package.
func packageSizeFor(unit string, totalAmount float64) packageSize {
	switch unit {
	case "g", "kg":
		switch {
		case totalAmount < 500:
			return packageSize{amount: 500, description: "500g package"}
		case totalAmount < 1000:
			return packageSize{amount: 1000, description: "1kg package"}
		default:
			return packageSize{amount: 2000, description: "2kg package"}
		}
	case "cup":
		return packageSize{amount: 1, description: "1 cup package"}
	case "medium", "piece":
		return packageSize{amount: 1, description: "1 piece"}
	case "tbsp", "tsp":
		return packageSize{amount: 250, description: "250ml bottle"}
	}
	return packageSize{amount: 1, description: fmt.Sprintf("1 %s package", unit)}
}

// packagePriceFor prices a package for the store's budget tier.
func packagePriceFor(ingredient, budgetLevel string) float64 {
	lower := strings.ToLower(ingredient)
	price := defaultBasePrice
	for _, entry := range basePrices {
		if strings.Contains(lower, entry.keyword) {
			price = entry.price
			break
		}
	}

	switch budgetLevel {
	case profile.BudgetTight:
		return price * 0.8
	case profile.BudgetNone:
		return price * 1.3
	}
	return price
}

// CurrencyForCountry maps a free-text country to its display symbol. Euro is
// the default.
func CurrencyForCountry(country string) string {
	lower := strings.ToLower(country)
	switch {
	case strings.Contains(lower, "greece"), strings.Contains(lower, "euro"):
		return "€"
	case strings.Contains(lower, "uk"), strings.Contains(lower, "britain"):
		return "£"
	case strings.Contains(lower, "usa"), strings.Contains(lower, "united states"):
		return "$"
	}
	return "€"
}

var ingredientNoteTable = []struct {
	keyword string
	note    string
}{
	{"chicken", "Look for fresh cuts or frozen options"},
	{"salmon", "Fresh or frozen fillets available"},
	{"eggs", "Sold in packs of 6, 10, or 12"},
	{"spinach", "Available fresh or frozen"},
	{"rice", "Multiple package sizes available"},
}

func ingredientNotes(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, entry := range ingredientNoteTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.note
		}
	}
	return "Check availability in produce section"
}
