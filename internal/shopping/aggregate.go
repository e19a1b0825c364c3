package shopping

import (
	"fmt"
	"strconv"
	"strings"

	"mealer/internal/catalog"
	"mealer/internal/plan"
	"mealer/internal/profile"
)

// aggregated tracks the weekly total for one ingredient across meals.
type aggregated struct {
	totalAmount float64
	unit        string
	meals       []string
}

// BuildIngredientList rolls a week's plan up into a shopping list with up to
// three priced store options per ingredient. Plan meals resolve back to their
// catalog entries by ID first, then by title, and unresolvable meals are
// skipped. Output order follows first appearance in the plan.
func BuildIngredientList(week []plan.Day, cat *catalog.Catalog, stores []catalog.Store, p profile.UserProfile) []WeeklyIngredient {
	totals := make(map[string]*aggregated)
	var order []string

	for _, day := range week {
		for _, planned := range day.Meals {
			meal, ok := cat.FindByID(planned.MealID)
			if !ok {
				meal, ok = cat.FindByName(planned.Title)
			}
			if !ok {
				continue
			}
			for _, ing := range meal.Ingredients {
				key := strings.ToLower(ing.Name)
				amount := parseLeadingFloat(ing.Amount)
				entry, seen := totals[key]
				if !seen {
					entry = &aggregated{unit: ing.Unit}
					totals[key] = entry
					order = append(order, key)
				}
				entry.totalAmount += amount
				if !containsString(entry.meals, meal.Name) {
					entry.meals = append(entry.meals, meal.Name)
				}
			}
		}
	}

	currency := CurrencyForCountry(p.Country)
	storeCount := len(stores)
	if storeCount > 3 {
		storeCount = 3
	}

	out := make([]WeeklyIngredient, 0, len(order))
	for _, key := range order {
		entry := totals[key]
		name := capitalize(key)
		size := packageSizeFor(entry.unit, entry.totalAmount)

		options := make([]SupermarketOption, 0, storeCount)
		for _, store := range stores[:storeCount] {
			price := packagePriceFor(name, store.BudgetLevel)
			portionCost := price / size.amount * entry.totalAmount
			options = append(options, SupermarketOption{
				Supermarket:         store.Name,
				SoldPackage:         size.description,
				PackagePrice:        fmt.Sprintf("%s%.2f", currency, price),
				PortionCostEstimate: fmt.Sprintf("%s%.2f", currency, portionCost),
				Notes:               fmt.Sprintf("Available at %s. %s", store.Name, ingredientNotes(name)),
			})
		}

		out = append(out, WeeklyIngredient{
			Ingredient:               name,
			TotalWeeklyPortionNeeded: fmt.Sprintf("%s %s", formatAmount(entry.totalAmount), entry.unit),
			SupermarketOptions:       options,
		})
	}
	return out
}

// parseLeadingFloat reads the numeric prefix of an amount string, so "2" and
// "2 large" both parse as 2. Non-numeric amounts count as zero.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// formatAmount renders a total without trailing zeros, so 450 stays "450" and
// 2.5 stays "2.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
