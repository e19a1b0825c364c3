// Package insights derives prep-mode groupings and zero-waste analysis from a
// generated weekly plan. Both work off keyword detection over the rendered
// meal descriptions rather than structured ingredient lists, so they stay
// usable on plans that arrive from clients as plain JSON.
package insights

import (
	"strings"

	"mealer/internal/plan"
)

// commonIngredients is the keyword vocabulary scanned for in descriptions.
// Detection order follows this list.
var commonIngredients = []string{
	"chicken", "rice", "spinach", "tomato", "onion", "garlic", "olive oil",
	"broccoli", "quinoa", "salmon", "eggs", "banana", "oatmeal", "yogurt",
	"cheese", "bread", "pasta", "lettuce", "cucumber", "carrot", "potato",
	"beef", "pork", "turkey", "fish", "shrimp", "tofu", "beans", "lentils",
}

// Prep group categories.
var (
	proteinKeywords   = []string{"chicken", "beef", "turkey", "pork", "salmon", "fish"}
	vegetableKeywords = []string{"spinach", "broccoli", "carrot", "onion", "garlic", "tomato", "cucumber"}
	grainKeywords     = []string{"rice", "quinoa", "pasta", "potato"}
)

// detectIngredients returns the vocabulary keywords present in a description.
func detectIngredients(description string) []string {
	lower := strings.ToLower(description)
	var found []string
	for _, ing := range commonIngredients {
		if strings.Contains(lower, ing) {
			found = append(found, ing)
		}
	}
	return found
}

// ingredientUsage maps each detected keyword to the distinct meal titles
// using it, keeping first-appearance order for both keys and titles.
func ingredientUsage(week []plan.Day) (map[string][]string, []string) {
	usage := make(map[string][]string)
	var order []string
	for _, day := range week {
		for _, meal := range day.Meals {
			for _, ing := range detectIngredients(meal.Description) {
				titles, seen := usage[ing]
				if !seen {
					order = append(order, ing)
				}
				if !containsString(titles, meal.Title) {
					usage[ing] = append(titles, meal.Title)
				}
			}
		}
	}
	return usage, order
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
