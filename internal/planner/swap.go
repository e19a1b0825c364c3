package planner

import (
	"context"
	"fmt"
	"strings"

	"mealer/internal/catalog"
	"mealer/internal/plan"
	"mealer/internal/profile"
)

// Calorie band a replacement must stay within, relative to the outgoing meal.
const (
	swapCalorieFloor   = 0.85
	swapCalorieCeiling = 1.15
)

// SwapMeal replaces one slot of an existing plan with a different meal of the
// same type and similar calories, then recomputes the derived shopping data.
// The input plan is not mutated; the response carries a fresh copy.
func (pl *Planner) SwapMeal(ctx context.Context, userID string, p profile.UserProfile, current []plan.Day, dayName string, mealIndex int) (*WeeklyPlanResponse, error) {
	dayIdx := -1
	for i, d := range current {
		if strings.EqualFold(d.Day, dayName) {
			dayIdx = i
			break
		}
	}
	if dayIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, dayName)
	}
	if mealIndex < 0 || mealIndex >= len(current[dayIdx].Meals) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMealIndex, mealIndex)
	}
	outgoing := current[dayIdx].Meals[mealIndex]

	usedTitles := make(map[string]bool)
	for _, d := range current {
		for _, m := range d.Meals {
			usedTitles[strings.ToLower(m.Title)] = true
		}
	}

	skipped, err := pl.favorites.SkippedTitles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skipped meals: %w", err)
	}

	rule, ok := slotRules[outgoing.MealType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrNoReplacement, outgoing.MealType)
	}

	floor := float64(outgoing.Calories) * swapCalorieFloor
	ceiling := float64(outgoing.Calories) * swapCalorieCeiling

	candidates := keep(excludeTitles(Filter(pl.catalog.Meals(), p), skipped), func(m catalog.Meal) bool {
		if usedTitles[strings.ToLower(m.Name)] {
			return false
		}
		if !rule(m, p) {
			return false
		}
		cal := float64(m.Calories)
		return cal >= floor && cal <= ceiling
	})
	if len(candidates) == 0 {
		return nil, ErrNoReplacement
	}
	replacement := candidates[pl.rng.Intn(len(candidates))]

	week := copyPlan(current)
	week[dayIdx].Meals[mealIndex] = plan.FromCatalogMeal(replacement, outgoing.MealType)

	response := pl.deriveShoppingData(week, p)
	response.NextActionToTake = "Meal swapped successfully! Review updated plan."
	return response, nil
}

func copyPlan(week []plan.Day) []plan.Day {
	out := make([]plan.Day, len(week))
	for i, d := range week {
		meals := make([]plan.Meal, len(d.Meals))
		copy(meals, d.Meals)
		out[i] = plan.Day{Day: d.Day, Meals: meals}
	}
	return out
}
