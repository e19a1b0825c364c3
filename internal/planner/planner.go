package planner

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"mealer/internal/catalog"
	"mealer/internal/favorites"
	"mealer/internal/plan"
	"mealer/internal/profile"
	"mealer/internal/shopping"
)

// Rand is the randomness source used for candidate selection. Production uses
// a time-seeded math/rand source; tests inject a deterministic sequence.
type Rand interface {
	Intn(n int) int
}

// WeeklyPlanResponse is the full plan payload. The field names are a contract
// clients depend on verbatim.
type WeeklyPlanResponse struct {
	WeeklyMealPlan          []plan.Day                        `json:"weekly_meal_plan"`
	WeeklyIngredientsList   []shopping.WeeklyIngredient       `json:"weekly_ingredients_list"`
	RecommendedSupermarkets []shopping.RecommendedSupermarket `json:"recommended_supermarkets"`
	WeeklyCostSummary       shopping.WeeklyCostSummary        `json:"weekly_cost_summary"`
	NextActionToTake        string                            `json:"next_action_to_take"`
}

// Planner builds and mutates weekly meal plans over a fixed catalog.
type Planner struct {
	catalog   *catalog.Catalog
	favorites favorites.Store
	rng       Rand
}

// New creates a Planner. A nil rng falls back to a time-seeded source.
func New(cat *catalog.Catalog, favs favorites.Store, rng Rand) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{
		catalog:   cat,
		favorites: favs,
		rng:       rng,
	}
}

// GeneratePlan builds a 7-day plan for the user, then derives the ingredient
// rollup, cost summary and store recommendations from it.
func (pl *Planner) GeneratePlan(ctx context.Context, userID string, p profile.UserProfile) (*WeeklyPlanResponse, error) {
	filtered := Filter(pl.catalog.Meals(), p)

	skipped, err := pl.favorites.SkippedTitles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skipped meals: %w", err)
	}
	prioritized, err := pl.favorites.PrioritizedTitles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prioritized meals: %w", err)
	}

	candidates := partitionByTitle(excludeTitles(filtered, skipped), prioritized)

	week := make([]plan.Day, 0, len(plan.Days))
	for _, day := range plan.Days {
		week = append(week, plan.Day{Day: day, Meals: pl.buildDay(candidates, p)})
	}

	response := pl.deriveShoppingData(week, p)
	response.NextActionToTake = "Review your meal plan and start shopping!"
	return response, nil
}

// buildDay fills the slots for one day, deduplicating titles within the day.
func (pl *Planner) buildDay(candidates []catalog.Meal, p profile.UserProfile) []plan.Meal {
	meals := make([]plan.Meal, 0, len(slotOrder))
	used := make(map[string]bool)

	for _, slot := range slotOrder {
		if slot == catalog.PreWorkout && !p.WorksOut() {
			continue
		}
		rule := slotRules[slot]
		slotCandidates := keep(candidates, func(m catalog.Meal) bool {
			return rule(m, p)
		})
		selected, ok := pl.selectMeal(slotCandidates, used)
		if !ok {
			continue
		}
		meals = append(meals, plan.FromCatalogMeal(selected, slot))
	}
	return meals
}

// selectMeal picks uniformly among candidates not yet used today. When the
// whole pool was already used, it falls back to a uniform pick over the full
// pool, allowing a same-day repeat as a last resort.
func (pl *Planner) selectMeal(candidates []catalog.Meal, used map[string]bool) (catalog.Meal, bool) {
	if len(candidates) == 0 {
		return catalog.Meal{}, false
	}
	unused := keep(candidates, func(m catalog.Meal) bool {
		return !used[strings.ToLower(m.Name)]
	})
	if len(unused) == 0 {
		return candidates[pl.rng.Intn(len(candidates))], true
	}
	selected := unused[pl.rng.Intn(len(unused))]
	used[strings.ToLower(selected.Name)] = true
	return selected, true
}

// deriveShoppingData recomputes the rollup, cost summary and recommendations
// for the given week from scratch. Derived data is never patched in place.
func (pl *Planner) deriveShoppingData(week []plan.Day, p profile.UserProfile) *WeeklyPlanResponse {
	stores := catalog.StoresForLocation(p.Country, p.City)
	ingredients := shopping.BuildIngredientList(week, pl.catalog, stores, p)
	return &WeeklyPlanResponse{
		WeeklyMealPlan:          week,
		WeeklyIngredientsList:   ingredients,
		RecommendedSupermarkets: shopping.RecommendSupermarkets(p, ingredients, stores),
		WeeklyCostSummary:       shopping.CalculateWeeklyCost(ingredients, p),
	}
}

// excludeTitles removes meals whose name appears in the given title list.
func excludeTitles(meals []catalog.Meal, titles []string) []catalog.Meal {
	if len(titles) == 0 {
		return meals
	}
	blocked := make(map[string]bool, len(titles))
	for _, t := range titles {
		blocked[strings.ToLower(t)] = true
	}
	return keep(meals, func(m catalog.Meal) bool {
		return !blocked[strings.ToLower(m.Name)]
	})
}

// partitionByTitle stably moves meals whose titles are in the priority list
// ahead of the rest, preserving relative order within each group.
func partitionByTitle(meals []catalog.Meal, priority []string) []catalog.Meal {
	if len(priority) == 0 {
		return meals
	}
	prioritized := make(map[string]bool, len(priority))
	for _, t := range priority {
		prioritized[strings.ToLower(t)] = true
	}
	out := make([]catalog.Meal, 0, len(meals))
	for _, m := range meals {
		if prioritized[strings.ToLower(m.Name)] {
			out = append(out, m)
		}
	}
	for _, m := range meals {
		if !prioritized[strings.ToLower(m.Name)] {
			out = append(out, m)
		}
	}
	return out
}
