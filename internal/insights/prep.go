package insights

import (
	"fmt"

	"mealer/internal/plan"
)

// Shared ingredients must appear in at least this many meals to be worth
// batch-prepping.
const prepShareThreshold = 3

// Minutes credited per prep group in the time-saved estimate.
const minutesPerPrepGroup = 20

// PrepGroup is one batch-cooking suggestion: the ingredients to prepare in
// one session, the meals they cover, and how to do it.
type PrepGroup struct {
	SharedIngredients []string `json:"shared_ingredients"`
	Meals             []string `json:"meals"`
	PrepSteps         []string `json:"prep_steps"`
}

// PrepModeResponse is the full prep-mode analysis for a week.
type PrepModeResponse struct {
	PrepGroups     []PrepGroup `json:"prep_groups"`
	TotalTimeSaved string      `json:"total_time_saved"`
}

// GeneratePrepMode groups the week's heavily shared ingredients into protein,
// vegetable and grain prep sessions. Ingredients below the share threshold
// produce no group, so a varied week can legitimately return zero groups.
func GeneratePrepMode(week []plan.Day) PrepModeResponse {
	usage, order := ingredientUsage(week)

	var shared []string
	for _, ing := range order {
		if len(usage[ing]) >= prepShareThreshold {
			shared = append(shared, ing)
		}
	}

	var groups []PrepGroup
	if len(shared) > 0 {
		if g, ok := buildPrepGroup(shared, usage, proteinKeywords, "Cook %s once → use in %d meals", []string{
			"Store in airtight containers, refrigerate",
			"Reheat as needed throughout the week",
		}); ok {
			groups = append(groups, g)
		}
		if g, ok := buildPrepGroup(shared, usage, vegetableKeywords, "Chop %s once → use in %d meals", []string{
			"Store in containers with paper towels to absorb moisture",
			"Use within 3-4 days for best freshness",
		}); ok {
			groups = append(groups, g)
		}
		if g, ok := buildPrepGroup(shared, usage, grainKeywords, "Cook %s in bulk → use in %d meals", []string{
			"Store in refrigerator, reheat with a splash of water",
			"Keeps well for 4-5 days",
		}); ok {
			groups = append(groups, g)
		}
	}

	return PrepModeResponse{
		PrepGroups:     groups,
		TotalTimeSaved: fmt.Sprintf("%d minutes", len(groups)*minutesPerPrepGroup),
	}
}

// buildPrepGroup collects the shared ingredients belonging to one category
// and the union of meals they appear in.
func buildPrepGroup(shared []string, usage map[string][]string, category []string, firstStepFormat string, extraSteps []string) (PrepGroup, bool) {
	var matched []string
	for _, ing := range shared {
		if containsString(category, ing) {
			matched = append(matched, ing)
		}
	}
	if len(matched) == 0 {
		return PrepGroup{}, false
	}

	var meals []string
	for _, ing := range matched {
		for _, title := range usage[ing] {
			if !containsString(meals, title) {
				meals = append(meals, title)
			}
		}
	}

	steps := make([]string, 0, 1+len(extraSteps))
	steps = append(steps, fmt.Sprintf(firstStepFormat, matched[0], len(meals)))
	steps = append(steps, extraSteps...)

	return PrepGroup{
		SharedIngredients: matched,
		Meals:             meals,
		PrepSteps:         steps,
	}, true
}
