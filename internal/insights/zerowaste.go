package insights

import (
	"fmt"
	"math"
	"strings"

	"mealer/internal/plan"
)

// An ingredient counts as reused when it appears in at least this many meals.
const reuseThreshold = 2

// wasteReductionCeiling caps the reported reduction percentage.
const wasteReductionCeiling = 30

// ZeroWasteInsight reports how much ingredient reuse the week achieves.
type ZeroWasteInsight struct {
	ReusedIngredients        []string            `json:"reused_ingredients"`
	MealsUsingIngredient     map[string][]string `json:"meals_using_ingredient"`
	WasteReductionPercentage int                 `json:"waste_reduction_percentage"`
	Message                  string              `json:"message"`
}

// AnalyzeZeroWaste scores a week by the share of detected ingredients that
// appear in two or more meals, scaled to the reduction ceiling.
func AnalyzeZeroWaste(week []plan.Day) ZeroWasteInsight {
	usage, order := ingredientUsage(week)

	reused := []string{}
	mealsUsing := make(map[string][]string)
	for _, ing := range order {
		if titles := usage[ing]; len(titles) >= reuseThreshold {
			reused = append(reused, ing)
			mealsUsing[ing] = titles
		}
	}

	reduction := 0
	if total := len(order); total > 0 {
		reduction = int(math.Round(float64(len(reused)) / float64(total) * wasteReductionCeiling))
	}

	message := "Consider meal prep to reduce food waste by reusing ingredients."
	if len(reused) > 0 {
		top := reused
		if len(top) > 3 {
			top = top[:3]
		}
		message = fmt.Sprintf("This week you reduced food waste by reusing %s across multiple meals.", strings.Join(top, ", "))
	}

	return ZeroWasteInsight{
		ReusedIngredients:        reused,
		MealsUsingIngredient:     mealsUsing,
		WasteReductionPercentage: reduction,
		Message:                  message,
	}
}
