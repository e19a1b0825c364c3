package planner

import (
	"strings"

	"mealer/internal/catalog"
	"mealer/internal/profile"
)

// fallbackSize is how many unfiltered catalog entries are returned when every
// filter stage eliminated all candidates.
const fallbackSize = 5

// Filter narrows the catalog to meals compatible with the profile. Stages run
// in a fixed order, each over the survivors of the previous one: fitness goal,
// dietary restriction, allergies, dislikes, skill level (one level above the
// user's is tolerated) and cooking time. If nothing survives, the first
// fallbackSize catalog entries are returned unfiltered so callers always get
// at least one candidate.
func Filter(meals []catalog.Meal, p profile.UserProfile) []catalog.Meal {
	filtered := meals

	if p.FitnessGoal != "" {
		filtered = keep(filtered, func(m catalog.Meal) bool {
			return m.MatchesGoal(p.FitnessGoal)
		})
	}

	if profile.FieldIsSet(p.DietaryRestrictions) {
		restrictions := strings.ToLower(p.DietaryRestrictions)
		if strings.Contains(restrictions, "vegetarian") {
			filtered = keep(filtered, func(m catalog.Meal) bool {
				return m.HasDietaryTag("vegetarian") || m.HasDietaryTag("vegan")
			})
		}
		if strings.Contains(restrictions, "vegan") {
			filtered = keep(filtered, func(m catalog.Meal) bool {
				return m.HasDietaryTag("vegan")
			})
		}
	}

	if profile.FieldIsSet(p.Allergies) {
		filtered = excludeIngredientTerms(filtered, p.Allergies)
	}

	if profile.FieldIsSet(p.FoodDislikes) {
		filtered = excludeIngredientTerms(filtered, p.FoodDislikes)
	}

	if p.CookingSkill != "" {
		userSkill := profile.SkillOrdinal(p.CookingSkill)
		filtered = keep(filtered, func(m catalog.Meal) bool {
			return profile.SkillOrdinal(m.SkillLevel) <= userSkill+1
		})
	}

	if p.DailyCookingTime != "" {
		switch profile.TimeBucket(p.DailyCookingTime) {
		case profile.TimeUnder20:
			filtered = keep(filtered, func(m catalog.Meal) bool {
				return m.CookingTime == catalog.CookingTimeUnder20
			})
		case profile.TimeUnder40:
			filtered = keep(filtered, func(m catalog.Meal) bool {
				return m.CookingTime == catalog.CookingTimeUnder20 || m.CookingTime == catalog.CookingTime20to40
			})
		}
	}

	if len(filtered) == 0 {
		n := fallbackSize
		if n > len(meals) {
			n = len(meals)
		}
		return meals[:n]
	}

	return filtered
}

// excludeIngredientTerms drops meals whose ingredient names contain any of the
// comma-separated terms as a substring.
func excludeIngredientTerms(meals []catalog.Meal, terms string) []catalog.Meal {
	parts := strings.Split(strings.ToLower(terms), ",")
	return keep(meals, func(m catalog.Meal) bool {
		text := m.IngredientText()
		for _, part := range parts {
			term := strings.TrimSpace(part)
			if term != "" && strings.Contains(text, term) {
				return false
			}
		}
		return true
	})
}

func keep(meals []catalog.Meal, pred func(catalog.Meal) bool) []catalog.Meal {
	out := make([]catalog.Meal, 0, len(meals))
	for _, m := range meals {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}
