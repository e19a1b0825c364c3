package planner

import (
	"strings"

	"mealer/internal/catalog"
	"mealer/internal/profile"
)

// slotRule decides whether a meal is a candidate for a given slot. The same
// table drives both generation and swapping so the two can never drift apart.
type slotRule func(m catalog.Meal, p profile.UserProfile) bool

// slotOrder is the order slots are filled within a day.
var slotOrder = []catalog.MealType{
	catalog.Breakfast,
	catalog.Lunch,
	catalog.Snack,
	catalog.Dinner,
	catalog.PreWorkout,
}

var slotRules = map[catalog.MealType]slotRule{
	catalog.Breakfast:  breakfastRule,
	catalog.Lunch:      lunchRule,
	catalog.Snack:      snackRule,
	catalog.Dinner:     dinnerRule,
	catalog.PreWorkout: preWorkoutRule,
}

func breakfastRule(m catalog.Meal, p profile.UserProfile) bool {
	if m.CookingTime == catalog.CookingTimeUnder20 {
		return true
	}
	return p.DailyCookingTime != "" && m.CookingTime == p.DailyCookingTime
}

func lunchRule(m catalog.Meal, p profile.UserProfile) bool {
	return profile.SkillOrdinal(m.SkillLevel) <= profile.SkillOrdinal("Intermediate") ||
		m.SkillLevel == p.CookingSkill
}

func snackRule(m catalog.Meal, _ profile.UserProfile) bool {
	if m.Calories > 100 && m.Calories < 300 {
		return true
	}
	return m.NameOrIDContains("snack", "yogurt", "bar", "apple")
}

// dinnerRule excludes breakfast-eligible meals by rule, not by what was
// actually picked: a meal can still show up as breakfast one day and dinner
// another if it qualifies for both.
func dinnerRule(m catalog.Meal, p profile.UserProfile) bool {
	return m.Calories > 300 && !breakfastRule(m, p)
}

func preWorkoutRule(m catalog.Meal, _ profile.UserProfile) bool {
	if m.NameOrIDContains("pre-workout", "preworkout", "pre workout") {
		return true
	}
	if strings.Contains(strings.ToLower(m.Name), "banana") && m.Carbs > 30 && m.Calories < 300 {
		return true
	}
	return m.Carbs > 30 && m.Fats < 10 && m.Calories < 300 && m.Protein < 15
}
