package catalog

import "strings"

// MealType identifies the slot a meal occupies within a day plan.
type MealType string

const (
	Breakfast  MealType = "breakfast"
	Lunch      MealType = "lunch"
	Snack      MealType = "snack"
	Dinner     MealType = "dinner"
	PreWorkout MealType = "preworkout"
)

// Cooking time buckets used in the catalog.
const (
	CookingTimeUnder20 = "Under 20 minutes"
	CookingTime20to40  = "20-40 minutes"
	CookingTime40Plus  = "40+ minutes"
)

// Ingredient is a single catalog ingredient. Amount is kept as the numeric
// string the source data uses; unit compatibility is not reconciled.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// CookingStep is one numbered instruction.
type CookingStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
}

// Meal is an immutable catalog entry.
type Meal struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	CookingTime  string        `json:"cooking_time"`
	SkillLevel   string        `json:"skill_level"`
	Calories     int           `json:"calories"`
	Protein      int           `json:"protein"`
	Carbs        int           `json:"carbs"`
	Fats         int           `json:"fats"`
	Ingredients  []Ingredient  `json:"ingredients"`
	Instructions []CookingStep `json:"instructions"`
	DietaryTags  []string      `json:"dietary_tags"`
	FitnessGoals []string      `json:"fitness_goals"`
}

// HasDietaryTag reports whether the meal carries the given dietary tag.
func (m Meal) HasDietaryTag(tag string) bool {
	for _, t := range m.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesGoal reports whether the meal is tagged for the given fitness goal.
func (m Meal) MatchesGoal(goal string) bool {
	for _, g := range m.FitnessGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// IngredientText returns all ingredient names joined and lowercased, the form
// used for allergy and dislike substring checks.
func (m Meal) IngredientText() string {
	names := make([]string, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		names[i] = strings.ToLower(ing.Name)
	}
	return strings.Join(names, " ")
}

// NameOrIDContains reports whether the meal ID or lowercased name contains any
// of the given substrings.
func (m Meal) NameOrIDContains(substrings ...string) bool {
	name := strings.ToLower(m.Name)
	for _, s := range substrings {
		if strings.Contains(m.ID, s) || strings.Contains(name, s) {
			return true
		}
	}
	return false
}
