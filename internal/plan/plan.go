package plan

import (
	"fmt"
	"strings"

	"mealer/internal/catalog"
)

// Days is the fixed Monday-first week used by every generated plan. Plans are
// not calendar-aware.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Macros is the macronutrient triple carried on every plan meal.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// Meal is one slot assignment within a day. MealID is the stable reference
// back to the catalog entry; Description is the rendered long-form text that
// clients display (base description plus flattened ingredients and steps).
type Meal struct {
	MealID      string           `json:"meal_id,omitempty"`
	Title       string           `json:"title"`
	MealType    catalog.MealType `json:"meal_type"`
	Calories    int              `json:"calories"`
	Macros      Macros           `json:"macros"`
	Description string           `json:"description"`
}

// Day holds the ordered slot assignments for a single day.
type Day struct {
	Day   string `json:"day"`
	Meals []Meal `json:"meals"`
}

// FromCatalogMeal renders a catalog meal into its plan representation for the
// given slot.
func FromCatalogMeal(m catalog.Meal, mealType catalog.MealType) Meal {
	ingredients := make([]string, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		ingredients[i] = fmt.Sprintf("%s %s %s", ing.Amount, ing.Unit, ing.Name)
	}

	steps := make([]string, len(m.Instructions))
	for i, inst := range m.Instructions {
		steps[i] = fmt.Sprintf("Step %d: %s", inst.Step, inst.Instruction)
	}

	description := fmt.Sprintf("%s. Ingredients: %s. Instructions: %s",
		m.Description, strings.Join(ingredients, ", "), strings.Join(steps, " "))

	return Meal{
		MealID:   m.ID,
		Title:    m.Name,
		MealType: mealType,
		Calories: m.Calories,
		Macros: Macros{
			Protein: m.Protein,
			Carbs:   m.Carbs,
			Fats:    m.Fats,
		},
		Description: description,
	}
}
