package profile

import "strings"

// UserProfile holds the answers from the onboarding questionnaire. Weight,
// height and the weight goal are free text and display-only; the planner never
// parses them.
type UserProfile struct {
	Weight              string `json:"weight"`
	Height              string `json:"height"`
	IdealWeightGoal     string `json:"ideal_weight_goal"`
	FitnessGoal         string `json:"fitness_goal"`
	WorkoutFrequency    string `json:"workout_frequency"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Allergies           string `json:"allergies"`
	FoodDislikes        string `json:"food_dislikes"`
	BudgetLevel         string `json:"budget_level"`
	Country             string `json:"country"`
	City                string `json:"city"`
	CookingSkill        string `json:"cooking_skill"`
	DailyCookingTime    string `json:"daily_cooking_time"`
}

// Budget levels as presented by the questionnaire.
const (
	BudgetTight  = "Tight budget"
	BudgetMedium = "Medium / normal budget"
	BudgetNone   = "No budget limit"
)

// NoWorkout is the workout_frequency answer that disables pre-workout slots.
const NoWorkout = "I don't work out"

// WorksOut reports whether the profile indicates any workouts per week.
func (p UserProfile) WorksOut() bool {
	return p.WorkoutFrequency != "" && p.WorkoutFrequency != NoWorkout
}

// SkillOrdinal maps a cooking skill label to its ordinal
// (Beginner=0, Intermediate=1, Advanced=2). Unknown labels map to -1.
func SkillOrdinal(skill string) int {
	switch skill {
	case "Beginner":
		return 0
	case "Intermediate":
		return 1
	case "Advanced":
		return 2
	}
	return -1
}

// CookingTimeBucket classifies a daily cooking time answer. The questionnaire
// renders the middle option with an en dash while the catalog uses a hyphen,
// so matching is done on the digits rather than the exact label.
type CookingTimeBucket int

const (
	TimeUnrestricted CookingTimeBucket = iota
	TimeUnder20
	TimeUnder40
)

// TimeBucket returns the bucket for a daily cooking time answer.
func TimeBucket(dailyCookingTime string) CookingTimeBucket {
	switch {
	case dailyCookingTime == "Under 20 minutes":
		return TimeUnder20
	case strings.Contains(dailyCookingTime, "20") && strings.Contains(dailyCookingTime, "40"):
		return TimeUnder40
	}
	return TimeUnrestricted
}

// FieldIsSet reports whether a free-text answer carries a real value, treating
// "none" (any casing) as empty.
func FieldIsSet(value string) bool {
	v := strings.TrimSpace(strings.ToLower(value))
	return v != "" && v != "none"
}
