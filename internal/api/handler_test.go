package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealer/internal/catalog"
	"mealer/internal/favorites"
	"mealer/internal/planner"
	"mealer/internal/profile"
)

type firstPickRand struct{}

func (firstPickRand) Intn(int) int { return 0 }

func apiTestCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Meal{
		{
			ID: "greek-yogurt-bowl", Name: "Greek Yogurt Bowl", Calories: 280,
			CookingTime: catalog.CookingTimeUnder20, SkillLevel: "Beginner",
			Protein: 20, Carbs: 30, Fats: 8,
			Ingredients:  []catalog.Ingredient{{Name: "greek yogurt", Amount: "200", Unit: "g"}},
			Instructions: []catalog.CookingStep{{Step: 1, Instruction: "Combine in a bowl."}},
			FitnessGoals: []string{"Maintain"},
		},
		{
			ID: "chicken-rice", Name: "Chicken and Rice", Calories: 650,
			CookingTime: catalog.CookingTime20to40, SkillLevel: "Intermediate",
			Protein: 45, Carbs: 70, Fats: 12,
			Ingredients:  []catalog.Ingredient{{Name: "chicken breast", Amount: "200", Unit: "g"}, {Name: "rice", Amount: "100", Unit: "g"}},
			Instructions: []catalog.CookingStep{{Step: 1, Instruction: "Cook everything."}},
			FitnessGoals: []string{"Maintain"},
		},
		{
			ID: "salmon-quinoa", Name: "Salmon with Quinoa", Calories: 620,
			CookingTime: catalog.CookingTime20to40, SkillLevel: "Intermediate",
			Protein: 40, Carbs: 50, Fats: 22,
			Ingredients:  []catalog.Ingredient{{Name: "salmon fillet", Amount: "180", Unit: "g"}, {Name: "quinoa", Amount: "80", Unit: "g"}},
			Instructions: []catalog.CookingStep{{Step: 1, Instruction: "Bake the salmon."}},
			FitnessGoals: []string{"Maintain"},
		},
		{
			ID: "beef-pasta", Name: "Beef Pasta", Calories: 640,
			CookingTime: catalog.CookingTime20to40, SkillLevel: "Intermediate",
			Protein: 42, Carbs: 65, Fats: 18,
			Ingredients:  []catalog.Ingredient{{Name: "ground beef", Amount: "180", Unit: "g"}, {Name: "pasta", Amount: "100", Unit: "g"}},
			Instructions: []catalog.CookingStep{{Step: 1, Instruction: "Boil the pasta, brown the beef."}},
			FitnessGoals: []string{"Maintain"},
		},
		{
			ID: "apple-snack", Name: "Apple with Almonds", Calories: 180,
			CookingTime: catalog.CookingTimeUnder20, SkillLevel: "Beginner",
			Protein: 5, Carbs: 25, Fats: 9,
			Ingredients:  []catalog.Ingredient{{Name: "apple", Amount: "1", Unit: "piece"}},
			Instructions: []catalog.CookingStep{{Step: 1, Instruction: "Slice the apple."}},
			FitnessGoals: []string{"Maintain"},
		},
	})
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := favorites.NewMemoryStore()
	p := planner.New(apiTestCatalog(), store, firstPickRand{})
	return NewRouter(NewHandler(p, store), "", []string{"*"})
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGenerateMealPlan(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/generate-meal-plan", profile.UserProfile{FitnessGoal: "Maintain", Country: "Greece", City: "Thessaloniki"})
	require.Equal(t, http.StatusOK, w.Code)

	var response planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.WeeklyMealPlan, 7)
	assert.NotEmpty(t, response.WeeklyIngredientsList)
	assert.NotEmpty(t, response.RecommendedSupermarkets)
	assert.Equal(t, "Review your meal plan and start shopping!", response.NextActionToTake)
}

func TestGenerateMealPlanRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/generate-meal-plan", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User profile is required")
}

func TestSwapMealValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"missing profile", map[string]any{"day": "Monday", "mealIndex": 0}, "userProfile is required"},
		{"missing day", map[string]any{"userProfile": profile.UserProfile{}, "mealIndex": 0}, "day is required"},
		{"negative index", map[string]any{"userProfile": profile.UserProfile{}, "day": "Monday", "mealIndex": -1}, "mealIndex must be a non-negative number"},
		{"missing plan", map[string]any{"userProfile": profile.UserProfile{}, "day": "Monday", "mealIndex": 0}, "currentWeeklyPlan is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/swap-meal", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestSwapMealRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/generate-meal-plan", profile.UserProfile{FitnessGoal: "Maintain"})
	require.Equal(t, http.StatusOK, w.Code)
	var current planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	// Find a dinner slot to swap.
	dayName, mealIndex := "", -1
	for _, day := range current.WeeklyMealPlan {
		for i, m := range day.Meals {
			if m.MealType == catalog.Dinner {
				dayName, mealIndex = day.Day, i
			}
		}
	}
	require.NotEqual(t, -1, mealIndex, "generated plan has no dinner to swap")

	outgoing := ""
	for _, day := range current.WeeklyMealPlan {
		if day.Day == dayName {
			outgoing = day.Meals[mealIndex].Title
		}
	}

	w = postJSON(t, router, "/swap-meal", map[string]any{
		"userProfile":       profile.UserProfile{FitnessGoal: "Maintain"},
		"day":               dayName,
		"mealIndex":         mealIndex,
		"currentWeeklyPlan": current,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var swapped planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &swapped))
	assert.Equal(t, "Meal swapped successfully! Review updated plan.", swapped.NextActionToTake)

	// The swap is recorded in history.
	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	hw := httptest.NewRecorder()
	router.ServeHTTP(hw, req)
	require.Equal(t, http.StatusOK, hw.Code)
	assert.Contains(t, hw.Body.String(), outgoing)
}

func TestSwapMealUnknownDayIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/generate-meal-plan", profile.UserProfile{})
	require.Equal(t, http.StatusOK, w.Code)
	var current planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = postJSON(t, router, "/swap-meal", map[string]any{
		"userProfile":       profile.UserProfile{},
		"day":               "Funday",
		"mealIndex":         0,
		"currentWeeklyPlan": current,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "day not found")
}

func TestFavoritesFlow(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/favorites", map[string]string{"action": "add", "mealTitle": "Chicken and Rice", "mealType": "dinner"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Meal added to favorites")

	w = postJSON(t, router, "/favorites", map[string]string{"action": "get", "mealTitle": "Chicken and Rice"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Chicken and Rice")

	w = postJSON(t, router, "/favorites", map[string]string{"action": "remove", "mealTitle": "Chicken and Rice"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Meal removed from favorites")

	w = postJSON(t, router, "/favorites", map[string]string{"action": "promote", "mealTitle": "Chicken and Rice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesRequiresTitle(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/favorites", map[string]string{"action": "add"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "action and mealTitle are required")

	// The title is required for every action, including get.
	w = postJSON(t, router, "/favorites", map[string]string{"action": "get"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "action and mealTitle are required")
}

func TestHistoryEmpty(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"liked":[],"swapped":[],"skipped":[]}`, w.Body.String())
}

func TestPrepModeRequiresPlan(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/prep-mode", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "weekly_meal_plan is required")
}

func TestZeroWasteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/generate-meal-plan", profile.UserProfile{})
	require.Equal(t, http.StatusOK, w.Code)
	var current planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = postJSON(t, router, "/zero-waste", map[string]any{"weekly_meal_plan": current.WeeklyMealPlan})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "waste_reduction_percentage")
}

func TestWeeklyCostSummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/generate-meal-plan", profile.UserProfile{Country: "Greece", City: "Thessaloniki"})
	require.Equal(t, http.StatusOK, w.Code)
	var current planner.WeeklyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &current))

	w = postJSON(t, router, "/weekly-cost-summary", map[string]any{
		"weekly_ingredients_list": current.WeeklyIngredientsList,
		"userProfile":             profile.UserProfile{Country: "Greece"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cheapest_option")

	w = postJSON(t, router, "/weekly-cost-summary", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
