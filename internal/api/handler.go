package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealer/internal/catalog"
	"mealer/internal/favorites"
	"mealer/internal/insights"
	"mealer/internal/plan"
	"mealer/internal/planner"
	"mealer/internal/profile"
	"mealer/internal/shopping"
)

// MealPlanner defines the planning operations the handler depends on.
type MealPlanner interface {
	GeneratePlan(ctx context.Context, userID string, p profile.UserProfile) (*planner.WeeklyPlanResponse, error)
	SwapMeal(ctx context.Context, userID string, p profile.UserProfile, current []plan.Day, day string, mealIndex int) (*planner.WeeklyPlanResponse, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Planner   MealPlanner
	Favorites favorites.Store
}

// NewHandler creates a new Handler.
func NewHandler(p MealPlanner, favs favorites.Store) *Handler {
	return &Handler{Planner: p, Favorites: favs}
}

// GenerateMealPlan handles POST /generate-meal-plan. The body is the user
// profile itself.
func (h *Handler) GenerateMealPlan(c *gin.Context) {
	var userProfile profile.UserProfile
	if err := c.ShouldBindJSON(&userProfile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User profile is required"})
		return
	}

	response, err := h.Planner.GeneratePlan(c.Request.Context(), userIDFrom(c), userProfile)
	if err != nil {
		log.Printf("Error generating meal plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan"})
		return
	}
	c.JSON(http.StatusOK, response)
}

type swapMealRequest struct {
	UserProfile       *profile.UserProfile        `json:"userProfile"`
	Day               string                      `json:"day"`
	MealIndex         *int                        `json:"mealIndex"`
	CurrentWeeklyPlan *planner.WeeklyPlanResponse `json:"currentWeeklyPlan"`
}

// SwapMeal handles POST /swap-meal. The outgoing meal is recorded as swapped
// before the replacement is chosen.
func (h *Handler) SwapMeal(c *gin.Context) {
	var req swapMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserProfile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userProfile is required"})
		return
	}
	if req.Day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day is required"})
		return
	}
	if req.MealIndex == nil || *req.MealIndex < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mealIndex must be a non-negative number"})
		return
	}
	if req.CurrentWeeklyPlan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currentWeeklyPlan is required"})
		return
	}

	userID := userIDFrom(c)
	week := req.CurrentWeeklyPlan.WeeklyMealPlan

	// Record what is being swapped away so generation can deprioritize it.
	for _, d := range week {
		if strings.EqualFold(d.Day, req.Day) && *req.MealIndex < len(d.Meals) {
			if err := h.Favorites.TrackSwap(c.Request.Context(), userID, d.Meals[*req.MealIndex].Title); err != nil {
				log.Printf("Error tracking swapped meal: %v", err)
			}
			break
		}
	}

	response, err := h.Planner.SwapMeal(c.Request.Context(), userID, *req.UserProfile, week, req.Day, *req.MealIndex)
	if err != nil {
		if errors.Is(err, planner.ErrDayNotFound) || errors.Is(err, planner.ErrInvalidMealIndex) || errors.Is(err, planner.ErrNoReplacement) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error swapping meal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to swap meal"})
		return
	}
	c.JSON(http.StatusOK, response)
}

type favoritesRequest struct {
	Action    string `json:"action"`
	MealTitle string `json:"mealTitle"`
	MealType  string `json:"mealType"`
}

// HandleFavorites handles POST /favorites with add, remove and get actions.
func (h *Handler) HandleFavorites(c *gin.Context) {
	var req favoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Action == "" || req.MealTitle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action and mealTitle are required"})
		return
	}

	userID := userIDFrom(c)
	switch req.Action {
	case "add":
		mealType := req.MealType
		if mealType == "" {
			mealType = "dinner"
		}
		if err := h.Favorites.AddFavorite(c.Request.Context(), userID, req.MealTitle, catalog.MealType(mealType)); err != nil {
			log.Printf("Error adding favorite: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal added to favorites"})
	case "remove":
		if err := h.Favorites.RemoveFavorite(c.Request.Context(), userID, req.MealTitle); err != nil {
			log.Printf("Error removing favorite: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal removed from favorites"})
	case "get":
		favs, err := h.Favorites.Favorites(c.Request.Context(), userID)
		if err != nil {
			log.Printf("Error listing favorites: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to handle favorites"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": favs})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": `Invalid action. Use "add", "remove", or "get"`})
	}
}

// GetHistory handles GET /history.
func (h *Handler) GetHistory(c *gin.Context) {
	history, err := h.Favorites.History(c.Request.Context(), userIDFrom(c))
	if err != nil {
		log.Printf("Error getting history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

type weeklyPlanRequest struct {
	WeeklyMealPlan []plan.Day `json:"weekly_meal_plan"`
}

// PrepMode handles POST /prep-mode.
func (h *Handler) PrepMode(c *gin.Context) {
	var req weeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WeeklyMealPlan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekly_meal_plan is required"})
		return
	}
	c.JSON(http.StatusOK, insights.GeneratePrepMode(req.WeeklyMealPlan))
}

// ZeroWaste handles POST /zero-waste.
func (h *Handler) ZeroWaste(c *gin.Context) {
	var req weeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WeeklyMealPlan == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekly_meal_plan is required"})
		return
	}
	c.JSON(http.StatusOK, insights.AnalyzeZeroWaste(req.WeeklyMealPlan))
}

type costSummaryRequest struct {
	WeeklyIngredientsList []shopping.WeeklyIngredient `json:"weekly_ingredients_list"`
	UserProfile           *profile.UserProfile        `json:"userProfile"`
}

// WeeklyCostSummary handles POST /weekly-cost-summary.
func (h *Handler) WeeklyCostSummary(c *gin.Context) {
	var req costSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.WeeklyIngredientsList == nil || req.UserProfile == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekly_ingredients_list and userProfile are required"})
		return
	}
	c.JSON(http.StatusOK, shopping.CalculateWeeklyCost(req.WeeklyIngredientsList, *req.UserProfile))
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
