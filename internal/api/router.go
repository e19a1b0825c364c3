package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS, auth resolution and all routes.
func NewRouter(h *Handler, authSecret string, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = corsOrigins
	}
	r.Use(cors.New(corsConfig))
	r.Use(AuthMiddleware(authSecret))

	r.GET("/health", h.Health)
	r.POST("/generate-meal-plan", h.GenerateMealPlan)
	r.POST("/swap-meal", h.SwapMeal)
	r.POST("/favorites", h.HandleFavorites)
	r.GET("/history", h.GetHistory)
	r.POST("/prep-mode", h.PrepMode)
	r.POST("/zero-waste", h.ZeroWaste)
	r.POST("/weekly-cost-summary", h.WeeklyCostSummary)

	return r
}
