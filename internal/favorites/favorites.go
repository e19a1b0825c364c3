// Package favorites tracks which meals a user liked, swapped away or skipped,
// and feeds that history back into plan generation.
package favorites

import (
	"context"

	"mealer/internal/catalog"
)

// FavoriteMeal is a liked meal with its usage count. LikedAt is a Unix
// timestamp in milliseconds.
type FavoriteMeal struct {
	MealTitle string           `json:"mealTitle"`
	MealType  catalog.MealType `json:"mealType"`
	LikedAt   int64            `json:"likedAt"`
	TimesUsed int              `json:"timesUsed"`
}

// History lists meal titles by how the user acted on them. Each list is
// deduplicated and ordered by first occurrence.
type History struct {
	Liked   []string `json:"liked"`
	Swapped []string `json:"swapped"`
	Skipped []string `json:"skipped"`
}

// Store persists per-user meal preferences. Implementations must scope all
// reads and writes to the given user ID.
type Store interface {
	AddFavorite(ctx context.Context, userID, mealTitle string, mealType catalog.MealType) error
	RemoveFavorite(ctx context.Context, userID, mealTitle string) error
	TrackSwap(ctx context.Context, userID, mealTitle string) error
	TrackSkip(ctx context.Context, userID, mealTitle string) error
	Favorites(ctx context.Context, userID string) ([]FavoriteMeal, error)
	History(ctx context.Context, userID string) (History, error)

	// PrioritizedTitles returns titles liked at least twice, for preferential
	// placement during generation.
	PrioritizedTitles(ctx context.Context, userID string) ([]string, error)

	// SkippedTitles returns titles excluded from future plans.
	SkippedTitles(ctx context.Context, userID string) ([]string, error)
}
