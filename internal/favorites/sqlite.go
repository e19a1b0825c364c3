package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mealer/internal/catalog"
)

// History actions as stored in the history table.
const (
	actionLiked   = "liked"
	actionSwapped = "swapped"
	actionSkipped = "skipped"
)

// SQLiteStore is a Store backed by SQLite. Rows are keyed by user and title,
// and listing order follows rowid, which matches insertion order.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore creates a store over an already-migrated database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) AddFavorite(ctx context.Context, userID, mealTitle string, mealType catalog.MealType) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, meal_title, meal_type, liked_at, times_used)
		VALUES (?, ?, ?, ?, 1)
		ON CONFLICT (user_id, meal_title) DO UPDATE SET times_used = times_used + 1`,
		userID, mealTitle, string(mealType), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return s.trackAction(ctx, userID, actionLiked, mealTitle)
}

func (s *SQLiteStore) RemoveFavorite(ctx context.Context, userID, mealTitle string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND meal_title = ?`,
		userID, mealTitle); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM meal_history WHERE user_id = ? AND action = ? AND meal_title = ?`,
		userID, actionLiked, mealTitle); err != nil {
		return fmt.Errorf("failed to remove liked history entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) TrackSwap(ctx context.Context, userID, mealTitle string) error {
	return s.trackAction(ctx, userID, actionSwapped, mealTitle)
}

func (s *SQLiteStore) TrackSkip(ctx context.Context, userID, mealTitle string) error {
	return s.trackAction(ctx, userID, actionSkipped, mealTitle)
}

func (s *SQLiteStore) trackAction(ctx context.Context, userID, action, mealTitle string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO meal_history (user_id, action, meal_title)
		VALUES (?, ?, ?)`,
		userID, action, mealTitle)
	if err != nil {
		return fmt.Errorf("failed to record %s history: %w", action, err)
	}
	return nil
}

func (s *SQLiteStore) Favorites(ctx context.Context, userID string) ([]FavoriteMeal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT meal_title, meal_type, liked_at, times_used
		FROM favorites WHERE user_id = ? ORDER BY rowid`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	out := []FavoriteMeal{}
	for rows.Next() {
		var f FavoriteMeal
		var mealType string
		if err := rows.Scan(&f.MealTitle, &mealType, &f.LikedAt, &f.TimesUsed); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		f.MealType = catalog.MealType(mealType)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) History(ctx context.Context, userID string) (History, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT action, meal_title FROM meal_history
		WHERE user_id = ? ORDER BY rowid`,
		userID)
	if err != nil {
		return History{}, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	h := History{Liked: []string{}, Swapped: []string{}, Skipped: []string{}}
	for rows.Next() {
		var action, title string
		if err := rows.Scan(&action, &title); err != nil {
			return History{}, fmt.Errorf("failed to scan history entry: %w", err)
		}
		switch action {
		case actionLiked:
			h.Liked = append(h.Liked, title)
		case actionSwapped:
			h.Swapped = append(h.Swapped, title)
		case actionSkipped:
			h.Skipped = append(h.Skipped, title)
		}
	}
	if err := rows.Err(); err != nil {
		return History{}, fmt.Errorf("failed to iterate history: %w", err)
	}
	return h, nil
}

func (s *SQLiteStore) PrioritizedTitles(ctx context.Context, userID string) ([]string, error) {
	return s.titleQuery(ctx, `
		SELECT meal_title FROM favorites
		WHERE user_id = ? AND times_used >= 2 ORDER BY rowid`,
		userID)
}

func (s *SQLiteStore) SkippedTitles(ctx context.Context, userID string) ([]string, error) {
	return s.titleQuery(ctx, `
		SELECT meal_title FROM meal_history
		WHERE user_id = ? AND action = 'skipped' ORDER BY rowid`,
		userID)
}

func (s *SQLiteStore) titleQuery(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal titles: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan meal title: %w", err)
		}
		out = append(out, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal titles: %w", err)
	}
	return out, nil
}
