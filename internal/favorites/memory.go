package favorites

import (
	"context"
	"sync"
	"time"

	"mealer/internal/catalog"
)

// userState holds one user's favorites and history. Favorite insertion order
// is kept so listings are stable across calls.
type userState struct {
	favorites     map[string]*FavoriteMeal
	favoriteOrder []string
	history       History
}

// MemoryStore is an in-process Store. Suitable for single-instance
// deployments and tests; state is lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*userState
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*userState),
		now:   time.Now,
	}
}

func (s *MemoryStore) user(userID string) *userState {
	st, ok := s.users[userID]
	if !ok {
		st = &userState{favorites: make(map[string]*FavoriteMeal)}
		s.users[userID] = st
	}
	return st
}

// AddFavorite records a like. Liking the same title again increments its
// usage count instead of duplicating it.
func (s *MemoryStore) AddFavorite(_ context.Context, userID, mealTitle string, mealType catalog.MealType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	if existing, ok := st.favorites[mealTitle]; ok {
		existing.TimesUsed++
	} else {
		st.favorites[mealTitle] = &FavoriteMeal{
			MealTitle: mealTitle,
			MealType:  mealType,
			LikedAt:   s.now().UnixMilli(),
			TimesUsed: 1,
		}
		st.favoriteOrder = append(st.favoriteOrder, mealTitle)
	}
	st.history.Liked = appendUnique(st.history.Liked, mealTitle)
	return nil
}

// RemoveFavorite drops a favorite and its liked-history entry.
func (s *MemoryStore) RemoveFavorite(_ context.Context, userID, mealTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	if _, ok := st.favorites[mealTitle]; ok {
		delete(st.favorites, mealTitle)
		st.favoriteOrder = removeString(st.favoriteOrder, mealTitle)
	}
	st.history.Liked = removeString(st.history.Liked, mealTitle)
	return nil
}

func (s *MemoryStore) TrackSwap(_ context.Context, userID, mealTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	st.history.Swapped = appendUnique(st.history.Swapped, mealTitle)
	return nil
}

func (s *MemoryStore) TrackSkip(_ context.Context, userID, mealTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	st.history.Skipped = appendUnique(st.history.Skipped, mealTitle)
	return nil
}

func (s *MemoryStore) Favorites(_ context.Context, userID string) ([]FavoriteMeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	out := make([]FavoriteMeal, 0, len(st.favoriteOrder))
	for _, title := range st.favoriteOrder {
		out = append(out, *st.favorites[title])
	}
	return out, nil
}

func (s *MemoryStore) History(_ context.Context, userID string) (History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	return History{
		Liked:   copyStrings(st.history.Liked),
		Swapped: copyStrings(st.history.Swapped),
		Skipped: copyStrings(st.history.Skipped),
	}, nil
}

func (s *MemoryStore) PrioritizedTitles(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	out := []string{}
	for _, title := range st.favoriteOrder {
		if st.favorites[title].TimesUsed >= 2 {
			out = append(out, title)
		}
	}
	return out, nil
}

func (s *MemoryStore) SkippedTitles(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.user(userID)
	return copyStrings(st.history.Skipped), nil
}

func appendUnique(list []string, s string) []string {
	for _, item := range list {
		if item == s {
			return list
		}
	}
	return append(list, s)
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, item := range list {
		if item != s {
			out = append(out, item)
		}
	}
	return out
}

func copyStrings(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
