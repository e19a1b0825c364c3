package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed meals.json
var mealsJSON []byte

// Catalog is a read-only set of meals available for selection.
type Catalog struct {
	meals  []Meal
	byID   map[string]Meal
	byName map[string]Meal
}

// Load parses the embedded meal catalog.
func Load() (*Catalog, error) {
	var meals []Meal
	if err := json.Unmarshal(mealsJSON, &meals); err != nil {
		return nil, fmt.Errorf("failed to parse embedded meal catalog: %w", err)
	}
	return New(meals), nil
}

// New builds a catalog over the given meals. Lookups index the first meal per
// ID and per name; later duplicates are unreachable by lookup.
func New(meals []Meal) *Catalog {
	c := &Catalog{
		meals:  meals,
		byID:   make(map[string]Meal, len(meals)),
		byName: make(map[string]Meal, len(meals)),
	}
	for _, m := range meals {
		if _, ok := c.byID[m.ID]; !ok {
			c.byID[m.ID] = m
		}
		key := strings.ToLower(m.Name)
		if _, ok := c.byName[key]; !ok {
			c.byName[key] = m
		}
	}
	return c
}

// Meals returns a copy of the full meal list.
func (c *Catalog) Meals() []Meal {
	out := make([]Meal, len(c.meals))
	copy(out, c.meals)
	return out
}

// Len returns the number of meals in the catalog.
func (c *Catalog) Len() int {
	return len(c.meals)
}

// FindByID looks a meal up by its catalog ID.
func (c *Catalog) FindByID(id string) (Meal, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// FindByName looks a meal up by exact name, case-insensitive.
func (c *Catalog) FindByName(name string) (Meal, bool) {
	m, ok := c.byName[strings.ToLower(name)]
	return m, ok
}
