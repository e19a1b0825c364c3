// Package ingest turns recipe web pages into catalog meals. It expects pages
// following a simple microdata-ish layout: an h1 title, an ingredients list
// with "amount unit name" items, an ordered instructions list, and a
// definition list with the nutrition and difficulty metadata.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"mealer/internal/catalog"
)

// Ingester fetches and parses recipe pages.
type Ingester struct {
	client *http.Client
}

// NewIngester creates an Ingester with a 15 second request timeout.
func NewIngester() *Ingester {
	return &Ingester{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchMeal downloads a recipe page and extracts a catalog meal from it.
func (ig *Ingester) FetchMeal(ctx context.Context, url string) (catalog.Meal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return catalog.Meal{}, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := ig.client.Do(req)
	if err != nil {
		return catalog.Meal{}, fmt.Errorf("failed to fetch recipe page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catalog.Meal{}, fmt.Errorf("failed to fetch recipe page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return catalog.Meal{}, fmt.Errorf("failed to parse recipe page: %w", err)
	}

	return ParseMeal(doc)
}

// ParseMeal extracts a catalog meal from a parsed recipe document.
func ParseMeal(doc *goquery.Document) (catalog.Meal, error) {
	name := strings.TrimSpace(doc.Find("h1").First().Text())
	if name == "" {
		return catalog.Meal{}, fmt.Errorf("recipe page has no title")
	}

	meal := catalog.Meal{
		ID:          slugify(name),
		Name:        name,
		Description: strings.TrimSpace(doc.Find(".description, p.summary").First().Text()),
	}

	doc.Find("ul.ingredients li, [itemprop=recipeIngredient]").Each(func(_ int, s *goquery.Selection) {
		if ing, ok := parseIngredientLine(strings.TrimSpace(s.Text())); ok {
			meal.Ingredients = append(meal.Ingredients, ing)
		}
	})

	doc.Find("ol.instructions li, [itemprop=recipeInstructions] li").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		meal.Instructions = append(meal.Instructions, catalog.CookingStep{
			Step:        i + 1,
			Instruction: text,
		})
	})

	metadata := make(map[string]string)
	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		key := strings.ToLower(strings.TrimSpace(dt.Text()))
		value := strings.TrimSpace(dt.NextFiltered("dd").Text())
		if key != "" && value != "" {
			metadata[key] = value
		}
	})

	meal.CookingTime = metadata["cooking time"]
	meal.SkillLevel = metadata["skill level"]
	meal.Calories = parseMetadataInt(metadata["calories"])
	meal.Protein = parseMetadataInt(metadata["protein"])
	meal.Carbs = parseMetadataInt(metadata["carbs"])
	meal.Fats = parseMetadataInt(metadata["fats"])
	// Dietary tags are matched lowercased in the catalog; goals keep the
	// questionnaire's casing.
	meal.DietaryTags = splitMetadataList(strings.ToLower(metadata["dietary tags"]))
	meal.FitnessGoals = splitMetadataList(metadata["fitness goals"])

	if len(meal.Ingredients) == 0 {
		return catalog.Meal{}, fmt.Errorf("recipe %q has no parseable ingredients", name)
	}
	return meal, nil
}

// parseIngredientLine splits "amount unit name", e.g. "200 g chicken breast".
// Lines without a leading numeric amount are treated as "1 piece <line>".
func parseIngredientLine(line string) (catalog.Ingredient, bool) {
	if line == "" {
		return catalog.Ingredient{}, false
	}
	fields := strings.Fields(line)
	if len(fields) >= 3 && isNumeric(fields[0]) {
		return catalog.Ingredient{
			Amount: fields[0],
			Unit:   fields[1],
			Name:   strings.Join(fields[2:], " "),
		}, true
	}
	return catalog.Ingredient{
		Amount: "1",
		Unit:   "piece",
		Name:   line,
	}, true
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseMetadataInt reads the first integer out of a value like "450 kcal".
var intPattern = regexp.MustCompile(`\d+`)

func parseMetadataInt(value string) int {
	match := intPattern.FindString(value)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

func splitMetadataList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
