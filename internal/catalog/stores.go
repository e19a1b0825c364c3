package catalog

import "strings"

// Store is a supermarket available in a user's location.
type Store struct {
	Name        string `json:"name"`
	BudgetLevel string `json:"budget_level"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty"`
}

// LocationStores maps a country/city pair to its known supermarkets.
type LocationStores struct {
	Country string
	City    string
	Stores  []Store
}

var locationStores = []LocationStores{
	{
		Country: "Greece",
		City:    "Thessaloniki",
		Stores: []Store{
			{Name: "AB Vassilopoulos", BudgetLevel: "Medium / normal budget", Address: "Multiple locations in Thessaloniki", Website: "https://www.ab.gr"},
			{Name: "Lidl", BudgetLevel: "Tight budget", Address: "Multiple locations in Thessaloniki", Website: "https://www.lidl.gr"},
			{Name: "Sklavenitis", BudgetLevel: "Medium / normal budget", Address: "Multiple locations in Thessaloniki", Website: "https://www.sklavenitis.gr"},
			{Name: "Metro", BudgetLevel: "No budget limit", Address: "Multiple locations in Thessaloniki", Website: "https://www.metro.gr"},
			{Name: "Local Farmers Market", BudgetLevel: "Tight budget", Address: "Various locations"},
		},
	},
}

// defaultStores is the fallback set for locations without a curated list.
var defaultStores = []Store{
	{Name: "Local Supermarket", BudgetLevel: "Medium / normal budget", Address: "Various locations"},
	{Name: "Budget Grocery Store", BudgetLevel: "Tight budget", Address: "Various locations"},
	{Name: "Premium Grocery", BudgetLevel: "No budget limit", Address: "Various locations"},
	{Name: "Farmers Market", BudgetLevel: "Tight budget", Address: "City center"},
}

// StoresForLocation returns the supermarkets for the given country and city,
// falling back to a generic store set for unknown locations.
func StoresForLocation(country, city string) []Store {
	for _, loc := range locationStores {
		if strings.EqualFold(loc.Country, country) && strings.EqualFold(loc.City, city) {
			out := make([]Store, len(loc.Stores))
			copy(out, loc.Stores)
			return out
		}
	}
	out := make([]Store, len(defaultStores))
	copy(out, defaultStores)
	return out
}
