package entity

import "strings"

// AnyCuisine disables cuisine filtering when present in a selection.
const AnyCuisine = "Any"

// Cuisines is the fixed vocabulary offered to users, AnyCuisine first.
var Cuisines = []string{
	AnyCuisine,
	"American", "Asian Fusion", "Bagels", "Bakery", "Bar", "Barbecue",
	"Breakfast", "Brunch", "Burgers", "Cafe", "Chinese", "Coffee", "Deli",
	"Dessert", "Diner", "Greek", "Halal", "Indian", "Italian", "Japanese",
	"Korean", "Mexican", "Middle Eastern", "Pizza", "Salad", "Sandwiches",
	"Seafood", "Sushi", "Thai", "Vegan", "Vietnamese",
}

var cuisineIndex = func() map[string]string {
	m := make(map[string]string, len(Cuisines))
	for _, c := range Cuisines {
		m[strings.ToLower(c)] = c
	}

	return m
}()

// IsCuisine reports whether name is in the vocabulary, ignoring case.
func IsCuisine(name string) bool {
	_, ok := cuisineIndex[strings.ToLower(strings.TrimSpace(name))]

	return ok
}

// CanonicalCuisine returns the vocabulary spelling of name, or name trimmed
// when it is not in the vocabulary.
func CanonicalCuisine(name string) string {
	name = strings.TrimSpace(name)
	if c, ok := cuisineIndex[strings.ToLower(name)]; ok {
		return c
	}

	return name
}

// IsAnyCuisine reports whether name is the "Any" sentinel, ignoring case.
func IsAnyCuisine(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), AnyCuisine)
}

// SearchTerms turns a cuisine selection into nearby-search keywords.
// An empty selection or one containing AnyCuisine yields a single empty
// keyword, meaning one unfiltered search. Otherwise each distinct cuisine
// (case-insensitive, blank entries dropped) appears once in input order.
func SearchTerms(selection []string) []string {
	terms := make([]string, 0, len(selection))
	seen := make(map[string]struct{}, len(selection))

	for _, c := range selection {
		if IsAnyCuisine(c) {
			return []string{""}
		}

		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}

		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		terms = append(terms, CanonicalCuisine(c))
	}

	if len(terms) == 0 {
		return []string{""}
	}

	return terms
}
