package domain

import (
	"math"
	"strconv"
	"strings"
)

// Category tabs shown on the front page. The listing type tags
// house/apartment/land map onto themselves; everything else (cars, building
// materials, miscellaneous) is grouped under the synthetic properties tab.
const (
	TypeHouse     = "house"
	TypeApartment = "apartment"
	TypeLand      = "land"

	CategoryProperties = "properties"
)

// propertiesTypes is the closed membership table for the synthetic
// properties category.
var propertiesTypes = map[string]bool{
	"car":        true,
	"materials":  true,
	"other":      true,
	"property":   true,
	"properties": true,
}

// bedroomsOpenEnded is the filter value meaning "this many bedrooms or more".
const bedroomsOpenEnded = "4"

// FilterCriteria is the user-facing filter set. Zero values mean "unset":
// empty text matches everything, MinPrice defaults to zero, MaxPrice of zero
// or less means unbounded, empty bedrooms and category are ignored.
type FilterCriteria struct {
	Text     string
	MinPrice float64
	MaxPrice float64
	Bedrooms string
	Category string
}

func (c FilterCriteria) maxPrice() float64 {
	if c.MaxPrice <= 0 {
		return math.Inf(1)
	}
	return c.MaxPrice
}

// Matches evaluates all four predicates against one listing. Predicates are
// independent and side-effect free; evaluation order does not matter.
func (c FilterCriteria) Matches(l Listing) bool {
	return c.matchesText(l) && c.matchesPrice(l) && c.matchesBedrooms(l) && c.matchesCategory(l)
}

func (c FilterCriteria) matchesText(l Listing) bool {
	query := strings.ToLower(c.Text)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Title), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		(l.Location != "" && strings.Contains(strings.ToLower(l.Location), query))
}

func (c FilterCriteria) matchesPrice(l Listing) bool {
	return l.Price >= c.MinPrice && l.Price <= c.maxPrice()
}

// matchesBedrooms only constrains houses and apartments; for every other
// type the bedroom count is meaningless and the listing passes. The value
// "4" means four or more, anything else requires equality.
func (c FilterCriteria) matchesBedrooms(l Listing) bool {
	if c.Bedrooms == "" {
		return true
	}
	t := l.NormalizedType()
	if t != TypeHouse && t != TypeApartment {
		return true
	}
	if l.Bedrooms == nil {
		return false
	}
	if c.Bedrooms == bedroomsOpenEnded {
		return l.Bedrooms.Int() >= 4
	}
	want, err := strconv.Atoi(strings.TrimSpace(c.Bedrooms))
	if err != nil {
		return false
	}
	return l.Bedrooms.Int() == want
}

func (c FilterCriteria) matchesCategory(l Listing) bool {
	category := strings.ToLower(strings.TrimSpace(c.Category))
	if category == "" {
		return true
	}
	t := l.NormalizedType()
	if category == CategoryProperties {
		return propertiesTypes[t]
	}
	return t == category
}

// FilterListings applies the criteria to a collection and returns the
// matching listings in their original order.
func FilterListings(listings []Listing, criteria FilterCriteria) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if criteria.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// CategoryCounts are the per-tab totals, always computed over the full
// collection rather than the filtered subset.
type CategoryCounts struct {
	All        int `json:"all"`
	House      int `json:"house"`
	Apartment  int `json:"apartment"`
	Land       int `json:"land"`
	Properties int `json:"properties"`
}

func CountByCategory(listings []Listing) CategoryCounts {
	counts := CategoryCounts{All: len(listings)}
	for _, l := range listings {
		switch t := l.NormalizedType(); {
		case t == TypeHouse:
			counts.House++
		case t == TypeApartment:
			counts.Apartment++
		case t == TypeLand:
			counts.Land++
		case propertiesTypes[t]:
			counts.Properties++
		}
	}
	return counts
}
