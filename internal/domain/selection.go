package domain

import (
	"net/url"
)

const (
	DefaultCategory = Plumber
	DefaultCity     = "Jerusalem"
)

// Selection is the search widget state: one category and free-form city text.
type Selection struct {
	Category Category
	City     string
}

func DefaultSelection() Selection {
	return Selection{Category: DefaultCategory, City: DefaultCity}
}

// ParseSelection reads category and city from a query. An unknown or missing
// category falls back to the default. A missing city falls back to the
// default, an empty one is kept.
func ParseSelection(q url.Values) Selection {
	sel := DefaultSelection()

	if c := Category(q.Get("category")); c.Valid() {
		sel.Category = c
	}

	if _, ok := q["city"]; ok {
		sel.City = q.Get("city")
	}

	return sel
}

// WithCategory returns a copy of s with the category replaced. Invalid
// categories leave s unchanged.
func (s Selection) WithCategory(c Category) Selection {
	if !c.Valid() {
		return s
	}
	s.Category = c
	return s
}

func (s Selection) WithCity(city string) Selection {
	s.City = city
	return s
}

// MatchLink is the navigation target for the search widget.
func (s Selection) MatchLink() string {
	return MatchLink(s.Category, s.City)
}
