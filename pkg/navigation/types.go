// Package navigation holds the site map of the documentation site and the
// queries the UI runs against it: search, breadcrumbs, related content and
// page lookup, plus a small history-keeping router.
package navigation

import (
	"errors"
	"slices"
)

// ErrNotFound is returned when a path is not part of the navigation tree.
var ErrNotFound = errors.New("page not found")

// Category groups navigation entries for badges and related-content matching.
type Category string

const (
	CategoryMain        Category = "main"
	CategoryDocs        Category = "docs"
	CategoryExamples    Category = "examples"
	CategoryPerformance Category = "performance"
	CategoryLLM         Category = "llm"
	CategoryLearning    Category = "learning"
	CategoryContent     Category = "content"
	CategoryCompany     Category = "company"
)

// Item is one entry of the navigation tree. Href is its unique key.
type Item struct {
	Name        string   `yaml:"name"`
	Href        string   `yaml:"href"`
	Description string   `yaml:"description,omitempty"`
	Category    Category `yaml:"category"`
	Keywords    []string `yaml:"keywords,omitempty"`
	Children    []Item   `yaml:"children,omitempty"`
}

// clone returns a deep copy so callers can never mutate the index.
func (i Item) clone() Item {
	out := i
	out.Keywords = slices.Clone(i.Keywords)
	if i.Children != nil {
		out.Children = make([]Item, len(i.Children))
		for n, c := range i.Children {
			out.Children[n] = c.clone()
		}
	}
	return out
}

// Breadcrumb is one step of the trail leading to the current page.
type Breadcrumb struct {
	Name string
	Href string
}

// Limits applied by the index queries.
const (
	SearchLimit  = 10
	RelatedLimit = 6
)
