package navigation

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzySearcher ranks items by fuzzy subsequence match over name, href and
// keywords, best match first.
type FuzzySearcher struct {
	items   []Item
	targets []string
	limit   int
}

// SearcherOption configures a searcher built over an Index.
type SearcherOption func(*searcherConfig)

type searcherConfig struct {
	limit  int
	bodies map[string]string
}

// WithLimit overrides the result cap (default SearchLimit).
func WithLimit(n int) SearcherOption {
	return func(c *searcherConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithBodies supplies page text keyed by href for full-text indexing.
func WithBodies(bodies map[string]string) SearcherOption {
	return func(c *searcherConfig) {
		c.bodies = bodies
	}
}

func applyOptions(opts []SearcherOption) searcherConfig {
	cfg := searcherConfig{limit: SearchLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewFuzzySearcher builds a fuzzy searcher over every item of idx.
func NewFuzzySearcher(idx *Index, opts ...SearcherOption) *FuzzySearcher {
	cfg := applyOptions(opts)
	items := idx.All()
	targets := make([]string, len(items))
	for i, it := range items {
		targets[i] = it.Name + " " + it.Href + " " + strings.Join(it.Keywords, " ")
	}
	return &FuzzySearcher{items: items, targets: targets, limit: cfg.limit}
}

// Search implements Searcher.
func (s *FuzzySearcher) Search(query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, s.targets)
	out := make([]Item, 0, min(len(matches), s.limit))
	for _, m := range matches {
		out = append(out, s.items[m.Index].clone())
		if len(out) == s.limit {
			break
		}
	}
	return out
}
