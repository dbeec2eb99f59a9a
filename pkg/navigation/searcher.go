package navigation

import (
	"fmt"
	"io"
)

// Mode selects a search strategy.
type Mode string

const (
	ModeSubstring Mode = "substring"
	ModeFuzzy     Mode = "fuzzy"
	ModeFullText  Mode = "fulltext"
)

// Modes lists the supported search modes.
var Modes = []Mode{ModeSubstring, ModeFuzzy, ModeFullText}

// ValidMode reports whether m is a supported mode.
func ValidMode(m Mode) bool {
	for _, v := range Modes {
		if v == m {
			return true
		}
	}
	return false
}

// limitedSearcher runs the substring index with the configured limit.
type limitedSearcher struct {
	index *Index
	limit int
}

func (s limitedSearcher) Search(query string) []Item {
	return s.index.SearchN(query, s.limit)
}

// NewSearcher builds the searcher for mode. Searchers holding resources
// implement io.Closer; release them with CloseSearcher.
func NewSearcher(idx *Index, mode Mode, opts ...SearcherOption) (Searcher, error) {
	switch mode {
	case ModeSubstring, "":
		cfg := applyOptions(opts)
		return limitedSearcher{index: idx, limit: cfg.limit}, nil
	case ModeFuzzy:
		return NewFuzzySearcher(idx, opts...), nil
	case ModeFullText:
		return NewFullTextSearcher(idx, opts...)
	default:
		return nil, fmt.Errorf("unknown search mode %q", mode)
	}
}

// CloseSearcher releases s if it holds resources.
func CloseSearcher(s Searcher) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
