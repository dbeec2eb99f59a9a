package navigation

import (
	"fmt"
	"log"
	"strings"

	"github.com/blevesearch/bleve/v2"
)

// FullTextSearcher ranks items with an in-memory bleve index over the item
// metadata and, when supplied, the page body text.
type FullTextSearcher struct {
	index  bleve.Index
	byHref map[string]Item
	limit  int
}

// NewFullTextSearcher indexes every item of idx. Close releases the index.
func NewFullTextSearcher(idx *Index, opts ...SearcherOption) (*FullTextSearcher, error) {
	cfg := applyOptions(opts)

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create search index: %w", err)
	}

	s := &FullTextSearcher{
		index:  index,
		byHref: make(map[string]Item, idx.Len()),
		limit:  cfg.limit,
	}

	batch := index.NewBatch()
	for _, it := range idx.All() {
		s.byHref[it.Href] = it
		doc := map[string]interface{}{
			"name":        it.Name,
			"description": it.Description,
			"category":    string(it.Category),
			"keywords":    it.Keywords,
			"body":        cfg.bodies[it.Href],
		}
		if err := batch.Index(it.Href, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("index %s: %w", it.Href, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("commit search index: %w", err)
	}

	return s, nil
}

// Search implements Searcher. Index failures are logged and yield no results.
func (s *FullTextSearcher) Search(query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// Whole-word matches plus prefixes so partially typed words still hit.
	q := bleve.NewDisjunctionQuery(bleve.NewMatchQuery(query))
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		q.AddQuery(bleve.NewPrefixQuery(tok))
	}

	req := bleve.NewSearchRequest(q)
	req.Size = s.limit

	res, err := s.index.Search(req)
	if err != nil {
		log.Printf("Warning: full-text search for %q failed: %v", query, err)
		return nil
	}

	out := make([]Item, 0, len(res.Hits))
	for _, hit := range res.Hits {
		if it, ok := s.byHref[hit.ID]; ok {
			out = append(out, it.clone())
		}
	}
	return out
}

// DocCount returns the number of indexed items.
func (s *FullTextSearcher) DocCount() (uint64, error) {
	return s.index.DocCount()
}

// Close releases the index.
func (s *FullTextSearcher) Close() error {
	return s.index.Close()
}
