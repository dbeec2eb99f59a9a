package navigation

import (
	"fmt"
	"slices"
	"strings"
)

// Searcher answers free-text queries with a ranked list of items.
// Implementations must not mutate navigation state.
type Searcher interface {
	Search(query string) []Item
}

// Index is the in-memory navigation tree with its flattened view.
// It is immutable after New and safe for concurrent reads.
type Index struct {
	tree   []Item
	flat   []Item
	byHref map[string]int
}

// New builds an index over the tree. Hrefs must be non-empty and unique.
func New(tree []Item) (*Index, error) {
	idx := &Index{byHref: make(map[string]int)}
	for _, it := range tree {
		idx.tree = append(idx.tree, it.clone())
	}

	var walk func(items []Item) error
	walk = func(items []Item) error {
		for _, it := range items {
			if it.Href == "" {
				return fmt.Errorf("navigation item %q has no href", it.Name)
			}
			if _, dup := idx.byHref[it.Href]; dup {
				return fmt.Errorf("duplicate navigation href %s", it.Href)
			}
			idx.byHref[it.Href] = len(idx.flat)
			flat := it.clone()
			flat.Children = nil
			idx.flat = append(idx.flat, flat)
			if err := walk(it.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(idx.tree); err != nil {
		return nil, err
	}
	return idx, nil
}

// NewDefault builds the index over DefaultCatalog.
func NewDefault() (*Index, error) {
	items, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return New(items)
}

// Tree returns a copy of the top-level items with their children.
func (x *Index) Tree() []Item {
	out := make([]Item, len(x.tree))
	for i, it := range x.tree {
		out[i] = it.clone()
	}
	return out
}

// All returns every item depth-first, parents before children.
// Returned items carry no Children.
func (x *Index) All() []Item {
	return cloneAll(x.flat)
}

// Len returns the number of items in the flattened index.
func (x *Index) Len() int { return len(x.flat) }

// PageInfo returns the item at path.
func (x *Index) PageInfo(path string) (Item, bool) {
	i, ok := x.byHref[path]
	if !ok {
		return Item{}, false
	}
	return x.flat[i].clone(), true
}

// Search matches query case-insensitively as a substring of the name,
// description or any keyword. A blank query returns nil. At most
// SearchLimit items are returned, in index order.
func (x *Index) Search(query string) []Item {
	return x.SearchN(query, SearchLimit)
}

// SearchN is Search with a caller-chosen limit. A limit below one means no
// limit.
func (x *Index) SearchN(query string, limit int) []Item {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	term := strings.ToLower(query)

	var out []Item
	for _, it := range x.flat {
		if !matchesSubstring(it, term) {
			continue
		}
		out = append(out, it.clone())
		if len(out) == limit {
			break
		}
	}
	return out
}

func matchesSubstring(it Item, term string) bool {
	if strings.Contains(strings.ToLower(it.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(it.Description), term) {
		return true
	}
	for _, kw := range it.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	return false
}

// Breadcrumbs returns the trail to path: Home (unless path is the root),
// Documentation for pages below /docs, then the page itself when known.
func (x *Index) Breadcrumbs(path string) []Breadcrumb {
	var crumbs []Breadcrumb
	if path != "/" {
		crumbs = append(crumbs, Breadcrumb{Name: "Home", Href: "/"})
	}

	i, ok := x.byHref[path]
	if !ok {
		return crumbs
	}
	if strings.HasPrefix(path, "/docs") && path != "/docs" {
		crumbs = append(crumbs, Breadcrumb{Name: "Documentation", Href: "/docs"})
	}
	crumbs = append(crumbs, Breadcrumb{Name: x.flat[i].Name, Href: x.flat[i].Href})
	return crumbs
}

// Related returns up to RelatedLimit items that share the category of path
// or at least one keyword with it. The page itself is excluded.
func (x *Index) Related(path string) []Item {
	i, ok := x.byHref[path]
	if !ok {
		return nil
	}
	current := x.flat[i]

	var out []Item
	for _, it := range x.flat {
		if it.Href == path {
			continue
		}
		if it.Category == current.Category || sharesKeyword(current.Keywords, it.Keywords) {
			out = append(out, it.clone())
			if len(out) == RelatedLimit {
				break
			}
		}
	}
	return out
}

func sharesKeyword(a, b []string) bool {
	for _, kw := range a {
		if slices.Contains(b, kw) {
			return true
		}
	}
	return false
}

func cloneAll(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
	}
	return out
}
