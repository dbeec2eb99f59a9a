package ui

import (
	"strings"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// PageItem wraps navigation.Item to implement list.Item
type PageItem struct {
	Entry navigation.Item
	Depth int
}

func (i PageItem) Title() string {
	return i.Entry.Name
}

func (i PageItem) Description() string {
	return i.Entry.Description
}

func (i PageItem) FilterValue() string {
	return i.Entry.Name + " " + i.Entry.Href + " " + strings.Join(i.Entry.Keywords, " ")
}

// pageItems flattens the tree depth-first, parents before children.
func pageItems(tree []navigation.Item, depth int) []PageItem {
	var out []PageItem
	for _, it := range tree {
		out = append(out, PageItem{Entry: it, Depth: depth})
		out = append(out, pageItems(it.Children, depth+1)...)
	}
	return out
}
