package navigation

import (
	"errors"
	"strings"
	"testing"
)

func mustDefaultIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := NewDefault()
	if err != nil {
		t.Fatalf("NewDefault: %v", err)
	}
	return idx
}

func hrefs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Href
	}
	return out
}

func TestDefaultCatalog_Flattened(t *testing.T) {
	idx := mustDefaultIndex(t)
	if idx.Len() != 19 {
		t.Fatalf("expected 19 navigation items, got %d", idx.Len())
	}

	all := idx.All()
	if all[0].Href != "/" || all[1].Href != "/docs" || all[2].Href != "/docs/getting-started" {
		t.Errorf("expected depth-first order with parents first, got %v", hrefs(all[:3]))
	}
	for _, it := range all {
		if it.Children != nil {
			t.Errorf("flattened item %s should carry no children", it.Href)
		}
	}
}

func TestNew_RejectsDuplicateHref(t *testing.T) {
	_, err := New([]Item{
		{Name: "A", Href: "/a"},
		{Name: "B", Href: "/b", Children: []Item{{Name: "A again", Href: "/a"}}},
	})
	if err == nil {
		t.Fatal("expected duplicate href error")
	}

	if _, err := New([]Item{{Name: "No href"}}); err == nil {
		t.Fatal("expected missing href error")
	}
}

func TestSearch_Substring(t *testing.T) {
	idx := mustDefaultIndex(t)

	tests := []struct {
		query string
		want  string
	}{
		{"getting", "/docs/getting-started"},
		{"QUICKSTART", "/docs/getting-started"},   // keyword, case-insensitive
		{"deployment and best", "/docs/production"}, // description
		{"pii", "/docs/guardrails"},
	}
	for _, tt := range tests {
		got := idx.Search(tt.query)
		found := false
		for _, it := range got {
			if it.Href == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) = %v, want to contain %s", tt.query, hrefs(got), tt.want)
		}
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	idx := mustDefaultIndex(t)
	for _, q := range []string{"", "   ", "\t\n"} {
		if got := idx.Search(q); got != nil {
			t.Errorf("Search(%q) = %v, want nil", q, hrefs(got))
		}
	}
}

func TestSearch_LimitAndOrder(t *testing.T) {
	idx := mustDefaultIndex(t)
	// "e" appears in nearly every entry.
	got := idx.Search("e")
	if len(got) != SearchLimit {
		t.Fatalf("expected %d results, got %d", SearchLimit, len(got))
	}
	all := idx.All()
	pos := make(map[string]int)
	for i, it := range all {
		pos[it.Href] = i
	}
	for i := 1; i < len(got); i++ {
		if pos[got[i-1].Href] > pos[got[i].Href] {
			t.Errorf("results not in index order: %v", hrefs(got))
		}
	}
}

func TestSearch_ResultsAreCopies(t *testing.T) {
	idx := mustDefaultIndex(t)
	got := idx.Search("metrics guide")
	if len(got) == 0 {
		t.Fatal("expected results")
	}
	got[0].Keywords[0] = "mutated"
	got[0].Name = "mutated"

	again, _ := idx.PageInfo(got[0].Href)
	if again.Name == "mutated" || again.Keywords[0] == "mutated" {
		t.Error("mutating a result changed the index")
	}
}

func TestBreadcrumbs(t *testing.T) {
	idx := mustDefaultIndex(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Home"}},
		{"/docs", []string{"Home", "Documentation"}},
		{"/docs/api", []string{"Home", "Documentation", "API Reference"}},
		{"/benchmarks", []string{"Home", "Benchmarks"}},
		{"/missing", []string{"Home"}},
	}
	for _, tt := range tests {
		got := idx.Breadcrumbs(tt.path)
		names := make([]string, len(got))
		for i, c := range got {
			names[i] = c.Name
		}
		if strings.Join(names, ">") != strings.Join(tt.want, ">") {
			t.Errorf("Breadcrumbs(%s) = %v, want %v", tt.path, names, tt.want)
		}
	}
}

func TestRelated(t *testing.T) {
	idx := mustDefaultIndex(t)

	got := idx.Related("/benchmarks")
	// Architecture Guide shares "rust" and "performance".
	if !containsHref(got, "/docs/architecture") {
		t.Errorf("Related(/benchmarks) = %v, want /docs/architecture", hrefs(got))
	}
	if containsHref(got, "/benchmarks") {
		t.Error("Related must exclude the page itself")
	}

	docs := idx.Related("/docs/api")
	if len(docs) != RelatedLimit {
		t.Errorf("expected %d related docs, got %d", RelatedLimit, len(docs))
	}

	if got := idx.Related("/nowhere"); got != nil {
		t.Errorf("Related of unknown path = %v, want nil", hrefs(got))
	}
}

func containsHref(items []Item, href string) bool {
	for _, it := range items {
		if it.Href == href {
			return true
		}
	}
	return false
}

func TestRouter(t *testing.T) {
	idx := mustDefaultIndex(t)
	r := NewRouter(idx, "")
	if r.Current() != "/" {
		t.Fatalf("expected start at /, got %s", r.Current())
	}

	if err := r.Navigate("docs/api/"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if r.Current() != "/docs/api" {
		t.Errorf("expected normalized /docs/api, got %s", r.Current())
	}

	err := r.Navigate("/nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if r.Current() != NotFoundPath {
		t.Errorf("expected %s, got %s", NotFoundPath, r.Current())
	}

	if !r.Back() || r.Current() != "/docs/api" {
		t.Errorf("Back() should return to /docs/api, at %s", r.Current())
	}
	if !r.Back() || r.Current() != "/" {
		t.Errorf("Back() should return to /, at %s", r.Current())
	}
	if r.Back() {
		t.Error("Back() with empty stack should report false")
	}

	if got := NewRouter(idx, "/unknown").Current(); got != NotFoundPath {
		t.Errorf("unknown start page should land on %s, got %s", NotFoundPath, got)
	}
}
