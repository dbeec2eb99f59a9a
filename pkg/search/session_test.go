package search

import (
	"strings"
	"testing"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// countingSearcher records every lookup.
type countingSearcher struct {
	queries []string
	items   []navigation.Item
}

func (c *countingSearcher) Search(q string) []navigation.Item {
	c.queries = append(c.queries, q)
	var out []navigation.Item
	for _, it := range c.items {
		if strings.Contains(strings.ToLower(it.Name), strings.ToLower(q)) {
			out = append(out, it)
		}
	}
	return out
}

func newCounting(n int) *countingSearcher {
	c := &countingSearcher{}
	for i := 0; i < n; i++ {
		c.items = append(c.items, navigation.Item{Name: "Guide", Href: "/g/" + string(rune('a'+i))})
	}
	return c
}

func TestSession_BurstTriggersOneLookupWithLastValue(t *testing.T) {
	c := newCounting(3)
	s := NewSession(c)

	var tickets []Ticket
	for _, q := range []string{"g", "gu", "gui", "guid"} {
		tk, schedule := s.SetQuery(q)
		if !schedule {
			t.Fatalf("SetQuery(%q) should schedule a lookup", q)
		}
		tickets = append(tickets, tk)
	}

	// Timers for every keystroke fire; only the newest counts.
	fired := 0
	for _, tk := range tickets {
		if s.Settle(tk) {
			fired++
		}
	}

	if fired != 1 || s.Lookups() != 1 {
		t.Fatalf("expected exactly one lookup, got fired=%d lookups=%d", fired, s.Lookups())
	}
	if len(c.queries) != 1 || c.queries[0] != "guid" {
		t.Errorf("lookup queries = %v, want [guid]", c.queries)
	}
	if !s.Open() || len(s.Results()) != 3 {
		t.Errorf("expected open panel with 3 results, open=%v results=%d", s.Open(), len(s.Results()))
	}
}

func TestSession_BlankQueryClosesWithoutLookup(t *testing.T) {
	c := newCounting(2)
	s := NewSession(c)

	tk, _ := s.SetQuery("guide")
	s.Settle(tk)
	if !s.Open() {
		t.Fatal("expected panel open")
	}

	tk, schedule := s.SetQuery("   ")
	if schedule {
		t.Error("blank query must not schedule a lookup")
	}
	if s.Settle(tk) {
		t.Error("blank query must not perform a lookup")
	}
	if s.Open() || s.Results() != nil {
		t.Error("blank query must close the panel and clear results")
	}
	if s.Lookups() != 1 {
		t.Errorf("expected 1 lookup, got %d", s.Lookups())
	}
}

func TestSession_ResultsBounded(t *testing.T) {
	c := newCounting(8)
	s := NewSession(c, WithMaxResults(5))
	tk, _ := s.SetQuery("guide")
	s.Settle(tk)
	if got := len(s.Results()); got != 5 {
		t.Errorf("expected 5 results, got %d", got)
	}
	// Order is the searcher's.
	if s.Results()[0].Href != "/g/a" || s.Results()[4].Href != "/g/e" {
		t.Errorf("results were re-ranked: %v", s.Results())
	}
}

func TestSession_SelectResetsAndNavigates(t *testing.T) {
	s := NewSession(newCounting(2))
	tk, _ := s.SetQuery("guide")
	s.Settle(tk)

	href, ok := s.Select(1)
	if !ok || href != "/g/b" {
		t.Fatalf("Select(1) = %q, %v", href, ok)
	}
	if s.Open() || s.Query() != "" {
		t.Error("Select must close the panel and reset the input")
	}
	if _, ok := s.Select(0); ok {
		t.Error("Select on a closed panel must fail")
	}
}

func TestSession_EscapeResets(t *testing.T) {
	s := NewSession(newCounting(1))
	tk, _ := s.SetQuery("guide")
	s.Settle(tk)
	s.Escape()
	if s.Open() || s.Query() != "" {
		t.Error("Escape must close the panel and reset the input")
	}
}

func TestSession_DismissKeepsText(t *testing.T) {
	s := NewSession(newCounting(1))
	tk, _ := s.SetQuery("guide")
	s.Settle(tk)

	s.Dismiss()
	if s.Open() {
		t.Error("Dismiss must close the panel")
	}
	if s.Query() != "guide" {
		t.Errorf("Dismiss must keep the text, got %q", s.Query())
	}

	s.Focus()
	if !s.Open() {
		t.Error("Focus with a settled query should reopen the panel")
	}
}

func TestSession_EditAfterEscapeInvalidatesPendingTicket(t *testing.T) {
	c := newCounting(1)
	s := NewSession(c)
	tk, _ := s.SetQuery("guide")
	s.Escape()
	if s.Settle(tk) {
		t.Error("a ticket issued before Escape must be stale")
	}
	if len(c.queries) != 0 {
		t.Errorf("unexpected lookups: %v", c.queries)
	}
}

func TestSession_NoResultsKeepsPanelOpen(t *testing.T) {
	s := NewSession(newCounting(1))
	tk, _ := s.SetQuery("zzz")
	s.Settle(tk)
	if !s.Open() || len(s.Results()) != 0 {
		t.Error("expected open panel with empty results for the no-results hint")
	}
	if s.SettledQuery() != "zzz" {
		t.Errorf("SettledQuery() = %q", s.SettledQuery())
	}
}

func TestSession_Options(t *testing.T) {
	s := NewSession(newCounting(0))
	if s.Debounce() != DefaultDebounce {
		t.Errorf("Debounce() = %v, want %v", s.Debounce(), DefaultDebounce)
	}
	s = NewSession(newCounting(0), WithDebounce(0))
	if s.Debounce() != 0 {
		t.Errorf("Debounce() = %v, want 0", s.Debounce())
	}
}
