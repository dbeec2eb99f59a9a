// Package search holds the state of a debounced search box: the query text,
// the visibility of the result panel and the results of the last settled
// lookup. Timing is left to the caller; every edit yields a Ticket and only
// the newest ticket may trigger a lookup once the debounce window elapses.
package search

import (
	"strings"
	"time"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// DefaultDebounce is the keystroke inactivity required before a lookup.
const DefaultDebounce = 300 * time.Millisecond

// DefaultMaxResults bounds the displayed result list.
const DefaultMaxResults = 10

// Ticket identifies one edit of the query.
type Ticket uint64

// Session is the search box state machine. It is not safe for concurrent
// use; the TUI drives it from its single update loop.
type Session struct {
	searcher   navigation.Searcher
	debounce   time.Duration
	maxResults int

	query   string
	settled string
	open    bool
	seq     Ticket
	results []navigation.Item
	lookups int
}

// Option configures a Session.
type Option func(*Session)

// WithDebounce overrides the settling delay.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithMaxResults overrides the display bound.
func WithMaxResults(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// NewSession creates an empty session over searcher.
func NewSession(searcher navigation.Searcher, opts ...Option) *Session {
	s := &Session{
		searcher:   searcher,
		debounce:   DefaultDebounce,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Debounce returns the settling delay.
func (s *Session) Debounce() time.Duration { return s.debounce }

// SetQuery records an edit. Any pending lookup is superseded.
//
// A blank query closes the panel and clears results immediately; schedule is
// false and no lookup will follow. Otherwise the caller should call Settle
// with the returned ticket after Debounce has elapsed.
func (s *Session) SetQuery(q string) (ticket Ticket, schedule bool) {
	s.seq++
	s.query = q
	if strings.TrimSpace(q) == "" {
		s.open = false
		s.results = nil
		s.settled = ""
		return s.seq, false
	}
	return s.seq, true
}

// Settle performs the lookup for t if it is still the newest edit.
// Stale tickets are ignored and report false.
func (s *Session) Settle(t Ticket) bool {
	if t != s.seq || strings.TrimSpace(s.query) == "" {
		return false
	}
	s.lookups++
	s.settled = s.query
	results := s.searcher.Search(s.query)
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}
	s.results = results
	s.open = true
	return true
}

// Query returns the current input text.
func (s *Session) Query() string { return s.query }

// SettledQuery returns the query of the last lookup.
func (s *Session) SettledQuery() string { return s.settled }

// Results returns the bounded results of the last lookup.
func (s *Session) Results() []navigation.Item { return s.results }

// Open reports whether the panel is open. An open panel with no results
// shows the "no results" hint.
func (s *Session) Open() bool { return s.open }

// Lookups returns how many lookups have been performed.
func (s *Session) Lookups() int { return s.lookups }

// Select closes the panel, resets the input and returns the href of result i.
func (s *Session) Select(i int) (string, bool) {
	if !s.open || i < 0 || i >= len(s.results) {
		return "", false
	}
	href := s.results[i].Href
	s.reset()
	return href, true
}

// Escape closes the panel and resets the input.
func (s *Session) Escape() {
	s.reset()
}

// Clear resets query and results and closes the panel.
func (s *Session) Clear() {
	s.reset()
}

// Dismiss closes the panel but keeps the text, as for a click outside the
// search box or focus moving elsewhere.
func (s *Session) Dismiss() {
	s.open = false
}

// Focus reopens the panel when a settled, non-blank query is present.
func (s *Session) Focus() {
	if strings.TrimSpace(s.query) != "" && s.settled == s.query {
		s.open = true
	}
}

func (s *Session) reset() {
	s.seq++
	s.query = ""
	s.settled = ""
	s.results = nil
	s.open = false
}
