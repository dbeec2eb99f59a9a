// Package responsive resolves viewport sizes into discrete layout breakpoints.
//
// A Table holds ordered breakpoint thresholds, a Resolver tracks the current
// viewport size from a resize Source, and Value picks the effective entry of a
// sparse per-breakpoint map using mobile-first override semantics.
package responsive

import (
	"errors"
	"fmt"
	"strings"
)

// Breakpoint names a layout tier.
type Breakpoint string

// Canonical breakpoint names, smallest first.
const (
	SM  Breakpoint = "sm"
	MD  Breakpoint = "md"
	LG  Breakpoint = "lg"
	XL  Breakpoint = "xl"
	XXL Breakpoint = "2xl"
)

// CanonicalOrder lists the canonical breakpoints in ascending rank.
var CanonicalOrder = []Breakpoint{SM, MD, LG, XL, XXL}

// ErrInvalidTable is returned when a breakpoint table is malformed.
var ErrInvalidTable = errors.New("invalid breakpoint table")

// Threshold pairs a breakpoint name with its minimum width.
type Threshold struct {
	Name     Breakpoint
	MinWidth int
}

// Table is an ordered, validated set of breakpoint thresholds.
// The zero value is not usable; build one with NewTable.
type Table struct {
	entries []Threshold
	index   map[Breakpoint]int
}

// NewTable validates the thresholds and returns a Table.
//
// Entries must be given smallest first, names must be unique and non-empty,
// widths must be non-negative and strictly increasing, and the table must
// contain md and lg (the device-class boundaries).
func NewTable(thresholds ...Threshold) (Table, error) {
	if len(thresholds) == 0 {
		return Table{}, fmt.Errorf("%w: no thresholds", ErrInvalidTable)
	}

	t := Table{
		entries: make([]Threshold, len(thresholds)),
		index:   make(map[Breakpoint]int, len(thresholds)),
	}
	copy(t.entries, thresholds)

	for i, th := range t.entries {
		if strings.TrimSpace(string(th.Name)) == "" {
			return Table{}, fmt.Errorf("%w: entry %d has an empty name", ErrInvalidTable, i)
		}
		if th.MinWidth < 0 {
			return Table{}, fmt.Errorf("%w: %s has negative width %d", ErrInvalidTable, th.Name, th.MinWidth)
		}
		if _, dup := t.index[th.Name]; dup {
			return Table{}, fmt.Errorf("%w: duplicate breakpoint %s", ErrInvalidTable, th.Name)
		}
		if i > 0 && th.MinWidth <= t.entries[i-1].MinWidth {
			prev := t.entries[i-1]
			return Table{}, fmt.Errorf("%w: %s (%d) must be wider than %s (%d)",
				ErrInvalidTable, th.Name, th.MinWidth, prev.Name, prev.MinWidth)
		}
		t.index[th.Name] = i
	}

	for _, required := range []Breakpoint{MD, LG} {
		if _, ok := t.index[required]; !ok {
			return Table{}, fmt.Errorf("%w: missing %s breakpoint", ErrInvalidTable, required)
		}
	}
	if t.index[MD] > t.index[LG] {
		return Table{}, fmt.Errorf("%w: md must rank below lg", ErrInvalidTable)
	}

	return t, nil
}

// MustTable is like NewTable but panics on invalid input.
// Intended for package-level tables built from constants.
func MustTable(thresholds ...Threshold) Table {
	t, err := NewTable(thresholds...)
	if err != nil {
		panic(err)
	}
	return t
}

// TableFromWidths builds a Table from a name→width map, ordering the entries
// by the canonical order. Names outside the canonical set are rejected.
func TableFromWidths(widths map[string]int) (Table, error) {
	thresholds := make([]Threshold, 0, len(widths))
	for _, bp := range CanonicalOrder {
		if w, ok := widths[string(bp)]; ok {
			thresholds = append(thresholds, Threshold{Name: bp, MinWidth: w})
		}
	}
	if len(thresholds) != len(widths) {
		for name := range widths {
			if !isCanonical(Breakpoint(name)) {
				return Table{}, fmt.Errorf("%w: unknown breakpoint %q", ErrInvalidTable, name)
			}
		}
	}
	return NewTable(thresholds...)
}

func isCanonical(bp Breakpoint) bool {
	for _, c := range CanonicalOrder {
		if c == bp {
			return true
		}
	}
	return false
}

// DefaultTable mirrors the common CSS pixel breakpoints.
var DefaultTable = MustTable(
	Threshold{SM, 640},
	Threshold{MD, 768},
	Threshold{LG, 1024},
	Threshold{XL, 1280},
	Threshold{XXL, 1536},
)

// TerminalTable expresses the same tiers in terminal columns.
// md and lg line up with the narrow/medium layout switches of the TUI.
var TerminalTable = MustTable(
	Threshold{SM, 40},
	Threshold{MD, 80},
	Threshold{LG, 100},
	Threshold{XL, 140},
	Threshold{XXL, 180},
)

// Len returns the number of breakpoints.
func (t Table) Len() int { return len(t.entries) }

// Thresholds returns a copy of the entries, smallest first.
func (t Table) Thresholds() []Threshold {
	out := make([]Threshold, len(t.entries))
	copy(out, t.entries)
	return out
}

// Widths returns the table as a name→width map.
func (t Table) Widths() map[string]int {
	out := make(map[string]int, len(t.entries))
	for _, th := range t.entries {
		out[string(th.Name)] = th.MinWidth
	}
	return out
}

// Threshold returns the minimum width of bp.
func (t Table) Threshold(bp Breakpoint) (int, bool) {
	i, ok := t.index[bp]
	if !ok {
		return 0, false
	}
	return t.entries[i].MinWidth, true
}

// Rank returns the position of bp, 0 being the smallest.
func (t Table) Rank(bp Breakpoint) (int, bool) {
	i, ok := t.index[bp]
	return i, ok
}

// Floor returns the smallest breakpoint.
func (t Table) Floor() Breakpoint {
	return t.entries[0].Name
}

// Resolve returns the largest breakpoint whose threshold is <= width.
// Widths below every threshold resolve to the floor; there is no tier below it.
func (t Table) Resolve(width int) Breakpoint {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if width >= t.entries[i].MinWidth {
			return t.entries[i].Name
		}
	}
	return t.Floor()
}

// AtLeast reports whether width reaches the threshold of bp.
// Unknown breakpoints are never reached.
func (t Table) AtLeast(width int, bp Breakpoint) bool {
	minWidth, ok := t.Threshold(bp)
	if !ok {
		return false
	}
	return width >= minWidth
}

// DeviceClass is the coarse device category derived from md and lg.
type DeviceClass int

const (
	Mobile DeviceClass = iota
	Tablet
	Desktop
)

func (c DeviceClass) String() string {
	switch c {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Class returns the device class of width.
func (t Table) Class(width int) DeviceClass {
	md, _ := t.Threshold(MD)
	lg, _ := t.Threshold(LG)
	switch {
	case width < md:
		return Mobile
	case width < lg:
		return Tablet
	default:
		return Desktop
	}
}
