package ui

// SectionMark is a section heading at a line offset of the rendered page.
type SectionMark struct {
	ID     string
	Title  string
	Level  int
	Offset int
}

// SectionTracker follows the scroll position of a page and reports which
// section is being read.
type SectionTracker struct {
	marks  []SectionMark
	scroll int
}

// NewSectionTracker tracks marks, which must be in document order.
func NewSectionTracker(marks []SectionMark) SectionTracker {
	return SectionTracker{marks: marks}
}

// Marks returns the tracked sections.
func (s SectionTracker) Marks() []SectionMark { return s.marks }

// SetScroll records the current top line.
func (s *SectionTracker) SetScroll(line int) {
	if line < 0 {
		line = 0
	}
	s.scroll = line
}

// Scroll returns the current top line.
func (s SectionTracker) Scroll() int { return s.scroll }

// Visible reports whether the indicator should be shown.
func (s SectionTracker) Visible() bool {
	return len(s.marks) > 0 && s.scroll > SectionIndicatorThreshold
}

// ActiveIndex is the last section whose heading is at or above the scroll
// position plus the activation margin, or -1 before the first heading.
func (s SectionTracker) ActiveIndex() int {
	active := -1
	limit := s.scroll + SectionActivationMargin
	for i, m := range s.marks {
		if m.Offset > limit {
			break
		}
		active = i
	}
	return active
}

// Active returns the active section.
func (s SectionTracker) Active() (SectionMark, bool) {
	i := s.ActiveIndex()
	if i < 0 {
		return SectionMark{}, false
	}
	return s.marks[i], true
}

// Offset returns the line of section id.
func (s SectionTracker) Offset(id string) (int, bool) {
	for _, m := range s.marks {
		if m.ID == id {
			return m.Offset, true
		}
	}
	return 0, false
}

// Next returns the offset of the first section below the active one.
func (s SectionTracker) Next() (int, bool) {
	i := s.ActiveIndex() + 1
	if i >= len(s.marks) {
		return 0, false
	}
	return s.marks[i].Offset, true
}

// Prev returns the offset of the active section's predecessor, or of the
// active section itself when the page is scrolled into it.
func (s SectionTracker) Prev() (int, bool) {
	i := s.ActiveIndex()
	if i < 0 {
		return 0, false
	}
	if s.marks[i].Offset < s.scroll {
		return s.marks[i].Offset, true
	}
	if i == 0 {
		return 0, false
	}
	return s.marks[i-1].Offset, true
}
