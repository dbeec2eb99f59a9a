package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/chart"
	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/history"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// docBuilder appends blocks and remembers the line each block starts at.
type docBuilder struct {
	b     strings.Builder
	lines int
}

// add appends s on new lines and returns its first line.
func (d *docBuilder) add(s string) int {
	start := d.lines
	if d.lines > 0 {
		d.b.WriteString("\n")
	}
	d.b.WriteString(s)
	d.lines += lipgloss.Height(s)
	return start
}

func (d *docBuilder) blank() { d.add("") }

func (d *docBuilder) String() string { return d.b.String() }

// document is a page rendered for one width, with the anchors the
// keyboard commands jump to.
type document struct {
	body       string
	lines      int
	marks      []SectionMark
	codeLines  []int
	codeBlocks []content.Block
	cards      []content.Card
	cardsLine  int
}

// docInput is everything a page render depends on.
type docInput struct {
	page     *content.Page
	crumbs   []navigation.Breadcrumb
	related  []navigation.Item
	recent   []history.Visit
	chart    chart.Dataset
	width    int
	cardCols int
	relCols  int
	codeSel  int
	copied   int
	cardSel  int
	now      time.Time
}

// renderDocument lays out header, cards, widgets, sections and related
// content top to bottom.
func renderDocument(t Theme, styles CardStyles, md *markdownRenderer, in docInput) document {
	var d docBuilder
	doc := document{cardsLine: -1}
	p := in.page
	width := max(in.width, MinBoxWidth)

	d.add(RenderPageHeader(t, p.Title, p.Subtitle, p.Badge, in.crumbs, width))

	// Cards from the front matter come first, then the related strip, so
	// one selection index spans both.
	doc.cards = append(doc.cards, p.Cards...)
	if len(p.Cards) > 0 {
		d.blank()
		doc.cardsLine = d.add(CardGrid(t, styles, p.Cards, in.cardCols, width, in.cardSel))
	}

	if p.HasWidget(content.WidgetPerformanceChart) {
		d.blank()
		d.add(RenderChart(t, in.chart, min(width, MaxContentWidth)))
	}
	if p.HasWidget(content.WidgetRecent) && len(in.recent) > 0 {
		d.blank()
		d.add(RenderRecent(t, in.recent, in.now))
	}

	code := 0
	for _, sec := range p.Sections {
		d.blank()
		var prose strings.Builder
		if sec.Title != "" {
			prose.WriteString(strings.Repeat("#", sec.Level) + " " + sec.Title + "\n\n")
		}
		first := true
		flush := func() int {
			if prose.Len() == 0 {
				return -1
			}
			line := d.add(md.Render(prose.String(), width))
			prose.Reset()
			return line
		}
		markLine := -1
		for _, blk := range sec.Blocks {
			if blk.Kind == content.BlockProse {
				prose.WriteString(blk.Text + "\n\n")
				continue
			}
			if l := flush(); l >= 0 && first {
				markLine, first = l, false
			}
			line := d.add(RenderCodeBlock(t, md, blk, min(width, MaxContentWidth), code == in.codeSel, code == in.copied))
			if first {
				markLine, first = line, false
			}
			doc.codeLines = append(doc.codeLines, line)
			doc.codeBlocks = append(doc.codeBlocks, blk)
			code++
		}
		if l := flush(); l >= 0 && first {
			markLine = l
		}
		if sec.Title != "" && markLine >= 0 {
			doc.marks = append(doc.marks, SectionMark{ID: sec.ID, Title: sec.Title, Level: sec.Level, Offset: markLine})
		}
	}

	if len(in.related) > 0 {
		d.blank()
		d.add(RenderDivider(t, width))
		d.add(t.Renderer.NewStyle().Bold(true).Foreground(t.Primary).Render("Related"))
		relCards := make([]content.Card, len(in.related))
		for i, it := range in.related {
			relCards[i] = CardFromItem(it)
		}
		sel := in.cardSel - len(p.Cards)
		d.add(CardGrid(t, styles, relCards, in.relCols, width, sel))
		doc.cards = append(doc.cards, relCards...)
	}

	d.blank()
	doc.body = d.String()
	doc.lines = d.lines
	return doc
}

// RenderRecent lists recently viewed pages.
func RenderRecent(t Theme, visits []history.Visit, now time.Time) string {
	r := t.Renderer
	var b strings.Builder
	b.WriteString(r.NewStyle().Bold(true).Foreground(t.Primary).Render("Recently viewed"))
	for _, v := range visits {
		title := v.Title
		if title == "" {
			title = v.Path
		}
		b.WriteString("\n  • " + title + " " +
			r.NewStyle().Foreground(t.Secondary).Render(v.Path) + " " +
			r.NewStyle().Faint(true).Render(FormatTimeRel(v.VisitedAt, now)))
	}
	return b.String()
}

// FormatTimeRel formats t relative to now, e.g. "5m ago".
func FormatTimeRel(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
