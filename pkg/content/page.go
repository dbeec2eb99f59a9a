// Package content loads the documentation pages: markdown files with a YAML
// front matter block, split into sections and code blocks for the page view.
package content

import (
	"strings"
)

// BlockKind distinguishes prose from fenced code.
type BlockKind int

const (
	BlockProse BlockKind = iota
	BlockCode
)

// Block is a run of prose markdown or one fenced code block.
type Block struct {
	Kind     BlockKind
	Text     string
	Lang     string // code only
	Filename string // code only, from "filename=" in the fence info
}

// Section is the text under one heading. The intro section before the first
// heading has an empty Title and Level 0.
type Section struct {
	ID     string
	Title  string
	Level  int
	Blocks []Block
}

// Markdown reassembles the section, heading included.
func (s Section) Markdown() string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(strings.Repeat("#", s.Level))
		b.WriteString(" ")
		b.WriteString(s.Title)
		b.WriteString("\n\n")
	}
	for _, blk := range s.Blocks {
		b.WriteString(blk.Markdown())
		b.WriteString("\n")
	}
	return b.String()
}

// Markdown returns the block as markdown source.
func (b Block) Markdown() string {
	if b.Kind == BlockCode {
		return "```" + b.Lang + "\n" + b.Text + "\n```\n"
	}
	return b.Text + "\n"
}

// Card is a feature card declared in the front matter.
type Card struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category,omitempty"`
	Badge       string   `yaml:"badge,omitempty"`
	Href        string   `yaml:"href,omitempty"`
	External    bool     `yaml:"external,omitempty"`
	Features    []string `yaml:"features,omitempty"`
	Action      string   `yaml:"action,omitempty"`
	Variant     string   `yaml:"variant,omitempty"`
	Size        string   `yaml:"size,omitempty"`
}

// Widget names understood by the page view.
const (
	WidgetPerformanceChart = "performance-chart"
	WidgetRecent           = "recently-viewed"
)

// Page is one route of the site.
type Page struct {
	Path     string   `yaml:"path"`
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Badge    string   `yaml:"badge,omitempty"`
	Widgets  []string `yaml:"widgets,omitempty"`
	Cards    []Card   `yaml:"cards,omitempty"`

	Sections []Section `yaml:"-"`
	Source   string    `yaml:"-"`
}

// HasWidget reports whether the page embeds the named widget.
func (p *Page) HasWidget(name string) bool {
	for _, w := range p.Widgets {
		if w == name {
			return true
		}
	}
	return false
}

// CodeBlocks returns every code block of the page in document order.
func (p *Page) CodeBlocks() []Block {
	var out []Block
	for _, s := range p.Sections {
		for _, b := range s.Blocks {
			if b.Kind == BlockCode {
				out = append(out, b)
			}
		}
	}
	return out
}

// PlainText returns titles and prose for full-text indexing.
func (p *Page) PlainText() string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n")
	b.WriteString(p.Subtitle)
	b.WriteString("\n")
	for _, s := range p.Sections {
		if s.Title != "" {
			b.WriteString(s.Title)
			b.WriteString("\n")
		}
		for _, blk := range s.Blocks {
			if blk.Kind == BlockProse {
				b.WriteString(blk.Text)
				b.WriteString("\n")
			}
		}
	}
	for _, c := range p.Cards {
		b.WriteString(c.Title + " " + c.Description + "\n")
	}
	return b.String()
}
