package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const (
	frontMatterDelim = "---"
	introID          = "top"
)

// Parse reads one page. The front matter is required and must set path
// and title.
func Parse(name string, data []byte) (*Page, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	page := &Page{Source: name}
	if err := yaml.Unmarshal(meta, page); err != nil {
		return nil, fmt.Errorf("%s: front matter: %w", name, err)
	}
	if page.Path == "" || page.Title == "" {
		return nil, fmt.Errorf("%s: front matter needs path and title", name)
	}

	page.Sections = parseSections(body)
	return page, nil
}

func splitFrontMatter(data []byte) (meta, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || strings.TrimSpace(string(lines[0])) != frontMatterDelim {
		return nil, nil, fmt.Errorf("missing front matter")
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(string(lines[i])) == frontMatterDelim {
			return bytes.Join(lines[1:i], nil), bytes.Join(lines[i+1:], nil), nil
		}
	}
	return nil, nil, fmt.Errorf("unterminated front matter")
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// parseSections splits the body at its headings. Prose keeps its markdown
// source for the renderer; fenced and indented code become code blocks.
func parseSections(body []byte) []Section {
	pc := parser.NewContext()
	pc.IDs().Put([]byte(introID))
	doc := markdown.Parser().Parse(text.NewReader(body), parser.WithContext(pc))

	var (
		sections   []Section
		cur        = Section{ID: introID}
		proseStart = -1
		proseEnd   = -1
	)
	flushProse := func() {
		if proseStart >= 0 && proseEnd > proseStart {
			if txt := strings.TrimSpace(string(body[proseStart:proseEnd])); txt != "" {
				cur.Blocks = append(cur.Blocks, Block{Kind: BlockProse, Text: txt})
			}
		}
		proseStart, proseEnd = -1, -1
	}
	flushSection := func() {
		flushProse()
		if cur.Title != "" || len(cur.Blocks) > 0 {
			sections = append(sections, cur)
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushSection()
			cur = Section{Title: strings.TrimSpace(inlineText(node, body)), Level: node.Level}
			if id, ok := node.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					cur.ID = string(b)
				}
			}
		case *ast.FencedCodeBlock:
			flushProse()
			b := Block{Kind: BlockCode}
			if node.Info != nil {
				b = parseFenceInfo(string(node.Info.Segment.Value(body)))
			}
			b.Text = codeText(node.Lines(), body)
			cur.Blocks = append(cur.Blocks, b)
		case *ast.CodeBlock:
			flushProse()
			cur.Blocks = append(cur.Blocks, Block{Kind: BlockCode, Text: codeText(node.Lines(), body)})
		default:
			start, stop, ok := sourceRange(n, body)
			if !ok {
				continue
			}
			if proseStart < 0 {
				proseStart = start
			}
			proseEnd = stop
		}
	}
	flushSection()
	return sections
}

// sourceRange is the byte span of whole lines covered by a block and its
// descendants. Thematic breaks carry no source segments and report false.
func sourceRange(n ast.Node, source []byte) (int, int, bool) {
	start, stop := -1, -1
	cover := func(seg text.Segment) {
		if seg.Stop <= seg.Start {
			return
		}
		if start < 0 || seg.Start < start {
			start = seg.Start
		}
		if seg.Stop > stop {
			stop = seg.Stop
		}
	}
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			cover(t.Segment)
		}
		if c.Type() == ast.TypeBlock {
			lines := c.Lines()
			for i := 0; i < lines.Len(); i++ {
				cover(lines.At(i))
			}
		}
		return ast.WalkContinue, nil
	})
	if start < 0 {
		return 0, 0, false
	}
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	for stop < len(source) && source[stop-1] != '\n' {
		stop++
	}
	return start, stop, true
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func codeText(lines *text.Segments, source []byte) string {
	var b bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// parseFenceInfo reads "python filename=quickstart.py".
func parseFenceInfo(info string) Block {
	b := Block{Kind: BlockCode}
	for i, field := range strings.Fields(info) {
		if k, v, ok := strings.Cut(field, "="); ok {
			if k == "filename" {
				b.Filename = v
			}
			continue
		}
		if i == 0 {
			b.Lang = field
		}
	}
	return b
}
