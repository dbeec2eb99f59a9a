package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

const samplePage = `---
path: /docs/sample
title: Sample
subtitle: A sample page
widgets: [performance-chart]
cards:
  - title: Card
    description: Card body
    variant: elevated
---
Intro paragraph.

## Install

` + "```bash\npip install blazemetrics\n```" + `

## Usage

Some prose.

` + "```python filename=demo.py\nprint('hi')\n# not a heading\n```" + `

### Usage
Repeated title.
`

func TestParse_SectionsAndCode(t *testing.T) {
	page, err := Parse("sample.md", []byte(samplePage))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if page.Path != "/docs/sample" || page.Title != "Sample" {
		t.Errorf("unexpected front matter: %+v", page)
	}
	if !page.HasWidget(WidgetPerformanceChart) {
		t.Error("expected performance-chart widget")
	}
	if len(page.Cards) != 1 || page.Cards[0].Variant != "elevated" {
		t.Errorf("unexpected cards: %+v", page.Cards)
	}

	wantIDs := []string{"top", "install", "usage", "usage-1"}
	if len(page.Sections) != len(wantIDs) {
		t.Fatalf("expected %d sections, got %d", len(wantIDs), len(page.Sections))
	}
	for i, id := range wantIDs {
		if page.Sections[i].ID != id {
			t.Errorf("section %d id = %q, want %q", i, page.Sections[i].ID, id)
		}
	}
	if page.Sections[3].Level != 3 {
		t.Errorf("expected level 3 heading, got %d", page.Sections[3].Level)
	}

	code := page.CodeBlocks()
	if len(code) != 2 {
		t.Fatalf("expected 2 code blocks, got %d", len(code))
	}
	if code[0].Lang != "bash" || code[0].Text != "pip install blazemetrics" {
		t.Errorf("unexpected first block: %+v", code[0])
	}
	if code[1].Lang != "python" || code[1].Filename != "demo.py" {
		t.Errorf("unexpected second block: %+v", code[1])
	}
	if code[1].Text != "print('hi')\n# not a heading" {
		t.Errorf("fence content was altered: %q", code[1].Text)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"no front matter": "# Title\n",
		"unterminated":    "---\npath: /x\n",
		"missing title":   "---\npath: /x\n---\nbody\n",
	}
	for name, src := range cases {
		if _, err := Parse(name, []byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParse_HeadingIDsUnique(t *testing.T) {
	page, err := Parse("ids.md", []byte("---\npath: /x\ntitle: X\n---\n# Intro\n\na\n\n# Intro\n\nb\n\n# Intro 1\n\nc\n\n## Top\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"intro", "intro-1", "intro-1-1", "top-1"}
	if len(page.Sections) != len(want) {
		t.Fatalf("Expected %d sections, got %d", len(want), len(page.Sections))
	}
	seen := make(map[string]bool)
	for i, sec := range page.Sections {
		if sec.ID != want[i] {
			t.Errorf("Expected section %d id %q, got %q", i, want[i], sec.ID)
		}
		if seen[sec.ID] {
			t.Errorf("Duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true
	}
}

func TestParse_FenceVariants(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLang string
		wantText string
	}{
		{
			name:     "tilde fence with comment",
			body:     "~~~bash\n# install the package\npip install blazemetrics\n~~~\n",
			wantLang: "bash",
			wantText: "# install the package\npip install blazemetrics",
		},
		{
			name:     "nested backtick fence",
			body:     "````markdown\n```python\nprint('hi')\n```\n````\n",
			wantLang: "markdown",
			wantText: "```python\nprint('hi')\n```",
		},
		{
			name:     "unterminated fence",
			body:     "```go\nfunc main() {}\n",
			wantLang: "go",
			wantText: "func main() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Parse("fence.md", []byte("---\npath: /x\ntitle: X\n---\n"+tt.body))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(page.Sections) != 1 {
				t.Fatalf("Expected 1 section, got %d", len(page.Sections))
			}
			blocks := page.Sections[0].Blocks
			if len(blocks) != 1 || blocks[0].Kind != BlockCode {
				t.Fatalf("Expected a single code block, got %+v", blocks)
			}
			if blocks[0].Lang != tt.wantLang {
				t.Errorf("Expected lang %q, got %q", tt.wantLang, blocks[0].Lang)
			}
			if blocks[0].Text != tt.wantText {
				t.Errorf("Expected text %q, got %q", tt.wantText, blocks[0].Text)
			}
		})
	}
}

func TestParse_ProseKeepsMarkdown(t *testing.T) {
	body := "## Lists\n\n- one\n- two\n\n> quoted\n\n```bash\nls\n```\n\nAfter.\n"
	page, err := Parse("prose.md", []byte("---\npath: /x\ntitle: X\n---\n"+body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(page.Sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(page.Sections))
	}
	blocks := page.Sections[0].Blocks
	if len(blocks) != 3 {
		t.Fatalf("Expected prose, code, prose; got %+v", blocks)
	}
	if blocks[0].Text != "- one\n- two\n\n> quoted" {
		t.Errorf("Expected list and quote source kept, got %q", blocks[0].Text)
	}
	if blocks[1].Kind != BlockCode || blocks[1].Text != "ls" {
		t.Errorf("Expected code block ls, got %+v", blocks[1])
	}
	if blocks[2].Text != "After." {
		t.Errorf("Expected trailing prose, got %q", blocks[2].Text)
	}
}

func TestDefault_CoversNavigation(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	idx, err := navigation.NewDefault()
	if err != nil {
		t.Fatalf("navigation: %v", err)
	}
	for _, it := range idx.All() {
		if _, ok := lib.Page(it.Href); !ok {
			t.Errorf("no page for navigation entry %s", it.Href)
		}
	}
	if _, ok := lib.Page(navigation.NotFoundPath); !ok {
		t.Error("missing not-found page")
	}
	if body := lib.Bodies()["/benchmarks"]; body == "" {
		t.Error("expected plain text for /benchmarks")
	}
}

func TestLoadFS_SkipsMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/good.md": {Data: []byte(samplePage)},
		"pages/bad.md":  {Data: []byte("no front matter")},
		"pages/x.txt":   {Data: []byte("ignored")},
	}
	lib, err := LoadFS(fsys, "pages")
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if lib.Len() != 1 {
		t.Errorf("expected 1 page, got %d", lib.Len())
	}

	_, err = LoadFS(fstest.MapFS{"pages/bad.md": {Data: []byte("nope")}}, "pages")
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("expected ErrNoPages, got %v", err)
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.md")
	if err := os.WriteFile(path, []byte(samplePage), 0644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Library, 4)
	w, err := Watch(dir, func(lib *Library, err error) {
		if err == nil {
			reloaded <- lib
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	second := `---
path: /docs/second
title: Second
---
Body.
`
	if err := os.WriteFile(filepath.Join(dir, "second.md"), []byte(second), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case lib := <-reloaded:
		if _, ok := lib.Page("/docs/second"); !ok {
			t.Errorf("reloaded library missing new page, has %v", lib.Paths())
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after writing a page")
	}
}
