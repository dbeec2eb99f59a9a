package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

func testTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(io.Discard))
}

func TestNewCardStyles_RequiresFullTable(t *testing.T) {
	specs := DefaultCardSpecs()
	if _, err := NewCardStyles(testTheme(), specs); err != nil {
		t.Fatalf("Expected default table to validate, got %v", err)
	}

	delete(specs[VariantGradient], SizeLG)
	_, err := NewCardStyles(testTheme(), specs)
	if err == nil || !strings.Contains(err.Error(), "gradient/lg") {
		t.Errorf("Expected missing gradient/lg error, got %v", err)
	}

	specs = DefaultCardSpecs()
	delete(specs, VariantElevated)
	if _, err := NewCardStyles(testTheme(), specs); err == nil {
		t.Error("Expected error for missing variant")
	}
}

func TestCardStyles_SpecFallback(t *testing.T) {
	cs := DefaultCardStyles(testTheme())
	want := cs.Spec(VariantDefault, SizeMD)

	for _, tc := range []struct {
		v CardVariant
		s CardSize
	}{
		{"", ""},
		{"neon", SizeMD},
		{VariantDefault, "xxl"},
	} {
		got := cs.Spec(tc.v, tc.s)
		if got.PadX != want.PadX || got.PadY != want.PadY || got.BorderColor != want.BorderColor {
			t.Errorf("Spec(%q, %q): expected default/md, got %+v", tc.v, tc.s, got)
		}
	}

	lg := cs.Spec(VariantInteractive, SizeLG)
	if lg.PadY != 1 || lg.BorderColor != ColorBrand {
		t.Errorf("Expected interactive/lg padding 1 and brand border, got %+v", lg)
	}
}

func TestCardStyles_BoxWidth(t *testing.T) {
	cs := DefaultCardStyles(testTheme())
	out := cs.Box(VariantDefault, SizeSM, 30).Render("hello")
	if w := lipgloss.Width(out); w != 30 {
		t.Errorf("Expected width 30, got %d", w)
	}
}

func TestRenderMiniBar(t *testing.T) {
	th := testTheme()
	tests := []struct {
		value  float64
		filled int
	}{
		{0, 0},
		{0.01, 1}, // any positive value shows
		{0.5, 5},
		{1, 10},
		{3, 10},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := RenderMiniBar(tt.value, 10, th.Primary, th)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("value %.2f: expected %d filled, got %d", tt.value, tt.filled, got)
		}
		if w := lipgloss.Width(bar); w != 10 {
			t.Errorf("value %.2f: expected width 10, got %d", tt.value, w)
		}
	}
	if RenderMiniBar(0.5, 0, th.Primary, th) != "" {
		t.Error("Expected empty bar for zero width")
	}
}

func TestRenderCategoryBadge(t *testing.T) {
	th := testTheme()
	if got := RenderCategoryBadge(th, "docs"); got != "[DOCS]" {
		t.Errorf("Expected [DOCS], got %q", got)
	}
	if RenderCategoryBadge(th, "") != "" {
		t.Error("Expected no badge for empty category")
	}
	if CategoryColor("unknown") != ColorMuted {
		t.Error("Expected muted color for unknown category")
	}
}

func TestGridColumnWidth(t *testing.T) {
	tests := []struct {
		width, cols, want int
	}{
		{100, 1, 100},
		{100, 2, 49},
		{100, 3, 32},
		{30, 3, MinBoxWidth},
		{60, 0, 60},
	}
	for _, tt := range tests {
		if got := GridColumnWidth(tt.width, tt.cols); got != tt.want {
			t.Errorf("GridColumnWidth(%d, %d): expected %d, got %d", tt.width, tt.cols, tt.want, got)
		}
	}
}

func TestCardGrid_Rows(t *testing.T) {
	th := testTheme()
	cs := DefaultCardStyles(th)
	cards := []content.Card{
		{Title: "A", Description: "one"},
		{Title: "B", Description: "two"},
		{Title: "C", Description: "three"},
	}

	oneCol := CardGrid(th, cs, cards, 1, 60, -1)
	threeCol := CardGrid(th, cs, cards, 3, 90, -1)
	if lipgloss.Height(oneCol) <= lipgloss.Height(threeCol) {
		t.Errorf("Expected single column grid taller, got %d vs %d", lipgloss.Height(oneCol), lipgloss.Height(threeCol))
	}
	if w := lipgloss.Width(threeCol); w > 90 {
		t.Errorf("Expected grid within 90 columns, got %d", w)
	}
}

func TestRenderCard_Link(t *testing.T) {
	th := testTheme()
	cs := DefaultCardStyles(th)

	internal := RenderCard(th, cs, content.Card{Title: "Docs", Href: "/docs"}, 40, false)
	if !strings.Contains(internal, "Learn more → /docs") {
		t.Errorf("Expected default action link, got:\n%s", internal)
	}
	external := RenderCard(th, cs, content.Card{Title: "GitHub", Href: "https://github.com", External: true, Action: "Star"}, 60, false)
	if !strings.Contains(external, "Star ↗") {
		t.Errorf("Expected external arrow, got:\n%s", external)
	}
}

func TestCardFromItem(t *testing.T) {
	c := CardFromItem(navigation.Item{Name: "API", Href: "/docs/api", Description: "Reference", Category: navigation.CategoryDocs})
	if c.Title != "API" || c.Href != "/docs/api" || c.Category != "docs" {
		t.Errorf("Unexpected card %+v", c)
	}
	if CardVariant(c.Variant) != VariantInteractive {
		t.Errorf("Expected interactive variant, got %q", c.Variant)
	}
}

func TestRenderNavbar_ActiveTop(t *testing.T) {
	if got := activeTop(testTree, "/docs/metrics"); got != "/docs" {
		t.Errorf("Expected /docs, got %q", got)
	}
	if got := activeTop(testTree, "/"); got != "/" {
		t.Errorf("Expected /, got %q", got)
	}
	if got := activeTop(testTree, "/blog"); got != "" {
		t.Errorf("Expected no active entry, got %q", got)
	}
}
