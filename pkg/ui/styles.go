package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Crimson brand accent on a neutral base
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBrand     = lipgloss.AdaptiveColor{Light: "#B01030", Dark: "#DC143C"}
	ColorBrandSoft = lipgloss.AdaptiveColor{Light: "#E8A0AE", Dark: "#FF6B81"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1E1F29", Dark: "#F8F8F2"}
	ColorSubtext   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6272A4"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#D3D3D3", Dark: "#44475A"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#F2E6E8", Dark: "#3A2430"}
	ColorInfo      = lipgloss.AdaptiveColor{Light: "#0077AA", Dark: "#8BE9FD"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#50FA7B"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#B35900", Dark: "#FFB86C"}
	ColorAccent    = lipgloss.AdaptiveColor{Light: "#7A3EC8", Dark: "#BD93F9"}
)

// categoryColors gives every navigation category its badge color.
var categoryColors = map[navigation.Category]lipgloss.AdaptiveColor{
	navigation.CategoryMain:        ColorBrand,
	navigation.CategoryDocs:        ColorInfo,
	navigation.CategoryExamples:    ColorSuccess,
	navigation.CategoryPerformance: ColorWarning,
	navigation.CategoryLLM:         ColorAccent,
	navigation.CategoryLearning:    ColorSuccess,
	navigation.CategoryContent:     ColorSubtext,
	navigation.CategoryCompany:     ColorMuted,
}

// Theme carries the renderer and semantic colors every view draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
}

// DefaultTheme returns the brand theme bound to r.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer:  r,
		Primary:   ColorBrand,
		Secondary: ColorMuted,
		Subtext:   ColorSubtext,
		Border:    ColorBorder,
		Highlight: ColorHighlight,
		Accent:    ColorAccent,
		Success:   ColorSuccess,
		Warning:   ColorWarning,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CARD STYLES - Variant × size lookup table
// ══════════════════════════════════════════════════════════════════════════════

// CardVariant selects the card decoration.
type CardVariant string

const (
	VariantDefault     CardVariant = "default"
	VariantElevated    CardVariant = "elevated"
	VariantInteractive CardVariant = "interactive"
	VariantGradient    CardVariant = "gradient"
)

// CardSize selects the card padding.
type CardSize string

const (
	SizeSM CardSize = "sm"
	SizeMD CardSize = "md"
	SizeLG CardSize = "lg"
)

// CardVariants and CardSizes enumerate every value the table must cover.
var (
	CardVariants = []CardVariant{VariantDefault, VariantElevated, VariantInteractive, VariantGradient}
	CardSizes    = []CardSize{SizeSM, SizeMD, SizeLG}
)

// CardSpec describes one cell of the card table.
type CardSpec struct {
	Border      lipgloss.Border
	BorderColor lipgloss.AdaptiveColor
	PadY, PadX  int
	TitleColor  lipgloss.AdaptiveColor
}

// CardSpecs is a complete variant × size table.
type CardSpecs map[CardVariant]map[CardSize]CardSpec

// CardStyles resolves a variant and size to a lipgloss style.
type CardStyles struct {
	theme Theme
	specs CardSpecs
}

func cardSpec(border lipgloss.Border, color lipgloss.AdaptiveColor, padY, padX int) CardSpec {
	return CardSpec{Border: border, BorderColor: color, PadY: padY, PadX: padX, TitleColor: color}
}

// DefaultCardSpecs returns the built-in table.
func DefaultCardSpecs() CardSpecs {
	return CardSpecs{
		VariantDefault: {
			SizeSM: cardSpec(lipgloss.NormalBorder(), ColorBorder, 0, 1),
			SizeMD: cardSpec(lipgloss.NormalBorder(), ColorBorder, 0, 2),
			SizeLG: cardSpec(lipgloss.NormalBorder(), ColorBorder, 1, 2),
		},
		VariantElevated: {
			SizeSM: cardSpec(lipgloss.ThickBorder(), ColorMuted, 0, 1),
			SizeMD: cardSpec(lipgloss.ThickBorder(), ColorMuted, 0, 2),
			SizeLG: cardSpec(lipgloss.ThickBorder(), ColorMuted, 1, 2),
		},
		VariantInteractive: {
			SizeSM: cardSpec(lipgloss.RoundedBorder(), ColorBrand, 0, 1),
			SizeMD: cardSpec(lipgloss.RoundedBorder(), ColorBrand, 0, 2),
			SizeLG: cardSpec(lipgloss.RoundedBorder(), ColorBrand, 1, 2),
		},
		VariantGradient: {
			SizeSM: cardSpec(lipgloss.DoubleBorder(), ColorAccent, 0, 1),
			SizeMD: cardSpec(lipgloss.DoubleBorder(), ColorAccent, 0, 2),
			SizeLG: cardSpec(lipgloss.DoubleBorder(), ColorAccent, 1, 2),
		},
	}
}

// NewCardStyles validates that specs covers every variant × size pair.
func NewCardStyles(t Theme, specs CardSpecs) (CardStyles, error) {
	for _, v := range CardVariants {
		row, ok := specs[v]
		if !ok {
			return CardStyles{}, fmt.Errorf("card styles: missing variant %q", v)
		}
		for _, s := range CardSizes {
			if _, ok := row[s]; !ok {
				return CardStyles{}, fmt.Errorf("card styles: missing %s/%s", v, s)
			}
		}
	}
	return CardStyles{theme: t, specs: specs}, nil
}

// DefaultCardStyles builds the built-in table; it cannot fail.
func DefaultCardStyles(t Theme) CardStyles {
	cs, err := NewCardStyles(t, DefaultCardSpecs())
	if err != nil {
		panic(err)
	}
	return cs
}

// Spec returns the cell for v and s. Unknown or empty values use
// default and md.
func (c CardStyles) Spec(v CardVariant, s CardSize) CardSpec {
	row, ok := c.specs[v]
	if !ok {
		row = c.specs[VariantDefault]
	}
	spec, ok := row[s]
	if !ok {
		spec = row[SizeMD]
	}
	return spec
}

// Box returns the container style for a card of the given outer width.
func (c CardStyles) Box(v CardVariant, s CardSize, width int) lipgloss.Style {
	spec := c.Spec(v, s)
	st := c.theme.Renderer.NewStyle().
		Border(spec.Border).
		BorderForeground(spec.BorderColor).
		Padding(spec.PadY, spec.PadX)
	if width > 0 {
		// Width excludes the border in lipgloss.
		st = st.Width(max(width-2, 1))
	}
	return st
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGE RENDERING - Polished, consistent badge styles
// ══════════════════════════════════════════════════════════════════════════════

// CategoryColor returns the badge color for a category.
func CategoryColor(c navigation.Category) lipgloss.AdaptiveColor {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return ColorMuted
}

// RenderCategoryBadge returns a styled category badge like "[docs]".
func RenderCategoryBadge(t Theme, category string) string {
	if category == "" {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(CategoryColor(navigation.Category(category))).
		Bold(true).
		Render("[" + strings.ToUpper(category) + "]")
}

// RenderBadge returns a pill-style text badge.
func RenderBadge(t Theme, text string, color lipgloss.AdaptiveColor) string {
	if text == "" {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(color).
		Bold(true).
		Render("‹" + text + "›")
}

// ══════════════════════════════════════════════════════════════════════════════
// METRIC VISUALIZATION - Horizontal bars
// ══════════════════════════════════════════════════════════════════════════════

// RenderMiniBar renders a horizontal bar for a value between 0 and 1.
func RenderMiniBar(value float64, width int, color lipgloss.TerminalColor, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled == 0 && value > 0 {
		filled = 1
	}

	bar := t.Renderer.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// RenderSubtleDivider renders a more subtle divider using dots
func RenderSubtleDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Render(strings.Repeat("·", width))
}
