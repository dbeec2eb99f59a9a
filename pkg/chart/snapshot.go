package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
)

// ErrUnsupportedFormat is returned for formats other than svg and png.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

// Options configures SaveSnapshot.
type Options struct {
	Path   string
	Format string // "svg" or "png"; inferred from Path when empty
	Data   *Dataset
	Width  int
	Height int
}

const (
	defaultWidth  = 880
	defaultHeight = 480
	marginLeft    = 60
	marginRight   = 20
	marginTop     = 70
	marginBottom  = 90
	groupGap      = 24
	barGap        = 4
)

// SaveSnapshot renders the chart to Path as SVG or PNG.
func SaveSnapshot(opts Options) error {
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}
	format, err := resolveFormat(opts.Format, opts.Path)
	if err != nil {
		return err
	}
	data := Default()
	if opts.Data != nil {
		data = *opts.Data
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	l := computeLayout(data, opts.Width, opts.Height)
	switch format {
	case "svg":
		return saveSVG(opts.Path, l)
	default:
		return savePNG(opts.Path, l)
	}
}

func resolveFormat(format, path string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f {
	case "svg", "png":
		return f, nil
	case "":
		return "svg", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

type bar struct {
	x, y, w, h int
	color      string
	label      string
}

type layout struct {
	width, height int
	plotTop       int
	plotBottom    int
	bars          []bar
	groupLabels   []label
	legend        []legendEntry
}

type label struct {
	x    int
	text string
}

type legendEntry struct {
	x           int
	color, text string
}

func computeLayout(d Dataset, width, height int) layout {
	l := layout{width: width, height: height, plotTop: marginTop, plotBottom: height - marginBottom}
	plotH := l.plotBottom - l.plotTop
	plotW := width - marginLeft - marginRight
	groups := len(Metrics)
	n := len(d.Series)
	if n == 0 {
		return l
	}
	groupW := (plotW - groupGap*(groups-1)) / groups
	barW := (groupW - barGap*(n-1)) / n
	if barW < 1 {
		barW = 1
	}

	for g, metric := range Metrics {
		gx := marginLeft + g*(groupW+groupGap)
		l.groupLabels = append(l.groupLabels, label{x: gx + groupW/2, text: metric})
		for i, s := range d.Series {
			m := na
			if g < len(s.Values) {
				m = s.Values[g]
			}
			h := int(d.BarFraction(m) * float64(plotH))
			if h < 1 {
				h = 1
			}
			l.bars = append(l.bars, bar{
				x:     gx + i*(barW+barGap),
				y:     l.plotBottom - h,
				w:     barW,
				h:     h,
				color: s.Color,
				label: m.Label(),
			})
		}
	}

	x := marginLeft
	for _, s := range d.Series {
		l.legend = append(l.legend, legendEntry{x: x, color: s.Color, text: s.Library})
		x += 24 + 8*len(s.Library)
	}
	return l
}

func saveSVG(path string, l layout) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	canvas := svg.New(f)
	canvas.Start(l.width, l.height)
	canvas.Rect(0, 0, l.width, l.height, "fill:#ffffff")
	canvas.Text(marginLeft, 30, Title, "font-family:sans-serif;font-size:20px;font-weight:bold;fill:#111111")
	canvas.Text(marginLeft, 52, Caption, "font-family:sans-serif;font-size:13px;fill:#555555")
	canvas.Line(marginLeft, l.plotBottom, l.width-marginRight, l.plotBottom, "stroke:#999999;stroke-width:1")

	for _, b := range l.bars {
		canvas.Rect(b.x, b.y, b.w, b.h, "fill:"+b.color)
		canvas.Text(b.x+b.w/2, b.y-4, b.label, "font-family:monospace;font-size:10px;text-anchor:middle;fill:#333333")
	}
	for _, g := range l.groupLabels {
		canvas.Text(g.x, l.plotBottom+18, g.text, "font-family:sans-serif;font-size:12px;text-anchor:middle;fill:#111111")
	}
	for _, e := range l.legend {
		canvas.Rect(e.x, l.plotBottom+34, 12, 12, "fill:"+e.color)
		canvas.Text(e.x+16, l.plotBottom+45, e.text, "font-family:sans-serif;font-size:12px;fill:#111111")
	}
	canvas.Text(marginLeft, l.height-14, Footer, "font-family:sans-serif;font-size:11px;fill:#555555")
	canvas.End()
	return nil
}

func savePNG(path string, l layout) error {
	dc := gg.NewContext(l.width, l.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(0.07, 0.07, 0.07)
	dc.DrawString(Title, marginLeft, 30)
	dc.SetRGB(0.33, 0.33, 0.33)
	dc.DrawString(Caption, marginLeft, 52)

	dc.SetRGB(0.6, 0.6, 0.6)
	dc.DrawLine(marginLeft, float64(l.plotBottom), float64(l.width-marginRight), float64(l.plotBottom))
	dc.SetLineWidth(1)
	dc.Stroke()

	for _, b := range l.bars {
		setHex(dc, b.color)
		dc.DrawRectangle(float64(b.x), float64(b.y), float64(b.w), float64(b.h))
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(b.label, float64(b.x+b.w/2), float64(b.y-4), 0.5, 0)
	}
	dc.SetRGB(0.07, 0.07, 0.07)
	for _, g := range l.groupLabels {
		dc.DrawStringAnchored(g.text, float64(g.x), float64(l.plotBottom+18), 0.5, 0)
	}
	for _, e := range l.legend {
		setHex(dc, e.color)
		dc.DrawRectangle(float64(e.x), float64(l.plotBottom+34), 12, 12)
		dc.Fill()
		dc.SetRGB(0.07, 0.07, 0.07)
		dc.DrawString(e.text, float64(e.x+16), float64(l.plotBottom+45))
	}
	dc.SetRGB(0.33, 0.33, 0.33)
	dc.DrawString(Footer, marginLeft, float64(l.height-14))

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func setHex(dc *gg.Context, hex string) {
	r, g, b := parseHex(hex)
	dc.SetRGB(r, g, b)
}

// parseHex converts "#RRGGBB" to unit RGB. Invalid input yields mid grey.
func parseHex(hex string) (float64, float64, float64) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0.5, 0.5, 0.5
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0.5, 0.5, 0.5
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}
