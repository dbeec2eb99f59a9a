// Package chart holds the library performance comparison shown on the
// benchmarks page and exports it as an image.
package chart

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics are the benchmarked operations, in display order.
var Metrics = []string{"BLEU", "ROUGE", "CHRF", "WER"}

// Reference is the library the others are compared against.
const Reference = "BlazeMetrics"

// Title and caption text shared by every rendering.
const (
	Title   = "Performance Comparison"
	Caption = "Execution time in seconds for 1,000 text pairs"
	Footer  = "Test environment: 1K samples on multi-core CPU. Lower is better."
)

// Bar heights as fractions of the plot height.
const (
	minBarFraction = 0.02
	naBarFraction  = 0.05
)

// Measurement is one timing. Unavailable measurements are drawn as a stub
// bar labelled N/A and never take part in scaling.
type Measurement struct {
	Seconds   float64
	Available bool
}

func secs(v float64) Measurement { return Measurement{Seconds: v, Available: true} }

var na = Measurement{}

// Label formats the measurement for display.
func (m Measurement) Label() string {
	if !m.Available {
		return "N/A"
	}
	return strconv.FormatFloat(m.Seconds, 'f', -1, 64) + "s"
}

// Series is one library's timings, aligned with Metrics.
type Series struct {
	Library string
	Color   string
	Values  []Measurement
}

// Winner reports whether this is the reference library.
func (s Series) Winner() bool { return s.Library == Reference }

// Badge is the short verdict shown next to the library name.
func (s Series) Badge() string {
	if s.Winner() {
		return "Winner"
	}
	return "Slower"
}

// Dataset is the full comparison.
type Dataset struct {
	Series []Series
}

// Default returns the published benchmark figures.
func Default() Dataset {
	return Dataset{Series: []Series{
		{Library: "BlazeMetrics", Color: "#DC143C", Values: []Measurement{secs(0.285), secs(0.742), secs(0.456), secs(0.398)}},
		{Library: "HF Evaluate", Color: "#D3D3D3", Values: []Measurement{secs(4.823), secs(12.456), secs(7.892), na}},
		{Library: "SacreBLEU", Color: "#D3D3D3", Values: []Measurement{secs(2.156), na, secs(1.987), na}},
		{Library: "NLTK", Color: "#D3D3D3", Values: []Measurement{secs(14.567), na, na, na}},
	}}
}

// Max returns the largest available timing, or 0 when nothing is available.
func (d Dataset) Max() float64 {
	var vals []float64
	for _, s := range d.Series {
		for _, m := range s.Values {
			if m.Available {
				vals = append(vals, m.Seconds)
			}
		}
	}
	if len(vals) == 0 {
		return 0
	}
	return floats.Max(vals)
}

// BarFraction returns the bar height for m in [0, 1].
func (d Dataset) BarFraction(m Measurement) float64 {
	if !m.Available {
		return naBarFraction
	}
	max := d.Max()
	if max <= 0 {
		return minBarFraction
	}
	f := m.Seconds / max
	if f < minBarFraction {
		f = minBarFraction
	}
	if f > 1 {
		f = 1
	}
	return f
}

// Speedup returns the geometric mean of library/reference time ratios over
// the metrics both have measured. ok is false when there is no overlap.
func (d Dataset) Speedup(library string) (float64, bool) {
	ref, ok := d.find(Reference)
	if !ok {
		return 0, false
	}
	other, ok := d.find(library)
	if !ok {
		return 0, false
	}
	var ratios []float64
	for i, m := range other.Values {
		if i >= len(ref.Values) {
			break
		}
		r := ref.Values[i]
		if !m.Available || !r.Available || r.Seconds <= 0 {
			continue
		}
		ratios = append(ratios, m.Seconds/r.Seconds)
	}
	if len(ratios) == 0 {
		return 0, false
	}
	return stat.GeometricMean(ratios, nil), true
}

// SpeedupLabel formats Speedup for display.
func (d Dataset) SpeedupLabel(library string) string {
	x, ok := d.Speedup(library)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.1fx slower", x)
}

func (d Dataset) find(library string) (Series, bool) {
	for _, s := range d.Series {
		if s.Library == library {
			return s, true
		}
	}
	return Series{}, false
}
