package chart

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDataset_MaxIgnoresUnavailable(t *testing.T) {
	d := Default()
	if got := d.Max(); got != 14.567 {
		t.Errorf("Expected max 14.567, got %v", got)
	}
	if got := (Dataset{}).Max(); got != 0 {
		t.Errorf("Expected 0 for empty dataset, got %v", got)
	}
}

func TestDataset_BarFraction(t *testing.T) {
	d := Default()
	tests := []struct {
		name string
		m    Measurement
		want float64
	}{
		{"max is full height", secs(14.567), 1},
		{"tiny value clamps to minimum", secs(0.001), minBarFraction},
		{"unavailable is a stub", na, naBarFraction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.BarFraction(tt.m); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMeasurement_Label(t *testing.T) {
	if got := secs(0.285).Label(); got != "0.285s" {
		t.Errorf("Expected 0.285s, got %q", got)
	}
	if got := na.Label(); got != "N/A" {
		t.Errorf("Expected N/A, got %q", got)
	}
}

func TestDataset_Speedup(t *testing.T) {
	d := Default()
	x, ok := d.Speedup("NLTK")
	if !ok {
		t.Fatal("Expected speedup for NLTK")
	}
	if want := 14.567 / 0.285; math.Abs(x-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, x)
	}

	x, ok = d.Speedup("HF Evaluate")
	if !ok || x < 16 || x > 18 {
		t.Errorf("Expected HF Evaluate speedup near 17x, got %v (ok=%v)", x, ok)
	}
	if _, ok := d.Speedup("Unknown"); ok {
		t.Error("Expected no speedup for unknown library")
	}
	if !strings.HasSuffix(d.SpeedupLabel("NLTK"), "x slower") {
		t.Errorf("unexpected label %q", d.SpeedupLabel("NLTK"))
	}
}

func TestSeries_Badge(t *testing.T) {
	for _, s := range Default().Series {
		want := "Slower"
		if s.Library == Reference {
			want = "Winner"
		}
		if s.Badge() != want {
			t.Errorf("%s: Expected %s, got %s", s.Library, want, s.Badge())
		}
	}
}

func TestSaveSnapshot_SVGAndPNG(t *testing.T) {
	tmp := t.TempDir()
	cases := []struct {
		name   string
		format string
	}{
		{"svg", "chart.svg"},
		{"png", "chart.png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := filepath.Join(tmp, tc.format)
			if err := SaveSnapshot(Options{Path: out}); err != nil {
				t.Fatalf("SaveSnapshot error: %v", err)
			}
			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("output not created: %v", err)
			}
			if info.Size() == 0 {
				t.Fatalf("output file is empty")
			}
		})
	}

	data, err := os.ReadFile(filepath.Join(tmp, "chart.svg"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", Title, "N/A", "BlazeMetrics"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("svg output missing %q", want)
		}
	}
}

func TestSaveSnapshot_FormatOverridesExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "chart.out")
	if err := SaveSnapshot(Options{Path: out, Format: "PNG"}); err != nil {
		t.Fatalf("SaveSnapshot error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not created: %v", err)
	}
}

func TestSaveSnapshot_InvalidFormat(t *testing.T) {
	err := SaveSnapshot(Options{Path: "chart.txt", Format: "txt"})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if err := SaveSnapshot(Options{}); err == nil {
		t.Fatal("Expected error for missing path")
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#DC143C")
	if math.Abs(r-220.0/255) > 1e-9 || math.Abs(g-20.0/255) > 1e-9 || math.Abs(b-60.0/255) > 1e-9 {
		t.Errorf("unexpected rgb %v %v %v", r, g, b)
	}
	if r, _, _ := parseHex("bad"); r != 0.5 {
		t.Errorf("Expected grey fallback, got %v", r)
	}
}
