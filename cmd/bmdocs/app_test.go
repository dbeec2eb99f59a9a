package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blazemetrics/bmdocs/pkg/config"
	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
)

func TestOpenApp_EmbeddedContent(t *testing.T) {
	for _, mode := range []string{"substring", "fuzzy", "fulltext"} {
		t.Run(mode, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.History.Enabled = false
			cfg.Search.Mode = mode

			a, err := openApp(cfg, true)
			if err != nil {
				t.Fatalf("openApp failed: %v", err)
			}
			defer a.Close()

			if a.history != nil {
				t.Error("Expected no history store when disabled")
			}
			if _, ok := a.library.Page("/"); !ok {
				t.Error("Expected embedded home page")
			}
			results := a.searcher.Search("guardrails")
			if len(results) == 0 {
				t.Fatal("Expected results for guardrails")
			}
			if len(results) > cfg.Search.MaxResults {
				t.Errorf("Expected at most %d results, got %d", cfg.Search.MaxResults, len(results))
			}
		})
	}
}

func TestOpenApp_MissingContentDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.History.Enabled = false
	cfg.Content.Dir = filepath.Join(t.TempDir(), "missing")

	if _, err := openApp(cfg, false); err == nil {
		t.Error("Expected error for missing content directory")
	}
}

func TestApp_ReloadRetiresSearcher(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.History.Enabled = false
	cfg.Search.Mode = "fulltext"

	a, err := openApp(cfg, false)
	if err != nil {
		t.Fatalf("openApp failed: %v", err)
	}
	defer a.Close()

	lib, err := content.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	old := a.searcher
	s := a.reload(lib)
	if s == nil {
		t.Fatal("Expected new searcher")
	}
	if len(a.retired) != 1 || a.retired[0] != old {
		t.Errorf("Expected previous searcher retired, got %d retired", len(a.retired))
	}
	// The retired searcher keeps answering until Close.
	if len(old.Search("metrics")) == 0 {
		t.Error("Expected retired searcher still usable")
	}
}

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	path := filepath.Join(t.TempDir(), "bmdocs.log")
	closeLog, err := setupLogging(path, false)
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	closeLog()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected log file created, got %v", err)
	}

	closeLog, err = setupLogging("", false)
	if err != nil {
		t.Fatalf("setupLogging without file failed: %v", err)
	}
	closeLog()
}

func TestSearchCommand_ReturnsError(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		searchMode = ""
		cfgFile = config.DefaultPath()
	})

	rootCmd.SetArgs([]string{"search", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--mode", "telepathy", "guardrails"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected error for unknown search mode")
	}
	if !strings.Contains(err.Error(), "telepathy") {
		t.Errorf("Expected error naming the mode, got %v", err)
	}
	if strings.Contains(out.String(), "Usage:") {
		t.Errorf("Expected usage to stay silent on runtime errors, got %q", out.String())
	}
}

func TestPrintResults_Width(t *testing.T) {
	items := []navigation.Item{
		{Name: "Guardrails", Href: "/docs/guardrails", Description: "Safety checks"},
	}
	tests := []struct {
		name     string
		width    int
		wantHref bool
	}{
		{"desktop", 120, true},
		{"mobile", 60, false},
		{"not a terminal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printResults(&buf, items, responsive.NewBroadcaster(responsive.Size{Width: tt.width, Height: 24}))
			got := buf.String()
			if strings.Contains(got, "/docs/guardrails") != tt.wantHref {
				t.Errorf("Expected route shown=%v, got %q", tt.wantHref, got)
			}
			if !strings.Contains(got, "Safety checks") {
				t.Errorf("Expected description, got %q", got)
			}
		})
	}
}
