package main

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/blazemetrics/bmdocs/pkg/config"
	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/history"
	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/search"
)

// app holds everything the commands share once startup has finished.
type app struct {
	cfg      *config.Config
	library  *content.Library
	index    *navigation.Index
	searcher navigation.Searcher
	history  *history.Store

	mu      sync.Mutex
	retired []navigation.Searcher
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `bmdocs init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp loads pages, the navigation index and, when wanted, the history
// store concurrently, then builds the configured searcher over them.
func openApp(cfg *config.Config, withHistory bool) (*app, error) {
	a := &app{cfg: cfg}

	var g errgroup.Group
	g.Go(func() error {
		lib, err := loadLibrary(cfg.Content.Dir)
		if err != nil {
			return fmt.Errorf("loading pages: %w", err)
		}
		a.library = lib
		return nil
	})
	g.Go(func() error {
		idx, err := navigation.NewDefault()
		if err != nil {
			return fmt.Errorf("loading navigation: %w", err)
		}
		a.index = idx
		return nil
	})
	if withHistory && cfg.History.Enabled {
		g.Go(func() error {
			// History is optional; TryOpen logs and returns nil on failure.
			a.history = history.TryOpen(cfg.HistoryPath())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s, err := a.newSearcher(a.library, navigation.Mode(cfg.Search.Mode), cfg.Search.MaxResults)
	if err != nil {
		return nil, err
	}
	a.searcher = s
	return a, nil
}

func loadLibrary(dir string) (*content.Library, error) {
	if dir == "" {
		return content.Default()
	}
	return content.LoadDir(dir)
}

func (a *app) newSearcher(lib *content.Library, mode navigation.Mode, limit int) (navigation.Searcher, error) {
	s, err := navigation.NewSearcher(a.index, mode,
		navigation.WithLimit(limit),
		navigation.WithBodies(lib.Bodies()),
	)
	if err != nil {
		return nil, fmt.Errorf("building %s search: %w", mode, err)
	}
	return s, nil
}

// reload rebuilds the searcher for a reloaded library. The previous searcher
// may still be in use by the UI, so it is only released on Close.
func (a *app) reload(lib *content.Library) navigation.Searcher {
	s, err := a.newSearcher(lib, navigation.Mode(a.cfg.Search.Mode), a.cfg.Search.MaxResults)
	if err != nil {
		log.Printf("Warning: keeping previous search index: %v", err)
		return nil
	}
	a.mu.Lock()
	a.retired = append(a.retired, a.searcher)
	a.searcher = s
	a.mu.Unlock()
	return s
}

func (a *app) searchOptions() []search.Option {
	return []search.Option{
		search.WithDebounce(time.Duration(a.cfg.Search.DebounceMS) * time.Millisecond),
		search.WithMaxResults(a.cfg.Search.MaxResults),
	}
}

// Close releases the searchers and the history database.
func (a *app) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range append(a.retired, a.searcher) {
		if err := navigation.CloseSearcher(s); err != nil {
			log.Printf("Warning: closing search index: %v", err)
		}
	}
	a.retired = nil
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			log.Printf("Warning: closing history: %v", err)
		}
	}
}

// setupLogging sends the standard logger to path (or a debug file) while the
// TUI owns the terminal, and discards it otherwise.
func setupLogging(path string, debug bool) (func(), error) {
	if path == "" && debug {
		path = "bmdocs-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "bmdocs")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { f.Close() }, nil
}
