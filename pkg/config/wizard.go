package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

// RunWizard asks for the common settings, starting from base, and returns
// the edited copy. The caller decides where to save it.
func RunWizard(base *Config) (*Config, error) {
	cfg := *base
	cfg.Breakpoints = make(map[string]int, len(base.Breakpoints))
	for k, v := range base.Breakpoints {
		cfg.Breakpoints[k] = v
	}

	modes := make([]string, len(navigation.Modes))
	for i, m := range navigation.Modes {
		modes[i] = string(m)
	}
	debounce := strconv.Itoa(cfg.Search.DebounceMS)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(Themes...)...).
				Value(&cfg.Theme),
			huh.NewInput().
				Title("Start page").
				Description("Route opened on launch, e.g. /docs").
				Value(&cfg.StartPage).
				Validate(validateRoute),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Search mode").
				Options(huh.NewOptions(modes...)...).
				Value(&cfg.Search.Mode),
			huh.NewInput().
				Title("Search delay (ms)").
				Value(&debounce).
				Validate(validateDebounce),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remember recently viewed pages?").
				Affirmative("Yes").
				Negative("No").
				Value(&cfg.History.Enabled),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("config wizard: %w", err)
	}

	cfg.Search.DebounceMS, _ = strconv.Atoi(strings.TrimSpace(debounce))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateRoute(s string) error {
	if !strings.HasPrefix(strings.TrimSpace(s), "/") {
		return fmt.Errorf("must begin with /")
	}
	return nil
}

func validateDebounce(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number of milliseconds")
	}
	if n < 0 || n > 5000 {
		return fmt.Errorf("must be between 0 and 5000")
	}
	return nil
}
