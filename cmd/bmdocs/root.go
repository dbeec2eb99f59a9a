package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/config"
	"github.com/blazemetrics/bmdocs/pkg/content"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
	"github.com/blazemetrics/bmdocs/pkg/ui"
)

var (
	cfgFile   string
	debug     bool
	startPage string
)

var rootCmd = &cobra.Command{
	Use:   "bmdocs",
	Short: "Browse the BlazeMetrics documentation in your terminal",
	Long: `bmdocs is a terminal browser for the BlazeMetrics documentation site:
pages, code examples, benchmarks and guides with search, live layout for
any terminal width and a history of recently viewed pages.`,
	Args:          cobra.NoArgs,
	RunE:          runBrowser,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to bmdocs-debug.log")
	rootCmd.Flags().StringVarP(&startPage, "page", "p", "", "route to open on launch, e.g. /docs/api")
}

func runBrowser(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if startPage != "" {
		cfg.StartPage = startPage
	}
	table, err := cfg.Table()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	a, err := openApp(cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	m := ui.NewModel(ui.Config{
		Library:       a.library,
		Index:         a.index,
		Searcher:      a.searcher,
		History:       a.history,
		Table:         table,
		Size:          responsive.NewTerminalSource(os.Stdout).Size(),
		StartPage:     cfg.StartPage,
		Style:         cfg.Theme,
		HistoryLimit:  cfg.History.Limit,
		SearchOptions: a.searchOptions(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.Content.Dir != "" && cfg.Content.Watch {
		w, err := content.Watch(cfg.Content.Dir, func(lib *content.Library, err error) {
			if err != nil {
				log.Printf("Warning: content reload failed: %v", err)
				return
			}
			p.Send(ui.LibraryReloadedMsg{Library: lib, Searcher: a.reload(lib)})
		})
		if err != nil {
			log.Printf("Warning: live reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running bmdocs: %w", err)
	}
	return nil
}
