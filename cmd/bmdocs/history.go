package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/history"
	"github.com/blazemetrics/bmdocs/pkg/ui"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recently viewed pages",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "forget every recorded visit")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	visits, err := store.Recent(cfg.History.Limit)
	if err != nil {
		return err
	}
	if len(visits) == 0 {
		fmt.Println("No pages viewed yet.")
		return nil
	}
	now := time.Now()
	for _, v := range visits {
		fmt.Printf("%-28s %-30s %s\n", v.Title, v.Path, ui.FormatTimeRel(v.VisitedAt, now))
	}
	return nil
}
