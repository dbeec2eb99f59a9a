package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
	"github.com/blazemetrics/bmdocs/pkg/responsive"
)

const defaultOutputWidth = 80

var (
	searchMode  string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search the documentation from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchMode, "mode", "", "search mode: substring, fuzzy or fulltext (default from config)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if searchMode != "" {
		if !navigation.ValidMode(navigation.Mode(searchMode)) {
			return fmt.Errorf("unknown search mode %q", searchMode)
		}
		cfg.Search.Mode = searchMode
	}
	if searchLimit > 0 {
		cfg.Search.MaxResults = searchLimit
	}

	a, err := openApp(cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	results := a.searcher.Search(query)
	if len(results) > cfg.Search.MaxResults {
		results = results[:cfg.Search.MaxResults]
	}
	if len(results) == 0 {
		fmt.Printf("No results found for %q\n", query)
		return nil
	}

	printResults(os.Stdout, results, responsive.NewTerminalSource(os.Stdout))
	return nil
}

// printResults writes one line per result, truncated to the width reported
// by src (80 when src is not a terminal). Mobile widths drop the route column.
func printResults(w io.Writer, results []navigation.Item, src responsive.Source) {
	width := src.Size().Width
	if width <= 0 {
		width = defaultOutputWidth
	}
	narrow := responsive.TerminalTable.Class(width) == responsive.Mobile

	nameWidth := 0
	for _, it := range results {
		nameWidth = max(nameWidth, runewidth.StringWidth(it.Name))
	}
	nameWidth = min(nameWidth, 28)
	for _, it := range results {
		name := runewidth.FillRight(runewidth.Truncate(it.Name, nameWidth, "…"), nameWidth)
		line := fmt.Sprintf("%s  %-28s  %s", name, it.Href, it.Description)
		if narrow {
			line = fmt.Sprintf("%s  %s", name, it.Description)
		}
		fmt.Fprintln(w, runewidth.Truncate(strings.TrimRight(line, " "), width, "…"))
	}
}
