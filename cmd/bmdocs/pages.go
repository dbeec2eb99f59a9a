package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/navigation"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List every page of the documentation site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := navigation.NewDefault()
		if err != nil {
			return err
		}
		printTree(idx.Tree(), 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

func printTree(items []navigation.Item, depth int) {
	for _, it := range items {
		indent := strings.Repeat("  ", depth)
		fmt.Printf("%s%-*s %s\n", indent, 30-len(indent), it.Name, it.Href)
		printTree(it.Children, depth+1)
	}
}
