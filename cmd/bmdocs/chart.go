package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blazemetrics/bmdocs/pkg/chart"
)

var (
	chartOut    string
	chartFormat string
	chartWidth  int
	chartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Export the performance comparison chart as SVG or PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := chart.SaveSnapshot(chart.Options{
			Path:   chartOut,
			Format: chartFormat,
			Width:  chartWidth,
			Height: chartHeight,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", chartOut)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "", "output file (.svg or .png)")
	chartCmd.Flags().StringVar(&chartFormat, "format", "", "svg or png (default from the file extension)")
	chartCmd.Flags().IntVar(&chartWidth, "width", 0, "image width in pixels")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "image height in pixels")
	_ = chartCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(chartCmd)
}
