package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofsm/internal/rothermel"
	"github.com/spf13/cobra"
)

var (
	areaRate  float64
	areaHours float64
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Estimate the area burned over a burn duration",
	Long: `Estimate the area burned (ft²) by a fire spreading at a constant
rate for a given number of hours.

The model is a plain rate × time product: it assumes the rate is in ft/s
and applies no growth-shape or wind-driven ellipse correction.

Examples:
  # Area burned in 6 hours at 0.267 ft/s
  gofsm area --rate 0.267 --hours 6`,
	Run: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().Float64VarP(&areaRate, "rate", "r", 0, "Rate of spread (ft/s) [required]")
	areaCmd.Flags().Float64VarP(&areaHours, "hours", "t", 0, "Burn duration (hours) [required]")

	areaCmd.MarkFlagRequired("rate")
	areaCmd.MarkFlagRequired("hours")
}

func runArea(cmd *cobra.Command, args []string) {
	area := rothermel.BurnedArea(areaRate, areaHours)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BURNED AREA ESTIMATE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Rate of spread:\t%.3f ft/s\n", areaRate)
	fmt.Fprintf(w, "  Burn duration:\t%.2f h\n", areaHours)
	fmt.Fprintf(w, "  Burned area:\t%.1f ft²\n", area)
	fmt.Fprintf(w, "  \t%.3f acres\n", area/43560)
	w.Flush()
	fmt.Println()
}
