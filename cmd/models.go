package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofsm/internal/fuelmodel"
	"github.com/spf13/cobra"
)

var modelsMoisture float64

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the standard stylized fuel models",
	Long: `List the standard stylized fuel models available as presets for the
spread and compare commands.

With --mf, also shows the no-wind spread rate of each model at that fuel
moisture content and flags the fastest-spreading model.

Examples:
  gofsm models
  gofsm models --mf 0.08`,
	Run: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.Flags().Float64VarP(&modelsMoisture, "mf", "m", -1, "Fuel moisture content for rate preview (fraction)")
}

func runModels(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STANDARD FUEL MODELS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	showRates := modelsMoisture >= 0

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if showRates {
		fmt.Fprintf(w, "  ID\tDescription\tσ (ft²/ft³)\tw_0 (lb/ft²)\tδ (ft)\tM_x\tR (ft/s)\n")
		fmt.Fprintf(w, "  ──\t───────────\t───────────\t────────────\t──────\t───\t────────\n")
	} else {
		fmt.Fprintf(w, "  ID\tDescription\tσ (ft²/ft³)\tw_0 (lb/ft²)\tδ (ft)\tM_x\n")
		fmt.Fprintf(w, "  ──\t───────────\t───────────\t────────────\t──────\t───\n")
	}

	for _, m := range fuelmodel.StandardModels {
		if showRates {
			fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.3f\t%.1f\t%.2f\t%.3f\n",
				m.ID, m.Description, m.SAVRatio, m.FuelLoad, m.Depth,
				m.MoistureExtinction, m.RateOfSpread(modelsMoisture))
		} else {
			fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.3f\t%.1f\t%.2f\n",
				m.ID, m.Description, m.SAVRatio, m.FuelLoad, m.Depth,
				m.MoistureExtinction)
		}
	}
	w.Flush()
	fmt.Println()

	if showRates {
		rate, governing := fuelmodel.FastestSpread(fuelmodel.StandardModels, modelsMoisture)
		if rate > 0 {
			fmt.Printf("  Fastest spread at M_f = %.2f: model %s (%s) at %.3f ft/s\n",
				modelsMoisture, governing.ID, governing.Description, rate)
			fmt.Println()
		}
	}
}
