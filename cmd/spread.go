package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gofsm/internal/diagram"
	"github.com/alexiusacademia/gofsm/internal/fuelmodel"
	"github.com/alexiusacademia/gofsm/internal/rothermel"
	"github.com/spf13/cobra"
)

var (
	// Fuel bed inputs
	spreadSAV   float64
	spreadLoad  float64
	spreadDepth float64
	spreadMx    float64
	spreadMf    float64

	// Fuel particle inputs
	spreadHeat    float64
	spreadTotMin  float64
	spreadEffMin  float64
	spreadDensity float64

	// Preset
	spreadFuelModel string

	// Diagram options
	spreadShowDiagram bool
	spreadExportFile  string
)

var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Calculate the steady-state rate of fire spread",
	Long: `Calculate the steady-state rate of surface fire spread (ft/s) from
fuel bed parameters using the Rothermel model (no-wind, no-slope form).

The calculation reports every intermediate quantity of the model:
damping coefficients, packing ratios, reaction velocity and intensity,
propagating flux ratio, effective heating number and heat of preignition.

Examples:
  # Dense tall grass with 8% fuel moisture
  gofsm spread --sav 2000 --load 1 --depth 3 --mx 0.15 --mf 0.08

  # Same bed from the standard fuel model catalog
  gofsm spread --fuel-model GR7 --mf 0.08

  # With ASCII moisture-response diagram and PNG export
  gofsm spread --fuel-model GR7 --mf 0.08 --diagram -o curve.png`,
	Run: runSpread,
}

func init() {
	rootCmd.AddCommand(spreadCmd)

	// Fuel bed flags
	spreadCmd.Flags().Float64VarP(&spreadSAV, "sav", "s", 0, "Surface-area-to-volume ratio σ (ft²/ft³)")
	spreadCmd.Flags().Float64VarP(&spreadLoad, "load", "w", 0, "Oven-dry fuel load w_0 (lb/ft²)")
	spreadCmd.Flags().Float64VarP(&spreadDepth, "depth", "d", 0, "Fuel bed depth δ (ft)")
	spreadCmd.Flags().Float64Var(&spreadMx, "mx", 0, "Dead fuel moisture of extinction M_x (fraction)")
	spreadCmd.Flags().Float64VarP(&spreadMf, "mf", "m", 0, "Fuel moisture content M_f (fraction) [required]")

	// Fuel particle flags (standard Rothermel values by default)
	spreadCmd.Flags().Float64Var(&spreadHeat, "heat", rothermel.StdHeatContent, "Low heat content h (Btu/lb)")
	spreadCmd.Flags().Float64Var(&spreadTotMin, "total-mineral", rothermel.StdTotalMineral, "Total mineral content S_T (fraction)")
	spreadCmd.Flags().Float64Var(&spreadEffMin, "effective-mineral", rothermel.StdEffectiveMineral, "Effective mineral content S_e (fraction)")
	spreadCmd.Flags().Float64Var(&spreadDensity, "density", rothermel.StdParticleDensity, "Oven-dry particle density ρ_p (lb/ft³)")

	// Preset flag
	spreadCmd.Flags().StringVarP(&spreadFuelModel, "fuel-model", "f", "", "Standard fuel model ID (see 'gofsm models')")

	// Mark required flags
	spreadCmd.MarkFlagRequired("mf")

	// Diagram options
	spreadCmd.Flags().BoolVar(&spreadShowDiagram, "diagram", false, "Show ASCII moisture-response diagram")
	spreadCmd.Flags().StringVarP(&spreadExportFile, "output", "o", "", "Export moisture-response curve to file (png, svg, pdf)")
}

// spreadBed builds the fuel bed from the preset or the explicit flags
func spreadBed() (*rothermel.FuelBed, error) {
	if spreadFuelModel != "" {
		model, ok := fuelmodel.Lookup(spreadFuelModel)
		if !ok {
			return nil, fmt.Errorf("unknown fuel model %q, see 'gofsm models'", spreadFuelModel)
		}
		return model.Bed(), nil
	}

	if spreadSAV <= 0 || spreadLoad <= 0 || spreadDepth <= 0 || spreadMx <= 0 {
		return nil, fmt.Errorf("provide --sav, --load, --depth and --mx, or a --fuel-model preset")
	}

	bed := rothermel.NewFuelBed(spreadSAV, spreadLoad, spreadDepth, spreadMx)
	bed.HeatContent = spreadHeat
	bed.TotalMineral = spreadTotMin
	bed.EffectiveMineral = spreadEffMin
	bed.ParticleDensity = spreadDensity
	return bed, nil
}

func runSpread(cmd *cobra.Command, args []string) {
	bed, err := spreadBed()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := bed.Spread(spreadMf)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ROTHERMEL SURFACE FIRE SPREAD - NO WIND, NO SLOPE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  SAV Ratio (σ):\t%.0f ft²/ft³\n", bed.SAVRatio)
	fmt.Fprintf(w, "  Fuel Load (w_0):\t%.3f lb/ft²\n", bed.FuelLoad)
	fmt.Fprintf(w, "  Bed Depth (δ):\t%.2f ft\n", bed.Depth)
	fmt.Fprintf(w, "  Moisture of Extinction (M_x):\t%.3f\n", bed.MoistureExtinction)
	fmt.Fprintf(w, "  Fuel Moisture (M_f):\t%.3f\n", bed.Moisture)
	fmt.Fprintf(w, "  Heat Content (h):\t%.0f Btu/lb\n", bed.HeatContent)
	fmt.Fprintf(w, "  Total Mineral (S_T):\t%.4f\n", bed.TotalMineral)
	fmt.Fprintf(w, "  Effective Mineral (S_e):\t%.4f\n", bed.EffectiveMineral)
	fmt.Fprintf(w, "  Particle Density (ρ_p):\t%.1f lb/ft³\n", bed.ParticleDensity)
	w.Flush()
	fmt.Println()

	// Damping coefficients
	fmt.Println("DAMPING COEFFICIENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Moisture ratio (M_f/M_x):\t%.4f\n", result.MoistureRatio)
	fmt.Fprintf(w, "  Moisture damping (η_M):\t%.4f\n", result.MoistureDamping)
	fmt.Fprintf(w, "  Mineral damping (η_S):\t%.4f\n", result.MineralDamping)
	w.Flush()
	fmt.Println()

	// Fuel bed properties
	fmt.Println("FUEL BED PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Net fuel load (w_n):\t%.4f lb/ft²\n", result.NetFuelLoad)
	fmt.Fprintf(w, "  Bulk density (ρ_b):\t%.4f lb/ft³\n", result.BulkDensity)
	fmt.Fprintf(w, "  Packing ratio (β):\t%.5f\n", result.PackingRatio)
	fmt.Fprintf(w, "  Optimum packing ratio (β_op):\t%.5f\n", result.OptimumPackingRatio)
	w.Flush()
	fmt.Println()

	// Reaction
	fmt.Println("REACTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape parameter (A):\t%.4f\n", result.ShapeParameter)
	fmt.Fprintf(w, "  Max reaction velocity (Γ_max):\t%.4f\n", result.MaxReactionVelocity)
	fmt.Fprintf(w, "  Reaction velocity (Γ):\t%.4f\n", result.ReactionVelocity)
	fmt.Fprintf(w, "  Reaction intensity (I_R):\t%.2f\n", result.ReactionIntensity)
	w.Flush()
	fmt.Println()

	// Heat source and sink
	fmt.Println("HEAT SOURCE / HEAT SINK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Propagating flux ratio (ξ):\t%.5f\n", result.PropagatingFlux)
	fmt.Fprintf(w, "  Effective heating number (ε):\t%.4f\n", result.HeatingNumber)
	fmt.Fprintf(w, "  Heat of preignition (Q_ig):\t%.2f Btu/lb\n", result.HeatPreignition)
	w.Flush()
	fmt.Println()

	// Result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.CanSustain {
		fmt.Println(diagram.DrawSummaryBox("RATE OF SPREAD", []string{
			fmt.Sprintf("R = %.3f ft/s", result.Rate),
			fmt.Sprintf("  = %.1f ft/h", result.Rate*3600),
		}))
		fmt.Printf("  Status: %s\n", result.Message)
	} else {
		fmt.Println(diagram.DrawSummaryBox("NO SPREAD", []string{
			"R = 0 ft/s",
		}))
		fmt.Printf("  Status: %s\n", result.Message)
	}
	fmt.Println()

	curveData := diagram.SpreadCurveData{
		Bed:      bed,
		Moisture: spreadMf,
		Rate:     result.Rate,
	}

	// Show diagram if requested
	if spreadShowDiagram {
		fmt.Println(diagram.DrawMoistureCurve(curveData))
	}

	// Export diagram if requested
	if spreadExportFile != "" {
		err := diagram.ExportMoistureCurve(curveData, spreadExportFile)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", spreadExportFile)
		}
	}
}
