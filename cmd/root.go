package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gofsm/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofsm",
	Short: "Surface Fire Spread Calculator",
	Long: `gofsm - Go Fire Spread Model

A CLI tool for computing the steady-state rate of surface fire spread
using the Rothermel model (no-wind, no-slope form).

This tool helps fire behavior analysts perform:
  - Rate of spread calculation from fuel bed parameters
  - Burned area estimation over a burn duration
  - Moisture scenario comparison (e.g. current vs projected climate)
  - Calculations from standard stylized fuel models

All calculations follow the basic Rothermel surface fire spread model
(USDA Forest Service, RMRS-GTR-371).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofsm v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Fire Spread Model                                    ║")
		fmt.Printf("  ║   %s ©  %s                                ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing the steady-state rate of surface")
		fmt.Println("  fire spread using the Rothermel model.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rate of spread from ten fuel bed parameters")
		fmt.Println("    • Burned area estimation over a burn duration")
		fmt.Println("    • Moisture scenario comparison with added-area report")
		fmt.Println("    • Standard stylized fuel model presets")
		fmt.Println()
		fmt.Println("  Use 'gofsm --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
