package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gofsm/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gofsm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gofsm v%s\n", version.Version)
		fmt.Println("Surface Fire Spread Calculator")
		fmt.Println("Based on the Rothermel surface fire spread model (RMRS-GTR-371)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
