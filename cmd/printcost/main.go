package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printfab/printcost/version"
)

var rootCmd = &cobra.Command{
	Use:   "printcost",
	Short: "A CLI tool for estimating 3D-print material cost from STL files",
	Long: `printcost estimates how much a 3D print will cost. It reads STL files
(ASCII or binary), derives each model's enclosed volume and applies a
configurable resin or filament pricing model with supports, infill and
energy on top.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
