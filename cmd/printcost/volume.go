package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printfab/printcost/pkg/stl"
)

var volumeCmd = &cobra.Command{
	Use:   "volume [files...]",
	Short: "Display the enclosed volume of STL files",
	Long: `Show the enclosed volume of each STL file, computed by signed
tetrahedron summation. Meshes that are not watertight underestimate
their volume; no watertightness check is performed.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)
}

func runVolume(cmd *cobra.Command, args []string) {
	failed := false

	for _, filename := range args {
		model, err := stl.Parse(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", filename, err)
			failed = true
			continue
		}

		fmt.Printf("File: %s\n", filename)
		if model.Name != "" {
			fmt.Printf("  Name: %s\n", model.Name)
		}
		fmt.Printf("  Triangles: %d\n", model.TriangleCount())
		fmt.Printf("  Surface Area: %.6f mm²\n", model.SurfaceArea())
		fmt.Printf("  Volume: %.6f mm³ (%.6f mL)\n\n", model.VolumeMm3(), model.VolumeMm3()/1000)
	}

	if failed {
		os.Exit(1)
	}
}
