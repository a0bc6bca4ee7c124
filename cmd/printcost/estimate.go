package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printfab/printcost/internal/estimate"
	"github.com/printfab/printcost/pkg/pricing"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [files...]",
	Short: "Estimate the material and energy cost of STL files",
	Long: `Compute a per-item and aggregate cost breakdown for one or more STL
files. Manual entries can be added with --resin-ml or --grams without
providing a file.`,
	Args: cobra.ArbitraryArgs,
	Run:  runEstimate,
}

func init() {
	addParameterFlags(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) {
	params, err := buildParameters(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	manual, err := manualItems(cmd, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 && len(manual) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no STL files or manual entries given")
		os.Exit(1)
	}

	result := estimate.Run(args, manual, params)
	printResult(result, params)
}

// printResult renders the per-item and aggregate breakdown
func printResult(result estimate.Result, params pricing.Parameters) {
	fmt.Println("Cost Estimate")
	fmt.Println("=============")
	fmt.Printf("Medium: %s\n\n", params.Medium)

	fmt.Println("Items:")
	for _, item := range result.Items {
		fmt.Printf("  %s\n", item.Name)
		if item.Err != nil {
			fmt.Printf("    Error: %v\n", item.Err)
			continue
		}

		fmt.Printf("    Volume: %.6f mm³\n", item.VolumeMm3)
		if params.Medium == pricing.MediumFilament {
			fmt.Printf("    Filament: %.6f g\n", item.Grams)
		} else {
			fmt.Printf("    Resin: %.6f mL", item.ResinMl)
			if params.IncludeSupports {
				fmt.Printf(" (supports %.6f mL)", item.SupportMl)
			}
			fmt.Println()
		}
		fmt.Printf("    Material Cost: %.4f\n", item.MaterialCost)
		if params.IncludeEnergy && params.Aggregation == pricing.PerItem {
			fmt.Printf("    Energy Cost: %.4f\n", item.EnergyCost)
		}
		fmt.Printf("    Total: %.4f\n", item.TotalCost)
	}

	agg := result.Aggregate
	fmt.Println("\nAggregate:")
	fmt.Printf("  Items: %d (%d valid, %d failed)\n", agg.ItemCount, agg.ValidItems, agg.FailedItems())
	fmt.Printf("  Volume: %.6f mm³\n", agg.VolumeMm3)
	if params.Medium == pricing.MediumFilament {
		fmt.Printf("  Filament: %.6f g\n", agg.Grams)
	} else {
		fmt.Printf("  Resin: %.6f mL\n", agg.ResinMl)
	}
	fmt.Printf("  Material Cost: %.4f\n", agg.MaterialCost)
	if params.IncludeEnergy {
		if params.Aggregation == pricing.PerProject {
			fmt.Printf("  Energy Cost (project): %.4f\n", agg.ProjectEnergyCost)
		} else {
			fmt.Printf("  Energy Cost: %.4f\n", agg.EnergyCost)
		}
	}
	fmt.Printf("  Total Cost: %.4f\n", agg.TotalCost)
}
