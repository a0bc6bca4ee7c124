package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/printfab/printcost/internal/preset"
	"github.com/printfab/printcost/pkg/pricing"
)

// addParameterFlags registers the shared process-parameter flags on a
// command. Defaults mirror pricing.DefaultParameters.
func addParameterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.String("medium", string(pricing.MediumResin), "print medium (resin or filament)")
	flags.Float64("price-per-liter", 0, "resin price per liter")
	flags.Float64("price-per-kg", 0, "filament price per kilogram")
	flags.Float64("density", 1.24, "filament density in g/cm³")
	flags.Float64("infill", 20, "infill percentage (0-100)")
	flags.Float64("shell-factor", 0.15, "wall-volume fraction added to infill")
	flags.Float64("support", 20, "support volume percentage (0-100)")
	flags.Bool("include-supports", true, "add support volume to resin usage")
	flags.Bool("include-energy", true, "add energy cost to the estimate")
	flags.String("aggregation", string(pricing.PerItem), "energy cost mode (per_item or per_project)")
	flags.Float64("energy-rate", 0, "energy price per kWh")
	flags.Float64("power", 0, "printer power draw in watts")
	flags.Float64("hours", 0, "print duration in hours")
	flags.String("preset", "", "TOML printer/material preset file")

	flags.Float64Slice("resin-ml", nil, "manual resin entry in milliliters (repeatable)")
	flags.Float64Slice("grams", nil, "manual filament entry in grams (repeatable)")
}

// buildParameters assembles the process parameters for one run:
// documented defaults, then the preset file, then any explicitly set
// flags, in that precedence order.
func buildParameters(cmd *cobra.Command) (pricing.Parameters, error) {
	flags := cmd.Flags()
	params := pricing.DefaultParameters()

	if path, _ := flags.GetString("preset"); path != "" {
		p, err := preset.Load(path)
		if err != nil {
			return params, err
		}
		params = p.Apply(params)
	}

	if flags.Changed("medium") {
		s, _ := flags.GetString("medium")
		medium, err := pricing.ParseMedium(s)
		if err != nil {
			return params, err
		}
		params.Medium = medium
	}
	if flags.Changed("aggregation") {
		s, _ := flags.GetString("aggregation")
		mode, err := pricing.ParseAggregation(s)
		if err != nil {
			return params, err
		}
		params.Aggregation = mode
	}

	setFloat := func(name string, dst *float64) {
		if flags.Changed(name) {
			*dst, _ = flags.GetFloat64(name)
		}
	}
	setFloat("price-per-liter", &params.PricePerLiter)
	setFloat("price-per-kg", &params.PricePerKg)
	setFloat("density", &params.FilamentDensity)
	setFloat("infill", &params.InfillPercent)
	setFloat("shell-factor", &params.ShellFactor)
	setFloat("support", &params.SupportPercent)
	setFloat("energy-rate", &params.EnergyRate)
	setFloat("power", &params.PrinterPowerWatts)
	setFloat("hours", &params.PrintHours)

	if flags.Changed("include-supports") {
		params.IncludeSupports, _ = flags.GetBool("include-supports")
	}
	if flags.Changed("include-energy") {
		params.IncludeEnergy, _ = flags.GetBool("include-energy")
	}

	return params, nil
}

// manualItems turns the --resin-ml and --grams flags into manual
// entries. Each flag only makes sense for its medium.
func manualItems(cmd *cobra.Command, params pricing.Parameters) ([]pricing.Item, error) {
	flags := cmd.Flags()

	resinMl, _ := flags.GetFloat64Slice("resin-ml")
	grams, _ := flags.GetFloat64Slice("grams")

	if len(resinMl) > 0 && params.Medium != pricing.MediumResin {
		return nil, fmt.Errorf("--resin-ml requires --medium resin")
	}
	if len(grams) > 0 && params.Medium != pricing.MediumFilament {
		return nil, fmt.Errorf("--grams requires --medium filament")
	}

	var items []pricing.Item
	for i, ml := range resinMl {
		items = append(items, pricing.ManualResinItem(fmt.Sprintf("manual entry %d", i+1), ml))
	}
	for i, g := range grams {
		items = append(items, pricing.ManualFilamentItem(fmt.Sprintf("manual entry %d", i+1), g))
	}
	return items, nil
}
