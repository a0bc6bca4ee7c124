package pricing

import "math"

// ComputeBreakdown prices every item and sums the results. It is a pure
// transform: the same items and parameters always produce the same
// breakdowns, and failed items keep their slot so that outputs line up
// with inputs positionally.
func ComputeBreakdown(items []Item, params Parameters) ([]ItemBreakdown, AggregateBreakdown) {
	breakdowns := make([]ItemBreakdown, len(items))
	aggregate := AggregateBreakdown{ItemCount: len(items)}

	perItemEnergy := 0.0
	if params.IncludeEnergy && params.Aggregation == PerItem {
		perItemEnergy = energyCost(params)
	}

	for i, item := range items {
		if item.Err != nil {
			breakdowns[i] = ItemBreakdown{Name: item.Name, Err: item.Err}
			continue
		}

		b := priceItem(item, params)
		b.EnergyCost = perItemEnergy
		b.TotalCost = b.MaterialCost + b.EnergyCost
		breakdowns[i] = b

		aggregate.VolumeMm3 += b.VolumeMm3
		aggregate.ResinMl += b.ResinMl
		aggregate.Grams += b.Grams
		aggregate.MaterialCost += b.MaterialCost
		aggregate.EnergyCost += b.EnergyCost
		aggregate.TotalCost += b.TotalCost
		aggregate.ValidItems++
	}

	// In per_project mode the energy cost is charged exactly once, on
	// top of the summed per-item material costs.
	if params.IncludeEnergy && params.Aggregation == PerProject {
		aggregate.ProjectEnergyCost = energyCost(params)
		aggregate.EnergyCost += aggregate.ProjectEnergyCost
		aggregate.TotalCost += aggregate.ProjectEnergyCost
	}

	return breakdowns, aggregate
}

// priceItem derives the medium-specific quantities and material cost
func priceItem(item Item, params Parameters) ItemBreakdown {
	b := ItemBreakdown{Name: item.Name, VolumeMm3: item.VolumeMm3}

	switch params.Medium {
	case MediumFilament:
		if item.manualMass {
			b.Grams = item.manualGrams
		} else {
			// Shell walls are printed regardless of infill density, so
			// the two contributions add.
			volumeCm3 := item.VolumeMm3 / 1000
			effectiveCm3 := volumeCm3 * (params.InfillPercent/100 + params.ShellFactor)
			b.Grams = effectiveCm3 * params.FilamentDensity
		}
		b.MaterialCost = b.Grams * (params.PricePerKg / 1000)

	default: // resin
		volumeMl := item.VolumeMm3 / 1000
		b.SupportMl = volumeMl * (params.SupportPercent / 100)
		b.ResinMl = volumeMl
		if params.IncludeSupports {
			b.ResinMl += b.SupportMl
		}
		b.MaterialCost = b.ResinMl * (params.PricePerLiter / 1000)
	}

	return b
}

// energyCost returns one energy charge. Negative rates or durations are
// clamped to zero instead of failing.
func energyCost(params Parameters) float64 {
	return (params.PrinterPowerWatts / 1000) *
		math.Max(params.PrintHours, 0) *
		math.Max(params.EnergyRate, 0)
}
