// Package pricing derives material and energy cost breakdowns from
// per-model volumes and a set of process parameters.
package pricing

import "fmt"

// Medium selects the print process the cost math branches on
type Medium string

const (
	MediumResin    Medium = "resin"
	MediumFilament Medium = "filament"
)

// ParseMedium converts a medium name into a Medium value
func ParseMedium(s string) (Medium, error) {
	switch Medium(s) {
	case MediumResin, MediumFilament:
		return Medium(s), nil
	}
	return "", fmt.Errorf("unknown medium %q (expected resin or filament)", s)
}

// Aggregation selects whether the energy cost is charged on every item
// or exactly once for the whole batch.
type Aggregation string

const (
	PerItem    Aggregation = "per_item"
	PerProject Aggregation = "per_project"
)

// ParseAggregation converts an aggregation-mode name into an Aggregation value
func ParseAggregation(s string) (Aggregation, error) {
	switch Aggregation(s) {
	case PerItem, PerProject:
		return Aggregation(s), nil
	}
	return "", fmt.Errorf("unknown aggregation mode %q (expected per_item or per_project)", s)
}

// Parameters configures one breakdown computation. All fields are
// caller-supplied; percentages are expressed 0-100 and are not range
// checked, matching the permissive process inputs of slicer tooling.
type Parameters struct {
	Medium Medium

	// Resin pricing
	PricePerLiter float64 // currency per liter

	// Filament pricing
	PricePerKg      float64 // currency per kilogram
	FilamentDensity float64 // g/cm³
	InfillPercent   float64 // 0-100
	ShellFactor     float64 // wall-volume fraction, additive to infill

	// Supports
	SupportPercent  float64 // 0-100, fraction of model volume
	IncludeSupports bool

	// Energy
	IncludeEnergy     bool
	Aggregation       Aggregation
	EnergyRate        float64 // currency per kWh
	PrinterPowerWatts float64
	PrintHours        float64
}

// DefaultParameters returns the documented parameter defaults
func DefaultParameters() Parameters {
	return Parameters{
		Medium:          MediumResin,
		FilamentDensity: 1.24,
		InfillPercent:   20,
		ShellFactor:     0.15,
		SupportPercent:  20,
		IncludeSupports: true,
		IncludeEnergy:   true,
		Aggregation:     PerItem,
	}
}
