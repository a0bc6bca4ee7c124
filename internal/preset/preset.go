// Package preset loads printer and material presets from TOML files
// and overlays them onto process parameters.
package preset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/printfab/printcost/pkg/pricing"
)

// Preset is one saved printer/material combination. The decode metadata
// is kept so that a field explicitly set to zero can be told apart from
// one the file never mentions.
type Preset struct {
	Printer  Printer  `toml:"printer"`
	Material Material `toml:"material"`

	meta toml.MetaData
}

// Printer holds the process side of a preset
type Printer struct {
	Name       string  `toml:"name"`
	Medium     string  `toml:"medium"`
	PowerWatts float64 `toml:"power_watts"`
	EnergyRate float64 `toml:"energy_rate"`
}

// Material holds the pricing side of a preset
type Material struct {
	Name          string  `toml:"name"`
	PricePerLiter float64 `toml:"price_per_liter"`
	PricePerKg    float64 `toml:"price_per_kg"`
	Density       float64 `toml:"density"`
}

// Load reads a preset file. A medium name that is neither resin nor
// filament is rejected here rather than surfacing later as a zero-cost
// breakdown.
func Load(path string) (*Preset, error) {
	var p Preset
	meta, err := toml.DecodeFile(path, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset: %w", err)
	}
	p.meta = meta

	if p.meta.IsDefined("printer", "medium") {
		if _, err := pricing.ParseMedium(p.Printer.Medium); err != nil {
			return nil, fmt.Errorf("invalid preset %s: %w", path, err)
		}
	}

	return &p, nil
}

// Apply overlays the preset onto params. Only keys the file actually
// defines are overridden, so flags and defaults survive for the rest
// while an explicit zero in the file still takes effect.
func (p *Preset) Apply(params pricing.Parameters) pricing.Parameters {
	if p.meta.IsDefined("printer", "medium") {
		medium, _ := pricing.ParseMedium(p.Printer.Medium)
		params.Medium = medium
	}
	if p.meta.IsDefined("printer", "power_watts") {
		params.PrinterPowerWatts = p.Printer.PowerWatts
	}
	if p.meta.IsDefined("printer", "energy_rate") {
		params.EnergyRate = p.Printer.EnergyRate
	}
	if p.meta.IsDefined("material", "price_per_liter") {
		params.PricePerLiter = p.Material.PricePerLiter
	}
	if p.meta.IsDefined("material", "price_per_kg") {
		params.PricePerKg = p.Material.PricePerKg
	}
	if p.meta.IsDefined("material", "density") {
		params.FilamentDensity = p.Material.Density
	}
	return params
}
