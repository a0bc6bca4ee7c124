package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/printfab/printcost/pkg/pricing"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing preset: %v", err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writePreset(t, `
[printer]
name = "Saturn 2"
medium = "resin"
power_watts = 120
energy_rate = 0.32

[material]
name = "standard grey"
price_per_liter = 35
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	params := p.Apply(pricing.DefaultParameters())

	if params.Medium != pricing.MediumResin {
		t.Errorf("Medium failed: got %v", params.Medium)
	}
	if params.PrinterPowerWatts != 120 {
		t.Errorf("PrinterPowerWatts failed: got %v", params.PrinterPowerWatts)
	}
	if params.EnergyRate != 0.32 {
		t.Errorf("EnergyRate failed: got %v", params.EnergyRate)
	}
	if params.PricePerLiter != 35 {
		t.Errorf("PricePerLiter failed: got %v", params.PricePerLiter)
	}

	// Fields the preset does not set keep their defaults
	if params.FilamentDensity != 1.24 {
		t.Errorf("unset density should keep default, got %v", params.FilamentDensity)
	}
	if params.SupportPercent != 20 {
		t.Errorf("unset support percent should keep default, got %v", params.SupportPercent)
	}
}

func TestApplyExplicitZeroOverrides(t *testing.T) {
	path := writePreset(t, `
[printer]
power_watts = 0
energy_rate = 0
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	base := pricing.DefaultParameters()
	base.PrinterPowerWatts = 120
	base.EnergyRate = 0.32
	base.PricePerLiter = 35

	params := p.Apply(base)

	// Keys the file defines win even when set to zero
	if params.PrinterPowerWatts != 0 {
		t.Errorf("explicit zero power_watts should override, got %v", params.PrinterPowerWatts)
	}
	if params.EnergyRate != 0 {
		t.Errorf("explicit zero energy_rate should override, got %v", params.EnergyRate)
	}

	// Keys the file never mentions stay untouched
	if params.PricePerLiter != 35 {
		t.Errorf("undefined price_per_liter should keep base value, got %v", params.PricePerLiter)
	}
}

func TestLoadRejectsUnknownMedium(t *testing.T) {
	path := writePreset(t, `
[printer]
medium = "chocolate"
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown medium")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/no/such/preset.toml"); err == nil {
		t.Error("expected error for missing preset file")
	}
}
