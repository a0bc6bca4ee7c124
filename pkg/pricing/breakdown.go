package pricing

// Item is one costing input: a named volume measurement, a manual
// entry, or a failed decode carrying its error.
type Item struct {
	Name      string
	VolumeMm3 float64
	Err       error

	// manualGrams overrides the computed filament mass when set
	manualGrams float64
	manualMass  bool
}

// NewItem creates a measured item from a mesh volume in cubic millimeters
func NewItem(name string, volumeMm3 float64) Item {
	return Item{Name: name, VolumeMm3: volumeMm3}
}

// FailedItem creates an item whose mesh could not be decoded. The error
// is carried through the breakdown untouched and the item is excluded
// from all sums.
func FailedItem(name string, err error) Item {
	return Item{Name: name, Err: err}
}

// ManualResinItem creates a manual entry from a resin volume in
// milliliters. Support and energy math apply as if it were measured.
func ManualResinItem(name string, volumeMl float64) Item {
	return Item{Name: name, VolumeMm3: volumeMl * 1000}
}

// ManualFilamentItem creates a manual entry from a filament mass in
// grams. The mass is taken verbatim instead of being derived from
// geometry, infill and density.
func ManualFilamentItem(name string, grams float64) Item {
	return Item{Name: name, manualGrams: grams, manualMass: true}
}

// ItemBreakdown is the per-item costing output. Exactly one of the
// medium-specific quantity groups is populated, matching the medium the
// breakdown was computed for. A non-nil Err means the item failed to
// decode and carries no quantities.
type ItemBreakdown struct {
	Name      string
	VolumeMm3 float64

	// Resin quantities (milliliters)
	ResinMl   float64 // model volume plus supports when included
	SupportMl float64

	// Filament quantity
	Grams float64

	MaterialCost float64
	EnergyCost   float64 // zero when energy is aggregated per project
	TotalCost    float64

	Err error
}

// AggregateBreakdown sums the per-item results over all succeeded items
type AggregateBreakdown struct {
	VolumeMm3    float64
	ResinMl      float64
	Grams        float64
	MaterialCost float64
	EnergyCost   float64
	TotalCost    float64

	// ProjectEnergyCost is the single batch-level energy charge applied
	// in per_project mode; zero otherwise.
	ProjectEnergyCost float64

	ItemCount  int
	ValidItems int
}

// FailedItems returns how many items carried a decode failure
func (a AggregateBreakdown) FailedItems() int {
	return a.ItemCount - a.ValidItems
}
