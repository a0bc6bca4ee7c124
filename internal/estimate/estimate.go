// Package estimate runs the decode-measure-price pipeline over a batch
// of mesh files.
package estimate

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/printfab/printcost/pkg/pricing"
	"github.com/printfab/printcost/pkg/stl"
)

// Result is one full batch computation
type Result struct {
	Items     []pricing.ItemBreakdown
	Aggregate pricing.AggregateBreakdown
}

// Run measures all files, appends any manual entries and prices the
// whole batch. A file that fails to decode occupies its slot with an
// error and does not abort the others.
func Run(files []string, manual []pricing.Item, params pricing.Parameters) Result {
	items := MeasureFiles(files)
	items = append(items, manual...)

	breakdowns, aggregate := pricing.ComputeBreakdown(items, params)
	return Result{Items: breakdowns, Aggregate: aggregate}
}

// MeasureFiles decodes and measures each file concurrently. Every file
// is independent, so the work fans out one goroutine per file; results
// land at the input's index to keep output order stable for display.
func MeasureFiles(files []string) []pricing.Item {
	items := make([]pricing.Item, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			items[i] = measureFile(file)
		}(i, file)
	}
	wg.Wait()

	return items
}

func measureFile(file string) pricing.Item {
	name := filepath.Base(file)

	m, err := stl.Parse(file)
	if err != nil {
		return pricing.FailedItem(name, fmt.Errorf("could not decode mesh: %w", err))
	}

	// The mesh is discarded after this; only the scalar survives
	return pricing.NewItem(name, m.VolumeMm3())
}
