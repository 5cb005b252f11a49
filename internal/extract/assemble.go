// Package extract turns an objectives export table into the structured
// review dataset: owner metadata, grouped objectives, mined metrics, and the
// technology inventory.
package extract

import (
	"log"

	"goreview/adapters/tabular"
	"goreview/domain/review"
)

// Assemble runs the full extraction pipeline over one table. Assembly is
// deterministic: the same table produces an equal dataset.
func Assemble(table *tabular.Table) *review.Dataset {
	ds := &review.Dataset{
		Metadata:     InferMetadata(table.Rows),
		Objectives:   GroupObjectives(table.Rows),
		Metrics:      ExtractMetrics(table.Rows),
		Technologies: DetectTechnologies(table.Rows),
	}
	ds.Summary = summarize(ds)

	log.Printf("[Extract] Assembled dataset: %d objectives in %d categories, %d metrics, %d technologies",
		ds.Summary.TotalObjectives, len(ds.Summary.Categories), ds.Summary.MetricsCount, ds.Summary.TechnologiesCount)
	return ds
}

// summarize derives the dataset rollup from the composed parts.
func summarize(ds *review.Dataset) review.Summary {
	counts := make(map[string]int, ds.Objectives.Len())
	for _, category := range ds.Objectives.Categories() {
		counts[category] = len(ds.Objectives.Get(category))
	}
	return review.Summary{
		TotalObjectives:   ds.Objectives.Total(),
		Categories:        ds.Objectives.Categories(),
		CategoryCounts:    counts,
		MetricsCount:      len(ds.Metrics),
		TechnologiesCount: len(ds.Technologies),
	}
}
