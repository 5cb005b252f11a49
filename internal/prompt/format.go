package prompt

import (
	"fmt"
	"strings"

	"goreview/domain/review"
)

func formatObjectives(objectives []review.Objective) string {
	if len(objectives) == 0 {
		return "No specific objectives in this category."
	}
	lines := make([]string, 0, len(objectives))
	for i, obj := range objectives {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, obj.Title))
	}
	return strings.Join(lines, "\n")
}

// formatAllObjectives renders every category in export order, capped at ten
// titles per category.
func formatAllObjectives(ix *review.ObjectiveIndex) string {
	if ix == nil {
		return ""
	}
	var lines []string
	for _, category := range ix.Categories() {
		objectives := ix.Get(category)
		lines = append(lines, "\n"+strings.ToUpper(category)+":")
		for i, obj := range objectives {
			if i == 10 {
				break
			}
			lines = append(lines, "  - "+obj.Title)
		}
		if len(objectives) > 10 {
			lines = append(lines, fmt.Sprintf("  ... and %d more", len(objectives)-10))
		}
	}
	return strings.Join(lines, "\n")
}

// formatMetrics lists distinct metric texts with a truncated context, capped
// at fifteen entries.
func formatMetrics(metrics []review.Metric) string {
	if len(metrics) == 0 {
		return "No quantitative metrics found."
	}
	seen := make(map[string]bool, len(metrics))
	var lines []string
	for _, m := range metrics {
		if seen[m.Text] {
			continue
		}
		seen[m.Text] = true
		lines = append(lines, fmt.Sprintf("- %s (from: %s...)", m.Text, truncateRunes(m.FullContext, 80)))
	}
	if len(lines) > 15 {
		lines = lines[:15]
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func formatTechnologies(technologies []string) string {
	return strings.Join(technologies, ", ")
}

func categoryObjectives(ds *review.Dataset, category string) []review.Objective {
	if ds.Objectives == nil {
		return nil
	}
	return ds.Objectives.Get(category)
}
