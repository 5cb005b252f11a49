package extract

import (
	"regexp"

	"goreview/adapters/tabular"
	"goreview/domain/review"
)

// metricPatterns are applied per title, in order, each with find-all
// semantics. The cascade is not exclusive: a percentage range also yields its
// two bare percentages, and the duplicates stay in the dataset.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d*)\s*%\s+to\s+(\d+\.?\d*)\s*%`),
	regexp.MustCompile(`(?i)(\d+)\s*(s|ms|hr|hrs|hours|minutes|mins)\s+to\s+(\d+)\s*(s|ms|hr|hrs|hours|minutes|mins)`),
	regexp.MustCompile(`(?i)Rs\s+(\d+)\s+to\s+Rs\s+(\d+)`),
	regexp.MustCompile(`(?i)(\d+\.\d+\.\d+)\s+to\s+(\d+\.\d+\.\d+)`),
	regexp.MustCompile(`(?i)(\d+)\+?\s+(events|dependencies|items|files|repositories|repos)`),
	regexp.MustCompile(`(?i)~?(\d+)×\s+(faster|slower|more|less)`),
	regexp.MustCompile(`(?i)~?(\d+\.?\d*)\s*%`),
	regexp.MustCompile(`(?i)(?:by|reduced)\s+(\d+)\s*%`),
}

// ExtractMetrics mines quantitative fragments from every row title. Ordering
// is deterministic: row order, then pattern order, then left to right.
func ExtractMetrics(rows []tabular.Row) []review.Metric {
	metrics := []review.Metric{}
	for _, row := range rows {
		title := row.Get(colTitle)
		for _, pattern := range metricPatterns {
			for _, match := range pattern.FindAllStringSubmatch(title, -1) {
				metrics = append(metrics, review.Metric{
					Text:        match[0],
					FullContext: title,
					Groups:      match[1:],
				})
			}
		}
	}
	return metrics
}
