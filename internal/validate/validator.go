// Package validate scores candidate review-section responses against an
// extracted dataset with an ordered battery of advisory checks.
package validate

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"goreview/domain/review"
)

// Validator runs the check battery for one dataset. It precomputes the
// distinct metric texts so presence counting stays stable when the extractor
// reported overlapping duplicates.
type Validator struct {
	role         string
	team         string
	metricTexts  []string // distinct, first-seen order
	technologies []string
	battery      []check
}

// New builds a validator for the dataset.
func New(ds *review.Dataset) *Validator {
	v := &Validator{
		role:         ds.Metadata.Role,
		team:         ds.Metadata.Team,
		technologies: ds.Technologies,
	}
	seen := make(map[string]bool, len(ds.Metrics))
	for _, m := range ds.Metrics {
		if !seen[m.Text] {
			seen[m.Text] = true
			v.metricTexts = append(v.metricTexts, m.Text)
		}
	}
	v.battery = []check{
		{"length", v.checkLength},
		{"role_mention", v.checkRoleMention},
		{"team_mention", v.checkTeamMention},
		{"opening_phrase", v.checkOpeningPhrase},
		{"metric_presence", v.checkMetricPresence},
		{"generic_phrases", v.checkGenericPhrases},
		{"technology_mention", v.checkTechnologyMention},
		{"sentence_variety", v.checkSentenceVariety},
		{"repeated_openers", v.checkRepeatedOpeners},
		{"numeric_evidence", v.checkNumericEvidence},
		{"passive_voice", v.checkPassiveVoice},
	}
	return v
}

// ValidateSection runs the battery over one response. The score starts at 100,
// penalties subtract, and the result clamps at zero. An empty or
// whitespace-only response short-circuits to an ERROR result.
func (v *Validator) ValidateSection(section, response string) review.ValidationResult {
	if strings.TrimSpace(response) == "" {
		return review.ValidationResult{
			Errors:   []string{"Section is empty"},
			Warnings: []string{},
			Score:    0,
			Status:   review.StatusError,
		}
	}

	errors := []string{}
	warnings := []string{}
	score := 100
	for _, c := range v.battery {
		for _, f := range c.run(section, response) {
			switch f.Severity {
			case SeverityError:
				errors = append(errors, f.Message)
			case SeverityWarning:
				warnings = append(warnings, f.Message)
			}
			score -= f.Penalty
		}
	}
	if score < 0 {
		score = 0
	}

	return review.ValidationResult{
		Errors:    errors,
		Warnings:  warnings,
		Score:     score,
		Status:    review.StatusForScore(score),
		WordCount: len(strings.Fields(response)),
	}
}

// ValidateReview validates every provided section. Empty sections count
// toward the average, the section tally, and the error total.
func (v *Validator) ValidateReview(responses map[string]string) *review.Report {
	results := make(map[string]review.ValidationResult, len(responses))
	scores := make([]float64, 0, len(responses))
	totalErrors := 0
	totalWarnings := 0

	for _, section := range orderedSections(responses) {
		result := v.ValidateSection(section, responses[section])
		results[section] = result
		scores = append(scores, float64(result.Score))
		totalErrors += len(result.Errors)
		totalWarnings += len(result.Warnings)
	}

	summary := review.ReportSummary{
		TotalErrors:       totalErrors,
		TotalWarnings:     totalWarnings,
		SectionsValidated: len(scores),
		OverallStatus:     review.StatusNeedsImprovement,
	}
	if len(scores) > 0 {
		mean, _ := stats.Mean(scores)
		rounded, _ := stats.Round(mean, 1)
		summary.AverageScore = rounded
		summary.OverallStatus = review.OverallStatusForAverage(mean)
	}

	return &review.Report{Sections: results, Summary: summary}
}

// orderedSections returns the response keys in form order, then any unknown
// sections sorted by name. Penalties commute, so ordering only keeps message
// aggregation and reports reproducible.
func orderedSections(responses map[string]string) []string {
	ordered := make([]string, 0, len(responses))
	seen := make(map[string]bool, len(responses))
	for _, s := range review.Sections {
		if _, ok := responses[s.Name]; ok {
			ordered = append(ordered, s.Name)
			seen[s.Name] = true
		}
	}
	extras := make([]string, 0)
	for name := range responses {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}
