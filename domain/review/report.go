package review

// Status grades a validated section or a whole review.
type Status string

const (
	StatusExcellent        Status = "EXCELLENT"
	StatusGood             Status = "GOOD"
	StatusNeedsWork        Status = "NEEDS_WORK"
	StatusPoor             Status = "POOR"
	StatusError            Status = "ERROR"
	StatusNeedsImprovement Status = "NEEDS_IMPROVEMENT"
)

// StatusForScore grades a single section score.
func StatusForScore(score int) Status {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 60:
		return StatusNeedsWork
	default:
		return StatusPoor
	}
}

// OverallStatusForAverage grades a whole review. The unrounded average goes
// in here; rounding is presentation only.
func OverallStatusForAverage(avg float64) Status {
	switch {
	case avg >= 90:
		return StatusExcellent
	case avg >= 75:
		return StatusGood
	default:
		return StatusNeedsImprovement
	}
}

// ValidationResult is the outcome of checking one section response.
type ValidationResult struct {
	Errors    []string `json:"errors"`
	Warnings  []string `json:"warnings"`
	Score     int      `json:"score"`
	Status    Status   `json:"status"`
	WordCount int      `json:"word_count"`
}

// ReportSummary aggregates the per-section results of a whole review.
type ReportSummary struct {
	AverageScore      float64 `json:"average_score"`
	TotalErrors       int     `json:"total_errors"`
	TotalWarnings     int     `json:"total_warnings"`
	SectionsValidated int     `json:"sections_validated"`
	OverallStatus     Status  `json:"overall_status"`
}

// Report is the whole-review validation outcome.
type Report struct {
	Sections map[string]ValidationResult `json:"sections"`
	Summary  ReportSummary               `json:"summary"`
}
