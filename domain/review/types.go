package review

// RoleUnknown is the fallback role when no ladder pattern matches the owner row.
const RoleUnknown = "UNKNOWN"

// Metadata identifies whose objectives a dataset describes.
type Metadata struct {
	Owner      string `json:"owner"`
	OwnerEmail string `json:"owner_email"`
	Team       string `json:"team"`
	Role       string `json:"role"`
}

// Objective is one row of the objectives export, filed under its parent
// category in the index.
type Objective struct {
	Title     string `json:"title"`
	State     string `json:"state"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
	Progress  string `json:"progress"`
	Status    string `json:"status"`
}

// Metric is one quantitative fragment mined from an objective title. Text is
// the whole match, FullContext the title it came from, Groups the submatches.
type Metric struct {
	Text        string   `json:"text"`
	FullContext string   `json:"full_context"`
	Groups      []string `json:"groups"`
}

// Summary is derived from the assembled dataset parts and never mutated on
// its own.
type Summary struct {
	TotalObjectives   int            `json:"total_objectives"`
	Categories        []string       `json:"categories"`
	CategoryCounts    map[string]int `json:"category_counts"`
	MetricsCount      int            `json:"metrics_count"`
	TechnologiesCount int            `json:"technologies_count"`
}

// Dataset is the complete extraction result for one objectives export.
type Dataset struct {
	Metadata     Metadata        `json:"metadata"`
	Objectives   *ObjectiveIndex `json:"objectives"`
	Metrics      []Metric        `json:"metrics"`
	Technologies []string        `json:"technologies"`
	Summary      Summary         `json:"summary"`
}
