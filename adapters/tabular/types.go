package tabular

// Row represents one data row keyed by column header
type Row map[string]string

// Get returns the cell value for field, or "" when the field is absent.
func (r Row) Get(field string) string {
	return r[field]
}

// GetOr returns the cell value for field, or fallback when the field is
// absent from the row entirely. A present column with an empty cell still
// returns the empty cell.
func (r Row) GetOr(field, fallback string) string {
	if v, ok := r[field]; ok {
		return v
	}
	return fallback
}

// Table is the in-memory form of one objectives export
type Table struct {
	Headers []string // Column headers, trimmed
	Rows    []Row    // Data rows
}
