package extract

import (
	"strings"

	"goreview/adapters/tabular"
	"goreview/domain/review"
)

// GroupObjectives files rows under their parent objective title. Rows missing
// either title are dropped without comment; categories keep first-encounter
// order. Progress falls back to "0" only when the export never had the column.
func GroupObjectives(rows []tabular.Row) *review.ObjectiveIndex {
	index := review.NewObjectiveIndex()
	for _, row := range rows {
		parent := strings.TrimSpace(row.Get(colParent))
		title := strings.TrimSpace(row.Get(colTitle))
		if parent == "" || title == "" {
			continue
		}
		index.Add(parent, review.Objective{
			Title:     title,
			State:     row.Get(colState),
			StartDate: row.Get(colStartDate),
			DueDate:   row.Get(colDueDate),
			Progress:  row.GetOr(colProgress, "0"),
			Status:    row.Get(colStatus),
		})
	}
	return index
}
