package extract

import (
	"regexp"
	"strings"

	"goreview/adapters/tabular"
	"goreview/domain/review"
)

// rolePatterns are tried in priority order against the lowercased owner and
// first title. The first match wins, so the short ladder codes must stay
// ahead of the generic engineer titles.
var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsd[1-3]\b`),
	regexp.MustCompile(`(?i)\bsde\s*[1-3]\b`),
	regexp.MustCompile(`(?i)\bstaff\s+engineer\b`),
	regexp.MustCompile(`(?i)\bsenior\s+engineer\b`),
	regexp.MustCompile(`(?i)\blead\s+engineer\b`),
	regexp.MustCompile(`(?i)\bprincipal\s+engineer\b`),
}

// InferRole derives the canonical role label from owner and title text.
// Returns review.RoleUnknown when nothing matches.
func InferRole(owner, title string) string {
	text := strings.ToLower(owner + " " + title)
	for _, pattern := range rolePatterns {
		if match := pattern.FindString(text); match != "" {
			return strings.ToUpper(match)
		}
	}
	return review.RoleUnknown
}

// InferMetadata reads the owner block from the first data row. An empty table
// yields empty metadata with an unknown role.
func InferMetadata(rows []tabular.Row) review.Metadata {
	if len(rows) == 0 {
		return review.Metadata{Role: review.RoleUnknown}
	}
	first := rows[0]
	return review.Metadata{
		Owner:      strings.TrimSpace(first.Get(colOwner)),
		OwnerEmail: strings.TrimSpace(first.Get(colOwnerEmail)),
		Team:       strings.TrimSpace(first.Get(colTeams)),
		Role:       InferRole(first.Get(colOwner), first.Get(colTitle)),
	}
}
