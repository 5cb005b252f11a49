package report

import (
	"fmt"
	"strings"

	"goreview/domain/review"
	"goreview/internal/prompt"
)

// PromptDocument renders the Markdown pack bundling all twelve section
// prompts, grouped the way the review form groups its questions.
func PromptDocument(ds *review.Dataset) (string, error) {
	lines := []string{
		"# Performance Review Prompts\n",
		fmt.Sprintf("**Generated for:** %s\n", ds.Metadata.Owner),
		fmt.Sprintf("**Role:** %s\n", ds.Metadata.Role),
		fmt.Sprintf("**Team:** %s\n", ds.Metadata.Team),
		"\n---\n",
	}

	group := ""
	for _, section := range review.Sections {
		if g := section.Group(); g != group {
			group = g
			lines = append(lines, fmt.Sprintf("\n### %s\n", g))
		}
		text, err := prompt.ForSection(section.Number, ds)
		if err != nil {
			return "", err
		}
		lines = append(lines,
			fmt.Sprintf("\n## Section %d: %s\n", section.Number, section.Name),
			"```\n",
			text,
			"\n```\n",
			"\n---\n")
	}

	return strings.Join(lines, "\n"), nil
}
