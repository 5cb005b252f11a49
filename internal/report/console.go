// Package report renders datasets and validation reports for people: console
// summaries and the Markdown prompt pack.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"goreview/domain/review"
)

const rule = "======================================================================"

var statusGlyphs = map[review.Status]string{
	review.StatusExcellent: "✅",
	review.StatusGood:      "✓",
	review.StatusNeedsWork: "⚠️",
	review.StatusPoor:      "❌",
	review.StatusError:     "🚫",
}

func glyph(status review.Status) string {
	if g, ok := statusGlyphs[status]; ok {
		return g
	}
	return "❓"
}

// WriteDatasetSummary prints the parsed-data overview shown after ingestion.
func WriteDatasetSummary(w io.Writer, ds *review.Dataset) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "📊 PERFORMANCE DATA SUMMARY")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\n👤 Owner: %s\n", ds.Metadata.Owner)
	fmt.Fprintf(w, "🏢 Team: %s\n", ds.Metadata.Team)
	fmt.Fprintf(w, "📌 Role: %s\n", ds.Metadata.Role)

	fmt.Fprintf(w, "\n📈 Total Objectives: %d\n", ds.Summary.TotalObjectives)
	fmt.Fprintln(w, "📂 By Category:")
	if ds.Objectives != nil {
		for _, category := range ds.Objectives.Categories() {
			fmt.Fprintf(w, "   • %s: %d\n", category, len(ds.Objectives.Get(category)))
		}
	}

	fmt.Fprintf(w, "\n🔢 Metrics Found: %d\n", ds.Summary.MetricsCount)
	fmt.Fprintf(w, "🔧 Technologies: %d\n", ds.Summary.TechnologiesCount)

	if len(ds.Technologies) > 0 {
		shown := ds.Technologies
		if len(shown) > 8 {
			shown = shown[:8]
		}
		fmt.Fprintf(w, "   %s\n", strings.Join(shown, ", "))
		if len(ds.Technologies) > 8 {
			fmt.Fprintf(w, "   ... and %d more\n", len(ds.Technologies)-8)
		}
	}
}

// WriteValidationReport prints the section-by-section analysis with the
// summary block and status-dependent recommendations.
func WriteValidationReport(w io.Writer, rep *review.Report) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "📊 PERFORMANCE REVIEW VALIDATION REPORT")
	fmt.Fprintln(w, rule)

	summary := rep.Summary
	fmt.Fprintf(w, "\n🎯 Overall Status: %s\n", summary.OverallStatus)
	fmt.Fprintf(w, "📈 Average Quality Score: %.1f/100\n", summary.AverageScore)
	fmt.Fprintf(w, "❌ Total Errors: %d\n", summary.TotalErrors)
	fmt.Fprintf(w, "⚠️  Total Warnings: %d\n", summary.TotalWarnings)
	fmt.Fprintf(w, "📄 Sections Validated: %d\n", summary.SectionsValidated)

	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "SECTION-BY-SECTION ANALYSIS")
	fmt.Fprintln(w, rule)

	for _, name := range reportOrder(rep.Sections) {
		result := rep.Sections[name]
		fmt.Fprintf(w, "\n%s %s\n", glyph(result.Status), name)
		fmt.Fprintf(w, "   Score: %d/100 | Status: %s\n", result.Score, result.Status)
		if result.WordCount > 0 {
			fmt.Fprintf(w, "   Words: %d\n", result.WordCount)
		}
		if len(result.Errors) > 0 {
			fmt.Fprintln(w, "   ❌ Errors:")
			for _, msg := range result.Errors {
				fmt.Fprintf(w, "      • %s\n", msg)
			}
		}
		if len(result.Warnings) > 0 {
			fmt.Fprintln(w, "   ⚠️  Warnings:")
			for _, msg := range result.Warnings {
				fmt.Fprintf(w, "      • %s\n", msg)
			}
		}
	}

	fmt.Fprintln(w, "\n"+rule)

	switch summary.OverallStatus {
	case review.StatusNeedsImprovement:
		fmt.Fprintln(w, "\n💡 RECOMMENDATIONS:")
		fmt.Fprintln(w, "   • Focus on sections with scores below 75")
		fmt.Fprintln(w, "   • Add specific metrics and examples")
		fmt.Fprintln(w, "   • Ensure all sections mention role and team")
		fmt.Fprintln(w, "   • Use active voice and varied sentence structures")
	case review.StatusGood:
		fmt.Fprintln(w, "\n💡 RECOMMENDATIONS:")
		fmt.Fprintln(w, "   • Address any remaining warnings")
		fmt.Fprintln(w, "   • Enhance sections with generic language")
		fmt.Fprintln(w, "   • Add more specific metrics where possible")
	default:
		fmt.Fprintln(w, "\n🎉 Excellent work! Your review is comprehensive and data-driven.")
	}
}

// reportOrder walks sections in review-form order, then any unknown names
// sorted. Maps would otherwise shuffle the report between runs.
func reportOrder(sections map[string]review.ValidationResult) []string {
	ordered := make([]string, 0, len(sections))
	seen := make(map[string]bool, len(sections))
	for _, s := range review.Sections {
		if _, ok := sections[s.Name]; ok {
			ordered = append(ordered, s.Name)
			seen[s.Name] = true
		}
	}
	extras := make([]string, 0)
	for name := range sections {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(ordered, extras...)
}
