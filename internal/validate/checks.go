package validate

import (
	"fmt"
	"strings"
	"unicode"

	"goreview/domain/review"
)

// Severity of a single finding.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Finding is one advisory message plus its score penalty. Findings never
// abort validation.
type Finding struct {
	Severity Severity
	Message  string
	Penalty  int
}

// check pairs a name with its rule for the ordered battery.
type check struct {
	name string
	run  func(section, response string) []Finding
}

func errorf(penalty int, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityError, Penalty: penalty, Message: fmt.Sprintf(format, args...)}
}

func warnf(penalty int, format string, args ...interface{}) Finding {
	return Finding{Severity: SeverityWarning, Penalty: penalty, Message: fmt.Sprintf(format, args...)}
}

// metricSections lists the sections whose narratives are expected to carry
// quantitative evidence.
var metricSections = map[string]bool{
	review.SectionEngineeringExcellence: true,
	review.SectionTechInitiatives:       true,
	review.SectionImpact:                true,
	review.SectionAmbiguityComplexity:   true,
}

// techSections lists the sections expected to reference concrete tooling.
var techSections = map[string]bool{
	review.SectionTechInitiatives:       true,
	review.SectionEngineeringExcellence: true,
	review.SectionRoadmapDelivery:       true,
}

// genericPhrases flag vague wording, in battery order.
var genericPhrases = []struct {
	phrase     string
	suggestion string
}{
	{"various projects", "Be specific about which projects"},
	{"multiple times", "Specify how many times or give examples"},
	{"several initiatives", "Name the initiatives"},
	{"numerous improvements", "Quantify the improvements"},
	{"enhanced quality", "Specify how quality was enhanced"},
	{"improved performance", "Use specific metrics"},
	{"increased efficiency", "Quantify the efficiency gain"},
	{"better experience", "Describe what improved"},
}

// passivePhrases hint at passive voice; counted by presence, not repetition.
var passivePhrases = []string{
	"was implemented",
	"were created",
	"was developed",
	"were completed",
}

func (v *Validator) checkLength(section, response string) []Finding {
	words := len(strings.Fields(response))
	switch {
	case words < 40:
		return []Finding{errorf(20, "Response too short (%d words). Need at least 60 words.", words)}
	case words < 60:
		return []Finding{warnf(5, "Response is short (%d words). Aim for 80-150 words.", words)}
	case words > 200:
		return []Finding{warnf(5, "Response is long (%d words). Consider condensing to under 180 words.", words)}
	}
	return nil
}

func (v *Validator) checkRoleMention(section, response string) []Finding {
	if v.role != review.RoleUnknown && !strings.Contains(response, v.role) {
		return []Finding{errorf(15, "Response must mention role: '%s'", v.role)}
	}
	return nil
}

func (v *Validator) checkTeamMention(section, response string) []Finding {
	if v.team != "" && !strings.Contains(response, v.team) {
		return []Finding{errorf(15, "Response must mention team: '%s'", v.team)}
	}
	return nil
}

func (v *Validator) checkOpeningPhrase(section, response string) []Finding {
	if !strings.HasPrefix(response, "As an") && !strings.HasPrefix(response, "As a") {
		return []Finding{warnf(10, "Response should start with 'As an [ROLE] in the [TEAM] Team...'")}
	}
	return nil
}

func (v *Validator) checkMetricPresence(section, response string) []Finding {
	if !metricSections[section] || len(v.metricTexts) == 0 {
		return nil
	}
	found := 0
	for _, text := range v.metricTexts {
		if strings.Contains(response, text) {
			found++
		}
	}
	switch found {
	case 0:
		return []Finding{warnf(10, "No metrics found. Include specific numbers to strengthen the response.")}
	case 1:
		return []Finding{warnf(5, "Consider adding more specific metrics for stronger impact.")}
	}
	return nil
}

func (v *Validator) checkGenericPhrases(section, response string) []Finding {
	lower := strings.ToLower(response)
	var findings []Finding
	for _, g := range genericPhrases {
		if strings.Contains(lower, g.phrase) {
			findings = append(findings, warnf(3, "Generic phrase detected: '%s'. %s.", g.phrase, g.suggestion))
		}
	}
	return findings
}

func (v *Validator) checkTechnologyMention(section, response string) []Finding {
	if !techSections[section] || len(v.technologies) == 0 {
		return nil
	}
	for _, tech := range v.technologies {
		if strings.Contains(response, tech) {
			return nil
		}
	}
	return []Finding{warnf(8, "No specific technologies mentioned. Reference actual tools/frameworks used.")}
}

func (v *Validator) checkSentenceVariety(section, response string) []Finding {
	var lengths []int
	for _, s := range splitSentences(response) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		lengths = append(lengths, len(strings.Fields(s)))
	}
	if len(lengths) < 3 {
		return nil
	}
	for _, n := range lengths[1:] {
		if n != lengths[0] {
			return nil
		}
	}
	return []Finding{warnf(3, "Vary sentence lengths for better readability.")}
}

func (v *Validator) checkRepeatedOpeners(section, response string) []Finding {
	var starts []string
	for _, s := range splitSentences(response) {
		fields := strings.Fields(s)
		if len(fields) == 0 {
			continue
		}
		starts = append(starts, fields[0])
	}
	if len(starts) <= 2 {
		return nil
	}
	seen := make(map[string]bool, len(starts))
	for _, w := range starts {
		if seen[w] {
			return []Finding{warnf(5, "Avoid starting multiple sentences with the same word.")}
		}
		seen[w] = true
	}
	return nil
}

func (v *Validator) checkNumericEvidence(section, response string) []Finding {
	if !metricSections[section] {
		return nil
	}
	if strings.ContainsFunc(response, unicode.IsDigit) {
		return nil
	}
	return []Finding{warnf(10, "Include specific numbers or metrics to demonstrate impact.")}
}

func (v *Validator) checkPassiveVoice(section, response string) []Finding {
	lower := strings.ToLower(response)
	count := 0
	for _, phrase := range passivePhrases {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	if count > 2 {
		return []Finding{warnf(5, "Use active voice for stronger impact (e.g., 'I implemented' vs 'was implemented').")}
	}
	return nil
}

// splitSentences cuts on the literal ". " delimiter, matching how review
// prose is scored elsewhere in the battery.
func splitSentences(response string) []string {
	return strings.Split(response, ". ")
}
