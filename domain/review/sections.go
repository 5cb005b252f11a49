package review

// Section names, as they appear on the review form. Objective categories in
// the export use the same spellings, so these double as index keys.
const (
	SectionEngineeringExcellence = "Engineering/Operation Excellence"
	SectionRoadmapDelivery       = "Roadmap Delivery"
	SectionRaisingTheBar         = "Raising the Bar"
	SectionMentorship            = "Mentorship"
	SectionTechInitiatives       = "Tech Initiatives"
	SectionScopeInfluence        = "Scope & Influence"
	SectionAmbiguityComplexity   = "Ambiguity & Problem Complexity"
	SectionExecution             = "Execution"
	SectionImpact                = "Impact"
	SectionCultureFounder        = "Culture & Founder Mentality"
	SectionStrengths             = "What are your areas of strength?"
	SectionDevelopmentAreas      = "What are your areas of development?"
)

// Section is one numbered question of the review form.
type Section struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Sections lists the twelve review sections in form order.
var Sections = []Section{
	{1, SectionEngineeringExcellence},
	{2, SectionRoadmapDelivery},
	{3, SectionRaisingTheBar},
	{4, SectionMentorship},
	{5, SectionTechInitiatives},
	{6, SectionScopeInfluence},
	{7, SectionAmbiguityComplexity},
	{8, SectionExecution},
	{9, SectionImpact},
	{10, SectionCultureFounder},
	{11, SectionStrengths},
	{12, SectionDevelopmentAreas},
}

// Group returns the part of the review form the section belongs to.
func (s Section) Group() string {
	switch {
	case s.Number <= 5:
		return "OBJECTIVES"
	case s.Number <= 10:
		return "COMPETENCIES"
	default:
		return "OPEN QUESTIONS"
	}
}

// SectionByNumber looks up a section by its form number.
func SectionByNumber(n int) (Section, bool) {
	if n < 1 || n > len(Sections) {
		return Section{}, false
	}
	return Sections[n-1], true
}
