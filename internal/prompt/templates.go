// Package prompt builds the per-section generation prompts that get handed to
// an external text model. The composed text is opaque to the rest of the
// pipeline.
package prompt

import (
	"fmt"

	"goreview/domain/review"
	"goreview/internal/errors"
)

var builders = map[int]func(*review.Dataset) string{
	1:  engineeringExcellence,
	2:  roadmapDelivery,
	3:  raisingTheBar,
	4:  mentorship,
	5:  techInitiatives,
	6:  scopeInfluence,
	7:  ambiguityComplexity,
	8:  execution,
	9:  impact,
	10: cultureMentality,
	11: strengths,
	12: developmentAreas,
}

// ForSection composes the generation prompt for one numbered review section.
func ForSection(number int, ds *review.Dataset) (string, error) {
	builder, ok := builders[number]
	if !ok {
		return "", errors.InvalidInput(fmt.Sprintf("invalid section number: %d", number))
	}
	return builder(ds), nil
}

func engineeringExcellence(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Engineering/Operation Excellence" section of a performance review.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ENGINEERING/OPERATION EXCELLENCE OBJECTIVES:
%[3]s

ALL METRICS EXTRACTED:
%[4]s

TECHNOLOGIES USED:
%[5]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on: Code quality, dependency management, bug fixes, automation, operational improvements
3. Include specific metrics about improvements, crash rates, stability
4. Mention tools created (like AETHER) and their impact
5. Reference specific technologies and versions
6. Write 3-4 sentences (120-150 words)
7. Use active voice and strong verbs
8. Connect technical work to business outcomes where metrics show impact

STYLE:
- Natural, flowing narrative (not bullet points)
- Vary sentence structure
- Specific and data-driven
- Professional and confident tone

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatObjectives(categoryObjectives(ds, review.SectionEngineeringExcellence)),
		formatMetrics(ds.Metrics),
		formatTechnologies(ds.Technologies))
}

func roadmapDelivery(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Roadmap Delivery" section of a performance review.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ROADMAP DELIVERY OBJECTIVES:
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on: Completed features, integrations, implementations, deliverables
3. List major accomplishments with context (what and why)
4. Show consistency in delivery ("successfully delivered all roadmap objectives")
5. Group similar items (e.g., "critical systems like Acko, DigiLocker, and ZeptoLocker")
6. Include ongoing work if mentioned ("currently progressing on...")
7. Write 3-4 sentences (120-150 words)
8. Demonstrate execution excellence

STYLE:
- Emphasize breadth of contributions
- Show variety of work (integrations, optimizations, features)
- Balance technical depth with accessibility
- Confident delivery narrative

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatObjectives(categoryObjectives(ds, review.SectionRoadmapDelivery)))
}

func raisingTheBar(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Raising the Bar" section of a performance review.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

RAISING THE BAR OBJECTIVES:
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on: Code reviews, app quality monitoring, production issue resolution, standards improvement
3. Highlight how they elevated team practices and quality
4. Include proactive behaviors (monitoring, identifying issues)
5. Show impact on team standards and app performance
6. Write 2-3 sentences (80-100 words)

STYLE:
- Emphasize proactive ownership
- Show commitment to quality
- Demonstrate leadership through example
- Focus on continuous improvement

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatObjectives(categoryObjectives(ds, review.SectionRaisingTheBar)))
}

func mentorship(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Mentorship" section of a performance review.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

MENTORSHIP OBJECTIVES:
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on: Guiding junior developers, knowledge sharing, teaching approach
3. Describe mentorship philosophy (understanding bigger picture, better practices)
4. Show impact on mentees' growth and confidence
5. Mention methods (code reviews, technical discussions)
6. Write 3-4 sentences (100-120 words)

STYLE:
- Warm but professional
- Focus on enabling others
- Show thoughtful approach to teaching
- Demonstrate commitment to team growth

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatObjectives(categoryObjectives(ds, review.SectionMentorship)))
}

func techInitiatives(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Tech Initiatives" section of a performance review.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

TECH INITIATIVES OBJECTIVES:
%[3]s

KEY METRICS:
%[4]s

TECHNOLOGIES:
%[5]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on: Technical upgrades, migrations, performance improvements, new architectures
3. Include specific version numbers (e.g., "React Native 0.73.8 to 0.78.2")
4. Highlight performance gains with exact metrics
5. Show technical leadership and innovation
6. Mention automation and developer productivity improvements
7. Write 4-5 sentences (140-170 words)

STYLE:
- Technical depth with clear impact
- Specific versions and numbers
- Connect tech work to user/developer benefits
- Demonstrate technical excellence

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatObjectives(categoryObjectives(ds, review.SectionTechInitiatives)),
		formatMetrics(ds.Metrics),
		formatTechnologies(ds.Technologies))
}

func scopeInfluence(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Scope & Influence" competency section.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES (synthesize cross-cutting themes):
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Synthesize from ALL objectives to show:
   - Cross-team impact (tools used beyond immediate team)
   - Technical leadership (setting standards, architectural decisions)
   - Knowledge sharing (documentation, scripts, mentorship)
   - Influence beyond immediate scope
3. Look for: Automation tools, architectural changes, team-wide improvements
4. Write 4-5 sentences (130-150 words)

STYLE:
- Show breadth of influence
- Demonstrate leadership without authority
- Highlight multiplier effects
- Connect individual contributions to team/org impact

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives))
}

func ambiguityComplexity(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Ambiguity & Problem Complexity" competency section.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES:
%[3]s

KEY METRICS:
%[4]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on complex problem-solving examples:
   - Performance optimizations with unclear causes
   - Architecture decisions with trade-offs
   - Migrations with dependencies
   - Ambiguous requirements that needed clarification
3. Show: Root cause analysis, trade-off evaluation, risk mitigation
4. Include specific examples with measurable outcomes
5. Write 4-5 sentences (130-150 words)

STYLE:
- Analytical and strategic
- Show problem-solving approach
- Demonstrate technical depth
- Connect complexity to successful outcomes

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives),
		formatMetrics(ds.Metrics))
}

func execution(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Execution" competency section.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES:
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Focus on:
   - Consistent delivery (completing roadmap objectives)
   - Quality standards (testing, code reviews, reliability)
   - Operational discipline (monitoring, resolving issues)
   - Planning and follow-through
3. Show: Reliability, thoroughness, attention to detail
4. Include: Automation, processes, quality gates
5. Write 4-5 sentences (130-150 words)

STYLE:
- Emphasize consistency and reliability
- Show systematic approach
- Demonstrate high standards
- Focus on sustainable delivery

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives))
}

func impact(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Impact" competency section.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES:
%[3]s

KEY METRICS (prioritize business and user impact):
%[4]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Organize impact into dimensions:
   - Customer/User experience (UX improvements, features)
   - Business metrics (earnings, engagement, efficiency)
   - Technical performance (speed, stability, scalability)
3. Lead with business metrics where available
4. Include ALL significant quantitative results
5. Show breadth of impact across dimensions
6. Write 4-5 sentences (140-160 words)

STYLE:
- Lead with business value
- Use all available metrics
- Show direct connection: action → result
- Demonstrate measurable contribution

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives),
		formatMetrics(ds.Metrics))
}

func cultureMentality(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "Culture & Founder Mentality" competency section.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES:
%[3]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Demonstrate founder mentality through:
   - Ownership (end-to-end responsibility)
   - Proactive problem-solving (identifying and fixing issues)
   - Continuous learning (upgrading tech, exploring new approaches)
   - Candid feedback (code reviews, mentorship)
   - High standards (quality, reliability)
3. Show cultural contributions beyond just deliverables
4. Write 3-4 sentences (120-140 words)

STYLE:
- Show intrinsic motivation
- Demonstrate ownership mindset
- Highlight proactive behaviors
- Connect to team culture elevation

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives))
}

func strengths(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "What are your areas of strength?" open question.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

ALL OBJECTIVES:
%[3]s

KEY METRICS:
%[4]s

TECHNOLOGIES:
%[5]s

REQUIREMENTS:
1. Start with: "As an %[1]s in the %[2]s Team..."
2. Identify 4-5 core strengths by analyzing patterns:
   - Most frequent achievement types
   - Areas with strongest metrics
   - Technical domains with depth
   - Unique contributions or approaches
3. Be specific with examples
4. Show both technical and soft skills
5. Write 4-5 sentences (130-150 words)

STYLE:
- Confident but not boastful
- Evidence-based (reference achievements)
- Balanced (technical + execution + collaboration)
- Forward-looking (how strengths create value)

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team,
		formatAllObjectives(ds.Objectives),
		formatMetrics(ds.Metrics),
		formatTechnologies(ds.Technologies))
}

func developmentAreas(ds *review.Dataset) string {
	return fmt.Sprintf(`Generate a response for the "What are your areas of development?" open question.

CONTEXT:
- Role: %[1]s
- Team: %[2]s

REQUIREMENTS:
1. Infer development areas based on role level and typical career progression:

   For SD2/SDE2:
   - System design for larger-scale distributed systems
   - Backend/Infrastructure depth (if primarily frontend)
   - Cross-functional collaboration and stakeholder management
   - Technical strategy and long-term planning

   For SD3/SDE3:
   - Architecture for critical systems
   - Organizational influence and technical leadership
   - Business acumen and product thinking
   - Mentoring senior engineers

   For Staff+:
   - Company-wide technical strategy
   - Influencing without authority across teams
   - Building technical vision and roadmap

2. Frame as growth opportunities, not weaknesses
3. Be specific and actionable
4. Align with next level expectations
5. Write 2-3 sentences (60-80 words)

STYLE:
- Growth-oriented and constructive
- Specific rather than vague
- Realistic and achievable
- Shows self-awareness

Generate the response now:`,
		ds.Metadata.Role,
		ds.Metadata.Team)
}
