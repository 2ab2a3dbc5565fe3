package intervention

import "sort"

type Kind string

const (
	TeamComposition    Kind = "team_composition"
	Communication      Kind = "communication"
	Process            Kind = "process"
	SkillDevelopment   Kind = "skill_development"
	ConflictResolution Kind = "conflict_resolution"
)

type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

type Recommendation struct {
	Type           Kind    `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Priority       int     `json:"priority"`
	ExpectedImpact float64 `json:"expected_impact"`
	Effort         Effort  `json:"implementation_effort"`
}

// Metric keys read by Generate.
const (
	DiversityScore     = "diversity_score"
	CommunicationScore = "communication_score"
	ConflictScore      = "conflict_score"
	SkillGapScore      = "skill_gap_score"
	ProcessScore       = "process_score"
	EngagementScore    = "engagement_score"
	BurnoutRisk        = "burnout_risk"
)

type trigger struct {
	template string
	metric   string
	missing  float64
	fires    func(v float64) bool
}

var triggers = []trigger{
	{"low_diversity", DiversityScore, 100, func(v float64) bool { return v < 50 }},
	{"poor_communication", CommunicationScore, 100, func(v float64) bool { return v < 60 }},
	{"high_conflict", ConflictScore, 0, func(v float64) bool { return v > 70 }},
	{"skill_gaps", SkillGapScore, 0, func(v float64) bool { return v > 40 }},
	{"poor_processes", ProcessScore, 100, func(v float64) bool { return v < 60 }},
	{"low_engagement", EngagementScore, 100, func(v float64) bool { return v < 50 }},
	{"burnout_risk", BurnoutRisk, 0, func(v float64) bool { return v > 60 }},
}

var templates = map[string][]Recommendation{
	"low_diversity": {
		{TeamComposition, "Increase Team Diversity", "Add members with different archetypes to improve team dynamics and problem-solving capabilities", 4, 0.7, EffortMedium},
		{TeamComposition, "Balance Thinking Styles", "Recruit members with complementary cognitive approaches (analytical vs. creative, detail-oriented vs. big-picture)", 3, 0.65, EffortMedium},
	},
	"poor_communication": {
		{Communication, "Implement Daily Standups", "Regular 15-minute check-ins to improve information flow and identify blockers early", 5, 0.8, EffortLow},
		{Communication, "Establish Communication Protocols", "Define clear channels for different types of communication (urgent, updates, discussions)", 4, 0.75, EffortLow},
		{Communication, "Implement Async Communication Tools", "Use collaborative documentation and async communication to accommodate different time zones and work styles", 3, 0.7, EffortLow},
	},
	"high_conflict": {
		{ConflictResolution, "Facilitate Team Mediation Sessions", "Organize structured conflict resolution sessions with neutral facilitator", 5, 0.85, EffortMedium},
		{ConflictResolution, "Establish Ground Rules", "Create and enforce team agreements on respectful communication and collaboration", 4, 0.7, EffortLow},
	},
	"skill_gaps": {
		{SkillDevelopment, "Create Skill Development Plan", "Identify critical skill gaps and create targeted training programs", 4, 0.75, EffortMedium},
		{SkillDevelopment, "Implement Peer Learning", "Establish mentoring pairs and knowledge sharing sessions", 3, 0.65, EffortLow},
		{SkillDevelopment, "Cross-Training Program", "Enable team members to learn adjacent skills to increase flexibility", 3, 0.6, EffortMedium},
	},
	"poor_processes": {
		{Process, "Implement Agile Ceremonies", "Adopt sprint planning, retrospectives, and reviews for continuous improvement", 4, 0.8, EffortMedium},
		{Process, "Document Standard Operating Procedures", "Create clear documentation for recurring tasks and workflows", 3, 0.7, EffortMedium},
		{Process, "Automate Repetitive Tasks", "Identify and automate manual processes to free up team capacity", 3, 0.65, EffortHigh},
	},
	"low_engagement": {
		{TeamComposition, "Increase Team Autonomy", "Empower team members with decision-making authority in their areas of expertise", 4, 0.75, EffortLow},
		{Process, "Regular Recognition Program", "Implement peer recognition and celebrate team achievements", 3, 0.7, EffortLow},
	},
	"burnout_risk": {
		{Process, "Workload Balancing", "Redistribute tasks and set realistic deadlines to prevent overwork", 5, 0.85, EffortMedium},
		{TeamComposition, "Add Team Capacity", "Hire additional team members or contractors to reduce individual workload", 4, 0.8, EffortHigh},
	},
}

// Generate fires every template set whose metric crosses its threshold, then
// orders by priority (stable) and keeps the first max.
func Generate(metrics map[string]float64, max int) []Recommendation {
	out := []Recommendation{}
	if max <= 0 {
		return out
	}
	for _, tr := range triggers {
		v, ok := metrics[tr.metric]
		if !ok {
			v = tr.missing
		}
		if tr.fires(v) {
			out = append(out, templates[tr.template]...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// QuickWins are low-effort items with impact above 0.6.
func QuickWins(recs []Recommendation) []Recommendation {
	out := []Recommendation{}
	for _, r := range recs {
		if r.Effort == EffortLow && r.ExpectedImpact > 0.6 {
			out = append(out, r)
		}
	}
	return out
}
