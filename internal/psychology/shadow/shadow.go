package shadow

import (
	"fmt"
	"sort"
)

type Aspect string

const (
	RepressedDesire        Aspect = "repressed_desire"
	DeniedTrait            Aspect = "denied_trait"
	ProjectedQuality       Aspect = "projected_quality"
	UnacknowledgedStrength Aspect = "unacknowledged_strength"
	HiddenWeakness         Aspect = "hidden_weakness"
)

var AllAspects = []Aspect{RepressedDesire, DeniedTrait, ProjectedQuality, UnacknowledgedStrength, HiddenWeakness}

type Status string

const (
	Unaware     Status = "unaware"
	Aware       Status = "aware"
	Integrating Status = "integrating"
	Integrated  Status = "integrated"
)

type Element struct {
	Aspect      Aspect   `json:"aspect_type"`
	Description string   `json:"description"`
	Intensity   float64  `json:"intensity"`
	Triggers    []string `json:"triggers"`
	Status      Status   `json:"integration_status"`
}

func (e Element) IsIntegrated() bool { return e.Status == Integrated }
func (e Element) NeedsWork() bool    { return e.Status == Unaware || e.Status == Aware }

// Identify derives shadow elements from unfulfilled_goals ([]string) and
// trait_discrepancies (name -> 0..1) in data, plus explicit projections.
// behaviors is reserved for behavioral cues and currently unused.
func Identify(data map[string]any, behaviors, projections []string) []Element {
	out := make([]Element, 0)

	for _, g := range stringList(data["unfulfilled_goals"]) {
		out = append(out, Element{
			Aspect:      RepressedDesire,
			Description: "Repressed desire: " + g,
			Intensity:   0.7,
			Triggers:    []string{"goal-related situations"},
			Status:      Aware,
		})
	}

	for _, p := range projections {
		out = append(out, Element{
			Aspect:      ProjectedQuality,
			Description: "Projected quality: " + p,
			Intensity:   0.8,
			Triggers:    []string{"similar others"},
			Status:      Unaware,
		})
	}

	if disc, ok := data["trait_discrepancies"].(map[string]any); ok {
		traits := make([]string, 0, len(disc))
		for k := range disc {
			traits = append(traits, k)
		}
		sort.Strings(traits)
		for _, trait := range traits {
			v, ok := disc[trait].(float64)
			if !ok || v <= 0.5 {
				continue
			}
			out = append(out, Element{
				Aspect:      DeniedTrait,
				Description: "Denied trait: " + trait,
				Intensity:   v,
				Triggers:    []string{"trait-relevant situations"},
				Status:      Aware,
			})
		}
	}
	return out
}

func stringList(v any) []string {
	switch l := v.(type) {
	case []string:
		return l
	case []any:
		out := make([]string, 0, len(l))
		for _, x := range l {
			out = append(out, fmt.Sprint(x))
		}
		return out
	}
	return nil
}

var techniques = map[Aspect][]string{
	RepressedDesire:  {"Journaling about hidden wants", "Safe expression exercises", "Desire mapping", "Values clarification"},
	DeniedTrait:      {"Self-reflection exercises", "Feedback integration", "Trait acceptance work", "Reframing perspectives"},
	ProjectedQuality: {"Projection identification", "Ownership exercises", "Mirror work", "Relationship pattern analysis"},
}

var defaultTechniques = []string{"General shadow work", "Therapeutic support"}

type Plan struct {
	Target           Element  `json:"target_element"`
	Techniques       []string `json:"techniques"`
	Timeline         string   `json:"timeline"`
	ExpectedOutcomes []string `json:"expected_outcomes"`
	SupportNeeded    []string `json:"support_needed"`
}

func IntegrationPlan(e Element) Plan {
	tech, ok := techniques[e.Aspect]
	if !ok {
		tech = defaultTechniques
	}
	return Plan{
		Target:           e,
		Techniques:       append([]string(nil), tech...),
		Timeline:         Timeline(e),
		ExpectedOutcomes: []string{"Increased self-awareness", "Reduced projection", "Greater wholeness", "Improved relationships"},
		SupportNeeded:    []string{"Therapeutic guidance", "Safe practice space", "Supportive relationships"},
	}
}

func Timeline(e Element) string {
	switch {
	case e.Intensity > 0.7 && e.Status == Unaware:
		return "6-12 months"
	case e.Status == Aware:
		return "3-6 months"
	default:
		return "1-3 months"
	}
}

type Exercise struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

func Exercises(e Element) []Exercise {
	switch e.Aspect {
	case ProjectedQuality:
		return []Exercise{
			{"Projection Reclamation", "Identify qualities you dislike in others and explore how they might exist in yourself", "15-30 minutes daily"},
			{"Three Column Technique", "List what you project, why you reject it, and how you might own it", "20 minutes weekly"},
		}
	case RepressedDesire:
		return []Exercise{
			{"Desire Exploration", "Journal freely about hidden wants without judgment", "20 minutes daily"},
			{"Safe Expression", "Practice expressing desires in safe, appropriate contexts", "Ongoing practice"},
		}
	case DeniedTrait:
		return []Exercise{
			{"Trait Inventory", "Compare how you describe yourself with how peers describe you", "30 minutes weekly"},
		}
	}
	return []Exercise{}
}

type ProgressReport struct {
	TotalElements    int     `json:"total_elements"`
	Integrated       int     `json:"integrated"`
	InProgress       int     `json:"in_progress"`
	NeedsWork        int     `json:"needs_work"`
	AverageIntensity float64 `json:"average_intensity"`
	IntegrationRate  float64 `json:"integration_rate"`
	TimePeriod       string  `json:"time_period"`
	OverallStatus    string  `json:"overall_status"`
}

func Progress(elements []Element, period string) ProgressReport {
	if period == "" {
		period = "3 months"
	}
	r := ProgressReport{TotalElements: len(elements), TimePeriod: period, OverallStatus: "no_data"}
	if len(elements) == 0 {
		return r
	}
	var intensity float64
	for _, e := range elements {
		intensity += e.Intensity
		switch {
		case e.IsIntegrated():
			r.Integrated++
		case e.Status == Integrating:
			r.InProgress++
		}
		if e.NeedsWork() {
			r.NeedsWork++
		}
	}
	n := float64(len(elements))
	r.AverageIntensity = intensity / n
	r.IntegrationRate = float64(r.Integrated) / n
	switch {
	case r.IntegrationRate > 0.7:
		r.OverallStatus = "advanced"
	case r.IntegrationRate > 0.4:
		r.OverallStatus = "progressing"
	default:
		r.OverallStatus = "beginning"
	}
	return r
}

type TeamShadow struct {
	TeamSize            int                `json:"team_size"`
	TotalShadowElements int                `json:"total_shadow_elements"`
	CollectivePatterns  map[Aspect]float64 `json:"collective_patterns"`
	IntegrationPriority []Aspect           `json:"integration_priority"`
	TeamShadowIntensity float64            `json:"team_shadow_intensity"`
}

// TeamDynamics reports aspects shared by more than half the members and the
// three most frequent aspects, ties in declaration order.
func TeamDynamics(members [][]Element) TeamShadow {
	counts := map[Aspect]int{}
	var total int
	var intensity float64
	for _, m := range members {
		for _, e := range m {
			counts[e.Aspect]++
			intensity += e.Intensity
			total++
		}
	}
	res := TeamShadow{
		TeamSize:            len(members),
		TotalShadowElements: total,
		CollectivePatterns:  map[Aspect]float64{},
		IntegrationPriority: []Aspect{},
	}
	if total > 0 {
		res.TeamShadowIntensity = intensity / float64(total)
	}
	ranked := make([]Aspect, 0, len(counts))
	for _, a := range AllAspects {
		n := counts[a]
		if n == 0 {
			continue
		}
		ranked = append(ranked, a)
		if share := float64(n) / float64(len(members)); share > 0.5 {
			res.CollectivePatterns[a] = share
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return counts[ranked[i]] > counts[ranked[j]] })
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	res.IntegrationPriority = append(res.IntegrationPriority, ranked...)
	return res
}
