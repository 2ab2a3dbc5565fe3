package freudian

import (
	"math"
	"sort"
	"strings"
)

type Mechanism string

const (
	Repression          Mechanism = "repression"
	Denial              Mechanism = "denial"
	Projection          Mechanism = "projection"
	Displacement        Mechanism = "displacement"
	Rationalization     Mechanism = "rationalization"
	ReactionFormation   Mechanism = "reaction_formation"
	Sublimation         Mechanism = "sublimation"
	Regression          Mechanism = "regression"
	Intellectualization Mechanism = "intellectualization"
	Humor               Mechanism = "humor"
)

var AllMechanisms = []Mechanism{
	Repression, Denial, Projection, Displacement, Rationalization,
	ReactionFormation, Sublimation, Regression, Intellectualization, Humor,
}

// Name is the upper-case identifier used in listings.
func (m Mechanism) Name() string { return strings.ToUpper(string(m)) }

var indicators = map[Mechanism][]string{
	Repression:          {"forgets painful", "blocks out memories", "avoids thinking about"},
	Denial:              {"refuses to acknowledge", "ignores reality", "dismisses evidence"},
	Projection:          {"attributes own feelings to others", "accuses others of own faults", "externalizes blame"},
	Displacement:        {"redirects anger", "takes frustration out on", "lashes out at uninvolved"},
	Rationalization:     {"justifies behavior", "creates logical explanations", "excuses actions"},
	ReactionFormation:   {"exaggerated opposite", "overly friendly to disliked", "acts contrary to feelings"},
	Sublimation:         {"channels energy productively", "transforms impulses creatively", "redirects to socially acceptable"},
	Regression:          {"reverts to childish", "temper tantrum", "becomes helpless under stress"},
	Intellectualization: {"focuses on abstract analysis", "avoids emotions through logic", "detached technical discussion"},
	Humor:               {"uses humor to cope", "jokes about stress", "finds the funny side"},
}

const (
	matchNormalizer   = 5.0
	maxContexts       = 3
	matureScore       = 0.8
	primitiveScore    = 0.3
	neuroticScore     = 0.5
	maladaptiveCutoff = 0.4
)

var (
	mature    = map[Mechanism]bool{Sublimation: true, Humor: true, Intellectualization: true}
	primitive = map[Mechanism]bool{Denial: true, Projection: true}
)

type DefenseProfile struct {
	Mechanism    Mechanism `json:"mechanism"`
	Frequency    float64   `json:"frequency"`
	Adaptiveness float64   `json:"adaptiveness"`
	Contexts     []string  `json:"contexts"`
}

func (p DefenseProfile) IsMaladaptive() bool { return p.Adaptiveness < maladaptiveCutoff }

func Adaptiveness(m Mechanism) float64 {
	switch {
	case mature[m]:
		return matureScore
	case primitive[m]:
		return primitiveScore
	default:
		return neuroticScore
	}
}

func Indicators(m Mechanism) []string {
	return append([]string(nil), indicators[m]...)
}

// IdentifyDefenses matches behaviors against each mechanism's indicator phrases.
// stressResponses is accepted for future weighting and currently unused.
func IdentifyDefenses(behaviors []string, stressResponses map[string]any) []DefenseProfile {
	lowered := make([]string, len(behaviors))
	for i, b := range behaviors {
		lowered[i] = strings.ToLower(b)
	}

	out := make([]DefenseProfile, 0)
	for _, m := range AllMechanisms {
		var matching []string
		for i, b := range lowered {
			if containsAny(b, indicators[m]) {
				matching = append(matching, behaviors[i])
			}
		}
		if len(matching) == 0 {
			continue
		}
		ctx := matching
		if len(ctx) > maxContexts {
			ctx = ctx[:maxContexts]
		}
		out = append(out, DefenseProfile{
			Mechanism:    m,
			Frequency:    math.Min(1.0, float64(len(matching))/matchNormalizer),
			Adaptiveness: Adaptiveness(m),
			Contexts:     append([]string(nil), ctx...),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Frequency > out[j].Frequency })
	return out
}

func containsAny(behavior string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(behavior, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

var conflictAdvice = map[Mechanism]string{
	Denial:     "Work on acknowledging difficult realities",
	Projection: "Practice self-reflection and ownership",
	Regression: "Develop mature coping strategies",
}

type ConflictAnalysis struct {
	DefensivenessLevel float64     `json:"defensiveness_level"`
	DefenseMaturity    float64     `json:"defense_maturity"`
	MaladaptiveCount   int         `json:"maladaptive_count"`
	PrimaryConflicts   []Mechanism `json:"primary_conflicts"`
	Recommendations    []string    `json:"recommendations"`
}

func AnalyzeConflictPatterns(profiles []DefenseProfile) ConflictAnalysis {
	res := ConflictAnalysis{PrimaryConflicts: []Mechanism{}, Recommendations: []string{}}
	if len(profiles) == 0 {
		return res
	}
	var freq, adapt float64
	for _, p := range profiles {
		freq += p.Frequency
		adapt += p.Adaptiveness
		if !p.IsMaladaptive() {
			continue
		}
		res.MaladaptiveCount++
		res.PrimaryConflicts = append(res.PrimaryConflicts, p.Mechanism)
		if advice, ok := conflictAdvice[p.Mechanism]; ok {
			res.Recommendations = append(res.Recommendations, advice)
		}
	}
	res.DefensivenessLevel = freq / float64(len(profiles))
	res.DefenseMaturity = adapt / float64(len(profiles))
	return res
}
