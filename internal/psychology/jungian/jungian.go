package jungian

import (
	"sort"
	"strings"
)

type Archetype string

const (
	Self        Archetype = "self"
	Shadow      Archetype = "shadow"
	Anima       Archetype = "anima"
	Animus      Archetype = "animus"
	Persona     Archetype = "persona"
	WiseOldMan  Archetype = "wise_old_man"
	GreatMother Archetype = "great_mother"
	Hero        Archetype = "hero"
	Trickster   Archetype = "trickster"
)

var AllArchetypes = []Archetype{Self, Shadow, Anima, Animus, Persona, WiseOldMan, GreatMother, Hero, Trickster}

var indicators = map[Archetype][]string{
	Self:        {"seeks wholeness", "integrates opposites", "sense of purpose", "inner balance"},
	Shadow:      {"hidden tendencies", "repressed desires", "unconscious behaviors", "denied aspects"},
	Anima:       {"emotional receptivity", "intuitive connection", "creative inspiration", "nurturing empathy"},
	Animus:      {"assertive reasoning", "decisive action", "logical argument", "principled stance"},
	Persona:     {"maintains public image", "conforms to expectations", "professional mask", "manages impressions"},
	WiseOldMan:  {"seeks wisdom", "mentoring others", "reflective nature", "values knowledge"},
	GreatMother: {"protects the team", "caring for others", "provides support", "fosters growth"},
	Hero:        {"overcomes challenges", "seeks achievement", "competitive nature", "goal-oriented"},
	Trickster:   {"challenges conventions", "playful disruption", "bends the rules", "questions authority"},
}

const (
	defaultIntegration = 0.6
	dominantStrength   = 0.7
	integrationFloor   = 0.5
	collectiveShare    = 0.3
)

type Pattern struct {
	Archetype        Archetype `json:"archetype"`
	Strength         float64   `json:"strength"`
	Manifestations   []string  `json:"manifestations"`
	IntegrationLevel float64   `json:"integration_level"`
}

func (p Pattern) IsDominant() bool       { return p.Strength > dominantStrength }
func (p Pattern) NeedsIntegration() bool { return p.IntegrationLevel < integrationFloor }

func Indicators(a Archetype) []string {
	return append([]string(nil), indicators[a]...)
}

// IdentifyActiveArchetypes scores each archetype by how many behaviors hit one of its indicators.
func IdentifyActiveArchetypes(behaviors []string, responses map[string]any) []Pattern {
	out := make([]Pattern, 0)
	for _, a := range AllArchetypes {
		ind := indicators[a]
		var hits []string
		for _, b := range behaviors {
			lb := strings.ToLower(b)
			for _, phrase := range ind {
				if strings.Contains(lb, phrase) {
					hits = append(hits, b)
					break
				}
			}
		}
		if len(hits) == 0 {
			continue
		}
		strength := float64(len(hits)) / float64(len(ind))
		if strength > 1 {
			strength = 1
		}
		out = append(out, Pattern{
			Archetype:        a,
			Strength:         strength,
			Manifestations:   hits,
			IntegrationLevel: assessIntegration(a, responses),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Strength > out[j].Strength })
	return out
}

// assessIntegration honours an explicit "<archetype>_integration" response in [0,1].
func assessIntegration(a Archetype, responses map[string]any) float64 {
	if v, ok := responses[string(a)+"_integration"].(float64); ok && v >= 0 && v <= 1 {
		return v
	}
	return defaultIntegration
}

type Individuation struct {
	SelfRealization    float64 `json:"self_realization"`
	ShadowIntegration  float64 `json:"shadow_integration"`
	OverallIntegration float64 `json:"overall_integration"`
	ActiveArchetypes   int     `json:"active_archetypes"`
	IndividuationStage string  `json:"individuation_stage"`
}

func AnalyzeIndividuation(patterns []Pattern) Individuation {
	res := Individuation{ActiveArchetypes: len(patterns)}
	var sum float64
	var seenSelf, seenShadow bool
	for _, p := range patterns {
		sum += p.IntegrationLevel
		if p.Archetype == Self && !seenSelf {
			res.SelfRealization = p.Strength
			seenSelf = true
		}
		if p.Archetype == Shadow && !seenShadow {
			res.ShadowIntegration = p.IntegrationLevel
			seenShadow = true
		}
	}
	if len(patterns) > 0 {
		res.OverallIntegration = sum / float64(len(patterns))
	}
	res.IndividuationStage = Stage(res.OverallIntegration)
	return res
}

func Stage(integration float64) string {
	switch {
	case integration < 0.3:
		return "early"
	case integration < 0.6:
		return "developing"
	case integration < 0.8:
		return "advanced"
	default:
		return "integrated"
	}
}

type CollectivePatterns struct {
	CollectiveArchetypes map[Archetype]float64 `json:"collective_archetypes"`
	ArchetypeDiversity   int                   `json:"archetype_diversity"`
	GroupSize            int                   `json:"group_size"`
	DominantPattern      *Archetype            `json:"dominant_pattern"`
}

// AssessCollectivePatterns counts dominant archetypes across members.
// Count ties for the dominant pattern resolve to the earlier archetype.
func AssessCollectivePatterns(group [][]Pattern) CollectivePatterns {
	counts := map[Archetype]int{}
	for _, member := range group {
		for _, p := range member {
			if p.IsDominant() {
				counts[p.Archetype]++
			}
		}
	}
	res := CollectivePatterns{
		CollectiveArchetypes: map[Archetype]float64{},
		ArchetypeDiversity:   len(counts),
		GroupSize:            len(group),
	}
	best := 0
	for _, a := range AllArchetypes {
		n := counts[a]
		if n == 0 {
			continue
		}
		if share := float64(n) / float64(len(group)); share > collectiveShare {
			res.CollectiveArchetypes[a] = share
		}
		if n > best {
			best = n
			arch := a
			res.DominantPattern = &arch
		}
	}
	return res
}
