package archetypes

import "strings"

type ArchetypeType string

const (
	Leader       ArchetypeType = "leader"
	Innovator    ArchetypeType = "innovator"
	Harmonizer   ArchetypeType = "harmonizer"
	Analyst      ArchetypeType = "analyst"
	Implementer  ArchetypeType = "implementer"
	Visionary    ArchetypeType = "visionary"
	Collaborator ArchetypeType = "collaborator"
	Specialist   ArchetypeType = "specialist"
)

// AllTypes is in declaration order, which is also the classifier tie-break order.
var AllTypes = []ArchetypeType{Leader, Innovator, Harmonizer, Analyst, Implementer, Visionary, Collaborator, Specialist}

func (t ArchetypeType) order() int {
	for i, v := range AllTypes {
		if v == t {
			return i
		}
	}
	return len(AllTypes)
}

// ParseType matches case-insensitively.
func ParseType(s string) (ArchetypeType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

type Definition struct {
	Type           ArchetypeType     `json:"archetype_type"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	CoreTraits     []string          `json:"core_traits"`
	Strengths      []string          `json:"strengths"`
	Challenges     []string          `json:"challenges"`
	JungianMapping map[string]string `json:"jungian_mapping"`
}

var definitions = []Definition{
	{
		Type: Leader, Name: "The Leader",
		Description:    "Natural leader who takes charge and inspires others",
		CoreTraits:     []string{"decisive", "confident", "charismatic"},
		Strengths:      []string{"Strategic thinking", "Team motivation", "Decision making"},
		Challenges:     []string{"Can be domineering", "May overlook details"},
		JungianMapping: map[string]string{"primary": "ENTJ", "secondary": "ESTJ"},
	},
	{
		Type: Innovator, Name: "The Innovator",
		Description:    "Creative force who generates new ideas and challenges convention",
		CoreTraits:     []string{"creative", "curious", "adaptable"},
		Strengths:      []string{"Idea generation", "Reframing problems", "Embracing change"},
		Challenges:     []string{"May abandon projects midway", "Can find routine draining"},
		JungianMapping: map[string]string{"primary": "ENTP", "secondary": "ENFP"},
	},
	{
		Type: Harmonizer, Name: "The Harmonizer",
		Description:    "Empathetic mediator who maintains team cohesion",
		CoreTraits:     []string{"empathetic", "diplomatic", "supportive"},
		Strengths:      []string{"Conflict resolution", "Building trust", "Reading the room"},
		Challenges:     []string{"Avoids necessary confrontation", "May neglect own needs"},
		JungianMapping: map[string]string{"primary": "ENFJ", "secondary": "ESFJ"},
	},
	{
		Type: Analyst, Name: "The Analyst",
		Description:    "Systematic thinker who grounds decisions in evidence",
		CoreTraits:     []string{"logical", "precise", "objective"},
		Strengths:      []string{"Data analysis", "Risk assessment", "Critical evaluation"},
		Challenges:     []string{"Analysis paralysis", "Can appear detached"},
		JungianMapping: map[string]string{"primary": "INTJ", "secondary": "INTP"},
	},
	{
		Type: Implementer, Name: "The Implementer",
		Description:    "Reliable executor who turns plans into results",
		CoreTraits:     []string{"disciplined", "practical", "dependable"},
		Strengths:      []string{"Execution", "Process discipline", "Meeting deadlines"},
		Challenges:     []string{"Resists sudden change", "May be inflexible"},
		JungianMapping: map[string]string{"primary": "ISTJ", "secondary": "ESTJ"},
	},
	{
		Type: Visionary, Name: "The Visionary",
		Description:    "Future-focused strategist who sees long-range possibilities",
		CoreTraits:     []string{"insightful", "imaginative", "independent"},
		Strengths:      []string{"Long-term planning", "Pattern recognition", "Inspiring direction"},
		Challenges:     []string{"Impatient with details", "May seem unrealistic"},
		JungianMapping: map[string]string{"primary": "INFJ", "secondary": "INTJ"},
	},
	{
		Type: Collaborator, Name: "The Collaborator",
		Description:    "Team player who connects people and shares ownership",
		CoreTraits:     []string{"cooperative", "communicative", "open"},
		Strengths:      []string{"Cross-team coordination", "Knowledge sharing", "Inclusive decisions"},
		Challenges:     []string{"Slow consensus building", "Diffused accountability"},
		JungianMapping: map[string]string{"primary": "ESFJ", "secondary": "ENFP"},
	},
	{
		Type: Specialist, Name: "The Specialist",
		Description:    "Deep expert who masters a focused domain",
		CoreTraits:     []string{"focused", "skilled", "thorough"},
		Strengths:      []string{"Technical depth", "Quality craftsmanship", "Troubleshooting"},
		Challenges:     []string{"Narrow perspective", "Reluctant to delegate"},
		JungianMapping: map[string]string{"primary": "ISTP", "secondary": "INTP"},
	},
}

// Definitions returns every archetype in declaration order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

func Lookup(s string) (Definition, bool) {
	t, ok := ParseType(s)
	if !ok {
		return Definition{}, false
	}
	for _, d := range definitions {
		if d.Type == t {
			return d, true
		}
	}
	return Definition{}, false
}
