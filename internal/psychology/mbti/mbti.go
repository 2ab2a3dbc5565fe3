// Package mbti maps the sixteen MBTI codes to Jungian cognitive function stacks.
package mbti

import "strings"

type Function string

const (
	IntrovertedThinking  Function = "Ti"
	ExtravertedThinking  Function = "Te"
	IntrovertedFeeling   Function = "Fi"
	ExtravertedFeeling   Function = "Fe"
	IntrovertedSensing   Function = "Si"
	ExtravertedSensing   Function = "Se"
	IntrovertedIntuition Function = "Ni"
	ExtravertedIntuition Function = "Ne"
)

var shadowOf = map[Function]Function{
	IntrovertedThinking:  ExtravertedThinking,
	ExtravertedThinking:  IntrovertedThinking,
	IntrovertedFeeling:   ExtravertedFeeling,
	ExtravertedFeeling:   IntrovertedFeeling,
	IntrovertedSensing:   ExtravertedSensing,
	ExtravertedSensing:   IntrovertedSensing,
	IntrovertedIntuition: ExtravertedIntuition,
	ExtravertedIntuition: IntrovertedIntuition,
}

// Opposite flips the introverted/extraverted orientation.
func (f Function) Opposite() Function { return shadowOf[f] }

type Type string

const (
	INTJ Type = "INTJ"
	INTP Type = "INTP"
	ENTJ Type = "ENTJ"
	ENTP Type = "ENTP"
	INFJ Type = "INFJ"
	INFP Type = "INFP"
	ENFJ Type = "ENFJ"
	ENFP Type = "ENFP"
	ISTJ Type = "ISTJ"
	ISFJ Type = "ISFJ"
	ESTJ Type = "ESTJ"
	ESFJ Type = "ESFJ"
	ISTP Type = "ISTP"
	ISFP Type = "ISFP"
	ESTP Type = "ESTP"
	ESFP Type = "ESFP"
)

var AllTypes = []Type{INTJ, INTP, ENTJ, ENTP, INFJ, INFP, ENFJ, ENFP, ISTJ, ISFJ, ESTJ, ESFJ, ISTP, ISFP, ESTP, ESFP}

// ParseType accepts any casing and surrounding whitespace.
func ParseType(s string) (Type, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, t := range AllTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Letter reports the type's letter at position i (0..3).
func (t Type) Letter(i int) byte {
	if i < 0 || i >= len(t) {
		return 0
	}
	return t[i]
}

type mapping struct {
	stack     [4]Function
	affinity  []string
	strengths []string
	shadow    string
}

var typeMappings = map[Type]mapping{
	INTJ: {[4]Function{IntrovertedIntuition, ExtravertedThinking, IntrovertedFeeling, ExtravertedSensing}, []string{"VISIONARY", "ANALYST"}, []string{"Strategic planning", "Systems thinking", "Independence"}, "May neglect emotional considerations"},
	INTP: {[4]Function{IntrovertedThinking, ExtravertedIntuition, IntrovertedSensing, ExtravertedFeeling}, []string{"ANALYST", "SPECIALIST"}, []string{"Logical analysis", "Conceptual modelling", "Objectivity"}, "May overlook practical follow-through"},
	ENTJ: {[4]Function{ExtravertedThinking, IntrovertedIntuition, ExtravertedSensing, IntrovertedFeeling}, []string{"LEADER", "VISIONARY"}, []string{"Decisive leadership", "Long-range planning", "Efficiency"}, "May dismiss others' feelings"},
	ENTP: {[4]Function{ExtravertedIntuition, IntrovertedThinking, ExtravertedFeeling, IntrovertedSensing}, []string{"INNOVATOR", "VISIONARY"}, []string{"Ideation", "Debate", "Adaptability"}, "May neglect routine obligations"},
	INFJ: {[4]Function{IntrovertedIntuition, ExtravertedFeeling, IntrovertedThinking, ExtravertedSensing}, []string{"VISIONARY", "HARMONIZER"}, []string{"Insight into people", "Purpose-driven vision", "Empathy"}, "May withdraw when overwhelmed"},
	INFP: {[4]Function{IntrovertedFeeling, ExtravertedIntuition, IntrovertedSensing, ExtravertedThinking}, []string{"HARMONIZER", "INNOVATOR"}, []string{"Authenticity", "Creativity", "Values alignment"}, "May avoid conflict and hard decisions"},
	ENFJ: {[4]Function{ExtravertedFeeling, IntrovertedIntuition, ExtravertedSensing, IntrovertedThinking}, []string{"HARMONIZER", "LEADER"}, []string{"Inspiring others", "Facilitation", "Developing people"}, "May over-commit to others' needs"},
	ENFP: {[4]Function{ExtravertedIntuition, IntrovertedFeeling, ExtravertedThinking, IntrovertedSensing}, []string{"INNOVATOR", "HARMONIZER"}, []string{"Creativity", "Enthusiasm", "Understanding people"}, "May struggle with follow-through"},
	ISTJ: {[4]Function{IntrovertedSensing, ExtravertedThinking, IntrovertedFeeling, ExtravertedIntuition}, []string{"IMPLEMENTER", "SPECIALIST"}, []string{"Reliability", "Thoroughness", "Process discipline"}, "May resist new approaches"},
	ISFJ: {[4]Function{IntrovertedSensing, ExtravertedFeeling, IntrovertedThinking, ExtravertedIntuition}, []string{"COLLABORATOR", "IMPLEMENTER"}, []string{"Loyalty", "Attention to needs", "Consistency"}, "May suppress own concerns"},
	ESTJ: {[4]Function{ExtravertedThinking, IntrovertedSensing, ExtravertedIntuition, IntrovertedFeeling}, []string{"LEADER", "IMPLEMENTER"}, []string{"Organisation", "Accountability", "Clear direction"}, "May be rigid under pressure"},
	ESFJ: {[4]Function{ExtravertedFeeling, IntrovertedSensing, ExtravertedIntuition, IntrovertedThinking}, []string{"COLLABORATOR", "HARMONIZER"}, []string{"Team cohesion", "Practical care", "Cooperation"}, "May seek approval over candour"},
	ISTP: {[4]Function{IntrovertedThinking, ExtravertedSensing, IntrovertedIntuition, ExtravertedFeeling}, []string{"SPECIALIST", "ANALYST"}, []string{"Troubleshooting", "Calm in crises", "Hands-on skill"}, "May disengage from group processes"},
	ISFP: {[4]Function{IntrovertedFeeling, ExtravertedSensing, IntrovertedIntuition, ExtravertedThinking}, []string{"INNOVATOR", "COLLABORATOR"}, []string{"Aesthetic sense", "Adaptability", "Quiet support"}, "May avoid long-term planning"},
	ESTP: {[4]Function{ExtravertedSensing, IntrovertedThinking, ExtravertedFeeling, IntrovertedIntuition}, []string{"IMPLEMENTER", "LEADER"}, []string{"Action orientation", "Negotiation", "Resourcefulness"}, "May act before considering consequences"},
	ESFP: {[4]Function{ExtravertedSensing, IntrovertedFeeling, ExtravertedThinking, IntrovertedIntuition}, []string{"COLLABORATOR", "INNOVATOR"}, []string{"Energy", "Team morale", "Spontaneity"}, "May lose focus on long-term goals"},
}

type JungianProfile struct {
	MBTIType          Type     `json:"mbti_type"`
	DominantFunction  Function `json:"dominant_function"`
	AuxiliaryFunction Function `json:"auxiliary_function"`
	TertiaryFunction  Function `json:"tertiary_function"`
	InferiorFunction  Function `json:"inferior_function"`
}

// FunctionStack is dominant, auxiliary, tertiary, inferior.
func (p JungianProfile) FunctionStack() []Function {
	return []Function{p.DominantFunction, p.AuxiliaryFunction, p.TertiaryFunction, p.InferiorFunction}
}

// Profile returns nil, false for codes outside the table.
func Profile(t Type) (*JungianProfile, bool) {
	m, ok := typeMappings[t]
	if !ok {
		return nil, false
	}
	return &JungianProfile{
		MBTIType:          t,
		DominantFunction:  m.stack[0],
		AuxiliaryFunction: m.stack[1],
		TertiaryFunction:  m.stack[2],
		InferiorFunction:  m.stack[3],
	}, true
}

func ShadowFunctions(p JungianProfile) []Function {
	stack := p.FunctionStack()
	out := make([]Function, len(stack))
	for i, f := range stack {
		out[i] = f.Opposite()
	}
	return out
}

type Details struct {
	JungianProfile
	Stack             []Function `json:"function_stack"`
	ArchetypeAffinity []string   `json:"archetype_affinity"`
	Strengths         []string   `json:"strengths"`
	Shadow            string     `json:"shadow"`
}

func Describe(t Type) (*Details, bool) {
	p, ok := Profile(t)
	if !ok {
		return nil, false
	}
	m := typeMappings[t]
	return &Details{
		JungianProfile:    *p,
		Stack:             p.FunctionStack(),
		ArchetypeAffinity: append([]string(nil), m.affinity...),
		Strengths:         append([]string(nil), m.strengths...),
		Shadow:            m.shadow,
	}, true
}

type Compatibility struct {
	Compatible             bool   `json:"compatible"`
	Type1                  Type   `json:"type1,omitempty"`
	Type2                  Type   `json:"type2,omitempty"`
	ComplementaryFunctions bool   `json:"complementary_functions"`
	CompatibilityScore     int    `json:"compatibility_score"`
	Reason                 string `json:"reason,omitempty"`
}

const (
	compatibleScore   = 75
	incompatibleScore = 50
)

// AssessCompatibility is symmetric in its arguments.
func AssessCompatibility(a, b Type) Compatibility {
	pa, okA := Profile(a)
	pb, okB := Profile(b)
	if !okA || !okB {
		return Compatibility{Compatible: false, Reason: "Unknown types"}
	}
	complementary := pa.AuxiliaryFunction == pb.DominantFunction || pb.AuxiliaryFunction == pa.DominantFunction
	score := incompatibleScore
	if complementary {
		score = compatibleScore
	}
	return Compatibility{
		Compatible:             complementary,
		Type1:                  a,
		Type2:                  b,
		ComplementaryFunctions: complementary,
		CompatibilityScore:     score,
	}
}

type TypeInfo struct {
	MBTIType          Type     `json:"mbti_type"`
	ArchetypeAffinity []string `json:"archetype_affinity"`
	Strengths         []string `json:"strengths"`
}

func Types() []TypeInfo {
	out := make([]TypeInfo, 0, len(AllTypes))
	for _, t := range AllTypes {
		m := typeMappings[t]
		out = append(out, TypeInfo{MBTIType: t, ArchetypeAffinity: m.affinity, Strengths: m.strengths})
	}
	return out
}
