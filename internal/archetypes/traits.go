package archetypes

import (
	"fmt"
	"math"
)

// TraitCategory groups traits for assessment weighting.
type TraitCategory string

const (
	CategoryCognitive     TraitCategory = "cognitive"
	CategoryEmotional     TraitCategory = "emotional"
	CategoryBehavioral    TraitCategory = "behavioral"
	CategoryInterpersonal TraitCategory = "interpersonal"
	CategoryMotivational  TraitCategory = "motivational"
)

const (
	MinTraitScore = 0.0
	MaxTraitScore = 100.0
)

type Trait struct {
	Name        string        `json:"name" yaml:"name"`
	Category    TraitCategory `json:"category" yaml:"category"`
	Description string        `json:"description" yaml:"description"`
	ScaleLow    string        `json:"scale_low" yaml:"scale_low"`
	ScaleHigh   string        `json:"scale_high" yaml:"scale_high"`
	Weight      float64       `json:"weight" yaml:"weight"`
}

func (t Trait) Validate() error {
	if t.Weight < 0 || t.Weight > 1 {
		return fmt.Errorf("trait %q: weight must be between 0 and 1", t.Name)
	}
	return nil
}

// RangeError reports a value outside its permitted bounds.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

// TraitProfile maps trait names to scores in [0,100].
type TraitProfile struct {
	scores map[string]float64
}

func NewTraitProfile() *TraitProfile {
	return &TraitProfile{scores: map[string]float64{}}
}

// ProfileFromScores builds a profile, rejecting the first out-of-range score.
func ProfileFromScores(scores map[string]float64) (*TraitProfile, error) {
	p := NewTraitProfile()
	for name, v := range scores {
		if err := p.AddScore(name, v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *TraitProfile) AddScore(name string, score float64) error {
	if math.IsNaN(score) || score < MinTraitScore || score > MaxTraitScore {
		return &RangeError{Field: "trait score " + name, Value: score, Min: MinTraitScore, Max: MaxTraitScore}
	}
	p.scores[name] = score
	return nil
}

func (p *TraitProfile) Score(name string) (float64, bool) {
	v, ok := p.scores[name]
	return v, ok
}

func (p *TraitProfile) Scores() map[string]float64 {
	out := make(map[string]float64, len(p.scores))
	for k, v := range p.scores {
		out[k] = v
	}
	return out
}

func (p *TraitProfile) Len() int { return len(p.scores) }

func StandardTraits() []Trait {
	return []Trait{
		{Name: "Extraversion", Category: CategoryInterpersonal, Description: "Tendency to seek stimulation from the external world", ScaleLow: "Introverted", ScaleHigh: "Extraverted", Weight: 1.0},
		{Name: "Analytical Thinking", Category: CategoryCognitive, Description: "Preference for logical and systematic analysis", ScaleLow: "Intuitive", ScaleHigh: "Analytical", Weight: 1.0},
		{Name: "Decisiveness", Category: CategoryBehavioral, Description: "Speed and firmness in reaching decisions", ScaleLow: "Deliberative", ScaleHigh: "Decisive", Weight: 0.9},
		{Name: "Confidence", Category: CategoryEmotional, Description: "Trust in one's own judgement under pressure", ScaleLow: "Tentative", ScaleHigh: "Assured", Weight: 0.8},
		{Name: "Creativity", Category: CategoryCognitive, Description: "Generation of novel ideas and approaches", ScaleLow: "Conventional", ScaleHigh: "Inventive", Weight: 1.0},
		{Name: "Empathy", Category: CategoryInterpersonal, Description: "Sensitivity to the feelings and needs of others", ScaleLow: "Detached", ScaleHigh: "Attuned", Weight: 1.0},
		{Name: "Detail Orientation", Category: CategoryBehavioral, Description: "Attention to precision and completeness", ScaleLow: "Big-picture", ScaleHigh: "Meticulous", Weight: 0.9},
		{Name: "Drive", Category: CategoryMotivational, Description: "Persistence toward goals", ScaleLow: "Relaxed", ScaleHigh: "Driven", Weight: 0.8},
	}
}

// TraitCompatibility scores two profiles 0-100 over their shared traits; 50 when nothing overlaps.
func TraitCompatibility(a, b *TraitProfile) float64 {
	total, n := 0.0, 0
	for name, va := range a.scores {
		vb, ok := b.scores[name]
		if !ok {
			continue
		}
		total += math.Abs(va - vb)
		n++
	}
	if n == 0 {
		return 50.0
	}
	return math.Max(0, 100-total/float64(n))
}
