package freudian

import "math"

type StructuralElement string

const (
	ID       StructuralElement = "id"
	Ego      StructuralElement = "ego"
	Superego StructuralElement = "superego"
)

type StructuralBalance struct {
	IDStrength       float64 `json:"id_strength"`
	EgoStrength      float64 `json:"ego_strength"`
	SuperegoStrength float64 `json:"superego_strength"`
	BalanceScore     float64 `json:"balance_score"`
}

// AnalyzeStructuralBalance reads impulsivity, reality_testing and moral_standards
// (each 0-1) from data; missing keys fall back to population defaults.
func AnalyzeStructuralBalance(data map[string]any) StructuralBalance {
	id := unit(data, "impulsivity", 0.6)
	ego := unit(data, "reality_testing", 0.7)
	superego := unit(data, "moral_standards", 0.6)
	return StructuralBalance{
		IDStrength:       id,
		EgoStrength:      ego,
		SuperegoStrength: superego,
		BalanceScore:     round2(ego * (1 - math.Abs(id-superego))),
	}
}

var stages = []string{"oral", "anal", "phallic", "latency", "genital"}

type PsychosexualAssessment struct {
	DominantStage   string   `json:"dominant_stage"`
	Fixations       []string `json:"fixations"`
	OverallMaturity float64  `json:"overall_maturity"`
}

// AssessPsychosexualDevelopment reports the earliest fixated stage, or genital when none.
func AssessPsychosexualDevelopment(data map[string]any) PsychosexualAssessment {
	res := PsychosexualAssessment{DominantStage: "genital", Fixations: []string{}, OverallMaturity: 0.8}
	raw, _ := data["fixations"].([]any)
	seen := map[string]bool{}
	for _, f := range raw {
		s, ok := f.(string)
		if ok {
			seen[s] = true
		}
	}
	for _, st := range stages {
		if seen[st] {
			res.Fixations = append(res.Fixations, st)
		}
	}
	if len(res.Fixations) > 0 {
		res.DominantStage = res.Fixations[0]
		res.OverallMaturity = round2(math.Max(0, 0.8-0.15*float64(len(res.Fixations))))
	}
	return res
}

func unit(data map[string]any, key string, def float64) float64 {
	v, ok := data[key]
	if !ok {
		return def
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return def
	}
	return math.Max(0, math.Min(1, f))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
