// Package casestudy holds the seed case library and matches assessment
// profiles against it.
package casestudy

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var seed []byte

const dateLayout = "2006-01-02"

type Case struct {
	ID            string             `yaml:"id" json:"id"`
	Title         string             `yaml:"title" json:"title"`
	Framework     string             `yaml:"framework" json:"framework"`
	CreatedAt     time.Time          `yaml:"-" json:"created_at"`
	Profile       map[string]any     `yaml:"profile" json:"profile"`
	Interventions []string           `yaml:"interventions" json:"interventions"`
	Outcomes      map[string]float64 `yaml:"outcomes" json:"outcomes"`

	Date string `yaml:"created_at" json:"-"`
}

func (c Case) Summary() string {
	return fmt.Sprintf("%s: %s approach", c.Title, c.Framework)
}

// Mapper is safe for concurrent use.
type Mapper struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Case
}

func NewMapper() (*Mapper, error) {
	var cases []Case
	if err := yaml.Unmarshal(seed, &cases); err != nil {
		return nil, fmt.Errorf("decode case seed: %w", err)
	}
	m := &Mapper{byID: make(map[string]Case, len(cases))}
	for _, c := range cases {
		t, err := time.Parse(dateLayout, c.Date)
		if err != nil {
			return nil, fmt.Errorf("case %s: bad created_at %q: %w", c.ID, c.Date, err)
		}
		c.CreatedAt = t
		m.Add(c)
	}
	return m, nil
}

// MustNewMapper panics if the embedded seed is malformed.
func MustNewMapper() *Mapper {
	m, err := NewMapper()
	if err != nil {
		panic(err)
	}
	return m
}

// Add inserts or replaces a case; replacement keeps the original position.
func (m *Mapper) Add(c Case) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.byID[c.ID] = c
}

func (m *Mapper) Get(id string) (Case, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.byID[id]
	return c, ok
}

func (m *Mapper) All() []Case {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Case, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

func (m *Mapper) Frameworks() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range m.All() {
		if !seen[c.Framework] {
			seen[c.Framework] = true
			out = append(out, c.Framework)
		}
	}
	sort.Strings(out)
	return out
}

// FindSimilar ranks cases by the share of shared profile keys with equal values.
func (m *Mapper) FindSimilar(profile map[string]any, limit int) []Case {
	all := m.All()
	scores := make([]float64, len(all))
	for i, c := range all {
		scores[i] = Similarity(profile, c.Profile)
	}
	idx := make([]int, len(all))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	if limit < 0 {
		limit = 0
	}
	if limit > len(idx) {
		limit = len(idx)
	}
	out := make([]Case, 0, limit)
	for _, i := range idx[:limit] {
		out = append(out, all[i])
	}
	return out
}

// Similarity is 0 when the profiles share no keys.
func Similarity(a, b map[string]any) float64 {
	var common, equal int
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			continue
		}
		common++
		if sameValue(va, vb) {
			equal++
		}
	}
	if common == 0 {
		return 0
	}
	return float64(equal) / float64(common)
}

// sameValue compares through JSON so 8 and 8.0 and []any/[]string agree.
func sameValue(a, b any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

// RecommendInterventions unions interventions of the three closest cases in first-seen order.
func (m *Mapper) RecommendInterventions(profile map[string]any) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range m.FindSimilar(profile, 3) {
		for _, iv := range c.Interventions {
			if seen[iv] {
				continue
			}
			seen[iv] = true
			out = append(out, iv)
		}
	}
	return out
}

type Lesson struct {
	CaseID           string             `json:"case_id"`
	Title            string             `json:"title"`
	KeyInterventions []string           `json:"key_interventions"`
	Outcomes         map[string]float64 `json:"outcomes"`
	Applicability    string             `json:"applicability"`
}

// ExtractLessons rates applicability by the mean outcome gain.
func ExtractLessons(cases []Case) []Lesson {
	out := make([]Lesson, 0, len(cases))
	for _, c := range cases {
		out = append(out, Lesson{
			CaseID:           c.ID,
			Title:            c.Title,
			KeyInterventions: c.Interventions,
			Outcomes:         c.Outcomes,
			Applicability:    applicability(c.Outcomes),
		})
	}
	return out
}

func applicability(outcomes map[string]float64) string {
	if len(outcomes) == 0 {
		return "low"
	}
	var sum float64
	for _, v := range outcomes {
		sum += v
	}
	switch mean := sum / float64(len(outcomes)); {
	case mean >= 0.4:
		return "high"
	case mean >= 0.2:
		return "medium"
	default:
		return "low"
	}
}

func Report(c Case, details bool) map[string]any {
	r := map[string]any{
		"id":        c.ID,
		"title":     c.Title,
		"framework": c.Framework,
		"date":      c.CreatedAt.Format("2006-01-02T15:04:05"),
	}
	if details {
		r["profile"] = c.Profile
		r["interventions"] = c.Interventions
		r["outcomes"] = c.Outcomes
	}
	return r
}
