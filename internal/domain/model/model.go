// Package model contains domain models passed between layers.
package model

// TestResult is one measured or derived fitness-test observation.
// Only MetricName and Percentile take part in scoring.
type TestResult struct {
	MetricName string  `json:"metric_name"`
	RawScore   float64 `json:"raw_score"`
	Percentile float64 `json:"percentile"`
	Unit       string  `json:"unit,omitempty"`
}

// Category is the tier attached to a recommended sport.
type Category string

// Recommendation tiers.
const (
	HighlyRecommended Category = "highly_recommended"
	Recommended       Category = "recommended"
	// Potential is kept for catalogue entries with an inclusion floor below
	// the current one; no built-in sport can reach it.
	Potential Category = "potential"
)

// Valid reports whether c is one of the defined tiers.
func (c Category) Valid() bool {
	switch c {
	case HighlyRecommended, Recommended, Potential:
		return true
	}
	return false
}

// SportProfile is one static catalogue entry.
type SportProfile struct {
	ID   string `json:"sport_id" koanf:"id"`
	Name string `json:"name" koanf:"name"`
	Icon string `json:"icon" koanf:"icon"`

	// Weights maps a metric name to its non-negative weight. Metrics not
	// listed contribute nothing.
	Weights map[string]float64 `json:"weights" koanf:"weights"`

	// HighThreshold is t_high: a match strictly above it is highly recommended.
	HighThreshold float64 `json:"high_threshold" koanf:"high_threshold"`

	StrengthTags    []string `json:"strength_tags" koanf:"strength_tags"`
	ImprovementTags []string `json:"improvement_tags" koanf:"improvement_tags"`
	Reasoning       []string `json:"reasoning" koanf:"reasoning"`
}

// Clone returns a deep copy of p.
func (p SportProfile) Clone() SportProfile {
	out := p
	if p.Weights != nil {
		out.Weights = make(map[string]float64, len(p.Weights))
		for k, v := range p.Weights {
			out.Weights[k] = v
		}
	}
	out.StrengthTags = cloneStrings(p.StrengthTags)
	out.ImprovementTags = cloneStrings(p.ImprovementTags)
	out.Reasoning = cloneStrings(p.Reasoning)
	return out
}

// Recommendation is one qualifying sport in a scoring result.
type Recommendation struct {
	SportID         string   `json:"sport_id"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	MatchPercentage float64  `json:"match_percentage"`
	Category        Category `json:"category"`
	Reasoning       []string `json:"reasoning"`
	StrengthTags    []string `json:"strength_tags"`
	ImprovementTags []string `json:"improvement_tags"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
