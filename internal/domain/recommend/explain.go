package recommend

import (
	"fmt"

	"github.com/okian/sportfit/internal/domain/model"
)

// Contribution is one weighted metric's share of a sport's raw score.
type Contribution struct {
	Metric     string  `json:"metric_name"`
	Weight     float64 `json:"weight"`
	Percentile float64 `json:"percentile"`
	Points     float64 `json:"points"`
	Submitted  bool    `json:"submitted"`
}

// Explanation breaks down how one sport scored.
type Explanation struct {
	SportID         string         `json:"sport_id"`
	Name            string         `json:"name"`
	Contributions   []Contribution `json:"contributions"`
	Raw             float64        `json:"raw"`
	MatchPercentage float64        `json:"match_percentage"`
	Capped          bool           `json:"capped"`
	HighThreshold   float64        `json:"high_threshold"`
	Included        bool           `json:"included"`
	Category        model.Category `json:"category,omitempty"`
}

// Explain scores results against a single sport and returns the per-metric
// breakdown. It validates exactly like Score; contributions are ordered by
// metric name.
func (e *Engine) Explain(results []model.TestResult, sportID string) (Explanation, error) {
	i, ok := e.byID[sportID]
	if !ok {
		return Explanation{}, fmt.Errorf("%w: %s", ErrSportNotFound, sportID)
	}
	lookup, err := prepare(results)
	if err != nil {
		return Explanation{}, err
	}
	return e.plans[i].evaluate(lookup), nil
}
