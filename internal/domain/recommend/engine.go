// Package recommend scores normalized fitness-test percentiles against the
// sport catalogue and ranks the sports an athlete fits.
package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/sportfit/internal/domain/catalogue"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/normalize"
)

// Scoring constants. They are fixed; catalogue data is the only knob.
const (
	// MatchCeiling caps every reported match; no sport is ever a 100% fit.
	MatchCeiling = 95.0
	// InclusionFloor is the relevance threshold: a sport must score strictly
	// above it to be returned.
	InclusionFloor = 50.0

	minPercentile = 0.0
	maxPercentile = 100.0
	// matchPrecision rounds matches to one decimal place.
	matchPrecision = 10.0
)

// term is one weighted metric of a compiled sport.
type term struct {
	metric string
	weight float64
}

// plan is a sport compiled for scoring: its profile plus its weights in a
// fixed metric order so the weighted sum is reproducible bit for bit.
type plan struct {
	profile model.SportProfile
	terms   []term
}

// Engine ranks sports for a batch of test results. It is immutable after
// New and safe for concurrent use.
type Engine struct {
	cat   *catalogue.Catalogue
	plans []plan
	byID  map[string]int
}

// New compiles cat into an Engine. It panics if cat is nil.
func New(cat *catalogue.Catalogue) *Engine {
	if cat == nil {
		panic("recommend: catalogue is nil")
	}

	e := &Engine{cat: cat, byID: make(map[string]int, cat.Len())}
	for _, p := range cat.Profiles() {
		terms := make([]term, 0, len(p.Weights))
		for metric, w := range p.Weights {
			terms = append(terms, term{metric: metric, weight: w})
		}
		sort.Slice(terms, func(i, j int) bool { return terms[i].metric < terms[j].metric })
		e.byID[p.ID] = len(e.plans)
		e.plans = append(e.plans, plan{profile: p, terms: terms})
	}
	return e
}

// Catalogue returns the catalogue the engine was compiled from.
func (e *Engine) Catalogue() *catalogue.Catalogue { return e.cat }

// Score validates results and returns every sport matching above the
// inclusion floor, ordered by match descending then sport id ascending.
// An invalid batch fails as a whole with a *model.InvalidInputError.
func (e *Engine) Score(results []model.TestResult) ([]model.Recommendation, error) {
	lookup, err := prepare(results)
	if err != nil {
		return nil, err
	}

	recs := make([]model.Recommendation, 0, len(e.plans))
	for i := range e.plans {
		p := &e.plans[i]
		ev := p.evaluate(lookup)
		if !ev.Included {
			continue
		}
		recs = append(recs, model.Recommendation{
			SportID:         p.profile.ID,
			Name:            p.profile.Name,
			Icon:            p.profile.Icon,
			MatchPercentage: ev.MatchPercentage,
			Category:        ev.Category,
			Reasoning:       cloneStrings(p.profile.Reasoning),
			StrengthTags:    cloneStrings(p.profile.StrengthTags),
			ImprovementTags: cloneStrings(p.profile.ImprovementTags),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].MatchPercentage != recs[j].MatchPercentage {
			return recs[i].MatchPercentage > recs[j].MatchPercentage
		}
		return recs[i].SportID < recs[j].SportID
	})
	return recs, nil
}

// prepare builds the lookup and range-checks every percentile.
func prepare(results []model.TestResult) (normalize.Lookup, error) {
	lookup, err := normalize.Build(results)
	if err != nil {
		return nil, err
	}
	for i, r := range results {
		if r.Percentile < minPercentile || r.Percentile > maxPercentile {
			return nil, &model.InvalidInputError{
				Index:  i,
				Metric: r.MetricName,
				Reason: fmt.Sprintf("percentile %v outside [0,100]", r.Percentile),
			}
		}
	}
	return lookup, nil
}

func (p *plan) evaluate(lookup normalize.Lookup) Explanation {
	ex := Explanation{
		SportID:       p.profile.ID,
		Name:          p.profile.Name,
		HighThreshold: p.profile.HighThreshold,
		Contributions: make([]Contribution, len(p.terms)),
	}
	for i, t := range p.terms {
		pct, submitted := lookup[t.metric]
		points := t.weight * pct
		ex.Raw += points
		ex.Contributions[i] = Contribution{
			Metric:     t.metric,
			Weight:     t.weight,
			Percentile: pct,
			Points:     points,
			Submitted:  submitted,
		}
	}

	ex.MatchPercentage = math.Round(ex.Raw*matchPrecision) / matchPrecision
	if ex.MatchPercentage > MatchCeiling {
		ex.MatchPercentage = MatchCeiling
		ex.Capped = true
	}
	ex.Included = ex.MatchPercentage > InclusionFloor
	if ex.Included {
		ex.Category = classify(ex.MatchPercentage, p.profile.HighThreshold)
	}
	return ex
}

// classify maps an included match onto a tier. model.Potential is not
// produced: it would need an inclusion floor below InclusionFloor.
func classify(match, highThreshold float64) model.Category {
	if match > highThreshold {
		return model.HighlyRecommended
	}
	return model.Recommended
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
