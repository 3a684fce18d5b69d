// Package normalize turns submitted test results into a percentile lookup.
package normalize

import (
	"math"
	"strings"

	"github.com/okian/sportfit/internal/domain/model"
)

// Lookup maps a metric name to its percentile. Missing metrics are absent.
type Lookup map[string]float64

// Percentile returns the percentile for metric, or 0 if it was not submitted.
func (l Lookup) Percentile(metric string) float64 {
	return l[metric]
}

// Build converts results into a Lookup. A repeated metric name keeps the
// last occurrence. Percentiles are copied as-is; range checks belong to the
// scorer. Build fails only on an empty metric name or a non-finite
// percentile.
func Build(results []model.TestResult) (Lookup, error) {
	lookup := make(Lookup, len(results))
	for i, r := range results {
		if strings.TrimSpace(r.MetricName) == "" {
			return nil, &model.InvalidInputError{Index: i, Metric: r.MetricName, Reason: "empty metric name"}
		}
		if math.IsNaN(r.Percentile) || math.IsInf(r.Percentile, 0) {
			return nil, &model.InvalidInputError{Index: i, Metric: r.MetricName, Reason: "percentile is not a finite number"}
		}
		lookup[r.MetricName] = r.Percentile
	}
	return lookup, nil
}
