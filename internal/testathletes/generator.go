package testathletes

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/okian/sportfit/internal/domain/catalogue"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/pkg/logger"
)

// Percentile shaping constants.
const (
	percentileSpread = 8.0
	dropMetricChance = 0.1
)

// archetype biases the mean percentile of each metric.
type archetype struct {
	name  string
	means map[string]float64
}

var metricUnits = map[string]string{ //nolint:gochecknoglobals // static table
	catalogue.MetricSprint30m:         "s",
	catalogue.MetricVerticalJump:      "cm",
	catalogue.MetricBroadJump:         "cm",
	catalogue.MetricEnduranceRun:      "min",
	catalogue.MetricShuttleRun:        "s",
	catalogue.MetricSitAndReach:       "cm",
	catalogue.MetricSitUps:            "reps",
	catalogue.MetricPushUps:           "reps",
	catalogue.MetricMedicineBallThrow: "m",
}

var archetypes = []archetype{ //nolint:gochecknoglobals // static table
	{name: "sprinter", means: map[string]float64{
		catalogue.MetricSprint30m: 92, catalogue.MetricVerticalJump: 85, catalogue.MetricBroadJump: 84,
		catalogue.MetricShuttleRun: 80, catalogue.MetricEnduranceRun: 45,
	}},
	{name: "endurance", means: map[string]float64{
		catalogue.MetricEnduranceRun: 94, catalogue.MetricShuttleRun: 72, catalogue.MetricSitUps: 75,
		catalogue.MetricSprint30m: 55, catalogue.MetricPushUps: 60,
	}},
	{name: "power", means: map[string]float64{
		catalogue.MetricMedicineBallThrow: 93, catalogue.MetricPushUps: 88, catalogue.MetricBroadJump: 80,
		catalogue.MetricVerticalJump: 78, catalogue.MetricSitUps: 70,
	}},
	{name: "all-rounder", means: map[string]float64{
		catalogue.MetricSprint30m: 75, catalogue.MetricVerticalJump: 75, catalogue.MetricBroadJump: 75,
		catalogue.MetricEnduranceRun: 75, catalogue.MetricShuttleRun: 75, catalogue.MetricSitAndReach: 75,
		catalogue.MetricSitUps: 75, catalogue.MetricPushUps: 75, catalogue.MetricMedicineBallThrow: 75,
	}},
	{name: "low", means: map[string]float64{
		catalogue.MetricSprint30m: 25, catalogue.MetricEnduranceRun: 30, catalogue.MetricSitUps: 20,
	}},
}

// generateAthletes builds the configured number of athletes. Percentiles
// come from a generator seeded with cfg.Seed so runs are repeatable.
func generateAthletes(ctx context.Context, cfg *Config, stats *Stats) []Athlete {
	logger.Get().Info(ctx, "generating synthetic athletes",
		logger.Int("athletes", cfg.Athletes),
		logger.Any("seed", cfg.Seed))

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)^0x9e3779b97f4a7c15)) //nolint:gosec // test data
	athletes := make([]Athlete, cfg.Athletes)
	for i := range athletes {
		a := archetypes[i%len(archetypes)]
		athletes[i] = Athlete{
			ID:        uuid.NewString(),
			Archetype: a.name,
			Results:   generateResults(rng, a),
		}
	}
	stats.AthletesGenerated = len(athletes)
	return athletes
}

func generateResults(rng *rand.Rand, a archetype) []model.TestResult {
	out := make([]model.TestResult, 0, len(a.means))
	for _, metric := range catalogue.Default().Metrics() {
		mean, ok := a.means[metric]
		if !ok || rng.Float64() < dropMetricChance {
			continue
		}
		p := mean + rng.NormFloat64()*percentileSpread
		out = append(out, model.TestResult{
			MetricName: metric,
			Percentile: math.Round(clamp(p, 0, 100)*10) / 10,
			Unit:       metricUnits[metric],
		})
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// invalidAthlete returns a batch the service must reject.
func invalidAthlete() Athlete {
	return Athlete{
		ID:        uuid.NewString(),
		Archetype: "invalid",
		Results: []model.TestResult{
			{MetricName: catalogue.MetricSprint30m, Percentile: 80},
			{MetricName: catalogue.MetricSitUps, Percentile: invalidPercentile},
		},
	}
}
