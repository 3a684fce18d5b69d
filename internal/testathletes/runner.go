package testathletes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/okian/sportfit/pkg/logger"
)

// ErrVerification reports that at least one response broke an invariant.
var ErrVerification = errors.New("verification failed")

// submission pairs an athlete with the report the service returned.
type submission struct {
	athlete Athlete
	report  Report
}

// Run executes the complete athlete test.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}
	client := newHTTPClient(cfg.Timeout)

	logger.Get().Info(ctx, "starting sport-fit athlete test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("athletes", cfg.Athletes),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Bool("verbose", cfg.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, cfg); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate athletes
	athletes := generateAthletes(ctx, cfg, stats)

	// Step 3: Submit and verify concurrently
	subs := submitAthletes(ctx, client, cfg, athletes, stats)

	// Step 4: Resubmit a sample and compare
	checkDeterminism(ctx, client, cfg, subs, stats)

	// Step 5: An out-of-range batch must be rejected
	if err := checkRejection(ctx, client, cfg); err != nil {
		stats.VerificationFailures++
		logger.Get().Error(ctx, "invalid batch was not rejected", logger.Error(err))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.VerificationFailures > 0 || stats.AthletesFailed > 0 {
		return fmt.Errorf("%w: %d verification failures, %d failed submissions",
			ErrVerification, stats.VerificationFailures, stats.AthletesFailed)
	}
	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, cfg *Config) error {
	status, _, err := client.Get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", status)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// submitAthletes scores every athlete through a bounded pool and verifies
// each report. Successful submissions are returned in input order.
func submitAthletes(ctx context.Context, client *HTTPClient, cfg *Config, athletes []Athlete, stats *Stats) []submission {
	log := logger.Get().Named("submit")
	p := pool.New().WithMaxGoroutines(max(cfg.Workers, 1))

	var mu sync.Mutex
	results := make([]*submission, len(athletes))

	for i, a := range athletes {
		p.Go(func() {
			rep, err := client.recommend(ctx, cfg.BaseURL, a)
			var verr error
			if err == nil {
				verr = verifyReport(a, rep)
			}

			mu.Lock()
			defer mu.Unlock()
			stats.AthletesSubmitted++
			switch {
			case err != nil:
				stats.AthletesFailed++
				log.Warn(ctx, "submission failed", logger.String("athleteID", a.ID), logger.Error(err))
			case verr != nil:
				stats.AthletesSuccessful++
				stats.VerificationFailures++
				log.Error(ctx, "report failed verification",
					logger.String("athleteID", a.ID),
					logger.String("archetype", a.Archetype),
					logger.Error(verr))
			default:
				stats.AthletesSuccessful++
				stats.RecommendationsSeen += len(rep.Recommendations)
				if len(rep.Recommendations) == 0 {
					stats.EmptyLists++
				}
				results[i] = &submission{athlete: a, report: rep}
				if cfg.Verbose {
					log.Debug(ctx, "scored athlete",
						logger.String("athleteID", a.ID),
						logger.String("archetype", a.Archetype),
						logger.Int("recommendations", len(rep.Recommendations)))
				}
			}
		})
	}
	p.Wait()

	out := make([]submission, 0, len(results))
	for _, s := range results {
		if s != nil {
			out = append(out, *s)
		}
	}
	logger.Get().Info(ctx, "athlete submission completed",
		logger.Int("successful", stats.AthletesSuccessful),
		logger.Int("failed", stats.AthletesFailed))
	return out
}

// checkDeterminism resubmits the first few athletes and expects identical lists.
func checkDeterminism(ctx context.Context, client *HTTPClient, cfg *Config, subs []submission, stats *Stats) {
	n := min(len(subs), DeterminismSample)
	for _, s := range subs[:n] {
		rep, err := client.recommend(ctx, cfg.BaseURL, s.athlete)
		if err == nil {
			err = sameRecommendations(s.report.Recommendations, rep.Recommendations)
		}
		stats.DeterminismChecked++
		if err != nil {
			stats.VerificationFailures++
			logger.Get().Error(ctx, "resubmission differs", logger.String("athleteID", s.athlete.ID), logger.Error(err))
		}
	}
}

// checkRejection submits an out-of-range percentile and expects 400.
func checkRejection(ctx context.Context, client *HTTPClient, cfg *Config) error {
	status, body, err := client.Post(ctx, cfg.BaseURL+"/recommendations", invalidAthlete())
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("expected 400, got %d: %s", status, body)
	}
	return nil
}

// displayFinalStats logs the final test statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, athletesPerSecond, avgRecommendations float64
	if stats.AthletesSubmitted > 0 {
		successRate = float64(stats.AthletesSuccessful) / float64(stats.AthletesSubmitted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		athletesPerSecond = float64(stats.AthletesSubmitted) / stats.Duration.Seconds()
	}
	if stats.AthletesSuccessful > 0 {
		avgRecommendations = float64(stats.RecommendationsSeen) / float64(stats.AthletesSuccessful)
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("athletesGenerated", stats.AthletesGenerated),
		logger.Int("athletesSubmitted", stats.AthletesSubmitted),
		logger.Int("athletesSuccessful", stats.AthletesSuccessful),
		logger.Int("athletesFailed", stats.AthletesFailed),
		logger.Int("verificationFailures", stats.VerificationFailures),
		logger.Int("emptyLists", stats.EmptyLists),
		logger.Int("determinismChecked", stats.DeterminismChecked),
		logger.Float64("avgRecommendations", avgRecommendations),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("athletesPerSecond", athletesPerSecond))
}
