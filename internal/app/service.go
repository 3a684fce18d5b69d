// Package service provides the application service behind the HTTP API:
// it owns the recommendation engine and wraps each call with logging,
// metrics and request identity.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/sportfit/internal/domain/catalogue"
	"github.com/okian/sportfit/internal/domain/model"
	"github.com/okian/sportfit/internal/domain/recommend"
	"github.com/okian/sportfit/pkg/logger"
	"github.com/okian/sportfit/pkg/metrics"
)

const defaultMaxTestResults = 64

// Report is the answer to one recommendation request.
type Report struct {
	RequestID       string                 `json:"request_id"`
	AthleteID       string                 `json:"athlete_id,omitempty"`
	GeneratedAt     time.Time              `json:"generated_at"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// SportSummary is the catalogue view served to the dashboard.
type SportSummary struct {
	SportID       string   `json:"sport_id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	HighThreshold float64  `json:"high_threshold"`
	Metrics       []string `json:"metrics"`
}

// Service implements the API dependencies for sport recommendations.
type Service struct {
	mu sync.RWMutex

	engine *recommend.Engine

	// Configuration
	catalogue      *catalogue.Catalogue
	cataloguePath  string
	maxTestResults int

	// State
	started   bool
	startedAt time.Time

	requests atomic.Int64
	invalid  atomic.Int64
	explains atomic.Int64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalogue injects a prebuilt catalogue. It wins over WithCataloguePath.
func WithCatalogue(c *catalogue.Catalogue) Option {
	return func(s *Service) {
		s.catalogue = c
	}
}

// WithCataloguePath makes Start load the catalogue from a YAML file.
func WithCataloguePath(path string) Option {
	return func(s *Service) {
		s.cataloguePath = path
	}
}

// WithMaxTestResults bounds the batch size accepted by Recommend and Explain.
func WithMaxTestResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTestResults = n
		}
	}
}

// New constructs a Service. Call Start before use.
func New(opts ...Option) *Service {
	s := &Service{
		maxTestResults: defaultMaxTestResults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalogue and compiles the engine. Calling Start on a
// started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	cat, source, err := s.loadCatalogue(ctx)
	if err != nil {
		return err
	}
	s.catalogue = cat
	s.engine = recommend.New(cat)
	s.started = true
	s.startedAt = time.Now()

	metrics.UpdateCatalogue(cat.Len(), len(cat.Metrics()), s.startedAt)
	s.logger.Info(ctx, "recommendation service started",
		logger.String("catalogue", source),
		logger.Int("sports", cat.Len()),
		logger.Int("metrics", len(cat.Metrics())),
		logger.Int("maxTestResults", s.maxTestResults),
	)
	return nil
}

func (s *Service) loadCatalogue(ctx context.Context) (*catalogue.Catalogue, string, error) {
	switch {
	case s.catalogue != nil:
		return s.catalogue, "injected", nil
	case s.cataloguePath != "":
		c, err := catalogue.Load(ctx, s.cataloguePath)
		if err != nil {
			return nil, "", err
		}
		return c, s.cataloguePath, nil
	default:
		return catalogue.Default(), "built-in", nil
	}
}

// Stop marks the service stopped. The engine holds no resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped",
		logger.Duration("uptime", time.Since(s.startedAt)))
}

func (s *Service) current() (*recommend.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.engine, nil
}

func (s *Service) checkBatch(ctx context.Context, results []model.TestResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(results) > s.maxTestResults {
		return fmt.Errorf("%w: %d submitted, at most %d allowed", ErrTooManyResults, len(results), s.maxTestResults)
	}
	return nil
}

// Recommend scores one athlete's test results. Invalid batches fail whole
// with an error matching model.ErrInvalidInput.
func (s *Service) Recommend(ctx context.Context, athleteID string, results []model.TestResult) (Report, error) {
	engine, err := s.current()
	if err != nil {
		return Report{}, err
	}
	if err := s.checkBatch(ctx, results); err != nil {
		return Report{}, err
	}

	requestID := uuid.NewString()
	s.requests.Add(1)
	metrics.RecordRecommendRequest(len(results))

	start := time.Now()
	recs, err := engine.Score(results)
	metrics.RecordScoringLatency(time.Since(start))
	if err != nil {
		s.recordFailure(ctx, requestID, err)
		return Report{}, err
	}

	for _, r := range recs {
		metrics.RecordRecommendation(r.SportID, string(r.Category))
	}
	metrics.RecordSportsPerRequest(len(recs))

	s.logger.Debug(ctx, "scored test results",
		logger.String("requestID", requestID),
		logger.String("athleteID", athleteID),
		logger.Int("results", len(results)),
		logger.Int("recommendations", len(recs)),
	)

	return Report{
		RequestID:       requestID,
		AthleteID:       athleteID,
		GeneratedAt:     time.Now().UTC(),
		Recommendations: recs,
	}, nil
}

// Explain breaks down one sport's score for the given results.
func (s *Service) Explain(ctx context.Context, sportID string, results []model.TestResult) (recommend.Explanation, error) {
	engine, err := s.current()
	if err != nil {
		return recommend.Explanation{}, err
	}
	if err := s.checkBatch(ctx, results); err != nil {
		return recommend.Explanation{}, err
	}

	ex, err := engine.Explain(results, sportID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			s.recordFailure(ctx, "", err)
		}
		return recommend.Explanation{}, err
	}
	s.explains.Add(1)
	metrics.RecordExplainRequest()
	return ex, nil
}

func (s *Service) recordFailure(ctx context.Context, requestID string, err error) {
	if !errors.Is(err, model.ErrInvalidInput) {
		s.logger.Error(ctx, "scoring failed", logger.String("requestID", requestID), logger.Error(err))
		return
	}
	s.invalid.Add(1)
	metrics.RecordInvalidInput()
	s.logger.Warn(ctx, "rejected invalid test results",
		logger.String("requestID", requestID),
		logger.Error(err),
	)
}

// Sports lists the catalogue in sport id order.
func (s *Service) Sports(_ context.Context) ([]SportSummary, error) {
	engine, err := s.current()
	if err != nil {
		return nil, err
	}
	cat := engine.Catalogue()
	out := make([]SportSummary, 0, cat.Len())
	cat.Range(func(p model.SportProfile) bool {
		out = append(out, summarize(p))
		return true
	})
	return out, nil
}

// Sport returns one catalogue profile.
func (s *Service) Sport(_ context.Context, sportID string) (model.SportProfile, error) {
	engine, err := s.current()
	if err != nil {
		return model.SportProfile{}, err
	}
	p, ok := engine.Catalogue().Get(sportID)
	if !ok {
		return model.SportProfile{}, fmt.Errorf("%w: %s", recommend.ErrSportNotFound, sportID)
	}
	return p, nil
}

func summarize(p model.SportProfile) SportSummary {
	names := make([]string, 0, len(p.Weights))
	for m := range p.Weights {
		names = append(names, m)
	}
	sort.Strings(names)
	return SportSummary{
		SportID:       p.ID,
		Name:          p.Name,
		Icon:          p.Icon,
		HighThreshold: p.HighThreshold,
		Metrics:       names,
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"maxTestResults":  s.maxTestResults,
		"requests":        s.requests.Load(),
		"invalidRequests": s.invalid.Load(),
		"explanations":    s.explains.Load(),
	}
	if s.started {
		stats["sports"] = s.catalogue.Len()
		stats["metrics"] = len(s.catalogue.Metrics())
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	return stats
}
