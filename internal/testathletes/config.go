package testathletes

import (
	"time"

	service "github.com/okian/sportfit/internal/app"
	"github.com/okian/sportfit/internal/domain/model"
)

// Config holds configuration for the athlete test
type Config struct {
	BaseURL  string        // Base URL of the service
	Athletes int           // Number of synthetic athletes to score
	Workers  int           // Number of concurrent submitters
	Timeout  time.Duration // HTTP request timeout
	Seed     int64         // Seed for the percentile generator
	Verbose  bool          // Enable verbose logging
}

// Athlete is one synthetic athlete and the batch submitted for them.
type Athlete struct {
	ID        string             `json:"athlete_id"`
	Archetype string             `json:"-"`
	Results   []model.TestResult `json:"results"`
}

// Report is the decoded answer of POST /recommendations.
type Report = service.Report

// Stats holds test statistics
type Stats struct {
	AthletesGenerated    int
	AthletesSubmitted    int
	AthletesSuccessful   int
	AthletesFailed       int
	VerificationFailures int
	RecommendationsSeen  int
	EmptyLists           int
	DeterminismChecked   int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}
