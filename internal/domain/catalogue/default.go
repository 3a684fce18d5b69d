package catalogue

import (
	"sync"

	"github.com/okian/sportfit/internal/domain/model"
)

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the built-in catalogue. It is built once and shared.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		c, err := New(DefaultProfiles()...)
		if err != nil {
			panic("built-in catalogue is invalid: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}

// DefaultProfiles returns a fresh copy of the built-in sport profiles.
func DefaultProfiles() []model.SportProfile { //nolint:funlen // catalogue data
	return []model.SportProfile{
		{
			ID:   "athletics",
			Name: "Athletics (Sprints & Jumps)",
			Icon: "directions_run",
			Weights: map[string]float64{
				MetricSprint30m:    0.3,
				MetricVerticalJump: 0.2,
				MetricBroadJump:    0.2,
				MetricEnduranceRun: 0.3,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Explosive speed", "Leg power", "Aerobic base"},
			ImprovementTags: []string{"Block starts", "Running mechanics"},
			Reasoning: []string{
				"Sprint and jump results point to a high proportion of fast-twitch power.",
				"Endurance scores support repeated high-intensity efforts across heats.",
			},
		},
		{
			ID:   "badminton",
			Name: "Badminton",
			Icon: "sports_tennis",
			Weights: map[string]float64{
				MetricShuttleRun:   0.35,
				MetricSprint30m:    0.2,
				MetricVerticalJump: 0.15,
				MetricSitAndReach:  0.15,
				MetricEnduranceRun: 0.15,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Court agility", "Reaction speed"},
			ImprovementTags: []string{"Wrist strength", "Shot placement"},
			Reasoning: []string{
				"Shuttle run results show quick changes of direction, central to court coverage.",
				"Flexibility supports deep lunges and overhead reach.",
			},
		},
		{
			ID:   "basketball",
			Name: "Basketball",
			Icon: "sports_basketball",
			Weights: map[string]float64{
				MetricVerticalJump:      0.35,
				MetricSprint30m:         0.2,
				MetricShuttleRun:        0.2,
				MetricMedicineBallThrow: 0.1,
				MetricEnduranceRun:      0.15,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Vertical leap", "First-step quickness"},
			ImprovementTags: []string{"Ball handling", "Upper-body contact strength"},
			Reasoning: []string{
				"Vertical jump is the strongest single predictor for rebounding and shot blocking.",
				"Agility and sprint results suit transition play.",
			},
		},
		{
			ID:   "boxing",
			Name: "Boxing",
			Icon: "sports_mma",
			Weights: map[string]float64{
				MetricPushUps:           0.25,
				MetricMedicineBallThrow: 0.25,
				MetricEnduranceRun:      0.25,
				MetricShuttleRun:        0.15,
				MetricSitUps:            0.1,
			},
			HighThreshold:   78,
			StrengthTags:    []string{"Upper-body power", "Work capacity"},
			ImprovementTags: []string{"Footwork", "Defensive reflexes"},
			Reasoning: []string{
				"Throw and push-up results indicate punching power and muscular endurance.",
				"Aerobic capacity carries output through later rounds.",
			},
		},
		{
			ID:   "cycling",
			Name: "Cycling",
			Icon: "directions_bike",
			Weights: map[string]float64{
				MetricEnduranceRun: 0.5,
				MetricBroadJump:    0.15,
				MetricVerticalJump: 0.1,
				MetricSitUps:       0.15,
				MetricSprint30m:    0.1,
			},
			HighThreshold:   82,
			StrengthTags:    []string{"Aerobic engine", "Leg strength"},
			ImprovementTags: []string{"Pacing", "Bike handling"},
			Reasoning: []string{
				"Endurance run results reflect the aerobic capacity road and track events demand.",
				"Horizontal leg power transfers to sprint finishes.",
			},
		},
		{
			ID:   "football",
			Name: "Football",
			Icon: "sports_soccer",
			Weights: map[string]float64{
				MetricSprint30m:    0.25,
				MetricEnduranceRun: 0.3,
				MetricShuttleRun:   0.25,
				MetricBroadJump:    0.1,
				MetricVerticalJump: 0.1,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Repeated sprint ability", "Agility"},
			ImprovementTags: []string{"Ball control", "Tactical awareness"},
			Reasoning: []string{
				"Match play combines long aerobic work with short sprints, both well covered.",
				"Shuttle run results suit pressing and quick turns.",
			},
		},
		{
			ID:   "gymnastics",
			Name: "Gymnastics",
			Icon: "sports_gymnastics",
			Weights: map[string]float64{
				MetricSitAndReach:  0.35,
				MetricSitUps:       0.2,
				MetricPushUps:      0.2,
				MetricVerticalJump: 0.15,
				MetricBroadJump:    0.1,
			},
			HighThreshold:   82,
			StrengthTags:    []string{"Flexibility", "Relative strength"},
			ImprovementTags: []string{"Body awareness", "Landing control"},
			Reasoning: []string{
				"Sit and reach results show the range of motion apparatus work requires.",
				"Core and upper-body endurance support holds and swings.",
			},
		},
		{
			ID:   "hockey",
			Name: "Field Hockey",
			Icon: "sports_hockey",
			Weights: map[string]float64{
				MetricSprint30m:    0.25,
				MetricShuttleRun:   0.3,
				MetricEnduranceRun: 0.3,
				MetricSitUps:       0.15,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Agility", "Aerobic endurance"},
			ImprovementTags: []string{"Stick skills", "Low body position"},
			Reasoning: []string{
				"Shuttle and sprint results suit rapid direction changes with the ball.",
				"Core endurance helps hold the low stance the game requires.",
			},
		},
		{
			ID:   "kabaddi",
			Name: "Kabaddi",
			Icon: "sports_kabaddi",
			Weights: map[string]float64{
				MetricShuttleRun: 0.25,
				MetricSprint30m:  0.2,
				MetricPushUps:    0.2,
				MetricSitUps:     0.2,
				MetricBroadJump:  0.15,
			},
			HighThreshold:   78,
			StrengthTags:    []string{"Evasive agility", "Grappling strength"},
			ImprovementTags: []string{"Breath control", "Tackling technique"},
			Reasoning: []string{
				"Raids reward the quick feet and bursts shown in shuttle and sprint results.",
				"Push-up and sit-up scores support holds and escapes.",
			},
		},
		{
			ID:   "swimming",
			Name: "Swimming",
			Icon: "pool",
			Weights: map[string]float64{
				MetricEnduranceRun:      0.35,
				MetricSitAndReach:       0.2,
				MetricPushUps:           0.2,
				MetricMedicineBallThrow: 0.15,
				MetricSitUps:            0.1,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Aerobic capacity", "Shoulder mobility"},
			ImprovementTags: []string{"Stroke technique", "Turns and starts"},
			Reasoning: []string{
				"Aerobic results transfer well to middle-distance swimming.",
				"Flexibility and upper-body endurance support an efficient stroke.",
			},
		},
		{
			ID:   "volleyball",
			Name: "Volleyball",
			Icon: "sports_volleyball",
			Weights: map[string]float64{
				MetricVerticalJump:      0.4,
				MetricBroadJump:         0.15,
				MetricMedicineBallThrow: 0.15,
				MetricShuttleRun:        0.15,
				MetricSprint30m:         0.1,
				MetricSitAndReach:       0.05,
			},
			HighThreshold:   80,
			StrengthTags:    []string{"Jump height", "Arm power"},
			ImprovementTags: []string{"Passing", "Court positioning"},
			Reasoning: []string{
				"Vertical jump drives attacking and blocking at the net.",
				"Throwing power carries into serves and spikes.",
			},
		},
		{
			ID:   "weightlifting",
			Name: "Weightlifting",
			Icon: "fitness_center",
			Weights: map[string]float64{
				MetricMedicineBallThrow: 0.45,
				MetricBroadJump:         0.3,
				MetricVerticalJump:      0.25,
				MetricPushUps:           0.15,
			},
			HighThreshold:   85,
			StrengthTags:    []string{"Maximal power", "Triple extension"},
			ImprovementTags: []string{"Overhead mobility", "Lift technique"},
			Reasoning: []string{
				"Throw and jump results show the explosive hip drive Olympic lifts are built on.",
			},
		},
		{
			ID:   "wrestling",
			Name: "Wrestling",
			Icon: "sports_martial_arts",
			Weights: map[string]float64{
				MetricPushUps:           0.25,
				MetricSitUps:            0.25,
				MetricMedicineBallThrow: 0.2,
				MetricSitAndReach:       0.1,
				MetricEnduranceRun:      0.2,
			},
			HighThreshold:   78,
			StrengthTags:    []string{"Muscular endurance", "Core strength"},
			ImprovementTags: []string{"Takedown technique", "Weight management"},
			Reasoning: []string{
				"Push-up and sit-up results indicate the grip and core endurance bouts demand.",
				"Aerobic capacity sustains pressure across periods.",
			},
		},
	}
}
