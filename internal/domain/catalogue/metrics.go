package catalogue

// Metric names of the fitness test battery the built-in catalogue weighs.
const (
	MetricSprint30m         = "30m Sprint"
	MetricVerticalJump      = "Vertical Jump"
	MetricBroadJump         = "Broad Jump"
	MetricEnduranceRun      = "Endurance Run"
	MetricShuttleRun        = "Shuttle Run"
	MetricSitAndReach       = "Sit and Reach"
	MetricSitUps            = "Sit-ups"
	MetricPushUps           = "Push-ups"
	MetricMedicineBallThrow = "Medicine Ball Throw"
)
