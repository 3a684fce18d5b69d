package testathletes

// Runner configuration constants.
const (
	DeterminismSample    = 10
	PercentageMultiplier = 100
)

// invalidPercentile is submitted to check that the service rejects
// out-of-range batches.
const invalidPercentile = 150
