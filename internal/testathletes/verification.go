package testathletes

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/okian/sportfit/internal/domain/model"
)

// Bounds every returned match percentage must respect.
const (
	minExclusiveMatch = 50.0
	maxMatch          = 95.0
)

var errMismatch = errors.New("recommendation lists differ")

// verifyReport checks bounds, ordering and category of one report.
func verifyReport(a Athlete, rep Report) error {
	if rep.AthleteID != a.ID {
		return fmt.Errorf("athlete id %q echoed as %q", a.ID, rep.AthleteID)
	}
	if rep.RequestID == "" {
		return errors.New("missing request id")
	}
	for i, rec := range rep.Recommendations {
		if rec.MatchPercentage <= minExclusiveMatch || rec.MatchPercentage > maxMatch {
			return fmt.Errorf("%s: match %.1f outside (50, 95]", rec.SportID, rec.MatchPercentage)
		}
		if rec.Category != model.HighlyRecommended && rec.Category != model.Recommended {
			return fmt.Errorf("%s: unexpected category %q", rec.SportID, rec.Category)
		}
		if i == 0 {
			continue
		}
		prev := rep.Recommendations[i-1]
		if prev.MatchPercentage < rec.MatchPercentage ||
			(prev.MatchPercentage == rec.MatchPercentage && prev.SportID >= rec.SportID) {
			return fmt.Errorf("%s before %s breaks ordering", prev.SportID, rec.SportID)
		}
	}
	return nil
}

// sameRecommendations reports whether two lists are identical.
func sameRecommendations(a, b []model.Recommendation) error {
	if !reflect.DeepEqual(a, b) {
		return errMismatch
	}
	return nil
}
