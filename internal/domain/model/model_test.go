package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/okian/sportfit/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestCategory(t *testing.T) {
	convey.Convey("Given the recommendation tiers", t, func() {
		convey.Convey("Then the three defined tiers are valid", func() {
			convey.So(model.HighlyRecommended.Valid(), convey.ShouldBeTrue)
			convey.So(model.Recommended.Valid(), convey.ShouldBeTrue)
			convey.So(model.Potential.Valid(), convey.ShouldBeTrue)
		})

		convey.Convey("Then their wire strings are fixed", func() {
			convey.So(string(model.HighlyRecommended), convey.ShouldEqual, "highly_recommended")
			convey.So(string(model.Recommended), convey.ShouldEqual, "recommended")
			convey.So(string(model.Potential), convey.ShouldEqual, "potential")
		})

		convey.Convey("Then anything else is invalid", func() {
			convey.So(model.Category("").Valid(), convey.ShouldBeFalse)
			convey.So(model.Category("elite").Valid(), convey.ShouldBeFalse)
		})
	})
}

func TestSportProfileClone(t *testing.T) {
	convey.Convey("Given a sport profile", t, func() {
		p := model.SportProfile{
			ID:              "athletics",
			Weights:         map[string]float64{"30m Sprint": 0.3},
			StrengthTags:    []string{"speed"},
			ImprovementTags: []string{"endurance"},
			Reasoning:       []string{"fast"},
		}

		convey.Convey("When the clone is mutated", func() {
			c := p.Clone()
			c.Weights["30m Sprint"] = 9
			c.StrengthTags[0] = "x"
			c.ImprovementTags[0] = "y"
			c.Reasoning[0] = "z"

			convey.Convey("Then the original is untouched", func() {
				convey.So(p.Weights["30m Sprint"], convey.ShouldEqual, 0.3)
				convey.So(p.StrengthTags[0], convey.ShouldEqual, "speed")
				convey.So(p.ImprovementTags[0], convey.ShouldEqual, "endurance")
				convey.So(p.Reasoning[0], convey.ShouldEqual, "fast")
			})
		})

		convey.Convey("When cloning a zero profile", func() {
			c := model.SportProfile{}.Clone()

			convey.Convey("Then nil slices and maps stay nil", func() {
				convey.So(c.Weights, convey.ShouldBeNil)
				convey.So(c.Reasoning, convey.ShouldBeNil)
			})
		})
	})
}

func TestInvalidInputError(t *testing.T) {
	convey.Convey("Given an invalid input error", t, func() {
		err := &model.InvalidInputError{Index: 2, Metric: "Vertical Jump", Reason: "percentile 101 outside [0,100]"}

		convey.Convey("Then it matches the sentinel even when wrapped", func() {
			wrapped := fmt.Errorf("score: %w", err)
			convey.So(errors.Is(wrapped, model.ErrInvalidInput), convey.ShouldBeTrue)

			var target *model.InvalidInputError
			convey.So(errors.As(wrapped, &target), convey.ShouldBeTrue)
			convey.So(target.Index, convey.ShouldEqual, 2)
		})

		convey.Convey("Then the message names the result", func() {
			convey.So(err.Error(), convey.ShouldContainSubstring, `result 2 ("Vertical Jump")`)
			noName := &model.InvalidInputError{Index: 0, Reason: "empty metric name"}
			convey.So(noName.Error(), convey.ShouldEqual, "invalid input: result 0: empty metric name")
		})
	})
}
