package catalogue_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/okian/sportfit/internal/domain/catalogue"
	"github.com/okian/sportfit/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func profile(id string, threshold float64, weights map[string]float64) model.SportProfile {
	return model.SportProfile{ID: id, HighThreshold: threshold, Weights: weights}
}

func TestNew(t *testing.T) {
	Convey("Given sport profiles", t, func() {
		Convey("When they are valid and unsorted", func() {
			c, err := catalogue.New(
				profile("volleyball", 80, map[string]float64{"Vertical Jump": 1}),
				profile("athletics", 80, map[string]float64{"30m Sprint": 0.5, "Broad Jump": 0.5}),
			)

			Convey("Then the catalogue is sorted by id and indexes metrics", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 2)
				ps := c.Profiles()
				So(ps[0].ID, ShouldEqual, "athletics")
				So(ps[1].ID, ShouldEqual, "volleyball")
				So(ps[0].Name, ShouldEqual, "athletics")
				So(c.Metrics(), ShouldResemble, []string{"30m Sprint", "Broad Jump", "Vertical Jump"})
			})

			Convey("Then Get finds profiles by id", func() {
				p, ok := c.Get("volleyball")
				So(ok, ShouldBeTrue)
				So(p.Weights["Vertical Jump"], ShouldEqual, 1)
				_, ok = c.Get("curling")
				So(ok, ShouldBeFalse)
			})

			Convey("Then Range visits every profile in order and can stop early", func() {
				var ids []string
				c.Range(func(p model.SportProfile) bool {
					ids = append(ids, p.ID)
					return true
				})
				So(ids, ShouldResemble, []string{"athletics", "volleyball"})

				visited := 0
				c.Range(func(model.SportProfile) bool {
					visited++
					return false
				})
				So(visited, ShouldEqual, 1)
			})
		})

		Convey("When the caller mutates its input or returned copies", func() {
			in := profile("athletics", 80, map[string]float64{"30m Sprint": 1})
			c, err := catalogue.New(in)
			So(err, ShouldBeNil)
			in.Weights["30m Sprint"] = 0
			out, _ := c.Get("athletics")
			out.Weights["30m Sprint"] = 0
			c.Profiles()[0].Weights["30m Sprint"] = 0

			Convey("Then the catalogue is unchanged", func() {
				p, _ := c.Get("athletics")
				So(p.Weights["30m Sprint"], ShouldEqual, 1)
			})
		})

		Convey("When there are no profiles", func() {
			_, err := catalogue.New()
			So(errors.Is(err, catalogue.ErrEmptyCatalogue), ShouldBeTrue)
		})

		Convey("When an id repeats", func() {
			_, err := catalogue.New(
				profile("football", 80, map[string]float64{"Shuttle Run": 1}),
				profile("football", 80, map[string]float64{"Endurance Run": 1}),
			)
			So(errors.Is(err, catalogue.ErrDuplicateSport), ShouldBeTrue)
		})

		Convey("When a profile is malformed", func() {
			cases := []model.SportProfile{
				profile("", 80, map[string]float64{"Sit-ups": 1}),
				profile(" padded ", 80, map[string]float64{"Sit-ups": 1}),
				profile("empty", 80, nil),
				profile("negative", 80, map[string]float64{"Sit-ups": -0.1}),
				profile("nan", 80, map[string]float64{"Sit-ups": math.NaN()}),
				profile("blank-metric", 80, map[string]float64{" ": 1}),
				profile("low-threshold", 49, map[string]float64{"Sit-ups": 1}),
				profile("high-threshold", 96, map[string]float64{"Sit-ups": 1}),
			}
			for _, p := range cases {
				_, err := catalogue.New(p)
				So(errors.Is(err, catalogue.ErrInvalidProfile), ShouldBeTrue)
			}
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Given the built-in catalogue", t, func() {
		c := catalogue.Default()

		Convey("Then it is shared and complete", func() {
			So(catalogue.Default(), ShouldPointTo, c)
			So(c.Len(), ShouldEqual, len(catalogue.DefaultProfiles()))
			So(c.Metrics(), ShouldHaveLength, 9)
		})

		Convey("Then the athletics entry carries the sprint-weighted vector", func() {
			p, ok := c.Get("athletics")
			So(ok, ShouldBeTrue)
			So(p.Weights, ShouldResemble, map[string]float64{
				catalogue.MetricSprint30m:    0.3,
				catalogue.MetricVerticalJump: 0.2,
				catalogue.MetricBroadJump:    0.2,
				catalogue.MetricEnduranceRun: 0.3,
			})
		})

		Convey("Then every profile has rationale and tags", func() {
			c.Range(func(p model.SportProfile) bool {
				So(p.Reasoning, ShouldNotBeEmpty)
				So(p.StrengthTags, ShouldNotBeEmpty)
				So(p.ImprovementTags, ShouldNotBeEmpty)
				So(p.Icon, ShouldNotBeBlank)
				return true
			})
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given a YAML catalogue file", t, func() {
		ctx := context.Background()

		Convey("When the file is valid", func() {
			c, err := catalogue.Load(ctx, "testdata/catalogue.yaml")

			Convey("Then its profiles are loaded", func() {
				So(err, ShouldBeNil)
				So(c.Len(), ShouldEqual, 2)
				p, ok := c.Get("sprinting")
				So(ok, ShouldBeTrue)
				So(p.Name, ShouldEqual, "Sprinting")
				So(p.HighThreshold, ShouldEqual, 85)
				So(p.Weights["30m Sprint"], ShouldEqual, 0.6)
				So(p.StrengthTags, ShouldResemble, []string{"Top speed"})

				r, _ := c.Get("rowing")
				So(r.Name, ShouldEqual, "rowing")
				So(r.Weights["Medicine Ball Throw"], ShouldEqual, 0.3)
			})
		})

		Convey("When the file fails validation", func() {
			_, err := catalogue.Load(ctx, "testdata/invalid.yaml")
			So(errors.Is(err, catalogue.ErrLoadCatalogue), ShouldBeTrue)
			So(errors.Is(err, catalogue.ErrInvalidProfile), ShouldBeTrue)
		})

		Convey("When the file does not exist", func() {
			_, err := catalogue.Load(ctx, "testdata/missing.yaml")
			So(errors.Is(err, catalogue.ErrLoadCatalogue), ShouldBeTrue)
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := catalogue.Load(cctx, "testdata/catalogue.yaml")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}
