package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When creating a manager with custom options", func() {
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("engine"),
				WithHistogramBuckets([]float64{1, 2, 3}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then collectors are registered under the namespace", func() {
				So(m, ShouldNotBeNil)
				m.RecordRecommendRequest(4)
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				names := map[string]bool{}
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_engine_requests_total"], ShouldBeTrue)
				So(names["test_engine_test_results_per_batch"], ShouldBeTrue)
			})
		})

		Convey("When creating a second manager on the same registry", func() {
			NewManager(WithPrometheusRegistry(registry))

			Convey("Then registration panics on duplicate collectors", func() {
				So(func() { NewManager(WithPrometheusRegistry(registry)) }, ShouldPanic)
			})
		})
	})
}

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When recording recommendation traffic", func() {
			m.RecordRecommendRequest(3)
			m.RecordRecommendRequest(5)
			m.RecordInvalidInput()
			m.RecordRecommendation("athletics", "highly_recommended")
			m.RecordRecommendation("athletics", "highly_recommended")
			m.RecordRecommendation("football", "recommended")
			m.RecordExplainRequest()
			m.RecordScoringLatency(2 * time.Millisecond)
			m.RecordSportsPerRequest(2)

			Convey("Then counters reflect the calls", func() {
				So(testutil.ToFloat64(m.recommendRequests), ShouldEqual, 2)
				So(testutil.ToFloat64(m.invalidInputs), ShouldEqual, 1)
				So(testutil.ToFloat64(m.explainRequests), ShouldEqual, 1)
				So(testutil.ToFloat64(m.recommendations.WithLabelValues("athletics", "highly_recommended")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.recommendations.WithLabelValues("football", "recommended")), ShouldEqual, 1)
				So(testutil.CollectAndCount(m.scoringLatency), ShouldEqual, 1)
			})
		})

		Convey("When publishing the catalogue shape", func() {
			loaded := time.Unix(1_700_000_000, 0)
			m.UpdateCatalogue(12, 9, loaded)

			Convey("Then gauges hold the values", func() {
				So(testutil.ToFloat64(m.catalogueSports), ShouldEqual, 12)
				So(testutil.ToFloat64(m.catalogueMetrics), ShouldEqual, 9)
				So(testutil.ToFloat64(m.catalogueLoaded), ShouldEqual, 1_700_000_000)
			})
		})

		Convey("When recording HTTP traffic", func() {
			m.RecordHTTPRequest("/recommendations", "POST", "200", 1.5)
			m.RecordHTTPRequest("/recommendations", "POST", "400", 0.5)
			m.RecordHTTPError("/recommendations", "POST", "client_error")

			Convey("Then per-label series are counted", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/recommendations", "POST", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errorsByEndpoint.WithLabelValues("/recommendations", "POST", "client_error")), ShouldEqual, 1)
			})
		})
	})
}

func TestSystemGauges(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()))

		Convey("When publishing runtime figures", func() {
			m.UpdateSystemMemoryUsage(4096)
			m.UpdateSystemGoroutineCount(12)
			m.RecordSystemGCPauseTime(0.25)

			Convey("Then the gauges hold the last values", func() {
				So(testutil.ToFloat64(m.systemMemory), ShouldEqual, 4096)
				So(testutil.ToFloat64(m.systemGoroutines), ShouldEqual, 12)
				So(testutil.ToFloat64(m.systemGCPause), ShouldEqual, 0.25)
			})
		})
	})
}

func TestManagerDisabled(t *testing.T) {
	Convey("Given a disabled manager", t, func() {
		m := NewManager(WithPrometheusRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

		Convey("When recording", func() {
			m.RecordRecommendRequest(1)
			m.RecordInvalidInput()

			Convey("Then nothing is counted", func() {
				So(testutil.ToFloat64(m.recommendRequests), ShouldEqual, 0)
				So(testutil.ToFloat64(m.invalidInputs), ShouldEqual, 0)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global registry", t, func() {
		Convey("When recording through package helpers", func() {
			before := testutil.ToFloat64(globalManager.recommendRequests)
			RecordRecommendRequest(2)
			RecordInvalidInput()
			RecordScoringLatency(time.Millisecond)
			RecordRecommendation("swimming", "recommended")
			RecordSportsPerRequest(1)
			RecordExplainRequest()
			UpdateCatalogue(1, 1, time.Now())
			RecordHTTPRequest("/sports", "GET", "200", 1)
			RecordHTTPError("/sports", "GET", "not_found")

			Convey("Then the global registry sees them", func() {
				So(testutil.ToFloat64(globalManager.recommendRequests), ShouldEqual, before+1)
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}
