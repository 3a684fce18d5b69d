package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestOpErrors(t *testing.T) {
	convey.Convey("Given an upstream error", t, func() {
		cause := errors.New("unexpected EOF")

		convey.Convey("When wrapped with a kind", func() {
			err := WrapKind("api.post_recommendations", ErrBadRequest, cause)

			convey.Convey("Then both the kind and the cause match", func() {
				convey.So(errors.Is(err, ErrBadRequest), convey.ShouldBeTrue)
				convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldEqual, "api.post_recommendations: bad request: unexpected EOF")
			})
		})

		convey.Convey("When wrapped without a kind", func() {
			err := Wrap("api.get_sport", cause)
			convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, "api.get_sport: unexpected EOF")
			convey.So(Wrap("api.get_sport", nil), convey.ShouldBeNil)
		})

		convey.Convey("When only a kind is raised", func() {
			err := NewKind("api.get_sport", ErrNotFound)
			convey.So(errors.Is(err, ErrNotFound), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, "api.get_sport: not found")
			convey.So(WrapKind("op", ErrNotFound, nil).Error(), convey.ShouldEqual, "op: not found")
		})
	})
}

func TestGetErrorType(t *testing.T) {
	convey.Convey("Given HTTP status codes", t, func() {
		convey.So(getErrorType(http.StatusBadRequest), convey.ShouldEqual, "client_error")
		convey.So(getErrorType(http.StatusNotFound), convey.ShouldEqual, "not_found")
		convey.So(getErrorType(http.StatusServiceUnavailable), convey.ShouldEqual, "unavailable")
		convey.So(getErrorType(http.StatusInternalServerError), convey.ShouldEqual, "server_error")
		convey.So(getErrorType(http.StatusOK), convey.ShouldEqual, "unknown")
	})
}
