package types_test

import (
	"testing"

	types "github.com/okian/revintel/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHealthReport(t *testing.T) {
	Convey("Given a HealthReport struct", t, func() {
		Convey("When creating a populated report", func() {
			report := types.HealthReport{
				ModelVersion:       "v1.2.3",
				UptimeHours:        12.34,
				PredictionCount24h: 42,
				DriftDetected:      false,
				AccuracyLast7d:     0.89,
				PerformanceMetrics: map[string]float64{"accuracy": 0.89},
				Alerts:             []string{},
			}

			Convey("Then it should have the correct values", func() {
				So(report.ModelVersion, ShouldEqual, "v1.2.3")
				So(report.UptimeHours, ShouldEqual, 12.34)
				So(report.PredictionCount24h, ShouldEqual, 42)
				So(report.DriftDetected, ShouldBeFalse)
				So(report.Alerts, ShouldBeEmpty)
			})
		})

		Convey("When creating a report with zero values", func() {
			report := types.HealthReport{}

			Convey("Then it should have default values", func() {
				So(report.ModelVersion, ShouldEqual, "")
				So(report.UptimeHours, ShouldEqual, 0.0)
				So(report.PredictionCount24h, ShouldEqual, 0)
				So(report.Alerts, ShouldBeNil)
			})
		})
	})
}
