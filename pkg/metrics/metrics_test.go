package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording prediction metrics", func() {
			Convey("Then it should record predictions by type", func() {
				So(func() {
					RecordPrediction("lead_score")
					RecordPrediction("churn_risk")
					RecordPrediction("conversion_probability")
				}, ShouldNotPanic)
			})

			Convey("And it should record prediction latency", func() {
				So(func() {
					RecordPredictionLatency("lead_score", 1.5)
					RecordPredictionLatency("churn_risk", 0.8)
					RecordPredictionLatency("conversion_probability", 2.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record result tiers", func() {
				So(func() {
					RecordLeadTier("hot")
					RecordLeadTier("cold")
					RecordChurnTier("critical")
					RecordChurnTier("low")
					RecordConversionTier("high")
					RecordConversionTier("medium")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording operational metrics", func() {
			Convey("Then it should update the prediction log size", func() {
				So(func() {
					UpdatePredictionLogSize(0)
					UpdatePredictionLogSize(100)
					UpdatePredictionLogSize(2500)
				}, ShouldNotPanic)
			})

			Convey("And it should toggle the drift warning", func() {
				So(func() {
					UpdateDriftWarning(true)
					UpdateDriftWarning(false)
				}, ShouldNotPanic)
			})

			Convey("And it should update record counts", func() {
				So(func() {
					UpdateTotalAccounts(10)
					UpdateTotalLeads(8)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record HTTP requests", func() {
				So(func() {
					RecordHTTPRequest("/healthz", "GET", "200")
					RecordHTTPRequest("/v1/tools/score-lead", "POST", "200")
					RecordHTTPRequest("/v1/predictions", "GET", "200")
				}, ShouldNotPanic)
			})

			Convey("And it should record HTTP request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/healthz", "GET", "200", 5.0)
					RecordHTTPRequestDuration("/v1/tools/score-lead", "POST", "200", 10.0)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording error metrics", func() {
			Convey("Then it should record lookup errors", func() {
				So(func() {
					RecordLookupError("account")
					RecordLookupError("lead")
				}, ShouldNotPanic)
			})

			Convey("And it should record plan gate refusals", func() {
				So(func() {
					RecordPlanGateRefusal()
					RecordPlanGateRefusal()
				}, ShouldNotPanic)
			})

			Convey("And it should record prediction errors", func() {
				So(func() {
					RecordPredictionError("lead_score")
					RecordPredictionError("churn_risk")
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			Convey("Then it should update system gauges", func() {
				So(func() {
					UpdateSystemMemoryUsage(1024 * 1024 * 100)
					UpdateSystemGoroutineCount(100)
					RecordSystemGCPauseTime(1.0)
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given metrics edge cases", t, func() {
		Convey("When recording metrics with edge values", func() {
			Convey("And using zero values", func() {
				So(func() {
					UpdatePredictionLogSize(0)
					UpdateTotalAccounts(0)
					RecordPredictionLatency("lead_score", 0.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
				}, ShouldNotPanic)
			})

			Convey("And using very large values", func() {
				So(func() {
					UpdatePredictionLogSize(1000000)
					RecordPredictionLatency("lead_score", 10000.0)
					RecordHTTPRequestDuration("/test", "GET", "200", 30000.0)
				}, ShouldNotPanic)
			})

			Convey("And using empty strings", func() {
				So(func() {
					RecordHTTPRequest("", "", "200")
					RecordPrediction("")
					RecordLookupError("")
				}, ShouldNotPanic)
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given metrics concurrency", t, func() {
		Convey("When recording metrics concurrently", func() {
			done := make(chan bool, 10)

			// Start multiple goroutines recording metrics
			for i := 0; i < 10; i++ {
				go func(id int) {
					for j := 0; j < 100; j++ {
						RecordPrediction("lead_score")
						UpdatePredictionLogSize(j)
						RecordPredictionLatency("lead_score", float64(j))
						RecordHTTPRequest("/test", "GET", "200")
					}
					done <- true
				}(i)
			}

			// Wait for all goroutines to complete
			for i := 0; i < 10; i++ {
				<-done
			}

			Convey("Then it should handle concurrent access without panics", func() {
				So(true, ShouldBeTrue) // If we get here, no panics occurred
			})
		})
	})
}

func TestMetricsOptionsValidation(t *testing.T) {
	Convey("Given metrics options validation", t, func() {
		Convey("When creating with empty namespace", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil custom labels", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithCustomLabels(nil), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with zero refresh interval", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithRefreshInterval(0), WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}
