package service_test

import (
	"context"
	"testing"

	"github.com/okian/revintel/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service running the full prediction flow", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When running predictions across the seeded book of business", func() {
			// Score every seeded lead
			leads, err := svc.ListLeads(ctx)
			So(err, ShouldBeNil)
			for _, lead := range leads {
				result, err := svc.ScoreLead(ctx, lead.Company, lead.Signals, lead.Industry, lead.EmployeeCount)
				So(err, ShouldBeNil)
				So(result.Score, ShouldBeBetweenOrEqual, 0, 100)
				So(len(result.FeatureAttributions), ShouldEqual, 8)
			}

			// Assess every account for churn
			accounts, err := svc.ListAccounts(ctx)
			So(err, ShouldBeNil)
			for _, account := range accounts {
				result, err := svc.ChurnRiskByAccount(ctx, account.ID)
				So(err, ShouldBeNil)
				So(result.RiskScore, ShouldBeBetweenOrEqual, 0, 100)
			}

			// Predict conversion for every trial account
			trials := 0
			for _, account := range accounts {
				if account.Plan != model.PlanTrial {
					continue
				}
				trials++
				result, err := svc.ConversionInsightsByAccount(ctx, account.ID)
				So(err, ShouldBeNil)
				So(result.ConversionProbability, ShouldBeBetweenOrEqual, 0, 1)
				So(len(result.RecommendedActions), ShouldEqual, 2)
			}
			So(trials, ShouldEqual, 3)

			Convey("Then every prediction should land in the log, newest first", func() {
				total := len(leads) + len(accounts) + trials

				logs, err := svc.QueryPredictions(ctx, "", total)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, total)

				// Conversion predictions ran last, so they lead the query
				So(logs[0].PredictionType, ShouldEqual, model.PredictionTypeConversionProbability)

				churnLogs, err := svc.QueryPredictions(ctx, model.PredictionTypeChurnRisk, total)
				So(err, ShouldBeNil)
				So(len(churnLogs), ShouldEqual, len(accounts))
			})

			Convey("And health should reflect the prediction volume", func() {
				health, err := svc.ModelHealth(ctx)
				So(err, ShouldBeNil)
				So(health.PredictionCount24h, ShouldEqual, len(leads)+len(accounts)+trials)
				So(health.DriftDetected, ShouldBeFalse)

				stats := svc.GetStats()
				So(stats["predictions_logged"], ShouldEqual, len(leads)+len(accounts)+trials)
			})
		})

		Convey("When prediction volume crosses the drift threshold", func() {
			for i := 0; i < 1001; i++ {
				_, err := svc.LogPrediction(ctx, model.PredictionTypeLeadScore,
					map[string]any{"company_name": "Bulk Co"}, map[string]any{"score": 50.0})
				So(err, ShouldBeNil)
			}

			Convey("Then health should raise a drift alert", func() {
				health, err := svc.ModelHealth(ctx)
				So(err, ShouldBeNil)
				So(health.DriftDetected, ShouldBeTrue)
				So(health.Alerts, ShouldContain, "High prediction volume - monitoring for drift")
			})

			Convey("And metadata should flip to the warning drift status", func() {
				meta, err := svc.ModelMetadata(ctx)
				So(err, ShouldBeNil)
				So(meta.DriftStatus, ShouldEqual, "warning")
			})
		})
	})
}
