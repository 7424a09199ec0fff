package service_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/revintel/internal/adapters/repository"
	service "github.com/okian/revintel/internal/app"
	"github.com/okian/revintel/internal/domain/model"
	"github.com/okian/revintel/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func startedService() (*service.Service, error) {
	svc := service.New()
	if err := svc.Start(context.Background()); err != nil {
		return nil, err
	}
	return svc, nil
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()

		Convey("When used before Start", func() {
			_, err := svc.ScoreLead(context.Background(), "Acme", model.LeadSignals{}, "technology", 100)

			Convey("Then it should refuse", func() {
				So(err, ShouldEqual, service.ErrNotStarted)
			})
		})

		Convey("When starting the service", func() {
			err := svc.Start(context.Background())
			defer svc.Stop()

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)
			})

			Convey("And starting again should be a no-op", func() {
				So(svc.Start(context.Background()), ShouldBeNil)
			})

			Convey("And stats should report the seeded records", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
				So(stats["model_version"], ShouldEqual, "v1.2.3")
				So(stats["accounts"], ShouldEqual, 10)
				So(stats["leads"], ShouldEqual, 8)
				So(stats["predictions_logged"], ShouldEqual, 0)
			})
		})
	})
}

func TestServiceScoreLead(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When scoring a highly engaged lead", func() {
			signals := model.LeadSignals{
				WebsiteVisits30d:     60,
				DemoRequested:        true,
				WhitepaperDownloads:  5,
				EmailEngagementScore: 90,
				LinkedinEngagement:   true,
				FreeTrialStarted:     true,
			}
			result, err := svc.ScoreLead(ctx, "FutureTech Innovations", signals, "technology", 1000)

			Convey("Then it should return a hot-tier result", func() {
				So(err, ShouldBeNil)
				So(result.Score, ShouldEqual, 96.8)
				So(result.Tier, ShouldEqual, model.LeadTierHot)
				So(result.ModelVersion, ShouldEqual, "v1.2.3")
			})

			Convey("And it should append the prediction to the log", func() {
				logs, err := svc.QueryPredictions(ctx, model.PredictionTypeLeadScore, 10)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 1)
				So(logs[0].PredictionType, ShouldEqual, model.PredictionTypeLeadScore)
				So(logs[0].InputData["company_name"], ShouldEqual, "FutureTech Innovations")
			})
		})
	})
}

func TestServiceChurnRisk(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When assessing a healthy enterprise account", func() {
			result, err := svc.ChurnRiskByAccount(ctx, "acc_001")

			Convey("Then it should report low risk with no declining signals", func() {
				So(err, ShouldBeNil)
				So(result.Company, ShouldEqual, "Acme Corp")
				So(result.RiskScore, ShouldEqual, 0.0)
				So(result.RiskTier, ShouldEqual, model.RiskTierLow)
				So(result.DecliningSignals, ShouldBeEmpty)
			})
		})

		Convey("When assessing a struggling account", func() {
			result, err := svc.ChurnRiskByAccount(ctx, "acc_006")

			Convey("Then detractor NPS and ticket volume should add up", func() {
				So(err, ShouldBeNil)
				So(result.RiskScore, ShouldEqual, 45.0)
				So(result.RiskTier, ShouldEqual, model.RiskTierMedium)
			})
		})

		Convey("When assessing an unknown account", func() {
			_, err := svc.ChurnRiskByAccount(ctx, "acc_404")

			Convey("Then it should return a not-found error", func() {
				So(errors.Is(err, repository.ErrAccountNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestServiceConversionInsights(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When predicting for a highly engaged trial account", func() {
			result, err := svc.ConversionInsightsByAccount(ctx, "acc_009")

			Convey("Then it should report the top probability", func() {
				So(err, ShouldBeNil)
				So(result.ConversionProbability, ShouldEqual, 1.0)
				So(result.ProbabilityTier, ShouldEqual, model.ProbabilityTierHigh)
				So(result.TrialDay, ShouldEqual, 10)
			})
		})

		Convey("When predicting for a moderately engaged trial account", func() {
			result, err := svc.ConversionInsightsByAccount(ctx, "acc_002")

			Convey("Then it should report a medium probability", func() {
				So(err, ShouldBeNil)
				So(result.ConversionProbability, ShouldEqual, 0.5)
				So(result.ProbabilityTier, ShouldEqual, model.ProbabilityTierMedium)
			})
		})

		Convey("When predicting for a non-trial account", func() {
			_, err := svc.ConversionInsightsByAccount(ctx, "acc_001")

			Convey("Then it should return a NotTrialError with the plan", func() {
				var notTrial *service.NotTrialError
				So(errors.As(err, &notTrial), ShouldBeTrue)
				So(notTrial.AccountID, ShouldEqual, "acc_001")
				So(notTrial.Plan, ShouldEqual, model.PlanEnterprise)
				So(notTrial.Error(), ShouldEqual, "Account acc_001 is not a trial account (plan: enterprise)")
			})
		})

		Convey("When predicting for an unknown account", func() {
			_, err := svc.ConversionInsightsByAccount(ctx, "acc_404")

			Convey("Then it should return a not-found error", func() {
				So(errors.Is(err, repository.ErrAccountNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestServicePredictionLog(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When logging an external prediction", func() {
			entry, err := svc.LogPrediction(ctx, model.PredictionTypeLeadScore,
				map[string]any{"company_name": "Acme"}, map[string]any{"score": 80.0})

			Convey("Then it should be stored with the service model version", func() {
				So(err, ShouldBeNil)
				So(entry.LogID, ShouldNotBeEmpty)
				So(entry.ModelVersion, ShouldEqual, "v1.2.3")
			})
		})

		Convey("When logging with an unknown prediction type", func() {
			_, err := svc.LogPrediction(ctx, "sentiment", nil, nil)

			Convey("Then it should be rejected", func() {
				So(err, ShouldEqual, service.ErrUnknownPredictionType)
			})
		})

		Convey("When querying with default and capped limits", func() {
			for i := 0; i < 15; i++ {
				_, err := svc.LogPrediction(ctx, model.PredictionTypeChurnRisk,
					map[string]any{"account_id": "acc_001"}, map[string]any{"risk_score": float64(i)})
				So(err, ShouldBeNil)
			}

			Convey("Then a non-positive limit should fall back to the default", func() {
				logs, err := svc.QueryPredictions(ctx, "", 0)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 10)
			})

			Convey("And an oversized limit should be clamped", func() {
				logs, err := svc.QueryPredictions(ctx, "", 100000)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 15)
			})
		})
	})
}

func TestServiceRecords(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When fetching records", func() {
			account, accErr := svc.GetAccount(ctx, "acc_003")
			lead, leadErr := svc.GetLead(ctx, "lead_001")

			Convey("Then it should return the seeded data", func() {
				So(accErr, ShouldBeNil)
				So(account.Company, ShouldEqual, "Global Finance Ltd")
				So(leadErr, ShouldBeNil)
				So(lead.Company, ShouldEqual, "FutureTech Innovations")
			})
		})

		Convey("When listing records", func() {
			accounts, accErr := svc.ListAccounts(ctx)
			leads, leadErr := svc.ListLeads(ctx)

			Convey("Then it should return everything", func() {
				So(accErr, ShouldBeNil)
				So(len(accounts), ShouldEqual, 10)
				So(leadErr, ShouldBeNil)
				So(len(leads), ShouldEqual, 8)
			})
		})

		Convey("When filtering accounts by status", func() {
			trials, trialErr := svc.AccountsByStatus(ctx, model.StatusTrial)

			Convey("Then it should return only trial accounts", func() {
				So(trialErr, ShouldBeNil)
				So(len(trials), ShouldEqual, 3)
				for _, account := range trials {
					So(account.Status, ShouldEqual, model.StatusTrial)
				}
			})
		})

		Convey("When fetching unknown records", func() {
			_, accErr := svc.GetAccount(ctx, "acc_404")
			_, leadErr := svc.GetLead(ctx, "lead_404")

			Convey("Then both should report not found", func() {
				So(errors.Is(accErr, repository.ErrAccountNotFound), ShouldBeTrue)
				So(errors.Is(leadErr, repository.ErrLeadNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestServiceModelMonitoring(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc, err := startedService()
		So(err, ShouldBeNil)
		defer svc.Stop()
		ctx := context.Background()

		Convey("When fetching model metadata", func() {
			meta, err := svc.ModelMetadata(ctx)

			Convey("Then it should describe the model with normal drift", func() {
				So(err, ShouldBeNil)
				So(meta.ModelVersion, ShouldEqual, "v1.2.3")
				So(meta.TrainingDate, ShouldEqual, "2024-10-15")
				So(meta.PerformanceMetrics["accuracy"], ShouldEqual, 0.89)
				So(meta.FeatureImportance["email_engagement_score"], ShouldEqual, 0.25)
				So(meta.DriftStatus, ShouldEqual, "normal")
			})
		})

		Convey("When fetching model health", func() {
			health, err := svc.ModelHealth(ctx)

			Convey("Then it should report uptime and no drift", func() {
				So(err, ShouldBeNil)
				So(health.ModelVersion, ShouldEqual, "v1.2.3")
				So(health.UptimeHours, ShouldBeGreaterThanOrEqualTo, 0.0)
				So(health.PredictionCount24h, ShouldEqual, 0)
				So(health.DriftDetected, ShouldBeFalse)
				So(health.AccuracyLast7d, ShouldEqual, 0.89)
				So(health.Alerts, ShouldBeEmpty)
			})
		})
	})
}
