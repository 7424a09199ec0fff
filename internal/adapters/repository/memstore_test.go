package repository_test

import (
	"context"
	"testing"
	"time"

	repository "github.com/okian/revintel/internal/adapters/repository"
	"github.com/okian/revintel/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore_Records(t *testing.T) {
	Convey("Given a store seeded with the sample CRM data", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(
			repository.WithAccounts(repository.SeedAccounts()),
			repository.WithLeads(repository.SeedLeads()),
		)

		Convey("When fetching a known account", func() {
			account, err := store.GetAccount(ctx, "acc_001")

			Convey("Then it should return the record", func() {
				So(err, ShouldBeNil)
				So(account.Company, ShouldEqual, "Acme Corp")
				So(account.Plan, ShouldEqual, model.PlanEnterprise)
			})
		})

		Convey("When fetching an unknown account", func() {
			_, err := store.GetAccount(ctx, "acc_404")

			Convey("Then it should return ErrAccountNotFound", func() {
				So(err, ShouldWrap, repository.ErrAccountNotFound)
			})
		})

		Convey("When fetching a known lead", func() {
			lead, err := store.GetLead(ctx, "lead_001")

			Convey("Then it should return the record", func() {
				So(err, ShouldBeNil)
				So(lead.Company, ShouldEqual, "FutureTech Innovations")
				So(lead.Signals.DemoRequested, ShouldBeTrue)
			})
		})

		Convey("When fetching an unknown lead", func() {
			_, err := store.GetLead(ctx, "lead_404")

			Convey("Then it should return ErrLeadNotFound", func() {
				So(err, ShouldWrap, repository.ErrLeadNotFound)
			})
		})

		Convey("When listing records", func() {
			accounts := store.ListAccounts(ctx)
			leads := store.ListLeads(ctx)

			Convey("Then all seeded records should be present", func() {
				So(len(accounts), ShouldEqual, len(repository.SeedAccounts()))
				So(len(leads), ShouldEqual, len(repository.SeedLeads()))
			})
		})

		Convey("When filtering accounts by status", func() {
			trials := store.AccountsByStatus(ctx, model.StatusTrial)
			atRisk := store.AccountsByStatus(ctx, model.StatusAtRisk)

			Convey("Then only matching accounts should be returned", func() {
				So(len(trials), ShouldEqual, 3)
				for _, account := range trials {
					So(account.Status, ShouldEqual, model.StatusTrial)
				}
				So(len(atRisk), ShouldEqual, 2)
			})
		})
	})
}

func TestMemoryStore_PredictionLog(t *testing.T) {
	Convey("Given an empty store with a ticking test clock", t, func() {
		ctx := context.Background()
		tick := 0
		store := repository.NewMemoryStore(repository.WithClock(func() time.Time {
			tick++
			return time.Date(2024, 11, 1, 12, 0, tick, 0, time.UTC)
		}))

		Convey("When appending prediction log entries", func() {
			first, err1 := store.AppendPrediction(ctx, model.PredictionTypeLeadScore,
				map[string]any{"company_name": "Acme"}, map[string]any{"score": 80.0}, "v1.2.3")
			second, err2 := store.AppendPrediction(ctx, model.PredictionTypeChurnRisk,
				map[string]any{"account_id": "acc_001"}, map[string]any{"risk_score": 10.0}, "v1.2.3")

			Convey("Then entries should get distinct ids and timestamps", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(first.LogID, ShouldNotBeEmpty)
				So(second.LogID, ShouldNotEqual, first.LogID)
				So(first.Timestamp, ShouldNotEqual, second.Timestamp)
				So(first.ModelVersion, ShouldEqual, "v1.2.3")
			})

			Convey("Then querying should return newest first", func() {
				logs, err := store.QueryPredictions(ctx, "", 10)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 2)
				So(logs[0].LogID, ShouldEqual, second.LogID)
				So(logs[1].LogID, ShouldEqual, first.LogID)
			})

			Convey("Then querying by type should filter", func() {
				logs, err := store.QueryPredictions(ctx, model.PredictionTypeChurnRisk, 10)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 1)
				So(logs[0].PredictionType, ShouldEqual, model.PredictionTypeChurnRisk)
			})

			Convey("Then the limit should cap results", func() {
				logs, err := store.QueryPredictions(ctx, "", 1)
				So(err, ShouldBeNil)
				So(len(logs), ShouldEqual, 1)
				So(logs[0].LogID, ShouldEqual, second.LogID)
			})

			Convey("Then the 24h count proxy should report the total", func() {
				So(store.PredictionCount24h(ctx), ShouldEqual, 2)
			})
		})

		Convey("When querying with an invalid limit", func() {
			_, err := store.QueryPredictions(ctx, "", 0)

			Convey("Then it should return ErrInvalidLimit", func() {
				So(err, ShouldEqual, repository.ErrInvalidLimit)
			})
		})
	})
}
