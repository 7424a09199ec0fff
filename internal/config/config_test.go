package config_test

import (
	"testing"

	"github.com/okian/revintel/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should carry the current model constants", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.ModelVersion, convey.ShouldEqual, "v1.2.3")
			convey.So(cfg.TrialDay, convey.ShouldEqual, 10)
			convey.So(cfg.LeadTierThresholds.Hot, convey.ShouldEqual, 70)
			convey.So(cfg.LeadTierThresholds.Warm, convey.ShouldEqual, 40)
			convey.So(cfg.ChurnRiskThresholds.Critical, convey.ShouldEqual, 70)
			convey.So(cfg.ConversionThresholds.High, convey.ShouldEqual, 0.70)
		})

		convey.Convey("Then the lead score weights should sum to 1.0", func() {
			convey.So(cfg.LeadScoreWeights.Sum(), convey.ShouldAlmostEqual, 1.0, 1e-9)
		})

		convey.Convey("Then the industry table should have 16 industries plus default", func() {
			convey.So(len(cfg.IndustryFitScores), convey.ShouldEqual, 17)
			convey.So(cfg.IndustryFitScores["technology"], convey.ShouldEqual, 90)
			convey.So(cfg.IndustryFitScores["data_analytics"], convey.ShouldEqual, 95)
			convey.So(cfg.IndustryFitScores["default"], convey.ShouldEqual, 50)
		})

		convey.Convey("Then the size bands should be sorted descending", func() {
			convey.So(len(cfg.CompanySizeBands), convey.ShouldEqual, 6)
			for i := 1; i < len(cfg.CompanySizeBands); i++ {
				convey.So(cfg.CompanySizeBands[i].MinEmployees,
					convey.ShouldBeLessThan, cfg.CompanySizeBands[i-1].MinEmployees)
			}
		})

		convey.Convey("Then the defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		convey.Convey("When the weights do not sum to 1.0", func() {
			cfg := config.New()
			cfg.LeadScoreWeights.CompanySize = 0.50

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the lead thresholds are out of order", func() {
			cfg := config.New()
			cfg.LeadTierThresholds.Warm = 80

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the default industry entry is missing", func() {
			cfg := config.New()
			delete(cfg.IndustryFitScores, "default")

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the size bands are unsorted", func() {
			cfg := config.New()
			cfg.CompanySizeBands[0], cfg.CompanySizeBands[1] = cfg.CompanySizeBands[1], cfg.CompanySizeBands[0]

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
