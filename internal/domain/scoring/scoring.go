// Package scoring implements the prediction engines: lead scoring, churn
// risk detection, and trial conversion probability. All three are pure,
// deterministic computations over their input; the only state on the Engine
// is injected configuration, so a single Engine is safe for concurrent use.
package scoring

import (
	"math"
	"time"
)

// Default model constants. Production values are injected from config;
// these keep a bare Engine usable in isolation.
const (
	defaultHotThreshold  = 70
	defaultWarmThreshold = 40

	defaultCriticalRisk = 70
	defaultHighRisk     = 50
	defaultMediumRisk   = 30

	defaultHighProbability   = 0.70
	defaultMediumProbability = 0.40

	defaultIndustryFit = 50

	// Sub-scores above this read as "positive" in attributions.
	subScorePositiveAbove = 70
	defaultSizeFloor      = 30
	defaultTrialDay       = 10

	weightSumEpsilon = 1e-9
	maxScore         = 100
)

// Weights blends the four lead sub-scores into the final score.
// The four values must sum to 1.0, which keeps the final score a convex
// combination of sub-scores in [0,100].
type Weights struct {
	CompanySize float64
	Engagement  float64
	IndustryFit float64
	Intent      float64
}

func (w Weights) sum() float64 {
	return w.CompanySize + w.Engagement + w.IndustryFit + w.Intent
}

// LeadTiers holds the closed-below lead tier boundaries.
type LeadTiers struct {
	Hot  float64
	Warm float64
}

// RiskTiers holds the closed-below churn risk tier boundaries.
type RiskTiers struct {
	Critical float64
	High     float64
	Medium   float64
}

// ProbabilityTiers holds the closed-below conversion tier boundaries.
type ProbabilityTiers struct {
	High   float64
	Medium float64
}

// SizeBand maps an employee-count floor to a company-size sub-score.
type SizeBand struct {
	MinEmployees int
	Score        float64
}

// Engine computes predictions from business signals.
type Engine struct {
	weights      Weights
	leadTiers    LeadTiers
	riskTiers    RiskTiers
	probTiers    ProbabilityTiers
	industryFit  map[string]float64
	industryDflt float64
	sizeBands    []SizeBand
	sizeFloor    float64
	modelVersion string
	trialDay     int
	now          func() time.Time
}

// New constructs an Engine, applying options over the default model
// constants. It fails if the configured weights do not sum to 1.0; this is
// the configuration-load check, so the scoring paths never re-validate.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		weights: Weights{
			CompanySize: 0.20,
			Engagement:  0.40,
			IndustryFit: 0.20,
			Intent:      0.20,
		},
		leadTiers: LeadTiers{Hot: defaultHotThreshold, Warm: defaultWarmThreshold},
		riskTiers: RiskTiers{
			Critical: defaultCriticalRisk,
			High:     defaultHighRisk,
			Medium:   defaultMediumRisk,
		},
		probTiers: ProbabilityTiers{
			High:   defaultHighProbability,
			Medium: defaultMediumProbability,
		},
		industryFit:  make(map[string]float64),
		industryDflt: defaultIndustryFit,
		sizeBands: []SizeBand{
			{MinEmployees: 1000, Score: 100},
			{MinEmployees: 500, Score: 90},
			{MinEmployees: 200, Score: 80},
			{MinEmployees: 100, Score: 70},
			{MinEmployees: 50, Score: 60},
			{MinEmployees: 20, Score: 50},
		},
		sizeFloor:    defaultSizeFloor,
		modelVersion: "dev",
		trialDay:     defaultTrialDay,
		now:          time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	if math.Abs(e.weights.sum()-1.0) > weightSumEpsilon {
		return nil, ErrInvalidWeights
	}
	return e, nil
}

// ModelVersion reports the version stamped onto results.
func (e *Engine) ModelVersion() string {
	return e.modelVersion
}

// timestamp renders the current time as an ISO-8601 UTC string.
func (e *Engine) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
