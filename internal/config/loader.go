package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// weightSumEpsilon tolerates float accumulation when checking the weight sum.
const weightSumEpsilon = 1e-9

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if REVINTEL_CONFIG is set
//  3. env (prefix REVINTEL_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("REVINTEL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: REVINTEL_ADDR, REVINTEL_MODEL_VERSION, ...
	// Map env keys like REVINTEL_TRIAL_DAY -> trial_day (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("REVINTEL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "revintel_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration invariants. Model constants are validated
// here, at load time, so the engines can trust them at call time.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ModelVersion == "" {
		return fmt.Errorf("%w: model_version must not be empty", ErrInvalidConfig)
	}
	if sum := c.LeadScoreWeights.Sum(); math.Abs(sum-1.0) > weightSumEpsilon {
		return fmt.Errorf("%w: lead score weights sum to %v, want 1.0", ErrInvalidConfig, sum)
	}
	if c.LeadTierThresholds.Hot <= c.LeadTierThresholds.Warm {
		return fmt.Errorf("%w: lead tier thresholds out of order", ErrInvalidConfig)
	}
	if c.ChurnRiskThresholds.Critical <= c.ChurnRiskThresholds.High ||
		c.ChurnRiskThresholds.High <= c.ChurnRiskThresholds.Medium {
		return fmt.Errorf("%w: churn risk thresholds out of order", ErrInvalidConfig)
	}
	if c.ConversionThresholds.High <= c.ConversionThresholds.Medium {
		return fmt.Errorf("%w: conversion thresholds out of order", ErrInvalidConfig)
	}
	if _, ok := c.IndustryFitScores["default"]; !ok {
		return fmt.Errorf("%w: industry_fit_scores missing default entry", ErrInvalidConfig)
	}
	for i := 1; i < len(c.CompanySizeBands); i++ {
		if c.CompanySizeBands[i].MinEmployees >= c.CompanySizeBands[i-1].MinEmployees {
			return fmt.Errorf("%w: company_size_bands must be sorted by min_employees descending", ErrInvalidConfig)
		}
	}
	if c.TrialDay < 0 {
		return fmt.Errorf("%w: trial_day must not be negative", ErrInvalidConfig)
	}
	if c.MaxLogQueryLimit < 1 {
		return fmt.Errorf("%w: max_log_query_limit must be positive", ErrInvalidConfig)
	}
	return nil
}
