// Package scoring computes artifact scores and per-substat roll quality.
package scoring

import (
	"fmt"

	"github.com/dotcommander/artscore/internal/substat"
)

// Result is the evaluation of one artifact under one profile.
type Result struct {
	Profile       Profile        `json:"profile" yaml:"profile"`
	Score         float64        `json:"score" yaml:"score"`
	Tier          string         `json:"tier" yaml:"tier"`
	Contributions []Contribution `json:"contributions" yaml:"contributions"`
}

// Contribution is one substat's share of the score.
type Contribution struct {
	Label       string       `json:"label" yaml:"label"`
	Type        substat.Type `json:"type" yaml:"type"`
	Value       float64      `json:"value" yaml:"value"`
	Factor      float64      `json:"factor" yaml:"factor"`
	Points      float64      `json:"points" yaml:"points"`
	Detected    bool         `json:"detected" yaml:"detected"`
	RollQuality float64      `json:"rollQuality,omitempty" yaml:"rollQuality,omitempty"`
}

// Counted reports whether the substat adds anything under the profile.
func (c Contribution) Counted() bool {
	return c.Factor > 0
}

// ConfigurationError means a known type has no max-roll constant.
type ConfigurationError struct {
	Type substat.Type
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("no max roll registered for substat type %s", e.Type)
}

// Tier thresholds, inclusive lower bounds.
const (
	TierSSMin = 45
	TierSMin  = 35
	TierAMin  = 25
)

// Tiers lists every tier from best to worst.
var Tiers = []string{"SS", "S", "A", "B"}

// TierFromScore returns the tier for a score.
func TierFromScore(score float64) string {
	switch {
	case score >= TierSSMin:
		return "SS"
	case score >= TierSMin:
		return "S"
	case score >= TierAMin:
		return "A"
	default:
		return "B"
	}
}
