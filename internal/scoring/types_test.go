package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFromScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		wantTier string
	}{
		{"SS tier - exact boundary", 45, "SS"},
		{"SS tier - high score", 60.2, "SS"},
		{"S tier - exact boundary", 35, "S"},
		{"S tier - just under SS", 44.9, "S"},
		{"A tier - exact boundary", 25, "A"},
		{"A tier - just under S", 34.99, "A"},
		{"B tier - just under A", 24.9, "B"},
		{"B tier - zero", 0, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TierFromScore(tt.score)
			if got != tt.wantTier {
				t.Errorf("TierFromScore(%v) = %q, want %q", tt.score, got, tt.wantTier)
			}
		})
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Type: "UNDETECTED"}
	assert.Equal(t, "no max roll registered for substat type UNDETECTED", err.Error())
}
