package artifact

import (
	"testing"
	"time"

	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	now := time.UnixMilli(0x18a2b3c4d5e)
	assert.Equal(t, "18a2b3c4d5e", NewID(now))
}

func TestNew(t *testing.T) {
	subs, errs := substat.Parse("会心率+3.9%\n会心ダメージ+7.8%\nHP+5.8%")
	require.Empty(t, errs)

	a, err := New(time.UnixMilli(255), subs, Options{
		Level:   4,
		Type:    Flower,
		Set:     "EmblemOfSeveredFate",
		Profile: scoring.ProfileHP,
	})
	require.NoError(t, err)

	assert.Equal(t, "ff", a.ID)
	assert.Equal(t, 4, a.Level)
	assert.Equal(t, scoring.ProfileHP, a.Profile)
	assert.InDelta(t, 3.9*2+7.8+5.8, a.Score, 1e-9)
	assert.Equal(t, "B", a.Tier)

	crit := a.Rescore(scoring.ProfileCrit)
	assert.InDelta(t, 3.9*2+7.8, crit.Score, 1e-9)
	assert.Equal(t, scoring.ProfileHP, a.Profile, "rescore returns a copy")
	assert.Equal(t, scoring.ProfileCrit, crit.Evaluate().Profile)
}

func TestNewWithoutSubstats(t *testing.T) {
	a, err := New(time.UnixMilli(255), nil, Options{Profile: scoring.ProfileCrit})
	require.NoError(t, err)

	assert.NotNil(t, a.SubStats)
	assert.Empty(t, a.SubStats)
	assert.Zero(t, a.Score)
	assert.Equal(t, "B", a.Tier)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		msg  string
	}{
		{"level too high", Options{Level: 21}, "level 21"},
		{"negative level", Options{Level: -1}, "level -1"},
		{"bad type", Options{Type: "boots"}, "unknown artifact type"},
		{"bad set", Options{Set: "Nope"}, "unknown artifact set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(time.Now(), nil, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := New(time.Now(), nil, Options{Profile: scoring.ProfileCrit})
	assert.NoError(t, err, "type and set may be unknown")
}

func TestFilter(t *testing.T) {
	arts := []Artifact{
		{ID: "1", Type: Flower, Set: "PaleFlame"},
		{ID: "2", Type: Plume, Set: "PaleFlame"},
		{ID: "3", Type: Flower, Set: "HeartOfDepth"},
	}

	ids := func(as []Artifact) []string {
		var out []string
		for _, a := range as {
			out = append(out, a.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(arts, All, All)))
	assert.Equal(t, []string{"1", "3"}, ids(Filter(arts, "flower", All)))
	assert.Equal(t, []string{"1", "2"}, ids(Filter(arts, All, "PaleFlame")))
	assert.Equal(t, []string{"3"}, ids(Filter(arts, "flower", "HeartOfDepth")))
	assert.Empty(t, Filter(arts, "goblet", All))
}

func TestSetIDs(t *testing.T) {
	arts := []Artifact{
		{Set: "PaleFlame"},
		{Set: ""},
		{Set: "HeartOfDepth"},
		{Set: "PaleFlame"},
	}

	assert.Equal(t, []SetID{"PaleFlame", "HeartOfDepth"}, SetIDs(arts))
}

func TestCatalogNames(t *testing.T) {
	assert.Equal(t, "生の花", TypeName(Flower))
	assert.Equal(t, "boots", TypeName("boots"))
	assert.Equal(t, "蒼白の炎", SetName("PaleFlame"))
	assert.Equal(t, "Unknown", SetName("Unknown"))
	assert.True(t, ValidType(Circlet))
	assert.False(t, ValidSet(""))
}
