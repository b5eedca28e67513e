package substat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyJapanese(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		isPercent bool
		want      Type
	}{
		{"hp percent", "HP", true, HPPer},
		{"hp flat", "HP", false, HPAct},
		{"def percent", "防御力", true, DefPer},
		{"def flat", "防御力", false, DefAct},
		{"atk percent", "攻撃力", true, AtkPer},
		{"atk flat", "攻撃力", false, AtkAct},
		{"energy recharge", "元素チャージ効率", true, EnergyRecharge},
		{"crit rate", "会心率", true, CritRate},
		{"crit damage", "会心ダメージ", true, CritDamage},
		{"elemental mastery", "元素熟知", false, ElementalMastery},
		{"mastery read as percent", "元素熟知", true, Undetected},
		{"crit rate read as flat", "会心率", false, Undetected},
		{"garbage", "元素", true, Undetected},
		{"empty", "", false, Undetected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.status, tt.isPercent)
			if got != tt.want {
				t.Errorf("Classify(%q, %v) = %s, want %s", tt.status, tt.isPercent, got, tt.want)
			}
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	tests := []struct {
		status string
		want   Type
	}{
		{"HP防攻", HPPer},
		{"防攻", DefPer},
		{"攻チャ", AtkPer},
		{"チャ率", EnergyRecharge},
		{"率ダメ", CritRate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Japanese.Classify(tt.status, true), tt.status)
	}

	assert.Equal(t, HPAct, Japanese.Classify("HP攻熟知", false))
}

func TestClassifyEnglish(t *testing.T) {
	assert.Equal(t, CritRate, English.Classify("CRITRate", true))
	assert.Equal(t, CritDamage, English.Classify("CRITDMG", true))
	assert.Equal(t, EnergyRecharge, English.Classify("EnergyRecharge", true))
	assert.Equal(t, ElementalMastery, English.Classify("ElementalMastery", false))
	assert.Equal(t, AtkAct, English.Classify("ATK", false))
}

func TestLookupLocale(t *testing.T) {
	loc, err := LookupLocale("JA")
	require.NoError(t, err)
	assert.Equal(t, "ja", loc.Name)

	_, err = LookupLocale("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en, ja")

	assert.Equal(t, []string{"en", "ja"}, LocaleNames())
}
