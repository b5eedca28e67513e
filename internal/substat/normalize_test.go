package substat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t　 ", ""},
		{"strips inner spaces", " 会心率 + 3.9 % ", "会心率+3.9%"},
		{"katakana ka corrected", "攻撃カ+5.8%", "攻撃力+5.8%"},
		{"circled digits", "HP+④⑦⑧", "HP+478"},
		{"circled digit with decimal", "会心率+③.⑨%", "会心率+3.9%"},
		{"full-width plus and percent", "防御力＋５．１％", "防御力+5.1%"},
		{"untouched", "元素熟知+23", "元素熟知+23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLine(tt.raw)
			if got != tt.want {
				t.Errorf("NormalizeLine(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeLineCircledDigitsBecomeASCII(t *testing.T) {
	for r := '①'; r <= '⑨'; r++ {
		want := string(r - circledOffset)
		got := NormalizeLine("HP+" + string(r))

		assert.Equal(t, "HP+"+want, got)
		assert.False(t, strings.ContainsRune(got, r), "circled glyph %q left in %q", r, got)
	}
}

func TestNormalizerCustomCorrections(t *testing.T) {
	n := NewNormalizer(DefaultCorrections.With(map[string]string{
		"會": "会",
		"":  "ignored",
	}))

	assert.Equal(t, "会心率+3.9%", n.Normalize("會心率+3.9%"))
	assert.Equal(t, "攻撃力+16", n.Normalize("攻撃カ+16"), "defaults survive extension")
}

func TestCorrectionsWithDoesNotMutateReceiver(t *testing.T) {
	base := Corrections{"カ": "力"}
	extended := base.With(map[string]string{"會": "会"})

	assert.Len(t, base, 1)
	assert.Len(t, extended, 2)
}

func TestNormalizerPrefersLongerCorrection(t *testing.T) {
	n := NewNormalizer(Corrections{
		"カ":  "力",
		"カー": "カー",
	})

	assert.Equal(t, "チャカージ", n.Normalize("チャカージ"))
	assert.Equal(t, "攻撃力", n.Normalize("攻撃カ"))
}
