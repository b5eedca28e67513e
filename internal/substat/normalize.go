package substat

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// circledOffset maps ①..⑨ (U+2460..U+2468) onto '1'..'9'.
const circledOffset = '①' - '1'

// Corrections maps glyphs the OCR engine tends to confuse to the intended text.
type Corrections map[string]string

// DefaultCorrections holds the confusions observed on Japanese artifact screens.
// Katakana カ is routinely read in place of 力 in 攻撃力 and 防御力.
var DefaultCorrections = Corrections{
	"カ": "力",
}

// With returns a copy of c extended (or overridden) by extra.
func (c Corrections) With(extra map[string]string) Corrections {
	merged := make(Corrections, len(c)+len(extra))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range extra {
		if k == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// replacer builds a Replacer that prefers longer keys, so multi-rune
// confusions win over single-rune ones.
func (c Corrections) replacer() *strings.Replacer {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, c[k])
	}
	return strings.NewReplacer(pairs...)
}

// Normalizer cleans one OCR line. It is safe for concurrent use.
type Normalizer struct {
	replacer *strings.Replacer
}

// NewNormalizer creates a Normalizer applying the given corrections.
func NewNormalizer(c Corrections) *Normalizer {
	return &Normalizer{replacer: c.replacer()}
}

var defaultNormalizer = NewNormalizer(DefaultCorrections)

// NormalizeLine normalizes raw with DefaultCorrections.
func NormalizeLine(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Normalize strips whitespace, folds full-width forms to ASCII, converts circled
// digits to plain digits and applies the correction table.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	// Transformers carry state, so the chain is built per call.
	t := transform.Chain(
		width.Fold,
		runes.Remove(runes.Predicate(unicode.IsSpace)),
		runes.Map(uncircle),
	)
	out, _, err := transform.String(t, raw)
	if err != nil {
		out = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return uncircle(r)
		}, raw)
	}

	return n.replacer.Replace(out)
}

func uncircle(r rune) rune {
	if r >= '①' && r <= '⑨' {
		return r - circledOffset
	}
	return r
}
