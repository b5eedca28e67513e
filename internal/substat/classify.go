package substat

import (
	"fmt"
	"sort"
	"strings"
)

// Rule maps a trigger substring to the type it selects.
// Rules are evaluated in order; first match wins.
type Rule struct {
	Contains string
	Type     Type
}

// Locale holds the trigger substrings for one game language.
type Locale struct {
	Name     string
	Percent  []Rule
	Absolute []Rule
}

// Japanese matches the in-game Japanese labels:
// HP, 攻撃力, 防御力, 元素熟知, 元素チャージ効率, 会心率, 会心ダメージ.
//
// 元素チャージ効率 also contains 率, so the recharge rule must stay ahead of crit rate.
var Japanese = Locale{
	Name: "ja",
	Percent: []Rule{
		{"HP", HPPer},
		{"防", DefPer},
		{"攻", AtkPer},
		{"チャ", EnergyRecharge},
		{"率", CritRate},
		{"ダメ", CritDamage},
	},
	Absolute: []Rule{
		{"HP", HPAct},
		{"防", DefAct},
		{"攻", AtkAct},
		{"熟知", ElementalMastery},
	},
}

// English matches the in-game English labels, e.g. "CRIT Rate" and "Energy Recharge".
// Input is matched after whitespace removal.
var English = Locale{
	Name: "en",
	Percent: []Rule{
		{"HP", HPPer},
		{"DEF", DefPer},
		{"ATK", AtkPer},
		{"Recharge", EnergyRecharge},
		{"Rate", CritRate},
		{"DMG", CritDamage},
	},
	Absolute: []Rule{
		{"HP", HPAct},
		{"DEF", DefAct},
		{"ATK", AtkAct},
		{"Mastery", ElementalMastery},
	},
}

var locales = map[string]Locale{
	Japanese.Name: Japanese,
	English.Name:  English,
}

// LookupLocale returns the locale registered under name.
func LookupLocale(name string) (Locale, error) {
	loc, ok := locales[strings.ToLower(name)]
	if !ok {
		return Locale{}, fmt.Errorf("unknown locale %q (available: %s)", name, strings.Join(LocaleNames(), ", "))
	}
	return loc, nil
}

// LocaleNames returns the registered locale names, sorted.
func LocaleNames() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Classify resolves a status name with the Japanese locale.
func Classify(statusName string, isPercent bool) Type {
	return Japanese.Classify(statusName, isPercent)
}

// Classify returns the type of the first rule whose substring occurs in
// statusName, or Undetected when none does.
func (l Locale) Classify(statusName string, isPercent bool) Type {
	rules := l.Absolute
	if isPercent {
		rules = l.Percent
	}
	for _, r := range rules {
		if strings.Contains(statusName, r.Contains) {
			return r.Type
		}
	}
	return Undetected
}
