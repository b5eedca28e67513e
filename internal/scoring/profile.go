package scoring

import (
	"fmt"
	"strings"

	"github.com/dotcommander/artscore/internal/substat"
)

// Profile selects which secondary stat counts toward the score.
type Profile string

const (
	ProfileCrit             Profile = "CRIT"
	ProfileEnergyRecharge   Profile = "ENERGY_RECHARGE"
	ProfileDef              Profile = "DEF"
	ProfileHP               Profile = "HP"
	ProfileElementalMastery Profile = "ELEMENTAL_MASTERY"
)

// Profiles lists every profile in display order.
var Profiles = []Profile{
	ProfileCrit,
	ProfileEnergyRecharge,
	ProfileDef,
	ProfileHP,
	ProfileElementalMastery,
}

// Weight is the multiplier applied to a substat's value.
type Weight struct {
	Type   substat.Type
	Factor float64
}

// critWeights count under every profile. Crit rate is doubled to match
// the expected-damage value of crit damage.
var critWeights = []Weight{
	{substat.CritRate, 2},
	{substat.CritDamage, 1},
}

// secondaryWeights holds the one profile-specific stat per profile.
var secondaryWeights = map[Profile]Weight{
	ProfileCrit:             {substat.AtkPer, 1},
	ProfileEnergyRecharge:   {substat.EnergyRecharge, 1},
	ProfileDef:              {substat.DefPer, 1},
	ProfileHP:               {substat.HPPer, 1},
	ProfileElementalMastery: {substat.ElementalMastery, 0.5},
}

// ParseProfile accepts a profile name case-insensitively. "ER" and "EM" are
// accepted as short forms.
func ParseProfile(name string) (Profile, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "ER":
		return ProfileEnergyRecharge, nil
	case "EM":
		return ProfileElementalMastery, nil
	}
	for _, p := range Profiles {
		if string(p) == n {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown profile %q (available: %s)", name, profileList())
}

func profileList() string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Weights returns the non-zero weights of p, crit weights first.
func (p Profile) Weights() []Weight {
	ws := append([]Weight(nil), critWeights...)
	if w, ok := secondaryWeights[p]; ok {
		ws = append(ws, w)
	}
	return ws
}

// Factor returns the multiplier for t under p; zero when t does not count.
func (p Profile) Factor(t substat.Type) float64 {
	for _, w := range critWeights {
		if w.Type == t {
			return w.Factor
		}
	}
	if w, ok := secondaryWeights[p]; ok && w.Type == t {
		return w.Factor
	}
	return 0
}
