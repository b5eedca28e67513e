package scoring

import (
	"math"

	"github.com/dotcommander/artscore/internal/substat"
)

// maxRolls is how many upgrade rolls a single substat can receive.
const maxRolls = 6

// MaxRoll is the highest single-roll value of each substat type on a 5-star artifact.
var MaxRoll = map[substat.Type]float64{
	substat.HPAct:            298.75,
	substat.AtkAct:           19.45,
	substat.DefAct:           23.15,
	substat.HPPer:            5.83,
	substat.AtkPer:           5.83,
	substat.DefPer:           7.29,
	substat.ElementalMastery: 23.31,
	substat.EnergyRecharge:   6.48,
	substat.CritRate:         3.89,
	substat.CritDamage:       7.77,
}

// Score sums every substat's weighted value under p.
// The result is unrounded; rounding is left to presentation.
func Score(subs []substat.Substat, p Profile) float64 {
	var total float64
	for _, s := range subs {
		total += s.Param.Value * p.Factor(s.Type)
	}
	return total
}

// RollQuality returns how much of the best possible total roll value s reached,
// as a percentage rounded to one decimal place. Undetected substats have no
// maximum and yield a *ConfigurationError; callers should skip them.
func RollQuality(s substat.Substat) (float64, error) {
	maxRoll, ok := MaxRoll[s.Type]
	if !ok {
		return 0, &ConfigurationError{Type: s.Type}
	}
	return Round1(s.Param.Value / (maxRoll * maxRolls) * 100), nil
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Evaluate scores subs under p and breaks the score down per substat.
func Evaluate(subs []substat.Substat, p Profile) Result {
	res := Result{
		Profile:       p,
		Contributions: make([]Contribution, 0, len(subs)),
	}

	for _, s := range subs {
		factor := p.Factor(s.Type)
		c := Contribution{
			Label:  s.Label,
			Type:   s.Type,
			Value:  s.Param.Value,
			Factor: factor,
			Points: s.Param.Value * factor,
		}
		if s.Type != substat.Undetected {
			if q, err := RollQuality(s); err == nil {
				c.Detected = true
				c.RollQuality = q
			}
		}
		res.Contributions = append(res.Contributions, c)
	}

	res.Score = Score(subs, p)
	res.Tier = TierFromScore(res.Score)
	return res
}
