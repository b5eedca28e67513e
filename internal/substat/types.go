// Package substat turns OCR-recognized artifact text into typed substat records.
package substat

// Type identifies which statistic a substat line carries.
type Type string

const (
	AtkAct           Type = "ATK_ACT"
	AtkPer           Type = "ATK_PER"
	DefAct           Type = "DEF_ACT"
	DefPer           Type = "DEF_PER"
	HPAct            Type = "HP_ACT"
	HPPer            Type = "HP_PER"
	CritRate         Type = "CRIT_RATE"
	CritDamage       Type = "CRIT_DAMAGE"
	EnergyRecharge   Type = "ENERGY_RECHARGE"
	ElementalMastery Type = "ELEMENTAL_MASTERY"
	Undetected       Type = "UNDETECTED"
)

// Types lists every known type in display order. Undetected is excluded.
var Types = []Type{
	HPAct, HPPer, AtkAct, AtkPer, DefAct, DefPer,
	ElementalMastery, EnergyRecharge, CritRate, CritDamage,
}

// Kind tells whether a parameter was read as an absolute amount or a percentage.
type Kind string

const (
	KindActual  Kind = "actual"
	KindPercent Kind = "percent"
)

// Param is the numeric half of a substat line.
// Label keeps the normalized numeral text for display; Value is the parsed magnitude
// with any percent sign removed, so "25.3%" is stored as 25.3.
type Param struct {
	Label string  `json:"label" yaml:"label"`
	Kind  Kind    `json:"kind" yaml:"kind"`
	Value float64 `json:"value" yaml:"value"`
}

// Substat is one classified line of artifact text.
type Substat struct {
	Label      string `json:"label" yaml:"label"`
	Type       Type   `json:"type" yaml:"type"`
	StatusName string `json:"statusName" yaml:"statusName"`
	Param      Param  `json:"param" yaml:"param"`
}

// New builds a Substat, deriving Label from the status name and parameter label.
func New(statusName string, t Type, param Param) Substat {
	return Substat{
		Label:      statusName + "+" + param.Label,
		Type:       t,
		StatusName: statusName,
		Param:      param,
	}
}

// IsPercent reports whether the parameter was read with a percent sign.
func (s Substat) IsPercent() bool {
	return s.Param.Kind == KindPercent
}
