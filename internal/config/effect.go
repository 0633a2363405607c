package config

import (
	"math"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

// Buff converts a buff-typed effect into a raw buff record. The window is
// resolved from Start plus either an explicit End or a Duration (an infinite
// Duration gives an unbounded end); skill-table effects carry no window of
// their own and have it assigned by the plan layer instead.
func (e Effect) Buff() buffs.Buff {
	end := e.End
	if end == 0 {
		if math.IsInf(e.Duration, 1) {
			end = math.Inf(1)
		} else {
			end = e.Start + e.Duration
		}
	}
	return buffs.Buff{
		Start:  e.Start,
		End:    end,
		Stacks: e.Stacks,

		Attack:        e.Attack,
		FlatAtk:       e.FlatAtk,
		ChargeDmg:     e.ChargeDmg,
		FullChargeDmg: e.FullChargeDmg,
		DamageTaken:   e.DamageTaken,
		ElementDmg:    e.ElementDmg,
		DamageUp:      e.DamageUp,
		Defense:       e.Defense,

		CritRate:     e.CritRate,
		CritDmg:      e.CritDmg,
		CoreDmg:      e.CoreDmg,
		RangeDmg:     e.RangeDmg,
		FullBurstDmg: e.FullBurstDmg,

		CoreHit:      e.CoreHit,
		RangeBonus:   e.RangeBonus,
		FullBurst:    e.FullBurst,
		ElementBonus: e.ElementBonus,
	}
}
