// Package damage holds the pure damage math: the per-hit formula, the
// sixteen-way situational outcome matrix, and the weighted averaging used to
// blend a matrix into one expected value. Everything here is a pure function
// over an Aggregate snapshot; nothing mutates its inputs.
package damage

import (
	"math"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

// Flags are the per-hit situational switches. Each one is ORed with the
// matching Aggregate override counter when gating its bonus.
type Flags struct {
	CoreHit      bool
	RangeBonus   bool
	FullBurst    bool
	ElementBonus bool
}

// Result holds the three damage figures for one evaluation.
type Result struct {
	Base float64
	Crit float64
	Avg  float64
}

// Compute converts a skill multiplier, attacker/defender stats and a
// modifier snapshot into no-crit, crit and average damage.
//
// Elemental advantage must be explicitly triggered, either by the flag or by
// an accumulated override counter; only then does the elemental multiplier
// leave its neutral 1.0. NaN and infinities propagate per IEEE-754, which is
// what always-on buffs with infinite windows rely on.
func Compute(mult, attack, defense float64, agg *buffs.Aggregate, f Flags) Result {
	finalAtk := attack * agg.Attack / 100
	effDef := -defense * agg.Defense / 100
	charge := agg.ChargeDmg / 100
	taken := agg.DamageTaken / 100
	up := agg.DamageUp / 100

	element := 1.0
	if f.ElementBonus || agg.ElementBonus > 0 {
		element = agg.ElementDmg / 100
	}

	baseDmg := (finalAtk + effDef + agg.FlatAtk) * charge * taken * element * up * mult / 100

	baseMod := 1.0
	if f.CoreHit || agg.CoreHit > 0 {
		baseMod += agg.CoreDmg / 100
	}
	if f.RangeBonus || agg.RangeBonus > 0 {
		baseMod += agg.RangeDmg / 100
	}
	if f.FullBurst || agg.FullBurst > 0 {
		baseMod += agg.FullBurstDmg / 100
	}

	critRate := math.Min(1, math.Max(0, agg.CritRate/100))
	critDmg := math.Max(0, agg.CritDmg/100)
	critMod := baseMod + critDmg
	avgMod := baseMod*(1-critRate) + critMod*critRate

	return Result{
		Base: baseDmg * baseMod,
		Crit: baseDmg * critMod,
		Avg:  baseDmg * avgMod,
	}
}

// MultiplierFromDamage reverse-engineers a skill multiplier (as a
// percentage) from damage observed against known attack and defense stats.
// Useful for calibrating enemy attacks from recorded hits.
func MultiplierFromDamage(damage, attack, defense float64) float64 {
	return 100 * damage / (attack - defense)
}
