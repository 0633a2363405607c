package buffs

import (
	"fmt"
	"math"
)

// Buff is one time-bounded stat modifier instance. It is active over the
// half-open interval [Start, End) and immutable once constructed: the sweep
// only ever reads it through Aggregate.Add and Aggregate.Remove.
//
// Effect fields are percentages layered on top of the Aggregate baselines; a
// zero field means the buff does not carry that effect. FullChargeDmg is the
// one indirect field: it is authored as a total charge multiplier and folds
// into charge damage as (value - 100).
type Buff struct {
	Start float64
	End   float64

	// Stacks multiplies every numeric effect. Zero means one.
	Stacks int

	Attack        float64
	FlatAtk       float64
	ChargeDmg     float64
	FullChargeDmg float64
	DamageTaken   float64
	ElementDmg    float64
	DamageUp      float64
	Defense       float64

	CritRate     float64
	CritDmg      float64
	CoreDmg      float64
	RangeDmg     float64
	FullBurstDmg float64

	// Override counters. A positive total forces the matching situational
	// bonus on regardless of the per-hit flags. Plan-authored booleans are
	// normalized to 1 before they reach this struct, and counters do not
	// scale with Stacks.
	CoreHit      int
	RangeBonus   int
	FullBurst    int
	ElementBonus int
}

// Validate rejects inverted intervals. End == Start is allowed and denotes a
// zero-width no-op: such a buff is never active in any half-open sub-interval.
func (b Buff) Validate() error {
	if b.End < b.Start {
		return fmt.Errorf("buff interval [%v, %v) is inverted", b.Start, b.End)
	}
	return nil
}

// ActiveAt reports whether t falls inside the buff's half-open window.
func (b Buff) ActiveAt(t float64) bool {
	return b.Start <= t && t < b.End
}

// Infinite reports whether the buff is unbounded on both sides.
func (b Buff) Infinite() bool {
	return math.IsInf(b.Start, -1) && math.IsInf(b.End, 1)
}

func (b Buff) stackCount() float64 {
	if b.Stacks <= 0 {
		return 1
	}
	return float64(b.Stacks)
}
