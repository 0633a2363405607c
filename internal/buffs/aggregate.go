package buffs

// Fixed starting values shared by every aggregate.
const (
	baseAttack      = 100.0
	baseChargeDmg   = 100.0
	baseDamageTaken = 100.0
	baseElementDmg  = 110.0
	baseDamageUp    = 100.0
	baseDefense     = 100.0
	baseFlatAtk     = 0.0
)

// Baseline holds the configurable bonus-percentage starting points.
type Baseline struct {
	CritRate     float64
	CritDmg      float64
	CoreDmg      float64
	RangeDmg     float64
	FullBurstDmg float64
}

// DefaultBaseline returns the stock bonus percentages.
func DefaultBaseline() Baseline {
	return Baseline{
		CritRate:     15,
		CritDmg:      50,
		CoreDmg:      100,
		RangeDmg:     30,
		FullBurstDmg: 50,
	}
}

// Aggregate is the running sum of baseline plus every currently-active
// buff's effects, each counted Stacks times. Add and Remove are exact
// inverses, which lets the incremental sweep mutate a single Aggregate in
// place as buffs enter and leave the active set.
//
// An Aggregate is not safe for concurrent mutation; callers wanting parallel
// window computations must Clone first.
type Aggregate struct {
	Attack      float64
	ChargeDmg   float64
	DamageTaken float64
	ElementDmg  float64
	DamageUp    float64
	Defense     float64
	FlatAtk     float64

	CritRate     float64
	CritDmg      float64
	CoreDmg      float64
	RangeDmg     float64
	FullBurstDmg float64

	CoreHit      int
	RangeBonus   int
	FullBurst    int
	ElementBonus int
}

// New returns an Aggregate seeded with the given baseline and no buffs.
func New(base Baseline) *Aggregate {
	return &Aggregate{
		Attack:       baseAttack,
		ChargeDmg:    baseChargeDmg,
		DamageTaken:  baseDamageTaken,
		ElementDmg:   baseElementDmg,
		DamageUp:     baseDamageUp,
		Defense:      baseDefense,
		FlatAtk:      baseFlatAtk,
		CritRate:     base.CritRate,
		CritDmg:      base.CritDmg,
		CoreDmg:      base.CoreDmg,
		RangeDmg:     base.RangeDmg,
		FullBurstDmg: base.FullBurstDmg,
	}
}

// Build returns an Aggregate over the given buffs in one shot.
func Build(bs []Buff, base Baseline) *Aggregate {
	a := New(base)
	a.AddAll(bs)
	return a
}

// Add applies one buff, scaled by its stack count.
func (a *Aggregate) Add(b Buff) { a.apply(b, 1) }

// Remove subtracts exactly what Add applied for the same buff.
func (a *Aggregate) Remove(b Buff) { a.apply(b, -1) }

// AddAll applies every buff in order.
func (a *Aggregate) AddAll(bs []Buff) {
	for _, b := range bs {
		a.Add(b)
	}
}

// RemoveAll subtracts every buff in order.
func (a *Aggregate) RemoveAll(bs []Buff) {
	for _, b := range bs {
		a.Remove(b)
	}
}

// Clone returns an independent copy of the aggregate.
func (a *Aggregate) Clone() *Aggregate {
	c := *a
	return &c
}

func (a *Aggregate) apply(b Buff, sign float64) {
	s := b.stackCount() * sign

	a.Attack += b.Attack * s
	a.ChargeDmg += b.ChargeDmg * s
	if b.FullChargeDmg != 0 {
		a.ChargeDmg += (b.FullChargeDmg - 100) * s
	}
	a.DamageTaken += b.DamageTaken * s
	a.ElementDmg += b.ElementDmg * s
	a.DamageUp += b.DamageUp * s
	a.Defense += b.Defense * s
	a.FlatAtk += b.FlatAtk * s

	a.CritRate += b.CritRate * s
	a.CritDmg += b.CritDmg * s
	a.CoreDmg += b.CoreDmg * s
	a.RangeDmg += b.RangeDmg * s
	a.FullBurstDmg += b.FullBurstDmg * s

	n := int(sign)
	a.CoreHit += b.CoreHit * n
	a.RangeBonus += b.RangeBonus * n
	a.FullBurst += b.FullBurst * n
	a.ElementBonus += b.ElementBonus * n
}
