package damage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

func TestComputeUnbuffed(t *testing.T) {
	agg := buffs.New(buffs.DefaultBaseline())

	r := Compute(100, 100000, 10000, agg, Flags{})

	assert.InDelta(t, 90000.0, r.Base, 1e-6)
	assert.InDelta(t, 135000.0, r.Crit, 1e-6)
	assert.InDelta(t, 96750.0, r.Avg, 1e-6)
}

func TestComputeDefenseScales(t *testing.T) {
	agg := buffs.Build([]buffs.Buff{{Defense: -50}}, buffs.DefaultBaseline())

	r := Compute(100, 100000, 10000, agg, Flags{})

	// Halved defense subtracts half as much from final attack.
	assert.InDelta(t, 95000.0, r.Base, 1e-6)
}

func TestComputeElementGating(t *testing.T) {
	agg := buffs.New(buffs.DefaultBaseline())

	t.Run("neutral without flag or counter", func(t *testing.T) {
		r := Compute(100, 1000, 0, agg, Flags{})
		assert.InDelta(t, 1000.0, r.Base, 1e-9)
	})

	t.Run("flag applies the elemental multiplier", func(t *testing.T) {
		r := Compute(100, 1000, 0, agg, Flags{ElementBonus: true})
		assert.InDelta(t, 1100.0, r.Base, 1e-9)
	})

	t.Run("override counter applies it without the flag", func(t *testing.T) {
		forced := buffs.Build([]buffs.Buff{{ElementBonus: 1}}, buffs.DefaultBaseline())
		r := Compute(100, 1000, 0, forced, Flags{})
		assert.InDelta(t, 1100.0, r.Base, 1e-9)
	})

	t.Run("element damage buffs only matter when triggered", func(t *testing.T) {
		buffed := buffs.Build([]buffs.Buff{{ElementDmg: 10}}, buffs.DefaultBaseline())
		plain := Compute(100, 1000, 0, buffed, Flags{})
		elem := Compute(100, 1000, 0, buffed, Flags{ElementBonus: true})
		assert.InDelta(t, 1000.0, plain.Base, 1e-9)
		assert.InDelta(t, 1200.0, elem.Base, 1e-9)
	})
}

func TestComputeSituationalBonuses(t *testing.T) {
	agg := buffs.New(buffs.DefaultBaseline())

	tests := []struct {
		name  string
		flags Flags
		want  float64
	}{
		{name: "base", flags: Flags{}, want: 1000},
		{name: "core", flags: Flags{CoreHit: true}, want: 2000},
		{name: "range", flags: Flags{RangeBonus: true}, want: 1300},
		{name: "full burst", flags: Flags{FullBurst: true}, want: 1500},
		{name: "core and range and full burst", flags: Flags{CoreHit: true, RangeBonus: true, FullBurst: true}, want: 2800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Compute(100, 1000, 0, agg, tt.flags)
			assert.InDelta(t, tt.want, r.Base, 1e-9)
		})
	}
}

func TestComputeCritClamping(t *testing.T) {
	t.Run("crit rate clamps to one", func(t *testing.T) {
		agg := buffs.Build([]buffs.Buff{{CritRate: 300}}, buffs.DefaultBaseline())
		r := Compute(100, 1000, 0, agg, Flags{})
		assert.InDelta(t, r.Crit, r.Avg, 1e-9, "at capped crit rate the average is the crit value")
	})

	t.Run("crit rate clamps to zero", func(t *testing.T) {
		agg := buffs.Build([]buffs.Buff{{CritRate: -40}}, buffs.DefaultBaseline())
		r := Compute(100, 1000, 0, agg, Flags{})
		assert.InDelta(t, r.Base, r.Avg, 1e-9)
	})

	t.Run("negative crit damage floors at zero bonus", func(t *testing.T) {
		agg := buffs.Build([]buffs.Buff{{CritDmg: -200}}, buffs.DefaultBaseline())
		r := Compute(100, 1000, 0, agg, Flags{})
		assert.InDelta(t, r.Base, r.Crit, 1e-9)
	})
}

func TestComputeDoesNotMutateAggregate(t *testing.T) {
	agg := buffs.New(buffs.DefaultBaseline())
	before := *agg

	Compute(250, 90000, 4000, agg, Flags{CoreHit: true, ElementBonus: true})

	require.Equal(t, before, *agg)
}

func TestMultiplierFromDamage(t *testing.T) {
	assert.InDelta(t, 100.0, MultiplierFromDamage(90000, 100000, 10000), 1e-9)
	assert.InDelta(t, 250.0, MultiplierFromDamage(2500, 1100, 100), 1e-9)
}
