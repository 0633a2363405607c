package damage

import (
	"fmt"
	"strings"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

// MatrixSize is the number of situational flag combinations.
const MatrixSize = 16

// Matrix holds the damage outcome for every combination of the four
// situational flags, indexed 8*core + 4*range + 2*fullBurst + element.
type Matrix struct {
	Entries [MatrixSize]Result
}

// BonusTag returns the canonical label for a flag combination: the active
// flag names joined in core, range, fb, elem order, or "base" when none are
// set.
func BonusTag(coreHit, rangeBonus, fullBurst, elementBonus bool) string {
	parts := make([]string, 0, 4)
	if coreHit {
		parts = append(parts, "core")
	}
	if rangeBonus {
		parts = append(parts, "range")
	}
	if fullBurst {
		parts = append(parts, "fb")
	}
	if elementBonus {
		parts = append(parts, "elem")
	}
	if len(parts) == 0 {
		return "base"
	}
	return strings.Join(parts, "_")
}

func flagsAt(index int) Flags {
	return Flags{
		CoreHit:      index&8 != 0,
		RangeBonus:   index&4 != 0,
		FullBurst:    index&2 != 0,
		ElementBonus: index&1 != 0,
	}
}

var tagIndex = buildTagIndex()

func buildTagIndex() map[string]int {
	m := make(map[string]int, MatrixSize)
	for i := 0; i < MatrixSize; i++ {
		f := flagsAt(i)
		m[BonusTag(f.CoreHit, f.RangeBonus, f.FullBurst, f.ElementBonus)] = i
	}
	return m
}

// ComputeMatrix evaluates Compute for all sixteen flag combinations against
// one shared snapshot.
func ComputeMatrix(mult, attack, defense float64, agg *buffs.Aggregate) Matrix {
	var m Matrix
	for i := range m.Entries {
		m.Entries[i] = Compute(mult, attack, defense, agg, flagsAt(i))
	}
	return m
}

// ByTag looks up the result for a canonical bonus label. An unrecognized
// label is a programmer error and reported rather than treated as zero.
func (m Matrix) ByTag(tag string) (Result, error) {
	i, ok := tagIndex[tag]
	if !ok {
		return Result{}, fmt.Errorf("unknown bonus tag %q", tag)
	}
	return m.Entries[i], nil
}

// WeightedAvg blends the average damage column by the given label weights.
// With normalize set the sum is divided by the total weight, so weights need
// not sum to one; an all-zero weight map yields 0.
func (m Matrix) WeightedAvg(weights map[string]float64, normalize bool) (float64, error) {
	var total, totalWeight float64
	for tag, w := range weights {
		r, err := m.ByTag(tag)
		if err != nil {
			return 0, err
		}
		total += r.Avg * w
		totalWeight += w
	}
	if normalize && totalWeight != 0 {
		total /= totalWeight
	}
	return total, nil
}

// AccumulateAvg is the one-shot form: build the matrix and blend it.
func AccumulateAvg(mult, attack, defense float64, agg *buffs.Aggregate, weights map[string]float64, normalize bool) (float64, error) {
	return ComputeMatrix(mult, attack, defense, agg).WeightedAvg(weights, normalize)
}
