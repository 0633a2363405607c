// Package overload models overload-gear substat rolls: three lines, each
// gated by an unlock rate, drawing distinct substats without replacement
// from a weighted table. It offers both a closed-form estimate and a seeded
// Monte Carlo cross-check for the chance of landing a wanted substat pair.
package overload

import (
	"fmt"
	"math/rand"
	"sort"
)

// SubstatTable holds each substat's draw probability for a fresh line.
// The values sum to 1.
var SubstatTable = map[string]float64{
	"element_dmg": 0.10,
	"hit_rate":    0.12,
	"ammo":        0.12,
	"attack":      0.10,
	"charge_dmg":  0.12,
	"charge_spd":  0.12,
	"crit_rate":   0.12,
	"crit_dmg":    0.10,
	"defense":     0.10,
}

// LineRates is the unlock chance for each of the three lines. The first
// line always unlocks.
var LineRates = [3]float64{1.0, 0.5, 0.3}

// RollLines rolls one gear piece: up to three distinct substats, each line
// gated by its unlock rate. Locked lines are left empty.
func RollLines(rng *rand.Rand) [3]string {
	remaining := make(map[string]float64, len(SubstatTable))
	for name, p := range SubstatTable {
		remaining[name] = p
	}
	var lines [3]string
	for i := range lines {
		if rng.Float64() > LineRates[i] {
			continue
		}
		lines[i] = drawSubstat(rng, remaining)
		delete(remaining, lines[i])
	}
	return lines
}

// drawSubstat picks one substat weighted by the remaining probabilities.
// Keys are walked in sorted order so a seeded rng is reproducible.
func drawSubstat(rng *rand.Rand, table map[string]float64) string {
	names := make([]string, 0, len(table))
	var total float64
	for name, p := range table {
		names = append(names, name)
		total += p
	}
	sort.Strings(names)

	r := rng.Float64() * total
	for _, name := range names {
		r -= table[name]
		if r < 0 {
			return name
		}
	}
	return names[len(names)-1]
}

// PairProbability estimates the chance that a single roll contains both
// named substats. The two-line terms are exact; the all-three-lines term
// ignores the renormalization after each draw, so the estimate runs
// slightly low. Good enough for roll budgeting.
func PairProbability(a, b string) (float64, error) {
	pa, ok := SubstatTable[a]
	if !ok {
		return 0, fmt.Errorf("%q is not a valid substat", a)
	}
	pb, ok := SubstatTable[b]
	if !ok {
		return 0, fmt.Errorf("%q is not a valid substat", b)
	}
	if a == b {
		return 0, fmt.Errorf("substat pair must be distinct, got %q twice", a)
	}

	// Both wanted subs on lines 1 and 2, line 3 locked.
	p := pa * pb * LineRates[1] * (1 - LineRates[2]) * (1/(1-pa) + 1/(1-pb))
	// Lines 1 and 3, line 2 locked.
	p += pa * (1 - LineRates[1]) * pb * LineRates[2] * (1/(1-pa) + 1/(1-pb))
	// All three lines unlocked with any other substat alongside.
	for name, pc := range SubstatTable {
		if name == a || name == b {
			continue
		}
		p += pa * pb * pc * LineRates[1] * LineRates[2] * 6
	}
	return p, nil
}

// SimulatePair runs n rolls and returns the observed frequency of both
// named substats landing on the same piece.
func SimulatePair(n int, rng *rand.Rand, a, b string) float64 {
	if n <= 0 {
		return 0
	}
	hits := 0
	for i := 0; i < n; i++ {
		lines := RollLines(rng)
		if contains(lines, a) && contains(lines, b) {
			hits++
		}
	}
	return float64(hits) / float64(n)
}

func contains(lines [3]string, name string) bool {
	for _, line := range lines {
		if line == name {
			return true
		}
	}
	return false
}
