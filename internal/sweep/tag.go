// Package sweep integrates damage-tag contributions over an analysis window
// by partitioning it into sub-intervals of constant buff composition. Two
// independent sweep implementations are kept behaviorally identical: a
// quadratic one that rebuilds the aggregate per sub-interval, and a
// linearithmic one that maintains it incrementally.
package sweep

import (
	"fmt"
	"math"
)

// Tag is one damage source integrated over the analysis window: a skill
// multiplier, an activity window, and a weighting over situational outcome
// labels used to blend the damage matrix into one expected value.
//
// The window is given either as an explicit End or as Start + Duration; a
// non-zero End wins. A resolved zero-width window marks an instantaneous
// hit, which contributes one raw evaluation instead of being scaled by
// overlap time. An infinite Duration marks a sustained-forever source.
type Tag struct {
	Damage   float64
	Start    float64
	Duration float64
	End      float64
	Weights  map[string]float64
}

// Window resolves the tag's activity interval.
func (t Tag) Window() (start, end float64) {
	end = t.End
	if end == 0 {
		if math.IsInf(t.Duration, 1) {
			end = math.Inf(1)
		} else {
			end = t.Start + t.Duration
		}
	}
	return t.Start, end
}

// Instant reports whether the tag resolves to a one-shot hit.
func (t Tag) Instant() bool {
	start, end := t.Window()
	return start == end
}

// Validate rejects inverted activity windows.
func (t Tag) Validate() error {
	start, end := t.Window()
	if end < start {
		return fmt.Errorf("damage tag window [%v, %v) is inverted", start, end)
	}
	return nil
}
