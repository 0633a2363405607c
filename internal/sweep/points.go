package sweep

import (
	"math"
	"sort"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
)

// timePoints returns the sorted, deduplicated union of the finite window
// bounds and every finite buff boundary strictly inside the window.
// Consecutive points delimit the maximal sub-intervals of constant buff
// composition.
func timePoints(bs []buffs.Buff, windowStart, windowEnd float64) []float64 {
	points := make([]float64, 0, 2+2*len(bs))
	if !math.IsInf(windowStart, 0) {
		points = append(points, windowStart)
	}
	if !math.IsInf(windowEnd, 0) {
		points = append(points, windowEnd)
	}
	for _, b := range bs {
		if !math.IsInf(b.Start, 0) && windowStart < b.Start && b.Start < windowEnd {
			points = append(points, b.Start)
		}
		if !math.IsInf(b.End, 0) && windowStart < b.End && b.End < windowEnd {
			points = append(points, b.End)
		}
	}
	sort.Float64s(points)

	out := points[:0]
	for i, p := range points {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
