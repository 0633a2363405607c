package sweep

import (
	"fmt"
	"math"
	"sort"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
	"github.com/KHP-Millennium/nikke-sim-room/internal/damage"
)

// DefaultThreshold is the buff count at which the dispatcher switches to the
// linearithmic sweep. The crossover is empirical: the quadratic sweep has
// lower constant overhead and wins below it.
const DefaultThreshold = 800

// Params bundles one window computation. WindowStart and WindowEnd may be
// infinite; only finite buff boundaries then delimit the timeline.
type Params struct {
	Tags        []Tag
	Attack      float64
	Defense     float64
	Buffs       []buffs.Buff
	WindowStart float64
	WindowEnd   float64

	// Normalize divides each tag's weighted average by its total weight.
	Normalize bool

	// Baseline overrides the stock bonus baselines when non-nil.
	Baseline *buffs.Baseline

	// Threshold overrides DefaultThreshold when positive.
	Threshold int
}

func (p Params) baseline() buffs.Baseline {
	if p.Baseline != nil {
		return *p.Baseline
	}
	return buffs.DefaultBaseline()
}

func (p Params) validate() error {
	if p.WindowEnd < p.WindowStart {
		return fmt.Errorf("analysis window [%v, %v] is inverted", p.WindowStart, p.WindowEnd)
	}
	for _, b := range p.Buffs {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	for _, t := range p.Tags {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p Params) zeroWidth() bool {
	return p.WindowStart == p.WindowEnd && !math.IsInf(p.WindowStart, 0)
}

// evalInterval adds each overlapping tag's contribution over [t0, t1) to
// results. Instantaneous tags land once, in the sub-interval containing
// their point; sustained tags are scaled by their overlap with the
// sub-interval.
func evalInterval(p Params, agg *buffs.Aggregate, t0, t1 float64, results []float64) error {
	for i, tag := range p.Tags {
		start, end := tag.Window()
		if start >= t1 || end < t0 {
			continue
		}
		avg, err := damage.AccumulateAvg(tag.Damage, p.Attack, p.Defense, agg, tag.Weights, p.Normalize)
		if err != nil {
			return err
		}
		if start == end {
			results[i] += avg
			continue
		}
		if overlap := math.Min(end, t1) - math.Max(start, t0); overlap > 0 {
			results[i] += avg * overlap
		}
	}
	return nil
}

// evalPoint handles a zero-width analysis window: sustained tags see zero
// overlap and contribute nothing, but an instantaneous tag exactly at the
// point still lands.
func evalPoint(p Params, agg *buffs.Aggregate, at float64, results []float64) error {
	for i, tag := range p.Tags {
		start, end := tag.Window()
		if start != end || start != at {
			continue
		}
		avg, err := damage.AccumulateAvg(tag.Damage, p.Attack, p.Defense, agg, tag.Weights, p.Normalize)
		if err != nil {
			return err
		}
		results[i] += avg
	}
	return nil
}

func activeAt(bs []buffs.Buff, t float64) []buffs.Buff {
	active := make([]buffs.Buff, 0, len(bs))
	for _, b := range bs {
		if b.ActiveAt(t) {
			active = append(active, b)
		}
	}
	return active
}

// WindowN2 is the quadratic sweep: for every sub-interval it rebuilds a
// fresh aggregate by filtering the full buff list for buffs active at the
// sub-interval start. Returns per-tag totals aligned 1:1 with p.Tags.
func WindowN2(p Params) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	results := make([]float64, len(p.Tags))

	if p.zeroWidth() {
		agg := buffs.Build(activeAt(p.Buffs, p.WindowStart), p.baseline())
		if err := evalPoint(p, agg, p.WindowStart, results); err != nil {
			return nil, err
		}
		return results, nil
	}

	points := timePoints(p.Buffs, p.WindowStart, p.WindowEnd)
	for j := 1; j < len(points); j++ {
		t0, t1 := points[j-1], points[j]
		agg := buffs.Build(activeAt(p.Buffs, t0), p.baseline())
		if err := evalInterval(p, agg, t0, t1, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// WindowNLogN is the linearithmic sweep: buffs are sorted by start and by
// end, and one running aggregate is updated incrementally at each timeline
// boundary with exactly the buffs that became active or inactive since the
// previous one. Each buff is added once and removed once across the whole
// sweep. Must return the same results as WindowN2 up to floating-point
// associativity.
func WindowNLogN(p Params) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	results := make([]float64, len(p.Tags))

	if p.zeroWidth() {
		agg := buffs.Build(activeAt(p.Buffs, p.WindowStart), p.baseline())
		if err := evalPoint(p, agg, p.WindowStart, results); err != nil {
			return nil, err
		}
		return results, nil
	}

	addOrder := make([]buffs.Buff, len(p.Buffs))
	copy(addOrder, p.Buffs)
	sort.SliceStable(addOrder, func(i, j int) bool { return addOrder[i].Start < addOrder[j].Start })

	subOrder := make([]buffs.Buff, len(p.Buffs))
	copy(subOrder, p.Buffs)
	sort.SliceStable(subOrder, func(i, j int) bool { return subOrder[i].End < subOrder[j].End })

	points := timePoints(p.Buffs, p.WindowStart, p.WindowEnd)
	if len(points) < 2 {
		return results, nil
	}

	agg := buffs.New(p.baseline())
	addIdx, subIdx := 0, 0
	for j := 1; j < len(points); j++ {
		t0, t1 := points[j-1], points[j]
		// Cursors only ever advance, so every buff is applied exactly once.
		for addIdx < len(addOrder) && addOrder[addIdx].Start <= t0 {
			agg.Add(addOrder[addIdx])
			addIdx++
		}
		for subIdx < len(subOrder) && subOrder[subIdx].End <= t0 {
			agg.Remove(subOrder[subIdx])
			subIdx++
		}
		if err := evalInterval(p, agg, t0, t1, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Window dispatches to WindowNLogN at or above the threshold buff count,
// WindowN2 below it.
func Window(p Params) ([]float64, error) {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if len(p.Buffs) >= threshold {
		return WindowNLogN(p)
	}
	return WindowN2(p)
}

// Total runs Window and sums the per-tag contributions.
func Total(p Params) (float64, error) {
	results, err := Window(p)
	if err != nil {
		return 0, err
	}
	return sum(results), nil
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}
