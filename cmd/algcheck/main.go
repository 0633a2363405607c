package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
	"github.com/KHP-Millennium/nikke-sim-room/internal/sweep"
)

func main() {
	sizes := flag.String("sizes", "100,400,800,1600,3200", "Comma-separated synthetic buff counts")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	window := flag.Float64("window", 180, "Analysis window length in seconds")
	verbose := flag.Bool("verbose", false, "Log per-run sweep diagnostics")
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	fmt.Println("Sweep algorithm equivalence check")
	fmt.Printf("seed=%d window=%.0fs\n", *seed, *window)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUFFS\tN2 (ms)\tNLOGN (ms)\tN2 TOTAL\tNLOGN TOTAL\tMATCH")
	for _, field := range strings.Split(*sizes, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			log.Fatalf("Bad size %q", field)
		}

		p := sweep.Params{
			Tags:        syntheticTags(*window),
			Attack:      65000,
			Defense:     8000,
			Buffs:       syntheticBuffs(rng, n, *window),
			WindowStart: 0,
			WindowEnd:   *window,
			Normalize:   true,
		}

		startN2 := time.Now()
		n2, err := sweep.WindowN2(p)
		if err != nil {
			log.Fatalf("N2 sweep failed: %v", err)
		}
		n2Dur := time.Since(startN2)

		startNLogN := time.Now()
		nlogn, err := sweep.WindowNLogN(p)
		if err != nil {
			log.Fatalf("NlogN sweep failed: %v", err)
		}
		nlognDur := time.Since(startNLogN)

		totalN2, totalNLogN := sum(n2), sum(nlogn)
		match := "yes"
		if relDiff(totalN2, totalNLogN) > 1e-9 {
			match = "NO"
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.2f\t%.2f\t%s\n",
			n,
			float64(n2Dur.Microseconds())/1000,
			float64(nlognDur.Microseconds())/1000,
			totalN2, totalNLogN, match)
	}
	w.Flush()
}

// syntheticBuffs generates n random attack/crit buffs with windows inside
// [0, window], including a few always-on ones.
func syntheticBuffs(rng *rand.Rand, n int, window float64) []buffs.Buff {
	out := make([]buffs.Buff, n)
	for i := range out {
		if i%97 == 0 {
			out[i] = buffs.Buff{
				Start:  math.Inf(-1),
				End:    math.Inf(1),
				Attack: 2 + rng.Float64()*3,
			}
			continue
		}
		start := rng.Float64() * window
		duration := 1 + rng.Float64()*14
		out[i] = buffs.Buff{
			Start:    start,
			End:      start + duration,
			Stacks:   1 + rng.Intn(5),
			Attack:   rng.Float64() * 10,
			CritRate: rng.Float64() * 3,
		}
	}
	return out
}

func syntheticTags(window float64) []sweep.Tag {
	return []sweep.Tag{
		{
			Damage:   120,
			Start:    0,
			Duration: math.Inf(1),
			Weights:  map[string]float64{"base": 0.833, "core": 0.167},
		},
		{
			Damage:  4995,
			Start:   window / 2,
			Weights: map[string]float64{"core_fb": 1.0},
		},
	}
}

func sum(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}
	return total
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}
