package sweep

import (
	"log/slog"
	"math"
	"time"
)

// relTolerance is the relative tolerance used when checking the two sweep
// implementations against each other.
const relTolerance = 1e-9

func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// Compare runs both sweep implementations on the same input, logs a
// diagnostic if their totals diverge and a debug line with comparative
// timing, and returns the quadratic result. Divergence is reported, not
// fatal; the test suite treats it as a hard failure instead.
func Compare(p Params) (float64, error) {
	startNLogN := time.Now()
	nlogn, err := WindowNLogN(p)
	if err != nil {
		return 0, err
	}
	nlognDur := time.Since(startNLogN)

	startN2 := time.Now()
	n2, err := WindowN2(p)
	if err != nil {
		return 0, err
	}
	n2Dur := time.Since(startN2)

	totalNLogN, totalN2 := sum(nlogn), sum(n2)
	if !isClose(totalNLogN, totalN2) {
		slog.Error("sweep implementations diverged",
			"n2", totalN2,
			"nlogn", totalNLogN,
			"buffs", len(p.Buffs),
			"tags", len(p.Tags))
	}

	faster := "n2"
	if nlognDur < n2Dur {
		faster = "nlogn"
	}
	slog.Debug("sweep timing",
		"n2", n2Dur,
		"nlogn", nlognDur,
		"faster", faster)

	return totalN2, nil
}
