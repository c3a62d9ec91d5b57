package ranktest

import (
	"github.com/carbocation/pfx"

	mstats "github.com/aclements/go-moremath/stats"
)

// MannWhitney runs the two-sided Mann-Whitney U test of the independent
// samples x and y. The heavy lifting is delegated to go-moremath, which
// enumerates the exact U distribution for small samples (tie-aware) and
// falls back to the corrected normal approximation otherwise; Exact is not
// set because the library does not report which path it took.
func MannWhitney(x, y []float64) (Result, error) {
	res, err := mstats.MannWhitneyUTest(x, y, mstats.LocationDiffers)
	if err != nil {
		return Result{}, pfx.Err(err)
	}

	return Result{Stat: res.U, N: res.N1 + res.N2, P: res.P}, nil
}
