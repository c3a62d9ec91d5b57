package ranktest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Spearman computes Spearman's rank correlation between x and y along with a
// two-sided p-value. Rho is the Pearson correlation of the midranks, so tied
// observations are handled by rank averaging. The p-value uses the
// t-distribution approximation on n-2 degrees of freedom (the convention of
// R's cor.test with exact=FALSE); a perfect monotone relationship yields
// p = 0 directly.
func Spearman(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("spearman: paired samples differ in length (%d vs %d)", len(x), len(y))
	}

	n := len(x)
	if n < 3 {
		return Result{}, fmt.Errorf("spearman: need at least 3 pairs, got %d", n)
	}

	rho := stat.Correlation(MidRanks(x), MidRanks(y), nil)

	if math.IsNaN(rho) {
		return Result{}, fmt.Errorf("spearman: correlation undefined (constant input)")
	}

	if math.Abs(rho) == 1 {
		return Result{Stat: rho, N: n, P: 0}, nil
	}

	t := rho * math.Sqrt(float64(n-2)/(1-rho*rho))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	p := 2 * tDist.CDF(-math.Abs(t))

	return Result{Stat: rho, N: n, P: math.Min(1, p)}, nil
}
