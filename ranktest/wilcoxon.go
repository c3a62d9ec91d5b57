package ranktest

import (
	"fmt"
	"math"

	"github.com/BenLubar/memoize"
	"github.com/tokenme/probab/dst"
)

// maxExactN is the largest number of nonzero differences for which the exact
// signed-rank distribution is enumerated. Above it, or whenever tied absolute
// differences make the exact distribution inapplicable, the normal
// approximation with tie and continuity corrections is used instead. This
// mirrors the switching behavior of R's wilcox.test.
const maxExactN = 25

var memoizedSignRankCounts = memoize.Memoize(signRankCounts)

// WilcoxonSignedRank runs the paired two-sided Wilcoxon signed-rank test of
// x against y. Pairs with a zero difference are dropped before ranking. The
// returned statistic is V, the sum of the ranks of the positive differences.
func WilcoxonSignedRank(x, y []float64) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("wilcoxon: paired samples differ in length (%d vs %d)", len(x), len(y))
	}

	d := make([]float64, 0, len(x))
	for i := range x {
		if diff := x[i] - y[i]; diff != 0 {
			d = append(d, diff)
		}
	}

	n := len(d)
	if n == 0 {
		return Result{}, fmt.Errorf("wilcoxon: no nonzero paired differences")
	}

	abs := make([]float64, n)
	for i, v := range d {
		abs[i] = math.Abs(v)
	}

	ranks := MidRanks(abs)

	v := 0.0
	for i := range d {
		if d[i] > 0 {
			v += ranks[i]
		}
	}

	if n <= maxExactN && !hasTies(abs) {
		return Result{Stat: v, N: n, P: exactSignRankP(n, int64(math.Round(v))), Exact: true}, nil
	}

	return Result{Stat: v, N: n, P: approxSignRankP(n, v, abs)}, nil
}

// exactSignRankP sums the exact null distribution of V: over all 2^n
// assignments of signs to the ranks 1..n, the share whose positive-rank sum
// is at least as extreme as v, doubled for the two-sided alternative.
func exactSignRankP(n int, v int64) float64 {
	counts := memoizedSignRankCounts.(func(int) []int64)(n)

	total := int64(n * (n + 1) / 2)

	var tail int64
	if float64(v) > float64(total)/2 {
		for s := v; s <= total; s++ {
			tail += counts[s]
		}
	} else {
		for s := int64(0); s <= v; s++ {
			tail += counts[s]
		}
	}

	p := 2 * float64(tail) / math.Exp2(float64(n))

	return math.Min(1, p)
}

// signRankCounts tabulates, for every achievable positive-rank sum s in
// 0..n(n+1)/2, how many of the 2^n sign assignments to the ranks 1..n reach
// exactly s.
func signRankCounts(n int) []int64 {
	counts := make([]int64, n*(n+1)/2+1)
	counts[0] = 1

	for k := 1; k <= n; k++ {
		for s := len(counts) - 1; s >= k; s-- {
			counts[s] += counts[s-k]
		}
	}

	return counts
}

// approxSignRankP is the normal approximation to the signed-rank p-value,
// with the tie correction on the ranked absolute differences and a 0.5
// continuity correction toward the mean.
func approxSignRankP(n int, v float64, abs []float64) float64 {
	nf := float64(n)
	mu := nf * (nf + 1) / 4

	tieTerm := 0.0
	for _, t := range TieCounts(abs) {
		tf := float64(t)
		tieTerm += tf*tf*tf - tf
	}

	sigma := math.Sqrt(nf*(nf+1)*(2*nf+1)/24 - tieTerm/48)

	z := v - mu
	switch {
	case z > 0:
		z -= 0.5
	case z < 0:
		z += 0.5
	}
	z /= sigma

	lower := dst.NormalCDF(0, 1)(z)
	p := 2 * math.Min(lower, 1-lower)

	return math.Min(1, p)
}
