package ranktest

import (
	"fmt"

	"github.com/tokenme/probab/dst"
)

// KruskalWallis runs the Kruskal-Wallis rank test across two or more
// independent groups. The H statistic carries the tie correction on the
// pooled ranks, and the p-value comes from the chi-squared distribution with
// k-1 degrees of freedom. Groups with a single observation are legal; empty
// groups are ignored.
func KruskalWallis(groups ...[]float64) (Result, error) {
	nonEmpty := make([][]float64, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			nonEmpty = append(nonEmpty, g)
		}
	}

	if len(nonEmpty) < 2 {
		return Result{}, fmt.Errorf("kruskal-wallis: need at least 2 non-empty groups, got %d", len(nonEmpty))
	}

	pooled := make([]float64, 0)
	for _, g := range nonEmpty {
		pooled = append(pooled, g...)
	}

	n := len(pooled)
	nf := float64(n)
	ranks := MidRanks(pooled)

	h := 0.0
	offset := 0
	for _, g := range nonEmpty {
		rankSum := 0.0
		for i := range g {
			rankSum += ranks[offset+i]
		}
		offset += len(g)

		h += rankSum * rankSum / float64(len(g))
	}
	h = 12/(nf*(nf+1))*h - 3*(nf+1)

	tieTerm := 0.0
	for _, t := range TieCounts(pooled) {
		tf := float64(t)
		tieTerm += tf*tf*tf - tf
	}

	correction := 1 - tieTerm/(nf*nf*nf-nf)
	if correction == 0 {
		return Result{}, fmt.Errorf("kruskal-wallis: all %d observations are tied", n)
	}
	h /= correction

	df := len(nonEmpty) - 1

	return Result{Stat: h, N: n, P: chiSquareUpperTail(h, df)}, nil
}

// chiSquareUpperTail is P(X >= x) for a chi-squared variable with df degrees
// of freedom.
func chiSquareUpperTail(x float64, df int) (p float64) {
	defer func() { recover() }()

	p = 1.0 - dst.ChiSquareCDF(int64(df))(x)

	return
}
