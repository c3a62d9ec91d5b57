// Package ranktest implements the rank-based hypothesis tests used to compare
// the two p53 quantification methods: the paired Wilcoxon signed-rank test,
// the Mann-Whitney rank-sum test, the Kruskal-Wallis test, and Spearman's
// rank correlation. P-value conventions follow R's wilcox.test, kruskal.test,
// and cor.test so that the report's numbers line up with the statistical
// literature the study cites.
package ranktest

import "sort"

// MidRanks assigns 1-based ranks to xs, giving each run of tied values the
// average of the ranks the run spans.
func MidRanks(xs []float64) []float64 {
	n := len(xs)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}

		// Ranks are 1-based, so positions i..j share rank (i+j+2)/2.
		avg := float64(i+j+2) / 2.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}

		i = j + 1
	}

	return ranks
}

// TieCounts returns the size of each run of tied values in xs. An untied
// observation contributes a run of size 1, so the counts always sum to
// len(xs).
func TieCounts(xs []float64) []int {
	n := len(xs)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	out := make([]int, 0, n)
	run := 1
	for i := 1; i < n; i++ {
		if sorted[i] == sorted[i-1] {
			run++
			continue
		}

		out = append(out, run)
		run = 1
	}

	return append(out, run)
}

// hasTies reports whether any value occurs more than once in xs.
func hasTies(xs []float64) bool {
	for _, t := range TieCounts(xs) {
		if t > 1 {
			return true
		}
	}

	return false
}
