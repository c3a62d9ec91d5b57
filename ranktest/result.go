package ranktest

// Result is the outcome of one hypothesis test.
type Result struct {
	// Stat is the test statistic: V for the signed-rank test, U for the
	// rank-sum test, H for Kruskal-Wallis, rho for Spearman.
	Stat float64

	// N is the number of observations the test actually used, after
	// exclusions such as dropped zero differences.
	N int

	// P is the two-sided p-value, always in [0,1].
	P float64

	// Exact reports whether an exact-distribution path produced P rather
	// than a large-sample approximation.
	Exact bool
}
