// Package summarize computes the descriptive statistics reported for the
// p53 labeling-index columns: per-column and per-group N, mean, SD, median,
// quartiles, and range, with missing-value exclusion handled upstream and
// undefined statistics carried as invalid null.Floats rather than errors.
package summarize

import (
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Summary holds the descriptive statistics of one column of observations.
// Mean, Median, Min, and Max are undefined for an empty column; SD and the
// quartile statistics are additionally undefined for a single observation,
// since a dispersion estimate needs at least two values.
type Summary struct {
	N      int
	Mean   null.Float
	SD     null.Float
	Median null.Float
	Q1     null.Float
	Q3     null.Float
	IQR    null.Float
	Min    null.Float
	Max    null.Float
}

// Describe computes the summary of xs. A short or empty column yields
// undefined statistics, never an error.
func Describe(xs []float64) Summary {
	s := Summary{N: len(xs)}
	if s.N == 0 {
		return s
	}

	data := stats.LoadRawData(xs)

	s.Mean = orNA(data.Mean())
	s.Median = orNA(data.Median())
	s.Min = orNA(data.Min())
	s.Max = orNA(data.Max())

	if s.N < 2 {
		return s
	}

	s.SD = orNA(data.StandardDeviationSample())

	if q, err := stats.Quartile(data); err == nil {
		s.Q1 = null.FloatFrom(q.Q1)
		s.Q3 = null.FloatFrom(q.Q3)
	}
	s.IQR = orNA(stats.InterQuartileRange(data))

	return s
}

// orNA maps a failed statistic to the undefined value.
func orNA(v float64, err error) null.Float {
	if err != nil {
		return null.Float{}
	}

	return null.FloatFrom(v)
}
