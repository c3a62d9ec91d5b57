package summarize

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Agreement summarizes paired differences in the Bland-Altman manner: the
// mean difference (bias), the SD of the differences, and the 95% limits of
// agreement at bias ± 1.96 SD. SD and the limits are undefined with fewer
// than two pairs.
type Agreement struct {
	N     int
	Bias  null.Float
	SD    null.Float
	Lower null.Float
	Upper null.Float
}

// BlandAltman computes the agreement summary of the paired samples x and y,
// differencing x - y pairwise.
func BlandAltman(x, y []float64) (Agreement, error) {
	if len(x) != len(y) {
		return Agreement{}, fmt.Errorf("bland-altman: paired samples differ in length (%d vs %d)", len(x), len(y))
	}

	d := PairwiseDiffs(x, y)

	a := Agreement{N: len(d)}
	if a.N == 0 {
		return a, nil
	}

	data := stats.LoadRawData(d)
	a.Bias = orNA(data.Mean())

	if a.N < 2 {
		return a, nil
	}

	a.SD = orNA(data.StandardDeviationSample())
	if a.Bias.Valid && a.SD.Valid {
		a.Lower = null.FloatFrom(a.Bias.Float64 - 1.96*a.SD.Float64)
		a.Upper = null.FloatFrom(a.Bias.Float64 + 1.96*a.SD.Float64)
	}

	return a, nil
}

// PairwiseDiffs returns x[i] - y[i] for each pair.
func PairwiseDiffs(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}

	return out
}

// PairwiseMeans returns (x[i] + y[i]) / 2 for each pair, the x-axis of a
// Bland-Altman plot.
func PairwiseMeans(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = (x[i] + y[i]) / 2
	}

	return out
}
