package penisp53

import (
	"math"

	"gopkg.in/guregu/null.v3"
)

// Log1p applies the log(1+x) transform to a score column. The labeling
// indices are right-skewed with a mass at zero, so the comparisons are
// repeated on this scale; log1p keeps zero at zero and is monotonic over the
// whole [0,100] range.
func Log1p(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Log1p(x)
	}

	return out
}

// Measurement is one row of the long, one-row-per-score view: the spot's
// identity plus a single method's score.
type Measurement struct {
	Case    string
	Spot    int
	Subtype Subtype
	Grade   null.Int
	Method  Method
	Score   float64
}

// LongByMethod stacks the two score columns into the long view, one row per
// scored spot-method pair. Missing scores contribute no row.
func (d Dataset) LongByMethod() []Measurement {
	out := make([]Measurement, 0, 2*len(d.Spots))
	for _, s := range d.Spots {
		for _, m := range Methods {
			v := s.Score(m)
			if !v.Valid {
				continue
			}

			out = append(out, Measurement{
				Case:    s.Case,
				Spot:    s.Spot,
				Subtype: s.Subtype,
				Grade:   s.Grade,
				Method:  m,
				Score:   v.Float64,
			})
		}
	}

	return out
}
