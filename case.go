package penisp53

import (
	"sort"

	"gopkg.in/guregu/null.v3"
)

// Case is the wide, one-row-per-patient view of the dataset: every spot
// belonging to the case, plus the derived case-level fields. MaxGrade is the
// highest grade observed across the case's spots, and is left invalid when no
// spot of the case was gradable.
type Case struct {
	Identifier string
	Subtype    Subtype
	Spots      []Spot
	MaxGrade   null.Int
}

// Cases groups the spots by case identifier and derives the case-level
// fields, returning the cases sorted by identifier.
func (d Dataset) Cases() []Case {
	byCase := make(map[string][]Spot)
	for _, s := range d.Spots {
		byCase[s.Case] = append(byCase[s.Case], s)
	}

	ids := make([]string, 0, len(byCase))
	for id := range byCase {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Case, 0, len(ids))
	for _, id := range ids {
		spots := byCase[id]
		sort.Slice(spots, func(i, j int) bool { return spots[i].Spot < spots[j].Spot })

		c := Case{
			Identifier: id,
			Subtype:    spots[0].Subtype,
			Spots:      spots,
		}

		for _, s := range spots {
			if s.Grade.Valid && (!c.MaxGrade.Valid || s.Grade.Int64 > c.MaxGrade.Int64) {
				c.MaxGrade = s.Grade
			}
		}

		out = append(out, c)
	}

	return out
}

// MeanScore averages one method's scores across the case's spots, excluding
// missing values. It is invalid when the method scored none of the case's
// spots.
func (c Case) MeanScore(m Method) null.Float {
	sum, n := 0.0, 0
	for _, s := range c.Spots {
		if v := s.Score(m); v.Valid {
			sum += v.Float64
			n++
		}
	}

	if n == 0 {
		return null.Float{}
	}

	return null.FloatFrom(sum / float64(n))
}

// CaseMeanScores returns the paired per-case mean scores for the cases where
// both methods scored at least one spot, sorted by case identifier.
func (d Dataset) CaseMeanScores() (visual, digital []float64) {
	for _, c := range d.Cases() {
		v, dg := c.MeanScore(Visual), c.MeanScore(Digital)
		if v.Valid && dg.Valid {
			visual = append(visual, v.Float64)
			digital = append(digital, dg.Float64)
		}
	}

	return visual, digital
}
