// Package penisp53 models the tissue-microarray (TMA) dataset behind a study
// of p53 immunohistochemical expression in penile squamous cell carcinoma.
// Each TMA spot was scored for p53 positivity twice: by visual estimation of
// the labeling index, and by digital image analysis of the same spot. The
// package loads the spot table, derives the per-case and per-method views,
// and leaves the statistics to the summarize and ranktest packages.
package penisp53

import (
	"fmt"

	"gopkg.in/guregu/null.v3"
)

// Subtype is the histologic subtype assigned to a spot.
type Subtype string

const (
	Usual     Subtype = "usual"
	Warty     Subtype = "warty"
	Basaloid  Subtype = "basaloid"
	Verrucous Subtype = "verrucous"
	Papillary Subtype = "papillary"
)

// Subtypes lists the valid histologic subtypes in report order.
var Subtypes = []Subtype{Usual, Warty, Basaloid, Verrucous, Papillary}

// Method identifies which of the two quantification methods produced a score.
type Method string

const (
	Visual  Method = "visual"
	Digital Method = "digital"
)

// Methods lists the two quantification methods in report order.
var Methods = []Method{Visual, Digital}

// Spot is one TMA spot measurement: a single tissue sample from one case,
// scored for p53 positivity by both methods. Grade is missing for spots where
// the tissue was not gradable, and either score is missing when that method
// could not evaluate the spot.
type Spot struct {
	Case    string     `csv:"case"`
	Spot    int        `csv:"spot"`
	Subtype Subtype    `csv:"subtype"`
	Grade   null.Int   `csv:"grade"`
	Visual  null.Float `csv:"visual"`
	Digital null.Float `csv:"digital"`
}

// Score returns the spot's score under the given method.
func (s Spot) Score(m Method) null.Float {
	if m == Digital {
		return s.Digital
	}

	return s.Visual
}

// Validate checks the row against the dataset schema: a known subtype, a
// grade in 1-3 when present, and scores within the labeling-index range
// [0,100] when present.
func (s Spot) Validate() error {
	if s.Case == "" {
		return fmt.Errorf("spot %d has no case identifier", s.Spot)
	}

	known := false
	for _, st := range Subtypes {
		if s.Subtype == st {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("case %s spot %d: unknown subtype %q", s.Case, s.Spot, s.Subtype)
	}

	if s.Grade.Valid && (s.Grade.Int64 < 1 || s.Grade.Int64 > 3) {
		return fmt.Errorf("case %s spot %d: grade %d out of range 1-3", s.Case, s.Spot, s.Grade.Int64)
	}

	for _, m := range Methods {
		if v := s.Score(m); v.Valid && (v.Float64 < 0 || v.Float64 > 100) {
			return fmt.Errorf("case %s spot %d: %s score %.1f outside [0,100]", s.Case, s.Spot, m, v.Float64)
		}
	}

	return nil
}
