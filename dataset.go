package penisp53

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/carbocation/pfx"
	"github.com/carbocation/runningvariance"
	"github.com/gocarina/gocsv"
	"gopkg.in/guregu/null.v3"
)

// Dataset is the loaded spot table. It is read once and never mutated; the
// derived views (Cases, LongByMethod, score columns) are computed on demand.
type Dataset struct {
	Spots []Spot
}

// OpenDataset reads the spot table from a delimited file on disk, gzipped or
// plain.
func OpenDataset(path string) (Dataset, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return Dataset{}, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(f)
	if err != nil {
		return Dataset{}, err
	}

	return ReadDataset(r)
}

// ReadDataset parses the spot table from r. The delimiter is detected rather
// than assumed, since the scoring files have circulated in both comma- and
// tab-delimited forms. Every row is validated against the schema, and the
// spread of both score columns is logged so that a truncated or rescaled
// export is visible at load time.
func ReadDataset(r io.Reader) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, pfx.Err(err)
	}

	// The reader is constructed per call rather than installed through
	// gocsv's package-global factory, so interleaved loads with different
	// delimiters cannot see each other's settings.
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = DetermineDelimiter(bytes.NewReader(raw))
	cr.LazyQuotes = true

	spots := []*Spot{}
	if err := gocsv.UnmarshalCSV(cr, &spots); err != nil {
		return Dataset{}, pfx.Err(fmt.Errorf("parsing spot table: %v", err))
	}

	out := Dataset{Spots: make([]Spot, 0, len(spots))}

	visual, digital := newColumnScan(), newColumnScan()

	for i, spot := range spots {
		if err := spot.Validate(); err != nil {
			return Dataset{}, pfx.Err(fmt.Errorf("row %d: %v", i+1, err))
		}

		visual.Observe(spot.Visual)
		digital.Observe(spot.Digital)

		out.Spots = append(out.Spots, *spot)
	}

	log.Println("Loaded", len(out.Spots), "spots across", len(out.Cases()), "cases")
	visual.Log(Visual)
	digital.Log(Digital)

	return out, nil
}

// VisualScores returns the visual labeling indices, excluding missing values.
func (d Dataset) VisualScores() []float64 {
	return d.scores(Visual)
}

// DigitalScores returns the digital labeling indices, excluding missing
// values.
func (d Dataset) DigitalScores() []float64 {
	return d.scores(Digital)
}

func (d Dataset) scores(m Method) []float64 {
	out := make([]float64, 0, len(d.Spots))
	for _, s := range d.Spots {
		if v := s.Score(m); v.Valid {
			out = append(out, v.Float64)
		}
	}

	return out
}

// PairedScores returns the visual and digital scores for the spots where both
// methods evaluated the tissue, in spot order. The two slices have the same
// length and index i of each refers to the same spot.
func (d Dataset) PairedScores() (visual, digital []float64) {
	for _, s := range d.Spots {
		if s.Visual.Valid && s.Digital.Valid {
			visual = append(visual, s.Visual.Float64)
			digital = append(digital, s.Digital.Float64)
		}
	}

	return visual, digital
}

// ScoresBySubtype groups one method's scores by histologic subtype, excluding
// missing values.
func (d Dataset) ScoresBySubtype(m Method) map[Subtype][]float64 {
	out := make(map[Subtype][]float64)
	for _, s := range d.Spots {
		if v := s.Score(m); v.Valid {
			out[s.Subtype] = append(out[s.Subtype], v.Float64)
		}
	}

	return out
}

// ScoresByGrade groups one method's scores by spot-level histologic grade.
// Spots with missing grade or a missing score are excluded.
func (d Dataset) ScoresByGrade(m Method) map[int64][]float64 {
	out := make(map[int64][]float64)
	for _, s := range d.Spots {
		if !s.Grade.Valid {
			continue
		}
		if v := s.Score(m); v.Valid {
			out[s.Grade.Int64] = append(out[s.Grade.Int64], v.Float64)
		}
	}

	return out
}

// columnScan tracks the running spread of a score column during load.
type columnScan struct {
	runningvariance.RunningStat
	Min float64
	Max float64
}

func newColumnScan() *columnScan {
	return &columnScan{
		*runningvariance.NewRunningStat(),
		math.MaxFloat64,
		-math.MaxFloat64,
	}
}

func (c *columnScan) Observe(v null.Float) {
	if !v.Valid {
		return
	}

	c.Push(v.Float64)
	if v.Float64 > c.Max {
		c.Max = v.Float64
	}
	if v.Float64 < c.Min {
		c.Min = v.Float64
	}
}

func (c *columnScan) Log(m Method) {
	if c.N == 0 {
		log.Println(m, "column is empty")
		return
	}

	log.Println(m, "column:", c.N, "scored spots. Min:", c.Min, "Max:", c.Max, "Mean:", c.Mean(), "Std:", c.StandardDeviation())
}
