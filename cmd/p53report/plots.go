package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	"github.com/wcharczuk/go-chart/v2"
	"gopkg.in/guregu/null.v3"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/summarize"
)

func renderCharts(output string, dataset penisp53.Dataset, agreement summarize.Agreement) error {
	visual, digital := dataset.PairedScores()

	if err := scatterPlot(filepath.Join(output, "scatter.png"), visual, digital); err != nil {
		return err
	}

	if err := blandAltmanPlot(filepath.Join(output, "bland_altman.png"), visual, digital, agreement); err != nil {
		return err
	}

	for _, m := range penisp53.Methods {
		scores := dataset.VisualScores()
		if m == penisp53.Digital {
			scores = dataset.DigitalScores()
		}

		if err := histogramPlot(filepath.Join(output, fmt.Sprintf("hist_%s.png", m)), m, scores); err != nil {
			return err
		}

		if err := medianBarPlot(filepath.Join(output, fmt.Sprintf("median_subtype_%s.png", m)), m, dataset.ScoresBySubtype(m)); err != nil {
			return err
		}
	}

	log.Println("Rendered charts into", output)

	return nil
}

// scatterPlot draws digital against visual scores with the identity line, so
// systematic over- or under-estimation by eye shows up as displacement from
// the diagonal.
func scatterPlot(filename string, visual, digital []float64) error {
	graph := chart.Chart{
		Width:  512,
		Height: 512,
		XAxis:  chart.XAxis{Name: "Visual labeling index (%)"},
		YAxis:  chart.YAxis{Name: "Digital labeling index (%)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 100},
				YValues: []float64{0, 100},
				Style: chart.Style{
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.ContinuousSeries{
				XValues: visual,
				YValues: digital,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
				},
			},
		},
	}

	return renderPNG(graph, filename)
}

// blandAltmanPlot draws the paired differences against the paired means,
// with the bias and the 95% limits of agreement as horizontal lines.
func blandAltmanPlot(filename string, visual, digital []float64, agreement summarize.Agreement) error {
	means := summarize.PairwiseMeans(visual, digital)
	diffs := summarize.PairwiseDiffs(visual, digital)

	series := []chart.Series{
		chart.ContinuousSeries{
			XValues: means,
			YValues: diffs,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
			},
		},
	}

	for _, line := range []struct {
		Value  null.Float
		Dashed bool
	}{
		{agreement.Bias, false},
		{agreement.Lower, true},
		{agreement.Upper, true},
	} {
		if !line.Value.Valid {
			continue
		}

		style := chart.Style{StrokeColor: chart.ColorAlternateGray}
		if line.Dashed {
			style.StrokeDashArray = []float64{5, 5}
		}

		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, 100},
			YValues: []float64{line.Value.Float64, line.Value.Float64},
			Style:   style,
		})
	}

	graph := chart.Chart{
		Width:  512,
		Height: 512,
		XAxis:  chart.XAxis{Name: "Mean of methods (%)"},
		YAxis:  chart.YAxis{Name: "Visual - digital (%)"},
		Series: series,
	}

	return renderPNG(graph, filename)
}

// histogramPlot bins one method's scores into ten-point buckets across the
// labeling-index range.
func histogramPlot(filename string, m penisp53.Method, scores []float64) error {
	const bins = 10

	counts := make([]int, bins)
	for _, v := range scores {
		bucket := int(v / (100 / bins))
		if bucket >= bins {
			bucket = bins - 1
		}
		counts[bucket]++
	}

	bars := make([]chart.Value, 0, bins)
	for i, c := range counts {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%d-%d", i*10, (i+1)*10),
			Value: float64(c),
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s labeling index", m),
		Width:    640,
		Height:   384,
		BarWidth: 40,
		Bars:     bars,
	}

	return renderBarPNG(graph, filename)
}

// medianBarPlot draws the median score per histologic subtype.
func medianBarPlot(filename string, m penisp53.Method, bySubtype map[penisp53.Subtype][]float64) error {
	bars := make([]chart.Value, 0, len(penisp53.Subtypes))
	for _, st := range penisp53.Subtypes {
		median := summarize.Describe(bySubtype[st]).Median
		if !median.Valid {
			continue
		}

		bars = append(bars, chart.Value{Label: string(st), Value: median.Float64})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Median %s labeling index by subtype", m),
		Width:    640,
		Height:   384,
		BarWidth: 60,
		Bars:     bars,
	}

	return renderBarPNG(graph, filename)
}

func renderPNG(graph chart.Chart, filename string) error {
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	return writeBuffer(buffer, filename)
}

func renderBarPNG(graph chart.BarChart, filename string) error {
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return pfx.Err(err)
	}

	return writeBuffer(buffer, filename)
}

func writeBuffer(buffer *bytes.Buffer, filename string) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return pfx.Err(err)
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return pfx.Err(err)
	}

	return nil
}
