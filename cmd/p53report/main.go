// p53report builds the statistical report comparing visual estimation and
// digital image analysis of the p53 labeling index on the penile squamous
// cell carcinoma tissue-microarray dataset. It emits a markdown report,
// tab-delimited tables, and PNG charts into the output directory, and prints
// score histograms to stdout along the way.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/pfx"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/compileinfo"
)

func main() {
	log.Println(compileinfo.Get())

	var input, workbook, output string

	flag.StringVar(&input, "input", "data/p53.csv", "The spot table in delimited form")
	flag.StringVar(&workbook, "workbook", "", "Optional scoring workbook (.xls or .xlsx). Overrides -input.")
	flag.StringVar(&output, "output", "report", "Directory that receives report.md, the TSV tables, and the PNG charts")
	flag.Parse()

	if err := runAll(input, workbook, output); err != nil {
		log.Fatalln(err)
	}

	log.Println("Completed")
}

func runAll(input, workbook, output string) error {
	var dataset penisp53.Dataset
	var err error

	if workbook != "" {
		dataset, err = penisp53.ReadWorkbook(workbook)
	} else {
		dataset, err = penisp53.OpenDataset(input)
	}
	if err != nil {
		return err
	}

	output = penisp53.ExpandHome(output)
	if err := os.MkdirAll(output, 0o755); err != nil {
		return pfx.Err(err)
	}

	if err := printHistogram("Visual", dataset.VisualScores()); err != nil {
		return err
	}
	if err := printHistogram("Digital", dataset.DigitalScores()); err != nil {
		return err
	}

	descriptives := buildDescriptives(dataset)
	if err := writeTSV(filepath.Join(output, "descriptives.tsv"), descriptivesHeader, descriptives.long()); err != nil {
		return err
	}

	results, err := buildResults(dataset)
	if err != nil {
		return err
	}
	if err := writeTSV(filepath.Join(output, "tests.tsv"), testsHeader, results.rows()); err != nil {
		return err
	}

	if err := renderCharts(output, dataset, results.Agreement); err != nil {
		return err
	}

	log.Println("Writing", filepath.Join(output, "report.md"))

	return writeReport(filepath.Join(output, "report.md"), dataset, descriptives, results)
}

func printHistogram(label string, scores []float64) error {
	log.Println(label, "labeling-index distribution:")

	hist := histogram.Hist(10, scores)

	return pfx.Err(histogram.Fprint(os.Stdout, hist, histogram.Linear(40)))
}
