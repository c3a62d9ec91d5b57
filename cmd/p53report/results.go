package main

import (
	"fmt"
	"log"

	fet "github.com/glycerine/golang-fisher-exact"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/ranktest"
	"github.com/alcideschaux/Penis-p53/summarize"
)

var testsHeader = []string{"Comparison", "Test", "Statistic", "N", "P"}

// highGrade is the grade treated as "high" when dichotomizing.
const highGrade = 3

// testRow is one line of the hypothesis-test table.
type testRow struct {
	Comparison string
	Test       string
	Statistic  string
	N          int
	P          float64
}

// results carries the hypothesis tests and agreement figures of the report.
type results struct {
	Tests     []testRow
	Agreement summarize.Agreement

	// FisherP is the two-sided exact p-value for high p53 status vs high
	// grade on the per-case 2x2 table.
	FisherP float64
	// FisherTable is that table as [highP53&highGrade, highP53&lowGrade,
	// lowP53&highGrade, lowP53&lowGrade].
	FisherTable [4]int
}

func buildResults(dataset penisp53.Dataset) (results, error) {
	out := results{}

	visual, digital := dataset.PairedScores()

	add := func(comparison, test string, res ranktest.Result, err error, statLabel string) error {
		if err != nil {
			return fmt.Errorf("%s (%s): %v", comparison, test, err)
		}

		out.Tests = append(out.Tests, testRow{
			Comparison: comparison,
			Test:       test,
			Statistic:  fmt.Sprintf("%s = %.4g", statLabel, res.Stat),
			N:          res.N,
			P:          res.P,
		})

		return nil
	}

	// Paired method comparison, raw and log1p scale, spot level and
	// case-mean level.
	res, err := ranktest.WilcoxonSignedRank(visual, digital)
	if err := add("visual vs digital, spots", "Wilcoxon signed-rank", res, err, "V"); err != nil {
		return out, err
	}

	res, err = ranktest.WilcoxonSignedRank(penisp53.Log1p(visual), penisp53.Log1p(digital))
	if err := add("visual vs digital, spots, log1p", "Wilcoxon signed-rank", res, err, "V"); err != nil {
		return out, err
	}

	caseVisual, caseDigital := dataset.CaseMeanScores()
	res, err = ranktest.WilcoxonSignedRank(caseVisual, caseDigital)
	if err := add("visual vs digital, case means", "Wilcoxon signed-rank", res, err, "V"); err != nil {
		return out, err
	}

	// Correlation between the methods.
	res, err = ranktest.Spearman(visual, digital)
	if err := add("visual vs digital, spots", "Spearman correlation", res, err, "rho"); err != nil {
		return out, err
	}

	res, err = ranktest.Spearman(caseVisual, caseDigital)
	if err := add("visual vs digital, case means", "Spearman correlation", res, err, "rho"); err != nil {
		return out, err
	}

	// Each method across subtypes and across grades.
	for _, m := range penisp53.Methods {
		bySubtype := dataset.ScoresBySubtype(m)
		groups := make([][]float64, 0, len(penisp53.Subtypes))
		for _, st := range penisp53.Subtypes {
			groups = append(groups, bySubtype[st])
		}

		res, err = ranktest.KruskalWallis(groups...)
		if err := add(fmt.Sprintf("%s across subtypes", m), "Kruskal-Wallis", res, err, "H"); err != nil {
			return out, err
		}

		byGrade := dataset.ScoresByGrade(m)
		res, err = ranktest.KruskalWallis(byGrade[1], byGrade[2], byGrade[3])
		if err := add(fmt.Sprintf("%s across grades", m), "Kruskal-Wallis", res, err, "H"); err != nil {
			return out, err
		}

		lowGrade := append(append([]float64{}, byGrade[1]...), byGrade[2]...)
		res, err = ranktest.MannWhitney(lowGrade, byGrade[highGrade])
		if err := add(fmt.Sprintf("%s, grade 1-2 vs grade 3", m), "Mann-Whitney", res, err, "U"); err != nil {
			return out, err
		}
	}

	agreement, err := summarize.BlandAltman(visual, digital)
	if err != nil {
		return out, err
	}
	out.Agreement = agreement

	out.FisherTable, out.FisherP = fisherHighP53HighGrade(dataset)

	log.Println("Computed", len(out.Tests), "hypothesis tests")

	return out, nil
}

// fisherHighP53HighGrade dichotomizes each case on digital p53 status (mean
// at or above the pooled case-mean median counts as high) and on grade
// (grade 3 counts as high), and runs Fisher's exact test on the 2x2 table.
// Cases without a derived grade or without digital scores are excluded.
func fisherHighP53HighGrade(dataset penisp53.Dataset) ([4]int, float64) {
	_, caseDigital := dataset.CaseMeanScores()
	median := summarize.Describe(caseDigital).Median

	var table [4]int
	for _, c := range dataset.Cases() {
		mean := c.MeanScore(penisp53.Digital)
		if !mean.Valid || !c.MaxGrade.Valid || !median.Valid {
			continue
		}

		highP53 := mean.Float64 >= median.Float64
		high := c.MaxGrade.Int64 == highGrade

		switch {
		case highP53 && high:
			table[0]++
		case highP53 && !high:
			table[1]++
		case !highP53 && high:
			table[2]++
		default:
			table[3]++
		}
	}

	_, _, _, twop := fet.FisherExactTest(table[0], table[1], table[2], table[3])

	return table, twop
}

// rows renders the test table for TSV output.
func (r results) rows() [][]string {
	out := make([][]string, 0, len(r.Tests))
	for _, row := range r.Tests {
		out = append(out, []string{
			row.Comparison,
			row.Test,
			row.Statistic,
			fmt.Sprintf("%d", row.N),
			fmt.Sprintf("%.4g", row.P),
		})
	}

	return out
}
