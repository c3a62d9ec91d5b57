package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/carbocation/pfx"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/compileinfo"
	"github.com/alcideschaux/Penis-p53/summarize"
	"gopkg.in/guregu/null.v3"
)

func writeReport(path string, dataset penisp53.Dataset, d descriptives, r results) error {
	buf := &bytes.Buffer{}

	mdHeading(buf, 1, "p53 labeling index: visual estimation vs digital image analysis")

	overviewSection(buf, dataset)
	descriptivesSection(buf, d)
	testsSection(buf, r)
	agreementSection(buf, r)
	chartsSection(buf)

	fmt.Fprintf(buf, "---\n\n%s\n", compileinfo.Get())

	return pfx.Err(os.WriteFile(path, buf.Bytes(), 0o644))
}

func overviewSection(buf *bytes.Buffer, dataset penisp53.Dataset) {
	mdHeading(buf, 2, "Dataset")

	cases := dataset.Cases()

	fmt.Fprintf(buf, "%d TMA spots across %d cases. %d spots carry a visual score and %d a digital score.\n\n",
		len(dataset.Spots), len(cases), len(dataset.VisualScores()), len(dataset.DigitalScores()))

	spotCounts := make(map[penisp53.Subtype]int)
	caseCounts := make(map[penisp53.Subtype]int)
	for _, s := range dataset.Spots {
		spotCounts[s.Subtype]++
	}
	for _, c := range cases {
		caseCounts[c.Subtype]++
	}

	rows := make([][]string, 0, len(penisp53.Subtypes))
	for _, st := range penisp53.Subtypes {
		rows = append(rows, []string{
			string(st),
			strconv.Itoa(caseCounts[st]),
			strconv.Itoa(spotCounts[st]),
		})
	}
	mdTable(buf, []string{"Subtype", "Cases", "Spots"}, rows)
}

func descriptivesSection(buf *bytes.Buffer, d descriptives) {
	mdHeading(buf, 2, "Descriptive statistics")

	header := append([]string{"Method"}, summarize.SummaryHeader...)
	rows := make([][]string, 0, len(penisp53.Methods))
	for _, m := range penisp53.Methods {
		rows = append(rows, append([]string{string(m)}, d.Overall[m].Row()...))
	}
	mdTable(buf, header, rows)

	for _, m := range penisp53.Methods {
		mdHeading(buf, 3, fmt.Sprintf("%s score by histologic subtype", m))
		mdTable(buf, append([]string{"Subtype"}, summarize.SummaryHeader...), groupRows(d.BySubtype[m]))

		mdHeading(buf, 3, fmt.Sprintf("%s score by histologic grade", m))
		mdTable(buf, append([]string{"Grade"}, summarize.SummaryHeader...), groupRows(d.ByGrade[m]))
	}
}

func groupRows(groups []summarize.GroupSummary) [][]string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, append([]string{g.Level}, g.Row()...))
	}

	return rows
}

func testsSection(buf *bytes.Buffer, r results) {
	mdHeading(buf, 2, "Hypothesis tests")

	mdTable(buf, testsHeader, r.rows())
}

func agreementSection(buf *bytes.Buffer, r results) {
	mdHeading(buf, 2, "Agreement between methods")

	a := r.Agreement
	fmt.Fprintf(buf, "Bias (visual - digital) across %d paired spots: %s%% (SD %s). 95%% limits of agreement: %s%% to %s%%.\n\n",
		a.N, fmtNA(a.Bias), fmtNA(a.SD), fmtNA(a.Lower), fmtNA(a.Upper))

	fmt.Fprintf(buf, "High p53 status (case digital mean at or above the pooled median) vs high grade (grade 3), per case:\n\n")
	mdTable(buf, []string{"", "Grade 3", "Grade 1-2"}, [][]string{
		{"High p53", strconv.Itoa(r.FisherTable[0]), strconv.Itoa(r.FisherTable[1])},
		{"Low p53", strconv.Itoa(r.FisherTable[2]), strconv.Itoa(r.FisherTable[3])},
	})
	fmt.Fprintf(buf, "Fisher's exact test, two-sided: p = %.4g.\n\n", r.FisherP)
}

func chartsSection(buf *bytes.Buffer) {
	mdHeading(buf, 2, "Charts")

	for _, img := range []struct{ Title, File string }{
		{"Visual vs digital scores with identity line", "scatter.png"},
		{"Bland-Altman plot", "bland_altman.png"},
		{"Visual score distribution", "hist_visual.png"},
		{"Digital score distribution", "hist_digital.png"},
		{"Median visual score by subtype", "median_subtype_visual.png"},
		{"Median digital score by subtype", "median_subtype_digital.png"},
	} {
		fmt.Fprintf(buf, "![%s](%s)\n\n", img.Title, img.File)
	}
}

func fmtNA(v null.Float) string {
	return summarize.FormatFloat(v, "%.2f")
}
