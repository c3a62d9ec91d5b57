package main

import (
	"strconv"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/summarize"
)

var descriptivesHeader = append([]string{"Grouping", "Level", "Method"}, summarize.SummaryHeader...)

// gradeLevels are the report rows kept for the grade groupings, in order.
var gradeLevels = []string{"1", "2", "3"}

// descriptives carries every descriptive table of the report, per method.
type descriptives struct {
	Overall   map[penisp53.Method]summarize.Summary
	BySubtype map[penisp53.Method][]summarize.GroupSummary
	ByGrade   map[penisp53.Method][]summarize.GroupSummary
}

func buildDescriptives(dataset penisp53.Dataset) descriptives {
	out := descriptives{
		Overall:   make(map[penisp53.Method]summarize.Summary),
		BySubtype: make(map[penisp53.Method][]summarize.GroupSummary),
		ByGrade:   make(map[penisp53.Method][]summarize.GroupSummary),
	}

	subtypeLevels := make([]string, 0, len(penisp53.Subtypes))
	for _, st := range penisp53.Subtypes {
		subtypeLevels = append(subtypeLevels, string(st))
	}

	for _, m := range penisp53.Methods {
		scores := make([]float64, 0)
		bySubtype := make(map[string][]float64)
		for st, vals := range dataset.ScoresBySubtype(m) {
			bySubtype[string(st)] = vals
			scores = append(scores, vals...)
		}

		byGrade := make(map[string][]float64)
		for grade, vals := range dataset.ScoresByGrade(m) {
			byGrade[strconv.FormatInt(grade, 10)] = vals
		}

		out.Overall[m] = summarize.Describe(scores)
		out.BySubtype[m] = summarize.DescribeLevels(subtypeLevels, bySubtype)
		out.ByGrade[m] = summarize.DescribeLevels(gradeLevels, byGrade)
	}

	return out
}

// long renders every descriptive table as one long tab-friendly table.
func (d descriptives) long() [][]string {
	out := make([][]string, 0)

	for _, m := range penisp53.Methods {
		out = append(out, append([]string{"overall", "", string(m)}, d.Overall[m].Row()...))
	}
	for _, m := range penisp53.Methods {
		for _, g := range d.BySubtype[m] {
			out = append(out, append([]string{"subtype", g.Level, string(m)}, g.Row()...))
		}
	}
	for _, m := range penisp53.Methods {
		for _, g := range d.ByGrade[m] {
			out = append(out, append([]string{"grade", g.Level, string(m)}, g.Row()...))
		}
	}

	return out
}
