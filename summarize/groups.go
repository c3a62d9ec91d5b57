package summarize

import "sort"

// GroupSummary is the summary of one categorical level's observations.
type GroupSummary struct {
	Level string
	Summary
}

// DescribeGroups summarizes each level of a grouped column, with the levels
// in sorted order so that repeated runs produce identical tables.
func DescribeGroups(groups map[string][]float64) []GroupSummary {
	levels := make([]string, 0, len(groups))
	for level := range groups {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	return DescribeLevels(levels, groups)
}

// DescribeLevels summarizes the named levels in the given order. Levels
// absent from groups are summarized as empty (N = 0) so that a report table
// keeps a row for every expected level.
func DescribeLevels(levels []string, groups map[string][]float64) []GroupSummary {
	out := make([]GroupSummary, 0, len(levels))
	for _, level := range levels {
		out = append(out, GroupSummary{Level: level, Summary: Describe(groups[level])})
	}

	return out
}
