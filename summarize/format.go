package summarize

import (
	"fmt"
	"strconv"

	"gopkg.in/guregu/null.v3"
)

// SummaryHeader names the columns emitted by Summary.Row, in order.
var SummaryHeader = []string{"N", "Mean", "SD", "Median", "Q1", "Q3", "IQR", "Min", "Max"}

// FormatFloat renders a possibly-undefined statistic for a table cell,
// emitting "NA" when the value is undefined.
func FormatFloat(v null.Float, format string) string {
	if !v.Valid {
		return "NA"
	}

	return fmt.Sprintf(format, v.Float64)
}

// Row renders the summary as table cells matching SummaryHeader, with one
// decimal place for location statistics and two for dispersion.
func (s Summary) Row() []string {
	return []string{
		strconv.Itoa(s.N),
		FormatFloat(s.Mean, "%.1f"),
		FormatFloat(s.SD, "%.2f"),
		FormatFloat(s.Median, "%.1f"),
		FormatFloat(s.Q1, "%.1f"),
		FormatFloat(s.Q3, "%.1f"),
		FormatFloat(s.IQR, "%.2f"),
		FormatFloat(s.Min, "%.1f"),
		FormatFloat(s.Max, "%.1f"),
	}
}
