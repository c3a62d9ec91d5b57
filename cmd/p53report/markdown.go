package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// writeTSV emits header and rows as a tab-delimited table file.
func writeTSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return pfx.Err(err)
	}
	if err := w.WriteAll(rows); err != nil {
		return pfx.Err(err)
	}

	w.Flush()

	return pfx.Err(w.Error())
}

// mdTable appends a GitHub-style markdown table to buf.
func mdTable(buf *bytes.Buffer, header []string, rows [][]string) {
	fmt.Fprintf(buf, "| %s |\n", strings.Join(header, " | "))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(buf, "| %s |\n", strings.Join(sep, " | "))

	for _, row := range rows {
		fmt.Fprintf(buf, "| %s |\n", strings.Join(row, " | "))
	}

	buf.WriteString("\n")
}

func mdHeading(buf *bytes.Buffer, level int, text string) {
	fmt.Fprintf(buf, "%s %s\n\n", strings.Repeat("#", level), text)
}
