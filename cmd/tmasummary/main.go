// tmasummary is a convenience tool to summarize any delimited table by the
// levels of one grouping column: for each requested value column and each
// level, it prints N, mean, SD, median, quartiles, and range as a
// tab-delimited table on stdout.
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	penisp53 "github.com/alcideschaux/Penis-p53"
	"github.com/alcideschaux/Penis-p53/summarize"
)

func main() {
	var input, groupCol, valueCols string

	flag.StringVar(&input, "input", "", "The input file. The delimiter is detected, not assumed.")
	flag.StringVar(&groupCol, "group", "", "Column whose levels define the groups")
	flag.StringVar(&valueCols, "values", "", "Comma-delimited list of numeric columns to summarize")
	flag.Parse()

	if input == "" || groupCol == "" || valueCols == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(penisp53.ExpandHome(input))
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	if err := summarizeTable(f, groupCol, strings.Split(valueCols, ",")); err != nil {
		log.Fatalln(err)
	}
}

func summarizeTable(f io.Reader, groupCol string, valueCols []string) error {
	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	csvReader := csv.NewReader(bytes.NewReader(raw))
	csvReader.Comma = penisp53.DetermineDelimiter(bytes.NewReader(raw))
	entries, err := csvReader.ReadAll()
	if err != nil {
		return err
	}

	if len(entries) < 1 {
		return fmt.Errorf("no entries in the input file")
	}

	header := make(map[string]int)
	for i, col := range entries[0] {
		header[col] = i
	}

	groupIdx, ok := header[groupCol]
	if !ok {
		return fmt.Errorf("group column %q not found in the header", groupCol)
	}
	for _, col := range valueCols {
		if _, ok := header[col]; !ok {
			return fmt.Errorf("value column %q not found in the header", col)
		}
	}

	// Level -> column -> observations. Blank cells are excluded; anything
	// else that fails to parse is an error.
	grouped := make(map[string]map[string][]float64)
	for i, row := range entries {
		if i == 0 {
			continue
		}

		level := row[groupIdx]
		if grouped[level] == nil {
			grouped[level] = make(map[string][]float64)
		}

		for _, col := range valueCols {
			cell := strings.TrimSpace(row[header[col]])
			if cell == "" {
				continue
			}

			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("row %d, column %q: %v", i+1, col, err)
			}

			grouped[level][col] = append(grouped[level][col], v)
		}
	}

	output := append([]string{"Column", "Level"}, summarize.SummaryHeader...)
	fmt.Println(strings.Join(output, "\t"))

	for _, col := range valueCols {
		byLevel := make(map[string][]float64)
		for level, cols := range grouped {
			byLevel[level] = cols[col]
		}

		for _, g := range summarize.DescribeGroups(byLevel) {
			fmt.Println(strings.Join(append([]string{col, g.Level}, g.Row()...), "\t"))
		}
	}

	return nil
}
