package penisp53

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// canonicalHeader names the dataset columns in schema order. Workbook sheets
// are matched against it case-insensitively.
var canonicalHeader = []string{"case", "spot", "subtype", "grade", "visual", "digital"}

// ReadWorkbook loads the spot table from the pathologists' scoring workbook.
// Both the modern .xlsx format and the legacy .xls format that the earliest
// scoring rounds were distributed in are supported. The sheet holding the
// data is found by looking for a header row that carries all six canonical
// columns; rows above the header (titles, annotations) are ignored.
func ReadWorkbook(path string) (Dataset, error) {
	path = ExpandHome(path)

	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = xlsxRows(path)
	case ".xls":
		rows, err = xlsRows(path)
	default:
		return Dataset{}, fmt.Errorf("unrecognized workbook extension on %s (want .xls or .xlsx)", path)
	}

	if err != nil {
		return Dataset{}, err
	}

	return datasetFromRows(rows)
}

func xlsxRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}

		if start := headerRow(rows); start >= 0 {
			return rows[start:], nil
		}
	}

	return nil, fmt.Errorf("no sheet in %s has a header row with columns %v", path, canonicalHeader)
}

func xlsRows(path string) ([][]string, error) {
	spreadsheet, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	for sheetID := 0; sheetID < spreadsheet.NumSheets(); sheetID++ {
		sheet := spreadsheet.GetSheet(sheetID)
		if sheet == nil {
			continue
		}

		rows := make([][]string, 0, int(sheet.MaxRow)+1)
		for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
			row := sheet.Row(rowID)
			if row == nil {
				continue
			}

			cols := make([]string, 0, row.LastCol()+1)
			for colID := 0; colID <= row.LastCol(); colID++ {
				cols = append(cols, row.Col(colID))
			}
			rows = append(rows, cols)
		}

		if start := headerRow(rows); start >= 0 {
			return rows[start:], nil
		}
	}

	return nil, fmt.Errorf("no sheet in %s has a header row with columns %v", path, canonicalHeader)
}

// headerRow returns the index of the first row carrying every canonical
// column name, or -1 when no row qualifies.
func headerRow(rows [][]string) int {
	for i, row := range rows {
		seen := make(map[string]bool)
		for _, cell := range row {
			seen[strings.ToLower(strings.TrimSpace(cell))] = true
		}

		complete := true
		for _, col := range canonicalHeader {
			if !seen[col] {
				complete = false
				break
			}
		}

		if complete {
			return i
		}
	}

	return -1
}

// datasetFromRows funnels workbook rows through the same CSV loader used for
// delimited files, so that a workbook and its CSV export parse identically.
// Rows are squared off to the header width first: both workbook readers trim
// or pad trailing cells unevenly.
func datasetFromRows(rows [][]string) (Dataset, error) {
	if len(rows) == 0 {
		return Dataset{}, fmt.Errorf("workbook sheet has no rows")
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return Dataset{}, pfx.Err(err)
	}

	for _, row := range rows[1:] {
		squared := make([]string, len(header))
		blank := true
		for i := range squared {
			if i < len(row) {
				squared[i] = strings.TrimSpace(row[i])
				if squared[i] != "" {
					blank = false
				}
			}
		}

		// Workbooks routinely carry trailing blank rows.
		if blank {
			continue
		}

		if err := w.Write(squared); err != nil {
			return Dataset{}, pfx.Err(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return Dataset{}, pfx.Err(err)
	}

	return ReadDataset(&buf)
}
