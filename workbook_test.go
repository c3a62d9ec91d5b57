package penisp53

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestHeaderRow(t *testing.T) {
	rows := [][]string{
		{"p53 scoring, round 2"},
		{},
		{"Case", "Spot", "Subtype", "Grade", "Visual", "Digital"},
		{"C1", "1", "usual", "2", "40", "38.5"},
	}

	if got := headerRow(rows); got != 2 {
		t.Errorf("headerRow: got %d, expected 2", got)
	}

	if got := headerRow([][]string{{"case", "spot"}}); got != -1 {
		t.Errorf("headerRow on incomplete header: got %d, expected -1", got)
	}
}

func TestDatasetFromRows(t *testing.T) {
	rows := [][]string{
		{"case", "spot", "subtype", "grade", "visual", "digital"},
		{"C1", "1", "usual", "2", "40", "38.5"},
		// Ragged row: the trailing missing cell is padded.
		{"C1", "2", "usual", "", "25"},
		// Blank row, as workbooks routinely carry.
		{"", "", "", "", "", ""},
	}

	dataset, err := datasetFromRows(rows)
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Spots) != 2 {
		t.Fatalf("got %d spots, expected 2", len(dataset.Spots))
	}

	if s := dataset.Spots[1]; s.Visual.Float64 != 25 || s.Digital.Valid || s.Grade.Valid {
		t.Errorf("padded spot: %+v", s)
	}
}

func TestReadWorkbookXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoring.xlsx")

	f := excelize.NewFile()
	cells := [][]interface{}{
		{"TMA p53 scoring"},
		{"case", "spot", "subtype", "grade", "visual", "digital"},
		{"C1", 1, "usual", 2, 40, 38.5},
		{"C1", 2, "usual", nil, 25, 22.1},
		{"C2", 1, "basaloid", 3, 80, 76.4},
	}
	for i, row := range cells {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	dataset, err := ReadWorkbook(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Spots) != 3 {
		t.Fatalf("got %d spots, expected 3", len(dataset.Spots))
	}

	if s := dataset.Spots[2]; s.Case != "C2" || s.Subtype != Basaloid || s.Digital.Float64 != 76.4 {
		t.Errorf("third spot: %+v", s)
	}
}

func TestReadWorkbookUnknownExtension(t *testing.T) {
	if _, err := ReadWorkbook("scores.ods"); err == nil {
		t.Error("expected an error for an unrecognized extension")
	}
}
