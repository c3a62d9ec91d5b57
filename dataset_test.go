package penisp53

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestOpenShippedDataset(t *testing.T) {
	dataset, err := OpenDataset("data/p53.csv")
	if err != nil {
		t.Fatal(err)
	}

	if expected := 156; len(dataset.Spots) != expected {
		t.Errorf("got %d spots, expected %d", len(dataset.Spots), expected)
	}

	f, err := os.Open("data/p53.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatal("empty dataset file")
	}
	if cols := strings.Split(scanner.Text(), ","); len(cols) != 6 {
		t.Errorf("got %d columns, expected 6", len(cols))
	}
}

func TestShippedDatasetCaseGrades(t *testing.T) {
	dataset, err := OpenDataset("data/p53.csv")
	if err != nil {
		t.Fatal(err)
	}

	for _, c := range dataset.Cases() {
		allMissing := true
		for _, s := range c.Spots {
			if s.Grade.Valid {
				allMissing = false
				break
			}
		}

		if allMissing {
			if c.MaxGrade.Valid {
				t.Errorf("case %s: max grade %d derived from all-missing grades", c.Identifier, c.MaxGrade.Int64)
			}
			continue
		}

		if !c.MaxGrade.Valid || c.MaxGrade.Int64 < 1 || c.MaxGrade.Int64 > 3 {
			t.Errorf("case %s: max grade %+v outside {1,2,3}", c.Identifier, c.MaxGrade)
		}
	}

	// P-07's tissue was not gradable on any spot.
	for _, c := range dataset.Cases() {
		if c.Identifier == "P-07" && c.MaxGrade.Valid {
			t.Errorf("P-07: expected undefined max grade, got %d", c.MaxGrade.Int64)
		}
	}
}

func TestOpenDatasetGzipped(t *testing.T) {
	raw, err := os.ReadFile("data/p53.csv")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "p53.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	dataset, err := OpenDataset(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Spots) != 156 {
		t.Errorf("got %d spots from the gzipped dataset, expected 156", len(dataset.Spots))
	}
}

func TestReadDatasetTabDelimited(t *testing.T) {
	in := "case\tspot\tsubtype\tgrade\tvisual\tdigital\n" +
		"C1\t1\tusual\t2\t40\t38.5\n" +
		"C1\t2\tusual\t\t\t12.0\n"

	dataset, err := ReadDataset(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Spots) != 2 {
		t.Fatalf("got %d spots, expected 2", len(dataset.Spots))
	}

	if s := dataset.Spots[0]; s.Case != "C1" || !s.Grade.Valid || s.Grade.Int64 != 2 || s.Digital.Float64 != 38.5 {
		t.Errorf("first spot: %+v", s)
	}

	if s := dataset.Spots[1]; s.Grade.Valid || s.Visual.Valid || !s.Digital.Valid {
		t.Errorf("second spot: %+v", s)
	}
}

func TestReadDatasetConcurrentDelimiters(t *testing.T) {
	comma := "case,spot,subtype,grade,visual,digital\n" +
		"C1,1,usual,2,40,38.5\n"
	tab := "case\tspot\tsubtype\tgrade\tvisual\tdigital\n" +
		"C2\t1\twarty\t3\t70\t66.1\n" +
		"C2\t2\twarty\t3\t75\t71.9\n"

	// Loads with different delimiters must not see each other's reader
	// settings.
	var wg sync.WaitGroup
	errs := make(chan error, 40)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			dataset, err := ReadDataset(strings.NewReader(comma))
			if err != nil {
				errs <- err
				return
			}
			if len(dataset.Spots) != 1 || dataset.Spots[0].Case != "C1" {
				errs <- fmt.Errorf("comma-delimited load: %+v", dataset.Spots)
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()

			dataset, err := ReadDataset(strings.NewReader(tab))
			if err != nil {
				errs <- err
				return
			}
			if len(dataset.Spots) != 2 || dataset.Spots[0].Case != "C2" {
				errs <- fmt.Errorf("tab-delimited load: %+v", dataset.Spots)
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestReadDatasetValidation(t *testing.T) {
	for _, v := range []struct {
		Name string
		Row  string
	}{
		{"unknown subtype", "C1,1,sarcomatoid,2,40,38.5"},
		{"grade out of range", "C1,1,usual,4,40,38.5"},
		{"visual above 100", "C1,1,usual,2,105,38.5"},
		{"digital below 0", "C1,1,usual,2,40,-1"},
		{"missing case identifier", ",1,usual,2,40,38.5"},
	} {
		in := "case,spot,subtype,grade,visual,digital\n" + v.Row + "\n"
		if _, err := ReadDataset(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected a load error", v.Name)
		}
	}
}

func TestReadDatasetHeaderOnly(t *testing.T) {
	dataset, err := ReadDataset(strings.NewReader("case,spot,subtype,grade,visual,digital\n"))
	if err != nil {
		t.Fatal(err)
	}

	if len(dataset.Spots) != 0 {
		t.Errorf("got %d spots, expected 0", len(dataset.Spots))
	}
}

func TestScoreExtraction(t *testing.T) {
	in := "case,spot,subtype,grade,visual,digital\n" +
		"C1,1,usual,2,40,38.5\n" +
		"C1,2,usual,2,,12.0\n" +
		"C2,1,warty,3,70,\n"

	dataset, err := ReadDataset(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if got := dataset.VisualScores(); len(got) != 2 {
		t.Errorf("visual scores: %v", got)
	}
	if got := dataset.DigitalScores(); len(got) != 2 {
		t.Errorf("digital scores: %v", got)
	}

	// Only the spot scored by both methods pairs up.
	visual, digital := dataset.PairedScores()
	if len(visual) != 1 || len(digital) != 1 || visual[0] != 40 || digital[0] != 38.5 {
		t.Errorf("paired scores: %v / %v", visual, digital)
	}

	bySubtype := dataset.ScoresBySubtype(Visual)
	if len(bySubtype[Usual]) != 1 || len(bySubtype[Warty]) != 1 {
		t.Errorf("scores by subtype: %v", bySubtype)
	}

	byGrade := dataset.ScoresByGrade(Digital)
	if len(byGrade[2]) != 2 || len(byGrade[3]) != 0 {
		t.Errorf("scores by grade: %v", byGrade)
	}
}

func TestCaseMeanScores(t *testing.T) {
	in := "case,spot,subtype,grade,visual,digital\n" +
		"C1,1,usual,2,40,30\n" +
		"C1,2,usual,2,60,50\n" +
		"C2,1,warty,3,70,\n"

	dataset, err := ReadDataset(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	cases := dataset.Cases()
	if len(cases) != 2 {
		t.Fatalf("got %d cases, expected 2", len(cases))
	}

	if m := cases[0].MeanScore(Visual); !m.Valid || m.Float64 != 50 {
		t.Errorf("C1 visual mean: %+v", m)
	}
	if m := cases[1].MeanScore(Digital); m.Valid {
		t.Errorf("C2 digital mean should be undefined: %+v", m)
	}

	// C2 has no digital scores, so only C1 contributes a paired case mean.
	visual, digital := dataset.CaseMeanScores()
	if len(visual) != 1 || visual[0] != 50 || digital[0] != 40 {
		t.Errorf("case mean scores: %v / %v", visual, digital)
	}
}
