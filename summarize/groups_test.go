package summarize

import (
	"math"
	"testing"
)

func TestDescribeGroups(t *testing.T) {
	groups := map[string][]float64{
		"warty":    {10, 20, 30},
		"basaloid": {55},
		"usual":    {5, 15},
	}

	out := DescribeGroups(groups)

	if len(out) != 3 {
		t.Fatalf("got %d group summaries, expected 3", len(out))
	}

	// Sorted level order, stable across runs.
	for i, level := range []string{"basaloid", "usual", "warty"} {
		if out[i].Level != level {
			t.Errorf("level %d: got %q, expected %q", i, out[i].Level, level)
		}
	}

	// The single-observation level keeps its location statistics but has an
	// undefined SD.
	if out[0].N != 1 || out[0].SD.Valid {
		t.Errorf("basaloid: %+v", out[0].Summary)
	}

	if math.Abs(out[2].Mean.Float64-20) > 1e-9 {
		t.Errorf("warty mean: got %f, expected 20", out[2].Mean.Float64)
	}
}

func TestDescribeLevels(t *testing.T) {
	groups := map[string][]float64{"g2": {1, 2}}

	out := DescribeLevels([]string{"g1", "g2"}, groups)

	if len(out) != 2 {
		t.Fatalf("got %d summaries, expected 2", len(out))
	}

	// The absent level keeps its row, as an empty summary.
	if out[0].Level != "g1" || out[0].N != 0 || out[0].Mean.Valid {
		t.Errorf("absent level: %+v", out[0])
	}

	if out[1].N != 2 {
		t.Errorf("g2 N: got %d, expected 2", out[1].N)
	}
}
