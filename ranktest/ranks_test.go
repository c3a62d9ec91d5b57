package ranktest

import (
	"reflect"
	"testing"
)

func TestMidRanks(t *testing.T) {
	for _, v := range []struct {
		In       []float64
		Expected []float64
	}{
		{[]float64{10, 20, 30}, []float64{1, 2, 3}},
		{[]float64{30, 10, 20}, []float64{3, 1, 2}},
		// Tied runs share the average of the ranks they span.
		{[]float64{5, 5, 10}, []float64{1.5, 1.5, 3}},
		{[]float64{7, 3, 7, 7, 1}, []float64{4, 2, 4, 4, 1}},
		{[]float64{2, 2, 2, 2}, []float64{2.5, 2.5, 2.5, 2.5}},
	} {
		if got := MidRanks(v.In); !reflect.DeepEqual(got, v.Expected) {
			t.Errorf("MidRanks(%v): got %v, expected %v", v.In, got, v.Expected)
		}
	}
}

func TestTieCounts(t *testing.T) {
	for _, v := range []struct {
		In       []float64
		Expected []int
	}{
		{nil, nil},
		{[]float64{1, 2, 3}, []int{1, 1, 1}},
		{[]float64{2, 1, 2, 2, 5, 5}, []int{1, 3, 2}},
	} {
		if got := TieCounts(v.In); !reflect.DeepEqual(got, v.Expected) {
			t.Errorf("TieCounts(%v): got %v, expected %v", v.In, got, v.Expected)
		}

		total := 0
		for _, c := range TieCounts(v.In) {
			total += c
		}
		if total != len(v.In) {
			t.Errorf("TieCounts(%v) sums to %d, expected %d", v.In, total, len(v.In))
		}
	}
}
