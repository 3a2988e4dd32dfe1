package svg2path

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePathData(t *testing.T) {
	var tests = []struct {
		path     string
		expected PathData
	}{
		{"", PathData{}},
		{"M10 20L30 40", PathData{{'M', false, []float64{10, 20}}, {'L', false, []float64{30, 40}}}},
		{"M0,0L10,0 10,10z", PathData{
			{'M', false, []float64{0, 0}},
			{'L', false, []float64{10, 0}},
			{'L', true, []float64{10, 10}},
			{'z', false, []float64{}},
		}},
		{"m1 2 3 4", PathData{{'m', false, []float64{1, 2}}, {'m', true, []float64{3, 4}}}},
		{"M.5-.5", PathData{{'M', false, []float64{0.5, -0.5}}}},
		{"M1.5.5", PathData{{'M', false, []float64{1.5, 0.5}}}},
		{"M1e2 0", PathData{{'M', false, []float64{100, 0}}}},
		{"H5V-6h7v8", PathData{{'H', false, []float64{5}}, {'V', false, []float64{-6}}, {'h', false, []float64{7}}, {'v', false, []float64{8}}}},
		{"a10 10 0 1110 10", PathData{{'a', false, []float64{10, 10, 0, 1, 1, 10, 10}}}},
		{"A 40,40 0 1,0 80,0", PathData{{'A', false, []float64{40, 40, 0, 1, 0, 80, 0}}}},
		{"a1 2 30 0 0 4 5 6 7 8 1 1 9 0", PathData{
			{'a', false, []float64{1, 2, 30, 0, 0, 4, 5}},
			{'a', true, []float64{6, 7, 8, 1, 1, 9, 0}},
		}},
		{"C1 2 3 4 5 6S1 2 3 4Q1 2 3 4T5 6", PathData{
			{'C', false, []float64{1, 2, 3, 4, 5, 6}},
			{'S', false, []float64{1, 2, 3, 4}},
			{'Q', false, []float64{1, 2, 3, 4}},
			{'T', false, []float64{5, 6}},
		}},
		{" \n M 1 2 Z M 3 4 z ", PathData{
			{'M', false, []float64{1, 2}},
			{'Z', false, []float64{}},
			{'M', false, []float64{3, 4}},
			{'z', false, []float64{}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := ParsePathData(tt.path)
			test.Error(t, err)
			test.T(t, p, tt.expected)
		})
	}
}

func TestParsePathDataErrors(t *testing.T) {
	var tests = []string{
		"10 10",
		"M10",
		"Mx",
		"B1 2",
		"M1 2Z3",
		"A1 1 0 2 0 1 1",
		"L1 2 3",
		"M1e400 0",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePathData(tt)
			test.That(t, errors.Is(err, ErrPathSyntax), err)
		})
	}
}
