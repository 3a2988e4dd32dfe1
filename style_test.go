package svg2path

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestResolve(t *testing.T) {
	var tests = []struct {
		el       *Element
		name     string
		expected string
	}{
		{NewElement("path", "fill", "red"), "fill", "red"},
		{NewElement("path", "style", "fill:#ff0000;stroke:blue"), "fill", "#ff0000"},
		{NewElement("path", "style", "fill:#ff0000;stroke:blue"), "stroke", "blue"},
		{NewElement("path", "fill", "red", "style", "fill:blue"), "fill", "red"},
		{NewElement("path", "fill", "", "style", "fill:blue"), "fill", "blue"},
		{NewElement("path", "style", " fill : blue ; "), "fill", "blue"},
		{NewElement("path", "style", "fill:url(http://x/y#z)"), "fill", "url(http://x/y#z)"},
		{NewElement("path", "style", "stroke:blue"), "fill", ""},
		{NewElement("path"), "fill", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name+" "+tt.expected, func(t *testing.T) {
			test.String(t, Resolve(tt.el, tt.name), tt.expected)
		})
	}
}

func TestFillStroke(t *testing.T) {
	el := NewElement("path", "stroke", "#123", "style", "fill:#ff0000;stroke-width:5")
	test.String(t, Fill(el), "#ff0000")
	test.String(t, Stroke(el), "#123")
}

func TestStrokeWidth(t *testing.T) {
	var tests = []struct {
		el       *Element
		max      float64
		expected float64
	}{
		{NewElement("path", "style", "fill:#ff0000;stroke-width:5"), 2048, 3},
		{NewElement("path", "style", "stroke-width:5px"), 512, 10},
		{NewElement("path", "style", "stroke-width:5.9"), 1024, 5},
		{NewElement("path", "style", "stroke-width:.5"), 1024, 0},
		{NewElement("path", "stroke-width", "7"), 2048, 7},
		{NewElement("path", "stroke-width", "2.5px", "style", "stroke-width:9"), 2048, 2.5},
		{NewElement("path", "stroke-width", " 2px "), 2048, 2},
		{NewElement("path", "stroke-width", "inherit", "style", "stroke-width:9"), 1024, 0},
		{NewElement("path", "stroke-width", " "), 1024, 0},
		{NewElement("path"), 100, 0},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			w, err := StrokeWidth(tt.el, NewScaleContext(tt.max, tt.max))
			test.Error(t, err)
			test.Float(t, w, tt.expected)
		})
	}

	_, err := StrokeWidth(NewElement("path", "stroke-width", "thick"), NewScaleContext(10, 10))
	test.That(t, err != nil)
}

func TestTranslate(t *testing.T) {
	var tests = []struct {
		el       *Element
		expected *[2]float64
	}{
		{NewElement("path", "transform", "translate(10,20)"), &[2]float64{10, 20}},
		{NewElement("path", "style", "transform:translate(3,4)"), &[2]float64{3, 4}},
		{NewElement("path", "transform", "scale(2) translate(5,6)"), &[2]float64{5, 6}},
		{NewElement("path", "transform", "translate(1.5,2)"), nil},
		{NewElement("path", "transform", "translate(-1,2)"), nil},
		{NewElement("path", "transform", "translate(1, 2)"), nil},
		{NewElement("path", "transform", "rotate(45)"), nil},
		{NewElement("path"), nil},
	}
	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			test.T(t, Translate(tt.el), tt.expected)
		})
	}
}
