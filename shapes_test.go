package svg2path

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestShapePath(t *testing.T) {
	var tests = []struct {
		el       *Element
		expected string
	}{
		{NewElement("circle", "cx", "50", "cy", "50", "r", "40"), "M 50 50 m -40, 0 a 40,40 0 1,1 80,0 a 40,40 0 1,1 -80,0"},
		{NewElement("circle", "cx", "1.5", "cy", "0", "r", "0.25"), "M 1.5 0 m -0.25, 0 a 0.25,0.25 0 1,1 0.5,0 a 0.25,0.25 0 1,1 -0.5,0"},
		{NewElement("circle", "cx", "0", "cy", "0", "r", "0"), "M 0 0 m 0, 0 a 0,0 0 1,1 0,0 a 0,0 0 1,1 0,0"},
		{NewElement("ellipse", "cx", "50", "cy", "40", "rx", "30", "ry", "20"), "M 50 40 m -30, 0 a 30,20 0 1,0 60,0 a 30,20 0 1,0 -60,0"},
		{NewElement("rect", "x", "10", "y", "20", "width", "30", "height", "40"), "M 10 20 H 40 V 60 H 10 Z"},
		{NewElement("rect", "width", "200", "height", "100"), "M 0 0 H 200 V 100 H 0 Z"},
		{NewElement("polygon", "points", "0,0 10,0 10,10"), "M0,0L10,0 10,10z"},
		{NewElement("polygon", "points", "0 0\n10 0\t10 10 0,10"), "M0,0L10,0 10,10 0,10z"},
		{NewElement("polygon", "points", "1.5,-2 3e1,4 5,6"), "M1.5,-2L3e1,4 5,6z"},
		{NewElement("path", "d", "M1 2L3 4"), "M1 2L3 4"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			d, ok, err := ShapePath(tt.el)
			test.Error(t, err)
			test.That(t, ok)
			test.String(t, d, tt.expected)

			_, err = ParsePathData(d)
			test.Error(t, err)
		})
	}
}

func TestShapePathUnsupported(t *testing.T) {
	for _, tag := range []string{"g", "svg", "text", "line"} {
		d, ok, err := ShapePath(NewElement(tag))
		test.Error(t, err)
		test.That(t, !ok, tag)
		test.String(t, d, "")
	}
}

func TestShapePathErrors(t *testing.T) {
	var tests = []struct {
		el   *Element
		attr string
		err  error
	}{
		{NewElement("circle", "cx", "50", "cy", "50"), "r", ErrMissingAttribute},
		{NewElement("circle", "cx", "a", "cy", "50", "r", "1"), "cx", ErrInvalidNumber},
		{NewElement("ellipse", "cx", "50", "cy", "50", "rx", "5", "ry", "NaN"), "ry", ErrInvalidNumber},
		{NewElement("rect", "x", "1px", "width", "5", "height", "5"), "x", ErrInvalidNumber},
		{NewElement("rect", "width", "5"), "height", ErrMissingAttribute},
		{NewElement("polygon", "points", "0,0 10"), "points", ErrInvalidPoints},
		{NewElement("polygon", "points", "0,0"), "points", ErrInvalidPoints},
		{NewElement("polygon"), "points", ErrInvalidPoints},
		{NewElement("polygon", "points", "0,0 a,1"), "points", ErrInvalidNumber},
		{NewElement("path"), "d", ErrMissingAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.el.Tag+" "+tt.attr, func(t *testing.T) {
			_, ok, err := ShapePath(tt.el)
			test.That(t, ok)
			test.That(t, errors.Is(err, tt.err), err)

			var convErr *ConversionError
			test.That(t, errors.As(err, &convErr))
			test.String(t, convErr.Tag, tt.el.Tag)
			test.String(t, convErr.Attr, tt.attr)
		})
	}
}
