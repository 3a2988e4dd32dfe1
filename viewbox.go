package svg2path

import (
	"math"
	"strconv"
)

// Size is the side of the square target coordinate space.
const Size = 1024

type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ParseViewBox parses the viewBox attribute of el. Width and height must be
// positive.
func ParseViewBox(el *Element) (ViewBox, error) {
	v, ok := el.Attr("viewBox")
	if !ok || v == "" {
		return ViewBox{}, &ConversionError{Tag: el.Tag, Attr: "viewBox", Err: ErrMissingAttribute}
	}

	vals := splitPoints(v)
	if len(vals) != 4 {
		return ViewBox{}, &ConversionError{Tag: el.Tag, Attr: "viewBox", Value: v, Err: ErrInvalidViewBox}
	}
	var f [4]float64
	for i, val := range vals {
		var err error
		if f[i], err = strconv.ParseFloat(val, 64); err != nil || math.IsNaN(f[i]) || math.IsInf(f[i], 0) {
			return ViewBox{}, &ConversionError{Tag: el.Tag, Attr: "viewBox", Value: v, Err: ErrInvalidNumber}
		}
	}
	if f[2] <= 0.0 || f[3] <= 0.0 {
		return ViewBox{}, &ConversionError{Tag: el.Tag, Attr: "viewBox", Value: v, Err: ErrInvalidViewBox}
	}
	return ViewBox{f[0], f[1], f[2], f[3]}, nil
}

// ScaleContext maps the source coordinate space onto the target space. The
// larger side of the source maps to Size.
type ScaleContext struct {
	Max    float64
	Width  int
	Height int
}

func NewScaleContext(width, height float64) ScaleContext {
	max := math.Max(width, height)
	return ScaleContext{
		Max:    max,
		Width:  int(math.Round(width * Size / max)),
		Height: int(math.Round(height * Size / max)),
	}
}

func (vb ViewBox) Scale() ScaleContext {
	return NewScaleContext(vb.Width, vb.Height)
}

// Factor is the multiplier from source to target coordinates.
func (s ScaleContext) Factor() float64 {
	return Size / s.Max
}
