package svg2path

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numAttr parses a required numeric attribute.
func numAttr(el *Element, name string) (float64, error) {
	v, ok := el.Attr(name)
	if !ok || strings.TrimSpace(v) == "" {
		return 0.0, &ConversionError{Tag: el.Tag, Attr: name, Err: ErrMissingAttribute}
	}
	return parseAttrNum(el, name, v)
}

// optNumAttr parses an optional numeric attribute, returning 0 when absent.
func optNumAttr(el *Element, name string) (float64, error) {
	v, ok := el.Attr(name)
	if !ok || strings.TrimSpace(v) == "" {
		return 0.0, nil
	}
	return parseAttrNum(el, name, v)
}

func parseAttrNum(el *Element, name, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0, &ConversionError{Tag: el.Tag, Attr: name, Value: v, Err: ErrInvalidNumber}
	}
	return f, nil
}

// CirclePath returns a circle as two semicircle arcs starting at (cx-r,cy).
func CirclePath(el *Element) (string, error) {
	cx, err := numAttr(el, "cx")
	if err != nil {
		return "", err
	}
	cy, err := numAttr(el, "cy")
	if err != nil {
		return "", err
	}
	r, err := numAttr(el, "r")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("M %s %s m %s, 0 a %s,%s 0 1,1 %s,0 a %s,%s 0 1,1 %s,0",
		num(cx), num(cy), num(-r), num(r), num(r), num(r*2), num(r), num(r), num(-(r*2))), nil
}

// EllipsePath returns an ellipse as two half-ellipse arcs starting at (cx-rx,cy).
func EllipsePath(el *Element) (string, error) {
	cx, err := numAttr(el, "cx")
	if err != nil {
		return "", err
	}
	cy, err := numAttr(el, "cy")
	if err != nil {
		return "", err
	}
	rx, err := numAttr(el, "rx")
	if err != nil {
		return "", err
	}
	ry, err := numAttr(el, "ry")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("M %s %s m %s, 0 a %s,%s 0 1,0 %s,0 a %s,%s 0 1,0 %s,0",
		num(cx), num(cy), num(-rx), num(rx), num(ry), num(rx*2), num(rx), num(ry), num(-(rx*2))), nil
}

// RectPath returns an axis-aligned closed rectangle. The x and y attributes
// default to zero.
func RectPath(el *Element) (string, error) {
	x, err := optNumAttr(el, "x")
	if err != nil {
		return "", err
	}
	y, err := optNumAttr(el, "y")
	if err != nil {
		return "", err
	}
	w, err := numAttr(el, "width")
	if err != nil {
		return "", err
	}
	h, err := numAttr(el, "height")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("M %s %s H %s V %s H %s Z", num(x), num(y), num(w+x), num(h+y), num(x)), nil
}

func splitPoints(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// PolygonPath returns a polygon as a move to the first point followed by a
// line through the remaining points, each written as x,y. Input number
// literals are kept as written.
func PolygonPath(el *Element) (string, error) {
	v, _ := el.Attr("points")
	points := splitPoints(v)
	if len(points) < 4 || len(points)%2 != 0 {
		return "", &ConversionError{Tag: el.Tag, Attr: "points", Value: v, Err: ErrInvalidPoints}
	}
	for _, point := range points {
		if _, err := parseAttrNum(el, "points", point); err != nil {
			return "", &ConversionError{Tag: el.Tag, Attr: "points", Value: v, Err: ErrInvalidNumber}
		}
	}
	rest := make([]string, 0, len(points)/2-1)
	for i := 2; i < len(points); i += 2 {
		rest = append(rest, points[i]+","+points[i+1])
	}
	return "M" + points[0] + "," + points[1] + "L" + strings.Join(rest, " ") + "z", nil
}

// ShapePath returns the path data of any convertible element. Path elements
// return their d attribute unchanged. The boolean is false for elements that
// do not describe a shape.
func ShapePath(el *Element) (string, bool, error) {
	var d string
	var err error
	switch el.Kind() {
	case PathKind:
		var ok bool
		if d, ok = el.Attr("d"); !ok {
			err = &ConversionError{Tag: el.Tag, Attr: "d", Err: ErrMissingAttribute}
		}
	case CircleKind:
		d, err = CirclePath(el)
	case EllipseKind:
		d, err = EllipsePath(el)
	case RectKind:
		d, err = RectPath(el)
	case PolygonKind:
		d, err = PolygonPath(el)
	default:
		return "", false, nil
	}
	return d, true, err
}
