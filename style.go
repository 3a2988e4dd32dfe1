package svg2path

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// parseStyle splits an inline style into its declarations. Keys and values
// are split on the first colon; later declarations override earlier ones.
func parseStyle(style string) map[string]string {
	decls := map[string]string{}
	for _, item := range strings.Split(style, ";") {
		key, val, _ := strings.Cut(item, ":")
		if key = strings.TrimSpace(key); key != "" {
			decls[key] = strings.TrimSpace(val)
		}
	}
	return decls
}

// Resolve returns the attribute name of el. When the attribute is absent or
// empty, the declaration of the same name in the style attribute is used.
func Resolve(el *Element, name string) string {
	if v, _ := el.Attr(name); v != "" {
		return v
	}
	style, _ := el.Attr("style")
	return parseStyle(style)[name]
}

func Fill(el *Element) string {
	return Resolve(el, "fill")
}

func Stroke(el *Element) string {
	return Resolve(el, "stroke")
}

// StrokeWidth returns the stroke width of el in the target coordinate space.
// The number of a stroke-width attribute is taken unscaled with its unit
// dropped, while the leading digits of a stroke-width style declaration are
// scaled and rounded. It returns 0 when neither is set or the attribute is a
// CSS-wide keyword.
func StrokeWidth(el *Element, scale ScaleContext) (float64, error) {
	if v, _ := el.Attr("stroke-width"); strings.TrimSpace(v) != "" {
		switch v = strings.TrimSpace(v); v {
		case "inherit", "initial", "unset":
			return 0.0, nil
		}
		n, _ := parse.Dimension([]byte(v))
		f, err := strconv.ParseFloat(v[:n], 64)
		if err != nil {
			return 0.0, &ConversionError{Tag: el.Tag, Attr: "stroke-width", Value: v, Err: ErrInvalidNumber}
		}
		return f, nil
	}

	style, _ := el.Attr("style")
	v := parseStyle(style)["stroke-width"]
	n := 0
	for n < len(v) && '0' <= v[n] && v[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0.0, nil
	}
	f, _ := strconv.ParseFloat(v[:n], 64)
	return math.Round(f * scale.Factor()), nil
}

var translateRe = regexp.MustCompile(`translate\((\d+),(\d+)\)`)

// Translate returns the translation of el as given by a transform of the form
// translate(x,y) with unsigned integer arguments. It returns nil otherwise.
func Translate(el *Element) *[2]float64 {
	m := translateRe.FindStringSubmatch(Resolve(el, "transform"))
	if m == nil {
		return nil
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return nil
	}
	return &[2]float64{x, y}
}
