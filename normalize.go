package svg2path

import (
	"fmt"
	"math"
)

// Normalizer rescales path data into the target coordinate space.
type Normalizer struct {
	// Precision is the number of decimals kept after scaling. Encoded paths
	// require integers, i.e. a precision of zero.
	Precision int
}

// Normalize parses d, scales it by Size/max and formats it canonically.
func (n Normalizer) Normalize(d string, max float64) (string, error) {
	p, err := n.NormalizePath(d, max)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

func (n Normalizer) NormalizePath(d string, max float64) (PathData, error) {
	if !(0.0 < max) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: bad scale %v", ErrInvalidViewBox, max)
	}
	p, err := ParsePathData(d)
	if err != nil {
		return nil, err
	}
	p = p.Scale(Size / max).Round(n.Precision)
	for i, seg := range p {
		for _, v := range seg.Args {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: segment %d overflows when scaled", ErrPathSyntax, i)
			}
		}
	}
	return p, nil
}

// Normalize scales d by Size/max and rounds every value to an integer.
func Normalize(d string, max float64) (string, error) {
	return Normalizer{}.Normalize(d, max)
}
