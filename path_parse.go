package svg2path

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// parseFlag parses an arc flag, which is a single 0 or 1 digit that may be
// directly followed by the next number.
func parseFlag(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return float64(path[i] - '0'), i + 1
	}
	return 0.0, 0
}

func isCommand(c byte) bool {
	return cmdArgs(c) != -1 && ('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z')
}

// ParsePathData tokenizes SVG path data. Arc flags are read as single digits,
// so "a10 10 0 1110 10" is an arc to (10,10) with both flags set.
func ParsePathData(sPath string) (PathData, error) {
	path := []byte(sPath)
	p := PathData{}

	var prevCmd byte
	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		implicit := true
		if c := path[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			if !isCommand(c) {
				return nil, fmt.Errorf("%w: unknown command %q at %d", ErrPathSyntax, c, i)
			}
			cmd = c
			implicit = false
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("%w: expected command at %d", ErrPathSyntax, i)
		} else if upper(prevCmd) == 'Z' {
			return nil, fmt.Errorf("%w: unexpected number after %c at %d", ErrPathSyntax, prevCmd, i)
		}

		n := cmdArgs(cmd)
		seg := Segment{Cmd: cmd, Implicit: implicit, Args: make([]float64, n)}
		for j := 0; j < n; j++ {
			var v float64
			var m int
			if isArcFlag(cmd, j) {
				v, m = parseFlag(path[i:])
			} else {
				v, m = parseNum(path[i:])
			}
			if m == 0 {
				return nil, fmt.Errorf("%w: expected argument %d of %c at %d", ErrPathSyntax, j+1, cmd, i)
			} else if math.IsInf(v, 0) || math.IsNaN(v) {
				return nil, fmt.Errorf("%w: number out of range at %d", ErrPathSyntax, i)
			}
			seg.Args[j] = v
			i += m
		}
		p = append(p, seg)
		prevCmd = cmd
	}
	return p, nil
}

// MustParsePathData is like ParsePathData but panics on error.
func MustParsePathData(s string) PathData {
	p, err := ParsePathData(s)
	if err != nil {
		panic(err)
	}
	return p
}
