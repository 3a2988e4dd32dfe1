package svg2path

import (
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Commands lists the path commands in opcode order.
const Commands = "MLHVCSQTAZ"

// Segment is a single path command with its arguments. Relative commands use
// a lowercase Cmd. Implicit segments repeat the previous command without
// repeating its letter, as in "L1 2 3 4".
type Segment struct {
	Cmd      byte
	Implicit bool
	Args     []float64
}

// PathData is a tokenized path data string.
type PathData []Segment

func upper(cmd byte) byte {
	if 'a' <= cmd && cmd <= 'z' {
		return cmd - 'a' + 'A'
	}
	return cmd
}

func isRelative(cmd byte) bool {
	return 'a' <= cmd && cmd <= 'z'
}

// cmdArgs returns the number of arguments of a command, or -1 for an unknown
// command.
func cmdArgs(cmd byte) int {
	switch upper(cmd) {
	case 'M', 'L', 'T':
		return 2
	case 'H', 'V':
		return 1
	case 'C':
		return 6
	case 'S', 'Q':
		return 4
	case 'A':
		return 7
	case 'Z':
		return 0
	}
	return -1
}

// isCoord returns whether argument i of cmd is a length that scales with the
// coordinate system. Arc rotation and flags do not.
func isCoord(cmd byte, i int) bool {
	return upper(cmd) != 'A' || i < 2 || 5 <= i
}

func isArcFlag(cmd byte, i int) bool {
	return upper(cmd) == 'A' && (i == 3 || i == 4)
}

// Scale multiplies all coordinates and radii by f.
func (p PathData) Scale(f float64) PathData {
	q := make(PathData, len(p))
	for i, seg := range p {
		q[i] = Segment{Cmd: seg.Cmd, Implicit: seg.Implicit, Args: make([]float64, len(seg.Args))}
		for j, v := range seg.Args {
			if isCoord(seg.Cmd, j) {
				v *= f
			}
			q[i].Args[j] = v
		}
	}
	return q
}

// Round rounds all arguments to prec decimals.
func (p PathData) Round(prec int) PathData {
	pow := math.Pow(10.0, float64(prec))
	for _, seg := range p {
		for j, v := range seg.Args {
			if !isArcFlag(seg.Cmd, j) {
				seg.Args[j] = math.Round(v*pow) / pow
			}
		}
	}
	return p
}

func (p PathData) Equals(q PathData) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmd != q[i].Cmd || p[i].Implicit != q[i].Implicit || len(p[i].Args) != len(q[i].Args) {
			return false
		}
		for j := range p[i].Args {
			if p[i].Args[j] != q[i].Args[j] {
				return false
			}
		}
	}
	return true
}

// String returns the canonical path data: every token separated by a single
// space and numbers written with as few characters as possible.
func (p PathData) String() string {
	sb := strings.Builder{}
	for _, seg := range p {
		if !seg.Implicit {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(seg.Cmd)
		}
		for j, v := range seg.Args {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}
			if isArcFlag(seg.Cmd, j) {
				if v != 0.0 {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
				continue
			}
			sb.Write(dec(v))
		}
	}
	return sb.String()
}

// dec formats a number without exponent and strips superfluous characters.
func dec(v float64) []byte {
	if v == 0.0 {
		v = 0.0 // no negative zero
	}
	b := strconv.AppendFloat(nil, v, 'f', -1, 64)
	return minify.Decimal(b, 0)
}

// num formats a number with the shortest decimal that represents it exactly.
func num(v float64) string {
	if v == 0.0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
