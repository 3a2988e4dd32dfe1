package svg2path

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Format is the binary representation of the values in an encoded path.
type Format int

const (
	// VarintFormat writes zigzag varints: one byte for |v| < 64, two for
	// |v| < 8192.
	VarintFormat Format = iota
	// Fixed16Format writes every value as a big-endian int16.
	Fixed16Format
)

func (f Format) String() string {
	switch f {
	case VarintFormat:
		return "varint"
	case Fixed16Format:
		return "fixed16"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat is the inverse of Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "varint":
		return VarintFormat, nil
	case "fixed16":
		return Fixed16Format, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// Opcode layout. The low nibble is the index of the command in Commands.
const (
	opCmdMask  = 0x0F
	opRelative = 0x10
	opLarge    = 0x20
	opSweep    = 0x40
	opImplicit = 0x80
)

const maxRotation = 360

// Codec packs normalized path data into bytes. Each segment starts with an
// opcode byte holding the command, its case, the arc flags and whether the
// command letter is implicit, followed by the remaining arguments. All values
// must be integers within [-MaxCoordinate, MaxCoordinate], except the arc
// rotation which must be within [-360, 360].
type Codec struct {
	Format        Format
	MaxCoordinate int
}

// DefaultCodec encodes varints for the target coordinate space.
var DefaultCodec = Codec{Format: VarintFormat, MaxCoordinate: Size}

func (c Codec) limit(cmd byte, j int) float64 {
	if upper(cmd) == 'A' && j == 2 {
		return maxRotation
	}
	return float64(c.MaxCoordinate)
}

func (c Codec) check() error {
	if c.MaxCoordinate <= 0 {
		return fmt.Errorf("bad maximum coordinate %d", c.MaxCoordinate)
	} else if c.Format == Fixed16Format && math.MaxInt16 < c.MaxCoordinate {
		return fmt.Errorf("maximum coordinate %d does not fit %v", c.MaxCoordinate, c.Format)
	} else if c.Format != VarintFormat && c.Format != Fixed16Format {
		return fmt.Errorf("unknown format %v", c.Format)
	}
	return nil
}

// Encode packs p. It fails on the first value that cannot be represented.
func (c Codec) Encode(p PathData) ([]byte, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	b := make([]byte, 0, 3*len(p))
	for i, seg := range p {
		idx := strings.IndexByte(Commands, upper(seg.Cmd))
		if idx == -1 || len(seg.Args) != cmdArgs(seg.Cmd) {
			return nil, fmt.Errorf("%w: segment %d: bad command %q", ErrPathSyntax, i, seg.Cmd)
		} else if seg.Implicit && (i == 0 || p[i-1].Cmd != seg.Cmd || upper(seg.Cmd) == 'Z') {
			return nil, fmt.Errorf("%w: segment %d: implicit %c", ErrPathSyntax, i, seg.Cmd)
		}

		op := byte(idx)
		if isRelative(seg.Cmd) {
			op |= opRelative
		}
		if seg.Implicit {
			op |= opImplicit
		}
		if upper(seg.Cmd) == 'A' {
			for j, bit := range [2]byte{opLarge, opSweep} {
				switch seg.Args[3+j] {
				case 0.0:
				case 1.0:
					op |= bit
				default:
					return nil, &RangeError{Segment: i, Cmd: seg.Cmd, Value: seg.Args[3+j], Err: ErrCoordinateOutOfRange}
				}
			}
		}
		b = append(b, op)

		for j, v := range seg.Args {
			if isArcFlag(seg.Cmd, j) {
				continue
			} else if v != math.Trunc(v) {
				return nil, &RangeError{Segment: i, Cmd: seg.Cmd, Value: v, Err: ErrFractionalCoordinate}
			} else if c.limit(seg.Cmd, j) < math.Abs(v) {
				return nil, &RangeError{Segment: i, Cmd: seg.Cmd, Value: v, Err: ErrCoordinateOutOfRange}
			}

			if c.Format == Fixed16Format {
				b = binary.BigEndian.AppendUint16(b, uint16(int16(v)))
			} else {
				b = binary.AppendVarint(b, int64(v))
			}
		}
	}
	return b, nil
}

// Decode unpacks bytes produced by Encode.
func (c Codec) Decode(b []byte) (PathData, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	p := PathData{}
	for pos := 0; pos < len(b); {
		op := b[pos]
		idx := int(op & opCmdMask)
		if len(Commands) <= idx {
			return nil, fmt.Errorf("%w: %#02x at %d", ErrBadOpcode, op, pos)
		}
		cmd := Commands[idx]
		if op&opRelative != 0 {
			cmd += 'a' - 'A'
		}
		if cmd != 'A' && cmd != 'a' && op&(opLarge|opSweep) != 0 {
			return nil, fmt.Errorf("%w: %#02x at %d: arc flags on %c", ErrBadOpcode, op, pos, cmd)
		}
		implicit := op&opImplicit != 0
		if implicit && (len(p) == 0 || p[len(p)-1].Cmd != cmd || upper(cmd) == 'Z') {
			return nil, fmt.Errorf("%w: %#02x at %d: implicit %c", ErrBadOpcode, op, pos, cmd)
		}
		pos++

		seg := Segment{Cmd: cmd, Implicit: implicit, Args: make([]float64, cmdArgs(cmd))}
		for j := range seg.Args {
			if isArcFlag(cmd, j) {
				bit := byte(opLarge)
				if j == 4 {
					bit = opSweep
				}
				if op&bit != 0 {
					seg.Args[j] = 1.0
				}
				continue
			}

			var v int64
			if c.Format == Fixed16Format {
				if len(b) < pos+2 {
					return nil, fmt.Errorf("%w: segment %d", ErrTruncated, len(p))
				}
				v = int64(int16(binary.BigEndian.Uint16(b[pos:])))
				pos += 2
			} else {
				var n int
				if v, n = binary.Varint(b[pos:]); n <= 0 {
					return nil, fmt.Errorf("%w: segment %d", ErrTruncated, len(p))
				}
				pos += n
			}
			if c.limit(cmd, j) < math.Abs(float64(v)) {
				return nil, &RangeError{Segment: len(p), Cmd: cmd, Value: float64(v), Err: ErrCoordinateOutOfRange}
			}
			seg.Args[j] = float64(v)
		}
		p = append(p, seg)
	}
	return p, nil
}

// Compress parses normalized path data and encodes it as varints bounded by
// maxCoordinate.
func Compress(d string, maxCoordinate int) ([]byte, error) {
	p, err := ParsePathData(d)
	if err != nil {
		return nil, err
	}
	return Codec{Format: VarintFormat, MaxCoordinate: maxCoordinate}.Encode(p)
}

// Decompress is the inverse of Compress and returns canonical path data.
func Decompress(b []byte, maxCoordinate int) (string, error) {
	p, err := Codec{Format: VarintFormat, MaxCoordinate: maxCoordinate}.Decode(b)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
