package svg2path

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAttribute     = errors.New("missing attribute")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrInvalidPoints        = errors.New("invalid point list")
	ErrInvalidViewBox       = errors.New("invalid viewBox")
	ErrPathSyntax           = errors.New("bad path data")
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrFractionalCoordinate = errors.New("fractional coordinate")
	ErrBadOpcode            = errors.New("bad opcode")
	ErrTruncated            = errors.New("truncated data")
)

// ConversionError reports malformed input on a single element attribute.
type ConversionError struct {
	Tag   string
	Attr  string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("<%s> %s: %v", e.Tag, e.Attr, e.Err)
	}
	return fmt.Sprintf("<%s> %s=%q: %v", e.Tag, e.Attr, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// RangeError reports a value that the encoder cannot represent. Segment is the
// index of the offending segment in the path.
type RangeError struct {
	Segment int
	Cmd     byte
	Value   float64
	Err     error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("segment %d (%c): %v: %v", e.Segment, e.Cmd, e.Err, e.Value)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
