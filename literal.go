package svg2path

import (
	"fmt"
	"strings"
)

// Escape selects which bytes StorageString escapes.
type Escape int

const (
	// EscapePrintable keeps printable ASCII other than the double quote and
	// backslash.
	EscapePrintable Escape = iota
	// EscapeAll escapes every byte.
	EscapeAll
)

func (e Escape) String() string {
	if e == EscapeAll {
		return "all"
	}
	return "printable"
}

func ParseEscape(s string) (Escape, error) {
	switch strings.ToLower(s) {
	case "", "printable":
		return EscapePrintable, nil
	case "all":
		return EscapeAll, nil
	}
	return 0, fmt.Errorf("unknown escape mode %q", s)
}

const hexDigits = "0123456789abcdef"

// Quote renders b so that it can be placed between double quotes in source
// code. Escapes are always \x followed by exactly two hex digits.
func (e Escape) Quote(b []byte) string {
	sb := strings.Builder{}
	sb.Grow(len(b))
	for _, c := range b {
		if e == EscapePrintable && 0x20 <= c && c < 0x7F && c != '"' && c != '\\' {
			sb.WriteByte(c)
		} else {
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0F])
		}
	}
	return sb.String()
}

// StorageString renders b as the contents of a double-quoted string literal.
func StorageString(b []byte) string {
	return EscapePrintable.Quote(b)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseStorageString is the inverse of StorageString. Besides \xNN it accepts
// the \\ and \" escapes.
func ParseStorageString(s string) ([]byte, error) {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			return nil, fmt.Errorf("unescaped quote at %d", i)
		} else if c != '\\' {
			b = append(b, c)
			continue
		}

		if len(s) <= i+1 {
			return nil, fmt.Errorf("%w: escape at %d", ErrTruncated, i)
		}
		switch s[i+1] {
		case '\\', '"':
			b = append(b, s[i+1])
			i++
		case 'x':
			if len(s) < i+4 {
				return nil, fmt.Errorf("%w: escape at %d", ErrTruncated, i)
			}
			hi, ok1 := unhex(s[i+2])
			lo, ok2 := unhex(s[i+3])
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("bad hex escape %q at %d", s[i:i+4], i)
			}
			b = append(b, hi<<4|lo)
			i += 3
		default:
			return nil, fmt.Errorf("unknown escape %q at %d", s[i:i+2], i)
		}
	}
	return b, nil
}
