package svg2path

import "strings"

// Kind is the shape primitive an element describes.
type Kind int

const (
	OtherKind Kind = iota
	PathKind
	CircleKind
	EllipseKind
	RectKind
	PolygonKind
	GroupKind
)

func (k Kind) String() string {
	switch k {
	case PathKind:
		return "path"
	case CircleKind:
		return "circle"
	case EllipseKind:
		return "ellipse"
	case RectKind:
		return "rect"
	case PolygonKind:
		return "polygon"
	case GroupKind:
		return "group"
	}
	return "other"
}

// Element is a node of a markup tree as produced by a parser. Only the tag
// name, attribute lookup and the ordered children are used.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// NewElement returns an element with the given tag and attributes given as
// key/value pairs.
func NewElement(tag string, attrs ...string) *Element {
	el := &Element{Tag: tag, Attrs: map[string]string{}}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.Attrs[attrs[i]] = attrs[i+1]
	}
	return el
}

// Append adds children and returns the element.
func (el *Element) Append(children ...*Element) *Element {
	el.Children = append(el.Children, children...)
	return el
}

// Attr returns the attribute value and whether it was present.
func (el *Element) Attr(name string) (string, bool) {
	if el == nil || el.Attrs == nil {
		return "", false
	}
	v, ok := el.Attrs[name]
	return v, ok
}

// Kind classifies el by its tag name. Tags are matched case-insensitively, so
// "Rect" and "RECT" are both RectKind.
func (el *Element) Kind() Kind {
	switch strings.ToLower(el.Tag) {
	case "path":
		return PathKind
	case "circle":
		return CircleKind
	case "ellipse":
		return EllipseKind
	case "rect":
		return RectKind
	case "polygon":
		return PolygonKind
	case "g", "svg":
		return GroupKind
	}
	return OtherKind
}
