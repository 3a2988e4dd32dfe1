package svg2path

import "errors"

// Shape is a path-bearing element together with its path data. For
// primitives the data is derived from the shape attributes; the element
// itself is left untouched.
type Shape struct {
	Element *Element
	Data    string
}

// Flatten walks the children of root depth-first and returns every
// path-bearing element in paint order: the shapes inside a node come before
// the node itself. Elements of other kinds are skipped while their children
// are still visited. Elements that fail to convert are left out and their
// errors are joined in the returned error.
func Flatten(root *Element) ([]Shape, error) {
	if root == nil {
		return nil, nil
	}
	var errs []error
	shapes := flatten(nil, root.Children, &errs)
	return shapes, errors.Join(errs...)
}

func flatten(shapes []Shape, elems []*Element, errs *[]error) []Shape {
	for _, el := range elems {
		if el == nil {
			continue
		}
		shapes = flatten(shapes, el.Children, errs)

		d, ok, err := ShapePath(el)
		if !ok {
			if el.Kind() != GroupKind {
				Logger().Debug("skip element", "tag", el.Tag)
			}
			continue
		} else if err != nil {
			Logger().Warn("skip malformed element", "tag", el.Tag, "err", err)
			*errs = append(*errs, err)
			continue
		}
		shapes = append(shapes, Shape{Element: el, Data: d})
	}
	return shapes
}
