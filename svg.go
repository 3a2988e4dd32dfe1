package svg2path

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// ParseSVG reads SVG markup and returns its root <svg> element. Text,
// comments, processing instructions and doctype declarations are dropped.
func ParseSVG(r io.Reader) (*Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	var root *Element
	var stack []*Element
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if root == nil {
				return nil, fmt.Errorf("expected SVG tag")
			}
			return root, nil
		case xml.StartTagToken:
			el := &Element{Tag: string(data[1:]), Attrs: map[string]string{}}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				el.Attrs[string(l.Text())] = string(val)
			}

			if len(stack) == 0 {
				if el.Tag != "svg" {
					return nil, parse.NewErrorLexer(z, "expected SVG tag, got %s", el.Tag)
				} else if root != nil {
					return nil, parse.NewErrorLexer(z, "unexpected second SVG root")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}

			if tt != xml.StartTagCloseVoidToken {
				stack = append(stack, el)
			}
		case xml.EndTagToken:
			if len(stack) == 0 {
				return nil, parse.NewErrorLexer(z, "unexpected end tag %s", string(data))
			}
			stack = stack[:len(stack)-1]
		}
	}
}
