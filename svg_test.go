package svg2path

import (
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVG(t *testing.T) {
	svg := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
	<!-- comment -->
	<g fill='red'>
		<circle cx="1" cy="2" r="3"/>
		<text>hello</text>
	</g>
	<path d="M0 0L10 10"></path>
</svg>`

	root, err := ParseSVG(strings.NewReader(svg))
	test.Error(t, err)
	test.String(t, root.Tag, "svg")
	test.String(t, root.Attrs["viewBox"], "0 0 200 100")
	test.T(t, len(root.Children), 2)

	g := root.Children[0]
	test.String(t, g.Tag, "g")
	test.String(t, g.Attrs["fill"], "red")
	test.T(t, len(g.Children), 2)
	test.String(t, g.Children[0].Tag, "circle")
	test.String(t, g.Children[0].Attrs["r"], "3")
	test.String(t, g.Children[1].Tag, "text")
	test.T(t, len(g.Children[1].Children), 0)

	path := root.Children[1]
	test.String(t, path.Tag, "path")
	test.String(t, path.Attrs["d"], "M0 0L10 10")
}

func TestParseSVGErrors(t *testing.T) {
	var tests = []string{
		``,
		`<g></g>`,
		`<svg></svg><svg></svg>`,
		`<svg></svg></g>`,
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseSVG(strings.NewReader(tt))
			test.That(t, err != nil)
		})
	}
}
