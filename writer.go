package svg2path

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/svg"
)

const (
	defaultStrokeWidth = 3
	defaultStroke      = "#000"
)

// WriterOptions configure the SVG writer.
type WriterOptions struct {
	// Minify passes the document through the SVG minifier.
	Minify bool
}

// pathStyle returns the style attribute of a path. Stroke styling is only
// written when either the stroke width or the stroke color is set.
func pathStyle(rec PathRecord) string {
	styles := []string{}
	if rec.Fill != "" {
		styles = append(styles, "fill:"+rec.Fill)
	}
	if rec.StrokeWidth != 0.0 || rec.Stroke != "" {
		styles = append(styles, "stroke-linecap:round;stroke-linejoin:round")
		if rec.StrokeWidth != 0.0 {
			styles = append(styles, "stroke-width:"+num(rec.StrokeWidth))
		} else {
			styles = append(styles, fmt.Sprintf("stroke-width:%d", defaultStrokeWidth))
		}
		if rec.Stroke != "" {
			styles = append(styles, "stroke:"+rec.Stroke)
		} else {
			styles = append(styles, "stroke:"+defaultStroke)
		}
	}
	return strings.Join(styles, ";")
}

func writeSVG(w io.Writer, records []PathRecord) error {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n\t<g>\n", Size, Size)
	for _, rec := range records {
		fmt.Fprintf(b, "\t\t<path d=\"%s\" style=\"%s\"", html.EscapeString(rec.Normalized), html.EscapeString(pathStyle(rec)))
		if rec.Translate != nil {
			fmt.Fprintf(b, " transform=\"translate(%s,%s)\"", num(rec.Translate[0]), num(rec.Translate[1]))
		}
		b.WriteString(" />\n")
	}
	b.WriteString("\t</g>\n</svg>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// WriteSVG writes an SVG document in the target coordinate space with one
// path per record, in order.
func WriteSVG(w io.Writer, records []PathRecord, opts WriterOptions) error {
	if !opts.Minify {
		return writeSVG(w, records)
	}

	b := &bytes.Buffer{}
	if err := writeSVG(b, records); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)
	if err := m.Minify("image/svg+xml", w, b); err != nil {
		return fmt.Errorf("minify: %w", err)
	}
	return nil
}
