package svg2path

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options configure the conversion pipeline.
type Options struct {
	Precision int
	Codec     Codec
	Escape    Escape
	Minify    bool
	Workers   int
}

func DefaultOptions() Options {
	return Options{
		Codec:   DefaultCodec,
		Escape:  EscapePrintable,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// PathRecord is a path-bearing element with its resolved style.
type PathRecord struct {
	Data        string // source path data
	Normalized  string // path data in the target coordinate space
	Fill        string
	Stroke      string
	StrokeWidth float64
	Translate   *[2]float64
}

// Document is a converted SVG document.
type Document struct {
	Name    string
	ViewBox ViewBox
	Scale   ScaleContext
	Paths   []PathRecord

	// Warnings holds the errors of elements that were dropped.
	Warnings error

	opts Options
}

// Convert converts the tree of an <svg> element into normalized path records.
// A missing or malformed viewBox is an error; malformed shapes and paths are
// dropped and reported in Document.Warnings.
func Convert(root *Element, opts Options) (*Document, error) {
	vb, err := ParseViewBox(root)
	if err != nil {
		return nil, err
	}
	scale := vb.Scale()

	shapes, err := Flatten(root)
	errs := []error{}
	if err != nil {
		errs = append(errs, err)
	}

	norm := Normalizer{Precision: opts.Precision}
	records := make([]PathRecord, 0, len(shapes))
	for _, shape := range shapes {
		el := shape.Element
		normalized, err := norm.Normalize(shape.Data, scale.Max)
		if err != nil {
			err = &ConversionError{Tag: el.Tag, Attr: "d", Value: shape.Data, Err: err}
			Logger().Warn("skip malformed path", "tag", el.Tag, "err", err)
			errs = append(errs, err)
			continue
		}

		strokeWidth, err := StrokeWidth(el, scale)
		if err != nil {
			Logger().Warn("ignore stroke width", "tag", el.Tag, "err", err)
			errs = append(errs, err)
		}
		records = append(records, PathRecord{
			Data:        shape.Data,
			Normalized:  normalized,
			Fill:        Fill(el),
			Stroke:      Stroke(el),
			StrokeWidth: strokeWidth,
			Translate:   Translate(el),
		})
	}
	Logger().Debug("converted document", "paths", len(records), "max", scale.Max, "width", scale.Width, "height", scale.Height)
	return &Document{
		ViewBox:  vb,
		Scale:    scale,
		Paths:    records,
		Warnings: errors.Join(errs...),
		opts:     opts,
	}, nil
}

// ConvertSVG parses and converts SVG markup.
func ConvertSVG(r io.Reader, opts Options) (*Document, error) {
	root, err := ParseSVG(r)
	if err != nil {
		return nil, err
	}
	return Convert(root, opts)
}

// ConvertAll converts documents concurrently. The result has the same order
// as roots; the first error cancels the remaining conversions.
func ConvertAll(ctx context.Context, roots []*Element, opts Options) ([]*Document, error) {
	docs := make([]*Document, len(roots))
	g, ctx := errgroup.WithContext(ctx)
	if 0 < opts.Workers {
		g.SetLimit(opts.Workers)
	}
	for i, root := range roots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := Convert(root, opts)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// WriteSVG writes the normalized document.
func (doc *Document) WriteSVG(w io.Writer) error {
	return WriteSVG(w, doc.Paths, WriterOptions{Minify: doc.opts.Minify})
}

// EncodedPath is a compressed path.
type EncodedPath struct {
	Bytes   []byte `yaml:"-"`
	Literal string `yaml:"literal"`
	Size    int    `yaml:"size"`
	TextLen int    `yaml:"text_len"`
}

// Asset is an encoded document as consumed by code generators.
type Asset struct {
	Name         string        `yaml:"name"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Max          float64       `yaml:"max"`
	Paths        []EncodedPath `yaml:"paths"`
	Fills        []string      `yaml:"fills"`
	Strokes      []string      `yaml:"strokes"`
	StrokeWidths []float64     `yaml:"stroke_widths"`
}

// Encode compresses every path of the document. Any path that cannot be
// encoded fails the whole document.
func (doc *Document) Encode() (Asset, error) {
	codec := doc.opts.Codec
	if codec.MaxCoordinate == 0 {
		codec = DefaultCodec
	}

	asset := Asset{
		Name:   doc.Name,
		Width:  doc.Scale.Width,
		Height: doc.Scale.Height,
		Max:    doc.Scale.Max,
	}
	for i, rec := range doc.Paths {
		p, err := ParsePathData(rec.Normalized)
		if err != nil {
			return Asset{}, fmt.Errorf("path %d: %w", i, err)
		}
		b, err := codec.Encode(p)
		if err != nil {
			return Asset{}, fmt.Errorf("path %d: %w", i, err)
		}
		asset.Paths = append(asset.Paths, EncodedPath{
			Bytes:   b,
			Literal: doc.opts.Escape.Quote(b),
			Size:    len(b),
			TextLen: len(rec.Normalized),
		})
		asset.Fills = append(asset.Fills, rec.Fill)
		asset.Strokes = append(asset.Strokes, rec.Stroke)
		asset.StrokeWidths = append(asset.StrokeWidths, rec.StrokeWidth)
	}
	Logger().Debug("encoded document", "name", doc.Name, "paths", len(asset.Paths))
	return asset, nil
}
