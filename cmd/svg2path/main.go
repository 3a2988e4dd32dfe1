package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/isamu/svg2path"
	"github.com/tdewolff/argp"
)

type Convert struct {
	Verbose bool     `short:"v" desc:"Verbose logging"`
	Config  string   `short:"c" desc:"YAML config file"`
	Minify  bool     `desc:"Minify the output SVG"`
	Output  string   `short:"o" desc:"Output file, only for a single input"`
	Inputs  []string `index:"*" desc:"Input SVG files"`
}

type Encode struct {
	Verbose bool     `short:"v" desc:"Verbose logging"`
	Config  string   `short:"c" desc:"YAML config file"`
	Output  string   `short:"o" desc:"Output manifest file"`
	Inputs  []string `index:"*" desc:"Input SVG files"`
}

type Decode struct {
	Format  string `short:"f" default:"varint" desc:"Value format: varint or fixed16"`
	Max     int    `short:"m" default:"1024" desc:"Maximum coordinate"`
	Literal string `index:"0" desc:"Storage-safe path literal"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "Convert SVG shapes to 1024x1024 paths and compress them")
	root.AddCmd(&Encode{}, "encode", "Write compressed paths to a YAML manifest")
	root.AddCmd(&Decode{}, "decode", "Decode a compressed path literal")
	root.Parse()
	root.PrintHelp()
}

func setLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	svg2path.SetLogger(l)
}

// convertFiles parses and converts the input files concurrently.
func convertFiles(filenames []string, opts svg2path.Options) ([]*svg2path.Document, error) {
	roots := make([]*svg2path.Element, len(filenames))
	for i, filename := range filenames {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		roots[i], err = svg2path.ParseSVG(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
	}

	docs, err := svg2path.ConvertAll(context.Background(), roots, opts)
	if err != nil {
		return nil, err
	}
	for i, doc := range docs {
		doc.Name = name(filenames[i])
		if doc.Warnings != nil {
			slog.Warn("dropped elements", "file", filenames[i], "err", doc.Warnings)
		}
	}
	return docs, nil
}

func name(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (cmd *Convert) Run() error {
	if len(cmd.Inputs) == 0 {
		return argp.ShowUsage
	} else if cmd.Output != "" && len(cmd.Inputs) != 1 {
		fmt.Println("ERROR: output file requires a single input")
		return argp.ShowUsage
	}
	setLogger(cmd.Verbose)

	cfg, err := LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	opts := cfg.Options()
	opts.Minify = opts.Minify || cmd.Minify

	docs, err := convertFiles(cmd.Inputs, opts)
	if err != nil {
		return err
	}

	if len(docs) == 1 && cmd.Output == "" {
		return docs[0].WriteSVG(os.Stdout)
	}
	for i, doc := range docs {
		filename := cmd.Output
		if filename == "" {
			filename = strings.TrimSuffix(cmd.Inputs[i], filepath.Ext(cmd.Inputs[i])) + ".1024.svg"
		}
		if err := writeFile(filename, doc.WriteSVG); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *Encode) Run() error {
	if len(cmd.Inputs) == 0 {
		return argp.ShowUsage
	}
	setLogger(cmd.Verbose)

	cfg, err := LoadConfig(cmd.Config)
	if err != nil {
		return err
	}
	opts := cfg.Options()

	docs, err := convertFiles(cmd.Inputs, opts)
	if err != nil {
		return err
	}
	assets := make([]svg2path.Asset, 0, len(docs))
	for i, doc := range docs {
		asset, err := doc.Encode()
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Inputs[i], err)
		}
		assets = append(assets, asset)
	}

	write := func(w io.Writer) error {
		return svg2path.WriteManifest(w, opts.Codec.Format, assets)
	}
	if cmd.Output == "" {
		return write(os.Stdout)
	}
	return writeFile(cmd.Output, write)
}

func (cmd *Decode) Run() error {
	if cmd.Literal == "" {
		return argp.ShowUsage
	}
	format, err := svg2path.ParseFormat(cmd.Format)
	if err != nil {
		return err
	}

	b, err := svg2path.ParseStorageString(cmd.Literal)
	if err != nil {
		return err
	}
	p, err := svg2path.Codec{Format: format, MaxCoordinate: cmd.Max}.Decode(b)
	if err != nil {
		return err
	}
	fmt.Println(p.String())
	return nil
}

func writeFile(filename string, write func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
