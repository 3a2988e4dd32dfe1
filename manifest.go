package svg2path

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type manifest struct {
	Format string  `yaml:"format"`
	Assets []Asset `yaml:"assets"`
}

// WriteManifest writes assets as YAML. The path bytes are stored as their
// storage-safe literal.
func WriteManifest(w io.Writer, format Format, assets []Asset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(manifest{Format: format.String(), Assets: assets}); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return enc.Close()
}

// ReadManifest reads assets written by WriteManifest and restores the path
// bytes from their literals.
func ReadManifest(r io.Reader) (Format, []Asset, error) {
	m := manifest{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return 0, nil, fmt.Errorf("read manifest: %w", err)
	}
	format, err := ParseFormat(m.Format)
	if err != nil {
		return 0, nil, fmt.Errorf("read manifest: %w", err)
	}
	for i := range m.Assets {
		for j := range m.Assets[i].Paths {
			path := &m.Assets[i].Paths[j]
			if path.Bytes, err = ParseStorageString(path.Literal); err != nil {
				return 0, nil, fmt.Errorf("read manifest: asset %s path %d: %w", m.Assets[i].Name, j, err)
			}
		}
	}
	return format, m.Assets, nil
}
