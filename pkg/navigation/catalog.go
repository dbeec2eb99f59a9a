package navigation

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in site map.
func DefaultCatalog() ([]Item, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalog))
}

// LoadCatalog decodes a YAML list of navigation items.
func LoadCatalog(r io.Reader) ([]Item, error) {
	var items []Item
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("decode navigation catalog: %w", err)
	}
	return items, nil
}
