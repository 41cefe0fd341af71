package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=source.go -destination=mock_source.go -package=catalog

// Source loads the static dataset.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

//go:embed data/books.yaml
var embeddedDataset []byte

// Dataset is the on-disk layout of a catalog document.
type Dataset struct {
	Authors []Author `yaml:"authors"`
	Genres  []Genre  `yaml:"genres"`
	Books   []Item   `yaml:"books"`
}

// YAMLSource reads a dataset document from Path, or the embedded default
// dataset when Path is empty.
type YAMLSource struct {
	Path string
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

func (s *YAMLSource) Load(ctx context.Context) (*Catalog, error) {
	raw := embeddedDataset
	if s.Path != "" {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		raw = b
	}
	ds, err := DecodeDataset(raw)
	if err != nil {
		return nil, err
	}
	return ds.Catalog()
}

// DecodeDataset parses a YAML (or JSON) dataset document. Unknown keys are rejected.
func DecodeDataset(raw []byte) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}

// EmbeddedDataset returns the dataset compiled into the binary.
func EmbeddedDataset() (Dataset, error) {
	return DecodeDataset(embeddedDataset)
}

func (ds Dataset) Catalog() (*Catalog, error) {
	return NewCatalog(ds.Books, ds.Authors, ds.Genres)
}
