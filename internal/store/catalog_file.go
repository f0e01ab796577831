package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
)

var (
	ErrFileTooLarge = errors.New("catalog file too large")
	ErrNoName       = errors.New("catalog file has no name")
	ErrExtraDocs    = errors.New("catalog file has more than one document")
)

// catalogDoc is the on-disk layout of one catalog.
type catalogDoc struct {
	Name  string  `yaml:"name"`
	Tiers tierSet `yaml:"tiers"`
}

type tierSet struct {
	Value   *tierDoc `yaml:"value,omitempty"`
	Quality *tierDoc `yaml:"quality,omitempty"`
	Luxury  *tierDoc `yaml:"luxury,omitempty"`
}

type tierDoc struct {
	Count   *int     `yaml:"count,omitempty"`
	Phrases []string `yaml:"phrases"`
}

func (s *tierSet) get(t domain.Tier) *tierDoc {
	switch t {
	case domain.Value:
		return s.Value
	case domain.Quality:
		return s.Quality
	case domain.Luxury:
		return s.Luxury
	}
	return nil
}

func (s *tierSet) set(t domain.Tier, d *tierDoc) {
	switch t {
	case domain.Value:
		s.Value = d
	case domain.Quality:
		s.Quality = d
	case domain.Luxury:
		s.Luxury = d
	}
}

// DecodeCatalog parses one YAML catalog document from r. Unknown keys and
// trailing documents are rejected.
func DecodeCatalog(r io.Reader) (*phrase.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc catalogDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		return nil, ErrExtraDocs
	}
	if doc.Name == "" {
		return nil, ErrNoName
	}

	tables := make([]phrase.Table, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		td := doc.Tiers.get(tier)
		if td == nil {
			return nil, fmt.Errorf("catalog %s: %w: %s", doc.Name, phrase.ErrMissingTier, tier)
		}
		var (
			t   phrase.Table
			err error
		)
		if td.Count != nil {
			t, err = phrase.NewCountedTable(tier, *td.Count, td.Phrases)
		} else {
			t, err = phrase.NewTable(tier, td.Phrases)
		}
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", doc.Name, err)
		}
		tables = append(tables, t)
	}
	return phrase.NewCatalog(domain.CatalogName(doc.Name), tables...)
}

// EncodeCatalog writes c as YAML with each tier's count filled in.
func EncodeCatalog(w io.Writer, c *phrase.Catalog) error {
	doc := catalogDoc{Name: c.Name().String()}
	for _, t := range c.Tables() {
		n := t.Len()
		doc.Tiers.set(t.Tier(), &tierDoc{Count: &n, Phrases: t.Phrases()})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode catalog %s: %w", c.Name(), err)
	}
	return enc.Close()
}

// LoadCatalog reads and validates the catalog file at path.
func LoadCatalog(path string) (*phrase.Catalog, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	c, err := DecodeCatalog(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// SaveCatalog writes c to path atomically.
func SaveCatalog(path string, c *phrase.Catalog) error {
	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, c); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes(), 0o644)
}
