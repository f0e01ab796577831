package catalog

import (
	"errors"
	"fmt"
	"slices"

	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
)

const (
	LoveName domain.CatalogName = "love"
	HateName domain.CatalogName = "hate"
)

// ErrUnknownCatalog is returned by Lookup for names with no built-in catalog.
var ErrUnknownCatalog = errors.New("unknown catalog")

// Lookup returns the built-in catalog called name.
func Lookup(name domain.CatalogName) (*phrase.Catalog, error) {
	switch name {
	case LoveName:
		return Love, nil
	case HateName:
		return Hate, nil
	}
	return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownCatalog, name, Names())
}

// Names lists the built-in catalog names, sorted.
func Names() []domain.CatalogName {
	names := []domain.CatalogName{LoveName, HateName}
	slices.Sort(names)
	return names
}
