package phrase

import (
	"fmt"

	"hatermatic/internal/domain"
)

// Catalog is a named set of exactly one Table per tier.
type Catalog struct {
	name   domain.CatalogName
	tables [len(domain.Tiers) + 1]Table // indexed by Tier; slot 0 unused
}

// NewCatalog checks that tables cover every tier exactly once.
func NewCatalog(name domain.CatalogName, tables ...Table) (*Catalog, error) {
	c := &Catalog{name: name}
	for _, t := range tables {
		if !t.tier.Valid() || t.Len() == 0 {
			return nil, fmt.Errorf("catalog %s: %w", name, ErrEmptyTable)
		}
		if c.tables[t.tier].Len() != 0 {
			return nil, fmt.Errorf("catalog %s: %w: %s", name, ErrDuplicateTier, t.tier)
		}
		c.tables[t.tier] = t
	}
	for _, tier := range domain.Tiers {
		if c.tables[tier].Len() == 0 {
			return nil, fmt.Errorf("catalog %s: %w: %s", name, ErrMissingTier, tier)
		}
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error. It is meant for
// package-level catalogs built from literals.
func MustCatalog(name domain.CatalogName, tables ...Table) *Catalog {
	c, err := NewCatalog(name, tables...)
	if err != nil {
		panic(err)
	}
	return c
}

// MustTable is like NewTable but panics on error.
func MustTable(tier domain.Tier, phrases []string) Table {
	t, err := NewTable(tier, phrases)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the catalog name.
func (c *Catalog) Name() domain.CatalogName { return c.name }

// Table returns the table for tier. It panics with ErrInvalidTier for a tier
// outside the enumerated set.
func (c *Catalog) Table(tier domain.Tier) Table {
	if !tier.Valid() {
		panic(invalidTier("catalog "+c.name.String(), tier))
	}
	return c.tables[tier]
}

// Len returns the number of phrases in tier.
func (c *Catalog) Len(tier domain.Tier) int { return c.Table(tier).Len() }

// Tables returns the tables in tier order.
func (c *Catalog) Tables() []Table {
	out := make([]Table, 0, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		out = append(out, c.tables[tier])
	}
	return out
}
