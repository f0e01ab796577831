package app

import (
	"fmt"

	"go.uber.org/zap"

	"hatermatic/internal/catalog"
	"hatermatic/internal/domain"
	"hatermatic/internal/phrase"
	"hatermatic/internal/rng"
	"hatermatic/internal/store"
)

// Wire bundles the catalog, selector and logger for the CLI.
type Wire struct {
	Catalog  *phrase.Catalog
	Selector *phrase.Selector
	Logger   *zap.Logger
}

// NewWire constructs the dependency graph from cfg. A nil logger is replaced
// by a no-op one.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := resolveCatalog(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog ready",
		zap.Stringer("catalog", c.Name()),
		zap.Int("value", c.Len(domain.Value)),
		zap.Int("quality", c.Len(domain.Quality)),
		zap.Int("luxury", c.Len(domain.Luxury)))

	// Seeded once per process.
	r, err := rng.New(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed random source: %w", err)
	}
	logger.Debug("random source seeded", zap.Bool("reproducible", cfg.Seed != ""))

	return &Wire{
		Catalog:  c,
		Selector: phrase.NewSelector(c, r),
		Logger:   logger,
	}, nil
}

func resolveCatalog(cfg Config) (*phrase.Catalog, error) {
	if cfg.CatalogFile != "" {
		c, err := store.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("load catalog file: %w", err)
		}
		return c, nil
	}
	return catalog.Lookup(domain.CatalogName(cfg.Catalog))
}
