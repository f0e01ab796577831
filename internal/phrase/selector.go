package phrase

import (
	"fmt"
	"sync"

	"hatermatic/internal/domain"
)

// Selector draws phrases uniformly at random from a Catalog. The catalog is
// borrowed, never modified.
type Selector struct {
	catalog *Catalog

	mu  sync.Mutex
	rnd domain.Rand
}

var _ domain.PhraseSelector = (*Selector)(nil)

// NewSelector returns a selector over c that draws from rnd. rnd should be
// seeded once at process start.
func NewSelector(c *Catalog, rnd domain.Rand) *Selector {
	return &Selector{catalog: c, rnd: rnd}
}

// Catalog returns the catalog the selector reads from.
func (s *Selector) Catalog() *Catalog { return s.catalog }

// Select returns one phrase of tier chosen uniformly at random. Repeats across
// calls are expected. An invalid tier panics with an error wrapping
// ErrInvalidTier.
func (s *Selector) Select(tier domain.Tier) string {
	if !tier.Valid() {
		panic(invalidTier("select", tier))
	}
	t := s.catalog.tables[tier]
	n := t.Len()

	s.mu.Lock()
	i := s.rnd.IntN(n)
	s.mu.Unlock()

	if i < 0 || i >= n {
		panic(fmt.Errorf("select %s: %w: %d not in [0,%d)", tier, ErrIndexOutOfRange, i, n))
	}
	return t.phrases[i]
}
