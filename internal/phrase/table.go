package phrase

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"hatermatic/internal/domain"
)

// MaxPhraseLen bounds a phrase in runes so one ticket fits on the printer roll.
const MaxPhraseLen = 280

// Table is the ordered, immutable phrase pool of one tier.
type Table struct {
	tier    domain.Tier
	phrases []string
}

// NewTable builds a table whose length is taken from phrases. The slice is
// copied.
func NewTable(tier domain.Tier, phrases []string) (Table, error) {
	if !tier.Valid() {
		return Table{}, invalidTier("new table", tier)
	}
	if len(phrases) == 0 {
		return Table{}, fmt.Errorf("%s: %w", tier, ErrEmptyTable)
	}
	for i, p := range phrases {
		if err := checkPhrase(p); err != nil {
			return Table{}, fmt.Errorf("%s[%d]: %w", tier, i, err)
		}
	}
	return Table{tier: tier, phrases: append([]string(nil), phrases...)}, nil
}

// NewCountedTable is NewTable with a declared entry count that must match
// len(phrases) exactly.
func NewCountedTable(tier domain.Tier, declared int, phrases []string) (Table, error) {
	if declared != len(phrases) {
		if len(phrases) == 0 {
			return Table{}, fmt.Errorf("%s: %w", tier, ErrEmptyTable)
		}
		return Table{}, fmt.Errorf("%s: %w: declared %d, got %d", tier, ErrCountMismatch, declared, len(phrases))
	}
	return NewTable(tier, phrases)
}

func checkPhrase(p string) error {
	if p == "" {
		return ErrEmptyPhrase
	}
	if !utf8.ValidString(p) {
		return ErrUnprintable
	}
	if n := utf8.RuneCountInString(p); n > MaxPhraseLen {
		return fmt.Errorf("%w: %d runes", ErrPhraseTooLong, n)
	}
	for _, r := range p {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %U", ErrUnprintable, r)
		}
	}
	return nil
}

// Tier returns the tier the table belongs to.
func (t Table) Tier() domain.Tier { return t.tier }

// Len returns the number of phrases.
func (t Table) Len() int { return len(t.phrases) }

// At returns the phrase at index i. It panics if i is out of range.
func (t Table) At(i int) string { return t.phrases[i] }

// Phrases returns a copy of the entries in order.
func (t Table) Phrases() []string { return append([]string(nil), t.phrases...) }

// Contains reports whether p is one of the table's entries.
func (t Table) Contains(p string) bool {
	for _, q := range t.phrases {
		if q == p {
			return true
		}
	}
	return false
}
