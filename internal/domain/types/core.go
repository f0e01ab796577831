package types

// CatalogName identifies a phrase catalog, e.g. "love" or "hate".
type CatalogName string

// String returns the string form of the catalog name.
func (n CatalogName) String() string { return string(n) }

// Phrase is a single printable utterance belonging to one tier.
type Phrase = string
