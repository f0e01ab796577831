package domain

import (
	interfaces "hatermatic/internal/domain/interfaces"
	types "hatermatic/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Tier        = types.Tier
	Phrase      = types.Phrase
	CatalogName = types.CatalogName
)

const (
	Value   = types.Value
	Quality = types.Quality
	Luxury  = types.Luxury
)

var (
	Tiers          = types.Tiers
	ParseTier      = types.ParseTier
	ErrUnknownTier = types.ErrUnknownTier
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Rand           = interfaces.Rand
	PhraseSelector = interfaces.PhraseSelector
)
