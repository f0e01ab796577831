package interfaces

import domaintypes "hatermatic/internal/domain/types"

// Rand draws a uniform integer in [0, n). *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// PhraseSelector maps a tier to one phrase from that tier's pool.
type PhraseSelector interface {
	Select(tier domaintypes.Tier) domaintypes.Phrase
}
