// Package rng provides the random source behind phrase selection.
//
// Source is a math/rand/v2 Source reading a ChaCha20 keystream. The key comes
// either from crypto/rand, once per process, so consecutive power-ups do not
// replay the same phrases, or from a seed string so a run can be reproduced
// exactly in tests and diagnostics.
//
// A Source is not safe for concurrent use; phrase.Selector serialises access.
package rng
