// Package phrase holds the tiered phrase catalog and the random selector
// that serves it.
//
// A Catalog is built once from literal data and never changes afterwards:
// one Table per tier, each non-empty, each entry printable and at most
// MaxPhraseLen runes. Table lengths come from the data itself; a declared
// count is only accepted to be checked against it.
//
// # Failures
//
// Construction problems (empty table, count mismatch, missing tier) are
// returned as errors so a process can refuse to start. Selecting with a tier
// outside Value, Quality and Luxury is a caller defect: Select panics with an
// error wrapping ErrInvalidTier instead of returning a phrase.
//
// # Concurrency
//
// Catalogs and Tables are read-only and need no locking. A Selector guards
// its random source with a mutex, so one Selector may be shared.
package phrase
