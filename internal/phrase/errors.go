package phrase

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTier marks a tier outside the enumerated set. Select panics with it.
	ErrInvalidTier = errors.New("invalid tier")

	// ErrEmptyTable is returned when a tier has no phrases at construction.
	ErrEmptyTable = errors.New("empty phrase table")

	// ErrCountMismatch is returned when a declared count differs from the entries supplied.
	ErrCountMismatch = errors.New("declared phrase count does not match entries")

	ErrEmptyPhrase   = errors.New("empty phrase")
	ErrPhraseTooLong = errors.New("phrase too long")
	ErrUnprintable   = errors.New("phrase contains unprintable characters")
	ErrMissingTier   = errors.New("catalog is missing a tier")
	ErrDuplicateTier = errors.New("catalog has duplicate tier")

	// ErrIndexOutOfRange means the random source returned an index outside [0, n).
	ErrIndexOutOfRange = errors.New("random index out of range")
)

// IsInvalidTier reports whether v, typically a recovered panic value, is an
// ErrInvalidTier failure.
func IsInvalidTier(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrInvalidTier)
}

func invalidTier(op string, tier fmt.Stringer) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidTier, tier)
}
