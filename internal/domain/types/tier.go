package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownTier is returned by ParseTier for text that names no tier.
var ErrUnknownTier = errors.New("unknown tier")

// Tier is one of the escalating payment levels accepted upstream.
// The zero value is not a valid tier.
type Tier uint8

const (
	Value Tier = iota + 1
	Quality
	Luxury
)

// Tiers lists every valid tier in ascending order.
var Tiers = [...]Tier{Value, Quality, Luxury}

var tierNames = [...]string{
	Value:   "value",
	Quality: "quality",
	Luxury:  "luxury",
}

// Valid reports whether t is one of Value, Quality or Luxury.
func (t Tier) Valid() bool { return t >= Value && t <= Luxury }

// String returns the lower-case tier name, or "tier(N)" for invalid values.
func (t Tier) String() string {
	if !t.Valid() {
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
	return tierNames[t]
}

// ParseTier accepts a tier name (case-insensitive) or its credit level 1-3.
func ParseTier(s string) (Tier, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tiers {
		if s == tierNames[t] || s == strconv.Itoa(int(t)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText mirrors MarshalText and also accepts credit levels.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
