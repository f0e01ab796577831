package rng

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	mrand "math/rand/v2"

	"golang.org/x/crypto/chacha20"
)

const (
	KeySize = chacha20.KeySize
	bufSize = 512
)

// Source yields uint64s from a ChaCha20 keystream with an all-zero nonce.
type Source struct {
	c   *chacha20.Cipher
	buf [bufSize]byte
	off int
}

var _ mrand.Source = (*Source)(nil)

// NewSource returns a Source keyed by key.
func NewSource(key [KeySize]byte) *Source {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only reachable with wrong key or nonce sizes, which the array types rule out.
		panic(err)
	}
	return &Source{c: c, off: bufSize}
}

// Uint64 returns the next 8 keystream bytes, little-endian.
func (s *Source) Uint64() uint64 {
	if s.off+8 > bufSize {
		clear(s.buf[:])
		s.c.XORKeyStream(s.buf[:], s.buf[:])
		s.off = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}

// RandomKey reads a fresh key from the operating system's CSPRNG.
func RandomKey() ([KeySize]byte, error) {
	var k [KeySize]byte
	if _, err := rand.Read(k[:]); err != nil {
		return k, err
	}
	return k, nil
}

// KeyFromSeed derives a key from a human-supplied seed string.
func KeyFromSeed(seed string) [KeySize]byte {
	return sha256.Sum256([]byte(seed))
}

// New returns a *rand.Rand over a Source. An empty seed means a random key.
func New(seed string) (*mrand.Rand, error) {
	var key [KeySize]byte
	if seed == "" {
		k, err := RandomKey()
		if err != nil {
			return nil, err
		}
		key = k
	} else {
		key = KeyFromSeed(seed)
	}
	return mrand.New(NewSource(key)), nil
}
