package phrase

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint returns a short hex digest of the catalog's contents, useful for
// telling which phrase set a device was flashed with.
//
// It hashes each tier's phrases, length-prefixed, with SHA-256 and truncates
// to 10 bytes (20 hex chars). The catalog name is not part of the digest.
func (c *Catalog) Fingerprint() string {
	h := sha256.New()
	var n [4]byte
	for _, t := range c.Tables() {
		binary.BigEndian.PutUint32(n[:], uint32(t.Len()))
		h.Write(n[:])
		for _, p := range t.phrases {
			binary.BigEndian.PutUint32(n[:], uint32(len(p)))
			h.Write(n[:])
			h.Write([]byte(p))
		}
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
