// Package fingerprint derives stable cache fingerprints from operation
// parameter trees.
package fingerprint

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher implements ports.Fingerprinter by hashing the canonical byte
// encoding of a parameter tree with XXHash. The encoding fixes numeric
// precision and element order, so the digest is identical across processes
// for identical trees. Go's built-in map/interface hashing is seeded per
// process and must never be used here.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint returns the 16 lowercase hex character digest of the tree.
func (h *Hasher) Fingerprint(params domain.Param) string {
	hasher := xxhash.New()
	_, _ = hasher.Write(domain.CanonicalBytes(params))
	return fmt.Sprintf("%016x", hasher.Sum64())
}
