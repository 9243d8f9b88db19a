package ports

import "go.trai.ch/camplan/internal/core/domain"

// Fingerprinter derives the stable cache fingerprint of a parameter tree.
// The result must be identical across processes for identical trees; no
// process-local state may enter the computation.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a 16 lowercase hex character digest of the
	// tree's canonical encoding.
	Fingerprint(params domain.Param) string
}
