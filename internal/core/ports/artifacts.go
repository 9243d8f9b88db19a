package ports

import "go.trai.ch/camplan/internal/core/domain"

// ArtifactStore is the content-addressed store for produced geometry
// artifacts. Entries are files named <name>__<fingerprint>.<ext> in a flat
// directory; the directory listing is the index.
//
// The call order within one run is strict: Scan, then all Activates, then
// FlushInactive. Flushing before the active set is complete would delete
// artifacts a later operation still needs.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactStore interface {
	// Scan populates the known entries from the store directory. Files
	// that do not match the entry naming scheme are ignored.
	Scan() error

	// Activate computes the fingerprint of params, marks the (name,
	// fingerprint) pair active for this run and returns the deterministic
	// artifact path. The caller checks existence and only produces the
	// artifact if the path is missing. Activation is idempotent.
	Activate(name string, params domain.Param) (string, error)

	// Invalidate removes the entry for (name, params) from disk and from
	// the active set so the artifact can be produced again. Used once per
	// artifact when a cached file fails verification.
	Invalidate(name string, params domain.Param) error

	// FlushInactive deletes every scanned entry that was not activated
	// during this run, then forgets it. Must only run after all
	// activations.
	FlushInactive() error
}
