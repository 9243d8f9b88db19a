// Package cache implements the content-addressed artifact store backing
// the planner. Artifacts live in one flat directory as
// <name>__<fingerprint>.<ext> files; the directory listing is the whole
// index and is rebuilt by Scan at the start of every run.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// DefaultExt is the artifact file extension used when none is configured.
const DefaultExt = "geom.json"

// entryPattern matches artifact filenames. The fingerprint is always 16
// lowercase hex characters; everything before the double underscore is the
// artifact name.
var entryPattern = regexp.MustCompile(`^([a-zA-Z0-9._-]+)__([0-9a-f]{16})\.(.+)$`)

// validNamePattern restricts artifact names so the filename encoding stays
// parseable. Double underscores are rejected separately.
var validNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Store implements ports.ArtifactStore on a flat directory.
//
// The mutex covers the scanned and active sets: the pool of parts is
// scheduled concurrently and each part activates its own artifacts.
type Store struct {
	dir    string
	ext    string
	hasher ports.Fingerprinter
	logger ports.Logger

	mu sync.Mutex
	// scanned maps "<name>__<fingerprint>" to the file path found on disk.
	scanned map[string]string
	// active holds the keys activated during this run.
	active map[string]bool
}

// NewStore creates a store rooted at dir. The directory is created on
// first activation, not here, so a pure scheduling run leaves no traces.
func NewStore(dir, ext string, hasher ports.Fingerprinter, logger ports.Logger) *Store {
	if ext == "" {
		ext = DefaultExt
	}
	return &Store{
		dir:     filepath.Clean(dir),
		ext:     ext,
		hasher:  hasher,
		logger:  logger,
		scanned: make(map[string]string),
		active:  make(map[string]bool),
	}
}

// Scan populates the known entries from the store directory. A missing
// directory is an empty store. Files that do not match the entry naming
// scheme are left alone.
func (s *Store) Scan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to scan artifact directory"), "dir", s.dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := entryPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		key := m[1] + "__" + m[2]
		s.scanned[key] = filepath.Join(s.dir, entry.Name())
	}

	return nil
}

// Activate registers (name, fingerprint-of-params) as active and returns
// the deterministic artifact path. Calling it again with the same
// arguments in the same run returns the same path.
func (s *Store) Activate(name string, params domain.Param) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	fp := s.hasher.Fingerprint(params)
	key := name + "__" + fp
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", key, s.ext))

	s.mu.Lock()
	s.active[key] = true
	s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "dir", s.dir)
	}

	return path, nil
}

// Invalidate removes the entry for (name, params) from disk and from both
// sets, so one rebuild of the artifact can follow.
func (s *Store) Invalidate(name string, params domain.Param) error {
	if err := validateName(name); err != nil {
		return err
	}

	fp := s.hasher.Fingerprint(params)
	key := name + "__" + fp
	path := filepath.Join(s.dir, fmt.Sprintf("%s.%s", key, s.ext))

	s.mu.Lock()
	delete(s.active, key)
	delete(s.scanned, key)
	s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", path)
	}

	s.logger.Warn(fmt.Sprintf("invalidated artifact %s", filepath.Base(path)))
	return nil
}

// FlushInactive deletes every scanned entry whose key was never activated
// this run, then forgets it. Deletion is the one irreversible operation in
// the store, so callers invoke this only after the full active set is
// known.
func (s *Store) FlushInactive() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, path := range s.scanned {
		if s.active[key] {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to delete stale artifact"), "path", path)
		}
		s.logger.Info(fmt.Sprintf("removed stale artifact %s", filepath.Base(path)))
		delete(s.scanned, key)
	}

	return nil
}

func validateName(name string) error {
	if name == "" || !validNamePattern.MatchString(name) || strings.Contains(name, "__") {
		return zerr.With(domain.ErrInvalidOperationName, "name", name)
	}
	return nil
}
