// Package geom provides the stand-in artifact producer. The real producer
// is the external solid-geometry kernel; this adapter persists the
// operation's geometry description in a canonical JSON form so the cache
// and recovery paths can be exercised end to end.
package geom

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"

	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Producer = (*DescriptionProducer)(nil)

// description is the persisted artifact payload. It is a pure function of
// the operation's parameter tree, never of the resource binding, so a
// cached artifact stays valid when only the machine assignment changes.
type description struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Depth  float64 `json:"depth"`
	Params string  `json:"params"`
}

// DescriptionProducer implements ports.Producer with JSON descriptions.
type DescriptionProducer struct {
	logger ports.Logger
}

// NewDescriptionProducer creates a new DescriptionProducer.
func NewDescriptionProducer(logger ports.Logger) *DescriptionProducer {
	return &DescriptionProducer{logger: logger}
}

// Produce writes the operation's geometry description to path.
func (p *DescriptionProducer) Produce(ctx context.Context, op domain.ScheduledOperation, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	desc := description{
		Name:   op.Operation.Name.String(),
		Kind:   string(op.Operation.Kind),
		Depth:  op.Operation.Depth,
		Params: hex.EncodeToString(domain.CanonicalBytes(op.Operation.Params)),
	}

	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal geometry description")
	}

	//nolint:gosec // Path comes from the artifact store, not user input
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}

	p.logger.Info("produced artifact " + desc.Name)
	return nil
}

// Verify checks that an existing artifact parses back into a description.
func (p *DescriptionProducer) Verify(path string) error {
	//nolint:gosec // Path comes from the artifact store, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read artifact"), "path", path)
	}

	var desc description
	if err := json.Unmarshal(data, &desc); err != nil {
		return zerr.With(zerr.Wrap(err, "artifact is not a valid description"), "path", path)
	}
	if desc.Name == "" || desc.Kind == "" {
		return zerr.With(zerr.New("artifact description incomplete"), "path", path)
	}
	if _, err := hex.DecodeString(desc.Params); err != nil {
		return zerr.With(zerr.Wrap(err, "artifact parameters corrupted"), "path", path)
	}

	return nil
}
