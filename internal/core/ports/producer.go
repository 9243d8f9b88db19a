package ports

import (
	"context"

	"go.trai.ch/camplan/internal/core/domain"
)

// Producer builds the artifact of a scheduled operation at the given path.
// The real producer is the external geometry kernel; the planner only needs
// Produce to be deterministic for identical operations and Verify to reject
// files the kernel could not consume again.
//
//go:generate go run go.uber.org/mock/mockgen -source=producer.go -destination=mocks/mock_producer.go -package=mocks
type Producer interface {
	// Produce writes the artifact for op at path.
	Produce(ctx context.Context, op domain.ScheduledOperation, path string) error

	// Verify checks that an existing artifact at path is readable and
	// well formed.
	Verify(path string) error
}
