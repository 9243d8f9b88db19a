package geom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/camplan/internal/adapters/logger"
	"go.trai.ch/camplan/internal/core/ports"
)

// NodeID is the unique identifier for the producer Graft node.
const NodeID graft.ID = "adapter.producer"

func init() {
	graft.Register(graft.Node[ports.Producer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Producer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDescriptionProducer(log), nil
		},
	})
}
