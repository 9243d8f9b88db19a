package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/camplan/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/camplan/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/camplan/internal/adapters/geom"        //nolint:depguard // Wired in app layer
	"go.trai.ch/camplan/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/camplan/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/camplan/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved application objects for the CLI entry
// point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			geom.NodeID,
			fingerprint.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.PlanLoader](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			producer, err := graft.Dep[ports.Producer](ctx)
			if err != nil {
				return nil, err
			}

			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, sched, producer, fingerprinter, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
