// Package app implements the application layer for camplan: it ties the
// plan loader, the resource pool, the scheduler, the artifact cache and
// the producer into one planning run.
package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/camplan/internal/adapters/cache"
	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/camplan/internal/engine/pool"
	"go.trai.ch/camplan/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	planLoader    ports.PlanLoader
	scheduler     *scheduler.Scheduler
	producer      ports.Producer
	fingerprinter ports.Fingerprinter
	logger        ports.Logger
	tracer        ports.Tracer

	// newStore builds the artifact store for a cache directory. Swappable
	// in tests.
	newStore func(dir string) ports.ArtifactStore
}

// New creates a new App instance.
func New(
	loader ports.PlanLoader,
	sched *scheduler.Scheduler,
	producer ports.Producer,
	fingerprinter ports.Fingerprinter,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	a := &App{
		planLoader:    loader,
		scheduler:     sched,
		producer:      producer,
		fingerprinter: fingerprinter,
		logger:        logger,
		tracer:        tracer,
	}
	a.newStore = func(dir string) ports.ArtifactStore {
		return cache.NewStore(dir, "", fingerprinter, logger)
	}
	return a
}

// WithStoreFactory overrides the artifact store constructor. Used in
// tests.
func (a *App) WithStoreFactory(f func(dir string) ports.ArtifactStore) *App {
	a.newStore = f
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// DryRun schedules everything but produces no artifacts and flushes
	// nothing.
	DryRun bool
	// NoCache reproduces every artifact even when it already exists.
	NoCache bool
}

// Run plans the named parts of the plan file (all parts when targets is
// empty), produces missing artifacts and finally garbage-collects stale
// cache entries. Parts are independent and are planned concurrently; the
// resource pool and the artifact store are shared.
func (a *App) Run(ctx context.Context, planPath string, targets []string, opts RunOptions) error {
	ctx, span := a.tracer.Start(ctx, "plan")
	defer span.End()

	plan, err := a.planLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	parts, err := selectParts(plan.Parts, targets)
	if err != nil {
		return err
	}

	resources := pool.Build(plan.Catalog)
	for _, kind := range []domain.Kind{domain.KindContour, domain.KindPocket, domain.KindDrill} {
		a.logger.Info(fmt.Sprintf("pool: %d %s candidates", resources.Size(kind), kind))
	}

	store := a.newStore(plan.CacheDir)
	if err := store.Scan(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range parts {
		part := parts[i]
		g.Go(func() error {
			return a.runPart(gctx, part, resources, store, opts)
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	if opts.DryRun {
		a.logger.Info("dry run, artifacts untouched")
		return nil
	}

	// Only now is the full active set known; anything still inactive is
	// from a previous run and can go.
	if err := store.FlushInactive(); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("parts", len(parts))
	return nil
}

// runPart schedules every setup of one part in declared order, carrying
// the machine-affinity cursor across setup boundaries, and produces the
// scheduled artifacts.
func (a *App) runPart(
	ctx context.Context,
	part domain.Part,
	resources *pool.Pool,
	store ports.ArtifactStore,
	opts RunOptions,
) error {
	ctx, span := a.tracer.Start(ctx, "part "+part.Name.String())
	defer span.End()

	var cursor domain.Cursor
	totalBatches := 0

	for _, setup := range part.Setups {
		batches, next, err := a.scheduler.Schedule(ctx, setup, resources, cursor)
		if err != nil {
			span.RecordError(err)
			return err
		}
		cursor = next
		totalBatches += len(batches)

		for bi := range batches {
			batch := &batches[bi]
			a.logger.Info(fmt.Sprintf(
				"%s: batch %d on shop %d machine %d (%d operations)",
				setup.ID, bi+1, batch.ShopID, batch.MachineID, len(batch.Operations),
			))
			if opts.DryRun {
				continue
			}
			for oi := range batch.Operations {
				if err := a.produceOperation(ctx, store, &batch.Operations[oi], opts); err != nil {
					span.RecordError(err)
					return err
				}
			}
		}
	}

	span.SetAttribute("batches", totalBatches)
	return nil
}

// produceOperation activates the operation's cache entry and produces the
// artifact when it is missing or fails verification. A poisoned entry is
// rebuilt exactly once; a second failure is a cache inconsistency.
func (a *App) produceOperation(
	ctx context.Context,
	store ports.ArtifactStore,
	op *domain.ScheduledOperation,
	opts RunOptions,
) error {
	name := op.Operation.Name.String()
	params := op.Operation.Params

	path, err := store.Activate(name, params)
	if err != nil {
		return err
	}
	op.ArtifactPath = path

	if !opts.NoCache {
		if _, statErr := os.Stat(path); statErr == nil {
			if verifyErr := a.producer.Verify(path); verifyErr == nil {
				a.logger.Info("cached artifact " + name)
				return nil
			}
			// Exists but unreadable: rebuild once.
			if err := store.Invalidate(name, params); err != nil {
				return err
			}
			if path, err = store.Activate(name, params); err != nil {
				return err
			}
		}
	}

	if err := a.producer.Produce(ctx, *op, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to produce artifact"), "operation", name)
	}
	if err := a.producer.Verify(path); err != nil {
		return zerr.With(domain.ErrCacheInconsistent, "operation", name)
	}

	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All removes the whole cache directory instead of only stale entries.
	All bool
}

// Clean removes cached artifacts. Without options it scans the cache and
// deletes everything, since nothing is active outside a run.
func (a *App) Clean(_ context.Context, planPath string, opts CleanOptions) error {
	plan, err := a.planLoader.Load(planPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	if opts.All {
		if err := os.RemoveAll(plan.CacheDir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove cache directory"), "dir", plan.CacheDir)
		}
		a.logger.Info("removed cache directory " + plan.CacheDir)
		return nil
	}

	store := a.newStore(plan.CacheDir)
	if err := store.Scan(); err != nil {
		return err
	}
	// No activations: every scanned entry is inactive and gets flushed.
	return store.FlushInactive()
}

func selectParts(parts []domain.Part, targets []string) ([]domain.Part, error) {
	if len(targets) == 0 {
		return parts, nil
	}

	wanted := make(map[string]bool, len(targets))
	for _, t := range targets {
		wanted[t] = true
	}

	selected := make([]domain.Part, 0, len(targets))
	for _, part := range parts {
		if wanted[part.Name.String()] {
			selected = append(selected, part)
		}
	}
	if len(selected) == 0 {
		return nil, zerr.With(domain.ErrNoPartsMatched, "targets", fmt.Sprintf("%v", targets))
	}
	return selected, nil
}
