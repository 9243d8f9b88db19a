// Package scheduler assigns a concrete (shop, machine, tool) resource to
// every operation of a workholding setup and splits the setup into
// machine-homogeneous batches, preferring continuity with the machine that
// is already running.
package scheduler

import (
	"context"
	"fmt"
	"math"

	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/camplan/internal/engine/ordering"
	"go.trai.ch/camplan/internal/engine/pool"
	"go.trai.ch/zerr"
)

// diameterTolerance absorbs float noise when comparing tool diameters
// against hole diameters and corner radius bounds.
const diameterTolerance = 1e-6

// Scheduler matches operations to resources. It is stateless between
// calls; the machine-affinity cursor is explicit input and output.
type Scheduler struct {
	logger ports.Logger
	tracer ports.Tracer
}

// NewScheduler creates a new Scheduler.
func NewScheduler(logger ports.Logger, tracer ports.Tracer) *Scheduler {
	return &Scheduler{logger: logger, tracer: tracer}
}

// plannedOp is one operation with its filtered candidates and sort key.
type plannedOp struct {
	op         domain.Operation
	candidates []domain.Candidate
	phase      domain.Phase
	key        domain.OrderingKey
	downgraded bool
}

// OrderingKey implements ordering.Keyed.
func (p plannedOp) OrderingKey() domain.OrderingKey { return p.key }

// Schedule plans one setup. It returns the ordered machine-homogeneous
// batches and the updated cursor. On any failure no partial batches are
// returned and the cursor is unchanged.
//
// The sweep is greedy: it guarantees first-fit continuity with the current
// machine, not a globally minimal number of machine switches.
func (s *Scheduler) Schedule(
	ctx context.Context,
	setup domain.Setup,
	resources *pool.Pool,
	cursor domain.Cursor,
) ([]domain.Batch, domain.Cursor, error) {
	ctx, span := s.tracer.Start(ctx, "schedule "+setup.ID.String())
	defer span.End()

	planned, err := s.planOperations(setup, resources)
	if err != nil {
		span.RecordError(err)
		return nil, cursor, err
	}

	ordering.SortStable(planned)
	s.emitPlan(ctx, planned)

	batches, next, err := s.sweep(planned, cursor)
	if err != nil {
		span.RecordError(err)
		return nil, cursor, err
	}

	span.SetAttribute("operations", len(planned))
	span.SetAttribute("batches", len(batches))
	return batches, next, nil
}

// planOperations filters candidates for every active operation, applies
// the drill-to-pocket degradation and computes the ordering key from each
// operation's best candidate.
func (s *Scheduler) planOperations(setup domain.Setup, resources *pool.Pool) ([]plannedOp, error) {
	planned := make([]plannedOp, 0, len(setup.Operations))

	for _, op := range setup.Operations {
		if !op.Active {
			continue
		}

		candidates := matchCandidates(resources, op)
		downgraded := false

		if len(candidates) == 0 && op.Kind == domain.KindDrill && !op.Threaded {
			// No drill bit of this diameter anywhere: mill the hole as a
			// round pocket instead. Intentional fallback, logged not raised.
			op = op.AsPocket()
			candidates = matchCandidates(resources, op)
			downgraded = true
			if len(candidates) > 0 {
				s.logger.Warn(fmt.Sprintf(
					"operation %s: no drill bit for diameter %.3f, milling as pocket",
					op.Name, op.HoleDiameter,
				))
			}
		}

		if len(candidates) == 0 {
			return nil, noCandidateError(op)
		}

		best := candidates[0]
		phase, err := ordering.PhaseFor(op.Kind, best.Tool.Type)
		if err != nil {
			return nil, zerr.With(err, "operation", op.Name.String())
		}

		planned = append(planned, plannedOp{
			op:         op,
			candidates: candidates,
			phase:      phase,
			key:        ordering.KeyFor(op, phase, best),
			downgraded: downgraded,
		})
	}

	return planned, nil
}

// sweep walks the key-sorted operations, picking for each the candidate
// closest to the cursor: same machine, then same shop, then any. A batch
// closes on every machine change.
func (s *Scheduler) sweep(planned []plannedOp, cursor domain.Cursor) ([]domain.Batch, domain.Cursor, error) {
	var batches []domain.Batch
	var current *domain.Batch

	for _, p := range planned {
		chosen := pickCandidate(p.candidates, cursor)

		phase, err := ordering.PhaseFor(p.op.Kind, chosen.Tool.Type)
		if err != nil {
			return nil, cursor, zerr.With(err, "operation", p.op.Name.String())
		}

		if current == nil || !chosen.SameMachine(current.ShopID, current.MachineID) {
			if current != nil {
				batches = append(batches, *current)
			}
			current = &domain.Batch{ShopID: chosen.ShopID, MachineID: chosen.MachineID}
		}
		cursor = domain.Cursor{ShopID: chosen.ShopID, MachineID: chosen.MachineID, Valid: true}

		current.Operations = append(current.Operations, domain.ScheduledOperation{
			Operation:  p.op,
			Binding:    domain.Binding{Candidate: chosen, Controller: chosen.Controller},
			Phase:      phase,
			Downgraded: p.downgraded,
		})
	}

	if current != nil {
		batches = append(batches, *current)
	}

	return batches, cursor, nil
}

// pickCandidate returns the first candidate on the cursor's machine, else
// the first in the cursor's shop, else the overall best. Candidate lists
// are sorted by priority then shop, machine and tool number, so every tie
// resolves to the lowest tool number.
func pickCandidate(candidates []domain.Candidate, cursor domain.Cursor) domain.Candidate {
	if cursor.Valid {
		for _, c := range candidates {
			if c.SameMachine(cursor.ShopID, cursor.MachineID) {
				return c
			}
		}
		for _, c := range candidates {
			if c.ShopID == cursor.ShopID {
				return c
			}
		}
	}
	return candidates[0]
}

// matchCandidates filters the kind's candidate list against the
// operation's geometric constraints.
func matchCandidates(resources *pool.Pool, op domain.Operation) []domain.Candidate {
	list := resources.Candidates(op.Kind)
	matched := make([]domain.Candidate, 0, len(list))

	for _, c := range list {
		if c.Tool.UsableLength+diameterTolerance < op.Depth {
			continue
		}
		if !diameterFits(op, c.Tool) {
			continue
		}
		matched = append(matched, c)
	}

	return matched
}

// diameterFits applies the kind-specific diameter rule: contour and pocket
// tools must fit the tightest inside corner, drill bits and taps must hit
// the hole diameter exactly.
func diameterFits(op domain.Operation, tool *domain.Tool) bool {
	switch op.Kind {
	case domain.KindContour, domain.KindPocket:
		if op.MinInternalRadius <= 0 {
			return true
		}
		return tool.Diameter <= 2*op.MinInternalRadius+diameterTolerance
	case domain.KindDrill:
		want := domain.ToolDrill
		if op.Threaded {
			want = domain.ToolTap
		}
		if tool.Type != want {
			return false
		}
		return math.Abs(tool.Diameter-op.HoleDiameter) <= diameterTolerance
	default:
		return false
	}
}

func noCandidateError(op domain.Operation) error {
	err := zerr.With(domain.ErrNoCandidateResource, "operation", op.Name.String())
	err = zerr.With(err, "kind", string(op.Kind))
	err = zerr.With(err, "depth", op.Depth)
	if op.Kind == domain.KindDrill {
		return zerr.With(err, "hole_diameter", op.HoleDiameter)
	}
	return zerr.With(err, "max_tool_diameter", 2*op.MinInternalRadius)
}

func (s *Scheduler) emitPlan(ctx context.Context, planned []plannedOp) {
	names := make([]string, len(planned))
	for i, p := range planned {
		names[i] = p.op.Name.String()
	}
	s.tracer.EmitPlan(ctx, names)
}
