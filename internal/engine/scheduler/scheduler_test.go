package scheduler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/camplan/internal/adapters/telemetry"
	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/engine/pool"
	"go.trai.ch/camplan/internal/engine/scheduler"
)

// recordingLogger captures warnings so degradation paths can be asserted.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Info(string) {}
func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
func (l *recordingLogger) Error(error) {}

func newTestScheduler() (*scheduler.Scheduler, *recordingLogger) {
	log := &recordingLogger{}
	return scheduler.NewScheduler(log, telemetry.NewNoOpTracer()), log
}

// twoMachineCatalog: machine A (shop 0, machine 0) mills and drills 5mm;
// machine B (shop 0, machine 1) only drills 3mm.
func twoMachineCatalog() domain.Catalog {
	return domain.Catalog{Shops: []domain.Shop{{
		ID: 0, Name: "main",
		Machines: []domain.Machine{
			{
				ID: 0, Name: "machine-a", Controller: "ctl-a",
				Tools: []domain.Tool{
					{
						Number: 1, Type: domain.ToolEndMill, Diameter: 6, UsableLength: 25,
						Priorities: map[domain.Kind]float64{domain.KindContour: -10, domain.KindPocket: -8},
					},
					{
						Number: 2, Type: domain.ToolDrill, Diameter: 5, UsableLength: 40,
						Priorities: map[domain.Kind]float64{domain.KindDrill: -20},
					},
				},
			},
			{
				ID: 1, Name: "machine-b", Controller: "ctl-b",
				Tools: []domain.Tool{
					{
						Number: 1, Type: domain.ToolDrill, Diameter: 3, UsableLength: 30,
						Priorities: map[domain.Kind]float64{domain.KindDrill: -20},
					},
				},
			},
		},
	}}}
}

func contourOp(name string, fence int, depth, minInternalRadius float64) domain.Operation {
	return domain.Operation{
		Name:              domain.NewInternedString(name),
		Fence:             fence,
		Kind:              domain.KindContour,
		Depth:             depth,
		MinInternalRadius: minInternalRadius,
		Active:            true,
		Params:            domain.List{domain.Str("contour"), domain.Num(depth)},
	}
}

func pocketOp(name string, fence int, depth, minInternalRadius float64) domain.Operation {
	op := contourOp(name, fence, depth, minInternalRadius)
	op.Kind = domain.KindPocket
	op.Params = domain.List{domain.Str("pocket"), domain.Num(depth)}
	return op
}

func drillOp(name string, fence int, depth, diameter float64) domain.Operation {
	return domain.Operation{
		Name:         domain.NewInternedString(name),
		Fence:        fence,
		Kind:         domain.KindDrill,
		Depth:        depth,
		HoleDiameter: diameter,
		Active:       true,
		Params:       domain.List{domain.Str("drill"), domain.Num(depth), domain.Num(diameter)},
	}
}

func setupOf(id string, ops ...domain.Operation) domain.Setup {
	return domain.Setup{ID: domain.NewInternedString(id), Operations: ops}
}

func opNames(batch domain.Batch) []string {
	names := make([]string, len(batch.Operations))
	for i, op := range batch.Operations {
		names[i] = op.Operation.Name.String()
	}
	return names
}

func TestSchedule_SingleMachineSingleBatch(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler()
	resources := pool.Build(twoMachineCatalog())

	// All three operations match machine A.
	setup := setupOf("bracket.top",
		drillOp("holes", 0, 8, 5),
		contourOp("outline", 0, 10, 4),
		pocketOp("slot", 0, 6, 4),
	)

	batches, cursor, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
	require.NoError(t, err)
	require.Len(t, batches, 1)

	batch := batches[0]
	assert.Equal(t, 0, batch.ShopID)
	assert.Equal(t, 0, batch.MachineID)
	// Phase order regardless of declaration order.
	assert.Equal(t, []string{"outline", "slot", "holes"}, opNames(batch))

	assert.True(t, cursor.Valid)
	assert.Equal(t, 0, cursor.MachineID)

	for _, op := range batch.Operations {
		assert.Equal(t, batch.ShopID, op.Binding.Candidate.ShopID)
		assert.Equal(t, batch.MachineID, op.Binding.Candidate.MachineID)
		assert.Equal(t, "ctl-a", op.Binding.Controller)
	}
}

func TestSchedule_FenceForcesMachineSwitch(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler()
	resources := pool.Build(twoMachineCatalog())

	// Fence 0: contour and pocket both match machine A.
	// Fence 1: the 3mm drill matches only machine B.
	setup := setupOf("bracket.top",
		contourOp("outline", 0, 10, 4),
		pocketOp("slot", 0, 6, 4),
		drillOp("pin-holes", 1, 8, 3),
	)

	batches, cursor, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
	require.NoError(t, err)
	require.Len(t, batches, 2)

	assert.Equal(t, []string{"outline", "slot"}, opNames(batches[0]))
	assert.Equal(t, 0, batches[0].MachineID)

	assert.Equal(t, []string{"pin-holes"}, opNames(batches[1]))
	assert.Equal(t, 1, batches[1].MachineID)

	assert.Equal(t, 1, cursor.MachineID)
}

func TestSchedule_AlternatingMachinesOneBatchEach(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler()
	resources := pool.Build(twoMachineCatalog())

	// Fences force the order; diameters alternate between the disjoint
	// drill pools of machine A (5mm) and machine B (3mm).
	setup := setupOf("plate.top",
		drillOp("a1", 0, 8, 5),
		drillOp("b1", 1, 8, 3),
		drillOp("a2", 2, 8, 5),
		drillOp("b2", 3, 8, 3),
	)

	batches, _, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
	require.NoError(t, err)
	require.Len(t, batches, 4, "every operation forces a machine switch")

	var all []string
	for _, b := range batches {
		require.Len(t, b.Operations, 1)
		all = append(all, opNames(b)...)
	}
	assert.Equal(t, []string{"a1", "b1", "a2", "b2"}, all)
}

func TestSchedule_CursorPrefersRunningMachine(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler()

	// Both machines can drill 5mm; machine 1 has the better priority and
	// would win without a cursor.
	catalog := domain.Catalog{Shops: []domain.Shop{{
		ID: 0,
		Machines: []domain.Machine{
			{ID: 0, Controller: "ctl-a", Tools: []domain.Tool{{
				Number: 1, Type: domain.ToolDrill, Diameter: 5, UsableLength: 40,
				Priorities: map[domain.Kind]float64{domain.KindDrill: -10},
			}}},
			{ID: 1, Controller: "ctl-b", Tools: []domain.Tool{{
				Number: 1, Type: domain.ToolDrill, Diameter: 5, UsableLength: 40,
				Priorities: map[domain.Kind]float64{domain.KindDrill: -20},
			}}},
		},
	}}}
	resources := pool.Build(catalog)
	setup := setupOf("plate.bottom", drillOp("holes", 0, 8, 5))

	t.Run("without cursor the best priority wins", func(t *testing.T) {
		t.Parallel()
		batches, _, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
		require.NoError(t, err)
		require.Len(t, batches, 1)
		assert.Equal(t, 1, batches[0].MachineID)
	})

	t.Run("with cursor continuity beats priority", func(t *testing.T) {
		t.Parallel()
		cursor := domain.Cursor{ShopID: 0, MachineID: 0, Valid: true}
		batches, next, err := s.Schedule(context.Background(), setup, resources, cursor)
		require.NoError(t, err)
		require.Len(t, batches, 1)
		assert.Equal(t, 0, batches[0].MachineID, "stays on the running machine")
		assert.Equal(t, cursor, next)
	})
}

func TestSchedule_DrillDowngradesToPocket(t *testing.T) {
	t.Parallel()

	s, log := newTestScheduler()
	resources := pool.Build(twoMachineCatalog())

	// 7mm hole: no 7mm drill bit anywhere, but the 6mm end mill fits a
	// 3.5mm corner radius pocket.
	setup := setupOf("bracket.top", drillOp("big-hole", 0, 8, 7))

	batches, _, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Operations, 1)

	op := batches[0].Operations[0]
	assert.True(t, op.Downgraded)
	assert.Equal(t, domain.KindPocket, op.Operation.Kind)
	assert.Equal(t, domain.PhasePocket, op.Phase)
	assert.Equal(t, 8.0, op.Operation.Depth, "depth preserved")
	assert.Equal(t, 3.5, op.Operation.MinInternalRadius)
	assert.Equal(t, domain.ToolEndMill, op.Binding.Candidate.Tool.Type)

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "big-hole")
}

func TestSchedule_BatchConcatenationPreservesOrder(t *testing.T) {
	t.Parallel()

	s, _ := newTestScheduler()
	resources := pool.Build(twoMachineCatalog())

	setup := setupOf("bracket.top",
		drillOp("b-holes", 0, 8, 3),
		contourOp("outline", 0, 10, 4),
		drillOp("a-holes", 0, 8, 5),
		pocketOp("slot", 0, 6, 4),
	)

	batches, _, err := s.Schedule(context.Background(), setup, resources, domain.Cursor{})
	require.NoError(t, err)

	var concat []string
	for _, b := range batches {
		for _, op := range b.Operations {
			assert.Equal(t, b.ShopID, op.Binding.Candidate.ShopID)
			assert.Equal(t, b.MachineID, op.Binding.Candidate.MachineID)
		}
		concat = append(concat, opNames(b)...)
	}

	// The OrderingKey sequence: contour, pocket, then drills; the 5mm
	// drill lands on machine A, the 3mm drill on machine B.
	assert.Equal(t, []string{"outline", "slot", "a-holes", "b-holes"}, concat)
}
