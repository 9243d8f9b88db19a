package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/camplan/internal/adapters/config"
	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const planFixture = `
version: "1"
cache:
  dir: out/artifacts
shops:
  - id: 0
    name: main
    machines:
      - id: 0
        name: haas-vf2
        controller: haas-ngc
        tools:
          - number: 1
            type: end_mill
            diameter: 6
            usable_length: 25
            priority:
              contour: -10
              pocket: -8
          - number: 2
            type: drill
            diameter: 5
            usable_length: 40
            priority:
              drill: -20
parts:
  - name: bracket
    setups:
      - id: top
        operations:
          - name: outline
            kind: contour
            depth: 10
            profile:
              min_internal_radius: 4
              min_external_radius: 2
              area: 1200
              perimeter: 180
          - name: holes
            kind: drill
            fence: 1
            depth: 8
            diameter: 5
            positions:
              - [10, 20]
              - [30, 20]
          - name: old-slot
            kind: pocket
            depth: 6
            disabled: true
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "camplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)
	plan, err := loader.Load(writePlan(t, planFixture))
	require.NoError(t, err)

	assert.Equal(t, "out/artifacts", plan.CacheDir)

	require.Len(t, plan.Catalog.Shops, 1)
	machine := plan.Catalog.Shops[0].Machines[0]
	assert.Equal(t, "haas-ngc", machine.Controller)
	require.Len(t, machine.Tools, 2)

	mill := machine.Tools[0]
	assert.Equal(t, domain.ToolEndMill, mill.Type)
	assert.Equal(t, -10.0, mill.Priorities[domain.KindContour])
	assert.Equal(t, -8.0, mill.Priorities[domain.KindPocket])
	_, drills := mill.Priorities[domain.KindDrill]
	assert.False(t, drills, "no drill entry means the mill is never a drill candidate")

	require.Len(t, plan.Parts, 1)
	part := plan.Parts[0]
	assert.Equal(t, "bracket", part.Name.String())
	require.Len(t, part.Setups, 1)

	setup := part.Setups[0]
	assert.Equal(t, "bracket.top", setup.ID.String())
	require.Len(t, setup.Operations, 3)

	outline := setup.Operations[0]
	assert.Equal(t, "bracket.top.outline", outline.Name.String())
	assert.Equal(t, domain.KindContour, outline.Kind)
	assert.Equal(t, 4.0, outline.MinInternalRadius)
	assert.Equal(t, 2.0, outline.MinExternalRadius)
	assert.True(t, outline.Active)

	holes := setup.Operations[1]
	assert.Equal(t, 1, holes.Fence)
	assert.Equal(t, 5.0, holes.HoleDiameter)
	assert.False(t, holes.Threaded)

	assert.False(t, setup.Operations[2].Active, "disabled flips to inactive")
}

func TestLoad_ParamsCaptureGeometryOnly(t *testing.T) {
	t.Parallel()

	const drillPlan = `
parts:
  - name: p
    setups:
      - id: s
        operations:
          - name: holes
            kind: drill
            fence: %FENCE%
            depth: 8
            diameter: 5
            positions:
              - [10, 20]
`
	loader := newTestLoader(t)

	load := func(content string) domain.Operation {
		plan, err := loader.Load(writePlan(t, content))
		require.NoError(t, err)
		return plan.Parts[0].Setups[0].Operations[0]
	}

	fence0 := load(strings.ReplaceAll(drillPlan, "%FENCE%", "0"))
	fence3 := load(strings.ReplaceAll(drillPlan, "%FENCE%", "3"))

	// Moving an operation between fences re-orders the schedule but must
	// not invalidate its cached artifact.
	assert.NotEqual(t, fence0.Fence, fence3.Fence)
	assert.Equal(t,
		domain.CanonicalBytes(fence0.Params),
		domain.CanonicalBytes(fence3.Params),
	)

	// Depth changes the produced geometry, so it must show up.
	deeper := load(strings.ReplaceAll(
		strings.ReplaceAll(drillPlan, "%FENCE%", "0"), "depth: 8", "depth: 9"))
	assert.NotEqual(t,
		domain.CanonicalBytes(fence0.Params),
		domain.CanonicalBytes(deeper.Params),
	)
}

func TestLoad_DefaultCacheDir(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)
	plan, err := loader.Load(writePlan(t, "version: \"1\"\nshops: []\nparts: []\n"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultCacheDir, plan.CacheDir)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown operation kind",
			content: "parts:\n  - name: p\n    setups:\n      - id: s\n        operations:\n          - name: op\n            kind: engrave\n",
			wantErr: domain.ErrUnknownKind,
		},
		{
			name:    "unknown tool type",
			content: "shops:\n  - id: 0\n    machines:\n      - id: 0\n        tools:\n          - number: 1\n            type: laser\n",
			wantErr: domain.ErrUnknownToolType,
		},
		{
			name:    "unknown priority kind",
			content: "shops:\n  - id: 0\n    machines:\n      - id: 0\n        tools:\n          - number: 1\n            type: drill\n            priority:\n              engrave: -1\n",
			wantErr: domain.ErrUnknownKind,
		},
		{
			name:    "duplicate part name",
			content: "parts:\n  - name: p\n  - name: p\n",
			wantErr: domain.ErrDuplicateName,
		},
		{
			name:    "duplicate setup id",
			content: "parts:\n  - name: p\n    setups:\n      - id: s\n      - id: s\n",
			wantErr: domain.ErrDuplicateName,
		},
		{
			name:    "duplicate operation name",
			content: "parts:\n  - name: p\n    setups:\n      - id: s\n        operations:\n          - name: op\n            kind: drill\n          - name: op\n            kind: drill\n",
			wantErr: domain.ErrDuplicateName,
		},
		{
			name:    "operation name with fingerprint separator",
			content: "parts:\n  - name: p\n    setups:\n      - id: s\n        operations:\n          - name: a__b\n            kind: drill\n",
			wantErr: domain.ErrInvalidOperationName,
		},
		{
			name:    "part name with path separator",
			content: "parts:\n  - name: p/q\n",
			wantErr: domain.ErrInvalidOperationName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loader := newTestLoader(t)
			_, err := loader.Load(writePlan(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t)
	_, err := loader.Load(writePlan(t, "shops: [unclosed"))
	require.Error(t, err)
}
