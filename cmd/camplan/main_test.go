package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/camplan/internal/adapters/fingerprint"
	"go.trai.ch/camplan/internal/adapters/geom"
	"go.trai.ch/camplan/internal/adapters/telemetry"
	"go.trai.ch/camplan/internal/app"
	"go.trai.ch/camplan/internal/core/ports/mocks"
	"go.trai.ch/camplan/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T, expectError bool) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	if expectError {
		logger.EXPECT().Error(gomock.Any())
	}

	loader := mocks.NewMockPlanLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("boom")).AnyTimes()

	tracer := telemetry.NewNoOpTracer()
	a := app.New(
		loader,
		scheduler.NewScheduler(logger, tracer),
		geom.NewDescriptionProducer(logger),
		fingerprint.NewHasher(),
		logger,
		tracer,
	)
	return func(context.Context) (*app.Components, error) {
		return &app.Components{App: a, Logger: logger}, nil
	}
}

func TestRun_VersionExitsZero(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, testProvider(t, false))
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRun_CommandErrorExitsOne(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"run"}, &stderr, testProvider(t, true))
	assert.Equal(t, 1, code)
}

func TestRun_ProviderFailureExitsOne(t *testing.T) {
	t.Parallel()

	provider := func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	}

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, provider)
	require.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}
