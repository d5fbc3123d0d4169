package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/engine"
	"github.com/bnema/websurface/internal/ui/mainloop"
)

type harness struct {
	eng          *mocks.MockEngine
	loader       *mocks.MockLibraryLoader
	constructed  int
	exitCodes    []int
	session      *engine.Session
	preflightRan int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		eng:    mocks.NewMockEngine(t),
		loader: mocks.NewMockLibraryLoader(t),
	}
	h.session = engine.NewSession(engine.Options{
		NewEngine: func(context.Context) (port.Engine, error) {
			h.constructed++
			return h.eng, nil
		},
		Loader: h.loader,
		Preflight: []engine.PreflightFunc{
			func(context.Context, port.EngineSettings) error {
				h.preflightRan++
				return nil
			},
		},
		Config:        engine.DefaultConfig(),
		Exit:          func(code int) { h.exitCodes = append(h.exitCodes, code) },
		ResourcesPath: func() string { return "/opt/app/resources" },
	})
	return h
}

func TestSession_InitializeIsIdempotent(t *testing.T) {
	// Arrange
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil).Once()
	h.eng.EXPECT().ExecuteProcess(mock.Anything).Return(-1).Once()
	h.eng.EXPECT().Initialize(mock.Anything, mock.Anything).Return(nil).Once()

	// Act
	first := h.session.Initialize(context.Background(), []string{"app"})
	second := h.session.Initialize(context.Background(), []string{"app"})

	// Assert
	assert.True(t, first)
	assert.True(t, second)
	assert.Equal(t, 1, h.constructed)
	assert.Equal(t, 1, h.preflightRan)
	assert.True(t, h.session.IsInitialized())
	assert.Empty(t, h.exitCodes)
}

func TestSession_InitializeBuildsSettings(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil)
	h.eng.EXPECT().ExecuteProcess(mock.Anything).Return(-1)

	var got port.EngineSettings
	h.eng.EXPECT().Initialize(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s port.EngineSettings) { got = s }).
		Return(nil)

	require.True(t, h.session.Initialize(context.Background(), nil))

	assert.True(t, got.NoSandbox)
	assert.True(t, got.ExternalMessagePump)
	assert.False(t, got.MultiThreadedMessageLoop)
	assert.Equal(t, "/opt/app/resources", got.ResourcesDir)
	assert.Equal(t, "/opt/app/resources/locales", got.LocalesDir)
	assert.True(t, got.HasSwitch(engine.SwitchAllowFileAccessFromFiles))
	assert.Equal(t, "/opt/app/resources", h.session.ResourcesDir())

	settings, err := h.session.Settings()
	require.NoError(t, err)
	assert.Equal(t, got, settings)
}

func TestSession_SecondaryProcessExits(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil)
	h.eng.EXPECT().ExecuteProcess([]string{"app", "--type=renderer"}).Return(0).Once()

	ok := h.session.Initialize(context.Background(), []string{"app", "--type=renderer"})

	assert.False(t, ok)
	assert.Equal(t, []int{0}, h.exitCodes)
	assert.False(t, h.session.IsInitialized())
}

func TestSession_InitializeFailureReleasesLoader(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil).Once()
	h.loader.EXPECT().Unload().Once()
	h.eng.EXPECT().ExecuteProcess(mock.Anything).Return(-1)
	h.eng.EXPECT().Initialize(mock.Anything, mock.Anything).Return(errors.New("no display"))

	assert.False(t, h.session.Initialize(context.Background(), nil))
	assert.False(t, h.session.IsInitialized())

	_, err := h.session.Engine()
	assert.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestSession_LoaderFailureStopsBeforeConstruction(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(errors.New("libwebkit missing")).Once()
	h.loader.EXPECT().Unload().Once()

	assert.False(t, h.session.Initialize(context.Background(), nil))
	assert.Zero(t, h.constructed)
}

func TestSession_ShutdownWithoutInitializeIsNoop(t *testing.T) {
	h := newHarness(t)

	assert.NotPanics(t, func() { h.session.Shutdown(context.Background()) })
	assert.NotPanics(t, func() { h.session.DoMessageLoopWork() })
	assert.False(t, h.session.IsInitialized())
}

func TestSession_ShutdownStopsEngine(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil)
	h.loader.EXPECT().Unload().Once()
	h.eng.EXPECT().ExecuteProcess(mock.Anything).Return(-1)
	h.eng.EXPECT().Initialize(mock.Anything, mock.Anything).Return(nil)
	h.eng.EXPECT().Shutdown().Once()

	require.True(t, h.session.Initialize(context.Background(), nil))
	h.session.Shutdown(context.Background())
	h.session.Shutdown(context.Background())

	assert.False(t, h.session.IsInitialized())
	assert.False(t, h.session.Initialize(context.Background(), nil))
}

func TestSession_PumpRunsUntilShutdown(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().LoadInMain().Return(nil)
	h.loader.EXPECT().Unload()
	h.eng.EXPECT().ExecuteProcess(mock.Anything).Return(-1)
	h.eng.EXPECT().Initialize(mock.Anything, mock.Anything).Return(nil)
	h.eng.EXPECT().DoMessageLoopWork().Times(3)
	h.eng.EXPECT().Shutdown()

	q := mainloop.NewQueue()
	require.True(t, h.session.Initialize(context.Background(), nil))
	h.session.StartPump(q, 0)

	q.Advance(3 * engine.DefaultPumpInterval)
	h.session.Shutdown(context.Background())
	q.Advance(time.Second)
}
