package bootstrap_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/websurface/internal/application/port"
	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/bootstrap"
	"github.com/bnema/websurface/internal/bridge"
)

func TestRunHelperProcess_HostRoleIsNotHandled(t *testing.T) {
	loader := mocks.NewMockLibraryLoader(t)
	helper := mocks.NewMockHelperEngine(t)

	code, handled := bootstrap.RunHelperProcess(context.Background(), []string{"websurface", "run"}, bootstrap.HelperDeps{
		Loader: loader,
		Engine: helper,
	})

	assert.False(t, handled)
	assert.Equal(t, 0, code)
}

func TestRunHelperProcess_RoleAfterSeparatorIsIgnored(t *testing.T) {
	code, handled := bootstrap.RunHelperProcess(context.Background(),
		[]string{"websurface", "--", "--type=renderer"}, bootstrap.HelperDeps{})

	assert.False(t, handled)
	assert.Equal(t, 0, code)
}

func TestRunHelperProcess_RunsHelperWithRendererRouter(t *testing.T) {
	args := []string{"websurface", "--type=renderer"}
	loader := mocks.NewMockLibraryLoader(t)
	loader.EXPECT().LoadInHelper().Return(nil).Once()
	loader.EXPECT().Unload().Return().Once()

	helper := mocks.NewMockHelperEngine(t)
	helper.EXPECT().
		ExecuteHelper(mock.Anything, args, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, app port.HelperApp) int {
			router, ok := app.(*bridge.RendererRouter)
			assert.True(t, ok)
			assert.Equal(t, bridge.DefaultQueryFunction, router.Config().QueryFunction)
			return 0
		}).Once()

	code, handled := bootstrap.RunHelperProcess(context.Background(), args, bootstrap.HelperDeps{
		Loader: loader,
		Engine: helper,
		Router: bridge.DefaultRouterConfig(),
	})

	assert.True(t, handled)
	assert.Equal(t, 0, code)
}

func TestRunHelperProcess_PropagatesHelperExitCode(t *testing.T) {
	helper := mocks.NewMockHelperEngine(t)
	helper.EXPECT().ExecuteHelper(mock.Anything, mock.Anything, mock.Anything).Return(3).Once()

	code, handled := bootstrap.RunHelperProcess(context.Background(),
		[]string{"websurface", "--type=gpu-process"}, bootstrap.HelperDeps{Engine: helper})

	assert.True(t, handled)
	assert.Equal(t, 3, code)
}

func TestRunHelperProcess_LibraryFailureExitsWithOne(t *testing.T) {
	loader := mocks.NewMockLibraryLoader(t)
	loader.EXPECT().LoadInHelper().Return(errors.New("no such file")).Once()
	helper := mocks.NewMockHelperEngine(t)
	var stderr bytes.Buffer

	code, handled := bootstrap.RunHelperProcess(context.Background(),
		[]string{"websurface", "--type=renderer"}, bootstrap.HelperDeps{
			Loader: loader,
			Engine: helper,
			Stderr: &stderr,
		})

	assert.True(t, handled)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[websurface helper] failed to load engine library")
	assert.Contains(t, stderr.String(), "no such file")
	assert.Contains(t, stderr.String(), bootstrap.ErrLibraryUnavailable.Error())
}

func TestRunHelperProcess_MissingEngineExitsWithOne(t *testing.T) {
	var stderr bytes.Buffer

	code, handled := bootstrap.RunHelperProcess(context.Background(),
		[]string{"websurface", "--type=utility"}, bootstrap.HelperDeps{Stderr: &stderr})

	assert.True(t, handled)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "utility")
}
