package surface_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/websurface/internal/application/port/mocks"
	"github.com/bnema/websurface/internal/domain/entity"
	"github.com/bnema/websurface/internal/surface"
)

func TestCompositor_UpdateHoleBoundsMovesWidget(t *testing.T) {
	// Arrange
	c := surface.NewCompositor(context.Background())
	w := mocks.NewMockNativeWidget(t)
	w.EXPECT().SetPosition(10, 20).Once()
	w.EXPECT().SetSize(100, 50).Once()
	c.RegisterHole("x", w)

	// Act
	ok := c.UpdateHoleBounds("x", entity.Rect{X: 10, Y: 20, W: 100, H: 50})

	// Assert
	assert.True(t, ok)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, W: 100, H: 50}, c.HoleBounds("x"))
}

func TestCompositor_UnknownIDHasNoEffect(t *testing.T) {
	c := surface.NewCompositor(context.Background())
	w := mocks.NewMockNativeWidget(t)
	c.RegisterHole("x", w)

	assert.False(t, c.UpdateHoleBounds("y", entity.Rect{X: 1, Y: 1, W: 1, H: 1}))
	assert.Equal(t, entity.Rect{}, c.HoleBounds("y"))
	assert.Equal(t, entity.Rect{}, c.HoleBounds("x"))
}

func TestCompositor_InactiveBoundsLeaveWidgetUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		bounds entity.Rect
		want   entity.Rect
	}{
		{name: "all zero", bounds: entity.Rect{}, want: entity.Rect{}},
		{name: "zero width", bounds: entity.Rect{X: 5, Y: 5, W: 0, H: 40}, want: entity.Rect{X: 5, Y: 5, W: 0, H: 40}},
		{name: "zero height", bounds: entity.Rect{X: 5, Y: 5, W: 40, H: 0}, want: entity.Rect{X: 5, Y: 5, W: 40, H: 0}},
		{name: "negative width", bounds: entity.Rect{X: 5, Y: 5, W: -1, H: 40}, want: entity.Rect{X: 5, Y: 5, W: 0, H: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := surface.NewCompositor(context.Background())
			w := mocks.NewMockNativeWidget(t)
			c.RegisterHole("x", w)

			assert.True(t, c.UpdateHoleBounds("x", tt.bounds))
			assert.Equal(t, tt.want, c.HoleBounds("x"))
			w.AssertNotCalled(t, "SetPosition", mock.Anything, mock.Anything)
			w.AssertNotCalled(t, "SetSize", mock.Anything, mock.Anything)
		})
	}
}

func TestCompositor_NegativeOriginIsClamped(t *testing.T) {
	c := surface.NewCompositor(context.Background())
	w := mocks.NewMockNativeWidget(t)
	w.EXPECT().SetPosition(0, 0).Once()
	w.EXPECT().SetSize(100, 50).Once()
	c.RegisterHole("x", w)

	assert.True(t, c.UpdateHoleBounds("x", entity.Rect{X: -40, Y: -12, W: 100, H: 50}))
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 100, H: 50}, c.HoleBounds("x"))
}

func TestCompositor_RegisterReplacesAndResetsBounds(t *testing.T) {
	c := surface.NewCompositor(context.Background())
	first := mocks.NewMockNativeWidget(t)
	first.EXPECT().SetPosition(1, 2).Once()
	first.EXPECT().SetSize(3, 4).Once()
	c.RegisterHole("x", first)
	c.UpdateHoleBounds("x", entity.Rect{X: 1, Y: 2, W: 3, H: 4})

	second := mocks.NewMockNativeWidget(t)
	c.RegisterHole("x", second)

	assert.Equal(t, entity.Rect{}, c.HoleBounds("x"))
	assert.Zero(t, c.RepositionNativePanels())
	assert.Len(t, c.Holes(), 1)
}

func TestCompositor_RepositionPassCoversActiveRegionsOnly(t *testing.T) {
	c := surface.NewCompositor(context.Background())
	active := mocks.NewMockNativeWidget(t)
	idle := mocks.NewMockNativeWidget(t)
	c.RegisterHole("preview", active)
	c.RegisterHole("device", idle)

	active.EXPECT().SetPosition(0, 46).Times(2)
	active.EXPECT().SetSize(640, 480).Times(2)
	c.UpdateHoleBounds("preview", entity.Rect{X: 0, Y: 46, W: 640, H: 480})

	assert.Equal(t, 1, c.RepositionNativePanels())
}

func TestCompositor_Unregister(t *testing.T) {
	c := surface.NewCompositor(context.Background())
	c.RegisterHole("x", mocks.NewMockNativeWidget(t))

	assert.True(t, c.UnregisterHole("x"))
	assert.False(t, c.UnregisterHole("x"))
	assert.False(t, c.UpdateHoleBounds("x", entity.Rect{W: 1, H: 1}))
	assert.Empty(t, c.Holes())
}
