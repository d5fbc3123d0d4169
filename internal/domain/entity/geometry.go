// Package entity defines domain entities for the web surface.
package entity

// Size is a width/height pair in device-independent pixels.
type Size struct {
	W, H int
}

// Rect is a rectangle in the host window's coordinate space.
// JSON field names match the bounds object reported by web layout code.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// IsActive reports whether the rectangle has a strictly positive area.
// Inactive rectangles are never applied to native widgets.
func (r Rect) IsActive() bool {
	return r.W > 0 && r.H > 0
}

// Clamped returns r with every negative field raised to zero.
func (r Rect) Clamped() Rect {
	return Rect{X: max(r.X, 0), Y: max(r.Y, 0), W: max(r.W, 0), H: max(r.H, 0)}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}
