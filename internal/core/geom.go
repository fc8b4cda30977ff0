// Package core provides host-side primitives for the biomass terminal host:
// a colored screen buffer, layout rectangles, input actions and run status.
// It has no Bubble Tea dependency so hosts can be tested headlessly.
package core

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// SplitColumns cuts the rectangle into a left part of width w and the remainder.
func (r Rect) SplitColumns(w int) (left, right Rect) {
	w = Clamp(w, 0, r.W)
	return Rect{X: r.X, Y: r.Y, W: w, H: r.H}, Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
}

// SplitRows cuts the rectangle into a top part of height h and the remainder.
func (r Rect) SplitRows(h int) (top, bottom Rect) {
	h = Clamp(h, 0, r.H)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h}, Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// Viewport maps a world rectangle centred on the origin onto screen cells.
type Viewport struct {
	Area       Rect    // Target cells
	HalfWidth  float64 // World half extent on X
	HalfHeight float64 // World half extent on Y
}

// Project converts world coordinates to a cell inside Area.
// Points outside the world are clamped to the nearest edge cell.
// World Y grows upward, screen rows grow downward.
func (v Viewport) Project(wx, wy float64) (int, int) {
	if v.Area.Empty() || v.HalfWidth <= 0 || v.HalfHeight <= 0 {
		return v.Area.X, v.Area.Y
	}
	fx := (ClampF(wx, -v.HalfWidth, v.HalfWidth) + v.HalfWidth) / (2 * v.HalfWidth)
	fy := (v.HalfHeight - ClampF(wy, -v.HalfHeight, v.HalfHeight)) / (2 * v.HalfHeight)

	x := v.Area.X + Clamp(int(fx*float64(v.Area.W)), 0, v.Area.W-1)
	y := v.Area.Y + Clamp(int(fy*float64(v.Area.H)), 0, v.Area.H-1)
	return x, y
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// ClampF restricts val to [lo, hi]. NaN maps to lo.
func ClampF(val, lo, hi float64) float64 {
	if val != val || val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
