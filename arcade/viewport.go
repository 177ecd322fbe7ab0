package arcade

import "math"

// Viewport is the visible window over the page. Width/Height are the window size,
// ScrollX/ScrollY the page offset of its top-left corner. The frame driver refreshes
// it once per frame and passes it into every update and spawn call.
type Viewport struct {
	Width, Height    float64
	ScrollX, ScrollY float64
}

// Left returns the page X of the viewport's left edge
func (v Viewport) Left() float64 { return v.ScrollX }

// Right returns the page X of the viewport's right edge
func (v Viewport) Right() float64 { return v.ScrollX + v.Width }

// Top returns the page Y of the viewport's top edge
func (v Viewport) Top() float64 { return v.ScrollY }

// Bottom returns the page Y of the viewport's bottom edge
func (v Viewport) Bottom() float64 { return v.ScrollY + v.Height }

// Center returns the page coordinates of the viewport center
func (v Viewport) Center() (float64, float64) {
	return v.ScrollX + v.Width/2, v.ScrollY + v.Height/2
}

// ToPage converts screen coordinates to page coordinates
func (v Viewport) ToPage(x, y float64) (float64, float64) {
	return x + v.ScrollX, y + v.ScrollY
}

// ToScreen converts page coordinates to screen coordinates
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return x - v.ScrollX, y - v.ScrollY
}

// Rect is an axis-aligned UI chrome region in page coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// ClosestPoint returns the point of r nearest to (x, y)
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return Clamp(x, r.Left, r.Right), Clamp(y, r.Top, r.Bottom)
}

// IntersectsCircle reports whether a circle overlaps r. Touching does not count.
func (r Rect) IntersectsCircle(x, y, radius float64) bool {
	cx, cy := r.ClosestPoint(x, y)
	return Distance(x, y, cx, cy) < radius
}

// intersectsAny reports whether the circle overlaps any of the rects
func intersectsAny(bounds []Rect, x, y, radius float64) bool {
	for _, r := range bounds {
		if r.IntersectsCircle(x, y, radius) {
			return true
		}
	}
	return false
}

// pushOut computes how to move a circle out of r along the axis of least
// penetration. It returns the displacement and which axis it applies to.
func pushOut(r Rect, x, y, radius float64) (dx, dy float64, alongX bool) {
	pushLeft := x + radius - r.Left
	pushRight := r.Right - (x - radius)
	pushUp := y + radius - r.Top
	pushDown := r.Bottom - (y - radius)

	penX := math.Min(pushLeft, pushRight)
	penY := math.Min(pushUp, pushDown)
	if penX < penY {
		if pushLeft < pushRight {
			return -pushLeft, 0, true
		}
		return pushRight, 0, true
	}
	if pushUp < pushDown {
		return 0, -pushUp, false
	}
	return 0, pushDown, false
}
