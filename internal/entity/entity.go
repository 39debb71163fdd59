// Package entity provides the rectangular game objects that make up the
// playfield: paddles, the ball and the center divider.
package entity

import "image/color"

// Rect is an axis-aligned box with a top-left origin.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside r. Edges are inclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left() && px <= r.Right() && py >= r.Top() && py <= r.Bottom()
}

// CenteredRect returns a width x height box centered on (cx, cy).
func CenteredRect(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// GameObject is a colored rectangle whose position changes every tick.
// Its size is fixed when it is created.
type GameObject struct {
	Color color.Color
	X, Y  float64

	width, height float64
}

// NewGameObject creates an object of the given size at (x, y).
// Positions are not validated; anything off the playfield simply is not seen.
func NewGameObject(clr color.Color, width, height, x, y float64) *GameObject {
	return &GameObject{
		Color:  clr,
		X:      x,
		Y:      y,
		width:  width,
		height: height,
	}
}

// Width returns the object's width.
func (o *GameObject) Width() float64 { return o.width }

// Height returns the object's height.
func (o *GameObject) Height() float64 { return o.height }

// Right returns the x coordinate of the object's right edge.
func (o *GameObject) Right() float64 { return o.X + o.width }

// Bottom returns the y coordinate of the object's bottom edge.
func (o *GameObject) Bottom() float64 { return o.Y + o.height }

// Bounds returns (X, Y, Width, Height) as a Rect.
func (o *GameObject) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.width, Height: o.height}
}

// SpansY reports whether y lies within the object's vertical extent,
// edges included.
func (o *GameObject) SpansY(y float64) bool {
	return o.Y <= y && y <= o.Bottom()
}
