// Package rendertest provides in-memory implementations of the render
// interfaces for tests that must not open a window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/pong/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// GeoM is a translation-only matrix.
type GeoM struct {
	TX, TY float64
}

// Translate shifts the matrix by (tx, ty).
func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

// Reset resets the matrix to identity.
func (g *GeoM) Reset() {
	g.TX, g.TY = 0, 0
}

// Rect is a filled rectangle recorded by Renderer.FillRect.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

// Blit is an image drawn onto another image.
type Blit struct {
	Src    *Image
	TX, TY float64
}

// Image records every operation applied to it.
type Image struct {
	W, H     int
	Label    string
	FillWith color.Color
	Rects    []Rect
	Blits    []Blit
	Disposed bool
}

// NewImage returns a blank image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

// Bounds returns the bounds of the image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Size returns the width and height of the image.
func (i *Image) Size() (int, int) {
	return i.W, i.H
}

// Fill records a fill and drops everything drawn before it.
func (i *Image) Fill(clr color.Color) {
	i.FillWith = clr
	i.Rects = nil
	i.Blits = nil
}

// Clear fills the image with transparent color.
func (i *Image) Clear() {
	i.Fill(color.Transparent)
}

// DrawImage records src at the translation carried by opts.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	b := Blit{Src: src.(*Image)}
	if opts != nil {
		if g, ok := opts.GeoM.(*GeoM); ok {
			b.TX, b.TY = g.TX, g.TY
		}
	}
	i.Blits = append(i.Blits, b)
}

// Dispose marks the image as released.
func (i *Image) Dispose() {
	i.Disposed = true
}

// Renderer sizes text as CharWidth*size/10 pixels per rune and size pixels high.
type Renderer struct {
	CharWidth float64
}

// NewRenderer returns a Renderer with a 6 px per rune glyph at size 10.
func NewRenderer() *Renderer {
	return &Renderer{CharWidth: 6}
}

// NewImage creates a new image with the given dimensions.
func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

// FillRect records a filled rectangle on dst.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	img := dst.(*Image)
	img.Rects = append(img.Rects, Rect{X: x, Y: y, W: width, H: height, Color: clr})
}

// NewTextImage returns an image sized by MeasureText and labelled with text.
func (r *Renderer) NewTextImage(text string, size float64, bold bool, fg, bg color.Color) render.Image {
	w, h := r.MeasureText(text, size, bold)
	return &Image{W: w, H: h, Label: text, FillWith: bg}
}

// MeasureText returns the deterministic text size described on Renderer.
func (r *Renderer) MeasureText(text string, size float64, bold bool) (int, int) {
	return int(float64(len([]rune(text))) * r.CharWidth * size / 10), int(size)
}

// Input is a scripted InputManager. Released buttons stay released until
// the test resets them.
type Input struct {
	X, Y     int
	Released map[render.MouseButton]bool
	Quit     bool
}

// NewInput returns an Input with the cursor at (x, y).
func NewInput(x, y int) *Input {
	return &Input{X: x, Y: y, Released: map[render.MouseButton]bool{}}
}

// Click marks the left button as released this tick.
func (in *Input) Click() {
	in.Released[render.MouseButtonLeft] = true
}

// GetCursorPosition returns the scripted cursor position.
func (in *Input) GetCursorPosition() (int, int) {
	return in.X, in.Y
}

// IsMouseButtonJustReleased reports the scripted release state.
func (in *Input) IsMouseButtonJustReleased(button render.MouseButton) bool {
	return in.Released[button]
}

// IsQuitRequested reports the scripted quit flag.
func (in *Input) IsQuitRequested() bool {
	return in.Quit
}
