// Package button provides text buttons with a normal and an enlarged
// hovered look, hit-tested against the mouse each tick.
package button

import (
	"image/color"

	"chosenoffset.com/pong/internal/entity"
	"chosenoffset.com/pong/internal/render"
)

// HoverScale is how much larger the hovered variant's font is.
const HoverScale = 1.1

// Variant selects one of a button's two precomputed renderings.
type Variant int

const (
	Default Variant = iota
	Hovered
)

func (v Variant) String() string {
	if v == Hovered {
		return "hovered"
	}
	return "default"
}

// Action is the value a button reports when clicked. Its meaning belongs
// to whoever builds the button.
type Action int

// Config describes a button before its variants are rasterized.
type Config struct {
	CenterX, CenterY float64
	Text             string
	FontSize         float64
	TextColor        color.Color
	BackgroundColor  color.Color

	// Action is reported on click when HasAction is set.
	Action    Action
	HasAction bool
}

type variant struct {
	image  render.Image
	bounds entity.Rect
}

// Button is a clickable label.
type Button struct {
	centerX, centerY float64
	variants         [2]variant
	action           Action
	hasAction        bool
	hovered          bool
}

// New rasterizes both variants of a button, each centered on the button's
// center point.
func New(r render.Renderer, cfg Config) *Button {
	b := &Button{
		centerX:   cfg.CenterX,
		centerY:   cfg.CenterY,
		action:    cfg.Action,
		hasAction: cfg.HasAction,
	}
	sizes := [2]float64{cfg.FontSize, cfg.FontSize * HoverScale}
	for i, size := range sizes {
		img := r.NewTextImage(cfg.Text, size, true, cfg.TextColor, cfg.BackgroundColor)
		w, h := img.Size()
		b.variants[i] = variant{
			image:  img,
			bounds: entity.CenteredRect(cfg.CenterX, cfg.CenterY, float64(w), float64(h)),
		}
	}
	return b
}

// Active returns the variant currently shown.
func (b *Button) Active() Variant {
	if b.hovered {
		return Hovered
	}
	return Default
}

// Hovered reports whether the pointer was over the button at the last Update.
func (b *Button) Hovered() bool {
	return b.hovered
}

// Bounds returns the box of the active variant.
func (b *Button) Bounds() entity.Rect {
	return b.variants[b.Active()].bounds
}

// VariantBounds returns the box of a specific variant.
func (b *Button) VariantBounds(v Variant) entity.Rect {
	return b.variants[v].bounds
}

// Update hit-tests (px, py) against the box of the variant that was active
// before this call, so a hover change takes effect on the next tick.
// It returns the button's action when the pointer is inside, clicked is
// set and the button has an action.
func (b *Button) Update(px, py int, clicked bool) (Action, bool) {
	if !b.Bounds().Contains(float64(px), float64(py)) {
		b.hovered = false
		return 0, false
	}
	b.hovered = true
	if clicked && b.hasAction {
		return b.action, true
	}
	return 0, false
}

// Draw blits the active variant onto dst at its box.
func (b *Button) Draw(dst render.Image) {
	v := b.variants[b.Active()]
	dst.DrawImage(v.image, render.TranslateOptions(v.bounds.X, v.bounds.Y))
}

// Dispose releases both variant images.
func (b *Button) Dispose() {
	for _, v := range b.variants {
		if v.image != nil {
			v.image.Dispose()
		}
	}
}
