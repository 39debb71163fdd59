// Package hud draws the in-play scoreboard.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/pong/internal/render"
	"chosenoffset.com/pong/internal/ui/button"
)

// HUDConfig defines where and how the score is shown.
type HUDConfig struct {
	CenterX, CenterY float64
	FontSize         float64
	TextColor        color.Color
	BackgroundColor  color.Color
}

// DefaultConfig returns the scoreboard layout used on a 540x540 playfield.
func DefaultConfig() *HUDConfig {
	return &HUDConfig{
		CenterX:         130,
		CenterY:         10,
		FontSize:        15,
		TextColor:       color.White,
		BackgroundColor: color.Black,
	}
}

// HUD shows the current score. The label is re-rasterized only when the
// score changes.
type HUD struct {
	config   *HUDConfig
	renderer render.Renderer
	score    int
	label    *button.Button
}

// New creates a HUD showing a score of zero.
func New(r render.Renderer, config *HUDConfig) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	h := &HUD{config: config, renderer: r}
	h.label = h.build(0)
	return h
}

func (h *HUD) build(score int) *button.Button {
	return button.New(h.renderer, button.Config{
		CenterX:         h.config.CenterX,
		CenterY:         h.config.CenterY,
		Text:            Text(score),
		FontSize:        h.config.FontSize,
		TextColor:       h.config.TextColor,
		BackgroundColor: h.config.BackgroundColor,
	})
}

// Text returns the scoreboard caption for a score.
func Text(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// SetScore updates the displayed score.
func (h *HUD) SetScore(score int) {
	if score == h.score {
		return
	}
	h.label.Dispose()
	h.score = score
	h.label = h.build(score)
}

// Score returns the displayed score.
func (h *HUD) Score() int {
	return h.score
}

// Draw renders the scoreboard.
func (h *HUD) Draw(screen render.Image) {
	h.label.Draw(screen)
}

// Dispose releases the label images.
func (h *HUD) Dispose() {
	h.label.Dispose()
}
