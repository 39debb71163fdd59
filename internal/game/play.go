package game

import (
	"image/color"
	"log"
	"math/rand"

	"chosenoffset.com/pong/internal/physics"
	"chosenoffset.com/pong/internal/render"
	"chosenoffset.com/pong/internal/ui/hud"
	"chosenoffset.com/pong/internal/ui/menu"
)

// Play is the in-game screen for one round.
type Play struct {
	Round    *physics.Round
	HUD      *hud.HUD
	Renderer render.Renderer
}

// NewPlay serves a fresh round on a width x height playfield.
func NewPlay(r render.Renderer, rng *rand.Rand, width, height int, hudConfig *hud.HUDConfig) *Play {
	return &Play{
		Round:    physics.NewRound(rng, float64(width), float64(height)),
		HUD:      hud.New(r, hudConfig),
		Renderer: r,
	}
}

// Update runs one tick of play and returns the next state: StateQuit on a
// window close, StateTitlePage once the ball gets past the player, and
// StateNewGame otherwise.
func (p *Play) Update(input render.InputManager) menu.GameState {
	if input.IsQuitRequested() {
		return menu.StateQuit
	}

	_, mouseY := input.GetCursorPosition()
	over := p.Round.Step(mouseY)
	p.HUD.SetScore(p.Round.Score)

	if over {
		log.Printf("Round over, final score %d", p.Round.Score)
		return menu.StateTitlePage
	}
	return menu.StateNewGame
}

// Draw renders the scoreboard and every object of the round.
func (p *Play) Draw(screen render.Image) {
	screen.Fill(color.Black)
	p.HUD.Draw(screen)

	for _, obj := range p.Round.Objects() {
		b := obj.Bounds()
		p.Renderer.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), obj.Color)
	}
}

// Dispose releases the scoreboard images.
func (p *Play) Dispose() {
	p.HUD.Dispose()
}
