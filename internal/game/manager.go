package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/pong/internal/config"
	"chosenoffset.com/pong/internal/render"
	"chosenoffset.com/pong/internal/ui/hud"
	"chosenoffset.com/pong/internal/ui/menu"
)

// Manager handles the overall game state, switching between the title
// screen and play. It implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	Title        *menu.Title
	Play         *Play
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Config       *config.Config

	rng *rand.Rand
}

// NewManager creates a game manager that starts on the title screen.
func NewManager(r render.Renderer, input render.InputManager, cfg *config.Config, rng *rand.Rand) *Manager {
	m := &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Renderer:     r,
		InputMgr:     input,
		Config:       cfg,
		rng:          rng,
	}
	m.enter(menu.StateTitlePage)
	return m
}

// Update runs the current screen for one tick and applies the state it
// returns. It returns render.ErrTerminated once the game has quit.
func (m *Manager) Update() error {
	var next menu.GameState
	switch m.State {
	case menu.StateTitlePage:
		next = m.Title.Update(m.InputMgr)
	case menu.StateNewGame:
		next = m.Play.Update(m.InputMgr)
	case menu.StateQuit:
		return render.ErrTerminated
	}

	if next != m.State {
		log.Printf("State %s -> %s", m.State, next)
		m.leave()
		m.enter(next)
	}

	if m.State == menu.StateQuit {
		return render.ErrTerminated
	}
	return nil
}

// enter builds the screen for state. Each visit gets fresh buttons or a
// fresh round.
func (m *Manager) enter(state menu.GameState) {
	m.State = state
	switch state {
	case menu.StateTitlePage:
		m.Title = menu.NewTitle(m.Renderer, menu.DefaultLayout(m.ScreenWidth, m.ScreenHeight, m.Config.Fonts.ButtonSize))
	case menu.StateNewGame:
		hudConfig := hud.DefaultConfig()
		hudConfig.FontSize = m.Config.Fonts.ScoreSize
		m.Play = NewPlay(m.Renderer, m.rng, m.ScreenWidth, m.ScreenHeight, hudConfig)
	}
}

// leave releases the screen of the current state.
func (m *Manager) leave() {
	if m.Title != nil {
		m.Title.Dispose()
		m.Title = nil
	}
	if m.Play != nil {
		m.Play.Dispose()
		m.Play = nil
	}
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateTitlePage:
		m.Title.Draw(screen)
	case menu.StateNewGame:
		m.Play.Draw(screen)
	}
}

// Layout returns the fixed playfield size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
