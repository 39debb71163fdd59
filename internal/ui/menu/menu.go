package menu

import (
	"image/color"

	"chosenoffset.com/pong/internal/render"
	"chosenoffset.com/pong/internal/ui/button"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateQuit GameState = iota - 1
	StateTitlePage
	StateNewGame
)

func (s GameState) String() string {
	switch s {
	case StateQuit:
		return "quit"
	case StateTitlePage:
		return "title"
	case StateNewGame:
		return "new-game"
	default:
		return "unknown"
	}
}

// Layout positions the title screen buttons.
type Layout struct {
	CenterX  float64
	PlayY    float64
	QuitY    float64
	FontSize float64
}

// DefaultLayout centers the buttons on a width x height screen, with PLAY
// just above the middle and QUIT 40 px below it.
func DefaultLayout(width, height int, fontSize float64) Layout {
	midY := float64(height) / 2
	return Layout{
		CenterX:  float64(width) / 2,
		PlayY:    midY - 5,
		QuitY:    midY + 35,
		FontSize: fontSize,
	}
}

// Title is the title screen with PLAY and QUIT buttons.
type Title struct {
	buttons []*button.Button
}

// NewTitle builds the title screen buttons.
func NewTitle(r render.Renderer, layout Layout) *Title {
	newButton := func(y float64, label string, next GameState) *button.Button {
		return button.New(r, button.Config{
			CenterX:         layout.CenterX,
			CenterY:         y,
			Text:            label,
			FontSize:        layout.FontSize,
			TextColor:       color.White,
			BackgroundColor: color.Black,
			Action:          button.Action(next),
			HasAction:       true,
		})
	}
	return &Title{
		buttons: []*button.Button{
			newButton(layout.PlayY, "PLAY", StateNewGame),
			newButton(layout.QuitY, "QUIT", StateQuit),
		},
	}
}

// Update runs one title screen tick and returns the next state.
// It stays on StateTitlePage until a button is clicked with the left mouse
// button or the window is closed.
func (t *Title) Update(input render.InputManager) GameState {
	if input.IsQuitRequested() {
		return StateQuit
	}

	mouseX, mouseY := input.GetCursorPosition()
	mouseUp := input.IsMouseButtonJustReleased(render.MouseButtonLeft)

	for _, b := range t.buttons {
		if action, ok := b.Update(mouseX, mouseY, mouseUp); ok {
			return GameState(action)
		}
	}
	return StateTitlePage
}

// Draw renders the title screen.
func (t *Title) Draw(screen render.Image) {
	screen.Fill(color.Black)
	for _, b := range t.buttons {
		b.Draw(screen)
	}
}

// Dispose releases the button images.
func (t *Title) Dispose() {
	for _, b := range t.buttons {
		b.Dispose()
	}
}
