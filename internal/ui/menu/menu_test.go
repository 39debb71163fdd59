package menu

import (
	"testing"

	"chosenoffset.com/pong/internal/render"
	"chosenoffset.com/pong/internal/render/rendertest"
)

func newTitle() *Title {
	return NewTitle(rendertest.NewRenderer(), DefaultLayout(540, 540, 25))
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout(540, 540, 25)
	if l.CenterX != 270 || l.PlayY != 265 || l.QuitY != 305 {
		t.Errorf("Expected buttons at x=270, y=265/305, got x=%v, y=%v/%v", l.CenterX, l.PlayY, l.QuitY)
	}
}

func TestTitleUpdate(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		click  bool
		button render.MouseButton
		quit   bool
		want   GameState
	}{
		{"click play", 270, 265, true, render.MouseButtonLeft, false, StateNewGame},
		{"click quit", 270, 305, true, render.MouseButtonLeft, false, StateQuit},
		{"hover play without click", 270, 265, false, render.MouseButtonLeft, false, StateTitlePage},
		{"right click play", 270, 265, true, render.MouseButtonRight, false, StateTitlePage},
		{"click empty space", 50, 50, true, render.MouseButtonLeft, false, StateTitlePage},
		{"window closed", 50, 50, false, render.MouseButtonLeft, true, StateQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title := newTitle()
			in := rendertest.NewInput(tt.x, tt.y)
			in.Released[tt.button] = tt.click
			in.Quit = tt.quit

			if got := title.Update(in); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTitleClickOutsideLeavesButtonsUnhovered(t *testing.T) {
	title := newTitle()
	in := rendertest.NewInput(20, 500)
	in.Click()

	if got := title.Update(in); got != StateTitlePage {
		t.Fatalf("Expected to stay on the title page, got %v", got)
	}
	for i, b := range title.buttons {
		if b.Hovered() {
			t.Errorf("Expected button %d to stay unhovered", i)
		}
	}
}

func TestTitleDraw(t *testing.T) {
	title := newTitle()
	screen := rendertest.NewImage(540, 540)

	title.Draw(screen)
	if len(screen.Blits) != 2 {
		t.Fatalf("Expected 2 buttons drawn, got %d", len(screen.Blits))
	}
	labels := []string{screen.Blits[0].Src.Label, screen.Blits[1].Src.Label}
	if labels[0] != "PLAY" || labels[1] != "QUIT" {
		t.Errorf("Expected PLAY then QUIT, got %v", labels)
	}
}

func TestGameStateString(t *testing.T) {
	tests := map[GameState]string{
		StateQuit:      "quit",
		StateTitlePage: "title",
		StateNewGame:   "new-game",
		GameState(7):   "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
