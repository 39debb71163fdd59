package hud

import (
	"testing"

	"chosenoffset.com/pong/internal/render/rendertest"
)

func TestNewShowsZero(t *testing.T) {
	h := New(rendertest.NewRenderer(), nil)
	screen := rendertest.NewImage(540, 540)

	h.Draw(screen)
	if len(screen.Blits) != 1 {
		t.Fatalf("Expected 1 blit, got %d", len(screen.Blits))
	}
	if got := screen.Blits[0].Src.Label; got != "Score: 0" {
		t.Errorf("Expected label 'Score: 0', got '%s'", got)
	}
}

func TestSetScoreRebuildsOnlyOnChange(t *testing.T) {
	h := New(rendertest.NewRenderer(), nil)
	screen := rendertest.NewImage(540, 540)

	h.Draw(screen)
	first := screen.Blits[0].Src

	h.SetScore(0)
	h.Draw(screen)
	if screen.Blits[1].Src != first {
		t.Error("Expected unchanged score to reuse the label image")
	}

	h.SetScore(12)
	h.Draw(screen)
	if got := screen.Blits[2].Src.Label; got != "Score: 12" {
		t.Errorf("Expected label 'Score: 12', got '%s'", got)
	}
	if !first.Disposed {
		t.Error("Expected old label image to be disposed")
	}
	if h.Score() != 12 {
		t.Errorf("Expected score 12, got %d", h.Score())
	}
}

func TestLabelCenteredOnConfig(t *testing.T) {
	h := New(rendertest.NewRenderer(), nil)
	screen := rendertest.NewImage(540, 540)
	h.Draw(screen)

	// "Score: 0" is 8 runes: 8*6*15/10 = 72 wide, 15 high.
	blit := screen.Blits[0]
	if blit.TX != 94 || blit.TY != 2.5 {
		t.Errorf("Expected label at (94, 2.5), got (%v, %v)", blit.TX, blit.TY)
	}
}
