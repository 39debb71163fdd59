package entity

import (
	"image/color"
	"testing"
)

func TestGameObjectBounds(t *testing.T) {
	obj := NewGameObject(color.White, 10, 50, 0, 245)

	b := obj.Bounds()
	if b != (Rect{X: 0, Y: 245, Width: 10, Height: 50}) {
		t.Errorf("Expected bounds (0, 245, 10, 50), got %+v", b)
	}

	obj.X, obj.Y = -30, 600
	b = obj.Bounds()
	if b.X != -30 || b.Y != 600 {
		t.Errorf("Expected off-screen position (-30, 600) to be kept, got (%v, %v)", b.X, b.Y)
	}
	if b.Width != 10 || b.Height != 50 {
		t.Errorf("Expected size to stay 10x50 after moving, got %vx%v", b.Width, b.Height)
	}
}

func TestGameObjectEdges(t *testing.T) {
	obj := NewGameObject(color.White, 10, 50, 530, 245)

	if obj.Right() != 540 {
		t.Errorf("Expected right edge 540, got %v", obj.Right())
	}
	if obj.Bottom() != 295 {
		t.Errorf("Expected bottom edge 295, got %v", obj.Bottom())
	}

	tests := []struct {
		y    float64
		want bool
	}{
		{244, false},
		{245, true},
		{270, true},
		{295, true},
		{295.5, false},
	}
	for _, tt := range tests {
		if got := obj.SpansY(tt.y); got != tt.want {
			t.Errorf("SpansY(%v): expected %v, got %v", tt.y, tt.want, got)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := CenteredRect(270, 265, 60, 20)

	if r.X != 240 || r.Y != 255 {
		t.Fatalf("Expected top-left (240, 255), got (%v, %v)", r.X, r.Y)
	}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 270, 265, true},
		{"top-left corner", 240, 255, true},
		{"bottom-right corner", 300, 275, true},
		{"left of box", 239, 265, false},
		{"below box", 270, 276, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.px, tt.py); got != tt.want {
				t.Errorf("Expected Contains(%v, %v) = %v, got %v", tt.px, tt.py, tt.want, got)
			}
		})
	}
}
