package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the game loop cleanly.
// Backends translate it into their own termination signal.
var ErrTerminated = errors.New("game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations
	NewTextImage(text string, size float64, bold bool, fg, bg color.Color) Image
	MeasureText(text string, size float64, bold bool) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
// It abstracts the underlying image implementation.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// TranslateOptions returns draw options that place an image's top-left
// corner at (x, y).
func TranslateOptions(x, y float64) *DrawImageOptions {
	opts := &DrawImageOptions{GeoM: NewGeoM()}
	opts.GeoM.Translate(x, y)
	return opts
}

// InputManager handles input from the user (mouse and window events).
type InputManager interface {
	GetCursorPosition() (x, y int)
	IsMouseButtonJustReleased(button MouseButton) bool
	// IsQuitRequested reports whether the window was asked to close.
	IsQuitRequested() bool
}

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminated ends the loop without error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of logic ticks per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends. The window is
	// released before it returns.
	RunGame(game Game) error
}
