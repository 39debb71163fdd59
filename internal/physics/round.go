// Package physics advances one round of play: ball motion, wall and paddle
// bounces, scoring and the computer paddle that follows the ball.
package physics

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/pong/internal/entity"
)

const (
	PaddleWidth  = 10
	PaddleHeight = 50
	BallSize     = 10
	DividerWidth = 1

	// ComputerOffset is how far above the ball's top the computer paddle sits.
	ComputerOffset = 20
	// SpeedIncrement is added to each velocity component's magnitude every
	// SpeedUpEvery points.
	SpeedIncrement = 0.2
	SpeedUpEvery   = 10
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Grey  = color.RGBA{190, 190, 190, 255}
)

// Round holds everything that lives for one serve-to-miss session.
type Round struct {
	Width, Height float64

	Score      int
	DirX, DirY float64

	Player   *entity.GameObject
	Divider  *entity.GameObject
	Computer *entity.GameObject
	Ball     *entity.GameObject
}

// NewRound lays out the paddles, divider and ball for a width x height
// playfield and serves the ball diagonally in a direction picked by rng.
func NewRound(rng *rand.Rand, width, height float64) *Round {
	return NewRoundWithDirection(width, height, randomSign(rng), randomSign(rng))
}

// NewRoundWithDirection is NewRound with a fixed serve direction.
func NewRoundWithDirection(width, height, dirX, dirY float64) *Round {
	midX, midY := width/2, height/2
	paddleY := midY - PaddleHeight/2

	return &Round{
		Width:    width,
		Height:   height,
		DirX:     dirX,
		DirY:     dirY,
		Player:   entity.NewGameObject(White, PaddleWidth, PaddleHeight, 0, paddleY),
		Divider:  entity.NewGameObject(Grey, DividerWidth, height, midX-DividerWidth, 0),
		Computer: entity.NewGameObject(White, PaddleWidth, PaddleHeight, width-PaddleWidth, paddleY),
		Ball:     entity.NewGameObject(White, BallSize, BallSize, midX-BallSize/2, midY-BallSize/2),
	}
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Objects returns the round's objects in draw order.
func (r *Round) Objects() []*entity.GameObject {
	return []*entity.GameObject{r.Player, r.Divider, r.Computer, r.Ball}
}

// Step advances the round by one tick with the mouse at pointerY and
// reports whether the ball got past the player, ending the round.
//
// The order of the checks matters. Paddle hits only test the ball's top
// edge against the paddle's vertical span, so a fast ball can tunnel
// through a paddle, and nothing is clamped to the playfield.
func (r *Round) Step(pointerY int) (over bool) {
	r.Player.Y = float64(pointerY) - math.Floor(r.Player.Height()/2)

	r.Ball.X += r.DirX
	r.Ball.Y += r.DirY

	r.Computer.Y = r.Ball.Y - ComputerOffset

	if r.Ball.Y <= 0 || r.Ball.Y >= r.Height-r.Ball.Height() {
		r.DirY = -r.DirY
	}

	if r.Ball.Right() >= r.Computer.X && r.Computer.SpansY(r.Ball.Y) {
		r.DirX = -r.DirX
	}

	if r.Ball.X <= r.Player.Right() && r.Player.SpansY(r.Ball.Y) {
		r.DirX = -r.DirX
		r.Score++
		if r.Score > 0 && r.Score%SpeedUpEvery == 0 {
			r.DirX = speedUp(r.DirX)
			r.DirY = speedUp(r.DirY)
		}
	}

	return r.Ball.X <= 0
}

// speedUp grows v's magnitude by SpeedIncrement without changing its sign.
func speedUp(v float64) float64 {
	return v + math.Copysign(SpeedIncrement, v)
}
