package pong

import "math/rand"

// Ball is a moving disc. Velocity is expressed in units per tick.
type Ball struct {
	Position
	XVelocity float32 `json:"dx"`
	YVelocity float32 `json:"dy"`
	Radius    float32 `json:"radius"`
	Color     int     `json:"color"`
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.XVelocity
	b.Y += b.YVelocity
}

// Top returns the y coordinate of the ball's top edge.
func (b *Ball) Top() float32 { return b.Y - b.Radius }

// Bottom returns the y coordinate of the ball's bottom edge.
func (b *Ball) Bottom() float32 { return b.Y + b.Radius }

// Left returns the x coordinate of the ball's left edge.
func (b *Ball) Left() float32 { return b.X - b.Radius }

// Right returns the x coordinate of the ball's right edge.
func (b *Ball) Right() float32 { return b.X + b.Radius }

// serve places the ball near the field center with a fresh random velocity:
// x within ±JitterX, y within ±JitterY, dx = ±BaseSpeed*m, dy in ±DySpread*m.
func (b *Ball) serve(cfg Config, multiplier float32, rng *rand.Rand) {
	c := cfg.Field.Center()
	b.X = c.X + (rng.Float32()-0.5)*2*cfg.JitterX
	b.Y = c.Y + (rng.Float32()-0.5)*2*cfg.JitterY

	dir := float32(-1)
	if rng.Float32() > 0.5 {
		dir = 1
	}
	b.XVelocity = dir * cfg.BaseSpeed * multiplier
	b.YVelocity = (rng.Float32() - 0.5) * 2 * cfg.DySpread * multiplier
}

// BallColors is the number of distinct ball colors front ends cycle through.
const BallColors = 5

func newBalls(n int, cfg Config, multiplier float32, rng *rand.Rand) []*Ball {
	balls := make([]*Ball, 0, n)
	for i := 0; i < n; i++ {
		b := &Ball{Radius: cfg.BallRadius, Color: i % BallColors}
		b.serve(cfg, multiplier, rng)
		balls = append(balls, b)
	}
	return balls
}
