package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaddle_Sides(t *testing.T) {
	cfg := DefaultConfig()

	player := newPaddle(PlayerSide, cfg)
	assert.Equal(t, float32(20), player.X)
	assert.Equal(t, float32(150), player.Y)
	assert.Equal(t, cfg.PlayerSpeed, player.Speed)

	opponent := newPaddle(OpponentSide, cfg)
	assert.Equal(t, float32(770), opponent.X)
	assert.Equal(t, float32(150), opponent.Y)
	assert.Equal(t, cfg.OpponentSpeed, opponent.Speed)
}

func TestPaddle_MoveToClamps(t *testing.T) {
	f := Field{Width: 800, Height: 400}
	p := &Paddle{Height: 100}

	tests := []struct {
		name string
		y    float32
		want float32
	}{
		{"inside", 120, 120},
		{"top edge", 0, 0},
		{"above", -35, 0},
		{"bottom edge", 300, 300},
		{"below", 999, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.MoveTo(tt.y, f)
			assert.Equal(t, tt.want, p.Y)
		})
	}
}

func TestPaddle_ContainsY(t *testing.T) {
	p := &Paddle{Position: Position{Y: 100}, Height: 100}

	assert.True(t, p.ContainsY(100))
	assert.True(t, p.ContainsY(150))
	assert.True(t, p.ContainsY(200))
	assert.False(t, p.ContainsY(99.9))
	assert.False(t, p.ContainsY(200.1))
}

func TestPaddle_Recenter(t *testing.T) {
	f := Field{Width: 800, Height: 400}
	p := &Paddle{Height: 100}
	p.MoveTo(0, f)
	p.Recenter(f)
	assert.Equal(t, float32(200), p.Center())
}
