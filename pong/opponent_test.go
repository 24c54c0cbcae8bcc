package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func opponentPaddle() *Paddle {
	return &Paddle{Position: Position{X: 770, Y: 150}, Width: 10, Height: 100, Speed: 4, Side: OpponentSide}
}

func TestTrackBall_NoBalls(t *testing.T) {
	p := opponentPaddle()
	TrackBall(p, nil, testField, 10)
	assert.Equal(t, float32(150), p.Y)
}

func TestTrackBall_DeadZone(t *testing.T) {
	p := opponentPaddle() // center 200
	for _, y := range []float32{190, 200, 210} {
		TrackBall(p, []*Ball{{Position: Position{X: 400, Y: y}}}, testField, 10)
		assert.Equal(t, float32(150), p.Y, "ball at y=%v", y)
	}
}

func TestTrackBall_MovesBySpeed(t *testing.T) {
	p := opponentPaddle()
	TrackBall(p, []*Ball{{Position: Position{X: 400, Y: 300}}}, testField, 10)
	assert.Equal(t, float32(154), p.Y)

	p = opponentPaddle()
	TrackBall(p, []*Ball{{Position: Position{X: 400, Y: 20}}}, testField, 10)
	assert.Equal(t, float32(146), p.Y)
}

func TestTrackBall_Clamped(t *testing.T) {
	p := opponentPaddle()
	p.Y = 298
	TrackBall(p, []*Ball{{Position: Position{X: 400, Y: 399}}}, testField, 10)
	assert.Equal(t, float32(300), p.Y)

	p.Y = 1
	TrackBall(p, []*Ball{{Position: Position{X: 400, Y: 0}}}, testField, 10)
	assert.Equal(t, float32(0), p.Y)
}

func TestTrackBall_FollowsNearestBall(t *testing.T) {
	p := opponentPaddle()
	far := &Ball{Position: Position{X: 100, Y: 390}}
	near := &Ball{Position: Position{X: 700, Y: 10}}
	TrackBall(p, []*Ball{far, near}, testField, 10)
	assert.Equal(t, float32(146), p.Y)
}

func TestNearestBall_TieGoesToFirst(t *testing.T) {
	a := &Ball{Position: Position{X: 700, Y: 10}}
	b := &Ball{Position: Position{X: 840, Y: 390}}
	assert.Same(t, a, nearestBall([]*Ball{a, b}, 770))
	assert.Same(t, b, nearestBall([]*Ball{b, a}, 770))
}
