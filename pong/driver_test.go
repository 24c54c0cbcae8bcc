package pong

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTick_IdleDoesNotSimulate(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	before := *s.Balls()[0]
	s.Input().Keyboard.Press(Up, true)

	s.Tick()
	s.Tick()

	assert.Equal(t, uint64(2), s.Ticks())
	assert.Equal(t, before, *s.Balls()[0])
	assert.Equal(t, float32(150), s.Player().Y)
}

func TestTick_PausedDoesNotSimulate(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.Start()
	s.Tick()
	s.Pause()
	before := *s.Balls()[0]

	s.Tick()

	assert.Equal(t, before, *s.Balls()[0])
}

func TestTick_Order(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	park(s)
	s.Balls()[0].Y = 390
	s.Start()
	s.Input().Keyboard.Press(Down, true)

	s.Tick()

	assert.Equal(t, float32(156), s.Player().Y, "input sampled")
	assert.Equal(t, float32(154), s.Opponent().Y, "opponent moved toward the ball")
}

func TestEnqueue_AppliedOnNextTick(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())

	require.True(t, s.Enqueue(Command{Type: CmdPreset, Preset: Extreme}))
	require.True(t, s.Enqueue(Command{Type: CmdStart}))
	require.True(t, s.Enqueue(Command{Type: "bogus"}))
	require.True(t, s.Enqueue(Command{Type: CmdBallCount, Count: 99}))
	assert.Equal(t, IdleState, s.State())

	s.Tick()

	assert.Equal(t, PlayState, s.State())
	assert.Equal(t, Extreme, s.Preset())
	assert.Len(t, s.Balls(), 5)
}

func TestApply_Input(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())

	require.NoError(t, s.Apply(Command{Type: CmdKeyDown, Direction: Down}))
	assert.True(t, s.Input().Keyboard.Held(Down))
	require.NoError(t, s.Apply(Command{Type: CmdKeyUp, Direction: Down}))
	assert.False(t, s.Input().Keyboard.Held(Down))

	require.NoError(t, s.Apply(Command{Type: CmdTouch, Y: 40, Active: true}))
	assert.True(t, s.Input().Touch.Active())

	assert.ErrorIs(t, s.Apply(Command{Type: CmdKeyDown, Direction: 7}), ErrUnknownCommand)
	assert.ErrorIs(t, s.Apply(Command{Type: "jump"}), ErrUnknownCommand)
}

func TestCues_FollowSoundToggle(t *testing.T) {
	s, rec := newTestSession(t, DefaultConfig())
	cues := &recorder{}
	s.SubscribeCues(cues)
	s.Start()

	aimLeft(s)
	s.Tick()
	require.Equal(t, 1, cues.count(Miss))

	require.False(t, s.ToggleSound())
	aimLeft(s)
	s.Tick()
	assert.Equal(t, 1, cues.count(Miss), "muted cues are not delivered")
	assert.Equal(t, 2, rec.count(Miss), "plain sinks still see every event")

	require.NoError(t, s.Apply(Command{Type: CmdSound}))
	aimLeft(s)
	s.Tick()
	assert.Equal(t, 2, cues.count(Miss))
	for _, e := range cues.events {
		assert.True(t, e.Kind.IsCue())
	}
}

func TestBounceAndHitEvents(t *testing.T) {
	s, rec := newTestSession(t, DefaultConfig())
	s.Start()
	b := s.Balls()[0]
	b.Position = Position{X: 44, Y: 200}
	b.XVelocity, b.YVelocity = -4, 0

	s.Tick()
	assert.Equal(t, 1, rec.count(Hit))

	b.Position = Position{X: 400, Y: 12}
	b.XVelocity, b.YVelocity = 4, -3
	s.Tick()
	assert.Equal(t, 1, rec.count(Bounce))
}

// With a still player paddle and an opponent that always reaches the ball,
// only the opponent can score, and the match ends at the win score.
func TestScenario_PerfectOpponent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpponentSpeed = 20
	s, rec := newTestSession(t, cfg)
	s.player.MoveTo(0, cfg.Field)
	s.Start()

	last := 0
	for i := 0; i < 500000 && s.State() != GameOverState; i++ {
		s.Tick()
		require.Zero(t, s.Score().Player, "tick %d", s.Ticks())
		require.GreaterOrEqual(t, s.Score().Opponent, last)
		last = s.Score().Opponent
		require.Equal(t, float32(0), s.Player().Y)
	}

	assert.Equal(t, GameOverState, s.State())
	assert.Equal(t, cfg.WinScore, s.Score().Opponent)
	assert.Equal(t, 1, rec.count(Lose))
}

func TestPaddlesStayInBounds(t *testing.T) {
	cfg := DefaultConfig()
	s, _ := newTestSession(t, cfg)
	require.NoError(t, s.SetPreset(Extreme))
	s.Start()
	s.Input().Keyboard.Press(Up, true)

	for i := 0; i < 5000; i++ {
		if i%300 == 0 {
			up := s.Input().Keyboard.Held(Up)
			s.Input().Keyboard.Press(Up, !up)
			s.Input().Keyboard.Press(Down, up)
		}
		if s.State() != PlayState {
			s.Start()
		}
		s.Tick()
		for _, p := range []*Paddle{s.Player(), s.Opponent()} {
			require.GreaterOrEqual(t, p.Y, float32(0))
			require.LessOrEqual(t, p.Y, cfg.Field.Height-p.Height)
		}
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a, _ := newTestSession(t, DefaultConfig())
	b, _ := newTestSession(t, DefaultConfig())
	require.NotEqual(t, a.ID, b.ID)

	a.Start()
	aimLeft(a)
	a.Tick()

	assert.Equal(t, 1, a.Score().Opponent)
	assert.Equal(t, Score{}, b.Score())
	assert.Equal(t, IdleState, b.State())
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TicksPerSecond = 1000
	s, _ := newTestSession(t, cfg)
	s.Enqueue(Command{Type: CmdStart})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	frames := 0
	err := s.Run(ctx, func(*Session) { frames++ })

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, frames)
	assert.Equal(t, uint64(frames), s.Ticks())
	assert.Equal(t, PlayState, s.State())
}

func TestSnapshot_IsACopy(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	snap := s.Snapshot()
	snap.Balls[0].X = -100
	snap.Player.Y = -100

	assert.NotEqual(t, float32(-100), s.Balls()[0].X)
	assert.Equal(t, float32(150), s.Player().Y)
	assert.Equal(t, s.ID, snap.ID)
	assert.Equal(t, s.Config().Field, snap.Field)
}
