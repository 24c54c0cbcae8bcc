package pong

import "fmt"

// Start begins play from idle, or starts a fresh match from ended without
// waiting for the automatic reset. It returns false when the match is
// already running or paused.
func (s *Session) Start() bool {
	switch s.state {
	case IdleState:
	case GameOverState:
		s.Reset()
	default:
		return false
	}
	s.setState(PlayState)
	return true
}

// Pause toggles between running and paused. It is a no-op in any other
// state.
func (s *Session) Pause() {
	switch s.state {
	case PlayState:
		s.setState(PauseState)
		s.input.Release()
	case PauseState:
		s.setState(PlayState)
	}
}

// Reset brings the session back to idle from any state: scores go to zero,
// balls are served again for the current difficulty, paddles return to the
// middle and pending timed events are dropped.
func (s *Session) Reset() {
	s.timers = s.timers[:0]
	s.score = Score{}
	s.reseed()
	s.player.Recenter(s.cfg.Field)
	s.opponent.Recenter(s.cfg.Field)
	s.input.Release()
	s.emit(ScoreChanged)
	s.setState(IdleState)
}

// SetPreset applies a named difficulty. Allowed in any state; scores are kept.
func (s *Session) SetPreset(p Preset) error {
	d, ok := p.Difficulty()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, p)
	}
	s.ballCount, s.multiplier, s.preset = d.BallCount, d.SpeedMultiplier, p
	s.reseed()
	return nil
}

// SetBallCount picks the number of balls directly.
func (s *Session) SetBallCount(n int) error {
	if err := validBallCount(n); err != nil {
		return err
	}
	s.ballCount, s.preset = n, Custom
	s.reseed()
	return nil
}

// SetSpeedMultiplier picks the ball speed multiplier directly.
func (s *Session) SetSpeedMultiplier(m float32) error {
	if err := validSpeedMultiplier(m); err != nil {
		return err
	}
	s.multiplier, s.preset = m, Custom
	s.reseed()
	return nil
}

// ToggleSound flips whether cues reach the cue sinks and returns the new
// setting.
func (s *Session) ToggleSound() bool {
	s.sound = !s.sound
	return s.sound
}

// SetSound turns cues on or off, e.g. when no audio device is available.
func (s *Session) SetSound(on bool) {
	s.sound = on
}

func (s *Session) reseed() {
	s.balls = newBalls(s.ballCount, s.cfg, s.multiplier, s.rng)
}

// point records a point for side and checks for a winner.
func (s *Session) point(side Side) {
	if side == PlayerSide {
		s.score.Player++
	} else {
		s.score.Opponent++
	}
	s.emit(ScoreChanged)
	s.emit(Miss)
	s.checkWin()
}

// checkWin ends the match once either side reaches the win score and
// schedules the automatic reset. The player is checked first.
func (s *Session) checkWin() {
	if s.state == GameOverState {
		return
	}
	switch {
	case s.score.Player >= s.cfg.WinScore:
		s.setState(GameOverState)
		s.emit(Win)
		s.Schedule(s.cfg.WinDelay, (*Session).Reset)
	case s.score.Opponent >= s.cfg.WinScore:
		s.setState(GameOverState)
		s.emit(Lose)
		s.Schedule(s.cfg.LoseDelay, (*Session).Reset)
	}
}

// Winner returns the side that won the match; ok is false unless the match
// has ended.
func (s *Session) Winner() (side Side, ok bool) {
	if s.state != GameOverState {
		return 0, false
	}
	if s.score.Player >= s.cfg.WinScore {
		return PlayerSide, true
	}
	return OpponentSide, true
}
