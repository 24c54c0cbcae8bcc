package pong

import (
	"context"
	"log"
	"time"
)

// Tick drives one frame: queued commands are applied, timers due on this
// tick fire, and if the match is running the player's input is sampled, the
// opponent moves and every ball is stepped. Outside the running state the
// simulation does not advance.
func (s *Session) Tick() {
	s.drainCommands()

	s.tick++
	s.runTimers()

	if s.state != PlayState {
		return
	}

	s.input.Sample(s.player, s.cfg.Field)
	TrackBall(s.opponent, s.balls, s.cfg.Field, s.cfg.DeadZone)
	s.stepBalls()
}

// Running reports whether the frame loop has simulation work to do.
func (s *Session) Running() bool { return s.state == PlayState }

func (s *Session) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			if err := s.Apply(cmd); err != nil {
				log.Printf("session %s: dropping %s command: %v", s.ID, cmd.Type, err)
			}
		default:
			return
		}
	}
}

// stepBalls runs the physics for every ball. Once the match ends on this
// tick the remaining balls are left untouched.
func (s *Session) stepBalls() {
	for _, b := range s.balls {
		out := StepBall(b, s.player, s.opponent, s.cfg.Field, s.cfg.Deflection)
		if out.Bounced {
			s.emit(Bounce)
		}
		if out.Hit {
			s.emit(Hit)
		}
		if out.Scored {
			s.point(out.Scorer)
			b.serve(s.cfg, s.multiplier, s.rng)
			if s.state == GameOverState {
				return
			}
		}
	}
}

// Run drives the session from a ticker until ctx is done. After every tick
// the optional frame callback is invoked on the same goroutine, which is
// where a headless host publishes snapshots.
func (s *Session) Run(ctx context.Context, frame func(*Session)) error {
	period := time.Second / time.Duration(s.cfg.TicksPerSecond)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
			if frame != nil {
				frame(s)
			}
		}
	}
}
