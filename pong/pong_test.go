package pong

import (
	"math/rand"
	"testing"
)

type recorder struct {
	events []Event
}

func (r *recorder) HandleEvent(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func newTestSession(t *testing.T, cfg Config) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	s := NewSession(cfg, WithRand(rand.New(rand.NewSource(1))), WithSink(rec))
	return s, rec
}

// park puts every ball in the middle of the field, at rest.
func park(s *Session) {
	c := s.cfg.Field.Center()
	for _, b := range s.balls {
		b.Position = c
		b.XVelocity, b.YVelocity = 0, 0
	}
}
