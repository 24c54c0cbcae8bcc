package pong

type timer struct {
	at uint64
	fn func(*Session)
}

// Schedule runs fn once the session has been ticked delay more times. Timers
// are resolved by the frame driver whatever the match state, so a reset
// scheduled after a win still fires while the match sits in ended.
func (s *Session) Schedule(delay int, fn func(*Session)) {
	if delay < 0 {
		delay = 0
	}
	s.timers = append(s.timers, timer{at: s.tick + uint64(delay), fn: fn})
}

// Pending returns the number of timers that have not fired yet.
func (s *Session) Pending() int { return len(s.timers) }

func (s *Session) runTimers() {
	for {
		i := -1
		for j, t := range s.timers {
			if t.at <= s.tick {
				i = j
				break
			}
		}
		if i < 0 {
			return
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		t.fn(s)
	}
}
