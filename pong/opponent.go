package pong

// nearestBall returns the ball closest to x horizontally. Ties go to the
// first ball in slice order, which is an artifact of ordering rather than a
// rule; callers should not rely on which of two equidistant balls is chosen.
func nearestBall(balls []*Ball, x float32) *Ball {
	var (
		best *Ball
		dist float32
	)
	for _, b := range balls {
		d := abs(b.X - x)
		if best == nil || d < dist {
			best, dist = b, d
		}
	}
	return best
}

// TrackBall steers the opponent paddle toward the nearest ball at a fixed
// speed. It ignores offsets within the dead zone so the paddle does not
// jitter, and it never reacts faster than p.Speed, which keeps it beatable.
func TrackBall(p *Paddle, balls []*Ball, f Field, deadZone float32) {
	target := nearestBall(balls, p.X)
	if target == nil {
		return
	}
	center := p.Center()
	if abs(center-target.Y) <= deadZone {
		return
	}
	if center < target.Y {
		p.MoveTo(p.Y+p.Speed, f)
	} else {
		p.MoveTo(p.Y-p.Speed, f)
	}
}
