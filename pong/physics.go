package pong

// Outcome is what happened to one ball during one step.
type Outcome struct {
	Bounced bool
	Hit     bool
	// Scored is set when the ball left the field; Scorer is the side that
	// earned the point.
	Scored bool
	Scorer Side
}

// Deflect sets the ball's vertical velocity from where it met the paddle:
// the paddle center returns the ball flat, the edges send it off at
// ±factor/2.
func Deflect(b *Ball, p *Paddle, factor float32) {
	rel := (b.Y - p.Y) / p.Height
	b.YVelocity = (rel - 0.5) * factor
}

// StepBall advances one ball by one tick and resolves wall and paddle
// collisions. It reports scoring but leaves score keeping and respawning to
// the caller. Paddles are only read.
func StepBall(b *Ball, player, opponent *Paddle, f Field, deflection float32) Outcome {
	var out Outcome

	b.Move()

	// Only reflect a ball heading out; one already past a wall and moving
	// back in keeps its direction.
	if (b.Top() <= 0 && b.YVelocity < 0) || (b.Bottom() >= f.Height && b.YVelocity > 0) {
		b.YVelocity = -b.YVelocity
		out.Bounced = true
	}

	if b.Left() <= player.Right() && player.ContainsY(b.Y) && b.XVelocity < 0 {
		b.XVelocity = -b.XVelocity
		Deflect(b, player, deflection)
		out.Hit = true
	}

	if b.Right() >= opponent.X && opponent.ContainsY(b.Y) && b.XVelocity > 0 {
		b.XVelocity = -b.XVelocity
		Deflect(b, opponent, deflection)
		out.Hit = true
	}

	switch {
	case b.X < 0:
		out.Scored, out.Scorer = true, OpponentSide
	case b.X > f.Width:
		out.Scored, out.Scorer = true, PlayerSide
	}
	return out
}
