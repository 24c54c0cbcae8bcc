package pong

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Score keeps both counters. Only the match state machine changes it.
type Score struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
}

// Session is one isolated match: every piece of mutable game state lives
// here. A Session is not safe for concurrent use; other goroutines talk to
// it through Enqueue.
type Session struct {
	ID  string
	cfg Config

	state    GameState
	score    Score
	player   *Paddle
	opponent *Paddle
	balls    []*Ball
	input    *InputSampler

	ballCount  int
	multiplier float32
	preset     Preset
	sound      bool

	tick     uint64
	timers   []timer
	commands chan Command

	rng      *rand.Rand
	sinks    []EventSink
	cueSinks []EventSink
}

// Option customizes a new Session.
type Option func(*Session)

// WithRand makes the session draw from r, for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSink subscribes sink to every event.
func WithSink(sink EventSink) Option {
	return func(s *Session) { s.Subscribe(sink) }
}

// NewSession creates an idle session. cfg is expected to be valid; see
// Config.Validate.
func NewSession(cfg Config, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		cfg:        cfg,
		state:      IdleState,
		input:      newInputSampler(),
		ballCount:  cfg.BallCount,
		multiplier: cfg.SpeedMultiplier,
		preset:     Custom,
		sound:      cfg.Sound,
		commands:   make(chan Command, 256),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for _, p := range Presets() {
		if d, _ := p.Difficulty(); d.BallCount == s.ballCount && d.SpeedMultiplier == s.multiplier {
			s.preset = p
		}
	}
	s.player = newPaddle(PlayerSide, cfg)
	s.opponent = newPaddle(OpponentSide, cfg)
	s.balls = newBalls(s.ballCount, cfg, s.multiplier, s.rng)
	return s
}

// Subscribe registers sink for all events.
func (s *Session) Subscribe(sink EventSink) {
	s.sinks = append(s.sinks, sink)
}

// SubscribeCues registers sink for audible cues. Cues are only delivered
// while sound is enabled.
func (s *Session) SubscribeCues(sink EventSink) {
	s.cueSinks = append(s.cueSinks, sink)
}

func (s *Session) emit(kind EventKind) {
	e := Event{
		Kind:          kind,
		Tick:          s.tick,
		PlayerScore:   s.score.Player,
		OpponentScore: s.score.Opponent,
		State:         s.state,
	}
	for _, sink := range s.sinks {
		sink.HandleEvent(e)
	}
	if s.sound && kind.IsCue() {
		for _, sink := range s.cueSinks {
			sink.HandleEvent(e)
		}
	}
}

func (s *Session) setState(st GameState) {
	if s.state == st {
		return
	}
	s.state = st
	s.emit(StateChanged)
}

// Config returns the configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// State returns the current match state.
func (s *Session) State() GameState { return s.state }

// Score returns the current score.
func (s *Session) Score() Score { return s.score }

// Player returns the player's paddle. Front ends must treat it as read-only.
func (s *Session) Player() *Paddle { return s.player }

// Opponent returns the opponent's paddle. Front ends must treat it as
// read-only.
func (s *Session) Opponent() *Paddle { return s.opponent }

// Balls returns the live balls in iteration order.
func (s *Session) Balls() []*Ball { return s.balls }

// Input exposes the player's input devices for front ends that feed them
// directly from the driver goroutine.
func (s *Session) Input() *InputSampler { return s.input }

// Difficulty returns the active ball count and speed multiplier.
func (s *Session) Difficulty() Difficulty {
	return Difficulty{BallCount: s.ballCount, SpeedMultiplier: s.multiplier}
}

// Preset returns the last selected preset, or Custom.
func (s *Session) Preset() Preset { return s.preset }

// SoundEnabled reports whether cues are forwarded to cue sinks.
func (s *Session) SoundEnabled() bool { return s.sound }

// Ticks returns the number of frames driven so far.
func (s *Session) Ticks() uint64 { return s.tick }

// Snapshot is a copy of the visible session state.
type Snapshot struct {
	ID              string    `json:"id"`
	Tick            uint64    `json:"tick"`
	State           GameState `json:"status"`
	Score           Score     `json:"score"`
	Player          Paddle    `json:"player1"`
	Opponent        Paddle    `json:"player2"`
	Balls           []Ball    `json:"balls"`
	Field           Field     `json:"field"`
	Preset          Preset    `json:"preset"`
	BallCount       int       `json:"ballCount"`
	SpeedMultiplier float32   `json:"speedMultiplier"`
	Sound           bool      `json:"sound"`
}

// Snapshot copies the current state so it can leave the driver goroutine.
func (s *Session) Snapshot() Snapshot {
	balls := make([]Ball, len(s.balls))
	for i, b := range s.balls {
		balls[i] = *b
	}
	return Snapshot{
		ID:              s.ID,
		Tick:            s.tick,
		State:           s.state,
		Score:           s.score,
		Player:          *s.player,
		Opponent:        *s.opponent,
		Balls:           balls,
		Field:           s.cfg.Field,
		Preset:          s.preset,
		BallCount:       s.ballCount,
		SpeedMultiplier: s.multiplier,
		Sound:           s.sound,
	}
}
