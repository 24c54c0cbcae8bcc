package pong

// EventKind enumerates what the core reports to its collaborators.
type EventKind byte

const (
	ScoreChanged EventKind = iota
	Bounce
	Hit
	Miss
	Win
	Lose
	StateChanged
)

var eventNames = [...]string{
	ScoreChanged: "score",
	Bounce:       "bounce",
	Hit:          "hit",
	Miss:         "miss",
	Win:          "win",
	Lose:         "lose",
	StateChanged: "state",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// MarshalText lets the kind travel as a readable string.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsCue reports whether the event is meant to be heard.
func (k EventKind) IsCue() bool {
	switch k {
	case Bounce, Hit, Miss, Win, Lose:
		return true
	}
	return false
}

// Event is a notification emitted during a tick or a command.
type Event struct {
	Kind          EventKind `json:"event"`
	Tick          uint64    `json:"tick"`
	PlayerScore   int       `json:"player"`
	OpponentScore int       `json:"opponent"`
	State         GameState `json:"status"`
}

// EventSink receives events synchronously on the driver's goroutine. Sinks
// must not block.
type EventSink interface {
	HandleEvent(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// HandleEvent calls f(e).
func (f SinkFunc) HandleEvent(e Event) { f(e) }
