package remote

import (
	"fmt"

	"github.com/jtestard/pingpong/pong"
)

// WsMessage is what a client sends. Type names the command; the other fields
// are read according to it.
type WsMessage struct {
	Type       string  `json:"type"`
	Actor      string  `json:"actor,omitempty"`
	Target     string  `json:"target,omitempty"`
	Preset     string  `json:"preset,omitempty"`
	Count      int     `json:"count,omitempty"`
	Multiplier float32 `json:"multiplier,omitempty"`
	Y          float32 `json:"y,omitempty"`
	Active     bool    `json:"active,omitempty"`
}

// WsGameState is pushed to clients on connect and after every frame.
type WsGameState struct {
	Type string `json:"type"`
	pong.Snapshot
}

// WsEvent carries one core event to clients.
type WsEvent struct {
	Type string `json:"type"`
	pong.Event
}

// Command converts m into a session command. Only the player paddle ("p1",
// or no actor) takes input; the opponent is computer-controlled.
func (m WsMessage) Command() (pong.Command, error) {
	cmd := pong.Command{Type: pong.CommandType(m.Type)}

	switch cmd.Type {
	case pong.CmdStart, pong.CmdPause, pong.CmdReset, pong.CmdSound:
	case pong.CmdPreset:
		p, err := pong.ParsePreset(m.Preset)
		if err != nil {
			return cmd, err
		}
		cmd.Preset = p
	case pong.CmdBallCount:
		cmd.Count = m.Count
	case pong.CmdSpeed:
		cmd.Multiplier = m.Multiplier
	case pong.CmdKeyDown, pong.CmdKeyUp:
		if err := m.checkActor(); err != nil {
			return cmd, err
		}
		d, ok := pong.ParseDirection(m.Target)
		if !ok {
			return cmd, fmt.Errorf("%w: key target %q", pong.ErrUnknownCommand, m.Target)
		}
		cmd.Direction = d
	case pong.CmdPointer:
		if err := m.checkActor(); err != nil {
			return cmd, err
		}
		cmd.Y = m.Y
	case pong.CmdTouch:
		if err := m.checkActor(); err != nil {
			return cmd, err
		}
		cmd.Y, cmd.Active = m.Y, m.Active
	default:
		return cmd, fmt.Errorf("%w: %q", pong.ErrUnknownCommand, m.Type)
	}
	return cmd, nil
}

func (m WsMessage) checkActor() error {
	if m.Actor == "" || m.Actor == "p1" {
		return nil
	}
	return fmt.Errorf("actor %q cannot be controlled remotely", m.Actor)
}
