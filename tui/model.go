// Package tui runs a session in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jtestard/pingpong/pong"
)

const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'

	// Terminals report key presses but not releases, so a press holds the
	// direction for this many ticks and auto-repeat keeps it alive.
	holdTicks = 8

	minCols = 20
	minRows = 8
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Bold(true)
	fieldStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Publisher receives a snapshot after every frame.
type Publisher interface {
	Publish(pong.Snapshot)
}

type tickMsg time.Time

// Model is the bubbletea model. Its update loop is the session's frame
// driver.
type Model struct {
	session   *pong.Session
	publisher Publisher
	period    time.Duration

	held       [2]int
	cols, rows int
	status     string
}

// New wraps s; publisher may be nil.
func New(s *pong.Session, publisher Publisher) Model {
	return Model{
		session:   s,
		publisher: publisher,
		period:    time.Second / time.Duration(s.Config().TicksPerSecond),
		cols:      80,
		rows:      20,
	}
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, s *pong.Session, publisher Publisher) error {
	_, err := tea.NewProgram(New(s, publisher), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(v)

	case tea.WindowSizeMsg:
		m.cols = max(minCols, v.Width-2)
		m.rows = max(minRows, v.Height-6)
		return m, nil

	case tickMsg:
		in := m.session.Input()
		for d := range m.held {
			if m.held[d] > 0 {
				m.held[d]--
			}
			in.Keyboard.Press(pong.Direction(d), m.held[d] > 0)
		}
		m.session.Tick()
		if m.publisher != nil {
			m.publisher.Publish(m.session.Snapshot())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	var err error

	switch k.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "w", "k":
		m.held[pong.Up], m.held[pong.Down] = holdTicks, 0
	case "down", "s", "j":
		m.held[pong.Down], m.held[pong.Up] = holdTicks, 0
	case " ", "space", "enter":
		s.Start()
	case "p":
		s.Pause()
	case "r":
		s.Reset()
	case "m":
		s.ToggleSound()
	case "1", "2", "3", "4":
		err = s.SetPreset(pong.Presets()[k.String()[0]-'1'])
	case "+", "=":
		err = s.SetBallCount(s.Difficulty().BallCount + 1)
	case "-":
		err = s.SetBallCount(s.Difficulty().BallCount - 1)
	case "]":
		err = s.SetSpeedMultiplier(s.Difficulty().SpeedMultiplier + 0.5)
	case "[":
		err = s.SetSpeedMultiplier(s.Difficulty().SpeedMultiplier - 0.5)
	}

	m.status = ""
	if err != nil {
		m.status = err.Error()
	}
	return m, nil
}

// View renders the field scaled to the terminal.
func (m Model) View() string {
	s := m.session
	f := s.Config().Field
	sx := float32(m.cols) / f.Width
	sy := float32(m.rows) / f.Height

	grid := make([][]rune, m.rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", m.cols))
		grid[r][m.cols/2] = NetChar
	}
	plot := func(x, y float32, ch rune) {
		c, r := int(x*sx), int(y*sy)
		if r >= 0 && r < m.rows && c >= 0 && c < m.cols {
			grid[r][c] = ch
		}
	}
	for _, p := range []*pong.Paddle{s.Player(), s.Opponent()} {
		for y := p.Y; y < p.Y+p.Height; y += 1 / sy {
			plot(p.X, y, PaddleChar)
		}
	}
	for _, b := range s.Balls() {
		plot(b.X, b.Y, BallChar)
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}

	score := s.Score()
	d := s.Difficulty()
	header := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render("PING PONG"),
		scoreStyle.Render(fmt.Sprintf("%d : %d", score.Player, score.Opponent)),
		helpStyle.Render(fmt.Sprintf("%s · %d ball(s) · x%.1f · sound %v", s.Preset(), d.BallCount, d.SpeedMultiplier, s.SoundEnabled())),
	)

	var banner string
	switch s.State() {
	case pong.IdleState:
		banner = "press space to start"
	case pong.PauseState:
		banner = "paused"
	case pong.GameOverState:
		if w, _ := s.Winner(); w == pong.PlayerSide {
			banner = "you win!"
		} else {
			banner = "computer wins"
		}
	}
	if m.status != "" {
		banner = m.status
	}

	help := helpStyle.Render("↑/↓ move · space start · p pause · r reset · 1-4 preset · +/- balls · [/] speed · m sound · q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		fieldStyle.Render(strings.Join(lines, "\n")),
		bannerStyle.Render(banner),
		help,
	)
}
