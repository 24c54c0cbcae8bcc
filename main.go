package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jtestard/pingpong/config"
	"github.com/jtestard/pingpong/display"
	"github.com/jtestard/pingpong/pong"
	"github.com/jtestard/pingpong/remote"
	"github.com/jtestard/pingpong/tui"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	addr       string
	preset     string
	mute       bool
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "pingpong",
		Short:        "Two-paddle ping pong against the computer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWindow(cmd.Context(), opts)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&opts.addr, "addr", "0.0.0.0:8080", "websocket listen address, empty to disable")
	flags.StringVar(&opts.preset, "preset", "", "difficulty preset: easy, medium, hard or extreme")
	flags.BoolVar(&opts.mute, "mute", false, "start with sound off")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	tuiCmd.Flags().StringVar(&opts.logFile, "log", "pingpong.log", "log file while the terminal UI is active")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run headless, controlled over the websocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHeadless(cmd.Context(), opts)
		},
	}

	root.AddCommand(tuiCmd, serveCmd)
	return root
}

func newSession(opts *options) (*pong.Session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	s := pong.NewSession(cfg)
	if opts.preset != "" {
		p, err := pong.ParsePreset(opts.preset)
		if err != nil {
			return nil, err
		}
		if err := s.SetPreset(p); err != nil {
			return nil, err
		}
	}
	if opts.mute {
		s.SetSound(false)
	}
	s.Subscribe(pong.SinkFunc(func(e pong.Event) {
		switch e.Kind {
		case pong.Win:
			log.Printf("session %s: player wins %d-%d", s.ID, e.PlayerScore, e.OpponentScore)
		case pong.Lose:
			log.Printf("session %s: computer wins %d-%d", s.ID, e.OpponentScore, e.PlayerScore)
		}
	}))
	log.Printf("session %s: %s, %d ball(s) at x%.1f", s.ID, s.Preset(), s.Difficulty().BallCount, s.Difficulty().SpeedMultiplier)
	return s, nil
}

// startRemote serves the websocket in the background. It returns nil when
// no address is configured.
func startRemote(ctx context.Context, s *pong.Session, addr string) *remote.Hub {
	if addr == "" {
		return nil
	}
	hub := remote.NewHub(s)
	s.Subscribe(hub)
	go func() {
		log.Printf("starting websocket server on %s...", addr)
		if err := hub.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("websocket server: %v", err)
		}
	}()
	return hub
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runWindow(parent context.Context, opts *options) error {
	ctx, cancel := signalContext(parent)
	defer cancel()

	log.Println("bootstraping new game...")
	s, err := newSession(opts)
	if err != nil {
		return err
	}

	sp, err := display.NewSoundPlayer()
	if err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
		s.SetSound(false)
	} else {
		s.SubscribeCues(sp)
	}

	var pub display.Publisher
	if hub := startRemote(ctx, s, opts.addr); hub != nil {
		pub = hub
	}
	g, err := display.NewGame(ctx, s, pub)
	if err != nil {
		return fmt.Errorf("init window: %w", err)
	}

	log.Println("starting the game...")
	return display.Run(g, "Ping Pong")
}

func runTUI(parent context.Context, opts *options) error {
	ctx, cancel := signalContext(parent)
	defer cancel()

	f, err := tea.LogToFile(opts.logFile, "pingpong ")
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	var pub tui.Publisher
	if hub := startRemote(ctx, s, opts.addr); hub != nil {
		pub = hub
	}
	return tui.Run(ctx, s, pub)
}

func runHeadless(parent context.Context, opts *options) error {
	ctx, cancel := signalContext(parent)
	defer cancel()

	if opts.addr == "" {
		return errors.New("serve needs --addr")
	}
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	hub := startRemote(ctx, s, opts.addr)

	log.Println("running headless...")
	err = s.Run(ctx, hub.Frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
