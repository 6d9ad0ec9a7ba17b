package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wickus/pongo/internal/audio"
	"github.com/wickus/pongo/internal/config"
	"github.com/wickus/pongo/internal/game"
	"github.com/wickus/pongo/internal/ui"
)

// App wires the terminal, audio and frame loop around one game.
type App struct {
	cfg *config.Config
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run opens the terminal, plays until the player quits or a signal arrives,
// and restores the terminal on the way out.
func (a *App) Run() error {
	logger, closeLog, err := a.openLog()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting: arena %.0fx%.0f at %d fps, seed %d", a.cfg.ArenaWidth, a.cfg.ArenaHeight, a.cfg.FPS, seed)

	var sounds Sounds = silent{}
	if !a.cfg.Mute {
		player, err := audio.NewPlayer()
		if err != nil {
			// Non-fatal, the game runs without sound
			logger.Printf("audio initialization failed: %v", err)
		}
		defer player.Close()
		sounds = player
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	renderer := ui.NewRenderer(screen, a.cfg.ArenaWidth, a.cfg.ArenaHeight)
	input := ui.NewInput(screen, renderer)
	defer input.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := &Loop{
		State:    game.New(*a.cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		Clock:    SystemClock{},
		Input:    input,
		Renderer: renderer,
		Pacer:    NewFramePacer(a.cfg.FPS),
		Sounds:   sounds,
		Logger:   logger,
	}
	err = loop.Run(ctx)
	logger.Printf("stopped: left %d - %d right", loop.State.Left.Score, loop.State.Right.Score)
	return err
}

// openLog returns a logger writing to the configured file, or discarding
// output since the terminal belongs to the game.
func (a *App) openLog() (*log.Logger, func(), error) {
	if a.cfg.LogFile == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log: %w", err)
	}
	return log.New(f, "pongo ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

type silent struct{}

func (silent) PaddleHit()  {}
func (silent) WallBounce() {}
func (silent) Score()      {}
