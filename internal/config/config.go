package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
)

// Default values for configuration
const (
	DefaultArenaWidth     = 800
	DefaultArenaHeight    = 600
	DefaultFPS            = 40
	DefaultBallSpeed      = 400
	DefaultBallDiameter   = 11
	DefaultPaddleOffset   = 4
	DefaultPaddleWidth    = 5
	DefaultPaddleHeight   = 80
	DefaultPaddleSpeed    = 1200
	DefaultMaxLaunchAngle = math.Pi / 4
	DefaultMaxBounceAngle = math.Pi / 3
	DefaultPoints         = 10
	DefaultServeDelay     = time.Second
)

// Color is a hex colour such as "#ff8800" or "#fff".
type Color struct {
	colorful.Color
}

// MustColor parses a hex colour and panics on failure. Meant for literals.
func MustColor(hex string) Color {
	var c Color
	if err := c.UnmarshalText([]byte(hex)); err != nil {
		panic(err)
	}
	return c
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := colorful.Hex(string(text))
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	c.Color = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Config holds every tunable of a game. It is built once and passed by value.
type Config struct {
	ArenaWidth  float64 `env:"PONGO_ARENA_WIDTH"`
	ArenaHeight float64 `env:"PONGO_ARENA_HEIGHT"`
	ArenaColor  Color   `env:"PONGO_ARENA_COLOR"`
	FPS         int     `env:"PONGO_FPS"`

	BallColor    Color   `env:"PONGO_BALL_COLOR"`
	BallSpeed    float64 `env:"PONGO_BALL_SPEED"`
	BallDiameter float64 `env:"PONGO_BALL_DIAMETER"`

	PaddleOffset float64 `env:"PONGO_PADDLE_OFFSET"`
	PaddleWidth  float64 `env:"PONGO_PADDLE_WIDTH"`
	PaddleHeight float64 `env:"PONGO_PADDLE_HEIGHT"`
	PaddleSpeed  float64 `env:"PONGO_PADDLE_SPEED"`
	LeftColor    Color   `env:"PONGO_LEFT_COLOR"`
	RightColor   Color   `env:"PONGO_RIGHT_COLOR"`

	MaxLaunchAngle float64 `env:"PONGO_MAX_LAUNCH_ANGLE"`
	MaxBounceAngle float64 `env:"PONGO_MAX_BOUNCE_ANGLE"`

	PointsToWin int           `env:"PONGO_POINTS"`
	ServeDelay  time.Duration `env:"PONGO_SERVE_DELAY"`
	Seed        uint64        `env:"PONGO_SEED"`
	Mute        bool          `env:"PONGO_MUTE"`
	LogFile     string        `env:"PONGO_LOG"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		ArenaWidth:     DefaultArenaWidth,
		ArenaHeight:    DefaultArenaHeight,
		ArenaColor:     MustColor("#000000"),
		FPS:            DefaultFPS,
		BallColor:      MustColor("#ffffff"),
		BallSpeed:      DefaultBallSpeed,
		BallDiameter:   DefaultBallDiameter,
		PaddleOffset:   DefaultPaddleOffset,
		PaddleWidth:    DefaultPaddleWidth,
		PaddleHeight:   DefaultPaddleHeight,
		PaddleSpeed:    DefaultPaddleSpeed,
		LeftColor:      MustColor("#ffffff"),
		RightColor:     MustColor("#ffffff"),
		MaxLaunchAngle: DefaultMaxLaunchAngle,
		MaxBounceAngle: DefaultMaxBounceAngle,
		PointsToWin:    DefaultPoints,
		ServeDelay:     DefaultServeDelay,
	}
}

// ParseArgs starts from Default, applies PONGO_* environment variables and
// then command line flags, and validates the result.
func ParseArgs(args []string) (*Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("pongo", flag.ContinueOnError)

	fs.Float64Var(&cfg.ArenaWidth, "width", cfg.ArenaWidth, "arena width in pixels")
	fs.Float64Var(&cfg.ArenaHeight, "height", cfg.ArenaHeight, "arena height in pixels")
	fs.TextVar(&cfg.ArenaColor, "arena-color", cfg.ArenaColor, "arena background color")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frames per second")

	fs.TextVar(&cfg.BallColor, "ball-color", cfg.BallColor, "ball color")
	fs.Float64Var(&cfg.BallSpeed, "ball-speed", cfg.BallSpeed, "ball speed in pixels per second")
	fs.Float64Var(&cfg.BallDiameter, "ball-diameter", cfg.BallDiameter, "ball diameter in pixels")

	fs.Float64Var(&cfg.PaddleOffset, "paddle-offset", cfg.PaddleOffset, "gap between a paddle and its side wall")
	fs.Float64Var(&cfg.PaddleWidth, "paddle-width", cfg.PaddleWidth, "paddle width in pixels")
	fs.Float64Var(&cfg.PaddleHeight, "paddle-height", cfg.PaddleHeight, "paddle height in pixels")
	fs.Float64Var(&cfg.PaddleSpeed, "paddle-speed", cfg.PaddleSpeed, "keyboard paddle speed in pixels per second")
	fs.TextVar(&cfg.LeftColor, "left-color", cfg.LeftColor, "left paddle color")
	fs.TextVar(&cfg.RightColor, "right-color", cfg.RightColor, "right paddle color")

	fs.Float64Var(&cfg.MaxLaunchAngle, "max-launch-angle", cfg.MaxLaunchAngle, "max serve angle in radians")
	fs.Float64Var(&cfg.MaxBounceAngle, "max-bounce-angle", cfg.MaxBounceAngle, "max paddle bounce angle in radians")

	fs.IntVar(&cfg.PointsToWin, "points", cfg.PointsToWin, "points to win (0 plays forever)")
	fs.DurationVar(&cfg.ServeDelay, "serve-delay", cfg.ServeDelay, "pause before each serve")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one)")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write a log to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value float64
	}{
		{"width", c.ArenaWidth},
		{"height", c.ArenaHeight},
		{"fps", float64(c.FPS)},
		{"ball speed", c.BallSpeed},
		{"ball diameter", c.BallDiameter},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle speed", c.PaddleSpeed},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.value))
		}
	}

	if c.PaddleOffset < 0 {
		errs = append(errs, fmt.Errorf("paddle offset must not be negative, got %v", c.PaddleOffset))
	}
	if !validAngle(c.MaxLaunchAngle) {
		errs = append(errs, fmt.Errorf("max launch angle must be in [0, pi/2), got %v", c.MaxLaunchAngle))
	}
	if !validAngle(c.MaxBounceAngle) {
		errs = append(errs, fmt.Errorf("max bounce angle must be in [0, pi/2), got %v", c.MaxBounceAngle))
	}
	if c.PointsToWin < 0 {
		errs = append(errs, fmt.Errorf("points must not be negative, got %d", c.PointsToWin))
	}
	if c.ServeDelay < 0 {
		errs = append(errs, fmt.Errorf("serve delay must not be negative, got %s", c.ServeDelay))
	}

	// Only check the fit once the sizes themselves are sane.
	if len(errs) == 0 {
		if c.PaddleHeight > c.ArenaHeight {
			errs = append(errs, errors.New("paddle is taller than the arena"))
		}
		if 2*c.BallDiameter > c.ArenaHeight {
			errs = append(errs, errors.New("ball is too large for the arena height"))
		}
		if 2*(c.PaddleOffset+c.PaddleWidth)+2*c.BallDiameter > c.ArenaWidth {
			errs = append(errs, errors.New("paddles and ball do not fit the arena width"))
		}
	}

	return errors.Join(errs...)
}

func validAngle(a float64) bool {
	return a >= 0 && a < math.Pi/2
}
