package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/cardeval/internal/config"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" help:"Path to HCL config file" default:"${config_file}" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error); overrides the config file"`
	NoColor  bool   `help:"Disable colored output" env:"NO_COLOR"`

	out io.Writer
}

// env is what a command needs once the globals are resolved.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	levelName := cfg.LogLevel
	if g.LogLevel != "" {
		levelName = g.LogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "cardeval",
	})

	out := g.out
	if out == nil {
		out = os.Stdout
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Loaded config", "path", g.Config, "format", cfg.Format)
	return &env{cfg: cfg, logger: logger, out: out}, nil
}

// colorProfile is the profile used for output that does not go through
// lipgloss's default renderer.
func (g *Globals) colorProfile() termenv.Profile {
	if g.NoColor {
		return termenv.Ascii
	}
	return lipgloss.ColorProfile()
}

// signalContext returns a context cancelled on interrupt or SIGTERM.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func formatDuration(d time.Duration) string {
	return d.Truncate(time.Millisecond).String()
}
