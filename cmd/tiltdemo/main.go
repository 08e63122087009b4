// Package main is the entry point for the tiltkit demo viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tiltkit/internal/config"
	"github.com/Faultbox/tiltkit/internal/logger"
	"github.com/Faultbox/tiltkit/internal/render"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== tiltkit demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	tiltCfg, err := cfg.Tilt.Build()
	if err != nil {
		logger.Error("invalid tilt config", zap.Error(err))
		os.Exit(1)
	}

	win, err := render.NewWindow(render.WindowConfig{
		Title:      "tiltkit",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	applier, err := render.NewGLApplier(win.GetSize())
	if err != nil {
		logger.Error("failed to create applier", zap.Error(err))
		os.Exit(1)
	}
	defer applier.Close()

	if err := applier.Apply(tiltCfg); err != nil {
		logger.Error("failed to apply tilt config", zap.Error(err))
		os.Exit(1)
	}

	if err := run(win, applier); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

// run drives the SDL event and draw loop until the window closes.
func run(win *render.Window, applier *render.GLApplier) error {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					applier.Resize(int(e.Data1), int(e.Data2))
				}
			}
		}

		applier.Draw(time.Now())
		win.SwapBuffers()
	}
}
