package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/config"
	"github.com/lixenwraith/tile-fighter/controller"
	"github.com/lixenwraith/tile-fighter/core"
	"github.com/lixenwraith/tile-fighter/input"
	"github.com/lixenwraith/tile-fighter/logging"
	"github.com/lixenwraith/tile-fighter/render"
	"github.com/lixenwraith/tile-fighter/status"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tile-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.ResolvePath(*configFlag))
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer log.Sync()

	svc := buildServices(cfg, log, *muteFlag)
	defer svc.Close()

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error("render surface unavailable", zap.Error(err))
		return fmt.Errorf("%w: %v", controller.ErrNoSurface, err)
	}
	if err := screen.Init(); err != nil {
		log.Error("render surface init failed", zap.Error(err))
		return fmt.Errorf("%w: %v", controller.ErrNoSurface, err)
	}
	core.SetTerminalReset(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	display, err := render.NewTerminalDisplay(screen)
	if err != nil {
		return err
	}

	ctrl, err := controller.New(display, cfg, svc.controllerOptions(log)...)
	if err != nil {
		log.Error("controller init failed", zap.Error(err))
		return err
	}

	if svc.stats != nil {
		svc.stats.SetSource(ctrl)
		if err := svc.stats.Start(); err != nil {
			log.Warn("stats endpoint disabled", zap.Error(err))
		} else {
			defer svc.stats.Stop()
		}
	}

	if err := ctrl.Start(); err != nil {
		log.Error("initial start failed", zap.Error(err))
	}
	defer ctrl.Stop()

	handler := input.NewHandler(ctrl, svc.keys, log.Named("input"))
	handler.OnResize = screen.Sync

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 256)
	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	log.Info("tile-fighter running", zap.Int("fps", cfg.Game.FPS))
	err = ctrl.Run(ctx, events, handler.HandleEvent)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	log.Info("tile-fighter exiting", zap.Uint64("frames", uint64(ctrl.Registry().Ints.Get(status.KeyFrames).Load())))
	return err
}
