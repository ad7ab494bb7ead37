package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/tile-fighter/asset"
	"github.com/lixenwraith/tile-fighter/audio"
	"github.com/lixenwraith/tile-fighter/config"
	"github.com/lixenwraith/tile-fighter/controller"
	"github.com/lixenwraith/tile-fighter/data"
	"github.com/lixenwraith/tile-fighter/input"
	"github.com/lixenwraith/tile-fighter/network"
	"github.com/lixenwraith/tile-fighter/scripting"
)

// services holds the optional collaborators built from config
// Every failure here is logged and degrades to a default; none stops startup
type services struct {
	assets  *asset.Provider
	tables  *data.Tables
	keys    *input.KeyTable
	sound   *audio.SoundManager
	scripts *scripting.Engine
	stats   *network.Service

	closers []func()
}

func buildServices(cfg *config.Config, log *zap.Logger, mute bool) *services {
	s := &services{}

	s.assets = asset.NewProvider(log.Named("asset"))
	if err := s.assets.Init(cfg.Data.Assets); err != nil {
		log.Warn("asset dir unavailable, using fallback colors", zap.String("dir", cfg.Data.Assets), zap.Error(err))
		s.assets.MarkReady()
	}

	s.tables = loadTables(cfg.Data.Tables, log)
	s.keys = loadKeys(cfg.Data.Keymap, log)

	audioCfg := audio.FromConfig(cfg.Audio)
	if mute {
		audioCfg.Enabled = false
	}
	s.sound = audio.NewSoundManager(audioCfg, log.Named("audio"))
	if err := s.sound.Initialize(); err != nil {
		log.Info("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		s.closers = append(s.closers, s.sound.Cleanup)
	}

	if cfg.Scripting.Enabled {
		eng, err := scripting.NewEngine(cfg.Scripting.Dir, log.Named("scripting"))
		if err != nil {
			log.Warn("scripting disabled", zap.String("dir", cfg.Scripting.Dir), zap.Error(err))
		} else {
			s.scripts = eng
			s.closers = append(s.closers, eng.Close)
		}
	}

	if cfg.Stats.Enabled {
		s.stats = network.NewService(network.FromConfig(cfg.Stats), log)
	}
	return s
}

func loadTables(path string, log *zap.Logger) *data.Tables {
	if path != "" {
		t, err := data.LoadTables(path)
		if err == nil {
			return t
		}
		log.Warn("model tables unreadable, using built-in scene", zap.String("path", path), zap.Error(err))
	}
	t, err := data.DefaultTables()
	if err != nil {
		// Embedded data is part of the binary
		panic(err)
	}
	return t
}

func loadKeys(path string, log *zap.Logger) *input.KeyTable {
	base := input.DefaultKeyTable()
	if path == "" {
		return base
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("keymap unreadable, using defaults", zap.String("path", path), zap.Error(err))
		return base
	}
	override, err := input.LoadKeyConfig(raw)
	if err != nil {
		log.Warn("keymap invalid, using defaults", zap.String("path", path), zap.Error(err))
		return base
	}
	return input.MergeKeyTable(base, override)
}

// controllerOptions wires the services into the controller
func (s *services) controllerOptions(log *zap.Logger) []controller.Option {
	opts := []controller.Option{
		controller.WithLogger(log.Named("controller")),
		controller.WithAssets(s.assets),
		controller.WithTables(s.tables),
		controller.WithSound(s.sound),
	}
	if s.scripts != nil {
		opts = append(opts, controller.WithResolver(s.scripts))
	}
	if s.stats != nil {
		opts = append(opts, controller.WithPublisher(s.stats))
	}
	return opts
}

// Close releases the services in reverse order
func (s *services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}
