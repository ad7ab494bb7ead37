package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/tile-fighter/config"
	"github.com/lixenwraith/tile-fighter/controller"
	"github.com/lixenwraith/tile-fighter/input"
	"github.com/lixenwraith/tile-fighter/render"
)

func TestLoadKeysFallsBackOnBadFile(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(obsCore)

	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nx = \"fly\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	kt := loadKeys(path, log)
	if _, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !ok {
		t.Error("defaults not used after invalid keymap")
	}
	if logs.FilterMessage("keymap invalid, using defaults").Len() != 1 {
		t.Errorf("expected one warning, got %v", logs.All())
	}
}

func TestLoadKeysOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.toml")
	if err := os.WriteFile(path, []byte("[keys]\nx = \"shoot\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	kt := loadKeys(path, zap.NewNop())
	got, ok := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	if !ok || got.Type != input.IntentShoot {
		t.Errorf("x = %+v, want shoot", got)
	}
}

func TestLoadTablesFallsBack(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	tables := loadTables(filepath.Join(t.TempDir(), "missing.yaml"), zap.New(obsCore))
	if tables == nil || len(tables.Models) == 0 {
		t.Fatal("built-in tables not loaded")
	}
	if logs.Len() != 1 {
		t.Errorf("expected one warning, got %d", logs.Len())
	}
}

func TestBuildServicesWiresController(t *testing.T) {
	dir := t.TempDir()
	script := []byte("function on_direct_collision(ctx) return nil end\n")
	if err := os.WriteFile(filepath.Join(dir, "hooks.lua"), script, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Scripting.Enabled = true
	cfg.Scripting.Dir = dir
	cfg.Stats.Enabled = true

	svc := buildServices(cfg, zap.NewNop(), true)
	defer svc.Close()

	if svc.scripts == nil || !svc.scripts.HasHook() {
		t.Fatal("scripting engine not loaded")
	}
	if svc.stats == nil {
		t.Fatal("stats service not created")
	}
	if svc.sound.IsInitialized() {
		t.Error("muted audio initialized")
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	display, err := render.NewTerminalDisplay(screen)
	if err != nil {
		t.Fatal(err)
	}

	ctrl, err := controller.New(display, cfg, svc.controllerOptions(zap.NewNop())...)
	if err != nil {
		t.Fatalf("controller.New() error = %v", err)
	}
	if err := ctrl.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	ctrl.Stop()
}
