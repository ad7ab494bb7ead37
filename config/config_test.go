package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FPS != 60 || cfg.Game.ShootCooldown != 20 || cfg.Game.MapWidth != 48 {
		t.Errorf("defaults not applied: %+v", cfg.Game)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	content := `
[game]
fps = 30
hit_damage = 25
debug_collision = true

[stats]
enabled = true
interval = "250ms"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.FPS != 30 || cfg.Game.HitDamage != 25 || !cfg.Game.DebugCollision {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.CharacterSpeed != 3 {
		t.Errorf("unset field lost its default: %v", cfg.Game.CharacterSpeed)
	}
	if !cfg.Stats.Enabled || cfg.Stats.Interval != 250*time.Millisecond {
		t.Errorf("stats = %+v", cfg.Stats)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if got := cfg.Game.FrameDuration(); got != time.Second/30 {
		t.Errorf("frame duration = %v", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("[game\nfps = "), 0o644)
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("malformed file err = %v", err)
	}

	zero := filepath.Join(dir, "zero.toml")
	os.WriteFile(zero, []byte("[game]\nfps = 0\n"), 0o644)
	if _, err := Load(zero); err == nil {
		t.Error("fps = 0 accepted")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Errorf("default = %q", got)
	}

	t.Setenv(EnvPath, "/etc/tf.toml")
	if got := ResolvePath(""); got != "/etc/tf.toml" {
		t.Errorf("env = %q", got)
	}
	if got := ResolvePath("cli.toml"); got != "cli.toml" {
		t.Errorf("flag = %q", got)
	}
}
