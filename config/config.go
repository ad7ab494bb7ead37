package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that overrides the config path
const EnvPath = "TILE_FIGHTER_CONFIG"

// DefaultPath is read when neither a flag nor EnvPath names a file
const DefaultPath = "tile-fighter.toml"

type Config struct {
	Game      GameConfig      `toml:"game"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
	Audio     AudioConfig     `toml:"audio"`
	Scripting ScriptingConfig `toml:"scripting"`
	Stats     StatsConfig     `toml:"stats"`
	Data      DataConfig      `toml:"data"`
}

type GameConfig struct {
	FPS             int     `toml:"fps"`
	CharacterSpeed  float64 `toml:"character_speed"`  // px per frame
	ProjectileSpeed float64 `toml:"projectile_speed"` // px per frame
	ShootCooldown   int     `toml:"shoot_cooldown"`   // frames
	HitDamage       int     `toml:"hit_damage"`
	PlayerHealth    int     `toml:"player_health"`
	BossHealth      int     `toml:"boss_health"`
	ProjectileSize  float64 `toml:"projectile_size"` // blocks
	MapWidth        int     `toml:"map_width"`       // blocks
	MapHeight       int     `toml:"map_height"`      // blocks
	DebugCollision  bool    `toml:"debug_collision"`
}

type DisplayConfig struct {
	ShowHUD bool `toml:"show_hud"`
}

type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Format  string `toml:"format"` // "json" or "console"
	Dir     string `toml:"dir"`
	File    string `toml:"file"`
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate"`
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type StatsConfig struct {
	Enabled        bool          `toml:"enabled"`
	Address        string        `toml:"address"`
	Interval       time.Duration `toml:"interval"`
	AllowedOrigins []string      `toml:"allowed_origins"` // browser origins besides the serving host
}

type DataConfig struct {
	Tables string `toml:"tables"` // empty uses the embedded tables
	Assets string `toml:"assets"` // directory of PNG sprite sheets
	Keymap string `toml:"keymap"` // optional TOML key binding overrides
}

// FrameDuration returns the fixed simulation step
func (g GameConfig) FrameDuration() time.Duration {
	if g.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.FPS)
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvePath picks the flag value, then EnvPath, then DefaultPath
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Game.FPS <= 0:
		return fmt.Errorf("game.fps must be positive, got %d", c.Game.FPS)
	case c.Game.CharacterSpeed <= 0 || c.Game.ProjectileSpeed <= 0:
		return fmt.Errorf("game speeds must be positive")
	case c.Game.MapWidth <= 0 || c.Game.MapHeight <= 0:
		return fmt.Errorf("game map size must be positive")
	case c.Game.ProjectileSize <= 0:
		return fmt.Errorf("game.projectile_size must be positive")
	}
	return nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Game: GameConfig{
			FPS:             60,
			CharacterSpeed:  3,
			ProjectileSpeed: 6,
			ShootCooldown:   20,
			HitDamage:       10,
			PlayerHealth:    100,
			BossHealth:      300,
			ProjectileSize:  0.5,
			MapWidth:        48,
			MapHeight:       24,
		},
		Display: DisplayConfig{
			ShowHUD: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
			Dir:     "logs",
			File:    "tile-fighter.log",
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   44100,
		},
		Scripting: ScriptingConfig{
			Enabled: false,
			Dir:     "scripts",
		},
		Stats: StatsConfig{
			Enabled:  false,
			Address:  "127.0.0.1:7070",
			Interval: time.Second,
		},
	}
}
