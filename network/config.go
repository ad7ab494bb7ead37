package network

import (
	"time"

	"github.com/lixenwraith/tile-fighter/config"
)

// Config holds stats endpoint configuration
type Config struct {
	// Address to bind, host:port
	Address string

	// Path the websocket upgrade is served on
	Path string

	// Publish interval for stats frames
	Interval time.Duration

	// Connection limits
	MaxPeers int

	// Extra origin hosts (host[:port]) accepted besides the serving host
	// Requests without an Origin header are non-browser clients and always accepted
	AllowedOrigins []string

	// Timing
	WriteTimeout time.Duration
	PongTimeout  time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns loopback defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         "127.0.0.1:7070",
		Path:            "/stats",
		Interval:        time.Second,
		MaxPeers:        8,
		WriteTimeout:    5 * time.Second,
		PongTimeout:     30 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		SendQueueSize:   16,
	}
}

// FromConfig applies the [stats] section over the defaults
func FromConfig(c config.StatsConfig) *Config {
	cfg := DefaultConfig()
	if c.Address != "" {
		cfg.Address = c.Address
	}
	if c.Interval > 0 {
		cfg.Interval = c.Interval
	}
	cfg.AllowedOrigins = append(cfg.AllowedOrigins, c.AllowedOrigins...)
	return cfg
}
