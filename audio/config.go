package audio

import (
	"github.com/lixenwraith/tile-fighter/config"
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in mixer settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundShoot:    0.4,
			SoundHit:      0.6,
			SoundDestroy:  0.8,
			SoundGameOver: 1.0,
		},
	}
}

// FromConfig applies the [audio] section over the defaults, clamping the master volume
func FromConfig(c config.AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	if c.SampleRate > 0 {
		cfg.SampleRate = c.SampleRate
	}
	cfg.MasterVolume = min(max(c.MasterVolume, 0), 1)
	return cfg
}
