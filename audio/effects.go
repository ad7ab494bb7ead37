package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects an oscillator waveform
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a phase in [0,1) to a sample in [-1,1]
var waveforms = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// cue describes one synthesized effect
type cue struct {
	wave     WaveType
	freq     float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
}

var cues = map[SoundType]cue{
	SoundShoot:   {wave: WaveSquare, freq: 660, duration: 60 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond},
	SoundHit:     {wave: WaveSaw, freq: 140, duration: 90 * time.Millisecond, attack: time.Millisecond, release: 60 * time.Millisecond},
	SoundDestroy: {wave: WaveNoise, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 250 * time.Millisecond},
}

// Game over jingle, one sine note per entry
var gameOverNotes = [...]float64{440.0, 349.23, 261.63}

const (
	gameOverNote    = 220 * time.Millisecond
	gameOverAttack  = 10 * time.Millisecond
	gameOverRelease = 120 * time.Millisecond
)

// NewOscillator streams duration worth of a mono waveform on both channels
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := waveforms[WaveSine]
	if wave >= 0 && int(wave) < len(waveforms) {
		shape = waveforms[wave]
	}
	step := freq / float64(rate)
	remaining := rate.N(duration)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if remaining <= 0 {
			return 0, false
		}
		n := min(len(samples), remaining)
		for i := range n {
			v := shape(phase)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
		}
		remaining -= n
		return n, true
	})
}

// envelope applies a linear attack and release over a fixed length
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope wraps s with a linear fade in and fade out
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		total:   rate.N(duration),
		attack:  rate.N(attack),
		release: rate.N(release),
	}
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.total - pos; e.release > 0 && left < e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), e.total-e.pos)])
	for i := range n {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// newVolume scales a stream linearly; beep's volume is a log2 exponent so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func (cfg *AudioConfig) volume(st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

func (cfg *AudioConfig) synth(st SoundType) beep.Streamer {
	c := cues[st]
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(c.freq, c.duration, c.wave, rate)
	return newVolume(NewEnvelope(osc, c.duration, c.attack, c.release, rate), cfg.volume(st))
}

// CreateShootSound generates a short square blip
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	return cfg.synth(SoundShoot)
}

// CreateHitSound generates a low saw thud
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	return cfg.synth(SoundHit)
}

// CreateDestroySound generates a noise burst
func CreateDestroySound(cfg *AudioConfig) beep.Streamer {
	return cfg.synth(SoundDestroy)
}

// CreateGameOverSound generates a descending three-note sine sequence
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := make([]beep.Streamer, 0, len(gameOverNotes))
	for _, freq := range gameOverNotes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			tone = NewOscillator(freq, gameOverNote, WaveSine, rate)
		}
		note := beep.Take(rate.N(gameOverNote), tone)
		seq = append(seq, NewEnvelope(note, gameOverNote, gameOverAttack, gameOverRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	if soundType == SoundGameOver {
		return CreateGameOverSound(cfg)
	}
	if _, ok := cues[soundType]; !ok {
		return nil
	}
	return cfg.synth(soundType)
}
