package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Cue identifies a short feedback sound
type Cue int

const (
	CueStart Cue = iota
	CuePause
	CueReset
)

type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueStart: {{660, 70 * time.Millisecond}, {880, 90 * time.Millisecond}},
	CuePause: {{440, 120 * time.Millisecond}},
	CueReset: {{880, 60 * time.Millisecond}, {660, 60 * time.Millisecond}, {440, 80 * time.Millisecond}},
}

// CuePlayer plays transition cues through the system speaker
// All methods are safe to call before Initialize or after it failed; they become no-ops
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCuePlayer creates a player with volume in 0..1
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer
func (p *CuePlayer) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := p.streamer(cue)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// streamer builds the tone sequence for cue scaled to the player volume
func (p *CuePlayer) streamer(cue Cue) (beep.Streamer, error) {
	tones, ok := cueTones[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d tone %gHz: %w", cue, t.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(t.dur), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volumeExponent(p.volume),
		Silent:   p.volume <= 0,
	}, nil
}

// volumeExponent maps linear 0..1 volume onto effects.Volume's base-2 scale
func volumeExponent(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}

// cueLength returns the sample count of cue at the package sample rate
func cueLength(cue Cue) int {
	n := 0
	for _, t := range cueTones[cue] {
		n += sampleRate.N(t.dur)
	}
	return n
}
