// Package audio plays the explosion effect when a commit square is destroyed.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate        = beep.SampleRate(44100)
	explosionDuration = 350 * time.Millisecond
)

// Player triggers sound effects. Calls never block the game loop.
type Player interface {
	Explosion()
	Close()
}

// Noop is a Player that stays silent. Used over SSH and when no audio
// device is available.
type Noop struct{}

func (Noop) Explosion() {}
func (Noop) Close()     {}

// BeepPlayer mixes effects onto the local speaker.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	seed        int64
	initialized bool
}

// NewBeepPlayer initialises the speaker and starts the mixer. volume is
// linear in (0, 1].
func NewBeepPlayer(volume float64) (*BeepPlayer, error) {
	p := &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
		seed:   1,
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Explosion plays a short burst of filtered noise over a low rumble.
func (p *BeepPlayer) Explosion() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.seed++
	s := withVolume(beep.Take(sampleRate.N(explosionDuration), NewBlast(sampleRate, p.seed)), p.volume)

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// math.Log2(0) is -Inf, so zero volume maps to silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
