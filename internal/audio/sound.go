// Package audio synthesises the board's sound effects: a short click when a
// piece lands and a low buzz when a placement is rejected.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/Garsondee/Reversi-Board/internal/board"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	clickDuration = 60 * time.Millisecond
	buzzDuration  = 150 * time.Millisecond
	buzzFreq      = 120.0
	whiteClickHz  = 880.0
	blackClickHz  = 660.0
)

// Player plays the effects.
type Player interface {
	Place(c board.Color)
	Reject()
	Close()
}

// Silent discards every effect.
type Silent struct{}

func (Silent) Place(board.Color) {}
func (Silent) Reject()           {}
func (Silent) Close()            {}

// SoundManager mixes effects into the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager with a gain in 0..1.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker. It is safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Place plays a click pitched by color.
func (sm *SoundManager) Place(c board.Color) {
	freq := whiteClickHz
	if c == board.Black {
		freq = blackClickHz
	}
	sm.play(beep.Take(sampleRate.N(clickDuration), NewClickGenerator(sampleRate, freq, sm.volume)))
}

// Reject plays the occupied-cell buzz.
func (sm *SoundManager) Reject() {
	sm.play(beep.Take(sampleRate.N(buzzDuration), NewBuzzGenerator(sampleRate, buzzFreq, sm.volume)))
}

// Close silences the mixer.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ClickGenerator is a decaying sine blip.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewClickGenerator creates a click at freq Hz.
func NewClickGenerator(sr beep.SampleRate, freq, gain float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := math.Sin(2*math.Pi*g.freq*t) * math.Exp(-t*60) * 0.4 * g.gain
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a harsh low buzz with a short fade-in.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewBuzzGenerator creates a buzz at freq Hz.
func NewBuzzGenerator(sr beep.SampleRate, freq, gain float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq, gain: gain}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics.
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2 * g.gain

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
