// Package audio plays short cues for the orbital viewer
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/orbital/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager mixes viewer cues onto the speaker
// Every Play call is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops the mixer; the speaker itself stays open
func (sm *SoundManager) Cleanup() {
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

// SetMuted silences subsequent cues without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayReject plays a short low buzz for a rejected quantum number change
func (sm *SoundManager) PlayReject() {
	sm.play(newBuzzGenerator(sampleRate, parameter.RejectSoundFreq), parameter.RejectSoundDuration, parameter.RejectSoundVolume)
}

// PlayState plays a tone whose pitch rises a semitone per principal quantum number
func (sm *SoundManager) PlayState(n int) {
	tone, err := generators.SineTone(sampleRate, StateFrequency(n))
	if err != nil {
		return
	}
	sm.play(tone, parameter.StateToneDuration, parameter.StateToneVolume)
}

// StateFrequency is the tone frequency for principal quantum number n
func StateFrequency(n int) float64 {
	return parameter.StateToneBaseFreq * math.Pow(2, float64(n-1)/12)
}

func (sm *SoundManager) play(s beep.Streamer, d time.Duration, volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	cue := &effects.Gain{Streamer: beep.Take(sampleRate.N(d), s), Gain: volume - 1}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}

// buzzGenerator produces a harsh tone from a fundamental and two harmonics
type buzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzzGenerator(sr beep.SampleRate, freq float64) *buzzGenerator {
	return &buzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		sample *= math.Min(t/0.02, 1.0)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}
