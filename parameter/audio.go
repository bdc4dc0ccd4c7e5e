package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Reject buzz
const (
	RejectSoundDuration = 150 * time.Millisecond
	RejectSoundFreq     = 120.0
	RejectSoundVolume   = 0.2
)

// State change tone, pitch rises one semitone per principal quantum number
const (
	StateToneDuration = 90 * time.Millisecond
	StateToneBaseFreq = 440.0
	StateToneVolume   = 0.15
)
