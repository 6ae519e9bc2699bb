package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	// SampleRate is the output rate of every voice
	SampleRate = beep.SampleRate(44100)

	// BufferDuration is the speaker buffer length
	BufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume scales every cue; 1 is unity gain
	DefaultMasterVolume = 0.6

	// AmbientVolume is applied on top of the master volume for the idle loop
	AmbientVolume = 0.35
)

// Log messages
const (
	LogMsgSpeakerStarted = "Audio output started"
	LogMsgUnknownCue     = "No voice for sound cue"
)
