package slots

import (
	"time"

	"github.com/osse101/reelslot/internal/domain"
)

// SoundPlayer plays engine cues. Calls must return immediately; the engine
// never waits on playback.
type SoundPlayer interface {
	PlayOnce(cue domain.Cue)
	// Loop replaces the background track. Zero offsets loop the whole cue.
	Loop(cue domain.Cue, startMs, endMs int)
	// Pause stops the background track
	Pause()
	// IsPlaying reports whether a background track is running
	IsPlaying() bool
}

// Clock is the wall-clock source for the lever and stop gates
type Clock interface {
	Now() time.Time
}

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NopSound discards every cue
type NopSound struct{}

func (NopSound) PlayOnce(domain.Cue) {}

func (NopSound) Loop(domain.Cue, int, int) {}

func (NopSound) Pause() {}

func (NopSound) IsPlaying() bool { return false }
