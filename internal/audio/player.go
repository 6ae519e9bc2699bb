package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/osse101/reelslot/internal/domain"
)

// Config tunes the player
type Config struct {
	SampleRate   beep.SampleRate
	MasterVolume float64
}

// DefaultConfig returns the standard output settings
func DefaultConfig() Config {
	return Config{SampleRate: SampleRate, MasterVolume: DefaultMasterVolume}
}

// Player synthesizes engine cues into a mixer. Until Start is called the
// mixer is not attached to a speaker, which keeps the player usable on
// headless hosts and in tests.
type Player struct {
	mu      sync.Mutex
	cfg     Config
	mixer   *beep.Mixer
	bg      *beep.Ctrl
	bgCue   domain.Cue
	started bool
}

// NewPlayer creates a silent player
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = SampleRate
	}
	return &Player{cfg: cfg, mixer: &beep.Mixer{}}
}

// Start opens the speaker and attaches the mixer
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.cfg.SampleRate, p.cfg.SampleRate.N(BufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	slog.Info(LogMsgSpeakerStarted, "sample_rate", int(p.cfg.SampleRate))
	return nil
}

// Close silences everything and detaches from the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.locked(func() {
		p.mixer.Clear()
	})
	p.bg = nil
	if p.started {
		speaker.Clear()
		p.started = false
	}
}

// locked runs fn with the speaker's lock held once the mixer is live
func (p *Player) locked(fn func()) {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlayOnce mixes one pass of the cue's phrase over whatever is playing
func (p *Player) PlayOnce(cue domain.Cue) {
	v, ok := VoiceFor(cue)
	if !ok {
		slog.Debug(LogMsgUnknownCue, "cue", cue)
		return
	}
	m := newMelody(v, p.cfg.SampleRate)
	s := newVolume(beep.Take(m.period, m), p.cfg.MasterVolume)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() { p.mixer.Add(s) })
}

// Loop replaces the background track with cue cycling between the offsets
func (p *Player) Loop(cue domain.Cue, startMs, endMs int) {
	v, ok := VoiceFor(cue)
	if !ok {
		slog.Debug(LogMsgUnknownCue, "cue", cue)
		return
	}
	m := newMelody(v, p.cfg.SampleRate).looping(
		time.Duration(startMs)*time.Millisecond,
		time.Duration(endMs)*time.Millisecond,
	)
	vol := p.cfg.MasterVolume
	if cue == domain.CueAmbient {
		vol *= AmbientVolume
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(m, vol)}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.locked(func() {
		if p.bg != nil {
			p.bg.Paused = true
			p.bg.Streamer = nil
		}
		p.mixer.Add(ctrl)
	})
	p.bg = ctrl
	p.bgCue = cue
}

// Pause stops the background track
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bg == nil {
		return
	}
	p.locked(func() {
		p.bg.Paused = true
		p.bg.Streamer = nil
	})
	p.bg = nil
}

// IsPlaying reports whether a background track is running
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bg != nil
}

// Background returns the cue of the running background track
func (p *Player) Background() (domain.Cue, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bg == nil {
		return "", false
	}
	return p.bgCue, true
}
