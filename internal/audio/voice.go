package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/osse101/reelslot/internal/domain"
)

// Wave is an oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// Note is one step of a phrase. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Voice is the synthesized sound of a cue: a phrase that repeats forever.
// One-shot cues play it once; loops cycle it between two offsets.
type Voice struct {
	Wave   Wave
	Gain   float64
	Phrase []Note
}

// Length is the duration of one pass through the phrase
func (v Voice) Length() time.Duration {
	var d time.Duration
	for _, n := range v.Phrase {
		d += n.Duration
	}
	return d
}

const (
	c5 = 523.25
	d5 = 587.33
	e5 = 659.25
	f5 = 698.46
	g5 = 783.99
	a5 = 880.00
	b5 = 987.77
	c6 = 1046.50
	e6 = 1318.51
	g4 = 392.00
	a4 = 440.00
	c4 = 261.63
	e4 = 329.63
)

func beat(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }

var voices = map[domain.Cue]Voice{
	domain.CueLever:      {Wave: WaveSquare, Gain: 0.3, Phrase: []Note{{c4, beat(40)}, {g4, beat(40)}}},
	domain.CueStopButton: {Wave: WaveSquare, Gain: 0.25, Phrase: []Note{{a4, beat(30)}}},
	domain.CueReelClick:  {Wave: WaveTriangle, Gain: 0.4, Phrase: []Note{{e6, beat(15)}}},
	domain.CueBonusAlert: {Wave: WaveSquare, Gain: 0.4, Phrase: []Note{{c6, beat(90)}, {0, beat(30)}, {c6, beat(90)}, {0, beat(30)}, {g5, beat(240)}}},
	domain.CueRareAlert:  {Wave: WaveSine, Gain: 0.5, Phrase: []Note{{e5, beat(80)}, {g5, beat(80)}, {c6, beat(80)}, {e6, beat(400)}}},
	domain.CueFreeze:     {Wave: WaveTriangle, Gain: 0.45, Phrase: []Note{{c6, beat(60)}, {b5, beat(60)}, {a5, beat(60)}, {g5, beat(60)}, {f5, beat(60)}, {e5, beat(60)}, {d5, beat(60)}, {c5, beat(600)}}},
	domain.CueAmbient:    {Wave: WaveSine, Gain: 0.2, Phrase: []Note{{c4, beat(600)}, {e4, beat(600)}, {g4, beat(600)}, {e4, beat(600)}}},

	domain.CuePayReplay:     {Wave: WaveSine, Gain: 0.3, Phrase: []Note{{g5, beat(70)}, {c6, beat(110)}}},
	domain.CuePayBell:       {Wave: WaveSine, Gain: 0.35, Phrase: []Note{{a5, beat(60)}, {0, beat(20)}, {a5, beat(60)}, {0, beat(20)}, {e6, beat(200)}}},
	domain.CuePayCherry:     {Wave: WaveSquare, Gain: 0.25, Phrase: []Note{{e5, beat(80)}, {g5, beat(160)}}},
	domain.CuePayWatermelon: {Wave: WaveSquare, Gain: 0.25, Phrase: []Note{{c5, beat(80)}, {e5, beat(80)}, {g5, beat(200)}}},
	domain.CuePayFreeze:     {Wave: WaveTriangle, Gain: 0.4, Phrase: []Note{{c5, beat(100)}, {g5, beat(100)}, {c6, beat(400)}}},
	domain.CuePayBonus:      {Wave: WaveSquare, Gain: 0.35, Phrase: []Note{{c5, beat(120)}, {e5, beat(120)}, {g5, beat(120)}, {c6, beat(480)}}},

	// jingles hold an intro ahead of their loop points
	domain.CueJingleBig: {Wave: WaveSquare, Gain: 0.3, Phrase: fanfare(c5, 4200)},
	domain.CueJingleReg: {Wave: WaveSquare, Gain: 0.3, Phrase: fanfare(a4, 2100)},
}

// fanfare builds an intro of introMs followed by a repeating arpeggio body
func fanfare(root float64, introMs int) []Note {
	intro := []Note{{root, beat(introMs / 3)}, {root * 1.5, beat(introMs / 3)}, {root * 2, beat(introMs - 2*(introMs/3))}}
	body := make([]Note, 0, 16)
	steps := []float64{1, 1.25, 1.5, 2}
	for range 4 {
		for _, s := range steps {
			body = append(body, Note{root * s, beat(150)})
		}
	}
	return append(intro, body...)
}

// VoiceFor returns the voice of a cue
func VoiceFor(cue domain.Cue) (Voice, bool) {
	v, ok := voices[cue]
	return v, ok
}

// melody renders a Voice sample by sample. When loopEnd is set the playhead
// jumps back to loopStart on reaching it and the stream never drains.
type melody struct {
	voice     Voice
	rate      beep.SampleRate
	bounds    []int // cumulative sample offset at the end of each note
	period    int
	pos       int
	phase     float64
	loopStart int
	loopEnd   int
}

func newMelody(v Voice, rate beep.SampleRate) *melody {
	m := &melody{voice: v, rate: rate, bounds: make([]int, len(v.Phrase))}
	for i, n := range v.Phrase {
		m.period += rate.N(n.Duration)
		m.bounds[i] = m.period
	}
	return m
}

// looping makes the melody cycle between two offsets. A zero end loops the
// whole phrase.
func (m *melody) looping(start, end time.Duration) *melody {
	m.loopStart = m.rate.N(start)
	m.loopEnd = m.rate.N(end)
	if m.loopEnd <= 0 {
		m.loopStart, m.loopEnd = 0, m.period
	}
	if m.loopStart >= m.loopEnd {
		m.loopStart = 0
	}
	return m
}

func (m *melody) freqAt(pos int) float64 {
	if m.period == 0 {
		return 0
	}
	pos %= m.period
	for i, b := range m.bounds {
		if pos < b {
			return m.voice.Phrase[i].Freq
		}
	}
	return 0
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if m.period == 0 {
		return 0, false
	}
	for i := range samples {
		if m.loopEnd > 0 && m.pos >= m.loopEnd {
			m.pos = m.loopStart
		}
		freq := m.freqAt(m.pos)
		val := 0.0
		if freq > 0 {
			val = oscillate(m.voice.Wave, m.phase) * m.voice.Gain
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// newVolume scales a stream linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
