package simulate

import "time"

// Run defaults
const (
	DefaultSpins       = 10000
	DefaultSeed        = 1
	DefaultFPS         = 60
	DefaultMinReaction = 150 * time.Millisecond
	DefaultMaxReaction = 900 * time.Millisecond
	DefaultCredit      = 1000

	// MaxFramesPerSpin bounds one spin; a minute of frames at 60fps
	MaxFramesPerSpin = 3600

	progressEvery  = 10000
	drawStreamSalt = 0x9e3779b97f4a7c15
)

const LogMsgProgress = "Simulation progress"
