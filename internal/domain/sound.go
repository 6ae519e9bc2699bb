package domain

// Cue identifies a sound the engine asks the host to play.
// Playback is fire-and-forget; the engine never waits on it.
type Cue string

// Engine cues
const (
	CueLever      Cue = "lever"
	CueStopButton Cue = "stop_button"
	CueReelClick  Cue = "reel_click"
	CueBonusAlert Cue = "bonus_alert"
	CueRareAlert  Cue = "rare_alert"
	CueFreeze     Cue = "freeze"
	CueAmbient    Cue = "ambient"
)

// Pay cues referenced from flag entries
const (
	CuePayReplay     Cue = "pay_replay"
	CuePayBell       Cue = "pay_bell"
	CuePayCherry     Cue = "pay_cherry"
	CuePayWatermelon Cue = "pay_watermelon"
	CuePayFreeze     Cue = "pay_freeze"
	CuePayBonus      Cue = "pay_bonus"
)

// Bonus jingles
const (
	CueJingleBig Cue = "jingle_big"
	CueJingleReg Cue = "jingle_reg"
)
