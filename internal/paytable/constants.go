package paytable

// Machine defaults
const (
	// DefaultBet is the credit cost of one spin
	DefaultBet = 3

	// DefaultSlipRange is how many cells the stop assist may travel
	DefaultSlipRange = 5

	// DefaultReelCount is the number of columns on the standard cabinet
	DefaultReelCount = 3
)

// Mode ids of the built-in machine
const (
	ModeNormal      = "normal"
	ModeBigAPending = "big_a_pending"
	ModeBigBPending = "big_b_pending"
	ModeRegAPending = "reg_a_pending"
	ModeRegBPending = "reg_b_pending"
	ModeBigPayout   = "big_payout"
	ModeRegPayout   = "reg_payout"
)

// Error message formats for definition validation
const (
	ErrFmtDuplicateTable     = "duplicate table %q"
	ErrFmtMissingBase        = "base mode %q not defined"
	ErrFmtBaseNotNormal      = "base mode %q must be a normal table"
	ErrFmtCatchAllMissing    = "table %q: last entry must be the miss catch-all"
	ErrFmtCatchAllMisplaced  = "table %q: entry %d is a miss before the last entry"
	ErrFmtTargetsLength      = "table %q entry %q: %d targets for %d reels"
	ErrFmtLineLength         = "table %q entry %q: line %d has %d rows for %d reels"
	ErrFmtLineRow            = "table %q entry %q: line %d has invalid row %d"
	ErrFmtUnknownDestination = "table %q entry %q: destination %q not defined"
	ErrFmtDestinationKind    = "table %q entry %q: destination %q must be a bonus pending table"
	ErrFmtBonusNoDestination = "table %q entry %q: bonus in a normal table needs a destination"
	ErrFmtSubNoDestination   = "table %q entry %q: sub probability needs a destination"
	ErrFmtPayoutModeMissing  = "table %q: bonus pending table needs a payout mode"
	ErrFmtPayoutModeKind     = "table %q: payout mode %q must be a bonus payout table"
	ErrFmtPayoutOnlyBell     = "table %q entry %q: bonus payout tables only pay bells"
	ErrFmtJingleIndex        = "table %q: jingle for entry %d out of range"
	ErrFmtFallbackLength     = "%d fallback symbols for %d reels"
	ErrFmtFallbackMissing    = "reel %d: fallback symbol %s not on strip"
	ErrFmtFreezeLayout       = "freeze layout has %d entries for %d reels"
	ErrFmtFreezeSentinel     = "freeze sentinel %s not on reel 0"
	ErrFmtFreezeRow          = "freeze trigger row %d invalid"
	ErrFmtStripLength        = "reel %d: strip is empty"
)
