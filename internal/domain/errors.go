package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgInvalidMachine = "invalid machine definition"
	ErrMsgUnknownMode    = "unknown mode"

	// Engine contract errors
	ErrMsgReelsSpinning      = "reels are still spinning"
	ErrMsgNoSpinInProgress   = "no spin in progress"
	ErrMsgRestoreMidSpin     = "cannot restore while a spin is in progress"
	ErrMsgInvalidReelIndex   = "invalid reel index"
	ErrMsgInsufficientCredit = "insufficient credit"

	// Machine host errors
	ErrMsgMachineNotFound = "machine not found"
	ErrMsgInputRejected   = "input rejected"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidMachine = errors.New(ErrMsgInvalidMachine)
	ErrUnknownMode    = errors.New(ErrMsgUnknownMode)

	ErrReelsSpinning      = errors.New(ErrMsgReelsSpinning)
	ErrNoSpinInProgress   = errors.New(ErrMsgNoSpinInProgress)
	ErrRestoreMidSpin     = errors.New(ErrMsgRestoreMidSpin)
	ErrInvalidReelIndex   = errors.New(ErrMsgInvalidReelIndex)
	ErrInsufficientCredit = errors.New(ErrMsgInsufficientCredit)

	ErrMachineNotFound = errors.New(ErrMsgMachineNotFound)
	ErrInputRejected   = errors.New(ErrMsgInputRejected)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
