package reel

// Geometry defaults
const (
	// DefaultSymbolHeight is the rendered height of one strip cell in pixels
	DefaultSymbolHeight = 32.0

	// DefaultSpeed is the reel travel speed in pixels per second
	DefaultSpeed = 1280.0

	// CanonicalStripLength is the number of cells on a standard physical strip
	CanonicalStripLength = 20
)

// Error messages
const (
	ErrMsgEmptyStrip       = "strip must contain at least one symbol"
	ErrMsgNonPositiveSpeed = "speed and symbol height must be positive"
)
