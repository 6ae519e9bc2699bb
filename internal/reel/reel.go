package reel

import (
	"errors"
	"math"

	"github.com/osse101/reelslot/internal/domain"
)

// Config holds the geometry shared by all reels of a machine
type Config struct {
	SymbolHeight float64
	Speed        float64
}

// DefaultConfig returns the standard cabinet geometry
func DefaultConfig() Config {
	return Config{
		SymbolHeight: DefaultSymbolHeight,
		Speed:        DefaultSpeed,
	}
}

// Validate checks the geometry is usable
func (c Config) Validate() error {
	if c.SymbolHeight <= 0 || c.Speed <= 0 {
		return errors.New(ErrMsgNonPositiveSpeed)
	}
	return nil
}

// Reel is the spin and slip-stop state of one column.
//
// Position is a pixel offset into the strip image and always lies in
// [0, PixelHeight). It decreases while the reel turns forward, so the symbol
// shown at a row walks backward through the strip.
type Reel struct {
	strip    *Strip
	cfg      Config
	position float64
	spinning bool
	reverse  bool
	distance float64
	flash    bool
}

// New creates a stopped reel at position 0
func New(strip *Strip, cfg Config) *Reel {
	return &Reel{
		strip: strip,
		cfg:   cfg,
	}
}

// Strip returns the shared strip
func (r *Reel) Strip() *Strip {
	return r.strip
}

// SymbolHeight returns the cell height in pixels
func (r *Reel) SymbolHeight() float64 {
	return r.cfg.SymbolHeight
}

// PixelHeight is the height of the whole strip image
func (r *Reel) PixelHeight() float64 {
	return r.cfg.SymbolHeight * float64(r.strip.Len())
}

// Position returns the current pixel offset
func (r *Reel) Position() float64 {
	return r.position
}

// Distance returns the remaining slip in pixels
func (r *Reel) Distance() float64 {
	return r.distance
}

// IsSpinning reports whether the reel is turning freely
func (r *Reel) IsSpinning() bool {
	return r.spinning
}

// IsReverse reports whether the reel turns backwards (freeze)
func (r *Reel) IsReverse() bool {
	return r.reverse
}

// IsSliding reports whether a stop was requested but the slip has not landed
func (r *Reel) IsSliding() bool {
	return r.distance > 0
}

// IsSettled reports whether the reel is fully at rest
func (r *Reel) IsSettled() bool {
	return !r.spinning && r.distance <= 0
}

// Flash returns the win highlight flag
func (r *Reel) Flash() bool {
	return r.flash
}

// SetFlash sets the win highlight flag
func (r *Reel) SetFlash(on bool) {
	r.flash = on
}

// Start sets the reel turning forward
func (r *Reel) Start() {
	r.spinning = true
	r.reverse = false
	r.distance = 0
}

// StartReverse sets the reel turning backwards
func (r *Reel) StartReverse() {
	r.spinning = true
	r.reverse = true
	r.distance = 0
}

// Stop ends free spinning. With a slip distance set, AdjustStop carries the
// reel the rest of the way; with none the stop is immediate.
func (r *Reel) Stop() {
	r.spinning = false
	r.reverse = false
}

// SetDistance sets the slip the reel travels after Stop
func (r *Reel) SetDistance(d float64) {
	if d < 0 {
		d = 0
	}
	r.distance = d
}

// Spin advances a free-spinning reel by dt seconds
func (r *Reel) Spin(dt float64) {
	if !r.spinning {
		return
	}
	step := r.cfg.Speed * dt
	if r.reverse {
		r.move(step)
		return
	}
	r.move(-step)
}

// AdjustStop advances a sliding reel by dt seconds and returns true on the
// frame the slip lands. The overshoot of the last frame is given back so the
// reel rests exactly on a cell boundary.
func (r *Reel) AdjustStop(dt float64) bool {
	if r.distance <= 0 {
		return false
	}
	step := r.cfg.Speed * dt
	r.distance -= step
	r.move(-step)
	if r.distance > 0 {
		return false
	}
	r.move(-r.distance)
	r.distance = 0
	return true
}

// CurrentRowIndex maps a visible row to a strip index. Evaluation samples the
// cell centre with offset SymbolHeight/2; the slip search reads with 0.
func (r *Reel) CurrentRowIndex(row domain.Row, offset float64) int {
	h := r.cfg.SymbolHeight
	p := wrap(r.position+h*float64(1+int(row))+offset, r.PixelHeight())
	idx := int(math.Floor(p / h))
	if idx >= r.strip.Len() {
		idx = r.strip.Len() - 1
	}
	return idx
}

// SymbolAt returns the symbol at the centre of a visible row
func (r *Reel) SymbolAt(row domain.Row) domain.Symbol {
	return r.strip.At(r.CurrentRowIndex(row, r.cfg.SymbolHeight/2))
}

// Visible returns the symbols at top, middle and bottom
func (r *Reel) Visible() []domain.Symbol {
	out := make([]domain.Symbol, domain.RowCount)
	for row := domain.RowTop; row <= domain.RowBottom; row++ {
		out[row] = r.SymbolAt(row)
	}
	return out
}

// CellOffset is how far the reel still has to travel forward to reach the
// next cell boundary: SymbolHeight minus the distance already travelled into
// the current cell. Position decreases while turning, so this is position
// modulo SymbolHeight, and 0 on a boundary.
func (r *Reel) CellOffset() float64 {
	return wrap(r.position, r.cfg.SymbolHeight)
}

// SnapToIndex places strip index at row on an exact boundary
func (r *Reel) SnapToIndex(row domain.Row, index int) {
	h := r.cfg.SymbolHeight
	r.position = wrap(float64(index-1-int(row))*h, r.PixelHeight())
}

// Halt stops the reel in place and discards any slip
func (r *Reel) Halt() {
	r.spinning = false
	r.reverse = false
	r.distance = 0
}

func (r *Reel) move(delta float64) {
	r.position = wrap(r.position+delta, r.PixelHeight())
}

func wrap(v, m float64) float64 {
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	if v >= m {
		v = 0
	}
	return v
}
