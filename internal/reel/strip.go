package reel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/reelslot/internal/domain"
)

// Strip is the immutable circular face of a physical reel.
// Reels hold a pointer to it; it is never copied or mutated after construction.
type Strip struct {
	symbols []domain.Symbol
}

// NewStrip creates a strip from symbols, top of the image first
func NewStrip(symbols []domain.Symbol) (*Strip, error) {
	if len(symbols) == 0 {
		return nil, errors.New(ErrMsgEmptyStrip)
	}
	s := make([]domain.Symbol, len(symbols))
	copy(s, symbols)
	return &Strip{symbols: s}, nil
}

// MustStrip is NewStrip for static tables
func MustStrip(symbols ...domain.Symbol) *Strip {
	s, err := NewStrip(symbols)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of cells
func (s *Strip) Len() int {
	return len(s.symbols)
}

// At returns the symbol at index i, wrapping in both directions
func (s *Strip) At(i int) domain.Symbol {
	n := len(s.symbols)
	i %= n
	if i < 0 {
		i += n
	}
	return s.symbols[i]
}

// Contains reports whether sym appears anywhere on the strip
func (s *Strip) Contains(sym domain.Symbol) bool {
	for _, v := range s.symbols {
		if v == sym {
			return true
		}
	}
	return false
}

// Symbols returns a copy of the strip contents
func (s *Strip) Symbols() []domain.Symbol {
	out := make([]domain.Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

func (s *Strip) String() string {
	parts := make([]string, len(s.symbols))
	for i, v := range s.symbols {
		parts[i] = v.String()
	}
	return fmt.Sprintf("strip[%s]", strings.Join(parts, " "))
}
