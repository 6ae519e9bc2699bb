package reel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/reelslot/internal/domain"
)

func TestNewStrip_Empty(t *testing.T) {
	_, err := NewStrip(nil)
	assert.EqualError(t, err, ErrMsgEmptyStrip)
}

func TestStrip_AtWraps(t *testing.T) {
	s := MustStrip(domain.SymbolBell, domain.SymbolCherry, domain.SymbolBar)

	assert.Equal(t, domain.SymbolBell, s.At(0))
	assert.Equal(t, domain.SymbolBar, s.At(-1))
	assert.Equal(t, domain.SymbolCherry, s.At(-5))
	assert.Equal(t, domain.SymbolBell, s.At(3))
	assert.Equal(t, domain.SymbolCherry, s.At(7))
}

func TestStrip_IsImmutable(t *testing.T) {
	src := []domain.Symbol{domain.SymbolBell, domain.SymbolReplay}
	s, err := NewStrip(src)
	assert.NoError(t, err)

	src[0] = domain.SymbolBar
	assert.Equal(t, domain.SymbolBell, s.At(0))

	out := s.Symbols()
	out[1] = domain.SymbolBar
	assert.Equal(t, domain.SymbolReplay, s.At(1))
}

func TestStrip_Contains(t *testing.T) {
	s := MustStrip(domain.SymbolBell, domain.SymbolReplay)
	assert.True(t, s.Contains(domain.SymbolReplay))
	assert.False(t, s.Contains(domain.SymbolSevenRed))
}
