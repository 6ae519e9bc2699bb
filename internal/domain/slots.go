package domain

import (
	"fmt"
	"strings"
)

// Symbol identifies a reel face image
type Symbol uint8

// Symbol values. Blank is the filler face between paying symbols.
const (
	SymbolBlank Symbol = iota
	SymbolReplay
	SymbolBell
	SymbolCherry
	SymbolWatermelon
	SymbolBar
	SymbolSevenRed
	SymbolSevenBlue
)

var symbolNames = [...]string{
	SymbolBlank:      "blank",
	SymbolReplay:     "replay",
	SymbolBell:       "bell",
	SymbolCherry:     "cherry",
	SymbolWatermelon: "watermelon",
	SymbolBar:        "bar",
	SymbolSevenRed:   "seven_red",
	SymbolSevenBlue:  "seven_blue",
}

func (s Symbol) String() string {
	if int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("symbol(%d)", uint8(s))
}

// ParseSymbol converts a symbol name back to its value
func ParseSymbol(name string) (Symbol, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range symbolNames {
		if n == name {
			return Symbol(i), nil
		}
	}
	return SymbolBlank, fmt.Errorf("%w: unknown symbol %q", ErrInvalidMachine, name)
}

// MarshalText implements encoding.TextMarshaler
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Symbol) UnmarshalText(text []byte) error {
	v, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Row is one of the three visible positions of a stopped reel
type Row uint8

const (
	RowTop Row = iota
	RowMiddle
	RowBottom
)

// RowCount is the number of visible rows per reel
const RowCount = 3

var rowNames = [...]string{"top", "middle", "bottom"}

func (r Row) String() string {
	if int(r) < len(rowNames) {
		return rowNames[r]
	}
	return fmt.Sprintf("row(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler
func (r Row) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Row) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range rowNames {
		if n == name {
			*r = Row(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown row %q", ErrInvalidMachine, name)
}

// RowMask is a set of rows, bit i set for Row(i)
type RowMask uint8

// RowMaskNone marks a reel that matched nothing (forced miss)
const RowMaskNone RowMask = 0

// MaskOf returns the single-row mask for r
func MaskOf(r Row) RowMask {
	return 1 << r
}

// Has reports whether r is in the mask
func (m RowMask) Has(r Row) bool {
	return m&MaskOf(r) != 0
}

// With returns the mask with r added
func (m RowMask) With(r Row) RowMask {
	return m | MaskOf(r)
}

// Rows lists the rows in the mask, top first
func (m RowMask) Rows() []Row {
	var rows []Row
	for r := RowTop; r <= RowBottom; r++ {
		if m.Has(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// PayLine is one row per reel defining a win path
type PayLine []Row

func (l PayLine) String() string {
	parts := make([]string, len(l))
	for i, r := range l {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Equal reports whether two lines visit the same rows
func (l PayLine) Equal(other PayLine) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// FlagCategory classifies a flag. Order is draw precedence in the tables.
type FlagCategory uint8

const (
	CategoryFreeze FlagCategory = iota
	CategoryBonusBigA
	CategoryBonusBigB
	CategoryBonusRegA
	CategoryBonusRegB
	CategoryCherry
	CategoryWatermelon
	CategoryBell
	CategoryReplay
	CategoryMiss
)

var categoryNames = [...]string{
	CategoryFreeze:     "freeze",
	CategoryBonusBigA:  "bonus_big_a",
	CategoryBonusBigB:  "bonus_big_b",
	CategoryBonusRegA:  "bonus_reg_a",
	CategoryBonusRegB:  "bonus_reg_b",
	CategoryCherry:     "cherry",
	CategoryWatermelon: "watermelon",
	CategoryBell:       "bell",
	CategoryReplay:     "replay",
	CategoryMiss:       "miss",
}

func (c FlagCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler
func (c FlagCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *FlagCategory) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range categoryNames {
		if n == name {
			*c = FlagCategory(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown flag category %q", ErrInvalidMachine, name)
}

// IsBonus reports whether the category starts a bonus
func (c FlagCategory) IsBonus() bool {
	switch c {
	case CategoryBonusBigA, CategoryBonusBigB, CategoryBonusRegA, CategoryBonusRegB:
		return true
	default:
		return false
	}
}

// IsRare reports whether the category gets the rare-hit alert on lever pull
func (c FlagCategory) IsRare() bool {
	return c == CategoryCherry || c == CategoryWatermelon
}

// ModeID names a probability table
type ModeID string

// TableKind tells the engine what role a probability table plays
type TableKind uint8

const (
	TableNormal TableKind = iota
	TableBonusPending
	TableBonusPayout
)

var tableKindNames = [...]string{"normal", "bonus_pending", "bonus_payout"}

func (k TableKind) String() string {
	if int(k) < len(tableKindNames) {
		return tableKindNames[k]
	}
	return fmt.Sprintf("table_kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler
func (k TableKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *TableKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range tableKindNames {
		if n == name {
			*k = TableKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown table kind %q", ErrInvalidMachine, name)
}

// Cell addresses one visible symbol
type Cell struct {
	Reel int `json:"reel"`
	Row  Row `json:"row"`
}
