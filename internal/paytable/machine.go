package paytable

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/reel"
)

// Geometry is the reel image geometry of a cabinet
type Geometry struct {
	SymbolHeight float64 `json:"symbol_height" validate:"gt=0"`
	Speed        float64 `json:"speed" validate:"gt=0"`
}

// Freeze configures the reverse-spin special effect
type Freeze struct {
	Sentinel   domain.Symbol `json:"sentinel"`
	TriggerRow domain.Row    `json:"trigger_row"`
	// Layout is the strip index each reel shows in the middle row once frozen
	Layout []int `json:"layout"`
}

// Definition is the static description of a machine as loaded from disk
type Definition struct {
	Name      string            `json:"name" validate:"required"`
	Geometry  Geometry          `json:"geometry"`
	Strips    [][]domain.Symbol `json:"strips" validate:"min=1,dive,min=1"`
	Fallback  []domain.Symbol   `json:"fallback"`
	Tables    []Table           `json:"tables" validate:"min=1,dive"`
	BaseMode  domain.ModeID     `json:"base_mode" validate:"required"`
	Bet       int               `json:"bet" validate:"gt=0"`
	SlipRange int               `json:"slip_range" validate:"gt=0"`
	Freeze    *Freeze           `json:"freeze,omitempty"`
}

// Machine is a validated, read-only machine definition.
// One Machine can be shared by any number of engines.
type Machine struct {
	def    Definition
	strips []*reel.Strip
	tables map[domain.ModeID]*Table
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// New validates def and builds the runtime lookup tables
func New(def Definition) (*Machine, error) {
	if err := structValidator.Struct(def); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidMachine, err)
	}

	def.Tables = slices.Clone(def.Tables)
	m := &Machine{
		def:    def,
		strips: make([]*reel.Strip, len(def.Strips)),
		tables: make(map[domain.ModeID]*Table, len(def.Tables)),
	}
	for i, syms := range def.Strips {
		s, err := reel.NewStrip(syms)
		if err != nil {
			return nil, invalid(ErrFmtStripLength, i)
		}
		m.strips[i] = s
	}
	for i := range m.def.Tables {
		t := &m.def.Tables[i]
		if _, dup := m.tables[t.ID]; dup {
			return nil, invalid(ErrFmtDuplicateTable, t.ID)
		}
		m.tables[t.ID] = t
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidMachine, fmt.Sprintf(format, args...))
}

func (m *Machine) validate() error {
	base, ok := m.tables[m.def.BaseMode]
	if !ok {
		return invalid(ErrFmtMissingBase, m.def.BaseMode)
	}
	if base.Kind != domain.TableNormal {
		return invalid(ErrFmtBaseNotNormal, m.def.BaseMode)
	}

	reels := len(m.strips)
	if len(m.def.Fallback) != reels {
		return invalid(ErrFmtFallbackLength, len(m.def.Fallback), reels)
	}
	for i, sym := range m.def.Fallback {
		if !m.strips[i].Contains(sym) {
			return invalid(ErrFmtFallbackMissing, i, sym)
		}
	}

	hasFreeze := false
	for i := range m.def.Tables {
		t := &m.def.Tables[i]
		if err := m.validateTable(t, reels); err != nil {
			return err
		}
		for _, e := range t.Entries {
			if e.Category == domain.CategoryFreeze {
				hasFreeze = true
			}
		}
	}

	if hasFreeze || m.def.Freeze != nil {
		return m.validateFreeze(reels)
	}
	return nil
}

func (m *Machine) validateTable(t *Table, reels int) error {
	last := t.CatchAll()
	if t.Entries[last].Category != domain.CategoryMiss {
		return invalid(ErrFmtCatchAllMissing, t.ID)
	}

	for i := range t.Entries {
		e := &t.Entries[i]
		if i < last && e.Category == domain.CategoryMiss {
			return invalid(ErrFmtCatchAllMisplaced, t.ID, i)
		}
		if err := validateLines(t.ID, e, reels); err != nil {
			return err
		}
		if t.Kind == domain.TableBonusPayout && i < last && e.Category != domain.CategoryBell {
			return invalid(ErrFmtPayoutOnlyBell, t.ID, e.Name)
		}
		if t.Kind == domain.TableNormal && e.Category.IsBonus() && e.Destination == "" {
			return invalid(ErrFmtBonusNoDestination, t.ID, e.Name)
		}
		if e.SubProbability > 0 && e.Destination == "" {
			return invalid(ErrFmtSubNoDestination, t.ID, e.Name)
		}
		if e.Destination != "" {
			dest, ok := m.tables[e.Destination]
			if !ok {
				return invalid(ErrFmtUnknownDestination, t.ID, e.Name, e.Destination)
			}
			if dest.Kind != domain.TableBonusPending {
				return invalid(ErrFmtDestinationKind, t.ID, e.Name, e.Destination)
			}
		}
	}

	for idx := range t.Jingles {
		if idx < 0 || idx > last {
			return invalid(ErrFmtJingleIndex, t.ID, idx)
		}
	}

	if t.Kind == domain.TableBonusPending {
		if t.PayoutMode == "" {
			return invalid(ErrFmtPayoutModeMissing, t.ID)
		}
		payout, ok := m.tables[t.PayoutMode]
		if !ok || payout.Kind != domain.TableBonusPayout {
			return invalid(ErrFmtPayoutModeKind, t.ID, t.PayoutMode)
		}
	}
	return nil
}

func validateLines(table domain.ModeID, e *FlagEntry, reels int) error {
	if len(e.Lines) == 0 {
		return nil
	}
	if len(e.Targets) != reels {
		return invalid(ErrFmtTargetsLength, table, e.Name, len(e.Targets), reels)
	}
	for li, line := range e.Lines {
		if len(line) != reels {
			return invalid(ErrFmtLineLength, table, e.Name, li, len(line), reels)
		}
		for _, row := range line {
			if row > domain.RowBottom {
				return invalid(ErrFmtLineRow, table, e.Name, li, row)
			}
		}
	}
	return nil
}

func (m *Machine) validateFreeze(reels int) error {
	f := m.def.Freeze
	if f == nil {
		return invalid(ErrFmtFreezeLayout, 0, reels)
	}
	if len(f.Layout) != reels {
		return invalid(ErrFmtFreezeLayout, len(f.Layout), reels)
	}
	if f.TriggerRow > domain.RowBottom {
		return invalid(ErrFmtFreezeRow, f.TriggerRow)
	}
	if !m.strips[0].Contains(f.Sentinel) {
		return invalid(ErrFmtFreezeSentinel, f.Sentinel)
	}
	return nil
}

// Name returns the machine's display name
func (m *Machine) Name() string {
	return m.def.Name
}

// Reels returns the number of reels
func (m *Machine) Reels() int {
	return len(m.strips)
}

// Strip returns the strip of reel i
func (m *Machine) Strip(i int) *reel.Strip {
	return m.strips[i]
}

// ReelConfig returns the reel geometry
func (m *Machine) ReelConfig() reel.Config {
	return reel.Config{
		SymbolHeight: m.def.Geometry.SymbolHeight,
		Speed:        m.def.Geometry.Speed,
	}
}

// Table looks up a probability table by mode id
func (m *Machine) Table(id domain.ModeID) (*Table, bool) {
	t, ok := m.tables[id]
	return t, ok
}

// BaseMode is the mode a fresh machine starts in
func (m *Machine) BaseMode() domain.ModeID {
	return m.def.BaseMode
}

// BaseTable returns the table for BaseMode
func (m *Machine) BaseTable() *Table {
	return m.tables[m.def.BaseMode]
}

// Modes lists all table ids in definition order
func (m *Machine) Modes() []domain.ModeID {
	ids := make([]domain.ModeID, 0, len(m.def.Tables))
	for _, t := range m.def.Tables {
		ids = append(ids, t.ID)
	}
	return ids
}

// Bet is the credit cost of a spin
func (m *Machine) Bet() int {
	return m.def.Bet
}

// SlipRange is the number of cells the stop assist may search
func (m *Machine) SlipRange() int {
	return m.def.SlipRange
}

// Fallback is the forced-miss symbol for reel i
func (m *Machine) Fallback(i int) domain.Symbol {
	return m.def.Fallback[i]
}

// Freeze returns the freeze configuration, or nil
func (m *Machine) Freeze() *Freeze {
	return m.def.Freeze
}

// Definition returns a copy of the source definition
func (m *Machine) Definition() Definition {
	def := m.def
	def.Strips = make([][]domain.Symbol, len(m.def.Strips))
	for i, s := range m.def.Strips {
		def.Strips[i] = slices.Clone(s)
	}
	def.Fallback = slices.Clone(m.def.Fallback)
	def.Tables = slices.Clone(m.def.Tables)
	return def
}
