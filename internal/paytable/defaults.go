package paytable

import (
	"github.com/osse101/reelslot/internal/domain"
	"github.com/osse101/reelslot/internal/reel"
)

const (
	blk = domain.SymbolBlank
	rep = domain.SymbolReplay
	bel = domain.SymbolBell
	chr = domain.SymbolCherry
	wml = domain.SymbolWatermelon
	bar = domain.SymbolBar
	s7r = domain.SymbolSevenRed
	s7b = domain.SymbolSevenBlue
)

var (
	top = domain.RowTop
	mid = domain.RowMiddle
	bot = domain.RowBottom
)

// Standard paylines: three horizontal and two diagonal
var (
	LineMiddle   = domain.PayLine{mid, mid, mid}
	LineTop      = domain.PayLine{top, top, top}
	LineBottom   = domain.PayLine{bot, bot, bot}
	LineDiagDown = domain.PayLine{top, mid, bot}
	LineDiagUp   = domain.PayLine{bot, mid, top}
)

// AllLines returns the five standard paylines
func AllLines() []domain.PayLine {
	return []domain.PayLine{LineMiddle, LineTop, LineBottom, LineDiagDown, LineDiagUp}
}

func defaultStrips() [][]domain.Symbol {
	return [][]domain.Symbol{
		{s7r, rep, bel, wml, bar, rep, bel, chr, s7b, rep, bel, wml, blk, rep, bel, chr, bar, rep, bel, wml},
		{s7r, bel, rep, wml, bar, bel, rep, chr, s7b, bel, rep, wml, chr, bel, rep, bar, blk, bel, rep, wml},
		{s7r, rep, bel, chr, wml, rep, bel, bar, s7b, rep, bel, blk, wml, rep, bel, bar, chr, rep, bel, wml},
	}
}

func miss() FlagEntry {
	return FlagEntry{Name: "miss", Category: domain.CategoryMiss}
}

func bellEntry(prob float64, payout int) FlagEntry {
	return FlagEntry{
		Name:        "bell",
		Probability: prob,
		Targets:     []domain.Symbol{bel, bel, bel},
		Lines:       AllLines(),
		Payout:      payout,
		Category:    domain.CategoryBell,
		PaySound:    domain.CuePayBell,
	}
}

func replayEntry(prob float64) FlagEntry {
	return FlagEntry{
		Name:        "replay",
		Probability: prob,
		Targets:     []domain.Symbol{rep, rep, rep},
		Lines:       AllLines(),
		Category:    domain.CategoryReplay,
		PaySound:    domain.CuePayReplay,
	}
}

type bonusDef struct {
	name     string
	category domain.FlagCategory
	targets  []domain.Symbol
	budget   int
	pending  domain.ModeID
	payout   domain.ModeID
	jingle   Jingle
	baseProb float64
}

var (
	jingleBig = Jingle{Cue: domain.CueJingleBig, LoopStartMs: 4200, LoopEndMs: 38400}
	jingleReg = Jingle{Cue: domain.CueJingleReg, LoopStartMs: 2100, LoopEndMs: 19200}
)

func defaultBonuses() []bonusDef {
	return []bonusDef{
		{"big_red", domain.CategoryBonusBigA, []domain.Symbol{s7r, s7r, s7r}, 360, ModeBigAPending, ModeBigPayout, jingleBig, 1.0 / 400},
		{"big_blue", domain.CategoryBonusBigB, []domain.Symbol{s7b, s7b, s7b}, 360, ModeBigBPending, ModeBigPayout, jingleBig, 1.0 / 500},
		{"reg_bar", domain.CategoryBonusRegA, []domain.Symbol{bar, bar, bar}, 120, ModeRegAPending, ModeRegPayout, jingleReg, 1.0 / 600},
		{"reg_mixed", domain.CategoryBonusRegB, []domain.Symbol{s7r, s7r, bar}, 120, ModeRegBPending, ModeRegPayout, jingleReg, 1.0 / 800},
	}
}

func (b bonusDef) entry(prob float64, dest domain.ModeID) FlagEntry {
	return FlagEntry{
		Name:        b.name,
		Probability: prob,
		Targets:     b.targets,
		Lines:       AllLines(),
		Payout:      b.budget,
		Destination: dest,
		Category:    b.category,
		PaySound:    domain.CuePayBonus,
	}
}

func normalTable(bonuses []bonusDef) Table {
	entries := []FlagEntry{{
		Name:        "freeze",
		Probability: 1.0 / 8192,
		Payout:      15,
		Category:    domain.CategoryFreeze,
		PaySound:    domain.CuePayFreeze,
	}}
	jingles := make(map[int]Jingle, len(bonuses))
	for _, b := range bonuses {
		jingles[len(entries)] = b.jingle
		entries = append(entries, b.entry(b.baseProb, b.pending))
	}
	entries = append(entries,
		FlagEntry{
			Name:           "cherry",
			Probability:    1.0 / 40,
			SubProbability: 0.05,
			Targets:        []domain.Symbol{chr, chr, chr},
			Lines:          []domain.PayLine{LineTop, LineBottom},
			Payout:         2,
			Destination:    ModeBigAPending,
			Category:       domain.CategoryCherry,
			PaySound:       domain.CuePayCherry,
		},
		FlagEntry{
			Name:           "watermelon",
			Probability:    1.0 / 64,
			SubProbability: 0.1,
			Targets:        []domain.Symbol{wml, wml, wml},
			Lines:          AllLines(),
			Payout:         6,
			Destination:    ModeRegAPending,
			Category:       domain.CategoryWatermelon,
			PaySound:       domain.CuePayWatermelon,
		},
		bellEntry(1.0/7, 9),
		replayEntry(1.0/7.3),
		miss(),
	)
	return Table{
		ID:      ModeNormal,
		Kind:    domain.TableNormal,
		Entries: entries,
		Jingles: jingles,
	}
}

// pendingTable keeps the held bonus drawn on every spin that does not
// draw a small role first.
func pendingTable(b bonusDef) Table {
	return Table{
		ID:   b.pending,
		Kind: domain.TableBonusPending,
		Entries: []FlagEntry{
			replayEntry(1.0 / 7.3),
			bellEntry(1.0/7, 9),
			b.entry(1.0, ""),
			miss(),
		},
		Jingles:    map[int]Jingle{2: b.jingle},
		PayoutMode: b.payout,
	}
}

func payoutTable(id domain.ModeID, bellProb float64) Table {
	return Table{
		ID:      id,
		Kind:    domain.TableBonusPayout,
		Entries: []FlagEntry{bellEntry(bellProb, 15), miss()},
	}
}

// DefaultDefinition returns the built-in three reel cabinet
func DefaultDefinition() Definition {
	bonuses := defaultBonuses()
	tables := []Table{normalTable(bonuses)}
	for _, b := range bonuses {
		tables = append(tables, pendingTable(b))
	}
	tables = append(tables,
		payoutTable(ModeBigPayout, 0.9),
		payoutTable(ModeRegPayout, 0.8),
	)

	return Definition{
		Name: "standard",
		Geometry: Geometry{
			SymbolHeight: reel.DefaultSymbolHeight,
			Speed:        reel.DefaultSpeed,
		},
		Strips:    defaultStrips(),
		Fallback:  []domain.Symbol{blk, blk, blk},
		Tables:    tables,
		BaseMode:  ModeNormal,
		Bet:       DefaultBet,
		SlipRange: DefaultSlipRange,
		Freeze: &Freeze{
			Sentinel:   s7b,
			TriggerRow: domain.RowTop,
			Layout:     []int{0, 0, 0},
		},
	}
}

// Default builds the built-in machine
func Default() (*Machine, error) {
	return New(DefaultDefinition())
}

// MustDefault builds the built-in machine and panics if it is invalid
func MustDefault() *Machine {
	m, err := Default()
	if err != nil {
		panic(err)
	}
	return m
}
