package entity

import (
	"fmt"
	"sort"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// ProgramID identifies a Club Avalanche membership program. The set is closed.
type ProgramID string

// Known programs
const (
	ProgramGS1 ProgramID = "GS-I"
	ProgramGS2 ProgramID = "GS-II"
	ProgramGS3 ProgramID = "GS-III"
	ProgramGS4 ProgramID = "GS-IV"
)

// MaxLevels is the deepest referral hierarchy a program may pay
const MaxLevels = 8

// DefaultGasFee is the fixed per-level fee credited to the gas-fee account
var DefaultGasFee = decimal.RequireFromString("0.02")

var knownPrograms = []ProgramID{ProgramGS1, ProgramGS2, ProgramGS3, ProgramGS4}

// KnownPrograms returns every program identifier in catalog order
func KnownPrograms() []ProgramID {
	out := make([]ProgramID, len(knownPrograms))
	copy(out, knownPrograms)
	return out
}

// ParseProgramID rejects identifiers outside the closed set
func ParseProgramID(s string) (ProgramID, error) {
	for _, id := range knownPrograms {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errs.ErrUnknownProgram, s)
}

// Program is the validated fee table of one membership program
type Program struct {
	ID              ProgramID
	Price           decimal.Decimal
	Levels          int
	HouseCutPercent decimal.Decimal
	GasFee          decimal.Decimal
	// PerLevel is the advertised gross share per level. When set it must match the computed share.
	PerLevel *decimal.Decimal
}

// HouseCut is the up-front cut taken before the level split
func (p Program) HouseCut(scale int32) decimal.Decimal {
	return Percent(p.Price, p.HouseCutPercent, scale)
}

// LevelShares returns the gross amount each level receives
func (p Program) LevelShares(scale int32) []decimal.Decimal {
	return SplitEven(p.Price.Sub(p.HouseCut(scale)), p.Levels, scale)
}

// Validate checks the program table entry against the ledger scale
func (p Program) Validate(scale int32) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", errs.ErrInvalidProgramConfig, p.ID, fmt.Sprintf(format, args...))
	}

	if _, err := ParseProgramID(string(p.ID)); err != nil {
		return err
	}
	if _, err := ValidateAmount(p.Price, scale); err != nil {
		return invalid("price %s: %v", p.Price, err)
	}
	if p.Levels < 1 || p.Levels > MaxLevels {
		return invalid("levels must be between 1 and %d, got %d", MaxLevels, p.Levels)
	}
	if p.HouseCutPercent.IsNegative() || p.HouseCutPercent.GreaterThanOrEqual(hundred) {
		return invalid("house cut percent must be in [0, 100), got %s", p.HouseCutPercent)
	}
	if p.GasFee.IsNegative() || !p.GasFee.Truncate(scale).Equal(p.GasFee) {
		return invalid("gas fee %s is negative or finer than the ledger scale", p.GasFee)
	}

	shares := p.LevelShares(scale)
	smallest := shares[len(shares)-1]
	if !p.GasFee.LessThan(smallest) {
		return invalid("gas fee %s must be below the smallest level share %s", p.GasFee, smallest)
	}

	if p.PerLevel != nil {
		for _, share := range shares {
			if !share.Equal(*p.PerLevel) {
				return invalid("advertised per-level share %s differs from computed share %s",
					p.PerLevel.StringFixed(scale), share.StringFixed(scale))
			}
		}
	}
	return nil
}

// DefaultPrograms is the catalog used when configuration does not override it
func DefaultPrograms() []Program {
	return []Program{
		{ID: ProgramGS1, Price: decimal.NewFromInt(5), Levels: 4, HouseCutPercent: decimal.Zero, GasFee: DefaultGasFee},
		{ID: ProgramGS2, Price: decimal.NewFromInt(10), Levels: 5, HouseCutPercent: decimal.Zero, GasFee: DefaultGasFee},
		{ID: ProgramGS3, Price: decimal.NewFromInt(25), Levels: 6, HouseCutPercent: decimal.NewFromInt(10), GasFee: DefaultGasFee},
		{ID: ProgramGS4, Price: decimal.NewFromInt(50), Levels: 8, HouseCutPercent: decimal.NewFromInt(10), GasFee: DefaultGasFee},
	}
}

// Catalog is the validated, immutable program table
type Catalog struct {
	programs map[ProgramID]Program
	scale    int32
}

// NewCatalog validates every program and rejects duplicates
func NewCatalog(programs []Program, scale int32) (*Catalog, error) {
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("%w: ledger scale must be between 0 and %d", errs.ErrInvalidProgramConfig, MaxScale)
	}
	if len(programs) == 0 {
		return nil, fmt.Errorf("%w: no programs configured", errs.ErrInvalidProgramConfig)
	}

	c := &Catalog{programs: make(map[ProgramID]Program, len(programs)), scale: scale}
	for _, p := range programs {
		if err := p.Validate(scale); err != nil {
			return nil, err
		}
		if _, dup := c.programs[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate program %s", errs.ErrInvalidProgramConfig, p.ID)
		}
		c.programs[p.ID] = p
	}
	return c, nil
}

// Get returns the program or ErrUnknownProgram
func (c *Catalog) Get(id ProgramID) (Program, error) {
	p, ok := c.programs[id]
	if !ok {
		return Program{}, fmt.Errorf("%w: %q", errs.ErrUnknownProgram, id)
	}
	return p, nil
}

// Levels returns levels(program)
func (c *Catalog) Levels(id ProgramID) (int, error) {
	p, err := c.Get(id)
	if err != nil {
		return 0, err
	}
	return p.Levels, nil
}

// List returns the configured programs in catalog order
func (c *Catalog) List() []Program {
	out := make([]Program, 0, len(c.programs))
	for _, p := range c.programs {
		out = append(out, p)
	}
	order := make(map[ProgramID]int, len(knownPrograms))
	for i, id := range knownPrograms {
		order[id] = i
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i].ID] < order[out[j].ID] })
	return out
}

// Scale returns the ledger scale the catalog was validated against
func (c *Catalog) Scale() int32 {
	return c.scale
}

// ProgramView is the API read model of a program
type ProgramView struct {
	ID              string   `json:"id"`
	Price           string   `json:"price"`
	Levels          int      `json:"levels"`
	HouseCutPercent string   `json:"houseCutPercent"`
	GasFee          string   `json:"gasFee"`
	LevelShares     []string `json:"levelShares"`
}

// ToView renders the program with its computed level shares
func (p Program) ToView(scale int32) ProgramView {
	shares := p.LevelShares(scale)
	views := make([]string, len(shares))
	for i, s := range shares {
		views[i] = FormatAmount(s, scale)
	}
	return ProgramView{
		ID:              string(p.ID),
		Price:           FormatAmount(p.Price, scale),
		Levels:          p.Levels,
		HouseCutPercent: p.HouseCutPercent.String(),
		GasFee:          FormatAmount(p.GasFee, scale),
		LevelShares:     views,
	}
}
