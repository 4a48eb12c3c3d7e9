package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgramID(t *testing.T) {
	id, err := ParseProgramID("GS-III")
	require.NoError(t, err)
	assert.Equal(t, ProgramGS3, id)

	_, err = ParseProgramID("GS-V")
	assert.ErrorIs(t, err, errs.ErrUnknownProgram)

	_, err = ParseProgramID("gs-i")
	assert.ErrorIs(t, err, errs.ErrUnknownProgram)
}

func TestDefaultProgramShares(t *testing.T) {
	catalog, err := NewCatalog(DefaultPrograms(), DefaultScale)
	require.NoError(t, err)

	testCases := []struct {
		id       ProgramID
		houseCut string
		shares   []string
	}{
		{ProgramGS1, "0", []string{"1.25", "1.25", "1.25", "1.25"}},
		{ProgramGS2, "0", []string{"2", "2", "2", "2", "2"}},
		{ProgramGS3, "2.5", []string{"3.75", "3.75", "3.75", "3.75", "3.75", "3.75"}},
		{ProgramGS4, "5", []string{"5.63", "5.63", "5.63", "5.63", "5.62", "5.62", "5.62", "5.62"}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.id), func(t *testing.T) {
			p, err := catalog.Get(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.houseCut, p.HouseCut(DefaultScale).String())

			shares := p.LevelShares(DefaultScale)
			require.Len(t, shares, len(tc.shares))
			total := p.HouseCut(DefaultScale)
			for i, s := range shares {
				assert.Equal(t, tc.shares[i], s.String())
				total = total.Add(s)
			}
			assert.True(t, total.Equal(p.Price))
		})
	}
}

func TestProgramValidate(t *testing.T) {
	base := func() Program {
		return Program{ID: ProgramGS1, Price: dec("5"), Levels: 4, HouseCutPercent: decimal.Zero, GasFee: DefaultGasFee}
	}

	t.Run("Advertised share matching the split", func(t *testing.T) {
		p := base()
		perLevel := dec("1.25")
		p.PerLevel = &perLevel
		assert.NoError(t, p.Validate(DefaultScale))
	})

	t.Run("Advertised share that does not add up", func(t *testing.T) {
		p := base()
		perLevel := dec("0.90")
		p.PerLevel = &perLevel
		assert.ErrorIs(t, p.Validate(DefaultScale), errs.ErrInvalidProgramConfig)
	})

	testCases := []struct {
		name   string
		modify func(p *Program)
		err    error
	}{
		{"Unknown id", func(p *Program) { p.ID = "GS-X" }, errs.ErrUnknownProgram},
		{"Zero levels", func(p *Program) { p.Levels = 0 }, errs.ErrInvalidProgramConfig},
		{"Too many levels", func(p *Program) { p.Levels = MaxLevels + 1 }, errs.ErrInvalidProgramConfig},
		{"Full house cut", func(p *Program) { p.HouseCutPercent = dec("100") }, errs.ErrInvalidProgramConfig},
		{"Negative gas", func(p *Program) { p.GasFee = dec("-0.01") }, errs.ErrInvalidProgramConfig},
		{"Gas finer than scale", func(p *Program) { p.GasFee = dec("0.001") }, errs.ErrInvalidProgramConfig},
		{"Gas eats the share", func(p *Program) { p.GasFee = dec("1.25") }, errs.ErrInvalidProgramConfig},
		{"Zero price", func(p *Program) { p.Price = decimal.Zero }, errs.ErrInvalidProgramConfig},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := base()
			tc.modify(&p)
			assert.ErrorIs(t, p.Validate(DefaultScale), tc.err)
		})
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("Duplicate program", func(t *testing.T) {
		programs := append(DefaultPrograms(), DefaultPrograms()[0])
		_, err := NewCatalog(programs, DefaultScale)
		assert.ErrorIs(t, err, errs.ErrInvalidProgramConfig)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		_, err := NewCatalog(nil, DefaultScale)
		assert.ErrorIs(t, err, errs.ErrInvalidProgramConfig)
	})

	t.Run("Scale out of range", func(t *testing.T) {
		_, err := NewCatalog(DefaultPrograms(), MaxScale+1)
		assert.ErrorIs(t, err, errs.ErrInvalidProgramConfig)
	})

	t.Run("List keeps catalog order and unknown lookups fail", func(t *testing.T) {
		programs := DefaultPrograms()
		reversed := []Program{programs[3], programs[1], programs[0]}
		catalog, err := NewCatalog(reversed, DefaultScale)
		require.NoError(t, err)

		list := catalog.List()
		require.Len(t, list, 3)
		assert.Equal(t, ProgramGS1, list[0].ID)
		assert.Equal(t, ProgramGS2, list[1].ID)
		assert.Equal(t, ProgramGS4, list[2].ID)

		_, err = catalog.Get(ProgramGS3)
		assert.ErrorIs(t, err, errs.ErrUnknownProgram)
	})
}
