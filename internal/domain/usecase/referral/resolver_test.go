package referral

import (
	"context"
	"fmt"
	"testing"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil/memstore"
	persistencemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const house uint64 = 1

func newResolver(t *testing.T) (*Resolver, *memstore.Store) {
	catalog, err := entity.NewCatalog(entity.DefaultPrograms(), entity.DefaultScale)
	require.NoError(t, err)
	store := memstore.New()
	return NewResolver(store, catalog, house, testutil.NewLogger(t)), store
}

func member(store *memstore.Store, userID uint64, program entity.ProgramID, code string, referrer *uint64) {
	store.SeedMembership(entity.Membership{UserID: userID, Program: program, ReferralCode: code, ReferrerID: referrer})
}

func ids(h entity.Hierarchy) []uint64 {
	out := make([]uint64, len(h))
	for i := range h {
		if id, ok := h.At(i); ok {
			out[i] = id
		}
	}
	return out
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Walks the chain in the same program", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", nil)
		member(store, 11, entity.ProgramGS1, "GSI-BBBBBBBB", entity.UserRef(10))
		member(store, 12, entity.ProgramGS1, "GSI-CCCCCCCC", entity.UserRef(11))

		h, err := r.Resolve(ctx, 13, entity.ProgramGS1, "gsi-cccccccc")
		require.NoError(t, err)
		assert.Equal(t, []uint64{12, 11, 10, 0}, ids(h))
	})

	t.Run("Truncates at the program depth", func(t *testing.T) {
		r, store := newResolver(t)
		var referrer *uint64
		for id := uint64(20); id < 30; id++ {
			member(store, id, entity.ProgramGS1, fmt.Sprintf("GSI-X%d", id), referrer)
			referrer = entity.UserRef(id)
		}

		h, err := r.Resolve(ctx, 99, entity.ProgramGS1, "GSI-X29")
		require.NoError(t, err)
		assert.Equal(t, []uint64{29, 28, 27, 26}, ids(h))
	})

	t.Run("Stops at the house account", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, house, entity.ProgramGS1, "GSI-HOUSE", nil)
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", entity.UserRef(house))

		h, err := r.Resolve(ctx, 13, entity.ProgramGS1, "GSI-AAAAAAAA")
		require.NoError(t, err)
		assert.Equal(t, []uint64{10, 0, 0, 0}, ids(h))

		h, err = r.Resolve(ctx, 14, entity.ProgramGS1, "GSI-HOUSE")
		require.NoError(t, err)
		assert.Equal(t, 0, h.Filled())
	})

	t.Run("Cycles are cut", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", entity.UserRef(11))
		member(store, 11, entity.ProgramGS1, "GSI-BBBBBBBB", entity.UserRef(10))

		h, err := r.Resolve(ctx, 13, entity.ProgramGS1, "GSI-AAAAAAAA")
		require.NoError(t, err)
		assert.Equal(t, []uint64{10, 11, 0, 0}, ids(h))
	})

	t.Run("The payer never appears in their own hierarchy", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, 11, entity.ProgramGS1, "GSI-BBBBBBBB", entity.UserRef(10))
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", nil)

		h, err := r.Resolve(ctx, 10, entity.ProgramGS1, "GSI-BBBBBBBB")
		require.NoError(t, err)
		assert.Equal(t, []uint64{11, 0, 0, 0}, ids(h))
	})

	t.Run("Referrer without a membership in the program ends the chain", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, 11, entity.ProgramGS2, "GSII-BBBBBBBB", entity.UserRef(10))
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", nil)

		h, err := r.Resolve(ctx, 13, entity.ProgramGS2, "GSII-BBBBBBBB")
		require.NoError(t, err)
		assert.Equal(t, []uint64{11, 0, 0, 0, 0}, ids(h))
	})

	t.Run("Codes that do not apply give an empty hierarchy", func(t *testing.T) {
		r, store := newResolver(t)
		member(store, 10, entity.ProgramGS1, "GSI-AAAAAAAA", nil)

		for _, code := range []string{"", "GSI-NOPE", "GSI-AAAAAAAA"} {
			h, err := r.Resolve(ctx, 13, entity.ProgramGS2, code)
			require.NoError(t, err)
			assert.Len(t, h, 5)
			assert.Equal(t, 0, h.Filled(), code)
		}
	})

	t.Run("Unknown program", func(t *testing.T) {
		r, _ := newResolver(t)
		_, err := r.Resolve(ctx, 13, entity.ProgramID("GS-X"), "")
		assert.ErrorIs(t, err, errs.ErrUnknownProgram)
	})
}

func TestResolveRepositoryFailures(t *testing.T) {
	ctx := context.Background()
	catalog, err := entity.NewCatalog(entity.DefaultPrograms(), entity.DefaultScale)
	require.NoError(t, err)

	setup := func(t *testing.T) (*Resolver, *persistencemocks.MockMembershipRepository) {
		uow := persistencemocks.NewMockUnitOfWork(t)
		repo := persistencemocks.NewMockMembershipRepository(t)
		uow.EXPECT().GetMembershipRepository(mock.Anything).Return(repo)
		return NewResolver(uow, catalog, house, testutil.NewLogger(t)), repo
	}

	t.Run("Code lookup failure is returned", func(t *testing.T) {
		r, repo := setup(t)
		repo.EXPECT().GetByReferralCode(mock.Anything, "GSI-AAAAAAAA").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := r.Resolve(ctx, 13, entity.ProgramGS1, "GSI-AAAAAAAA")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Ancestor lookup failure is returned", func(t *testing.T) {
		r, repo := setup(t)
		repo.EXPECT().GetByReferralCode(mock.Anything, "GSI-BBBBBBBB").
			Return(&entity.Membership{UserID: 11, Program: entity.ProgramGS1, ReferrerID: entity.UserRef(10)}, nil).Once()
		repo.EXPECT().GetByUserAndProgram(mock.Anything, uint64(10), entity.ProgramGS1).
			Return(nil, errs.ErrConcurrentUpdate).Once()

		_, err := r.Resolve(ctx, 13, entity.ProgramGS1, "GSI-BBBBBBBB")
		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
	})
}
