package lottery

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil"
	"github.com/amirhossein-jamali/referral-ledger/internal/testutil/memstore"
	persistencemocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const escrow uint64 = 3

func newService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	store.SeedSystemAccount(escrow)
	store.SeedAccount(10, "BRT", decimal.NewFromInt(5))
	store.SeedAccount(11, "BRT", decimal.NewFromInt(5))

	logger := testutil.NewLogger(t)
	clock := testutil.NewClock(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	runner := txn.NewRunner(store, txn.DefaultRetryPolicy(), 0, clock, logger)
	return NewService(runner, ledger.NewWriter(store, clock, logger), escrow, "BRT", entity.DefaultScale, clock, logger), store
}

func TestOpenDraw(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	draw, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "1.50", HouseCutPercent: "15"})
	require.NoError(t, err)
	assert.NotZero(t, draw.ID)
	assert.Equal(t, entity.DrawOpen, draw.Status)
	assert.Equal(t, "1.5", draw.TicketPrice.String())

	testCases := []struct {
		name string
		req  usecase.OpenDrawRequest
		err  error
	}{
		{"Missing price", usecase.OpenDrawRequest{}, errs.ErrInvalidAmount},
		{"Too precise", usecase.OpenDrawRequest{TicketPrice: "0.001"}, errs.ErrInvalidAmount},
		{"Cut not a number", usecase.OpenDrawRequest{TicketPrice: "1", HouseCutPercent: "half"}, errs.ErrInvalidRequest},
		{"Negative cut", usecase.OpenDrawRequest{TicketPrice: "1", HouseCutPercent: "-1"}, errs.ErrInvalidRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.OpenDraw(ctx, tc.req)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuyTicket(t *testing.T) {
	ctx := context.Background()
	s, store := newService(t)
	draw, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "2"})
	require.NoError(t, err)

	ticket, err := s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 10, Numbers: " 7 14 21 "})
	require.NoError(t, err)
	assert.Equal(t, "7 14 21", ticket.Numbers)
	assert.Equal(t, "3", store.Balance(10, "BRT").String())
	assert.Equal(t, "2", store.Balance(escrow, "BRT").String())

	_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 10, Numbers: "1"})
	require.NoError(t, err)
	_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 10, Numbers: "2"})
	assert.True(t, errs.IsInsufficientFundsError(err))
	assert.True(t, store.Balance(10, "BRT").IsZero())

	tickets, err := store.GetLotteryRepository(ctx).ListTickets(ctx, draw.ID)
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 11, Numbers: ""})
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: 404, UserID: 11, Numbers: "1"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, Numbers: "1"})
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

func TestRecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Flags winners and enqueues the payout", func(t *testing.T) {
		s, store := newService(t)
		draw, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "1"})
		require.NoError(t, err)
		a, err := s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 10, Numbers: "1"})
		require.NoError(t, err)
		_, err = s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: draw.ID, UserID: 11, Numbers: "2"})
		require.NoError(t, err)

		drawn, err := s.RecordResult(ctx, draw.ID, []uint64{a.ID, a.ID, 0})
		require.NoError(t, err)
		assert.Equal(t, entity.DrawDrawn, drawn.Status)

		tickets, err := store.GetLotteryRepository(ctx).ListTickets(ctx, draw.ID)
		require.NoError(t, err)
		for _, ticket := range tickets {
			assert.Equal(t, ticket.ID == a.ID, ticket.Winner)
		}

		jobs := store.Jobs()
		require.Len(t, jobs, 1)
		assert.Equal(t, entity.PayoutTargetLotteryDraw, jobs[0].TargetType)
		assert.Equal(t, draw.ID, jobs[0].TargetID)

		_, err = s.RecordResult(ctx, draw.ID, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("Tickets from another draw are rejected", func(t *testing.T) {
		s, store := newService(t)
		first, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "1"})
		require.NoError(t, err)
		second, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "1"})
		require.NoError(t, err)
		other, err := s.BuyTicket(ctx, usecase.BuyTicketRequest{DrawID: second.ID, UserID: 10, Numbers: "1"})
		require.NoError(t, err)

		_, err = s.RecordResult(ctx, first.ID, []uint64{other.ID})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		stored, err := store.GetLotteryRepository(ctx).GetDraw(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.DrawOpen, stored.Status)
		assert.Empty(t, store.Jobs())
	})

	t.Run("A draw without winners still gets a payout job", func(t *testing.T) {
		s, store := newService(t)
		draw, err := s.OpenDraw(ctx, usecase.OpenDrawRequest{TicketPrice: "1"})
		require.NoError(t, err)

		_, err = s.RecordResult(ctx, draw.ID, nil)
		require.NoError(t, err)
		assert.Len(t, store.Jobs(), 1)
	})
}

func TestRecordResultWithRepositoryMocks(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")
	logger := testutil.NewLogger(t)
	clock := testutil.NewClock(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	uow := persistencemocks.NewMockUnitOfWork(t)
	repo := persistencemocks.NewMockLotteryRepository(t)
	runner := txn.NewRunner(uow, txn.DefaultRetryPolicy(), 0, clock, logger)
	s := NewService(runner, ledger.NewWriter(uow, clock, logger), escrow, "BRT", entity.DefaultScale, clock, logger)

	uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	uow.EXPECT().GetLotteryRepository(txCtx).Return(repo)
	repo.EXPECT().GetDrawForUpdate(txCtx, uint64(7)).
		Return(&entity.LotteryDraw{ID: 7, TicketPrice: decimal.NewFromInt(1), Status: entity.DrawOpen}, nil).Once()
	repo.EXPECT().MarkWinners(txCtx, uint64(7), []uint64{3, 5}).Return(0, errs.ErrConcurrentUpdate).Once()
	uow.EXPECT().Rollback(txCtx).Return(nil).Once()

	// a second attempt sees the draw already closed by the competing writer
	txCtx2 := context.WithValue(ctx, struct{}{}, "tx2")
	uow.EXPECT().Begin(ctx).Return(txCtx2, nil).Once()
	uow.EXPECT().GetLotteryRepository(txCtx2).Return(repo)
	repo.EXPECT().GetDrawForUpdate(txCtx2, uint64(7)).
		Return(&entity.LotteryDraw{ID: 7, TicketPrice: decimal.NewFromInt(1), Status: entity.DrawDrawn}, nil).Once()
	uow.EXPECT().Rollback(txCtx2).Return(nil).Once()

	_, err := s.RecordResult(ctx, 7, []uint64{3, 5, 3})
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "GetPayoutJobRepository", mock.Anything)
}
