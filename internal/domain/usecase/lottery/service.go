package lottery

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/usecase/txn"
	"github.com/shopspring/decimal"
)

// Service runs the lottery lifecycle. Number matching happens outside this service;
// RecordResult receives the winning ticket ids.
type Service struct {
	runner       *txn.Runner
	uow          persistence.UnitOfWork
	writer       *ledger.Writer
	escrow       uint64
	currency     string
	scale        int32
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.LotteryUseCase = (*Service)(nil)

// NewService creates a new lottery Service
func NewService(
	runner *txn.Runner,
	writer *ledger.Writer,
	escrow uint64,
	currency string,
	scale int32,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:       runner,
		uow:          runner.UnitOfWork(),
		writer:       writer,
		escrow:       escrow,
		currency:     currency,
		scale:        scale,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// OpenDraw opens a draw
func (s *Service) OpenDraw(ctx context.Context, req usecase.OpenDrawRequest) (*entity.LotteryDraw, error) {
	price, err := entity.ParseAmount(req.TicketPrice, s.scale)
	if err != nil {
		return nil, err
	}
	cut := decimal.Zero
	if strings.TrimSpace(req.HouseCutPercent) != "" {
		cut, err = decimal.NewFromString(strings.TrimSpace(req.HouseCutPercent))
		if err != nil {
			return nil, errs.ErrInvalidRequest
		}
	}

	draw, err := entity.NewLotteryDraw(price, cut, s.scale, s.timeProvider)
	if err != nil {
		return nil, err
	}
	err = s.runner.Run(ctx, "lottery.open_draw", func(ctx context.Context) error {
		return s.uow.GetLotteryRepository(ctx).CreateDraw(ctx, draw)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lottery draw opened", map[string]any{
		"draw_id":      draw.ID,
		"ticket_price": draw.TicketPrice.String(),
		"house_cut":    draw.HouseCutPercent.String(),
	})
	return draw, nil
}

// BuyTicket moves the ticket price into escrow and records the ticket
func (s *Service) BuyTicket(ctx context.Context, req usecase.BuyTicketRequest) (*entity.LotteryTicket, error) {
	if req.UserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	numbers, err := entity.NormalizeNumbers(req.Numbers)
	if err != nil {
		return nil, err
	}

	ticket := &entity.LotteryTicket{DrawID: req.DrawID, UserID: req.UserID, Numbers: numbers}
	err = s.runner.Run(ctx, "lottery.buy_ticket", func(ctx context.Context) error {
		repo := s.uow.GetLotteryRepository(ctx)
		draw, err := repo.GetDrawForUpdate(ctx, req.DrawID)
		if err != nil {
			return err
		}
		if !draw.AcceptsTickets() {
			return errs.ErrInvalidState
		}

		if _, err := s.writer.Transfer(ctx, req.UserID, s.escrow, s.currency, draw.TicketPrice, entity.TypeLotteryTicket,
			entity.WithMetadata(map[string]any{"draw_id": draw.ID})); err != nil {
			return err
		}
		ticket.CreatedAt = s.timeProvider.Now()
		return repo.AddTicket(ctx, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lottery ticket bought", map[string]any{
		"draw_id":   ticket.DrawID,
		"ticket_id": ticket.ID,
		"user_id":   ticket.UserID,
	})
	return ticket, nil
}

// RecordResult closes the draw, flags the winning tickets and enqueues the payout
func (s *Service) RecordResult(ctx context.Context, drawID uint64, winningTicketIDs []uint64) (*entity.LotteryDraw, error) {
	unique := make(map[uint64]struct{}, len(winningTicketIDs))
	ids := make([]uint64, 0, len(winningTicketIDs))
	for _, id := range winningTicketIDs {
		if _, dup := unique[id]; dup || id == 0 {
			continue
		}
		unique[id] = struct{}{}
		ids = append(ids, id)
	}

	var draw *entity.LotteryDraw
	err := s.runner.Run(ctx, "lottery.record_result", func(ctx context.Context) error {
		repo := s.uow.GetLotteryRepository(ctx)
		var err error
		draw, err = repo.GetDrawForUpdate(ctx, drawID)
		if err != nil {
			return err
		}
		if err := draw.MarkDrawn(s.timeProvider); err != nil {
			return err
		}

		if len(ids) > 0 {
			marked, err := repo.MarkWinners(ctx, drawID, ids)
			if err != nil {
				return err
			}
			if marked != int64(len(ids)) {
				return fmt.Errorf("%w: %d of %d winning tickets belong to draw %d",
					errs.ErrInvalidRequest, marked, len(ids), drawID)
			}
		}
		if err := repo.UpdateDraw(ctx, draw); err != nil {
			return err
		}

		job, err := entity.NewPayoutJob(entity.PayoutTargetLotteryDraw, drawID, s.timeProvider)
		if err != nil {
			return err
		}
		return s.uow.GetPayoutJobRepository(ctx).Enqueue(ctx, job)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lottery result recorded, payout queued", map[string]any{
		"draw_id": drawID,
		"winners": len(ids),
	})
	return draw, nil
}
