package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/referral-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

type accountRepo struct{ s *Store }

func (r *accountRepo) Create(_ context.Context, account *entity.Account) error {
	return r.s.write("accounts.create", func(d *state) error {
		if _, ok := d.accounts[account.ID]; ok {
			return errs.ErrDuplicateAccount
		}
		d.accounts[account.ID] = *account
		return nil
	})
}

func (r *accountRepo) GetByID(_ context.Context, id uint64) (*entity.Account, error) {
	var out *entity.Account
	err := r.s.read(func(d *state) error {
		a, ok := d.accounts[id]
		if !ok {
			return errs.ErrAccountNotFound
		}
		out = &a
		return nil
	})
	return out, err
}

type balanceRepo struct{ s *Store }

func (r *balanceRepo) LockOrCreate(ctx context.Context, userID uint64, currency string) (*entity.Balance, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	var out *entity.Balance
	err := r.s.write("balances.lock", func(d *state) error {
		if _, ok := d.accounts[userID]; !ok {
			return errs.ErrAccountNotFound
		}
		key := balanceKey{userID, currency}
		b, ok := d.balances[key]
		if !ok {
			b = *entity.RestoreBalance(userID, currency, decimal.Zero, r.s.clock())
			d.balances[key] = b
		}
		out = entity.RestoreBalance(b.UserID, b.Currency, b.Amount(), b.UpdatedAt)
		return nil
	})
	return out, err
}

func (r *balanceRepo) Save(ctx context.Context, balance *entity.Balance) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("balances.save", func(d *state) error {
		key := balanceKey{balance.UserID, balance.Currency}
		if _, ok := d.balances[key]; !ok {
			return errs.ErrNotFound
		}
		if balance.Amount().IsNegative() {
			return errs.ErrNegativeBalance
		}
		d.balances[key] = *entity.RestoreBalance(balance.UserID, balance.Currency, balance.Amount(), balance.UpdatedAt)
		return nil
	})
}

func (r *balanceRepo) Get(_ context.Context, userID uint64, currency string) (*entity.Balance, error) {
	var out *entity.Balance
	err := r.s.read(func(d *state) error {
		b, ok := d.balances[balanceKey{userID, currency}]
		if !ok {
			return errs.ErrNotFound
		}
		out = entity.RestoreBalance(b.UserID, b.Currency, b.Amount(), b.UpdatedAt)
		return nil
	})
	return out, err
}

func (r *balanceRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Balance, error) {
	var out []*entity.Balance
	err := r.s.read(func(d *state) error {
		for k, b := range d.balances {
			if k.userID == userID {
				out = append(out, entity.RestoreBalance(b.UserID, b.Currency, b.Amount(), b.UpdatedAt))
			}
		}
		return nil
	})
	sortBalances(out)
	return out, err
}

func sortBalances(balances []*entity.Balance) {
	for i := 1; i < len(balances); i++ {
		for j := i; j > 0 && balances[j].Currency < balances[j-1].Currency; j-- {
			balances[j], balances[j-1] = balances[j-1], balances[j]
		}
	}
}

type transactionRepo struct{ s *Store }

func (r *transactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("transactions.create", func(d *state) error {
		for _, t := range d.transactions {
			if t.Reference == transaction.Reference {
				return errs.ErrDuplicateReference
			}
		}
		transaction.ID = d.id()
		stored := *transaction
		stored.Metadata = copyMetadata(transaction.Metadata)
		d.transactions = append(d.transactions, stored)
		return nil
	})
}

func (r *transactionRepo) GetByReference(_ context.Context, reference string) (*entity.Transaction, error) {
	var out *entity.Transaction
	err := r.s.read(func(d *state) error {
		for _, t := range d.transactions {
			if t.Reference == reference {
				c := t
				c.Metadata = copyMetadata(t.Metadata)
				out = &c
				return nil
			}
		}
		return errs.ErrNotFound
	})
	return out, err
}

func (r *transactionRepo) ListByUser(_ context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	err := r.s.read(func(d *state) error {
		skipped := 0
		for i := len(d.transactions) - 1; i >= 0; i-- {
			t := d.transactions[i]
			if !t.Touches(userID) {
				continue
			}
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(out) >= limit {
				break
			}
			c := t
			c.Metadata = copyMetadata(t.Metadata)
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *transactionRepo) SumForUser(_ context.Context, userID uint64, currency string) (in, out decimal.Decimal, err error) {
	in, out = decimal.Zero, decimal.Zero
	err = r.s.read(func(d *state) error {
		for _, t := range d.transactions {
			if t.Status != entity.StatusCompleted || t.Currency != currency {
				continue
			}
			if t.ToUserID != nil && *t.ToUserID == userID {
				in = in.Add(t.Amount)
			}
			if t.FromUserID != nil && *t.FromUserID == userID {
				out = out.Add(t.Amount)
			}
		}
		return nil
	})
	return in, out, err
}

type membershipRepo struct{ s *Store }

func (r *membershipRepo) Create(ctx context.Context, membership *entity.Membership) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("memberships.create", func(d *state) error {
		key := membershipKey{membership.UserID, membership.Program}
		if _, ok := d.memberships[key]; ok {
			return errs.ErrAlreadyMember
		}
		for _, m := range d.memberships {
			if m.ReferralCode == membership.ReferralCode {
				return fmt.Errorf("%w: referral code taken", errs.ErrConstraintViolation)
			}
		}
		membership.ID = d.id()
		d.memberships[key] = *membership
		return nil
	})
}

func (r *membershipRepo) SaveSnapshot(ctx context.Context, snapshot *entity.HierarchySnapshot) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("snapshots.create", func(d *state) error {
		key := membershipKey{snapshot.UserID, snapshot.Program}
		if _, ok := d.snapshots[key]; ok {
			return errs.ErrConstraintViolation
		}
		stored := *snapshot
		stored.Levels = copyHierarchy(snapshot.Levels)
		d.snapshots[key] = stored
		return nil
	})
}

func (r *membershipRepo) Exists(_ context.Context, userID uint64, program entity.ProgramID) (bool, error) {
	var exists bool
	err := r.s.read(func(d *state) error {
		_, exists = d.memberships[membershipKey{userID, program}]
		return nil
	})
	return exists, err
}

func (r *membershipRepo) GetByUserAndProgram(_ context.Context, userID uint64, program entity.ProgramID) (*entity.Membership, error) {
	var out *entity.Membership
	err := r.s.read(func(d *state) error {
		m, ok := d.memberships[membershipKey{userID, program}]
		if !ok {
			return errs.ErrNotFound
		}
		out = &m
		return nil
	})
	return out, err
}

func (r *membershipRepo) GetByReferralCode(_ context.Context, code string) (*entity.Membership, error) {
	var out *entity.Membership
	err := r.s.read(func(d *state) error {
		for _, m := range d.memberships {
			if m.ReferralCode == code {
				c := m
				out = &c
				return nil
			}
		}
		return errs.ErrNotFound
	})
	return out, err
}

func (r *membershipRepo) ReferralCodeExists(_ context.Context, code string) (bool, error) {
	var exists bool
	err := r.s.read(func(d *state) error {
		for _, m := range d.memberships {
			if m.ReferralCode == code {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r *membershipRepo) ListByUser(_ context.Context, userID uint64) ([]*entity.Membership, error) {
	var out []*entity.Membership
	err := r.s.read(func(d *state) error {
		for _, id := range entity.KnownPrograms() {
			if m, ok := d.memberships[membershipKey{userID, id}]; ok {
				c := m
				out = append(out, &c)
			}
		}
		return nil
	})
	return out, err
}

func (r *membershipRepo) GetSnapshot(_ context.Context, userID uint64, program entity.ProgramID) (*entity.HierarchySnapshot, error) {
	var out *entity.HierarchySnapshot
	err := r.s.read(func(d *state) error {
		snap, ok := d.snapshots[membershipKey{userID, program}]
		if !ok {
			return errs.ErrNotFound
		}
		snap.Levels = copyHierarchy(snap.Levels)
		out = &snap
		return nil
	})
	return out, err
}

type payoutJobRepo struct{ s *Store }

func (r *payoutJobRepo) Enqueue(ctx context.Context, job *entity.PayoutJob) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("payout_jobs.enqueue", func(d *state) error {
		key := jobKey{job.TargetType, job.TargetID}
		for _, j := range d.jobs {
			if (jobKey{j.TargetType, j.TargetID}) == key {
				job.ID = j.ID
				return nil
			}
		}
		job.ID = d.id()
		d.jobs = append(d.jobs, *job)
		return nil
	})
}

func (r *payoutJobRepo) ClaimPending(ctx context.Context, limit, maxAttempts int, now time.Time) ([]*entity.PayoutJob, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	var out []*entity.PayoutJob
	err := r.s.write("payout_jobs.claim", func(d *state) error {
		for i := range d.jobs {
			if len(out) >= limit {
				break
			}
			j := &d.jobs[i]
			if j.Status != entity.PayoutJobPending || j.AttemptCount >= maxAttempts {
				continue
			}
			started := now
			j.Status = entity.PayoutJobProcessing
			j.StartedAt = &started
			j.UpdatedAt = now
			c := *j
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *payoutJobRepo) Save(ctx context.Context, job *entity.PayoutJob) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("payout_jobs.save", func(d *state) error {
		for i := range d.jobs {
			if d.jobs[i].ID == job.ID {
				d.jobs[i] = *job
				return nil
			}
		}
		return errs.ErrNotFound
	})
}

func (r *payoutJobRepo) GetByTarget(_ context.Context, targetType entity.PayoutTargetType, targetID uint64) (*entity.PayoutJob, error) {
	var out *entity.PayoutJob
	err := r.s.read(func(d *state) error {
		for _, j := range d.jobs {
			if j.TargetType == targetType && j.TargetID == targetID {
				c := j
				out = &c
				return nil
			}
		}
		return errs.ErrNotFound
	})
	return out, err
}

func (r *payoutJobRepo) List(_ context.Context, status entity.PayoutJobStatus, limit int) ([]*entity.PayoutJob, error) {
	var out []*entity.PayoutJob
	err := r.s.read(func(d *state) error {
		for i := len(d.jobs) - 1; i >= 0 && len(out) < limit; i-- {
			if status != "" && d.jobs[i].Status != status {
				continue
			}
			c := d.jobs[i]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r *payoutJobRepo) RequeueStale(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error) {
	if err := requireTx(ctx); err != nil {
		return 0, err
	}
	var n int64
	err := r.s.write("payout_jobs.requeue", func(d *state) error {
		for i := range d.jobs {
			j := &d.jobs[i]
			if j.Status != entity.PayoutJobProcessing || j.StartedAt == nil || !j.StartedAt.Before(cutoff) {
				continue
			}
			j.AttemptCount++
			j.ErrorMessage = "processing timed out"
			j.UpdatedAt = r.s.clock()
			if j.AttemptCount >= maxAttempts {
				j.Status = entity.PayoutJobFailed
			} else {
				j.Status = entity.PayoutJobPending
			}
			n++
		}
		return nil
	})
	return n, err
}

type challengeRepo struct{ s *Store }

func (r *challengeRepo) Create(ctx context.Context, challenge *entity.Challenge) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("challenges.create", func(d *state) error {
		challenge.ID = d.id()
		d.challenges[challenge.ID] = *challenge
		return nil
	})
}

func (r *challengeRepo) GetByID(_ context.Context, id uint64) (*entity.Challenge, error) {
	var out *entity.Challenge
	err := r.s.read(func(d *state) error {
		c, ok := d.challenges[id]
		if !ok {
			return errs.ErrNotFound
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *challengeRepo) GetForUpdate(ctx context.Context, id uint64) (*entity.Challenge, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *challengeRepo) Update(ctx context.Context, challenge *entity.Challenge) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("challenges.update", func(d *state) error {
		if _, ok := d.challenges[challenge.ID]; !ok {
			return errs.ErrNotFound
		}
		d.challenges[challenge.ID] = *challenge
		return nil
	})
}

func (r *challengeRepo) AddBet(ctx context.Context, bet *entity.ChallengeBet) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("bets.create", func(d *state) error {
		if _, ok := d.challenges[bet.ChallengeID]; !ok {
			return errs.ErrNotFound
		}
		bet.ID = d.id()
		d.bets = append(d.bets, *bet)
		return nil
	})
}

func (r *challengeRepo) ListBets(_ context.Context, challengeID uint64) ([]entity.ChallengeBet, error) {
	var out []entity.ChallengeBet
	err := r.s.read(func(d *state) error {
		for _, b := range d.bets {
			if b.ChallengeID == challengeID {
				out = append(out, b)
			}
		}
		return nil
	})
	return out, err
}

type lotteryRepo struct{ s *Store }

func (r *lotteryRepo) CreateDraw(ctx context.Context, draw *entity.LotteryDraw) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("draws.create", func(d *state) error {
		draw.ID = d.id()
		d.draws[draw.ID] = *draw
		return nil
	})
}

func (r *lotteryRepo) GetDraw(_ context.Context, id uint64) (*entity.LotteryDraw, error) {
	var out *entity.LotteryDraw
	err := r.s.read(func(d *state) error {
		dr, ok := d.draws[id]
		if !ok {
			return errs.ErrNotFound
		}
		out = &dr
		return nil
	})
	return out, err
}

func (r *lotteryRepo) GetDrawForUpdate(ctx context.Context, id uint64) (*entity.LotteryDraw, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	return r.GetDraw(ctx, id)
}

func (r *lotteryRepo) UpdateDraw(ctx context.Context, draw *entity.LotteryDraw) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("draws.update", func(d *state) error {
		if _, ok := d.draws[draw.ID]; !ok {
			return errs.ErrNotFound
		}
		d.draws[draw.ID] = *draw
		return nil
	})
}

func (r *lotteryRepo) AddTicket(ctx context.Context, ticket *entity.LotteryTicket) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	return r.s.write("tickets.create", func(d *state) error {
		if _, ok := d.draws[ticket.DrawID]; !ok {
			return errs.ErrNotFound
		}
		ticket.ID = d.id()
		d.tickets = append(d.tickets, *ticket)
		return nil
	})
}

func (r *lotteryRepo) ListTickets(_ context.Context, drawID uint64) ([]entity.LotteryTicket, error) {
	var out []entity.LotteryTicket
	err := r.s.read(func(d *state) error {
		for _, t := range d.tickets {
			if t.DrawID == drawID {
				out = append(out, t)
			}
		}
		return nil
	})
	return out, err
}

func (r *lotteryRepo) MarkWinners(ctx context.Context, drawID uint64, ticketIDs []uint64) (int64, error) {
	if err := requireTx(ctx); err != nil {
		return 0, err
	}
	wanted := make(map[uint64]struct{}, len(ticketIDs))
	for _, id := range ticketIDs {
		wanted[id] = struct{}{}
	}
	var n int64
	err := r.s.write("tickets.mark_winners", func(d *state) error {
		for i := range d.tickets {
			if d.tickets[i].DrawID != drawID {
				continue
			}
			if _, ok := wanted[d.tickets[i].ID]; ok {
				d.tickets[i].Winner = true
				n++
			}
		}
		return nil
	})
	return n, err
}
