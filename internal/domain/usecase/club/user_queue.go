package club

import (
	"context"
	"sync"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
)

// UserQueue runs work for the same user one at a time inside this process, so two joins
// by one user do not race each other into serialization conflicts. The unique
// (user_id, program) constraint remains the guard across processes.
type UserQueue struct {
	logger coreport.Logger

	mu      sync.Mutex
	lanes   map[uint64]*lane
	closed  bool
	workers sync.WaitGroup
}

type lane struct {
	requests chan *queuedWork
	pending  int
}

type queuedWork struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

const laneBuffer = 64

// NewUserQueue creates a new UserQueue
func NewUserQueue(logger coreport.Logger) *UserQueue {
	return &UserQueue{logger: logger, lanes: make(map[uint64]*lane)}
}

// Do runs fn after every earlier fn queued for userID has finished
func (q *UserQueue) Do(ctx context.Context, userID uint64, fn func(ctx context.Context) error) error {
	work := &queuedWork{ctx: ctx, fn: fn, result: make(chan error, 1)}

	l, err := q.acquire(userID)
	if err != nil {
		return err
	}

	// once enqueued, the worker owns the release
	select {
	case l.requests <- work:
	case <-ctx.Done():
		q.release(userID, l)
		q.logger.Warn("Context canceled while queueing user work", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-work.result:
		return err
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for user work", map[string]any{
			"user_id": userID,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (q *UserQueue) acquire(userID uint64) (*lane, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, context.Canceled
	}
	l, ok := q.lanes[userID]
	if !ok {
		l = &lane{requests: make(chan *queuedWork, laneBuffer)}
		q.lanes[userID] = l
		q.workers.Add(1)
		go q.work(userID, l)
	}
	l.pending++
	return l, nil
}

// release drops the lane once no work is queued or running on it; its worker exits when the
// channel closes
func (q *UserQueue) release(userID uint64, l *lane) {
	q.mu.Lock()
	defer q.mu.Unlock()

	l.pending--
	if l.pending == 0 {
		delete(q.lanes, userID)
		close(l.requests)
	}
}

func (q *UserQueue) work(userID uint64, l *lane) {
	defer q.workers.Done()

	for work := range l.requests {
		if err := work.ctx.Err(); err != nil {
			work.result <- err
		} else {
			work.result <- work.fn(work.ctx)
		}
		q.release(userID, l)
	}

	q.logger.Debug("User queue worker stopped", map[string]any{"user_id": userID})
}

// Shutdown stops accepting work and waits for queued work to finish
func (q *UserQueue) Shutdown() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.workers.Wait()
	q.logger.Info("User queue shut down", nil)
}
