// Package testutil holds helpers shared by use-case tests
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/referral-ledger/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

// NewLogger returns a mock logger that accepts any entry
func NewLogger(t *testing.T) *coremocks.MockLogger {
	t.Helper()
	l := coremocks.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().With(mock.Anything).Return(l).Maybe()
	return l
}

// Clock is a TimeProvider whose time only moves when told to
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*ManualTicker
}

var _ coreport.TimeProvider = (*Clock)(nil)

// NewClock creates a clock stopped at start
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since returns the fake time elapsed since t
func (c *Clock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

// Sleep advances the clock instead of blocking
func (c *Clock) Sleep(d coreport.Duration) {
	c.Advance(d.Std())
}

// WithTimeout uses a real deadline so blocked tests still fail
func (c *Clock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// NewTicker returns a ticker that fires only through Tick
func (c *Clock) NewTicker(coreport.Duration) coreport.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &ManualTicker{ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, t)
	return t
}

// Advance moves the clock forward
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Tickers returns the tickers created so far
func (c *Clock) Tickers() []*ManualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*ManualTicker(nil), c.tickers...)
}

// Tick fires every ticker created by this clock
func (c *Clock) Tick() {
	c.mu.Lock()
	now, tickers := c.now, append([]*ManualTicker(nil), c.tickers...)
	c.mu.Unlock()
	for _, t := range tickers {
		t.fire(now)
	}
}

// ManualTicker is the ticker handed out by Clock
type ManualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

// C returns the tick channel
func (t *ManualTicker) C() <-chan time.Time {
	return t.ch
}

// Stop stops delivering ticks
func (t *ManualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called
func (t *ManualTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (t *ManualTicker) fire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	select {
	case t.ch <- now:
	default:
	}
}
