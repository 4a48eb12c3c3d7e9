package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// poolPressure is the share of open connections in use above which the monitor warns
const poolPressure = 0.8

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"open_connections"`
	IdleConnections    int           `json:"idle_connections"`
	MaxOpenConnections int           `json:"max_open_connections"`
	InUse              int           `json:"in_use"`
	WaitCount          int64         `json:"wait_count"`
	WaitDuration       time.Duration `json:"wait_duration_ns"`
	MaxIdleClosed      int64         `json:"max_idle_closed"`
	MaxLifetimeClosed  int64         `json:"max_lifetime_closed"`
}

// ConnectionPoolMonitor samples the connection pool on a ticker
type ConnectionPoolMonitor struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	queries      *MetricsCollector
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
	started      atomic.Bool
	done         chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *gorm.DB, queries *MetricsCollector, timeProvider coreport.TimeProvider, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		queries:      queries,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start collects once and then keeps collecting every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("monitor interval must be positive, got: %s", interval)
	}
	if err := m.collectMetrics(); err != nil {
		return err
	}

	ticker := m.timeProvider.NewTicker(coreport.Duration(interval))
	m.started.Store(true)
	go func() {
		defer close(m.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C():
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring and waits for the sampling goroutine to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	if m.started.Load() {
		<-m.done
	}
}

// GetMetrics returns the most recent connection pool sample
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() error {
	metrics, err := poolMetrics(m.db)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	m.metricsCache = &metrics
	m.mutex.Unlock()

	threshold := float64(metrics.MaxOpenConnections) * poolPressure
	if metrics.MaxOpenConnections > 0 && float64(metrics.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     metrics.InUse,
			"max_open":   metrics.MaxOpenConnections,
			"idle":       metrics.IdleConnections,
			"wait_count": metrics.WaitCount,
			"wait_time":  metrics.WaitDuration.String(),
		})
	}

	if m.queries != nil {
		stats := m.queries.Snapshot()
		m.logger.Debug("Database statistics", map[string]any{
			"open_connections": metrics.OpenConnections,
			"in_use":           metrics.InUse,
			"queries":          stats.Queries,
			"failed":           stats.Failed,
			"slow":             stats.Slow,
			"avg_ms":           stats.AverageTime().Milliseconds(),
		})
	}
	return nil
}

func poolMetrics(db *gorm.DB) (ConnectionPoolMetrics, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return ConnectionPoolMetrics{}, fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()
	return ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}, nil
}

// HealthReport is the database section of the health endpoint
type HealthReport struct {
	Status    string                `json:"status"`
	LatencyMs int64                 `json:"latency_ms"`
	Error     string                `json:"error,omitempty"`
	Pool      ConnectionPoolMetrics `json:"pool"`
	Queries   int64                 `json:"queries"`
	Failed    int64                 `json:"failed_queries"`
	Slow      int64                 `json:"slow_queries"`
}

// Healthy reports whether the ping succeeded
func (r HealthReport) Healthy() bool {
	return r.Status == "up"
}

// HealthChecker pings the database on demand
type HealthChecker struct {
	db           *gorm.DB
	queries      *MetricsCollector
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	timeout      time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, queries *MetricsCollector, timeout time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *HealthChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthChecker{
		db:           db,
		queries:      queries,
		logger:       logger,
		timeProvider: timeProvider,
		timeout:      timeout,
	}
}

// Check pings the database and reports pool and query statistics
func (h *HealthChecker) Check(ctx context.Context) HealthReport {
	report := HealthReport{Status: "up"}
	if h.queries != nil {
		stats := h.queries.Snapshot()
		report.Queries, report.Failed, report.Slow = stats.Queries, stats.Failed, stats.Slow
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		report.Status, report.Error = "down", err.Error()
		return report
	}

	ctx, cancel := h.timeProvider.WithTimeout(ctx, coreport.Duration(h.timeout))
	defer cancel()

	start := h.timeProvider.Now()
	err = sqlDB.PingContext(ctx)
	report.LatencyMs = h.timeProvider.Since(start).Std().Milliseconds()
	if err != nil {
		h.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
		report.Status, report.Error = "down", err.Error()
	}

	if pool, err := poolMetrics(h.db); err == nil {
		report.Pool = pool
	}
	return report
}
