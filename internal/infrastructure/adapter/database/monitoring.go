package database

import (
	"sync"
	"time"
)

// QueryStats is a snapshot of the statements seen by the GORM logger
type QueryStats struct {
	Queries     int64
	Failed      int64
	Slow        int64
	TotalTime   time.Duration
	SlowestTime time.Duration
	ByType      map[string]int64
}

// MetricsCollector collects database operation metrics
type MetricsCollector struct {
	mu    sync.Mutex
	stats QueryStats
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{stats: QueryStats{ByType: make(map[string]int64)}}
}

// Record accounts for one executed statement
func (c *MetricsCollector) Record(queryType string, elapsed time.Duration, failed, slow bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Queries++
	c.stats.TotalTime += elapsed
	if elapsed > c.stats.SlowestTime {
		c.stats.SlowestTime = elapsed
	}
	if failed {
		c.stats.Failed++
	}
	if slow {
		c.stats.Slow++
	}
	if queryType == "" {
		queryType = "OTHER"
	}
	c.stats.ByType[queryType]++
}

// Snapshot returns a copy of the collected statistics
func (c *MetricsCollector) Snapshot() QueryStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.stats
	snapshot.ByType = make(map[string]int64, len(c.stats.ByType))
	for k, v := range c.stats.ByType {
		snapshot.ByType[k] = v
	}
	return snapshot
}

// AverageTime returns the mean statement duration
func (s QueryStats) AverageTime() time.Duration {
	if s.Queries == 0 {
		return 0
	}
	return s.TotalTime / time.Duration(s.Queries)
}
