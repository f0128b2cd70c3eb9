package stackpool

import "sync/atomic"

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordPush is called after each push operation. recycled reports
	// whether the node came from the free list rather than arena growth;
	// err is nil if successful.
	RecordPush(recycled bool, err error)

	// RecordPop is called after each pop operation.
	// err is nil if successful.
	RecordPop(err error)

	// RecordFreeStack is called after each bulk free. n is the number of
	// nodes returned to the free list.
	RecordFreeStack(n int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPush(bool, error) {}
func (NoopMetricsCollector) RecordPop(error)        {}
func (NoopMetricsCollector) RecordFreeStack(int)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PushCount      atomic.Int64
	PushRecycled   atomic.Int64
	PushErrors     atomic.Int64
	PopCount       atomic.Int64
	PopErrors      atomic.Int64
	FreeStackCount atomic.Int64
	NodesReclaimed atomic.Int64
}

// RecordPush implements MetricsCollector.
func (c *BasicMetricsCollector) RecordPush(recycled bool, err error) {
	c.PushCount.Add(1)
	if recycled {
		c.PushRecycled.Add(1)
	}
	if err != nil {
		c.PushErrors.Add(1)
	}
}

// RecordPop implements MetricsCollector.
func (c *BasicMetricsCollector) RecordPop(err error) {
	c.PopCount.Add(1)
	if err != nil {
		c.PopErrors.Add(1)
	}
}

// RecordFreeStack implements MetricsCollector.
func (c *BasicMetricsCollector) RecordFreeStack(n int) {
	c.FreeStackCount.Add(1)
	c.NodesReclaimed.Add(int64(n))
}
