package monitor

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// SemaphoreLoadMonitor implements LoadMonitor on a weighted semaphore.
type SemaphoreLoadMonitor struct {
	sem       *semaphore.Weighted
	maxWeight int64
	activeCnt atomic.Int64
	doneCnt   atomic.Int64
	failedCnt atomic.Int64
}

// NewSemaphoreLoadMonitor allows at most maxConcurrency renders at once.
// Values below one are treated as one.
func NewSemaphoreLoadMonitor(maxConcurrency int64) *SemaphoreLoadMonitor {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &SemaphoreLoadMonitor{
		sem:       semaphore.NewWeighted(maxConcurrency),
		maxWeight: maxConcurrency,
	}
}

func (m *SemaphoreLoadMonitor) GetMetrics() LoadMetrics {
	active := m.activeCnt.Load()
	return LoadMetrics{
		ActiveTasks:    active,
		MaxTasks:       m.maxWeight,
		Done:           m.doneCnt.Load(),
		Failed:         m.failedCnt.Load(),
		LoadPercentage: float64(active) / float64(m.maxWeight) * 100.0,
	}
}

func (m *SemaphoreLoadMonitor) Acquire(ctx context.Context) error {
	if err := m.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	m.activeCnt.Add(1)
	return nil
}

func (m *SemaphoreLoadMonitor) Release(err error) {
	m.activeCnt.Add(-1)
	m.doneCnt.Add(1)
	if err != nil {
		m.failedCnt.Add(1)
	}
	m.sem.Release(1)
}
