package progress

import (
	"sync"
	"time"

	"txnloader/models"
)

// Aggregator is the single piece of state shared between workers: a
// counter of committed rows plus the derived metrics. All access goes
// through one mutex so no two workers ever observe an inconsistent
// intermediate sum.
type Aggregator struct {
	mu       sync.Mutex
	total    int64
	inserted int64
	t0       time.Time
}

// New returns an Aggregator for a run of total records started at t0.
func New(total int64, t0 time.Time) *Aggregator {
	return &Aggregator{total: total, t0: t0}
}

// RecordBatch adds one committed batch of n rows on behalf of workerID and
// returns the snapshot computed inside the same critical section.
func (a *Aggregator) RecordBatch(workerID int, n int64) models.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inserted += n
	return a.snapshotLocked(workerID)
}

// Snapshot returns the current state without recording anything. Used by
// the status server.
func (a *Aggregator) Snapshot() models.ProgressSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked(-1)
}

// Inserted returns the committed-row count so far.
func (a *Aggregator) Inserted() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inserted
}

func (a *Aggregator) snapshotLocked(workerID int) models.ProgressSnapshot {
	elapsed := time.Since(a.t0).Seconds()
	s := models.ProgressSnapshot{
		WorkerID:   workerID,
		Inserted:   a.inserted,
		Total:      a.total,
		Remaining:  a.total - a.inserted,
		ElapsedSec: elapsed,
	}
	if a.total > 0 {
		s.Percent = float64(a.inserted) / float64(a.total) * 100
	}
	if elapsed > 0 {
		s.Rate = float64(a.inserted) / elapsed
	}
	if s.Rate > 0 {
		s.ETASec = float64(s.Remaining) / s.Rate
	}
	return s
}
