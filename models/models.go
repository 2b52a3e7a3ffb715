package models

// Record is one synthetic channel transaction row, built in memory right
// before its batch is inserted and discarded once the batch commits.
type Record struct {
	WorkerID  int
	UniqueID  string
	LocDetail string
	TS        int64
	Msg       string
	Action    int
	TxnID     int
	NilAction int
}

// WorkRange is the half-open index range [Start, End) owned by one worker.
// Ranges are assigned once and never change for the worker's lifetime.
type WorkRange struct {
	WorkerID int
	Start    int64
	End      int64
}

// Size returns the number of records in the range.
func (r WorkRange) Size() int64 {
	return r.End - r.Start
}

// ProgressSnapshot is the state of the run as observed inside the
// aggregator's critical section. WorkerID is -1 for read-only snapshots
// not tied to a committed batch.
type ProgressSnapshot struct {
	WorkerID   int     `json:"worker_id"`
	Inserted   int64   `json:"inserted"`
	Total      int64   `json:"total"`
	Percent    float64 `json:"percent"`
	Remaining  int64   `json:"remaining"`
	ElapsedSec float64 `json:"elapsed_sec"`
	Rate       float64 `json:"rows_per_sec"`
	ETASec     float64 `json:"eta_sec"`
}
