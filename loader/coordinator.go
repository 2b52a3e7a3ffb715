package loader

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"txnloader/database"
	"txnloader/faker"
	"txnloader/generator"
	"txnloader/models"
	"txnloader/progress"

	"github.com/apex/log"
)

// WriterFactory produces the batch writer a worker will own. Injected so
// the coordinator never hands two workers the same connection.
type WriterFactory func(ctx context.Context, workerID int) (BatchWriter, error)

// MySQLWriterFactory returns a factory producing one dedicated-connection
// writer per worker against the given table.
func MySQLWriterFactory(db *sql.DB, table string) WriterFactory {
	return func(ctx context.Context, workerID int) (BatchWriter, error) {
		return database.NewBatchWriter(ctx, db, table)
	}
}

// Coordinator partitions the record count across workers, runs them all
// concurrently and waits for every one to reach a terminal state.
type Coordinator struct {
	factory         WriterFactory
	batchSize       int
	cancelOnFailure bool
}

// NewCoordinator builds a coordinator. With cancelOnFailure set, the first
// worker failure cancels the siblings at their next batch boundary;
// otherwise siblings run their ranges to completion.
func NewCoordinator(factory WriterFactory, batchSize int, cancelOnFailure bool) *Coordinator {
	return &Coordinator{
		factory:         factory,
		batchSize:       batchSize,
		cancelOnFailure: cancelOnFailure,
	}
}

type workerResult struct {
	workerID int
	rows     int64
	err      error
}

// Run executes the whole load. It returns the first worker error, but only
// after every worker has settled; rows committed before a failure stay
// committed.
func (c *Coordinator) Run(ctx context.Context, total int64, workers int, agg *progress.Aggregator) error {
	ranges := Partition(total, workers)
	startTS := time.Now().UnixMilli()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan workerResult, len(ranges))
	var wg sync.WaitGroup
	for _, rng := range ranges {
		wg.Add(1)
		go func(rng models.WorkRange) {
			defer wg.Done()
			rows, err := c.runWorker(ctx, rng, startTS, agg)
			if err != nil && c.cancelOnFailure {
				cancel()
			}
			results <- workerResult{workerID: rng.WorkerID, rows: rows, err: err}
		}(rng)
	}
	wg.Wait()
	close(results)

	var firstErr error
	for res := range results {
		if res.err != nil {
			log.Errorf("Worker %d failed after %d rows: %v", res.workerID, res.rows, res.err)
			// Siblings unblocked by the failure policy report
			// context.Canceled; the root-cause error wins over that
			// fallout regardless of arrival order.
			if firstErr == nil ||
				(errors.Is(firstErr, context.Canceled) && !errors.Is(res.err, context.Canceled)) {
				firstErr = res.err
			}
			continue
		}
		log.Infof("Worker %d finished inserting %d rows", res.workerID, res.rows)
	}
	return firstErr
}

func (c *Coordinator) runWorker(ctx context.Context, rng models.WorkRange, startTS int64, agg *progress.Aggregator) (int64, error) {
	writer, err := c.factory(ctx, rng.WorkerID)
	if err != nil {
		return 0, err
	}
	gen := generator.New(faker.New(time.Now().UnixNano()+int64(rng.WorkerID)), startTS)
	return NewWorker(rng, c.batchSize, gen, writer, agg).Run(ctx)
}
