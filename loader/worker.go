package loader

import (
	"context"

	"txnloader/generator"
	"txnloader/models"
	"txnloader/progress"

	"github.com/apex/log"
)

// BatchWriter is the destination-side contract a worker drives. The
// concrete implementation owns one dedicated connection per worker.
type BatchWriter interface {
	WriteBatch(ctx context.Context, records []models.Record) error
	Close() error
}

// Worker inserts every record in its assigned range, one batch at a time,
// reporting each committed batch to the shared aggregator.
type Worker struct {
	id        int
	rng       models.WorkRange
	batchSize int
	gen       *generator.Generator
	writer    BatchWriter
	agg       *progress.Aggregator
}

// NewWorker builds a worker for the given range. The writer and generator
// are owned by the worker from here on.
func NewWorker(rng models.WorkRange, batchSize int, gen *generator.Generator, writer BatchWriter, agg *progress.Aggregator) *Worker {
	return &Worker{
		id:        rng.WorkerID,
		rng:       rng,
		batchSize: batchSize,
		gen:       gen,
		writer:    writer,
		agg:       agg,
	}
}

// Run drives the insert loop until the range is exhausted, the context is
// cancelled, or a batch fails. Batch failures are not retried; the first
// error aborts the worker with its rows-so-far count. Session state is
// restored on every exit path.
func (w *Worker) Run(ctx context.Context) (int64, error) {
	defer func() {
		if err := w.writer.Close(); err != nil {
			log.Errorf("Worker %d: restoring session state failed: %v", w.id, err)
		}
	}()

	total := w.rng.Size()
	loc := generator.LocDetail(w.id)
	var inserted int64

	for inserted < total {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		size := int64(w.batchSize)
		if left := total - inserted; left < size {
			size = left
		}

		batch := make([]models.Record, 0, size)
		for i := int64(0); i < size; i++ {
			rec, err := w.gen.Record(w.id, loc)
			if err != nil {
				return inserted, err
			}
			batch = append(batch, rec)
		}

		if err := w.writer.WriteBatch(ctx, batch); err != nil {
			return inserted, err
		}
		inserted += size

		snap := w.agg.RecordBatch(w.id, size)
		log.Infof("Worker %d | Inserted: %d/%d (%5.2f%%) | Left: %d | Speed: %.0f rows/sec | ETA: %.2f min",
			w.id, snap.Inserted, snap.Total, snap.Percent, snap.Remaining, snap.Rate, snap.ETASec/60)
	}

	return inserted, nil
}
