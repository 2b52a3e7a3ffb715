package loader

import (
	"txnloader/models"
)

// Partition splits [0, total) into one contiguous half-open range per
// worker. Ranges are ordered by worker id, pairwise disjoint, and their
// sizes sum to total; the trailing ranges may be shorter (or empty when
// there are more workers than records). Worker ids start at 1.
func Partition(total int64, workers int) []models.WorkRange {
	if workers < 1 {
		workers = 1
	}
	per := (total + int64(workers) - 1) / int64(workers)

	ranges := make([]models.WorkRange, 0, workers)
	for i := 0; i < workers; i++ {
		start := int64(i) * per
		end := start + per
		if start > total {
			start = total
		}
		if end > total {
			end = total
		}
		ranges = append(ranges, models.WorkRange{WorkerID: i + 1, Start: start, End: end})
	}
	return ranges
}
