package loader

import (
	"reflect"
	"testing"

	"txnloader/models"
)

func TestPartition(t *testing.T) {
	testCases := []struct {
		name    string
		total   int64
		workers int
		expect  []models.WorkRange
	}{
		{
			name:    "uneven tail",
			total:   17,
			workers: 4,
			expect: []models.WorkRange{
				{WorkerID: 1, Start: 0, End: 5},
				{WorkerID: 2, Start: 5, End: 10},
				{WorkerID: 3, Start: 10, End: 15},
				{WorkerID: 4, Start: 15, End: 17},
			},
		},
		{
			name:    "even split",
			total:   20,
			workers: 4,
			expect: []models.WorkRange{
				{WorkerID: 1, Start: 0, End: 5},
				{WorkerID: 2, Start: 5, End: 10},
				{WorkerID: 3, Start: 10, End: 15},
				{WorkerID: 4, Start: 15, End: 20},
			},
		},
		{
			name:    "single worker",
			total:   9,
			workers: 1,
			expect: []models.WorkRange{
				{WorkerID: 1, Start: 0, End: 9},
			},
		},
		{
			name:    "more workers than records",
			total:   3,
			workers: 5,
			expect: []models.WorkRange{
				{WorkerID: 1, Start: 0, End: 1},
				{WorkerID: 2, Start: 1, End: 2},
				{WorkerID: 3, Start: 2, End: 3},
				{WorkerID: 4, Start: 3, End: 3},
				{WorkerID: 5, Start: 3, End: 3},
			},
		},
	}

	for _, testCase := range testCases {
		got := Partition(testCase.total, testCase.workers)
		if !reflect.DeepEqual(got, testCase.expect) {
			t.Errorf("%s: Partition(%d, %d) = %v, expected %v",
				testCase.name, testCase.total, testCase.workers, got, testCase.expect)
		}
	}
}

func TestPartitionCoversRangeExactly(t *testing.T) {
	testCases := []struct {
		total   int64
		workers int
	}{
		{17000000, 4},
		{1, 1},
		{1, 8},
		{100, 7},
		{50000, 16},
		{999983, 13},
	}

	for _, testCase := range testCases {
		ranges := Partition(testCase.total, testCase.workers)
		if len(ranges) != testCase.workers {
			t.Errorf("Partition(%d, %d): got %d ranges, expected %d",
				testCase.total, testCase.workers, len(ranges), testCase.workers)
			continue
		}
		var sum int64
		var prevEnd int64
		for i, r := range ranges {
			if r.WorkerID != i+1 {
				t.Errorf("Partition(%d, %d): range %d has worker id %d",
					testCase.total, testCase.workers, i, r.WorkerID)
			}
			if r.Start != prevEnd {
				t.Errorf("Partition(%d, %d): range %d starts at %d, previous ended at %d",
					testCase.total, testCase.workers, i, r.Start, prevEnd)
			}
			if r.End < r.Start {
				t.Errorf("Partition(%d, %d): range %d is inverted: [%d, %d)",
					testCase.total, testCase.workers, i, r.Start, r.End)
			}
			sum += r.Size()
			prevEnd = r.End
		}
		if sum != testCase.total {
			t.Errorf("Partition(%d, %d): sizes sum to %d",
				testCase.total, testCase.workers, sum)
		}
		if prevEnd != testCase.total {
			t.Errorf("Partition(%d, %d): last range ends at %d",
				testCase.total, testCase.workers, prevEnd)
		}
	}
}
