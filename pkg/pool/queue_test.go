package pool

import (
	"container/heap"
	"testing"
)

func pushJob(q *jobQueue, cost int64, sequence uint64) {
	heap.Push(q, &job{task: func() {}, cost: cost, sequence: sequence})
}

func popSequence(t *testing.T, q *jobQueue) uint64 {
	t.Helper()
	if q.Len() == 0 {
		t.Fatal("pop on empty queue")
	}
	return heap.Pop(q).(*job).sequence
}

func TestJobQueue_PopsCheapestFirst(t *testing.T) {
	q := make(jobQueue, 0)
	heap.Init(&q)

	pushJob(&q, 300, 0)
	pushJob(&q, 100, 1)
	pushJob(&q, 200, 2)

	expectedOrder := []uint64{1, 2, 0}
	for i, expected := range expectedOrder {
		got := popSequence(t, &q)
		if got != expected {
			t.Errorf("at position %d: expected job %d, got %d", i, expected, got)
		}
	}

	if q.Len() != 0 {
		t.Errorf("expected empty queue, got length %d", q.Len())
	}
}

func TestJobQueue_EqualCostPopsNewestFirst(t *testing.T) {
	q := make(jobQueue, 0)
	heap.Init(&q)

	pushJob(&q, 50, 0)
	pushJob(&q, 50, 1)
	pushJob(&q, 50, 2)

	// Jobs with equal cost come back newest first
	expectedOrder := []uint64{2, 1, 0}
	for i, expected := range expectedOrder {
		got := popSequence(t, &q)
		if got != expected {
			t.Errorf("at position %d: expected job %d, got %d", i, expected, got)
		}
	}
}

func TestJobQueue_Ordering(t *testing.T) {
	tests := []struct {
		name string
		jobs []struct {
			cost     int64
			sequence uint64
		}
		expectedOrder []uint64
	}{
		{
			name: "ascending costs pop in submission order",
			jobs: []struct {
				cost     int64
				sequence uint64
			}{
				{10, 0}, {20, 1}, {30, 2},
			},
			expectedOrder: []uint64{0, 1, 2},
		},
		{
			name: "descending costs pop in reverse submission order",
			jobs: []struct {
				cost     int64
				sequence uint64
			}{
				{30, 0}, {20, 1}, {10, 2},
			},
			expectedOrder: []uint64{2, 1, 0},
		},
		{
			name: "mixed costs with ties",
			jobs: []struct {
				cost     int64
				sequence uint64
			}{
				{20, 0}, {10, 1}, {20, 2}, {10, 3}, {5, 4},
			},
			expectedOrder: []uint64{4, 3, 1, 2, 0},
		},
		{
			name: "zero cost jobs pop before the rest",
			jobs: []struct {
				cost     int64
				sequence uint64
			}{
				{100, 0}, {0, 1}, {100, 2}, {0, 3},
			},
			expectedOrder: []uint64{3, 1, 2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := make(jobQueue, 0)
			heap.Init(&q)

			for _, jb := range tt.jobs {
				pushJob(&q, jb.cost, jb.sequence)
			}

			for i, expected := range tt.expectedOrder {
				got := popSequence(t, &q)
				if got != expected {
					t.Errorf("at position %d: expected job %d, got %d", i, expected, got)
				}
			}

			if q.Len() != 0 {
				t.Errorf("expected empty queue, got length %d", q.Len())
			}
		})
	}
}
