package pool

// job wraps a queued task with the cost used to order it. sequence records
// submission order so that ties break toward the most recent job.
type job struct {
	task     Task
	cost     int64
	sequence uint64 // Submission order for tie-breaking between equal costs
	index    int    // Required by heap.Interface
}

// jobQueue is a min-heap of jobs keyed by cost. Workers pop the cheapest
// job first; among equal costs the most recently submitted job wins. The
// queue itself is not locked, callers synchronize through the pool mutex.
type jobQueue []*job

func (q jobQueue) Len() int {
	return len(q)
}

func (q jobQueue) Less(i, j int) bool {
	// Min-heap based on cost (cheapest job runs first)
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	// If costs are equal, newest submission wins (higher sequence = later)
	return q[i].sequence > q[j].sequence
}

func (q jobQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *jobQueue) Push(x any) {
	n := len(*q)
	j := x.(*job)
	j.index = n
	*q = append(*q, j)
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	j := old[n-1]
	old[n-1] = nil
	j.index = -1
	*q = old[0 : n-1]
	return j
}
