package engine

import (
	"slices"
	"sort"
	"sync"

	"github.com/mihir1708/mapreduce/pkg/core"
)

// partition is one shard of the intermediate key space. Mappers insert
// concurrently under mu. Reducers consume without locking: the phase
// barrier orders every insert before the first read, and each partition is
// consumed by exactly one reduce job.
type partition struct {
	mu    sync.Mutex
	pairs []core.KeyValue // sorted by key; equal keys keep emit order
	next  int             // first pair not yet consumed
	bytes int64           // sum of len(key)+len(value)+2 over all inserts
}

// insert places kv after any pairs already stored for the same key, keeping
// pairs sorted. Callers hold mu.
func (p *partition) insert(kv core.KeyValue) {
	i := sort.Search(len(p.pairs), func(i int) bool { return p.pairs[i].Key > kv.Key })
	p.pairs = slices.Insert(p.pairs, i, kv)
	p.bytes += int64(len(kv.Key) + len(kv.Value) + 2)
}

// store holds the intermediate state of a single engine run. A fresh store
// per run keeps repeated and concurrent runs of the same engine
// independent. It is handed to map functions as the core.Emitter and to
// reduce functions as the core.Fetcher.
type store struct {
	parts []*partition
}

func newStore(numPartitions int) *store {
	parts := make([]*partition, numPartitions)
	for i := range parts {
		parts[i] = &partition{}
	}
	return &store{parts: parts}
}

// Emit hashes key to its partition and files the pair there. With no
// partitions configured the pair is dropped.
func (s *store) Emit(key, value string) {
	if len(s.parts) == 0 {
		return
	}

	p := s.parts[core.Partition(key, len(s.parts))]
	p.mu.Lock()
	p.insert(core.KeyValue{Key: key, Value: value})
	p.mu.Unlock()
}

// GetNext pops the next stored value for key from the given partition.
// The second return is false when partition is out of range or no more
// values for key remain; pairs for other keys are left in place.
func (s *store) GetNext(key string, partition int) (string, bool) {
	if partition < 0 || partition >= len(s.parts) {
		return "", false
	}

	p := s.parts[partition]
	if p.next >= len(p.pairs) || p.pairs[p.next].Key != key {
		return "", false
	}

	value := p.pairs[p.next].Value
	p.next++
	return value, true
}

// reduce drives fn over every key remaining in one partition: hand the
// current head key to fn, which drains it through GetNext, then repeat
// with the new head until the partition is exhausted.
func (s *store) reduce(partition int, fn core.ReduceFunc) {
	p := s.parts[partition]
	for p.next < len(p.pairs) {
		fn(p.pairs[p.next].Key, partition, s)
	}
}
