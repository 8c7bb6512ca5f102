package core

// KeyValue is a single intermediate pair produced during the map phase.
type KeyValue struct {
	Key   string
	Value string
}

// Emitter accepts intermediate pairs from map functions. Implementations
// are safe for concurrent use by parallel mappers.
type Emitter interface {
	// Emit records one intermediate pair. Empty keys and values are legal.
	Emit(key, value string)
}

// Fetcher hands out the stored values for a key, one per call, in the
// order they were emitted.
type Fetcher interface {
	// GetNext returns the next value for key within the given partition.
	// The second return is false when no more values for key remain, or
	// when partition is out of range; that is the only exhaustion signal
	// reducers receive.
	GetNext(key string, partition int) (string, bool)
}

// MapFunc processes one input unit, typically a file path, and publishes
// any number of intermediate pairs through the Emitter.
type MapFunc func(unit string, em Emitter)

// ReduceFunc aggregates the values of a single key within one partition.
// It must call GetNext until the second return is false before returning,
// otherwise the key is handed to it again.
type ReduceFunc func(key string, partition int, values Fetcher)
