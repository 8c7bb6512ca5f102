package core

import "hash/fnv"

// Hash returns the 32-bit FNV-1a hash of value.
func Hash(value string) uint32 {
	hash := fnv.New32a()
	hash.Write([]byte(value))
	return hash.Sum32()
}

// Partition maps key to a partition index in [0, numPartitions). It is a
// pure function of its arguments, so every emit of the same key lands in
// the same partition. Returns 0 when numPartitions is not positive.
func Partition(key string, numPartitions int) int {
	if numPartitions <= 0 {
		return 0
	}
	return int(Hash(key) % uint32(numPartitions))
}
