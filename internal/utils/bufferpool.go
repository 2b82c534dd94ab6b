package utils

import "sync"

var vectorPool = sync.Pool{
	New: func() interface{} {
		return make([]float32, 0, 64)
	},
}

// GetVector returns a float32 scratch slice of length size from the pool.
// Used by the forest search's re-rank step, which decodes one item vector
// per candidate in sequence and would otherwise allocate a fresh slice per
// candidate.
func GetVector(size int) []float32 {
	buf := vectorPool.Get().([]float32)
	if cap(buf) < size {
		return make([]float32, size, size*2)
	}
	return buf[:size]
}

// ReleaseVector returns a float32 scratch slice to the pool.
func ReleaseVector(buf []float32) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	vectorPool.Put(buf[:0])
}
