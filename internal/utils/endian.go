package utils

import (
	"encoding/binary"
	"math"
)

// Int32LE decodes a signed 32-bit little-endian integer from the first 4
// bytes of b. The index file's on-disk format is bit-exact little-endian
// regardless of host byte order, so this never defers to the machine's
// native encoding.
func Int32LE(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b)) //nolint:gosec // G115: intentional bit-pattern reinterpretation
}

// Float32LE decodes an IEEE-754 single-precision little-endian float from
// the first 4 bytes of b.
func Float32LE(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// PutInt32LE encodes v as a signed 32-bit little-endian integer into the
// first 4 bytes of b. Exercised only by test fixtures that hand-build
// index files; the engine itself is read-only.
func PutInt32LE(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v)) //nolint:gosec // G115: intentional bit-pattern reinterpretation
}

// PutFloat32LE encodes v as an IEEE-754 single-precision little-endian
// float into the first 4 bytes of b.
func PutFloat32LE(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}
