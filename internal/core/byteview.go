package core

import "github.com/go-annoy/annoygo/internal/utils"

// ByteView presents one or more contiguous little-endian byte regions as a
// single logical address space indexed by a 64-bit offset. It hides the
// fact that files larger than one mapping's addressable range are
// stitched from several sub-mappings.
//
// blockSize is a whole multiple of the node size, so no read ever spans a
// block boundary; callers never need to know how many blocks back a given
// offset.
type ByteView struct {
	blocks    [][]byte
	blockSize int64
}

// NewByteView wraps blocks — contiguous regions whose concatenation
// equals the underlying file, each blockSize bytes except possibly the
// last — into one logical, offset-addressed view.
func NewByteView(blocks [][]byte, blockSize int64) *ByteView {
	return &ByteView{blocks: blocks, blockSize: blockSize}
}

// block returns the sub-mapping holding offset and the offset's position
// within that sub-mapping.
func (v *ByteView) block(offset int64) ([]byte, int64) {
	idx := offset / v.blockSize
	inner := offset % v.blockSize
	return v.blocks[idx], inner
}

// ReadI32 reads a signed 32-bit little-endian integer at offset.
func (v *ByteView) ReadI32(offset int64) int32 {
	blk, inner := v.block(offset)
	return utils.Int32LE(blk[inner : inner+4])
}

// ReadF32 reads an IEEE-754 single-precision little-endian float at offset.
func (v *ByteView) ReadF32(offset int64) float32 {
	blk, inner := v.block(offset)
	return utils.Float32LE(blk[inner : inner+4])
}

// ReadVec reads d consecutive little-endian floats starting at offset
// into out, which must have length >= d.
func (v *ByteView) ReadVec(offset int64, d int, out []float32) {
	blk, inner := v.block(offset)
	for i := 0; i < d; i++ {
		out[i] = utils.Float32LE(blk[inner : inner+4])
		inner += 4
	}
}
