package core

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/go-annoy/annoygo/internal/utils"
)

// Logger receives rare, debug-level diagnostics. A nil Logger is valid
// and means "discard".
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Forest is everything the query API needs after a successful load: the
// byte view, the node codec, the discovered tree roots, and the metric
// function table.
type Forest struct {
	View      *ByteView
	Codec     *NodeCodec
	Roots     []int64
	Metric    Metric
	D         int
	NodeSize  int64
	ItemCount int32

	ops    metricOps
	file   *os.File
	mapped []mmap.MMap
}

// Load memory-maps path, validates its size, decodes the node codec, and
// scans backward from end-of-file for the set of tree roots. blockNodes,
// if > 0, overrides the default mapping block size — it exists so tests
// can force multi-block stitching with a tiny block size.
func Load(path string, metric Metric, d int, blockNodes int) (*Forest, error) {
	nodeSize, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		return nil, &InvalidIndexError{Reason: "dimension", Cause: err}
	}

	f, err := os.Open(path) //nolint:gosec // G304: caller-provided index path is intentional
	if err != nil {
		return nil, &IOError{Cause: err}
	}
	ok := false
	defer func() {
		if !ok {
			_ = f.Close()
		}
	}()

	fi, err := f.Stat()
	if err != nil {
		return nil, &IOError{Cause: err}
	}
	size := fi.Size()
	if size == 0 {
		return nil, &InvalidIndexError{Reason: "empty"}
	}
	if size%nodeSize != 0 {
		return nil, &InvalidIndexError{Reason: "dimension mismatch"}
	}

	blockSize := blockSizeBytes(nodeSize, blockNodes)

	blocks, mapped, err := mapBlocks(f, size, blockSize)
	if err != nil {
		return nil, &IOError{Cause: err}
	}
	ok = true

	view := NewByteView(blocks, blockSize)
	codec := NewNodeCodec(metric, view, d, nodeSize)

	roots, itemCount := scanRoots(view, size, nodeSize)
	roots = dedupRoot(codec, roots)

	return &Forest{
		View:      view,
		Codec:     codec,
		Roots:     roots,
		Metric:    metric,
		D:         d,
		NodeSize:  nodeSize,
		ItemCount: itemCount,
		ops:       opsFor(metric),
		file:      f,
		mapped:    mapped,
	}, nil
}

// Close releases all mappings and the underlying file handle. Idempotent.
func (fo *Forest) Close() error {
	if fo == nil || fo.file == nil {
		return nil
	}
	var firstErr error
	for _, m := range fo.mapped {
		if err := m.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := fo.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	fo.mapped = nil
	fo.file = nil
	return firstErr
}

func blockSizeBytes(nodeSize int64, blockNodes int) int64 {
	if blockNodes > 0 {
		return int64(blockNodes) * nodeSize
	}
	maxNodes := int64(utils.MaxMappingSize) / nodeSize
	if maxNodes < 1 {
		maxNodes = 1
	}
	return maxNodes * nodeSize
}

func mapBlocks(f *os.File, size, blockSize int64) ([][]byte, []mmap.MMap, error) {
	if size <= blockSize {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, nil, utils.WrapError("mmap", err)
		}
		return [][]byte{m}, []mmap.MMap{m}, nil
	}

	nBlocks := (size + blockSize - 1) / blockSize
	blocks := make([][]byte, 0, nBlocks)
	mapped := make([]mmap.MMap, 0, nBlocks)
	for i := int64(0); i < nBlocks; i++ {
		off := i * blockSize
		length := blockSize
		if off+length > size {
			length = size - off
		}
		// Mapping offsets must be page-aligned; a block starting mid-page is
		// mapped from the page start and sliced past the leading bytes.
		pageOff := off % int64(os.Getpagesize())
		m, err := mmap.MapRegion(f, int(length+pageOff), mmap.RDONLY, 0, off-pageOff)
		if err != nil {
			for _, prev := range mapped {
				_ = prev.Unmap()
			}
			return nil, nil, utils.WrapError(fmt.Sprintf("mmap region %d", i), err)
		}
		blocks = append(blocks, m[pageOff:])
		mapped = append(mapped, m)
	}
	return blocks, mapped, nil
}

// scanRoots walks backward from the last node, collecting the contiguous
// suffix of nodes sharing the final node's nDescendants value. Root
// offsets are returned in discovery order (the file's last node first);
// apart from dedupRoot, callers must not rely on that order.
func scanRoots(view *ByteView, size, nodeSize int64) ([]int64, int32) {
	nNodes := size / nodeSize
	var roots []int64
	var m int32 = -1
	for i := nNodes - 1; i >= 0; i-- {
		offset := i * nodeSize
		k := view.ReadI32(offset)
		if m == -1 || k == m {
			roots = append(roots, offset)
			m = k
			continue
		}
		break
	}
	return roots, m
}

// dedupRoot drops the last discovered root when its first child offset
// matches the first root's first child offset — a guard against the
// backward scan double-counting a single tree as two roots.
func dedupRoot(codec *NodeCodec, roots []int64) []int64 {
	if len(roots) <= 1 {
		return roots
	}
	first := codec.Child(roots[0], 0)
	last := codec.Child(roots[len(roots)-1], 0)
	if first == last {
		return roots[:len(roots)-1]
	}
	return roots
}
