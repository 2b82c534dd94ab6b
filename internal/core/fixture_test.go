package core

import (
	"github.com/go-annoy/annoygo/internal/utils"
)

// The helpers in this file hand-build Annoy node bytes the way a real index
// builder would lay them out on disk, so tests exercise the codec and
// loader against bit-exact fixtures instead of mocks.

// encodeInternalNode builds an internal node: nDescendants, then the
// metric's header fields (bias for Euclidean, child indices for all
// metrics), then the split vector.
func encodeInternalNode(metric Metric, d int, nDescendants int32, children [2]int32, bias float32, splitVec []float32) []byte {
	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	buf := make([]byte, size)
	utils.PutInt32LE(buf[0:4], nDescendants)
	if metric.HasBias() {
		utils.PutFloat32LE(buf[4:8], bias)
	}
	co := metric.ChildOffset()
	utils.PutInt32LE(buf[co:co+4], children[0])
	utils.PutInt32LE(buf[co+4:co+8], children[1])

	header := metric.Header()
	for i, v := range splitVec {
		off := header + i*4
		utils.PutFloat32LE(buf[off:off+4], v)
	}
	return buf
}

// encodeItemLeaf builds an item leaf: nDescendants == 1, vector at the
// header offset, header fields otherwise unused.
func encodeItemLeaf(metric Metric, d int, vec []float32) []byte {
	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	buf := make([]byte, size)
	utils.PutInt32LE(buf[0:4], 1)
	header := metric.Header()
	for i, v := range vec {
		off := header + i*4
		utils.PutFloat32LE(buf[off:off+4], v)
	}
	return buf
}

// encodeBucketLeaf builds a bucket leaf: nDescendants == len(itemIDs),
// packed item ids starting at the metric's child-array offset.
func encodeBucketLeaf(metric Metric, d int, itemIDs []int32) []byte {
	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	buf := make([]byte, size)
	utils.PutInt32LE(buf[0:4], int32(len(itemIDs))) //nolint:gosec // test fixture, bounded by caller
	co := metric.ChildOffset()
	for i, id := range itemIDs {
		off := co + i*4
		utils.PutInt32LE(buf[off:off+4], id)
	}
	return buf
}

// angularSplitForestFixture builds a single-tree, 2-level forest: 6 item
// leaves, two bucket leaves of 3 items each, and one internal root whose
// split vector separates the two buckets along the first axis. Returns the
// concatenated file bytes and the per-metric node size.
func angularSplitForestFixture() (data []byte, nodeSize int64, d int) {
	metric := Angular
	d = 2
	items := [][]float32{
		{1, 0.1}, {0.9, -0.1}, {1.1, 0},
		{-1, 0.1}, {-0.9, -0.1}, {-1.1, 0},
	}

	var buf []byte
	for _, v := range items {
		buf = append(buf, encodeItemLeaf(metric, d, v)...)
	}
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{0, 1, 2})...) // node 6
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{3, 4, 5})...) // node 7
	buf = append(buf, encodeInternalNode(metric, d, 6, [2]int32{6, 7}, 0, []float32{1, 0})...) // node 8, root

	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	return buf, size, d
}

// twoTreeForestFixture builds a genuine two-tree forest over the same 8
// items: tree A splits the items along the first axis, tree B splits them
// by parity of index, exactly as a real Annoy build produces several
// independent random-projection trees over one item set. Both root nodes
// carry nDescendants == len(items) and are placed as the final two nodes
// in the file (all four bucket leaves precede them), so scanRoots's
// backward walk — which stops at the first nDescendants mismatch — picks
// up both as roots, the same way it would for a real multi-tree build
// whose root nodes land at the end of the node array. Returns the file
// bytes, node size, dimension, and the item vectors themselves.
func twoTreeForestFixture() (data []byte, nodeSize int64, d int, items [][]float32) {
	metric := Angular
	d = 2
	items = [][]float32{
		{1, 0.1}, {0.9, -0.1}, {1.1, 0}, {1, -0.2},
		{-1, 0.1}, {-0.9, -0.1}, {-1.1, 0}, {-1, -0.2},
	}

	var buf []byte
	for _, v := range items {
		buf = append(buf, encodeItemLeaf(metric, d, v)...) // nodes 0-7
	}

	n := int32(len(items))
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{0, 1, 2, 3})...) // node 8:  tree A left
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{4, 5, 6, 7})...) // node 9:  tree A right
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{0, 2, 4, 6})...) // node 10: tree B even
	buf = append(buf, encodeBucketLeaf(metric, d, []int32{1, 3, 5, 7})...) // node 11: tree B odd
	buf = append(buf, encodeInternalNode(metric, d, n, [2]int32{8, 9}, 0, []float32{1, 0})...)   // node 12: root A
	buf = append(buf, encodeInternalNode(metric, d, n, [2]int32{10, 11}, 0, []float32{0, 1})...) // node 13: root B

	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	return buf, size, d, items
}

// duplicateRootForestFixture builds a single real tree (one root node over
// 4 items, written with encodeInternalNode; with D=2 its nDescendants of 4
// makes the search read it as a bucket leaf, which the root scan does not
// care about) followed by a byte-identical copy of that root node, the
// way a degenerate backward scan can double-count one tree's root as two.
// dedupRoot exists specifically to collapse this back down to one root.
func duplicateRootForestFixture() (data []byte, nodeSize int64, d int) {
	metric := Angular
	d = 2
	items := [][]float32{{1, 0}, {0.9, 0.1}, {-1, 0}, {-0.9, -0.1}}

	var buf []byte
	for _, v := range items {
		buf = append(buf, encodeItemLeaf(metric, d, v)...) // nodes 0-3
	}
	root := encodeInternalNode(metric, d, int32(len(items)), [2]int32{0, 1}, 0, []float32{1, 0}) // node 4
	buf = append(buf, root...)
	buf = append(buf, root...) // node 5: byte-identical duplicate of node 4

	size, err := utils.NodeSize(metric.Header(), d)
	if err != nil {
		panic(err)
	}
	return buf, size, d
}
