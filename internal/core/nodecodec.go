package core

// NodeCodec decodes the fixed fields of a node at a given byte offset,
// given a metric (which fixes header size and child-array offset) and a
// dimension. It never interprets nDescendants itself — that three-way
// decision (item leaf, bucket leaf, or internal node) belongs to the
// forest search, which keeps the branching out of the codec.
type NodeCodec struct {
	view        *ByteView
	d           int
	header      int
	childOffset int
	hasBias     bool
	nodeSize    int64
}

// NewNodeCodec builds a codec for the given metric, dimension, and
// pre-computed node size (header + 4*dimension).
func NewNodeCodec(metric Metric, view *ByteView, d int, nodeSize int64) *NodeCodec {
	return &NodeCodec{
		view:        view,
		d:           d,
		header:      metric.Header(),
		childOffset: metric.ChildOffset(),
		hasBias:     metric.HasBias(),
		nodeSize:    nodeSize,
	}
}

// Descendants returns the node's nDescendants field, which determines its
// semantic type.
func (c *NodeCodec) Descendants(nodeOffset int64) int32 {
	return c.view.ReadI32(nodeOffset)
}

// Bias returns the node's bias scalar. Only meaningful when the metric
// has a bias field (Euclidean); callers must check HasBias first.
func (c *NodeCodec) Bias(nodeOffset int64) float32 {
	return c.view.ReadF32(nodeOffset + 4)
}

// HasBias reports whether this codec's metric carries a bias field.
func (c *NodeCodec) HasBias() bool {
	return c.hasBias
}

// Vector reads the node's split hyperplane or item vector into out, which
// must have length >= the configured dimension. Only meaningful for item
// leaves and internal nodes; bucket leaves have no vector (their region
// is instead a packed item-id list starting before the header — read it
// with LeafItem).
func (c *NodeCodec) Vector(nodeOffset int64, out []float32) {
	c.view.ReadVec(nodeOffset+int64(c.header), c.d, out)
}

// Child returns the byte offset of child 0 or 1 of an internal node at
// nodeOffset. which must be 0 or 1.
func (c *NodeCodec) Child(nodeOffset int64, which int) int64 {
	idx := c.view.ReadI32(nodeOffset + int64(c.childOffset) + int64(which)*4)
	return int64(idx) * c.nodeSize
}

// LeafItem returns the i-th packed item id of a bucket leaf at
// nodeOffset. 0 <= i < nDescendants.
func (c *NodeCodec) LeafItem(nodeOffset int64, i int) int32 {
	return c.view.ReadI32(nodeOffset + int64(c.childOffset) + int64(i)*4)
}
