// Package core implements the on-disk node format, the byte-level mapping
// abstraction, the distance kernels, and the forest search for an Annoy
// index. It is read-only: nothing here ever writes to the mapped file.
package core

// Metric selects the distance function a forest was built with. It
// determines both the node's fixed-header layout and which split-margin
// and final-score functions the forest search uses.
type Metric int

const (
	// Angular is cosine distance over normalized vectors.
	Angular Metric = iota
	// Euclidean is straight-line distance, with a per-node bias scalar.
	Euclidean
	// Dot is raw dot-product similarity.
	Dot
)

// String returns the metric's canonical lowercase name, as accepted by
// ParseMetric and the CLI.
func (m Metric) String() string {
	switch m {
	case Angular:
		return "angular"
	case Euclidean:
		return "euclidean"
	case Dot:
		return "dot"
	default:
		return "unknown"
	}
}

// Header returns the fixed header size in bytes for the metric: the
// region before the split/item vector starts.
func (m Metric) Header() int {
	switch m {
	case Angular:
		return 12
	case Euclidean, Dot:
		return 16
	default:
		return 0
	}
}

// ChildOffset returns the byte offset, relative to the start of a node,
// at which the two child indices (for an internal node) or the packed
// item id list (for a bucket leaf) begin.
func (m Metric) ChildOffset() int {
	switch m {
	case Angular, Dot:
		return 4
	case Euclidean:
		return 8
	default:
		return 0
	}
}

// HasBias reports whether this metric stores a bias scalar at byte offset
// 4 of every node (Euclidean only).
func (m Metric) HasBias() bool {
	return m == Euclidean
}

// metricOps is a function table instead of per-metric subclassing: one
// engine, parameterised by metric.
type metricOps struct {
	// splitMargin computes the descent priority used while traversing an
	// internal node: which half-space the query occupies, and by how much.
	splitMargin func(splitVec, query []float32, bias float32) float32
	// finalScore computes the re-rank score for a candidate item; higher
	// is always better, regardless of metric.
	finalScore func(itemVec, query []float32) float32
}

func opsFor(m Metric) metricOps {
	switch m {
	case Angular:
		return metricOps{
			splitMargin: func(splitVec, query []float32, _ float32) float32 {
				return CosineMargin(splitVec, query)
			},
			finalScore: CosineMargin,
		}
	case Euclidean:
		return metricOps{
			splitMargin: EuclideanMargin,
			finalScore: func(itemVec, query []float32) float32 {
				return -EuclideanDistance(itemVec, query)
			},
		}
	case Dot:
		return metricOps{
			splitMargin: func(splitVec, query []float32, _ float32) float32 {
				return DotMargin(splitVec, query)
			},
			finalScore: DotMargin,
		}
	default:
		panic("core: unknown metric")
	}
}
