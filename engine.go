package annoy

import (
	"fmt"

	"github.com/go-annoy/annoygo/internal/core"
)

// Metric selects the distance function an index was built with.
type Metric = core.Metric

// The three metrics an Annoy index can be built under.
const (
	Angular   = core.Angular
	Euclidean = core.Euclidean
	Dot       = core.Dot
)

// ParseMetric parses the CLI's metric names ("angular", "euclidean",
// "dot") into a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "angular":
		return Angular, nil
	case "euclidean":
		return Euclidean, nil
	case "dot":
		return Dot, nil
	default:
		return 0, fmt.Errorf("annoy: unknown metric %q", s)
	}
}

// Engine is a read-only, memory-mapped Annoy index. It is immutable once
// Open returns: Open performs all I/O, and every subsequent query reads
// only from the mapping and from call-local scratch state, so a single
// Engine may serve concurrent queries from multiple goroutines without
// any internal locking.
type Engine struct {
	forest *core.Forest
	d      int
	logger Logger
	closed bool
}

// Open memory-maps the index file at path, built for dimension d under
// metric, and locates its tree roots. The returned Engine owns the
// mapping and file handle until Close.
func Open(path string, d int, metric Metric, opts ...OpenOption) (*Engine, error) {
	cfg := defaultOpenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	forest, err := core.Load(path, metric, d, cfg.blockNodes)
	if err != nil {
		return nil, err
	}

	return &Engine{forest: forest, d: d, logger: cfg.logger}, nil
}

// Close releases all mappings and the file handle. Idempotent; safe to
// call more than once.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.forest.Close()
}

// NumItems returns the number of items the index was built over.
func (e *Engine) NumItems() int32 {
	return e.forest.ItemCount
}

// NumTrees returns the number of trees (roots) in the forest.
func (e *Engine) NumTrees() int {
	return len(e.forest.Roots)
}

// ItemVector returns a copy of item i's stored vector.
func (e *Engine) ItemVector(i int32) ([]float32, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= e.forest.ItemCount {
		return nil, ErrOutOfRange
	}
	out := make([]float32, e.d)
	e.forest.Codec.Vector(int64(i)*e.forest.NodeSize, out)
	return out, nil
}

// Neighbor is one scored nearest-neighbor result: an item id and its
// score under the index's metric, higher is always better (Euclidean
// scores are a negated distance).
type Neighbor = core.Neighbor

// Nearest returns up to k item ids nearest to query under the index's
// metric, ordered best-first.
func (e *Engine) Nearest(query []float32, k int) ([]int32, error) {
	neighbors, err := e.NearestWithScores(query, k)
	if err != nil {
		return nil, err
	}
	if neighbors == nil {
		return nil, nil
	}
	ids := make([]int32, len(neighbors))
	for i, n := range neighbors {
		ids[i] = n.ID
	}
	return ids, nil
}

// NearestWithScores is Nearest, but also returns each neighbor's score
// under the index's metric — used by callers (such as the CLI) that
// need to report ranking, not just identity.
func (e *Engine) NearestWithScores(query []float32, k int) ([]Neighbor, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if len(query) != e.d {
		return nil, ErrDimensionMismatch
	}
	if k <= 0 {
		return nil, nil
	}
	return e.forest.Nearest(query, k, e.logger), nil
}
