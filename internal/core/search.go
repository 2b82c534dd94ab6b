package core

import (
	"container/heap"
	"sort"

	set3 "github.com/TomTonic/Set3"

	"github.com/go-annoy/annoygo/internal/utils"
)

// sentinelPriority dominates every real split margin a float32 kernel can
// produce; roots are pushed with this so every tree gets visited at
// least once before any real split decides an ordering between trees.
const sentinelPriority = float32(1e30)

// searchItem is a (priority, nodeOffset) pair queued on the forest
// search's shared max-heap.
type searchItem struct {
	priority float32
	offset   int64
}

// maxHeap adapts container/heap's min-heap contract into a max-heap by
// inverting Less.
type maxHeap []searchItem

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].priority > h[j].priority }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(searchItem)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Neighbor is one scored result of a forest search: an item id and its
// final-metric score, higher-is-better regardless of metric (Euclidean
// is normalized to a negated distance for exactly this reason).
type Neighbor struct {
	ID    int32
	Score float32
}

// Nearest performs the forest's best-first traversal and final re-rank,
// returning up to k scored neighbors ordered from best to worst under
// the forest's metric. All state here — heap, candidate set, scratch
// vectors — is local to the call, so concurrent calls against the same
// Forest never interact.
func (fo *Forest) Nearest(query []float32, k int, logger Logger) []Neighbor {
	if len(fo.Roots) == 0 || k <= 0 {
		return nil
	}

	h := &maxHeap{}
	heap.Init(h)
	for _, r := range fo.Roots {
		heap.Push(h, searchItem{priority: sentinelPriority, offset: r})
	}

	candidates := set3.Empty[int32]()
	order := make([]int32, 0, k*len(fo.Roots))
	limit := k * len(fo.Roots)

	scratch := utils.GetVector(fo.D)
	defer utils.ReleaseVector(scratch)

	for candidates.Len() < limit && h.Len() > 0 {
		top := heap.Pop(h).(searchItem) //nolint:forcetypeassert // heap only ever holds searchItem
		nd := fo.Codec.Descendants(top.offset)

		switch {
		case nd == 1:
			itemID := int32(top.offset / fo.NodeSize) //nolint:gosec // G115: offsets are bounded by file size
			if logger != nil {
				logger.Debugf("item leaf reached during descent at offset %d (item %d)", top.offset, itemID)
			}
			fo.Codec.Vector(top.offset, scratch)
			if IsZeroVector(scratch) {
				continue
			}
			if !candidates.Contains(itemID) {
				candidates.Add(itemID)
				order = append(order, itemID)
			}

		case nd <= int32(fo.D+2): //nolint:gosec // G115: D is bounded by utils.MaxDimension
			for i := int32(0); i < nd; i++ {
				itemID := fo.Codec.LeafItem(top.offset, int(i))
				fo.Codec.Vector(int64(itemID)*fo.NodeSize, scratch)
				if IsZeroVector(scratch) {
					continue
				}
				if !candidates.Contains(itemID) {
					candidates.Add(itemID)
					order = append(order, itemID)
				}
			}

		default:
			fo.Codec.Vector(top.offset, scratch)
			var bias float32
			if fo.Codec.HasBias() {
				bias = fo.Codec.Bias(top.offset)
			}
			margin := fo.ops.splitMargin(scratch, query, bias)

			left := fo.Codec.Child(top.offset, 0)
			right := fo.Codec.Child(top.offset, 1)
			heap.Push(h, searchItem{priority: margin, offset: left})
			heap.Push(h, searchItem{priority: -margin, offset: right})
		}
	}

	return fo.rerank(order, query, k)
}

// rerank decodes each candidate's item vector, scores it under the
// forest's true metric (discarding any that turn out to be the zero
// sentinel), and returns the top k neighbors sorted best-first.
func (fo *Forest) rerank(ids []int32, query []float32, k int) []Neighbor {
	scored := make([]Neighbor, 0, len(ids))
	vec := utils.GetVector(fo.D)
	defer utils.ReleaseVector(vec)

	for _, id := range ids {
		fo.Codec.Vector(int64(id)*fo.NodeSize, vec)
		if IsZeroVector(vec) {
			continue
		}
		scored = append(scored, Neighbor{ID: id, Score: fo.ops.finalScore(vec, query)})
	}

	sort.Slice(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}
