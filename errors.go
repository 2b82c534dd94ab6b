// Package annoy provides a read-only query engine for Annoy-format
// approximate-nearest-neighbor index files: memory-map, locate tree
// roots, and answer k-nearest-neighbor queries under the index's metric.
package annoy

import (
	"errors"

	"github.com/go-annoy/annoygo/internal/core"
)

// InvalidIndexError reports a structurally broken index file.
type InvalidIndexError = core.InvalidIndexError

// IOError wraps a filesystem or mmap failure encountered while opening
// an index.
type IOError = core.IOError

// Sentinel errors for the remaining cases an Engine can fail with.
var (
	// ErrClosed is returned by ItemVector, Nearest and NearestWithScores
	// when called after Close.
	ErrClosed = errors.New("annoy: engine is closed")
	// ErrOutOfRange is returned when an item id is negative or >= the
	// item count.
	ErrOutOfRange = errors.New("annoy: item id out of range")
	// ErrDimensionMismatch is returned when a query vector's length does
	// not match the engine's configured dimension.
	ErrDimensionMismatch = errors.New("annoy: query vector dimension mismatch")
)
