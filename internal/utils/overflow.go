package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
// maxSize parameter allows different limits for different use cases.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size == 0 {
		return fmt.Errorf("%s: size cannot be zero", description)
	}

	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}

// Common buffer size limits.
const (
	// MaxMappingSize limits a single mmap region to 2GB, the default block
	// size ceiling used by the Byte View when stitching large index files.
	MaxMappingSize = 1 << 31

	// MaxDimension limits the configured vector dimension to a sane upper
	// bound; guards against a corrupt or adversarial dimension argument
	// producing an enormous, overflowing node size.
	MaxDimension = 1_000_000
)

// NodeSize computes header + 4*dimension with overflow and sanity checks,
// returning an error instead of silently wrapping on a pathological
// dimension value.
func NodeSize(header, dimension int) (int64, error) {
	if dimension <= 0 {
		return 0, fmt.Errorf("dimension must be positive, got %d", dimension)
	}
	if dimension > MaxDimension {
		return 0, fmt.Errorf("dimension %d exceeds maximum %d", dimension, MaxDimension)
	}

	vectorBytes, err := SafeMultiply(4, uint64(dimension))
	if err != nil {
		return 0, fmt.Errorf("vector size overflow for dimension %d: %w", dimension, err)
	}

	total, err := SafeMultiply(uint64(header), 1)
	if err != nil {
		return 0, err
	}
	total, err = func() (uint64, error) {
		sum := total + vectorBytes
		if sum < total {
			return 0, fmt.Errorf("node size overflow: header=%d dimension=%d", header, dimension)
		}
		return sum, nil
	}()
	if err != nil {
		return 0, err
	}

	return int64(total), nil //nolint:gosec // G115: bounded by MaxDimension above
}
