package core

import "math"

// Norm returns the Euclidean norm (L2 length) of u.
func Norm(u []float32) float32 {
	var acc float64
	for _, x := range u {
		acc += float64(x) * float64(x)
	}
	return float32(math.Sqrt(acc))
}

// dot computes u·v, accumulating in float64 before narrowing to avoid
// losing precision on long vectors.
func dot(u, v []float32) float32 {
	var acc float64
	for i := range u {
		acc += float64(u[i]) * float64(v[i])
	}
	return float32(acc)
}

// CosineMargin returns (u·v) / (‖u‖·‖v‖). Callers must never pass a
// zero-norm vector — those are filtered as the "deleted item" sentinel
// before reaching this kernel (see IsZeroVector and its call sites in
// search.go), since it would otherwise produce NaN.
func CosineMargin(u, v []float32) float32 {
	return dot(u, v) / (Norm(u) * Norm(v))
}

// EuclideanMargin returns bias + u·v, the split-plane priority used while
// descending a Euclidean tree.
func EuclideanMargin(u, v []float32, bias float32) float32 {
	return bias + dot(u, v)
}

// EuclideanDistance returns ‖u − v‖.
func EuclideanDistance(u, v []float32) float32 {
	var acc float64
	for i := range u {
		d := float64(u[i]) - float64(v[i])
		acc += d * d
	}
	return float32(math.Sqrt(acc))
}

// DotMargin returns u·v.
func DotMargin(u, v []float32) float32 {
	return dot(u, v)
}

// IsZeroVector reports whether v is the all-zero sentinel Annoy uses to
// mark a deleted or never-populated item.
func IsZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
