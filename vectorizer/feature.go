package vectorizer

import (
	"math"
	"sort"
)

// FeatureVector is a sparse numeric representation of a text: parallel
// index/value slices over a feature space of Dims dimensions. Indices are
// sorted ascending. A FeatureVector is never mutated after creation.
type FeatureVector struct {
	Indices []int
	Values  []float64
	Dims    int
}

// Len returns the number of non-zero entries.
func (f FeatureVector) Len() int {
	return len(f.Indices)
}

// Dot returns the inner product of the feature vector with a dense weight
// vector. The weight vector must span the full feature space.
func (f FeatureVector) Dot(weights []float64) float64 {
	var score float64
	for i, idx := range f.Indices {
		score += f.Values[i] * weights[idx]
	}
	return score
}

// Norm returns the L2 norm of the feature vector.
func (f FeatureVector) Norm() float64 {
	var ss float64
	for _, v := range f.Values {
		ss += v * v
	}
	return math.Sqrt(ss)
}

// newFeatureVector builds a sorted sparse vector from a weight map.
func newFeatureVector(weights map[int]float64, dims int) FeatureVector {
	indices := make([]int, 0, len(weights))
	for idx := range weights {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = weights[idx]
	}
	return FeatureVector{Indices: indices, Values: values, Dims: dims}
}

// l2normalize scales the weight map to unit L2 norm in place. A zero vector
// is left untouched.
func l2normalize(weights map[int]float64) {
	var ss float64
	for _, v := range weights {
		ss += v * v
	}
	if ss == 0 {
		return
	}
	norm := math.Sqrt(ss)
	for idx, v := range weights {
		weights[idx] = v / norm
	}
}
