package testutil

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
)

// NewSource returns a deterministic random source for seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// MeanVariance returns the sample mean and unbiased variance of xs.
func MeanVariance(xs []float64) (mean, variance float64) {
	return stat.MeanVariance(xs, nil)
}
