package utils

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func VecGetF64(v mat.Vector) (r []float64) {
	if vd, ok := v.(*mat.VecDense); ok && vd.RawVector().Inc == 1 {
		r = make([]float64, vd.Len())
		copy(r, vd.RawVector().Data[:vd.Len()])
		return
	}
	r = make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		r[i] = v.AtVec(i)
	}
	return
}

func VecSum(v mat.Vector) float64 { return floats.Sum(VecGetF64(v)) }
func VecMax(v mat.Vector) float64 { return floats.Max(VecGetF64(v)) }
func VecMin(v mat.Vector) float64 { return floats.Min(VecGetF64(v)) }

func VecDot(a, b mat.Vector) float64 { return mat.Dot(a, b) }

// NewVec copies data into a new vector
func NewVec(data []float64) *mat.VecDense {
	return mat.NewVecDense(len(data), slices.Clone(data))
}

// VecNorm is the L norm of v, math.Inf(1) for the max norm
func VecNorm(v mat.Vector, L float64) float64 { return floats.Norm(VecGetF64(v), L) }
