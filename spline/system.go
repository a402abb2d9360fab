package spline

import (
	"math"

	"github.com/notargets/reslib/utils"
)

// The moment systems follow Stoer, Numerische Mathematik 1, section 2.5. The unknowns are the
// second derivatives M_i of the spline at the samples, row i couples M_{i-1}, M_i and M_{i+1}:
//
//	mu_i M_{i-1} + 2 M_i + lambda_i M_{i+1} = d_i
//
// with h_i = x_i - x_{i-1}, lambda_i = h_{i+1}/(h_i + h_{i+1}) and mu_i = 1 - lambda_i.

func continuityRow(x, y []float64, i int) (mu, lambda, d float64) {
	var (
		hi  = x[i] - x[i-1]
		hi1 = x[i+1] - x[i]
	)
	lambda = hi1 / (hi + hi1)
	mu = 1 - lambda
	d = 6 / (hi + hi1) * ((y[i+1]-y[i])/hi1 - (y[i]-y[i-1])/hi)
	return
}

// interiorSystem fills the rows of all samples with two neighbors
func interiorSystem(x, y []float64) (T utils.Tridiagonal, d []float64) {
	var (
		n = len(x)
	)
	T = utils.NewTridiagonal(n)
	d = make([]float64, n)
	for i := 1; i < n-1; i++ {
		mu, lambda, di := continuityRow(x, y, i)
		T.Set(i, i-1, mu)
		T.Set(i, i, 2)
		T.Set(i, i+1, lambda)
		d[i] = di
	}
	T.Set(0, 0, 2)
	T.Set(n-1, n-1, 2)
	return
}

// naturalSlopes: the end moments vanish
func naturalSlopes(x, y []float64) (slopes []float64, err error) {
	T, d := interiorSystem(x, y)
	var moments []float64
	if moments, err = T.Solve(d); err != nil {
		return
	}
	slopes = slopesFromMoments(x, y, moments)
	return
}

// fullSlopes: the first derivatives at both ends are m0 and m1
func fullSlopes(x, y []float64, m0, m1 float64) (slopes []float64, err error) {
	var (
		n       = len(x)
		h1      = x[1] - x[0]
		hn      = x[n-1] - x[n-2]
		moments []float64
	)
	T, d := interiorSystem(x, y)
	T.Set(0, 1, 1)
	d[0] = 6 / h1 * ((y[1]-y[0])/h1 - m0)
	T.Set(n-1, n-2, 1)
	d[n-1] = 6 / hn * (m1 - (y[n-1]-y[n-2])/hn)
	if moments, err = T.Solve(d); err != nil {
		return
	}
	slopes = slopesFromMoments(x, y, moments)
	// the ends are prescribed, drop the round off of the solve
	slopes[0], slopes[n-1] = m0, m1
	return
}

/*
periodicSlopes solves for M_1..M_{n-1} with M_0 = M_{n-1}. The samples are treated as one period, the
neighbors of the last sample are the next to last and the second one. The system is tridiagonal
except for the corners that close the cycle.
*/
func periodicSlopes(x, y []float64) (slopes []float64, err error) {
	var (
		N                    = len(x)
		n                    = N - 1
		T                    = utils.NewTridiagonal(n)
		d                    = make([]float64, n)
		topRight, bottomLeft float64
		solution, moments    []float64
	)
	for k := 1; k <= n; k++ {
		var (
			r     = k - 1
			hk    = x[k] - x[k-1]
			hk1   float64
			yNext float64
		)
		if k < n {
			hk1, yNext = x[k+1]-x[k], y[k+1]
		} else {
			hk1, yNext = x[1]-x[0], y[1]
		}
		lambda := hk1 / (hk + hk1)
		mu := 1 - lambda
		d[r] = 6 / (hk + hk1) * ((yNext-y[k])/hk1 - (y[k]-y[k-1])/hk)
		T.Set(r, r, 2)
		if r > 0 {
			T.Set(r, r-1, mu)
		} else {
			topRight += mu
		}
		if r < n-1 {
			T.Set(r, r+1, lambda)
		} else {
			bottomLeft += lambda
		}
	}
	if solution, err = utils.SolveCyclic(T, topRight, bottomLeft, d); err != nil {
		return
	}
	moments = make([]float64, N)
	copy(moments[1:], solution)
	moments[0] = moments[n]
	slopes = slopesFromMoments(x, y, moments)
	return
}

// slopesFromMoments evaluates the derivative of the C2 cubic on each segment at its left end,
// and for the last sample at the right end of the last segment
func slopesFromMoments(x, y, moments []float64) (slopes []float64) {
	var (
		n = len(x)
		h float64
		A float64
	)
	slopes = make([]float64, n)
	for i := 0; i < n-1; i++ {
		h = x[i+1] - x[i]
		A = (y[i+1]-y[i])/h - h/6*(moments[i+1]-moments[i])
		slopes[i] = -moments[i]*h/2 + A
	}
	slopes[n-1] = moments[n-1]*h/2 + A
	return
}

// monotonicSlopes applies the Fritsch-Carlson limiter to the averaged secant slopes
func monotonicSlopes(x, y []float64) (slopes []float64) {
	var (
		n     = len(x)
		delta = make([]float64, n-1)
	)
	slopes = make([]float64, n)
	for k := 0; k < n-1; k++ {
		delta[k] = (y[k+1] - y[k]) / (x[k+1] - x[k])
	}
	for k := 1; k < n-1; k++ {
		slopes[k] = (delta[k-1] + delta[k]) / 2
	}
	slopes[0] = delta[0]
	slopes[n-1] = delta[n-2]

	for k := 0; k < n-1; k++ {
		if math.Abs(delta[k]) < utils.FLATTOL {
			// flat inputs give a flat segment
			slopes[k], slopes[k+1] = 0, 0
			continue
		}
		var (
			alpha = slopes[k] / delta[k]
			beta  = slopes[k+1] / delta[k]
		)
		extremum := k > 0 && math.Abs(delta[k-1]) >= utils.FLATTOL && slopes[k]/delta[k-1] < 0
		switch {
		case alpha < 0 || extremum:
			slopes[k] = 0
		case alpha*alpha+beta*beta > 9:
			// limit (alpha, beta) to a circle of radius 3
			tau := 3 / math.Sqrt(alpha*alpha+beta*beta)
			slopes[k] = tau * alpha * delta[k]
			slopes[k+1] = tau * beta * delta[k]
		}
	}
	return
}
