package utils

import (
	"fmt"

	"gonum.org/v1/gonum/lapack/gonum"
	"gonum.org/v1/gonum/mat"
)

// Tridiagonal is an n x n matrix with storage for the three central diagonals only.
// Row i holds Lower[i-1], Diag[i], Upper[i].
type Tridiagonal struct {
	N                  int
	Lower, Diag, Upper []float64
}

func NewTridiagonal(n int) (T Tridiagonal) {
	if n < 1 {
		panic(fmt.Errorf("tridiagonal system needs at least one row, have %d", n))
	}
	T = Tridiagonal{
		N:     n,
		Lower: make([]float64, n),
		Diag:  make([]float64, n),
		Upper: make([]float64, n),
	}
	return
}

// Set places val at (i,j), which must lie on one of the three diagonals
func (T Tridiagonal) Set(i, j int, val float64) {
	switch j - i {
	case -1:
		T.Lower[j] = val
	case 0:
		T.Diag[i] = val
	case 1:
		T.Upper[i] = val
	default:
		panic(fmt.Errorf("(%d,%d) is not on the tridiagonal band", i, j))
	}
}

func (T Tridiagonal) At(i, j int) float64 {
	switch j - i {
	case -1:
		return T.Lower[j]
	case 0:
		return T.Diag[i]
	case 1:
		return T.Upper[i]
	}
	return 0
}

// Solve returns x with T x = rhs. Neither T nor rhs is modified.
func (T Tridiagonal) Solve(rhs []float64) (x []float64, err error) {
	var (
		n  = T.N
		dl = make([]float64, n)
		d  = make([]float64, n)
		du = make([]float64, n)
	)
	if len(rhs) != n {
		err = fmt.Errorf("tridiagonal solve: rhs has length %d, system has %d rows", len(rhs), n)
		return
	}
	copy(dl, T.Lower)
	copy(d, T.Diag)
	copy(du, T.Upper)
	x = make([]float64, n)
	copy(x, rhs)
	if n == 1 {
		if d[0] == 0 {
			err = fmt.Errorf("tridiagonal solve: singular 1x1 system")
			return nil, err
		}
		x[0] /= d[0]
		return
	}
	// Gaussian elimination with partial pivoting, overwrites x with the solution
	if ok := (gonum.Implementation{}).Dgtsv(n, 1, dl[:n-1], d, du[:n-1], x, 1); !ok {
		err = fmt.Errorf("tridiagonal solve: singular %dx%d system", n, n)
		return nil, err
	}
	return
}

// SolveCyclic solves a tridiagonal system whose first and last rows also couple to each
// other through the corner entries (0,n-1) and (n-1,0). Corner values are added to the band
// when n is small enough that the corners fall on it.
func SolveCyclic(T Tridiagonal, topRight, bottomLeft float64, rhs []float64) (x []float64, err error) {
	var (
		n = T.N
		A = mat.NewDense(n, n, nil)
		b = mat.NewVecDense(n, nil)
		X mat.VecDense
	)
	if len(rhs) != n {
		err = fmt.Errorf("cyclic solve: rhs has length %d, system has %d rows", len(rhs), n)
		return
	}
	for i := 0; i < n; i++ {
		for j := max(0, i-1); j <= min(n-1, i+1); j++ {
			A.Set(i, j, T.At(i, j))
		}
		b.SetVec(i, rhs[i])
	}
	A.Set(0, n-1, A.At(0, n-1)+topRight)
	A.Set(n-1, 0, A.At(n-1, 0)+bottomLeft)
	if err = X.SolveVec(A, b); err != nil {
		err = fmt.Errorf("cyclic solve: %w", err)
		return
	}
	x = VecGetF64(&X)
	return
}
