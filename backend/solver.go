package backend

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/reslib/linalg"
	"github.com/notargets/reslib/types"
	"github.com/notargets/reslib/utils"
)

type Method = types.SolverMethod

const (
	MethodLU       = types.Solver_LU
	MethodQR       = types.Solver_QR
	MethodCholesky = types.Solver_Cholesky
)

const (
	// SymmetryTol is the relative tolerance of the symmetry check before a Cholesky factorization
	SymmetryTol = 1.e-12
	// ResidualTol bounds |A x - b| relative to |A| |x| + |b| for solutions of ill conditioned systems
	ResidualTol = 1.e-8
)

// Solver solves square systems directly with gonum's dense factorizations
type Solver struct {
	Method Method
	Logger *utils.Logger
}

/*
Solve returns x with m x = b. Exactly singular systems fail with ErrSingular. Ill conditioned ones,
where gonum reports a finite mat.Condition, keep the computed x when its residual is within
ResidualTol and fail with ErrSingular otherwise.
*/
func (s Solver) Solve(m linalg.Matrix, b []float64) (x []float64, err error) {
	var (
		n = m.Rows()
		A *mat.Dense
	)
	if len(b) != n {
		err = fmt.Errorf("%w: right hand side of length %d for %d rows", ErrShape, len(b), n)
		return
	}
	if A, err = ToDense(m, n); err != nil {
		return
	}
	var (
		bv   = utils.NewVec(b)
		xv   mat.VecDense
		cond float64
	)
	switch s.Method {
	case MethodLU:
		var lu mat.LU
		lu.Factorize(A)
		cond = lu.Cond()
		err = lu.SolveVecTo(&xv, false, bv)
	case MethodQR:
		var qr mat.QR
		qr.Factorize(A)
		cond = qr.Cond()
		err = qr.SolveVecTo(&xv, false, bv)
	case MethodCholesky:
		var (
			sym *mat.SymDense
			ch  mat.Cholesky
		)
		if sym, err = symmetric(A); err != nil {
			return
		}
		if ok := ch.Factorize(sym); !ok {
			err = ErrNotPositiveDefinite
			return
		}
		cond = ch.Cond()
		err = ch.SolveVecTo(&xv, bv)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownMethod, s.Method)
		return
	}
	var cerr mat.Condition
	if err != nil && !(errors.As(err, &cerr) && !math.IsInf(float64(cerr), 1)) {
		s.log().Debug("direct solve failed", "method", s.Method.String(), "n", n, "cond", cond)
		err = fmt.Errorf("%w: %v", ErrSingular, err)
		return
	}
	var r mat.VecDense
	r.MulVec(A, &xv)
	r.SubVec(&r, bv)
	residual := utils.VecNorm(&r, math.Inf(1))
	if err != nil {
		// a finite Condition comes with a computed x, kept while it solves the system
		scale := mat.Norm(A, math.Inf(1))*utils.VecNorm(&xv, math.Inf(1)) + utils.VecNorm(bv, math.Inf(1))
		if !(residual <= ResidualTol*scale) {
			err = fmt.Errorf("%w: %v, residual %g", ErrSingular, err, residual)
			return
		}
		s.log().Warn("ill conditioned system",
			"method", s.Method.String(),
			"n", n,
			"cond", float64(cerr),
			"residual", residual,
		)
		err = nil
	}
	s.log().Debug("direct solve",
		"method", s.Method.String(),
		"n", n,
		"cond", cond,
		"residual", residual,
	)
	x = utils.VecGetF64(&xv)
	return
}

func (s Solver) log() *utils.Logger {
	if s.Logger == nil {
		return utils.NoopLogger()
	}
	return s.Logger
}

func symmetric(A *mat.Dense) (sym *mat.SymDense, err error) {
	var (
		n, _ = A.Dims()
		tol  = SymmetryTol * max(mat.Norm(A, 1), 1)
	)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !utils.IsZero(A.At(i, j)-A.At(j, i), tol) {
				err = fmt.Errorf("%w: A(%d,%d) = %g, A(%d,%d) = %g",
					ErrNotSymmetric, i, j, A.At(i, j), j, i, A.At(j, i))
				return
			}
		}
	}
	sym = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, A.At(i, j))
		}
	}
	return
}
