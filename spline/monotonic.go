package spline

import (
	"fmt"
	"math"

	"github.com/notargets/reslib/utils"
)

type Monotonicity int8

const (
	Decreasing   Monotonicity = -1
	NonMonotonic Monotonicity = 0
	Increasing   Monotonicity = 1
	// Constant is neutral when combining intervals
	Constant Monotonicity = 3
)

func (m Monotonicity) String() string {
	switch m {
	case Decreasing:
		return "Decreasing"
	case NonMonotonic:
		return "NonMonotonic"
	case Increasing:
		return "Increasing"
	case Constant:
		return "Constant"
	}
	return "Unknown"
}

// combine folds the classification of one more interval into an accumulated one
func (m Monotonicity) combine(seg Monotonicity) Monotonicity {
	switch {
	case seg == Constant:
		return m
	case m == Constant:
		return seg
	case m == seg:
		return m
	}
	return NonMonotonic
}

func signOf(v float64) Monotonicity {
	if v > 0 {
		return Increasing
	}
	return Decreasing
}

/*
Monotonic classifies the spline on [x0, x1]. The bounds may be given in either order but must
differ. Parts of the interval outside [XMin, XMax] need extrapolate and are classified by the sign
of the boundary slope.
*/
func (s *Spline) Monotonic(x0, x1 float64, extrapolate bool) (r Monotonicity, err error) {
	if x0 == x1 {
		err = fmt.Errorf("%w: monotonicity of the empty interval [%v, %v]", ErrDomain, x0, x1)
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if !extrapolate && (x0 < s.XMin() || x1 > s.XMax()) {
		err = fmt.Errorf("%w: [%v, %v] is not in [%v, %v]", ErrDomain, x0, x1, s.XMin(), s.XMax())
		return
	}
	r = Constant
	if x0 < s.XMin() {
		r = r.combine(s.extrapolatedMonotonicity(0))
		x0 = s.XMin()
	}
	if x1 > s.XMax() {
		r = r.combine(s.extrapolatedMonotonicity(len(s.x) - 1))
		x1 = s.XMax()
	}
	if r == NonMonotonic || x1 <= x0 {
		return
	}
	var (
		iFirst = s.segmentIdx(x0)
		iLast  = s.segmentIdx(x1)
	)
	for i := iFirst; i <= iLast; i++ {
		lo, hi := math.Max(x0, s.x[i]), math.Min(x1, s.x[i+1])
		if !(hi > lo) {
			continue
		}
		if r = r.combine(s.segmentMonotonicity(i, lo, hi)); r == NonMonotonic {
			return
		}
	}
	return
}

// MonotonicAll is Monotonic over [XMin, XMax]
func (s *Spline) MonotonicAll() Monotonicity {
	r, _ := s.Monotonic(s.XMin(), s.XMax(), false)
	return r
}

func (s *Spline) extrapolatedMonotonicity(i int) Monotonicity {
	m := s.slopes[i]
	if math.Abs(m) < utils.COEFTOL {
		return Constant
	}
	return signOf(m)
}

/*
segmentMonotonicity classifies segment i on [x0, x1] from the derivative quadratic 3a u^2 + 2b u + c
of the segment's cubic about its left sample, u = x - x_i. The interval is cut at the zeros of the
derivative and the sign is taken at the middle of each piece. Pieces where the derivative is below
NODETOL relative to the largest piece are left out: they come from a double zero that round off
split in two, or from a zero that round off moved just inside an end.
*/
func (s *Spline) segmentMonotonicity(i int, x0, x1 float64) Monotonicity {
	var (
		origin       = s.x[i]
		a3, b2, c, _ = s.Coefficients(i, origin)
		a            = 3 * a3
		b            = 2 * b2
		u0           = x0 - origin
		u1           = x1 - origin
		deriv        = func(u float64) float64 { return (a*u+b)*u + c }
	)
	if math.Abs(a) < utils.COEFTOL && math.Abs(b) < utils.COEFTOL && math.Abs(c) < utils.COEFTOL {
		return Constant
	}
	if math.Abs(a) < utils.COEFTOL {
		a = 0
		if math.Abs(b) < utils.COEFTOL {
			b = 0
		}
	}
	cuts := []float64{u0}
	for _, u := range utils.QuadraticRoots(a, b, c) {
		if u0 < u && u < u1 {
			cuts = append(cuts, u)
		}
	}
	cuts = append(cuts, u1)
	var (
		d     = make([]float64, len(cuts)-1)
		scale float64
	)
	for k := range d {
		d[k] = deriv((cuts[k] + cuts[k+1]) / 2)
		scale = math.Max(scale, math.Abs(d[k]))
	}
	r := Constant
	for _, dk := range d {
		if math.Abs(dk) <= utils.NODETOL*scale {
			continue
		}
		if r = r.combine(signOf(dk)); r == NonMonotonic {
			break
		}
	}
	return r
}
