package spline

import (
	"fmt"
)

// Cubic Hermite basis h00, h10, h01, h11 and its derivatives in the normalized
// segment coordinate t in [0,1], indexed by derivative order
var hermite = [4]func(t float64) [4]float64{
	func(t float64) [4]float64 {
		return [4]float64{(2*t-3)*t*t + 1, ((t-2)*t + 1) * t, (-2*t + 3) * t * t, (t - 1) * t * t}
	},
	func(t float64) [4]float64 {
		return [4]float64{(6*t - 6) * t, (3*t-4)*t + 1, (-6*t + 6) * t, (3*t - 2) * t}
	},
	func(t float64) [4]float64 {
		return [4]float64{12*t - 6, 6*t - 4, -12*t + 6, 6*t - 2}
	},
	func(t float64) [4]float64 {
		return [4]float64{12, 6, -12, 6}
	},
}

// segmentIdx returns i with x[i] <= x < x[i+1] by bisection. Points left of the range map to the
// first segment, points right of it and XMax itself to the last one.
func (s *Spline) segmentIdx(x float64) (iLow int) {
	var (
		iHigh = len(s.x) - 1
	)
	for iLow+1 < iHigh {
		i := (iLow + iHigh) / 2
		if s.x[i] > x {
			iHigh = i
		} else {
			iLow = i
		}
	}
	return
}

// evalSegment evaluates derivative order of the cubic of segment i, x may lie outside the segment
func (s *Spline) evalSegment(i int, x float64, order int) (val float64) {
	var (
		h     = s.x[i+1] - s.x[i]
		t     = (x - s.x[i]) / h
		basis = hermite[order](t)
		scale = 1.
	)
	val = basis[0]*s.y[i] + basis[1]*h*s.slopes[i] +
		basis[2]*s.y[i+1] + basis[3]*h*s.slopes[i+1]
	for k := 0; k < order; k++ {
		scale /= h
	}
	return val * scale
}

func (s *Spline) eval(x float64, extrapolate bool, order int) (val float64, err error) {
	var (
		n = len(s.x)
	)
	if s.Applies(x) {
		return s.evalSegment(s.segmentIdx(x), x, order), nil
	}
	if !extrapolate {
		err = fmt.Errorf("%w: x = %v is not in [%v, %v]", ErrDomain, x, s.XMin(), s.XMax())
		return
	}
	// a straight line continues the boundary segment
	var (
		x0, y0, m float64
	)
	if x < s.XMin() {
		x0, y0, m = s.x[0], s.y[0], s.evalSegment(0, s.x[0], 1)
	} else {
		x0, y0, m = s.x[n-1], s.y[n-1], s.evalSegment(n-2, s.x[n-1], 1)
	}
	switch order {
	case 0:
		val = y0 + m*(x-x0)
	case 1:
		val = m
	}
	return
}

// Eval returns the spline's value at x. Outside [XMin, XMax] it fails with ErrDomain unless
// extrapolate is set, in which case the boundary segment is continued linearly.
func (s *Spline) Eval(x float64, extrapolate bool) (float64, error) {
	return s.eval(x, extrapolate, 0)
}

func (s *Spline) EvalDerivative(x float64, extrapolate bool) (float64, error) {
	return s.eval(x, extrapolate, 1)
}

// EvalSecondDerivative is 0 in the extrapolated range
func (s *Spline) EvalSecondDerivative(x float64, extrapolate bool) (float64, error) {
	return s.eval(x, extrapolate, 2)
}

// EvalThirdDerivative is 0 in the extrapolated range
func (s *Spline) EvalThirdDerivative(x float64, extrapolate bool) (float64, error) {
	return s.eval(x, extrapolate, 3)
}

/*
Coefficients returns the cubic of segment i in monomial form about origin:

	p(x) = a (x-origin)^3 + b (x-origin)^2 + c (x-origin) + d

It is the Taylor expansion of the segment's cubic at origin, which need not lie inside the segment.
*/
func (s *Spline) Coefficients(i int, origin float64) (a, b, c, d float64) {
	if i < 0 || i >= len(s.x)-1 {
		panic(fmt.Errorf("segment %d does not exist, spline has %d segments", i, len(s.x)-1))
	}
	a = s.evalSegment(i, origin, 3) / 6
	b = s.evalSegment(i, origin, 2) / 2
	c = s.evalSegment(i, origin, 1)
	d = s.evalSegment(i, origin, 0)
	return
}

// NumSegments is NumSamples - 1
func (s *Spline) NumSegments() int { return len(s.x) - 1 }
