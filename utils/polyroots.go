package utils

import (
	"math"
	"sort"
)

const (
	// root candidates closer than this (relative) are reported once
	rootMergeTol = 1.e-10
	newtonSteps  = 3
)

// CubicRoots returns the distinct real roots of a*x^3 + b*x^2 + c*x + d in ascending order.
// Degenerate leading coefficients fall through to the quadratic and linear cases.
// An identically zero polynomial returns no roots; callers that care must test for it.
func CubicRoots(a, b, c, d float64) (roots []float64) {
	if a == 0 {
		return QuadraticRoots(b, c, d)
	}
	var (
		// normalized: x^3 + p2 x^2 + p1 x + p0
		p2 = b / a
		p1 = c / a
		p0 = d / a
		// depressed: t^3 + p t + q with x = t - p2/3
		shift = p2 / 3
		p     = p1 - p2*p2/3
		q     = 2*p2*p2*p2/27 - p2*p1/3 + p0
		disc  = q*q/4 + p*p*p/27
	)
	switch {
	case p == 0 && q == 0:
		roots = []float64{-shift}
	case disc > 0:
		sq := math.Sqrt(disc)
		t := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		roots = []float64{t - shift}
	default:
		// three real roots, trigonometric form
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * r)
		arg = math.Max(-1, math.Min(1, arg))
		phi := math.Acos(arg) / 3
		roots = make([]float64, 3)
		for k := 0; k < 3; k++ {
			roots[k] = r*math.Cos(phi-2*math.Pi*float64(k)/3) - shift
		}
	}
	for i := range roots {
		roots[i] = polishCubic(a, b, c, d, roots[i])
	}
	return uniqueSorted(roots)
}

// QuadraticRoots returns the distinct real roots of a*x^2 + b*x + c in ascending order
func QuadraticRoots(a, b, c float64) (roots []float64) {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-b / (2 * a)}
	}
	// avoids cancellation between -b and sqrt(disc)
	qq := -(b + math.Copysign(math.Sqrt(disc), b)) / 2
	roots = []float64{qq / a}
	if qq != 0 {
		roots = append(roots, c/qq)
	}
	return uniqueSorted(roots)
}

func polishCubic(a, b, c, d, x float64) float64 {
	for i := 0; i < newtonSteps; i++ {
		f := ((a*x+b)*x+c)*x + d
		df := (3*a*x+2*b)*x + c
		if df == 0 || f == 0 {
			break
		}
		xn := x - f/df
		// keep the closed-form estimate if Newton wanders off
		if math.Abs(((a*xn+b)*xn+c)*xn+d) >= math.Abs(f) {
			break
		}
		x = xn
	}
	return x
}

func uniqueSorted(v []float64) (r []float64) {
	sort.Float64s(v)
	for _, x := range v {
		if len(r) != 0 {
			last := r[len(r)-1]
			if math.Abs(x-last) <= rootMergeTol*math.Max(1, math.Abs(x)) {
				continue
			}
		}
		r = append(r, x)
	}
	return
}
