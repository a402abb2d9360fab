package spline

import (
	"fmt"
	"math"

	"github.com/notargets/reslib/utils"
)

// Intersect is IntersectInterval over [XMin, XMax]
func (s *Spline) Intersect(a, b, c, d float64) (float64, error) {
	return s.IntersectInterval(s.XMin(), s.XMax(), a, b, c, d)
}

/*
IntersectInterval returns the x in [x0, x1] where the spline equals a x^3 + b x^2 + c x + d. The
interval must lie inside the spline's range. It fails with ErrAmbiguity unless there is exactly one
such x, which includes the case of a segment that coincides with the polynomial.
*/
func (s *Spline) IntersectInterval(x0, x1, a, b, c, d float64) (x float64, err error) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if !s.Applies(x0) || !s.Applies(x1) {
		err = fmt.Errorf("%w: [%v, %v] is not in [%v, %v]", ErrDomain, x0, x1, s.XMin(), s.XMax())
		return
	}
	var (
		iFirst = s.segmentIdx(x0)
		iLast  = s.segmentIdx(x1)
		roots  []float64
	)
	for i := iFirst; i <= iLast; i++ {
		segRoots, ok := s.intersectSegment(i, x0, x1, a, b, c, d)
		if !ok {
			err = fmt.Errorf("%w: spline coincides with the polynomial on [%v, %v]",
				ErrAmbiguity, s.x[i], s.x[i+1])
			return
		}
		for _, r := range segRoots {
			// a root on a shared sample shows up in both segments
			if len(roots) != 0 && math.Abs(r-roots[len(roots)-1]) <= utils.NODETOL*math.Max(1, math.Abs(r)) {
				continue
			}
			roots = append(roots, r)
		}
		if len(roots) > 1 {
			err = fmt.Errorf("%w: spline has more than one intersection in [%v, %v]", ErrAmbiguity, x0, x1)
			return
		}
	}
	if len(roots) == 0 {
		err = fmt.Errorf("%w: spline has no intersection in [%v, %v]", ErrAmbiguity, x0, x1)
		return
	}
	return roots[0], nil
}

// intersectSegment returns the roots of the difference of segment i and the polynomial inside
// the segment clipped to [x0, x1]. ok is false when the difference vanishes identically.
func (s *Spline) intersectSegment(i int, x0, x1, a, b, c, d float64) (roots []float64, ok bool) {
	var (
		origin         = s.x[i]
		sa, sb, sc, sd = s.Coefficients(i, origin)
		pa, pb, pc, pd = shiftCubic(a, b, c, d, origin)
		da, db, dc, dd = sa - pa, sb - pb, sc - pc, sd - pd
		lo             = math.Max(x0, s.x[i])
		hi             = math.Min(x1, s.x[i+1])
	)
	scale := math.Max(math.Max(math.Abs(sa), math.Abs(sb)), math.Max(math.Abs(sc), math.Abs(sd)))
	scale = utils.NODETOL * math.Max(1, scale)
	if math.Abs(da) <= scale && math.Abs(db) <= scale && math.Abs(dc) <= scale && math.Abs(dd) <= scale {
		return nil, false
	}
	for _, u := range utils.CubicRoots(da, db, dc, dd) {
		// roots within round off of the bounds are moved onto them
		xr := u + origin
		tol := utils.NODETOL * math.Max(1, math.Abs(xr))
		if lo-tol <= xr && xr <= hi+tol {
			roots = append(roots, math.Min(hi, math.Max(lo, xr)))
		}
	}
	return roots, true
}

// shiftCubic re-expands a x^3 + b x^2 + c x + d about origin
func shiftCubic(a, b, c, d, origin float64) (sa, sb, sc, sd float64) {
	o := origin
	sa = a
	sb = 3*a*o + b
	sc = (3*a*o+2*b)*o + c
	sd = ((a*o+b)*o+c)*o + d
	return
}
