package spline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var CSVHeader = []string{"x", "y", "dydx", "monotonic"}

/*
WriteCSV samples the spline at k+1 equally spaced points of [x0, x1] and writes one row per point:
x, y, dy/dx and the monotonicity code of the interval up to the next point. Points outside the
sample range are extrapolated linearly.
*/
func (s *Spline) WriteCSV(w io.Writer, x0, x1 float64, k int) (err error) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if k < 1 || x0 == x1 {
		return fmt.Errorf("%w: %d intervals of [%g, %g]", ErrDomain, k, x0, x1)
	}
	var (
		cw     = csv.NewWriter(w)
		dx     = (x1 - x0) / float64(k)
		format = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	)
	if err = cw.Write(CSVHeader); err != nil {
		return
	}
	for i := 0; i <= k; i++ {
		var (
			x       = x0 + float64(i)*dx
			y, dydx float64
			mono    Monotonicity
		)
		if y, err = s.Eval(x, true); err != nil {
			return
		}
		if dydx, err = s.EvalDerivative(x, true); err != nil {
			return
		}
		if mono, err = s.Monotonic(x, x+dx, true); err != nil {
			return
		}
		if err = cw.Write([]string{format(x), format(y), format(dydx), strconv.Itoa(int(mono))}); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
