package spline

import (
	"fmt"
	"sort"

	"github.com/notargets/reslib/utils"
)

type Point struct {
	X, Y float64
}

// SampleSet holds sampling points with strictly ascending x
type SampleSet struct {
	x, y []float64
}

/*
NewSampleSet is the one ingestion path for sampling points. The points are copied. With sortInputs
the points are sorted by x, otherwise an input given in descending x order is reversed. The
result must have at least two points with strictly increasing x.
*/
func NewSampleSet(pts []Point, sortInputs bool) (ss SampleSet, err error) {
	var (
		n = len(pts)
	)
	if n < 2 {
		err = fmt.Errorf("%w: need at least 2 sampling points, have %d", ErrConfig, n)
		return
	}
	P := make([]Point, n)
	copy(P, pts)
	if sortInputs {
		sort.SliceStable(P, func(i, j int) bool { return P[i].X < P[j].X })
	} else if P[0].X > P[n-1].X {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			P[i], P[j] = P[j], P[i]
		}
	}
	ss = SampleSet{
		x: make([]float64, n),
		y: make([]float64, n),
	}
	for i, p := range P {
		if i > 0 && !(p.X > P[i-1].X) {
			err = fmt.Errorf("%w: x values must be unique and sorted, x[%d] = %v follows %v",
				ErrConfig, i, p.X, P[i-1].X)
			return SampleSet{}, err
		}
		ss.x[i], ss.y[i] = p.X, p.Y
	}
	if !utils.IsFinite(ss.x) || !utils.IsFinite(ss.y) {
		return SampleSet{}, fmt.Errorf("%w: sampling points must be finite", ErrConfig)
	}
	return
}

func (ss SampleSet) Len() int        { return len(ss.x) }
func (ss SampleSet) X(i int) float64 { return ss.x[i] }
func (ss SampleSet) Y(i int) float64 { return ss.y[i] }
func (ss SampleSet) XMin() float64   { return ss.x[0] }
func (ss SampleSet) XMax() float64   { return ss.x[len(ss.x)-1] }
func (ss SampleSet) Points() []Point {
	P := make([]Point, len(ss.x))
	for i := range P {
		P[i] = Point{ss.x[i], ss.y[i]}
	}
	return P
}

// FromXY adapts parallel coordinate slices
func FromXY(xs, ys []float64) (pts []Point, err error) {
	if len(xs) != len(ys) {
		err = fmt.Errorf("%w: len(x) = %d, len(y) = %d", ErrConfig, len(xs), len(ys))
		return
	}
	pts = make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{xs[i], ys[i]}
	}
	return
}

// FromPairs adapts a slice of [x, y] pairs
func FromPairs(pairs [][2]float64) (pts []Point) {
	pts = make([]Point, len(pairs))
	for i, p := range pairs {
		pts[i] = Point{p[0], p[1]}
	}
	return
}

// FromRows adapts a slice of rows holding at least two values each, as decoded from a table
func FromRows(rows [][]float64) (pts []Point, err error) {
	pts = make([]Point, len(rows))
	for i, r := range rows {
		if len(r) < 2 {
			err = fmt.Errorf("%w: row %d has %d values, need x and y", ErrConfig, i, len(r))
			return nil, err
		}
		pts[i] = Point{r[0], r[1]}
	}
	return
}

// FromPoints copies point records
func FromPoints(pts []Point) []Point {
	P := make([]Point, len(pts))
	copy(P, pts)
	return P
}
