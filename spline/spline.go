package spline

import (
	"fmt"

	"github.com/notargets/reslib/types"
)

type Type = types.SplineType

const (
	Full      = types.Spline_Full
	Natural   = types.Spline_Natural
	Periodic  = types.Spline_Periodic
	Monotonic = types.Spline_Monotonic
)

// ParseType resolves a spline type name such as "natural" or "monotone"
func ParseType(label string) (t Type, err error) {
	var ok bool
	if t, ok = types.NewSplineType(label); !ok {
		err = fmt.Errorf("%w: unknown spline type %q", ErrConfig, label)
	}
	return
}

/*
Spline is a piecewise cubic Hermite interpolant through a set of samples. The slope at every sample
is fixed at construction: Full, Natural and Periodic splines derive them from the moments of a C2
spline, Monotonic splines from the Fritsch-Carlson limiter. A Spline is immutable after construction
except through Set, so concurrent readers need no locking.
*/
type Spline struct {
	splineType Type
	x, y       []float64
	slopes     []float64
}

type Option func(*options)

type options struct {
	hasSlopes bool
	m0, m1    float64
	sort      bool
}

// WithSlopes prescribes the end slopes of a Full spline
func WithSlopes(m0, m1 float64) Option {
	return func(o *options) {
		o.hasSlopes = true
		o.m0, o.m1 = m0, m1
	}
}

// WithSort sorts the samples by x instead of only detecting descending input
func WithSort() Option {
	return func(o *options) {
		o.sort = true
	}
}

func New(pts []Point, t Type, opts ...Option) (s *Spline, err error) {
	s = &Spline{}
	if err = s.Set(pts, t, opts...); err != nil {
		return nil, err
	}
	return
}

// NewTwoPoint is the Full spline through (x0,y0) and (x1,y1) with end slopes m0 and m1
func NewTwoPoint(x0, x1, y0, y1, m0, m1 float64) (s *Spline, err error) {
	return New([]Point{{x0, y0}, {x1, y1}}, Full, WithSlopes(m0, m1))
}

// Set replaces the samples, type and slopes of the spline. On error the receiver is unchanged.
func (s *Spline) Set(pts []Point, t Type, opts ...Option) (err error) {
	var (
		o      options
		ss     SampleSet
		slopes []float64
	)
	for _, opt := range opts {
		opt(&o)
	}
	if ss, err = NewSampleSet(pts, o.sort); err != nil {
		return
	}
	switch t {
	case Full:
		if !o.hasSlopes {
			return fmt.Errorf("%w: a Full spline needs two boundary slopes", ErrConfig)
		}
		slopes, err = fullSlopes(ss.x, ss.y, o.m0, o.m1)
	case Natural:
		slopes, err = naturalSlopes(ss.x, ss.y)
	case Periodic:
		if ss.Len() < 3 {
			return fmt.Errorf("%w: a Periodic spline needs at least 3 samples, have %d",
				ErrConfig, ss.Len())
		}
		slopes, err = periodicSlopes(ss.x, ss.y)
	case Monotonic:
		slopes = monotonicSlopes(ss.x, ss.y)
	default:
		return fmt.Errorf("%w: unsupported spline type %d", ErrConfig, t)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	s.splineType = t
	s.x, s.y, s.slopes = ss.x, ss.y, slopes
	return
}

func (s *Spline) Type() Type { return s.splineType }

func (s *Spline) NumSamples() int { return len(s.x) }

func (s *Spline) XMin() float64 { return s.x[0] }

func (s *Spline) XMax() float64 { return s.x[len(s.x)-1] }

// Applies reports whether x lies inside [XMin, XMax]
func (s *Spline) Applies(x float64) bool {
	return x >= s.XMin() && x <= s.XMax()
}

func (s *Spline) Slopes() (slopes []float64) {
	slopes = make([]float64, len(s.slopes))
	copy(slopes, s.slopes)
	return
}

func (s *Spline) Samples() (ss SampleSet) {
	ss = SampleSet{
		x: make([]float64, len(s.x)),
		y: make([]float64, len(s.y)),
	}
	copy(ss.x, s.x)
	copy(ss.y, s.y)
	return
}

func (s *Spline) String() string {
	if len(s.x) == 0 {
		return "empty spline"
	}
	return fmt.Sprintf("%s spline, %d samples on [%g, %g]",
		s.splineType, s.NumSamples(), s.XMin(), s.XMax())
}
