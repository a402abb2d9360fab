package spline

import "errors"

var (
	// ErrConfig is returned for malformed construction input: too few samples, mismatched
	// coordinate lengths, unsorted or repeated x values, missing boundary slopes for a Full
	// spline or an unsupported spline type.
	ErrConfig = errors.New("spline: invalid configuration")

	// ErrDomain is returned when a point outside [XMin, XMax] is evaluated without extrapolation.
	ErrDomain = errors.New("spline: argument outside of the spline's domain")

	// ErrAmbiguity is returned by the intersection queries when there is not exactly one root.
	ErrAmbiguity = errors.New("spline: intersection is not unique")
)
