package utils

const (
	NODETOL = 1.e-12
	// Magnitudes below COEFTOL are zero when classifying polynomial coefficients
	COEFTOL = 1.e-20
	// Magnitudes below FLATTOL are zero when comparing secant slopes of sample data
	FLATTOL = 1.e-50
)

func IsZero(val, tol float64) bool {
	return val < tol && val > -tol
}
