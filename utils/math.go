package utils

// Linspace returns k+1 equally spaced values covering [x0, x1] inclusive
func Linspace(x0, x1 float64, k int) (v []float64) {
	if k < 1 {
		return []float64{x0}
	}
	var (
		dx = (x1 - x0) / float64(k)
	)
	v = make([]float64, k+1)
	for i := range v {
		v[i] = x0 + float64(i)*dx
	}
	v[k] = x1
	return
}
