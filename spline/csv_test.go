package spline

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	s, err := New(hump(), Natural)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf, 3, -1, 4))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, CSVHeader, records[0])
	var (
		x    = []float64{-1, 0, 1, 2, 3}
		y    = []float64{-1.5, 0, 1, 0, -1.5}
		dydx = []float64{1.5, 1.5, 0, -1.5, -1.5}
		mono = []string{"1", "1", "-1", "-1", "-1"}
	)
	for i, rec := range records[1:] {
		vals := make([]float64, 3)
		for j := range vals {
			vals[j], err = strconv.ParseFloat(rec[j], 64)
			require.NoError(t, err)
		}
		assert.InDelta(t, x[i], vals[0], 1.e-14)
		assert.InDelta(t, y[i], vals[1], 1.e-13)
		assert.InDelta(t, dydx[i], vals[2], 1.e-13)
		assert.Equal(t, mono[i], rec[3], "row %d", i)
	}
	assert.ErrorIs(t, s.WriteCSV(&buf, 0, 1, 0), ErrDomain)
	assert.ErrorIs(t, s.WriteCSV(&buf, 1, 1, 3), ErrDomain)
}
