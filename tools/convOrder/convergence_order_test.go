package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvergenceOrder(t *testing.T) {
	minOrder := map[string]float64{
		"Full exp":      3.5,
		"Periodic sin":  3.5,
		"Natural sin":   3.5,
		"Natural exp":   1.5,
		"Monotonic exp": 1.5,
	}
	var studies []*ConvergenceStudy
	for _, sc := range studyCases {
		cs, err := RunStudy(sc, 16, 3)
		require.NoError(t, err)
		require.Len(t, cs.numSegments, 3)
		assert.Equal(t, []int{16, 32, 64}, cs.numSegments)
		assert.GreaterOrEqual(t, cs.Order(2), minOrder[sc.title], sc.title)
		studies = append(studies, cs)
	}
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, studies))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1+3*len(studyCases))
	assert.True(t, strings.HasPrefix(lines[1], "Full exp,16,"))
}
