package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/reslib/InputParameters"
	"github.com/notargets/reslib/utils"
)

func exampleInput(t *testing.T) *InputParameters.Input {
	ip := &InputParameters.Input{}
	require.NoError(t, ip.Parse([]byte(InputParameters.ExampleFile)))
	return ip
}

func TestRunSplines(t *testing.T) {
	ip := exampleInput(t)
	{ // Tables to the writer, in input order
		var buf bytes.Buffer
		require.NoError(t, RunSplines(context.Background(), ip, "", &buf, utils.NoopLogger()))
		out := buf.String()
		assert.Contains(t, out, "krw")
		assert.Contains(t, out, "Increasing")
		assert.Less(t, strings.Index(out, "# krw"), strings.Index(out, "# pc"))
		// two summaries, then a name line, the header and Samples+1 rows per spline
		assert.Equal(t, 2+2*(ip.Samples+3), strings.Count(out, "\n"))
	}
	{ // One file per spline
		dir := t.TempDir()
		require.NoError(t, RunSplines(context.Background(), ip, dir, &bytes.Buffer{}, utils.NoopLogger()))
		data, err := os.ReadFile(filepath.Join(dir, "pc.csv"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Len(t, lines, ip.Samples+2)
		assert.Equal(t, "x,y,dydx,monotonic", lines[0])
	}
	{ // The first failing spline fails the run
		ip.Splines = append(ip.Splines, InputParameters.SplineInput{Name: "bad", Type: "periodic",
			Points: [][]float64{{0, 0}, {1, 1}}})
		err := RunSplines(context.Background(), ip, "", &bytes.Buffer{}, utils.NoopLogger())
		assert.ErrorContains(t, err, `spline "bad"`)
	}
}

func TestRunMatrix(t *testing.T) {
	var (
		ip  = exampleInput(t)
		mi  = *ip.Matrix
		buf bytes.Buffer
	)
	mi.Snapshot = filepath.Join(t.TempDir(), "A.rcsr")
	require.NoError(t, RunMatrix(mi, &buf, utils.NoopLogger()))
	out := buf.String()
	assert.Contains(t, out, "CSR 3 rows x 3 cols, 7 nonzeros")
	assert.Contains(t, out, "RowOffset = [0 2 5 7]")
	assert.Contains(t, out, "x (LU, Bowman) = ")
	assert.Contains(t, out, "min = 1, max = 3, sum = 6")

	m, err := readSnapshot(mi.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 1, 3, 1, 1, 2}, m.Get().Values)

	mi.Codec = "brotli"
	assert.Error(t, RunMatrix(mi, &buf, utils.NoopLogger()))
	mi.Solver = "gmres"
	assert.Error(t, RunMatrix(mi, &buf, utils.NoopLogger()))
}

func TestLoggerFormat(t *testing.T) {
	assert.True(t, validLogFormat("json"))
	assert.True(t, validLogFormat(""))
	assert.False(t, validLogFormat("xml"))
	var (
		buf bytes.Buffer
		mi  = *exampleInput(t).Matrix
	)
	mi.Snapshot = ""
	require.NoError(t, RunMatrix(mi, &bytes.Buffer{}, loggerFor(&buf, "json", slog.LevelDebug)))
	line, _, _ := strings.Cut(buf.String(), "\n")
	assert.True(t, strings.HasPrefix(line, "{"), line)
	assert.Contains(t, buf.String(), `"name":"matrix"`)
	assert.Contains(t, buf.String(), `"msg":"matrix assembled"`)
	buf.Reset()
	loggerFor(&buf, "text", slog.LevelInfo).Info("x")
	assert.True(t, strings.HasPrefix(buf.String(), "time="))
}
