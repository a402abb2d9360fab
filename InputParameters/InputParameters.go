package InputParameters

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ghodss/yaml"

	"github.com/notargets/reslib/backend"
	"github.com/notargets/reslib/linalg"
	"github.com/notargets/reslib/snapshot"
	"github.com/notargets/reslib/spline"
	"github.com/notargets/reslib/types"
)

// Parameters obtained from the YAML input file. ghodss/yaml goes through encoding/json, so the
// field names come from the json tags.
type Input struct {
	Title       string        `json:"Title"`
	Samples     int           `json:"Samples"`     // evaluation points per spline for CSV output
	Extrapolate float64       `json:"Extrapolate"` // fraction of the sample range sampled past each end
	Splines     []SplineInput `json:"Splines"`
	Matrix      *MatrixInput  `json:"Matrix"`
}

type SplineInput struct {
	Name   string      `json:"Name"`
	Type   string      `json:"Type"`
	Points [][]float64 `json:"Points"` // [x, y] rows
	Slopes []float64   `json:"Slopes"` // end slopes, Full splines only
	Sort   bool        `json:"Sort"`
}

type MatrixInput struct {
	Rows     int         `json:"Rows"`
	Cols     int         `json:"Cols"`
	Mode     string      `json:"Mode"`    // insert or accumulate
	Triples  [][]float64 `json:"Triples"` // [row, col, value] rows
	RHS      []float64   `json:"RHS"`
	Solver   string      `json:"Solver"`
	Backend  string      `json:"Backend"`
	Snapshot string      `json:"Snapshot"`
	Codec    string      `json:"Codec"`
}

const ExampleFile = `
########################################
Title: "Relative permeability"
Samples: 20
Extrapolate: 0.1
Splines:
  - Name: krw
    Type: monotonic
    Points: [[0, 0], [0.25, 0.02], [0.5, 0.1], [0.75, 0.35], [1, 1]]
  - Name: pc
    Type: full
    Points: [[0, 3], [0.5, 1], [1, 0]]
    Slopes: [-6, -1]
Matrix:
  Rows: 3
  Mode: accumulate
  Triples: [[0, 0, 4], [0, 1, 1], [1, 0, 1], [1, 1, 3], [1, 2, 1], [2, 1, 1], [2, 2, 2]]
  RHS: [6, 10, 8]
  Solver: lu
  Backend: bowman
  Snapshot: A.rcsr
  Codec: zstd
########################################
`

func (ip *Input) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	if ip.Samples == 0 {
		ip.Samples = 10
	}
	if ip.Samples < 1 {
		return fmt.Errorf("Samples must be positive, have %d", ip.Samples)
	}
	return
}

func (ip *Input) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t= Samples per spline\n", ip.Samples)
	fmt.Printf("%8.5f\t\t= Extrapolation fraction\n", ip.Extrapolate)
	for _, si := range ip.Splines {
		fmt.Printf("Splines[%s] = %s, %d points\n", si.Name, si.Type, len(si.Points))
	}
	if mi := ip.Matrix; mi != nil {
		fmt.Printf("Matrix = %d x %d, %d triples, mode [%s], solver [%s], backend [%s]\n",
			mi.Rows, mi.Cols, len(mi.Triples), mi.Mode, mi.Solver, mi.Backend)
	}
}

// Build constructs the spline described by si
func (si SplineInput) Build() (s *spline.Spline, err error) {
	var (
		st   spline.Type
		pts  []spline.Point
		opts []spline.Option
	)
	if st, err = spline.ParseType(si.Type); err != nil {
		return
	}
	if pts, err = spline.FromRows(si.Points); err != nil {
		return
	}
	switch len(si.Slopes) {
	case 0:
	case 2:
		opts = append(opts, spline.WithSlopes(si.Slopes[0], si.Slopes[1]))
	default:
		err = fmt.Errorf("%w: spline %q needs 2 end slopes, has %d", spline.ErrConfig, si.Name, len(si.Slopes))
		return
	}
	if si.Sort {
		opts = append(opts, spline.WithSort())
	}
	return spline.New(pts, st, opts...)
}

// Build assembles the CSR matrix from the triples, with insert or accumulate semantics
func (mi MatrixInput) Build(logger *slog.Logger) (m *linalg.CSR, err error) {
	var (
		mode = types.Build_Insert
		ok   bool
		opts = []linalg.Option{linalg.WithDims(mi.Rows, mi.Cols), linalg.WithLogger(logger)}
		T    = make([]linalg.Triple, len(mi.Triples))
	)
	if mi.Mode != "" {
		if mode, ok = types.NewBuildMode(mi.Mode); !ok {
			err = fmt.Errorf("unknown build mode %q, use insert or accumulate", mi.Mode)
			return
		}
	}
	for i, row := range mi.Triples {
		if len(row) != 3 {
			err = fmt.Errorf("triple %d has %d entries, need [row, col, value]", i, len(row))
			return
		}
		var r, c int
		if r, err = tripleIndex(i, row[0]); err != nil {
			return
		}
		if c, err = tripleIndex(i, row[1]); err != nil {
			return
		}
		T[i] = linalg.Triple{Row: r, Col: c, Value: row[2]}
	}
	switch mode {
	case types.Build_Accumulate:
		return linalg.NewAccumulator(opts...).AddTriples(T...).ToCSR()
	default:
		return linalg.NewBuilder(opts...).AddTriples(T...).ToCSR()
	}
}

// tripleIndex converts a YAML number to a row or column index, rejecting fractions, NaN and Inf
func tripleIndex(i int, v float64) (k int, err error) {
	if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
		err = fmt.Errorf("%w: triple %d has index %v, need an integer", linalg.ErrOutOfRange, i, v)
		return
	}
	return int(v), nil
}

func (mi MatrixInput) Method() (sm backend.Method, err error) {
	if mi.Solver == "" {
		return backend.MethodLU, nil
	}
	var ok bool
	if sm, ok = types.NewSolverMethod(mi.Solver); !ok {
		err = fmt.Errorf("%w: %q", backend.ErrUnknownMethod, mi.Solver)
	}
	return
}

func (mi MatrixInput) Kind() (bk backend.Kind, err error) {
	if mi.Backend == "" {
		return backend.KindCSR, nil
	}
	var ok bool
	if bk, ok = types.NewBackendKind(mi.Backend); !ok {
		err = fmt.Errorf("%w: %q", backend.ErrUnknownKind, mi.Backend)
	}
	return
}

func (mi MatrixInput) SnapshotCodec() (snapshot.Codec, error) {
	if mi.Codec == "" {
		return snapshot.CodecNone, nil
	}
	return snapshot.ParseCodec(mi.Codec)
}
