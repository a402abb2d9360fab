package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/notargets/reslib/spline"
	"github.com/notargets/reslib/utils"
)

var (
	csvFile string
	n0      = 8
	levels  = 5
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "write the convergence study to this CSV file")
	n0Ptr := flag.Int("n0", n0, "number of segments of the coarsest spline")
	levelsPtr := flag.Int("levels", levels, "number of refinements, each doubling the segments")
	flag.Parse()
	csvFile, n0, levels = *csvFilePtr, *n0Ptr, *levelsPtr
	if n0 < 2 || levels < 2 {
		flag.Usage()
		os.Exit(1)
	}
	var studies []*ConvergenceStudy
	for _, sc := range studyCases {
		cs, err := RunStudy(sc, n0, levels)
		if err != nil {
			fmt.Printf("%s: %v\n", sc.title, err)
			os.Exit(1)
		}
		studies = append(studies, cs)
		fmt.Printf("Title = %s\n", cs.title)
		for i := range cs.numSegments {
			fmt.Printf("%6d, %12.5e, %6.3f\n", cs.numSegments[i], cs.maxErr[i], cs.Order(i))
		}
	}
	if len(csvFile) != 0 {
		f, err := os.Create(csvFile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err = writeCSV(f, studies); err != nil {
			panic(err)
		}
	}
}

type studyCase struct {
	title      string
	splineType spline.Type
	f, df      func(x float64) float64
	x0, x1     float64
}

var studyCases = []studyCase{
	{"Full exp", spline.Full, math.Exp, math.Exp, 0, 1},
	{"Natural exp", spline.Natural, math.Exp, math.Exp, 0, 1},
	{"Monotonic exp", spline.Monotonic, math.Exp, math.Exp, 0, 1},
	{"Periodic sin", spline.Periodic, math.Sin, math.Cos, 0, 2 * math.Pi},
	{"Natural sin", spline.Natural, math.Sin, math.Cos, 0, 2 * math.Pi},
}

// ConvergenceStudy holds the interpolation error of a spline type under uniform refinement
type ConvergenceStudy struct {
	title       string
	numSegments []int
	maxErr      []float64
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numSegments int, maxErr float64) {
	cs.numSegments = append(cs.numSegments, numSegments)
	cs.maxErr = append(cs.maxErr, maxErr)
}

// Order is the observed order of level i against level i-1, NaN for the first level
func (cs *ConvergenceStudy) Order(i int) float64 {
	if i == 0 {
		return math.NaN()
	}
	ratio := float64(cs.numSegments[i]) / float64(cs.numSegments[i-1])
	return math.Log(cs.maxErr[i-1]/cs.maxErr[i]) / math.Log(ratio)
}

// RunStudy interpolates sc.f on n0, 2 n0, ... segments and measures the error at segment midpoints
func RunStudy(sc studyCase, n0, levels int) (cs *ConvergenceStudy, err error) {
	cs = NewConvergenceStudy(sc.title)
	n := n0
	for l := 0; l < levels; l++ {
		var (
			x    = utils.Linspace(sc.x0, sc.x1, n)
			y    = make([]float64, len(x))
			pts  []spline.Point
			s    *spline.Spline
			opts []spline.Option
		)
		for i, xi := range x {
			y[i] = sc.f(xi)
		}
		if pts, err = spline.FromXY(x, y); err != nil {
			return
		}
		if sc.splineType == spline.Full {
			opts = append(opts, spline.WithSlopes(sc.df(sc.x0), sc.df(sc.x1)))
		}
		if s, err = spline.New(pts, sc.splineType, opts...); err != nil {
			return
		}
		var maxErr float64
		for i := 0; i < n; i++ {
			xm := (x[i] + x[i+1]) / 2
			v, _ := s.Eval(xm, false)
			maxErr = math.Max(maxErr, math.Abs(v-sc.f(xm)))
		}
		cs.Add(n, maxErr)
		n *= 2
	}
	return
}

func writeCSV(w io.Writer, studies []*ConvergenceStudy) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"title", "segments", "maxErr", "order"})
	for _, cs := range studies {
		for i := range cs.numSegments {
			_ = cw.Write([]string{
				cs.title,
				strconv.Itoa(cs.numSegments[i]),
				strconv.FormatFloat(cs.maxErr[i], 'e', 6, 64),
				strconv.FormatFloat(cs.Order(i), 'f', 3, 64),
			})
		}
	}
	cw.Flush()
	return cw.Error()
}
