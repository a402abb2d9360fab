package types

import "strings"

type SplineType uint8

const (
	Spline_Full SplineType = iota
	Spline_Natural
	Spline_Periodic
	Spline_Monotonic
)

var SplineNameMap = map[string]SplineType{
	"full":      Spline_Full,
	"clamped":   Spline_Full,
	"natural":   Spline_Natural,
	"periodic":  Spline_Periodic,
	"cyclic":    Spline_Periodic,
	"monotonic": Spline_Monotonic,
	"monotone":  Spline_Monotonic,
}

func (st SplineType) String() string {
	switch st {
	case Spline_Full:
		return "Full"
	case Spline_Natural:
		return "Natural"
	case Spline_Periodic:
		return "Periodic"
	case Spline_Monotonic:
		return "Monotonic"
	}
	return "Unknown"
}

// NewSplineType looks a spline type name up case-insensitively, ok is false for unknown names
func NewSplineType(label string) (st SplineType, ok bool) {
	st, ok = SplineNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}

type BuildMode uint8

const (
	Build_Insert BuildMode = iota
	Build_Accumulate
)

var BuildModeNameMap = map[string]BuildMode{
	"insert":     Build_Insert,
	"set":        Build_Insert,
	"accumulate": Build_Accumulate,
	"add":        Build_Accumulate,
}

func NewBuildMode(label string) (bm BuildMode, ok bool) {
	bm, ok = BuildModeNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}
