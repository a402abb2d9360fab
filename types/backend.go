package types

import "strings"

type BackendKind uint8

const (
	Backend_CSR BackendKind = iota
	Backend_Bowman
	Backend_Dense
)

var BackendNameMap = map[string]BackendKind{
	"csr":    Backend_CSR,
	"bowman": Backend_Bowman,
	"sparse": Backend_Bowman,
	"dense":  Backend_Dense,
}

func (bk BackendKind) String() string {
	switch bk {
	case Backend_CSR:
		return "CSR"
	case Backend_Bowman:
		return "Bowman"
	case Backend_Dense:
		return "Dense"
	}
	return "Unknown"
}

func NewBackendKind(label string) (bk BackendKind, ok bool) {
	bk, ok = BackendNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}

type SolverMethod uint8

const (
	Solver_LU SolverMethod = iota
	Solver_QR
	Solver_Cholesky
)

var SolverNameMap = map[string]SolverMethod{
	"lu":       Solver_LU,
	"qr":       Solver_QR,
	"cholesky": Solver_Cholesky,
	"chol":     Solver_Cholesky,
}

func (sm SolverMethod) String() string {
	switch sm {
	case Solver_LU:
		return "LU"
	case Solver_QR:
		return "QR"
	case Solver_Cholesky:
		return "Cholesky"
	}
	return "Unknown"
}

func NewSolverMethod(label string) (sm SolverMethod, ok bool) {
	sm, ok = SolverNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}
