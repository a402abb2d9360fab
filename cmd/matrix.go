/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/reslib/InputParameters"
	"github.com/notargets/reslib/backend"
	"github.com/notargets/reslib/linalg"
	"github.com/notargets/reslib/snapshot"
	"github.com/notargets/reslib/utils"
)

// MatrixCmd represents the matrix command
var MatrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Assemble a CSR matrix from triples, solve with it and snapshot it",
	Long: `
Assembles the CSR matrix of an input file with insert or accumulate semantics, prints its
arrays, solves A x = RHS when a right hand side is given and writes a snapshot,

reslib matrix -I input.yaml
reslib matrix --load A.rcsr`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger = newLogger()
			w      = cmd.OutOrStdout()
			load   string
			m      *linalg.CSR
			ip     *InputParameters.Input
		)
		if load, _ = cmd.Flags().GetString("load"); load != "" {
			if m, err = readSnapshot(load); err != nil {
				return
			}
			PrintCSR(w, m)
			return
		}
		if ip, err = readInput(cmd); err != nil {
			return
		}
		if ip.Matrix == nil {
			return fmt.Errorf("input file has no Matrix section")
		}
		mi := *ip.Matrix
		if cmd.Flags().Changed("snapshot") {
			mi.Snapshot, _ = cmd.Flags().GetString("snapshot")
		}
		if cmd.Flags().Changed("codec") {
			mi.Codec, _ = cmd.Flags().GetString("codec")
		}
		return RunMatrix(mi, w, logger)
	},
}

func init() {
	rootCmd.AddCommand(MatrixCmd)
	MatrixCmd.Flags().StringP("inputFile", "I", "", "YAML file with the Matrix section")
	MatrixCmd.Flags().String("snapshot", "", "write the assembled matrix to this file")
	MatrixCmd.Flags().String("codec", "", "snapshot compression: none, zstd or lz4")
	MatrixCmd.Flags().String("load", "", "print a matrix snapshot instead of assembling one")
}

// RunMatrix assembles, reports, solves and snapshots the matrix described by mi
func RunMatrix(mi InputParameters.MatrixInput, w io.Writer, logger *utils.Logger) (err error) {
	var (
		m      *linalg.CSR
		method backend.Method
		kind   backend.Kind
		view   linalg.Matrix
		x      []float64
	)
	logger = logger.WithName("matrix")
	if m, err = mi.Build(logger.Logger); err != nil {
		return
	}
	logger.Debug("matrix assembled", "nonzeros", m.Nonzeros(), "memory", utils.GetMemUsage())
	PrintCSR(w, m)
	if len(mi.RHS) != 0 {
		if method, err = mi.Method(); err != nil {
			return
		}
		if kind, err = mi.Kind(); err != nil {
			return
		}
		if view, err = backend.Convert(m, kind, mi.Cols); err != nil {
			return
		}
		if x, err = (backend.Solver{Method: method, Logger: logger}).Solve(view, mi.RHS); err != nil {
			return
		}
		fmt.Fprintf(w, "x (%s, %s) = %v\n", method, kind, x)
		xv := utils.NewVec(x)
		fmt.Fprintf(w, "min = %.6g, max = %.6g, sum = %.6g, |x| = %.6g, x.b = %.6g\n",
			utils.VecMin(xv), utils.VecMax(xv), utils.VecSum(xv),
			utils.VecNorm(xv, 2), utils.VecDot(xv, utils.NewVec(mi.RHS)))
	}
	if mi.Snapshot != "" {
		var codec snapshot.Codec
		if codec, err = mi.SnapshotCodec(); err != nil {
			return
		}
		if err = writeSnapshot(mi.Snapshot, m, codec); err != nil {
			return
		}
		logger.Info("snapshot written", "file", mi.Snapshot, "codec", codec.String())
	}
	return
}

// PrintCSR writes the dimensions and the three CSR arrays of m
func PrintCSR(w io.Writer, m *linalg.CSR) {
	u := m.Get()
	fmt.Fprintln(w, m)
	fmt.Fprintf(w, "RowOffset = %v\n", u.RowOffset)
	fmt.Fprintf(w, "ColIndex  = %v\n", u.ColIndex)
	fmt.Fprintf(w, "Values    = %v\n", u.Values)
}

func writeSnapshot(fileName string, m *linalg.CSR, codec snapshot.Codec) (err error) {
	var f *os.File
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return snapshot.Write(f, m, codec)
}

func readSnapshot(fileName string) (m *linalg.CSR, err error) {
	var f *os.File
	if f, err = os.Open(fileName); err != nil {
		return
	}
	defer f.Close()
	return snapshot.Read(f)
}
