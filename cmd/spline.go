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
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/reslib/InputParameters"
	"github.com/notargets/reslib/spline"
	"github.com/notargets/reslib/utils"
)

// SplineCmd represents the spline command
var SplineCmd = &cobra.Command{
	Use:   "spline",
	Short: "Build the splines of an input file and sample them to CSV",
	Long: `
Builds every spline in the input file, reports its range and monotonicity and writes
x, y, dy/dx and the monotonicity code at equally spaced points,

reslib spline -I input.yaml -o tables/`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip     *InputParameters.Input
			outDir string
		)
		if ip, err = readInput(cmd); err != nil {
			return
		}
		outDir, _ = cmd.Flags().GetString("outDir")
		ip.Print()
		return RunSplines(cmd.Context(), ip, outDir, cmd.OutOrStdout(), newLogger())
	},
}

func init() {
	rootCmd.AddCommand(SplineCmd)
	SplineCmd.Flags().StringP("inputFile", "I", "", "YAML file with the spline definitions")
	SplineCmd.Flags().StringP("outDir", "o", "", "directory for one <name>.csv per spline, stdout if empty")
}

type splineTable struct {
	name    string
	summary string
	csv     bytes.Buffer
}

/*
RunSplines builds and samples the splines of ip concurrently. Tables are written in input order,
to outDir/<name>.csv or, without outDir, to w after a "# name" line.
*/
func RunSplines(ctx context.Context, ip *InputParameters.Input, outDir string, w io.Writer,
	logger *utils.Logger) (err error) {
	var (
		tables = make([]splineTable, len(ip.Splines))
		g, _   = errgroup.WithContext(ctx)
	)
	logger = logger.WithName("spline")
	for i, si := range ip.Splines {
		g.Go(func() (err error) {
			var s *spline.Spline
			s, err = si.Build()
			logger.LogSpline(si.Name, si.Type, len(si.Points), err)
			if err != nil {
				return fmt.Errorf("spline %q: %w", si.Name, err)
			}
			var (
				width = s.XMax() - s.XMin()
				x0    = s.XMin() - ip.Extrapolate*width
				x1    = s.XMax() + ip.Extrapolate*width
			)
			tables[i].name = si.Name
			tables[i].summary = fmt.Sprintf("%-12s %-10s %4d samples on [%g, %g], %s",
				si.Name, s.Type(), s.NumSamples(), s.XMin(), s.XMax(), s.MonotonicAll())
			return s.WriteCSV(&tables[i].csv, x0, x1, ip.Samples)
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	for _, tbl := range tables {
		fmt.Fprintln(w, tbl.summary)
	}
	for _, tbl := range tables {
		if outDir == "" {
			fmt.Fprintf(w, "# %s\n", tbl.name)
			if _, err = tbl.csv.WriteTo(w); err != nil {
				return
			}
			continue
		}
		if err = os.WriteFile(filepath.Join(outDir, tbl.name+".csv"), tbl.csv.Bytes(), 0o644); err != nil {
			return
		}
	}
	return
}
