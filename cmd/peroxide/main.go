// SPDX-License-Identifier: MIT

// Command peroxide exposes the solver over plain text files: determinant,
// rank, inverse and linear solving from the shell.
//
// Matrix files hold one row per line, entries separated by whitespace or
// commas; blank lines and #-comments are skipped. Vector files hold one
// entry per line (or all on one line).
//
//	peroxide det A.txt
//	peroxide solve A.txt b.txt
//	peroxide rank A.txt
//	peroxide inv --eps 1e-12 A.txt
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gfaster/Peroxide/matrix"
	"github.com/gfaster/Peroxide/solver"
)

var epsilon float64

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "peroxide",
		Short:         "Dense linear algebra from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().Float64Var(&epsilon, "eps", matrix.DefaultEpsilon,
		"pivot and comparison tolerance")

	root.AddCommand(newDetCmd(), newSolveCmd(), newRankCmd(), newInvCmd())

	return root
}

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det <matrix-file>",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			det, err := solver.Determinant(a, matrix.WithEpsilon(epsilon))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", det)

			return nil
		},
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <matrix-file> <vector-file>",
		Short: "Solve A·x = b for square non-singular A",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := readVector(args[1])
			if err != nil {
				return err
			}
			x, err := solver.Solve(a, b, matrix.WithEpsilon(epsilon))
			if err != nil {
				return err
			}
			for _, v := range x {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			}

			return nil
		},
	}
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <matrix-file>",
		Short: "Rank of a matrix of any shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			r, err := solver.Rank(a, matrix.WithEpsilon(epsilon))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", r)

			return nil
		},
	}
}

func newInvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv <matrix-file>",
		Short: "Inverse of a square non-singular matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readMatrix(args[0])
			if err != nil {
				return err
			}
			inv, err := solver.Inverse(a, matrix.WithEpsilon(epsilon))
			if err != nil {
				return err
			}
			writeMatrix(cmd, inv)

			return nil
		},
	}
}

// writeMatrix prints one row per line, entries space-separated.
func writeMatrix(cmd *cobra.Command, m *matrix.Dense) {
	rows, cols := m.Rows(), m.Cols()
	data := m.RawData()
	w := cmd.OutOrStdout()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%g", data[i*cols+j])
		}
		fmt.Fprintln(w)
	}
}

// readMatrix parses a whitespace/comma separated text file into a Dense.
// Every row must carry the same number of entries.
func readMatrix(path string) (*matrix.Dense, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no numeric rows", path)
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d",
				path, i+1, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return matrix.NewDenseData(len(rows), cols, flat)
}

// readVector parses a text file into a flat []float64, accepting either one
// entry per line or a single delimited line.
func readVector(path string) ([]float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	var out []float64
	for _, row := range rows {
		out = append(out, row...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no numeric entries", path)
	}

	return out, nil
}

// readRows scans path line by line, splitting each non-empty, non-comment
// line on whitespace and commas.
func readRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		row := make([]float64, 0, len(fields))
		for _, tok := range fields {
			if tok == "" {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad number %q", path, lineNo, tok)
			}
			row = append(row, v)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
