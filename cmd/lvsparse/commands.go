// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/solve"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvsparse v%s (%s)\n", version, commit)
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print shape, stored entries and density of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			density := 0.0
			if cells := m.Rows() * m.Cols(); cells > 0 {
				density = float64(m.NNZ()) / float64(cells)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "rows:    %d\n", m.Rows())
			fmt.Fprintf(w, "cols:    %d\n", m.Cols())
			fmt.Fprintf(w, "nnz:     %d\n", m.NNZ())
			fmt.Fprintf(w, "density: %.6g\n", density)
			fmt.Fprintf(w, "epsilon: %g\n", m.Options().Epsilon())

			return nil
		},
	}
}

// binaryCmd builds a command applying op to two matrix files.
func (a *app) binaryCmd(name, short string, op func(x, y *sparse.Matrix[float64]) (*sparse.Matrix[float64], error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.load(args[0])
			if err != nil {
				return err
			}
			y, err := a.load(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	var divide bool
	cmd := &cobra.Command{
		Use:   "scale <file> <alpha>",
		Short: "Multiply (or with --divide, divide) every entry by alpha",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			alpha, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("alpha %q: %w", args[1], err)
			}
			if divide {
				if err = m.Divide(alpha); err != nil {
					return err
				}
			} else {
				m.Scale(alpha)
			}

			return a.emit(cmd, m)
		},
	}
	cmd.Flags().BoolVar(&divide, "divide", false, "divide instead of multiply")

	return cmd
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <file>",
		Short: "Transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			tr, err := sparse.Transpose(m)
			if err != nil {
				return err
			}

			return a.emit(cmd, tr)
		},
	}
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity <n>",
		Short: "Write the n×n identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n %q: %w", args[0], err)
			}
			m, err := sparse.NewIdentity[float64](n, a.cfg.SparseOptions()...)
			if err != nil {
				return err
			}

			return a.emit(cmd, m)
		},
	}
}

func (a *app) matvecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matvec <file> <x1,x2,...>",
		Short: "Print the dense product A·x",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			x, err := parseVector(args[1])
			if err != nil {
				return err
			}
			y, err := sparse.MulVec(m, x)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatVector(y))

			return nil
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var (
		tol     float64
		maxIter int
	)
	cmd := &cobra.Command{
		Use:   "solve <file> <b1,b2,...>",
		Short: "Solve A·x = b by conjugate gradients (A symmetric positive definite)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.load(args[0])
			if err != nil {
				return err
			}
			b, err := parseVector(args[1])
			if err != nil {
				return err
			}
			if tol <= 0 || tol >= 1 || maxIter < 0 {
				return fmt.Errorf("--tol must be in (0,1) and --max-iter >= 0")
			}
			res, err := solve.CG(cmd.Context(), m, b, solve.WithTolerance(tol), solve.WithMaxIterations(maxIter))
			if err != nil {
				return err
			}
			a.log.Info("solved", "iterations", res.Iterations, "residual", res.ResidualNorm)
			fmt.Fprintln(cmd.OutOrStdout(), formatVector(res.X))

			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", solve.DefaultTolerance, "relative residual tolerance")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "iteration limit (0 = twice the dimension)")

	return cmd
}

// parseVector parses a comma-separated list of floats.
func parseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return []float64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("vector element %d %q: %w", i, p, err)
		}
		out[i] = v
	}

	return out, nil
}

// formatVector renders v as a comma-separated list.
func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}
