// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsparse/internal/config"
	"github.com/katalvlaran/lvsparse/internal/logging"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/spf13/cobra"
)

// app is the state shared by every command of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	epsilon  float64
	out      string

	cfg config.Config
	log *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvsparse",
		Short: "Compressed-row sparse matrix toolkit",
		Long: `lvsparse reads and writes matrices in the lvsparse text format:

  # lvsparse csr
  <rows> <cols> <nnz>
  <row> <col> <value>   (one line per stored entry)

Results go to stdout, or to the file named by --out.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	f := root.PersistentFlags()
	f.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	f.StringVar(&a.logLevel, "log-level", "", "log level override (debug|info|warn|error)")
	f.Float64Var(&a.epsilon, "epsilon", 0, "zero threshold override")
	f.StringVarP(&a.out, "out", "o", "", "write the resulting matrix to this file")

	root.AddCommand(
		a.versionCmd(),
		a.infoCmd(),
		a.binaryCmd("add", "Element-wise sum a + b", sparse.Add[float64]),
		a.binaryCmd("sub", "Element-wise difference a - b", sparse.Sub[float64]),
		a.binaryCmd("mul", "Matrix product a × b", sparse.Mul[float64]),
		a.scaleCmd(),
		a.transposeCmd(),
		a.identityCmd(),
		a.matvecCmd(),
		a.solveCmd(),
		a.graphCmd(),
		a.storeCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("epsilon") {
		cfg.Numeric.Epsilon = a.epsilon
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded", "path", a.cfgPath, "epsilon", cfg.Numeric.Epsilon)

	return nil
}

// load reads a matrix file under the configured numeric policy.
func (a *app) load(path string) (*sparse.Matrix[float64], error) {
	m, err := sparse.NewZeros[float64](0, 0, a.cfg.SparseOptions()...)
	if err != nil {
		return nil, err
	}
	if err = m.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	a.log.Debug("matrix loaded", "path", path, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return m, nil
}

// emit writes m to --out, or to the command's stdout.
func (a *app) emit(cmd *cobra.Command, m *sparse.Matrix[float64]) error {
	if a.out == "" {
		return m.Encode(cmd.OutOrStdout())
	}
	if err := m.Save(a.out); err != nil {
		return err
	}
	a.log.Info("matrix written", "path", a.out, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return nil
}
