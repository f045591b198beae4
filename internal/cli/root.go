// SPDX-License-Identifier: MIT

// Package cli implements the numlab command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/internal/report"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// flagBindings maps config keys to the flags that override them.
// Flags absent from the running command are skipped.
var flagBindings = map[string]string{
	"log.level":              "log-level",
	"log.format":             "log-format",
	"output.format":          "output",
	"numeric.steps":          "steps",
	"numeric.tolerance":      "tolerance",
	"numeric.max_iterations": "max-iterations",
}

// NewRootCmd builds the numlab command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()

	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "numlab",
		Short: "Numeric routines from the command line",
		Long: `numlab runs small numeric routines: numerical derivative and integral,
Newton-Raphson solving, polynomial roots, dense matrix products,
descriptive statistics, Fibonacci numbers and factorials.

Functions are polynomials written as comma-separated coefficients, highest
degree first: "1,0,-4" is x^2 - 4. Matrices are written row by row:
"1,2;3,4". Put "--" before an argument that starts with a minus sign.

Run "numlab demo" for a tour of everything.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./numlab.yaml or ./configs/numlab.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: console or json")
	pf.StringP("output", "o", "", "output format: text or yaml")

	rootCmd.AddCommand(
		a.newDemoCmd(),
		a.newIntegrateCmd(),
		a.newDeriveCmd(),
		a.newSolveCmd(),
		a.newRootsCmd(),
		a.newStatsCmd(),
		a.newFibCmd(),
		a.newFactorialCmd(),
		a.newMatmulCmd(),
		a.newCalcCmd(),
	)

	return rootCmd, a
}

// setup binds the running command's flags, loads the configuration and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for key, name := range flagBindings {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		// Bind only flags the user set, so empty flag defaults do not mask
		// the file and environment.
		if !f.Changed {
			continue
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.Int("steps", cfg.Numeric.Steps),
		zap.Float64("tolerance", cfg.Numeric.Tolerance),
		zap.Int("max_iterations", cfg.Numeric.MaxIterations),
	)

	return nil
}

// newReport returns an empty report with the configured precisions.
func (a *app) newReport() *report.Report {
	return report.New(
		report.WithStatsPrecision(a.cfg.Output.StatsPrecision),
		report.WithMatrixPrecision(a.cfg.Output.MatrixPrecision),
	)
}

// render writes r to the command's output in the configured format.
func (a *app) render(cmd *cobra.Command, r *report.Report) error {
	return r.Render(cmd.OutOrStdout(), a.cfg.Output.Format)
}

// run executes root with args. A failure is logged and printed on errOut.
func run(root *cobra.Command, a *app, args []string, errOut io.Writer) error {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		a.logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	_ = a.logger.Sync()

	return err
}

// Execute runs numlab with the process arguments.
func Execute() error {
	root, a := newRootCmd()

	return run(root, a, os.Args[1:], os.Stderr)
}
