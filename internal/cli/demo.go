// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/arith"
	"github.com/katalvlaran/numlab/calculus"
	"github.com/katalvlaran/numlab/internal/offload"
	"github.com/katalvlaran/numlab/internal/report"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/poly"
	"github.com/katalvlaran/numlab/sequence"
	"github.com/katalvlaran/numlab/stats"
)

// Demo inputs.
var (
	demoCubic     = poly.Polynomial{1, 0, 2, 0} // x^3 + 2x
	demoSquare    = poly.Polynomial{1, 0, 0}    // x^2
	demoShifted   = poly.Polynomial{1, 0, -4}   // x^2 - 4
	demoQuadratic = poly.Polynomial{1, -3, 2}   // x^2 - 3x + 2
	demoSample    = []float64{2, 4, 4, 4, 5, 5, 7, 9}
	demoLHS       = [][]float64{{1, 2}, {3, 4}}
	demoRHS       = [][]float64{{5, 6}, {7, 8}}
)

const (
	demoFibCount  = 15
	demoFactorial = 20
)

func (a *app) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every routine once and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := a.newReport()
			if err := a.runDemo(r); err != nil {
				return fmt.Errorf("demo: %w", err)
			}

			return a.render(cmd, r)
		},
	}
	addStepsFlag(cmd)
	addSolverFlags(cmd)

	return cmd
}

// runDemo fills r section by section. The integral runs on its own
// goroutine while the other sections are computed.
func (a *app) runDemo(r *report.Report) error {
	calcOpts := a.cfg.CalculusOptions()

	integral := offload.Go(func() (float64, error) {
		return calculus.Integral(demoSquare.Func(), 0, 1, calcOpts...)
	})

	for _, op := range []arith.Op{arith.OpAdd, arith.OpSub, arith.OpMul, arith.OpDiv} {
		v, err := arith.Apply(op, 10.0, 4.0)
		if err != nil {
			return err
		}
		r.AddFloat("Arithmetic", fmt.Sprintf("10 %s 4", op), v)
	}
	if _, err := arith.Apply(arith.OpDiv, 1, 0); err != nil {
		r.AddText("Arithmetic", "1 div 0", err.Error())
	}

	r.AddFloat("Calculus", "d/dx ("+demoCubic.String()+") at 2", calculus.Derivative(demoCubic.Func(), 2))
	root, err := calculus.Solve(demoShifted.Func(), 1, calcOpts...)
	if err != nil {
		return err
	}
	r.AddFloat("Calculus", "root of "+demoShifted.String()+" from 1", root)

	roots, err := poly.Roots(demoQuadratic, poly.WithSolverOptions(calcOpts...), poly.WithLogger(a.logger))
	if err != nil {
		return err
	}
	r.AddRoots("Roots", demoQuadratic.String(), roots)

	lhs, err := matrix.NewDenseFrom(demoLHS)
	if err != nil {
		return err
	}
	rhs, err := matrix.NewDenseFrom(demoRHS)
	if err != nil {
		return err
	}
	prod, err := matrix.Mul(lhs, rhs)
	if err != nil {
		return err
	}
	for _, m := range []struct {
		label string
		m     matrix.Matrix
	}{{"A", lhs}, {"B", rhs}, {"A mul B", prod}} {
		if err = r.AddMatrix("Matrix", m.label, m.m); err != nil {
			return err
		}
	}

	summary, err := stats.Describe(demoSample)
	if err != nil {
		return err
	}
	r.AddSummary("Statistics", summary)

	fib, err := sequence.Fibonacci(demoFibCount)
	if err != nil {
		return err
	}
	r.AddInts("Sequences", "fibonacci", fib)
	fact, err := sequence.Factorial(demoFactorial)
	if err != nil {
		return err
	}
	r.AddText("Sequences", fmt.Sprintf("%d!", demoFactorial), fact.String())

	area, err := integral.Await()
	if err != nil {
		return err
	}
	a.logger.Debug("offloaded integral finished", zap.Float64("value", area))
	r.AddFloat("Calculus", "integral of "+demoSquare.String()+" over [0, 1]", area)

	return nil
}
