// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/calculus"
	"github.com/katalvlaran/numlab/poly"
)

// addStepsFlag registers the Simpson step-count override.
func addStepsFlag(cmd *cobra.Command) {
	cmd.Flags().Int("steps", calculus.DefaultSteps, "Simpson sub-intervals (overrides numeric.steps)")
}

// addSolverFlags registers the Newton-Raphson overrides.
func addSolverFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("tolerance", calculus.DefaultTolerance, "convergence tolerance (overrides numeric.tolerance)")
	cmd.Flags().Int("max-iterations", calculus.DefaultMaxIterations, "iteration budget (overrides numeric.max_iterations)")
}

// parsePoly reads a polynomial argument such as "1,0,-4".
func parsePoly(arg string) (poly.Polynomial, error) {
	coefs, err := parseFloats(arg)
	if err != nil {
		return nil, fmt.Errorf("polynomial %q: %w", arg, err)
	}

	return poly.New(coefs...)
}

func (a *app) newIntegrateCmd() *cobra.Command {
	var from, to float64
	cmd := &cobra.Command{
		Use:   "integrate <coefs>",
		Short: "Integrate a polynomial with Simpson's rule",
		Long: `Integrate a polynomial over [from, to] with composite Simpson's rule.

Examples:
  # x^2 over [0, 1]
  numlab integrate 1,0,0 --from 0 --to 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			area, err := calculus.Integral(p.Func(), from, to, a.cfg.CalculusOptions()...)
			if err != nil {
				return fmt.Errorf("integrate: %w", err)
			}

			r := a.newReport()
			r.AddText("Integral", "f(x)", p.String())
			r.AddText("Integral", "interval", fmt.Sprintf("[%g, %g]", from, to))
			r.AddFloat("Integral", "value", area)

			return a.render(cmd, r)
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "lower bound")
	cmd.Flags().Float64Var(&to, "to", 1, "upper bound")
	addStepsFlag(cmd)

	return cmd
}

func (a *app) newDeriveCmd() *cobra.Command {
	var at float64
	cmd := &cobra.Command{
		Use:   "derive <coefs>",
		Short: "Numerical derivative of a polynomial at a point",
		Long: `Estimate f'(x) with a central difference and compare it with the exact
derivative of the polynomial.

Examples:
  # d/dx (x^3 + 2x) at x = 2
  numlab derive 1,0,2,0 --at 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}

			r := a.newReport()
			r.AddText("Derivative", "f(x)", p.String())
			r.AddFloat("Derivative", "x", at)
			r.AddFloat("Derivative", "numeric", calculus.Derivative(p.Func(), at))
			r.AddFloat("Derivative", "exact", p.Derivative().Eval(at))

			return a.render(cmd, r)
		},
	}
	cmd.Flags().Float64Var(&at, "at", 0, "point of evaluation")

	return cmd
}

func (a *app) newSolveCmd() *cobra.Command {
	var guess float64
	cmd := &cobra.Command{
		Use:   "solve <coefs>",
		Short: "Solve f(x) = 0 with Newton-Raphson",
		Long: `Find a root of a polynomial with Newton-Raphson starting from --guess.

Examples:
  # x^2 - 4 from x = 1
  numlab solve 1,0,-4 --guess 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			x, err := calculus.Solve(p.Func(), guess, a.cfg.CalculusOptions()...)
			if err != nil {
				return fmt.Errorf("solve from %g: %w", guess, err)
			}

			r := a.newReport()
			r.AddText("Solve", "f(x)", p.String())
			r.AddFloat("Solve", "guess", guess)
			r.AddFloat("Solve", "root", x)
			r.AddFloat("Solve", "f(root)", p.Eval(x))

			return a.render(cmd, r)
		},
	}
	cmd.Flags().Float64Var(&guess, "guess", 1, "starting point")
	addSolverFlags(cmd)

	return cmd
}

func (a *app) newRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots <coefs>",
		Short: "Roots of a polynomial",
		Long: `List the roots of a polynomial. Degree 2 uses the closed form and may
return a complex pair; other degrees run Newton-Raphson from guesses spaced
around zero and report the ones that converge.

Examples:
  numlab roots 1,-3,2
  numlab roots 1,0,1
  numlab roots 1,-6,11,-6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoly(args[0])
			if err != nil {
				return err
			}
			roots, err := poly.Roots(p,
				poly.WithSolverOptions(a.cfg.CalculusOptions()...),
				poly.WithLogger(a.logger),
			)
			if err != nil {
				return fmt.Errorf("roots: %w", err)
			}
			a.logger.Debug("roots found", zap.Int("degree", p.Degree()), zap.Int("count", len(roots)))

			r := a.newReport()
			r.AddText("Roots", "f(x)", p.String())
			r.AddRoots("Roots", "roots", roots)

			return a.render(cmd, r)
		},
	}
	addSolverFlags(cmd)

	return cmd
}
