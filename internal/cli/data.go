// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/arith"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/sequence"
	"github.com/katalvlaran/numlab/stats"
)

func (a *app) newStatsCmd() *cobra.Command {
	var columns bool
	cmd := &cobra.Command{
		Use:   "stats <values>",
		Short: "Descriptive statistics of a sample",
		Long: `Print count, mean, median, sample standard deviation, min and max.
With --columns the argument is a matrix and every column is a sample.

Examples:
  numlab stats 1,2,3,4
  numlab stats --columns "1,10;2,20;3,30"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.newReport()
			if columns {
				m, err := parseMatrix(args[0])
				if err != nil {
					return fmt.Errorf("stats: %w", err)
				}
				sums, err := stats.DescribeColumns(m)
				if err != nil {
					return fmt.Errorf("stats: %w", err)
				}
				for j, s := range sums {
					r.AddSummary(fmt.Sprintf("Column %d", j), s)
				}

				return a.render(cmd, r)
			}

			values, err := parseFloats(args[0])
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			s, err := stats.Describe(values)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			r.AddSummary("Statistics", s)

			return a.render(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&columns, "columns", false, "treat the argument as a matrix and describe each column")

	return cmd
}

func (a *app) newFibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib <count>",
		Short: "First count Fibonacci numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("fib: count %q: %w", args[0], errBadNumber)
			}
			terms, err := sequence.Fibonacci(n)
			if err != nil {
				return fmt.Errorf("fib: %w", err)
			}

			r := a.newReport()
			r.AddInts("Fibonacci", "terms", terms)

			return a.render(cmd, r)
		},
	}
}

func (a *app) newFactorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Exact n!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("factorial: n %q: %w", args[0], errBadNumber)
			}
			f, err := sequence.Factorial(n)
			if err != nil {
				return fmt.Errorf("factorial: %w", err)
			}

			r := a.newReport()
			r.AddText("Factorial", fmt.Sprintf("%d!", n), f.String())

			return a.render(cmd, r)
		},
	}
}

func (a *app) newMatmulCmd() *cobra.Command {
	var opName string
	cmd := &cobra.Command{
		Use:   "matmul <A> <B>",
		Short: "Multiply, add or subtract two matrices",
		Long: `Combine two dense matrices. Rows are separated by ';', cells by ','.

Examples:
  numlab matmul "1,2;3,4" "5,6;7,8"
  numlab matmul --op add "1,2;3,4" "5,6;7,8"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lhs, err := parseMatrix(args[0])
			if err != nil {
				return fmt.Errorf("matmul: A: %w", err)
			}
			rhs, err := parseMatrix(args[1])
			if err != nil {
				return fmt.Errorf("matmul: B: %w", err)
			}

			var res matrix.Matrix
			switch opName {
			case "mul":
				res, err = matrix.Mul(lhs, rhs)
			case "add":
				res, err = matrix.Add(lhs, rhs)
			case "sub":
				res, err = matrix.Sub(lhs, rhs)
			default:
				return fmt.Errorf("matmul: unknown --op %q (want mul, add or sub)", opName)
			}
			if err != nil {
				return fmt.Errorf("matmul: %w", err)
			}

			r := a.newReport()
			if err = r.AddMatrix("Matrix", "A", lhs); err != nil {
				return err
			}
			if err = r.AddMatrix("Matrix", "B", rhs); err != nil {
				return err
			}
			if err = r.AddMatrix("Matrix", "A "+opName+" B", res); err != nil {
				return err
			}

			return a.render(cmd, r)
		},
	}
	cmd.Flags().StringVar(&opName, "op", "mul", "operation: mul, add or sub")

	return cmd
}

func (a *app) newCalcCmd() *cobra.Command {
	var integer bool
	cmd := &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: "Basic arithmetic",
		Long: `Apply add, sub, mul or div (or + - * /) to two numbers.
With --int the operands are 64-bit integers and division truncates.

Examples:
  numlab calc div 7 2
  numlab calc --int div 7 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := arith.ParseOp(args[0])
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}

			r := a.newReport()
			label := fmt.Sprintf("%s %s %s", args[1], op, args[2])
			if integer {
				x, y, err := parseIntPair(args[1], args[2])
				if err != nil {
					return fmt.Errorf("calc: %w", err)
				}
				v, err := arith.Apply(op, x, y)
				if err != nil {
					return fmt.Errorf("calc: %w", err)
				}
				r.AddText("Arithmetic", label, strconv.FormatInt(v, 10))

				return a.render(cmd, r)
			}

			x, y, err := parseFloatPair(args[1], args[2])
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}
			v, err := arith.Apply(op, x, y)
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}
			r.AddFloat("Arithmetic", label, v)

			return a.render(cmd, r)
		},
	}
	cmd.Flags().BoolVar(&integer, "int", false, "use 64-bit integer arithmetic")

	return cmd
}

func parseIntPair(x, y string) (int64, int64, error) {
	a, err := strconv.ParseInt(x, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", x, errBadNumber)
	}
	b, err := strconv.ParseInt(y, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", y, errBadNumber)
	}

	return a, b, nil
}

func parseFloatPair(x, y string) (float64, float64, error) {
	a, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", x, errBadNumber)
	}
	b, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", y, errBadNumber)
	}

	return a, b, nil
}
